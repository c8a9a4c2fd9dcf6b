package config

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/campusbooks/bookshare-service/pkg/kafka"
	"github.com/campusbooks/bookshare-service/pkg/logger"
	"github.com/campusbooks/bookshare-service/pkg/postgres"
)

type HTTPServer struct {
	Host         string        `yaml:"host" envconfig:"BOOKSHARE_HTTP_HOST" default:"0.0.0.0"`
	Port         string        `yaml:"port" envconfig:"BOOKSHARE_HTTP_PORT" default:"8080"`
	ReadTimeout  time.Duration `yaml:"readTimeout" envconfig:"HTTP_READ" default:"30s"`
	WriteTimeout time.Duration
}

// Loan holds the lending rules: due_date = collected_at + Period days.
type Loan struct {
	PeriodDays int `yaml:"periodDays" envconfig:"LOAN_PERIOD_DAYS"`
}

type Config struct {
	Server   HTTPServer `yaml:"server"`
	Database postgres.Database
	Kafka    kafka.Config
	Loan     Loan       `yaml:"loan"`
	Log      logger.Log `yaml:"log"`
}

var (
	once sync.Once
	cfg  Config
)

// NewConfig reads config from environment.
func NewConfig(ops ...Option) *Config {
	once.Do(func() {
		var config Config
		for _, op := range ops {
			op(&config)
		}
		err := envconfig.Process("", &config)
		if err != nil {
			log.Fatal("NewConfig ", err)
		}
		cfg = config
		printConfig(cfg)
	})

	return &cfg
}

func printConfig(cfg Config) {
	jscfg, _ := json.MarshalIndent(cfg, "", "	") //nolint:errcheck
	fmt.Println(string(jscfg))
}
