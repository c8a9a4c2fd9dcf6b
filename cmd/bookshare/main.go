package main

import (
	stdLog "log"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/campusbooks/bookshare-service/app"
	"github.com/campusbooks/bookshare-service/config"
)

func main() {
	if err := godotenv.Load(); err != nil {
		stdLog.Fatal("load envs from .env ", zap.Error(err))
	}
	cfg := config.NewConfig(
		config.WithLogLevel(zapcore.DebugLevel),
		config.WithWriteTimeout(time.Minute),
		config.WithLoanPeriodDays(14),
	)

	if err := app.Run(cfg); err != nil {
		stdLog.Fatal("app run ", zap.Error(err))
	}
}
