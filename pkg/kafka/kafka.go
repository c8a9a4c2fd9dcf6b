package kafka

import (
	"context"
	"time"

	"github.com/IBM/sarama"
)

const (
	BorrowEventsTopic  = "borrow-events"
	StatsConsumerGroup = "bookshare-stats"
)

type Config struct {
	Addrs []string `envconfig:"KAFKA_ADDRS" default:"localhost:9092"`
}

// Event is one lifecycle transition, published after the transition commits.
type Event struct {
	Kind        string    `json:"kind"` // "borrow" | "donation"
	RequestUid  string    `json:"request_uid"`
	BookTitleID int       `json:"book_title_id,omitempty"`
	Actor       string    `json:"actor"`
	Status      string    `json:"status"`
	OccurredAt  time.Time `json:"occurred_at"`
}

func NewProducer(cfg Config) (sarama.SyncProducer, error) {
	defaultCfg := sarama.NewConfig()

	defaultCfg.Producer.RequiredAcks = sarama.WaitForAll
	defaultCfg.Producer.Return.Successes = true

	return sarama.NewSyncProducer(cfg.Addrs, defaultCfg)
}

func NewConsumer(cfg Config, group string) (sarama.ConsumerGroup, error) {
	defaultCfg := sarama.NewConfig()
	defaultCfg.Consumer.Offsets.Initial = sarama.OffsetOldest

	return sarama.NewConsumerGroup(cfg.Addrs, group, defaultCfg)
}

// Consume runs the consumer-group session loop until ctx is cancelled.
func Consume(ctx context.Context, consumer sarama.ConsumerGroup, handler sarama.ConsumerGroupHandler, topic string) error {
	for {
		if err := consumer.Consume(ctx, []string{topic}, handler); err != nil {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
	}
}
