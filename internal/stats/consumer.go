package stats

import (
	"context"
	"encoding/json"

	"github.com/IBM/sarama"
	"go.uber.org/zap"

	"github.com/campusbooks/bookshare-service/pkg/kafka"
)

type record func(ctx context.Context, event kafka.Event) error

// Consumer folds lifecycle events from the borrow-events topic into counters.
// One instance serves many group sessions: Setup runs again on every
// rebalance, so it must hold no per-session state.
type Consumer struct {
	recordHandler record
	log           *zap.Logger
}

func NewConsumer(record record, log *zap.Logger) *Consumer {
	return &Consumer{
		recordHandler: record,
		log:           log.Named("consumer"),
	}
}

func (consumer *Consumer) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (consumer *Consumer) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (consumer *Consumer) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				consumer.log.Warn("message channel was closed")
				return nil
			}
			var event kafka.Event
			if err := json.Unmarshal(message.Value, &event); err != nil {
				consumer.log.Error("", zap.Error(err))
				session.MarkMessage(message, "")
				continue
			}

			if err := consumer.recordHandler(context.Background(), event); err != nil {
				consumer.log.Error("consumer.recordHandler", zap.Error(err))
				continue
			}

			consumer.log.Debug("Message claimed:", zap.String("value", string(message.Value)), zap.Time("timestamp", message.Timestamp), zap.String("topic", message.Topic))
			session.MarkMessage(message, "")
		case <-session.Context().Done():
			return nil
		}
	}
}
