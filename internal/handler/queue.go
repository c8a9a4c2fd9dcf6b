package handler

import (
	"encoding/json"
	"time"

	"github.com/IBM/sarama"

	"github.com/campusbooks/bookshare-service/pkg/circuit_breaker"
)

type Enqueuer interface {
	Enqueue(topic string, v any) error
}

// NewEnqueuer wraps the producer in a circuit breaker: a broken broker
// degrades event publication without slowing down lifecycle transitions.
func NewEnqueuer(producer sarama.SyncProducer) Enqueuer {
	return &enqueuerImpl{
		producer: producer,
		cb:       circuit_breaker.New(20, 30*time.Second, 0.5, 5),
	}
}

type enqueuerImpl struct {
	producer sarama.SyncProducer
	cb       circuit_breaker.CircuitBreaker
}

func (q *enqueuerImpl) Enqueue(topic string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return q.cb.Call(func() error {
		msg := &sarama.ProducerMessage{Topic: topic, Value: sarama.StringEncoder(data)}
		_, _, err := q.producer.SendMessage(msg)
		return err
	})
}
