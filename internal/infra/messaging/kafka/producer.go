package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"hotel-booking/internal/pkg/config"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/shared"

	"github.com/segmentio/kafka-go"
)

const (
	HeaderEventType = "event-type"
	HeaderEventID   = "event-id"
)

// Producer writes every outbox event to one topic, keyed by aggregate id so
// events of one reservation or hotel keep their order within a partition.
type Producer struct {
	writer *kafka.Writer
}

func NewProducer(cfg config.KafkaConfig) (*Producer, error) {
	if len(cfg.Brokers) == 0 {
		return nil, errs.New("kafka: at least one broker is required")
	}
	if cfg.Topic == "" {
		return nil, errs.New("kafka: topic cannot be empty")
	}

	writer := &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Topic:                  cfg.Topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireAll,
		Compression:            kafka.Snappy,
		MaxAttempts:            cfg.MaxAttempts,
		BatchTimeout:           cfg.BatchTimeout,
		AllowAutoTopicCreation: true,
		Logger:                 kafka.LoggerFunc(func(string, ...any) {}),
		ErrorLogger:            kafka.LoggerFunc(errorLogger),
	}
	return &Producer{writer: writer}, nil
}

func (p *Producer) Name() string { return "kafka" }

func (p *Producer) Accepts(shared.EventType) bool { return true }

func (p *Producer) Publish(ctx context.Context, e shared.Event) error {
	value, err := json.Marshal(e.Envelope())
	if err != nil {
		return errs.Wrap(err, "kafka: encode envelope")
	}

	msg := kafka.Message{
		Key:   []byte(e.AggregateID.String()),
		Value: value,
		Time:  e.OccurredAt,
		Headers: []kafka.Header{
			{Key: HeaderEventType, Value: []byte(e.Type)},
			{Key: HeaderEventID, Value: []byte(e.ID.String())},
		},
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return errs.Wrapf(err, "kafka: write %s", e.Type)
	}
	return nil
}

func (p *Producer) Close() error {
	return p.writer.Close()
}

func errorLogger(msg string, args ...any) {
	slog.Error("kafka client error", "detail", fmt.Sprintf(msg, args...))
}
