package kafka

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"hotel-booking/internal/pkg/config"
	"hotel-booking/internal/pkg/errs"

	"github.com/segmentio/kafka-go"
)

type Message struct {
	Key       string
	Value     []byte
	Headers   map[string]string
	Partition int
	Offset    int64
}

type MessageHandler func(ctx context.Context, msg Message) error

// Consumer reads the event topic as part of a consumer group and commits
// each offset after the handler returns.
type Consumer struct {
	reader        *kafka.Reader
	handler       MessageHandler
	commitTimeout time.Duration
}

func NewConsumer(cfg config.KafkaConfig, handler MessageHandler) (*Consumer, error) {
	if len(cfg.Brokers) == 0 {
		return nil, errs.New("kafka: at least one broker is required")
	}
	if cfg.GroupID == "" {
		return nil, errs.New("kafka: group id cannot be empty")
	}
	if handler == nil {
		return nil, errs.New("kafka: message handler cannot be nil")
	}

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:     cfg.Brokers,
		Topic:       cfg.Topic,
		GroupID:     cfg.GroupID,
		MinBytes:    1,
		MaxBytes:    10e6,
		MaxWait:     time.Second,
		StartOffset: kafka.FirstOffset,
		Logger:      kafka.LoggerFunc(func(string, ...any) {}),
		ErrorLogger: kafka.LoggerFunc(errorLogger),
	})

	return &Consumer{
		reader:        reader,
		handler:       handler,
		commitTimeout: cfg.CommitTimeout,
	}, nil
}

// Run blocks until ctx is cancelled. A message the handler rejects is logged
// and committed anyway: redelivering a poison message would stall the group.
func (c *Consumer) Run(ctx context.Context) error {
	for {
		kafkaMsg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return err
			}
			slog.Warn("kafka fetch failed", "error", err.Error())
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(time.Second):
			}
			continue
		}

		msg := convertMessage(kafkaMsg)
		if err := c.handler(ctx, msg); err != nil {
			slog.Error("kafka message handling failed",
				"partition", msg.Partition,
				"offset", msg.Offset,
				"error", err.Error())
		}

		commitCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.commitTimeout)
		if err := c.reader.CommitMessages(commitCtx, kafkaMsg); err != nil {
			slog.Warn("kafka commit failed", "offset", msg.Offset, "error", err.Error())
		}
		cancel()
	}
}

func (c *Consumer) Close() error {
	return c.reader.Close()
}

func convertMessage(kafkaMsg kafka.Message) Message {
	msg := Message{
		Key:       string(kafkaMsg.Key),
		Value:     kafkaMsg.Value,
		Headers:   make(map[string]string, len(kafkaMsg.Headers)),
		Partition: kafkaMsg.Partition,
		Offset:    kafkaMsg.Offset,
	}
	for _, h := range kafkaMsg.Headers {
		msg.Headers[h.Key] = string(h.Value)
	}
	return msg
}
