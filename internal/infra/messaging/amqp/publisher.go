package amqp

import (
	"context"
	"encoding/json"
	"sync"

	"hotel-booking/internal/pkg/config"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/shared"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Publisher pushes booking notifications to a durable queue on the default
// exchange. Only reservation lifecycle events are accepted.
type Publisher struct {
	mu    sync.Mutex
	conn  *amqp.Connection
	ch    *amqp.Channel
	queue string
}

func NewPublisher(cfg config.AMQPConfig) (*Publisher, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, errs.Wrap(err, "amqp: dial")
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, errs.Wrap(err, "amqp: open channel")
	}
	if _, err := ch.QueueDeclare(cfg.Queue, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, errs.Wrapf(err, "amqp: declare queue %s", cfg.Queue)
	}

	return &Publisher{conn: conn, ch: ch, queue: cfg.Queue}, nil
}

func (p *Publisher) Name() string { return "amqp" }

func (p *Publisher) Accepts(t shared.EventType) bool {
	switch t {
	case shared.EventReservationCreated, shared.EventReservationUpdated, shared.EventReservationCancelled:
		return true
	default:
		return false
	}
}

func (p *Publisher) Publish(ctx context.Context, e shared.Event) error {
	body, err := json.Marshal(e.Envelope())
	if err != nil {
		return errs.Wrap(err, "amqp: encode envelope")
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	err = p.ch.PublishWithContext(ctx, "", p.queue, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    e.ID.String(),
		Type:         string(e.Type),
		Timestamp:    e.OccurredAt.UTC(),
		Body:         body,
	})
	if err != nil {
		return errs.Wrapf(err, "amqp: publish %s", e.Type)
	}
	return nil
}

func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	chErr := p.ch.Close()
	connErr := p.conn.Close()
	if chErr != nil {
		return chErr
	}
	return connErr
}
