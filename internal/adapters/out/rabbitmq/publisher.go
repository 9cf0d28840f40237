// Package rabbitmq publishes job lifecycle events to a RabbitMQ topic exchange. The routing key
// is the event type, so consumers bind to "job.*" or to a single transition.
package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"yardwork/internal/core/domain/model/job"

	"github.com/cenkalti/backoff/v4"
	amqp "github.com/rabbitmq/amqp091-go"
)

var ErrPublisherClosed = errors.New("rabbitmq publisher is closed")

type Config struct {
	URL            string
	Exchange       string
	Heartbeat      time.Duration
	PublishTimeout time.Duration
	PublishRetries uint64
	RetryInterval  time.Duration
}

// Channel is the part of *amqp.Channel the publisher uses.
type Channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// Message is the JSON body of a published event.
type Message struct {
	Type        string    `json:"type"`
	JobID       string    `json:"jobId"`
	EmployeeID  *string   `json:"employeeId,omitempty"`
	Status      string    `json:"status"`
	CustomerZip string    `json:"customerZip"`
	Reason      string    `json:"reason,omitempty"`
	OccurredAt  time.Time `json:"occurredAt"`
}

func NewMessage(e job.Event) Message {
	m := Message{
		Type:        string(e.Type),
		JobID:       e.JobID.String(),
		Status:      e.Status.String(),
		CustomerZip: e.CustomerZip.String(),
		Reason:      e.Reason,
		OccurredAt:  e.OccurredAt.UTC(),
	}
	if e.EmployeeID != nil {
		id := e.EmployeeID.String()
		m.EmployeeID = &id
	}
	return m
}

type Publisher struct {
	mu      sync.Mutex
	conn    *amqp.Connection
	channel Channel
	config  Config
	logger  *slog.Logger
	closed  bool
}

// Dial connects, opens a channel and declares the durable topic exchange.
func Dial(config Config, logger *slog.Logger) (*Publisher, error) {
	conn, err := amqp.DialConfig(config.URL, amqp.Config{
		Heartbeat: config.Heartbeat,
		Locale:    "en_US",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to create channel: %w", err)
	}

	err = ch.ExchangeDeclare(
		config.Exchange, // name
		"topic",         // type
		true,            // durable
		false,           // auto-deleted
		false,           // internal
		false,           // no-wait
		nil,             // arguments
	)
	if err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("failed to declare exchange: %w", err)
	}

	p := NewPublisher(ch, config, logger)
	p.conn = conn
	p.logger.Info("RabbitMQ publisher initialized", slog.String("exchange", config.Exchange))
	return p, nil
}

// NewPublisher wraps an already open channel.
func NewPublisher(ch Channel, config Config, logger *slog.Logger) *Publisher {
	if logger == nil {
		logger = slog.Default()
	}
	if config.PublishTimeout <= 0 {
		config.PublishTimeout = 5 * time.Second
	}
	if config.RetryInterval <= 0 {
		config.RetryInterval = 100 * time.Millisecond
	}
	return &Publisher{
		channel: ch,
		config:  config,
		logger:  logger.With("component", "rabbitmq_publisher"),
	}
}

// Publish sends one persistent JSON message, retrying transport errors with exponential
// backoff inside the publish timeout.
func (p *Publisher) Publish(ctx context.Context, event job.Event) error {
	body, err := json.Marshal(NewMessage(event))
	if err != nil {
		return fmt.Errorf("failed to encode event: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, p.config.PublishTimeout)
	defer cancel()

	msg := amqp.Publishing{
		ContentType:  "application/json",
		Body:         body,
		DeliveryMode: amqp.Persistent,
		Timestamp:    event.OccurredAt,
		Type:         string(event.Type),
		MessageId:    event.JobID.String() + ":" + string(event.Type),
	}

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = p.config.RetryInterval
	policy.MaxElapsedTime = 0

	attempts := 0
	err = backoff.Retry(func() error {
		attempts++
		p.mu.Lock()
		defer p.mu.Unlock()

		if p.closed {
			return backoff.Permanent(ErrPublisherClosed)
		}
		return p.channel.PublishWithContext(ctx, p.config.Exchange, string(event.Type), false, false, msg)
	}, backoff.WithContext(backoff.WithMaxRetries(policy, p.config.PublishRetries), ctx))
	if err != nil {
		p.logger.ErrorContext(ctx, "failed to publish job event",
			slog.String("event", string(event.Type)),
			slog.Int("attempts", attempts),
			slog.Any("error", err))
		return fmt.Errorf("failed to publish %s: %w", event.Type, err)
	}

	p.logger.DebugContext(ctx, "job event published",
		slog.String("event", string(event.Type)),
		slog.String("job_id", event.JobID.String()),
		slog.Int("body_size", len(body)))
	return nil
}

func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil
	}
	p.closed = true

	err := p.channel.Close()
	if p.conn != nil {
		err = errors.Join(err, p.conn.Close())
	}
	return err
}
