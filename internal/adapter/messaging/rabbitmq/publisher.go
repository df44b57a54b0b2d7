// Package rabbitmq publishes campaign events to a topic exchange.
package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"restaurant-bot-dashboard/config"
	"restaurant-bot-dashboard/internal/core/domain"
	"restaurant-bot-dashboard/pkg/logger"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"
)

// ErrConnectionClosed is returned by Ping once the broker connection is gone.
var ErrConnectionClosed = errors.New("rabbitmq connection closed")

type channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// Publisher implements ports.EventPublisher and ports.HealthChecker.
type Publisher struct {
	exchange    string
	openChannel func() (channel, error)
	isClosed    func() bool
	closeConn   func() error
	log         zerolog.Logger
}

// NewPublisher dials the broker and declares a durable topic exchange.
func NewPublisher(cfg config.EventsConfig, log zerolog.Logger) (*Publisher, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("dialing rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("opening rabbitmq channel: %w", err)
	}
	defer ch.Close()

	if err := ch.ExchangeDeclare(cfg.Exchange, "topic", true, false, false, false, nil); err != nil {
		conn.Close()
		return nil, fmt.Errorf("declaring exchange %s: %w", cfg.Exchange, err)
	}

	log.Info().Str("exchange", cfg.Exchange).Msg("RabbitMQ publisher ready")

	return &Publisher{
		exchange:    cfg.Exchange,
		openChannel: func() (channel, error) { return conn.Channel() },
		isClosed:    conn.IsClosed,
		closeConn:   conn.Close,
		log:         logger.Component(log, "rabbitmq"),
	}, nil
}

// Publish sends event as persistent JSON under routingKey.
func (p *Publisher) Publish(ctx context.Context, routingKey string, event domain.Event) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	ch, err := p.openChannel()
	if err != nil {
		return fmt.Errorf("opening rabbitmq channel: %w", err)
	}
	defer ch.Close()

	err = ch.PublishWithContext(ctx, p.exchange, routingKey, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    event.Meta.ID,
		Type:         event.Meta.Type,
		Timestamp:    time.Now(),
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("publish %s: %w", routingKey, err)
	}

	p.log.Debug().Str("key", routingKey).Str("event_id", event.Meta.ID).Msg("Event published")
	return nil
}

// Ping reports whether the broker connection is still open.
func (p *Publisher) Ping(_ context.Context) error {
	if p.isClosed() {
		return ErrConnectionClosed
	}
	return nil
}

// Name returns the dependency name.
func (p *Publisher) Name() string {
	return "rabbitmq"
}

// Close closes the broker connection.
func (p *Publisher) Close() error {
	return p.closeConn()
}
