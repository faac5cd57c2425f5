package rabbitmq

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// RabbitMQ publishes to a durable topic exchange
type RabbitMQ struct {
	conn     *amqp.Connection
	exchange string
	timeout  time.Duration

	mu       sync.Mutex
	declared bool
}

// NewRabbitMQ creates new RabbitMQ publisher
func NewRabbitMQ(conn *amqp.Connection, exchange string, timeout time.Duration) *RabbitMQ {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &RabbitMQ{conn: conn, exchange: exchange, timeout: timeout}
}

// IsConnected checks if the RabbitMQ connection is valid
func (s *RabbitMQ) IsConnected() bool {
	return s != nil && s.conn != nil && !s.conn.IsClosed()
}

// ensureExchange declares the topic exchange once per publisher
func (s *RabbitMQ) ensureExchange(ch *amqp.Channel) error {
	if s.declared {
		return nil
	}
	err := ch.ExchangeDeclare(
		s.exchange, // name
		"topic",    // type
		true,       // durable
		false,      // auto-delete
		false,      // internal
		false,      // no-wait
		nil,        // arguments
	)
	if err != nil {
		return fmt.Errorf("failed to declare exchange: %w", err)
	}
	s.declared = true
	return nil
}

// PublishMessage publishes body under routingKey and waits for the broker confirm
func (s *RabbitMQ) PublishMessage(ctx context.Context, routingKey string, body []byte) error {
	if !s.IsConnected() {
		return errors.New("rabbitmq connection is not available")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ch, err := s.conn.Channel()
	if err != nil {
		return fmt.Errorf("failed to open channel: %w", err)
	}
	defer func() { _ = ch.Close() }()

	if err := s.ensureExchange(ch); err != nil {
		return err
	}

	if err := ch.Confirm(false); err != nil {
		return fmt.Errorf("failed to put channel in confirm mode: %w", err)
	}
	confirms := ch.NotifyPublish(make(chan amqp.Confirmation, 1))

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	err = ch.PublishWithContext(
		ctx,
		s.exchange,
		routingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now().UTC(),
			Body:         body,
		})
	if err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}

	select {
	case confirmed, ok := <-confirms:
		if !ok {
			return errors.New("confirmation channel closed")
		}
		if !confirmed.Ack {
			return errors.New("failed to receive publish confirmation")
		}
	case <-ctx.Done():
		return fmt.Errorf("publish confirmation timed out: %w", ctx.Err())
	}

	return nil
}

// Close closes the connection
func (s *RabbitMQ) Close() error {
	if !s.IsConnected() {
		return nil
	}
	return s.conn.Close()
}
