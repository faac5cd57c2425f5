package kafka

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
)

// MessageWriter is the subset of *kafka.Writer used for publishing
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Kafka publishes messages through a kafka-go writer
type Kafka struct {
	writer        MessageWriter
	timeout       time.Duration
	retryAttempts int
}

// New creates new Kafka publisher
func New(writer MessageWriter, timeout time.Duration) *Kafka {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Kafka{writer: writer, timeout: timeout, retryAttempts: 2}
}

// PublishMessage publishes message to topic, retrying with backoff
func (s *Kafka) PublishMessage(ctx context.Context, topic string, key, value []byte) error {
	if s == nil || s.writer == nil {
		return errors.New("kafka writer is not initialized")
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	msg := kafka.Message{
		Topic: topic,
		Key:   key,
		Value: value,
		Time:  time.Now(),
	}

	backoff := 100 * time.Millisecond
	var err error
	for attempt := 0; attempt <= s.retryAttempts; attempt++ {
		if err = s.writer.WriteMessages(timeoutCtx, msg); err == nil {
			return nil
		}
		if timeoutCtx.Err() != nil {
			return fmt.Errorf("publish context timeout: %w", timeoutCtx.Err())
		}
		if attempt < s.retryAttempts {
			select {
			case <-time.After(backoff):
			case <-timeoutCtx.Done():
				return fmt.Errorf("publish context timeout: %w", timeoutCtx.Err())
			}
			backoff *= 2
		}
	}

	return fmt.Errorf("failed to write message after %d attempts: %w", s.retryAttempts+1, err)
}

// Close closes the underlying writer
func (s *Kafka) Close() error {
	if s == nil || s.writer == nil {
		return nil
	}
	return s.writer.Close()
}
