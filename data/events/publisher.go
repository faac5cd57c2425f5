package events

import (
	"context"
	"fmt"

	"github.com/ncobase/microservicio/data"
	"github.com/ncobase/microservicio/data/config"
	"github.com/ncobase/microservicio/data/messaging/kafka"
	"github.com/ncobase/microservicio/data/messaging/rabbitmq"
	"github.com/ncobase/microservicio/logging/logger"
	amqp "github.com/rabbitmq/amqp091-go"
	kafkago "github.com/segmentio/kafka-go"
)

// KafkaPublisher writes events to a single topic keyed by resource id
type KafkaPublisher struct {
	k     *kafka.Kafka
	topic string
}

// NewKafkaPublisher creates a publisher over k
func NewKafkaPublisher(k *kafka.Kafka, topic string) *KafkaPublisher {
	return &KafkaPublisher{k: k, topic: topic}
}

func (p *KafkaPublisher) Publish(ctx context.Context, e Event) error {
	body, err := e.Marshal()
	if err != nil {
		return fmt.Errorf("events: marshal: %w", err)
	}
	return p.k.PublishMessage(ctx, p.topic, e.Key(), body)
}

func (p *KafkaPublisher) Close() error {
	return p.k.Close()
}

// RabbitMQPublisher routes events through a topic exchange by event type
type RabbitMQPublisher struct {
	r *rabbitmq.RabbitMQ
}

// NewRabbitMQPublisher creates a publisher over r
func NewRabbitMQPublisher(r *rabbitmq.RabbitMQ) *RabbitMQPublisher {
	return &RabbitMQPublisher{r: r}
}

func (p *RabbitMQPublisher) Publish(ctx context.Context, e Event) error {
	body, err := e.Marshal()
	if err != nil {
		return fmt.Errorf("events: marshal: %w", err)
	}
	return p.r.PublishMessage(ctx, e.Type, body)
}

func (p *RabbitMQPublisher) Close() error {
	return p.r.Close()
}

// New returns the publisher selected by data.events.driver. A missing
// driver, or a broker that cannot be reached, yields Noop and a warning.
func New(ctx context.Context, cfg *config.Config) (Publisher, func()) {
	if cfg == nil || !cfg.Events.Enabled() {
		return Noop{}, func() {}
	}

	p, err := connect(ctx, cfg)
	if err != nil {
		logger.Warn(ctx, "event publishing disabled", "driver", cfg.Events.Driver, "error", err)
		return Noop{}, func() {}
	}

	logger.Info(ctx, "event publishing enabled", "driver", cfg.Events.Driver, "destination", cfg.Events.Destination)
	return p, func() {
		if err := p.Close(); err != nil {
			logger.Error(context.Background(), "event publisher close failed", "error", err)
		}
	}
}

func connect(ctx context.Context, cfg *config.Config) (Publisher, error) {
	driver, err := data.GetMessageDriver(cfg.Events.Driver)
	if err != nil {
		return nil, err
	}

	switch cfg.Events.Driver {
	case "kafka":
		conn, err := driver.Connect(ctx, cfg.Kafka)
		if err != nil {
			return nil, err
		}
		writer, ok := conn.(*kafkago.Writer)
		if !ok {
			_ = driver.Close(conn)
			return nil, fmt.Errorf("events: unexpected kafka connection %T", conn)
		}
		topic := cfg.Kafka.Topic
		if topic == "" {
			topic = cfg.Events.Destination
		}
		return NewKafkaPublisher(kafka.New(writer, cfg.Events.PublishTimeout), topic), nil

	case "rabbitmq":
		conn, err := driver.Connect(ctx, cfg.RabbitMQ)
		if err != nil {
			return nil, err
		}
		amqpConn, ok := conn.(*amqp.Connection)
		if !ok {
			_ = driver.Close(conn)
			return nil, fmt.Errorf("events: unexpected rabbitmq connection %T", conn)
		}
		exchange := cfg.RabbitMQ.Exchange
		if exchange == "" {
			exchange = cfg.Events.Destination
		}
		return NewRabbitMQPublisher(rabbitmq.NewRabbitMQ(amqpConn, exchange, cfg.Events.PublishTimeout)), nil

	default:
		return nil, fmt.Errorf("events: unsupported driver %q", cfg.Events.Driver)
	}
}
