// Package kafka registers the kafka-go message driver.
//
//	import _ "github.com/ncobase/microservicio/data/kafka"
//
// Connect verifies the first broker is reachable and returns a
// *kafka.Writer balanced across all configured brokers.
package kafka

import (
	"context"
	"fmt"
	"time"

	"github.com/ncobase/microservicio/data"
	"github.com/ncobase/microservicio/data/config"
	"github.com/segmentio/kafka-go"
)

type driver struct{}

func (d *driver) Name() string {
	return "kafka"
}

func (d *driver) Connect(ctx context.Context, cfg any) (any, error) {
	kafkaCfg, ok := cfg.(*config.Kafka)
	if !ok {
		return nil, fmt.Errorf("kafka: invalid configuration type, expected *config.Kafka")
	}

	if len(kafkaCfg.Brokers) == 0 {
		return nil, fmt.Errorf("kafka: brokers are empty")
	}

	dialer := &kafka.Dialer{ClientID: kafkaCfg.ClientID, Timeout: kafkaCfg.ConnectTimeout}
	if dialer.Timeout == 0 {
		dialer.Timeout = 10 * time.Second
	}
	conn, err := dialer.DialContext(ctx, "tcp", kafkaCfg.Brokers[0])
	if err != nil {
		return nil, fmt.Errorf("kafka: failed to connect: %w", err)
	}
	_ = conn.Close()

	writer := &kafka.Writer{
		Addr:                   kafka.TCP(kafkaCfg.Brokers...),
		Balancer:               &kafka.Hash{},
		BatchTimeout:           10 * time.Millisecond,
		RequiredAcks:           kafka.RequireAll,
		WriteTimeout:           kafkaCfg.WriteTimeout,
		AllowAutoTopicCreation: true,
	}

	return writer, nil
}

func (d *driver) Close(conn any) error {
	writer, ok := conn.(*kafka.Writer)
	if !ok {
		return fmt.Errorf("kafka: invalid connection type, expected *kafka.Writer")
	}

	if err := writer.Close(); err != nil {
		return fmt.Errorf("kafka: failed to close writer: %w", err)
	}

	return nil
}

func init() {
	data.RegisterMessageDriver(&driver{})
}
