// Package rabbitmq registers the amqp091 driver used to publish lifecycle
// events.
//
//	import _ "github.com/ncobase/microservicio/data/rabbitmq"
package rabbitmq

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ncobase/microservicio/data"
	"github.com/ncobase/microservicio/data/config"
	amqp "github.com/rabbitmq/amqp091-go"
)

type driver struct{}

func (driver) Name() string { return "rabbitmq" }

// dialURL adds the amqp scheme to bare host:port addresses.
func dialURL(raw string) string {
	if strings.HasPrefix(raw, "amqp://") || strings.HasPrefix(raw, "amqps://") {
		return raw
	}
	return "amqp://" + raw
}

func (driver) Connect(_ context.Context, cfg any) (any, error) {
	rc, ok := cfg.(*config.RabbitMQ)
	if !ok {
		return nil, fmt.Errorf("rabbitmq: unexpected config %T", cfg)
	}
	if rc.URL == "" {
		return nil, errors.New("rabbitmq: url is not configured")
	}

	ac := amqp.Config{
		Heartbeat: rc.HeartbeatInterval,
		Locale:    "en_US",
		Properties: amqp.Table{
			"connection_name": rc.Exchange,
		},
	}
	if rc.ConnectionTimeout > 0 {
		ac.Dial = amqp.DefaultDial(rc.ConnectionTimeout)
	}

	conn, err := amqp.DialConfig(dialURL(rc.URL), ac)
	if err != nil {
		return nil, fmt.Errorf("rabbitmq: dial: %w", err)
	}
	return conn, nil
}

func (driver) Close(conn any) error {
	c, ok := conn.(*amqp.Connection)
	if !ok {
		return errors.New("rabbitmq: connection is not an *amqp.Connection")
	}
	if c.IsClosed() {
		return nil
	}
	return c.Close()
}

func init() {
	data.RegisterMessageDriver(driver{})
}
