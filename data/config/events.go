package config

import (
	"time"

	"github.com/spf13/viper"
)

// Events selects where entity lifecycle events are published
type Events struct {
	// Driver is "kafka", "rabbitmq" or empty for none
	Driver         string        `json:"driver" yaml:"driver"`
	Destination    string        `json:"destination" yaml:"destination"`
	PublishTimeout time.Duration `json:"publish_timeout" yaml:"publish_timeout"`
}

// Enabled reports whether an events driver is configured
func (e *Events) Enabled() bool {
	return e != nil && e.Driver != "" && e.Driver != "none"
}

func getEventsConfig(v *viper.Viper) *Events {
	e := &Events{
		Driver:         v.GetString("data.events.driver"),
		Destination:    v.GetString("data.events.destination"),
		PublishTimeout: 5 * time.Second,
	}
	if e.Destination == "" {
		e.Destination = "microservicio.events"
	}
	if v.IsSet("data.events.publish_timeout") {
		e.PublishTimeout = v.GetDuration("data.events.publish_timeout")
	}
	return e
}
