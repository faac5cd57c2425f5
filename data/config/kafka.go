package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Kafka kafka config struct
type Kafka struct {
	Brokers        []string      `json:"brokers" yaml:"brokers"`
	ClientID       string        `json:"client_id" yaml:"client_id"`
	Topic          string        `json:"topic" yaml:"topic"`
	WriteTimeout   time.Duration `json:"write_timeout" yaml:"write_timeout"`
	ConnectTimeout time.Duration `json:"connect_timeout" yaml:"connect_timeout"`
}

func getKafkaConfigs(v *viper.Viper) *Kafka {
	var brokers []string
	switch raw := v.Get("data.kafka.brokers").(type) {
	case string:
		for _, b := range strings.Split(raw, ",") {
			if b = strings.TrimSpace(b); b != "" {
				brokers = append(brokers, b)
			}
		}
	default:
		brokers = v.GetStringSlice("data.kafka.brokers")
	}

	return &Kafka{
		Brokers:        brokers,
		ClientID:       v.GetString("data.kafka.client_id"),
		Topic:          v.GetString("data.kafka.topic"),
		WriteTimeout:   v.GetDuration("data.kafka.write_timeout"),
		ConnectTimeout: v.GetDuration("data.kafka.connect_timeout"),
	}
}
