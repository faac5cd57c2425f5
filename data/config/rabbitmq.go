package config

import (
	"time"

	"github.com/spf13/viper"
)

// RabbitMQ holds the broker connection used by the rabbitmq events driver.
type RabbitMQ struct {
	URL      string `json:"url" yaml:"url"`
	Exchange string `json:"exchange" yaml:"exchange"`
	// ConnectionTimeout bounds the TCP dial; zero keeps the library default.
	ConnectionTimeout time.Duration `json:"connection_timeout" yaml:"connection_timeout"`
	HeartbeatInterval time.Duration `json:"heartbeat_interval" yaml:"heartbeat_interval"`
}

func getRabbitMQConfigs(v *viper.Viper) *RabbitMQ {
	v.SetDefault("data.rabbitmq.exchange", "microservicio")
	v.SetDefault("data.rabbitmq.heartbeat_interval", 10*time.Second)

	return &RabbitMQ{
		URL:               v.GetString("data.rabbitmq.url"),
		Exchange:          v.GetString("data.rabbitmq.exchange"),
		ConnectionTimeout: v.GetDuration("data.rabbitmq.connection_timeout"),
		HeartbeatInterval: v.GetDuration("data.rabbitmq.heartbeat_interval"),
	}
}
