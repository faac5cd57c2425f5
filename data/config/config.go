package config

import (
	"github.com/spf13/viper"
)

// Config data config struct
type Config struct {
	*Database `yaml:"database" json:"database"`
	*Redis    `yaml:"redis" json:"redis"`
	*RabbitMQ `yaml:"rabbitmq" json:"rabbitmq"`
	*Kafka    `yaml:"kafka" json:"kafka"`
	*Events   `yaml:"events" json:"events"`
}

// GetConfig returns data config
func GetConfig(v *viper.Viper) *Config {
	return &Config{
		Database: getDatabaseConfig(v),
		Redis:    getRedisConfigs(v),
		RabbitMQ: getRabbitMQConfigs(v),
		Kafka:    getKafkaConfigs(v),
		Events:   getEventsConfig(v),
	}
}
