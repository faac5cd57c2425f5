package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// envBindings maps config keys to the environment variables the
// deployment manifests set.
var envBindings = map[string]string{
	"app_name":    "APP_NAME",
	"app_version": "API_VERSION",
	"debug":       "DEBUG",

	"server.host":                  "SERVER_HOST",
	"server.port":                  "SERVER_PORT",
	"server.cors_origins":          "CORS_ORIGINS",
	"server.max_page_limit":        "SERVER_MAX_PAGE_LIMIT",
	"server.health_check_database": "HEALTH_CHECK_DATABASE",
	"server.metrics":               "METRICS_ENABLED",

	"data.database.master.driver": "DB_DRIVER",
	"data.database.master.source": "DB_SOURCE",
	"data.database.user":          "DB_USER",
	"data.database.password":      "DB_PASSWORD",
	"data.database.host":          "DB_HOST",
	"data.database.port":          "DB_PORT",
	"data.database.name":          "DB_NAME",
	"data.database.migrate":       "DB_MIGRATE",

	"data.redis.addr":     "REDIS_ADDR",
	"data.redis.password": "REDIS_PASSWORD",
	"data.kafka.brokers":  "KAFKA_BROKERS",
	"data.rabbitmq.url":   "RABBITMQ_URL",
	"data.events.driver":  "EVENTS_DRIVER",

	"sentry.dsn":         "SENTRY_DSN",
	"sentry.environment": "SENTRY_ENVIRONMENT",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app_name", "Microservicio API")
	v.SetDefault("app_version", "1.0.0")
	v.SetDefault("debug", false)

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8000)
	v.SetDefault("server.cors_origins", "*")
	v.SetDefault("server.max_page_limit", 0)
	v.SetDefault("server.health_check_database", false)
	v.SetDefault("server.metrics", true)

	v.SetDefault("data.database.master.driver", "postgres")
	v.SetDefault("data.database.user", "postgres")
	v.SetDefault("data.database.password", "postgres")
	v.SetDefault("data.database.host", "localhost")
	v.SetDefault("data.database.port", 5432)
	v.SetDefault("data.database.name", "microservicio")
	v.SetDefault("data.database.migrate", true)
}

func bindEnv(v *viper.Viper) error {
	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}
	return nil
}
