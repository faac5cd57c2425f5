package config

import "github.com/spf13/viper"

// Sentry configures error reporting. An empty DSN disables it.
type Sentry struct {
	Dsn         string  `json:"dsn" yaml:"dsn"`
	Environment string  `json:"environment" yaml:"environment"`
	SampleRate  float64 `json:"sample_rate" yaml:"sample_rate"`
	Debug       bool    `json:"debug" yaml:"debug"`
}

func (s *Sentry) Enabled() bool {
	return s != nil && s.Dsn != ""
}

// getSentryConfig defaults the environment from the app debug flag.
func getSentryConfig(v *viper.Viper) *Sentry {
	env := "production"
	if v.GetBool("debug") {
		env = "development"
	}
	return &Sentry{
		Dsn:         v.GetString("sentry.dsn"),
		Environment: getStringOrDefault(v, "sentry.environment", env),
		SampleRate:  getFloat64OrDefault(v, "sentry.sample_rate", 1.0),
		Debug:       v.GetBool("sentry.debug"),
	}
}
