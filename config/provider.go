package config

import (
	"github.com/google/wire"
	dc "github.com/ncobase/microservicio/data/config"
	lc "github.com/ncobase/microservicio/logging/logger/config"
)

// ProviderSet is the wire provider set for the config package.
// The root *Config is supplied by the caller; the sub-configurations
// are extracted from it.
var ProviderSet = wire.NewSet(
	ProvideServerConfig,
	ProvideLoggerConfig,
	ProvideDataConfig,
	ProvideSentryConfig,
)

// ProvideServerConfig provides the http server configuration.
func ProvideServerConfig(cfg *Config) *Server {
	return cfg.Server
}

// ProvideLoggerConfig provides the logger configuration.
func ProvideLoggerConfig(cfg *Config) *lc.Config {
	return cfg.Logger
}

// ProvideDataConfig provides the data layer configuration.
func ProvideDataConfig(cfg *Config) *dc.Config {
	return cfg.Data
}

// ProvideSentryConfig provides the sentry configuration.
func ProvideSentryConfig(cfg *Config) *Sentry {
	return cfg.Sentry
}
