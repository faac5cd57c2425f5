package logger

import (
	"github.com/google/wire"
	"github.com/ncobase/microservicio/logging/logger/config"
	"github.com/ncobase/microservicio/version"
)

// ProviderSet is the wire provider set for the logger package.
var ProviderSet = wire.NewSet(ProvideLogger)

// ProvideLogger configures the process wide logger and returns it.
func ProvideLogger(cfg *config.Config) (*Logger, func(), error) {
	l := StdLogger()
	l.SetVersion(version.Version)
	cleanup, err := l.Init(cfg)
	if err != nil {
		return nil, nil, err
	}
	return l, cleanup, nil
}
