//go:build wireinject
// +build wireinject

package main

import (
	"context"

	"github.com/google/wire"
	"github.com/ncobase/microservicio/config"
	"github.com/ncobase/microservicio/data"
	"github.com/ncobase/microservicio/data/events"
	"github.com/ncobase/microservicio/data/repository"
	"github.com/ncobase/microservicio/handler"
	"github.com/ncobase/microservicio/logging/logger"
	"github.com/ncobase/microservicio/metrics"
	"github.com/ncobase/microservicio/service"
)

// InitializeApp assembles the application from its configuration.
func InitializeApp(ctx context.Context, cfg *config.Config) (*App, func(), error) {
	panic(wire.Build(
		config.ProviderSet,
		logger.ProviderSet,
		data.ProviderSet,
		events.ProviderSet,
		metrics.ProviderSet,
		repository.New,
		service.NewService,
		handler.NewHandler,
		NewApp,
	))
}
