package data

import (
	"context"

	"github.com/google/wire"
	"github.com/ncobase/microservicio/data/config"
	"github.com/ncobase/microservicio/logging/logger"
)

// ProviderSet is the wire provider set for the data package.
var ProviderSet = wire.NewSet(ProvideData)

// ProvideData opens the data layer and, when data.database.migrate is
// enabled, creates missing tables. A failed migration is logged and the
// service keeps starting; requests then surface the store error.
func ProvideData(ctx context.Context, cfg *config.Config) (*Data, func(), error) {
	d, cleanup, err := New(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	if cfg.Database.Migrate {
		if err := d.Migrate(ctx); err != nil {
			logger.Error(ctx, "database initialization failed", "error", err)
		} else {
			logger.Info(ctx, "database initialized", "driver", d.Driver.Name())
		}
	}
	return d, cleanup, nil
}
