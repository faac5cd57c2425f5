package events

import (
	"context"

	"github.com/google/wire"
	"github.com/ncobase/microservicio/data/config"
)

// ProviderSet is the wire provider set for the events package.
var ProviderSet = wire.NewSet(ProvideEvents)

// ProvideEvents wraps New for wire. It never fails: a broker that cannot be
// reached yields the no-op publisher.
func ProvideEvents(ctx context.Context, cfg *config.Config) (Publisher, func(), error) {
	p, cleanup := New(ctx, cfg)
	return p, cleanup, nil
}
