package metrics

import (
	"github.com/google/wire"
	"github.com/ncobase/microservicio/data"
)

// ProviderSet is the wire provider set for the metrics package.
var ProviderSet = wire.NewSet(ProvideMetrics)

// ProvideMetrics creates the metrics with the database pool collector.
func ProvideMetrics(d *data.Data) *Metrics {
	if d == nil {
		return New(nil)
	}
	return New(d.DB)
}
