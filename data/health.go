package data

import (
	"context"
	"time"

	"github.com/ncobase/microservicio/logging/logger"
)

// Health reports the state of every configured backend. Errors are logged,
// never returned in the report.
func (d *Data) Health(ctx context.Context) map[string]any {
	services := map[string]any{}
	healthy := true

	start := time.Now()
	if err := d.Ping(ctx); err != nil {
		healthy = false
		logger.Warn(ctx, "database health check failed", "error", err)
		services["database"] = map[string]any{"status": "unhealthy", "driver": d.Driver.Name()}
	} else {
		services["database"] = map[string]any{
			"status":  "healthy",
			"driver":  d.Driver.Name(),
			"latency": time.Since(start).String(),
		}
	}

	if d.Redis != nil {
		start = time.Now()
		if err := d.Redis.Ping(ctx).Err(); err != nil {
			logger.Warn(ctx, "redis health check failed", "error", err)
			services["redis"] = map[string]any{"status": "unhealthy"}
		} else {
			services["redis"] = map[string]any{"status": "healthy", "latency": time.Since(start).String()}
		}
	}

	status := "healthy"
	if !healthy {
		status = "unhealthy"
	}
	return map[string]any{
		"status":    status,
		"timestamp": time.Now().UTC(),
		"services":  services,
	}
}
