// Package service contains the business rules for usuarios and productos.
package service

import (
	"context"
	"time"

	"github.com/ncobase/microservicio/data/events"
	"github.com/ncobase/microservicio/data/repository"
	"github.com/ncobase/microservicio/logging/logger"
)

// Service aggregates all business logic services.
type Service struct {
	Usuario  *UsuarioService
	Producto *ProductoService
}

// NewService creates a new service instance with all sub-services initialized.
func NewService(repo *repository.Repository, publisher events.Publisher, logger *logger.Logger) *Service {
	if publisher == nil {
		publisher = events.Noop{}
	}
	return &Service{
		Usuario:  NewUsuarioService(repo.Usuario, publisher, logger),
		Producto: NewProductoService(repo.Producto, publisher, logger),
	}
}

// clock returns the update timestamp.
func clock() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// publish sends a lifecycle event; failures are only logged.
func publish(ctx context.Context, p events.Publisher, l *logger.Logger, e events.Event) {
	if err := p.Publish(ctx, e); err != nil {
		l.Warn(ctx, "failed to publish event", "type", e.Type, "id", e.ResourceID, "error", err)
	}
}
