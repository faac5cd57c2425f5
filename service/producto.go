package service

import (
	"context"
	"errors"
	"time"

	"github.com/ncobase/microservicio/data/events"
	"github.com/ncobase/microservicio/data/repository"
	"github.com/ncobase/microservicio/logging/logger"
	"github.com/ncobase/microservicio/paging"
	"github.com/ncobase/microservicio/structs"
)

const productoResource = "producto"

// ProductoService handles producto-related business logic.
type ProductoService struct {
	repo      repository.ProductoRepository
	publisher events.Publisher
	logger    *logger.Logger
	now       func() time.Time
}

// NewProductoService creates a new producto service.
func NewProductoService(repo repository.ProductoRepository, publisher events.Publisher, logger *logger.Logger) *ProductoService {
	return &ProductoService{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
		now:       clock,
	}
}

// List returns a page of productos ordered by id.
func (s *ProductoService) List(ctx context.Context, params paging.Params) ([]*structs.Producto, error) {
	return s.repo.List(ctx, params.Skip, params.Limit)
}

// Get returns the producto with id.
func (s *ProductoService) Get(ctx context.Context, id int64) (*structs.Producto, error) {
	p, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, notFound("Producto", id)
	}
	return p, err
}

// Create stores a new producto.
func (s *ProductoService) Create(ctx context.Context, req *structs.ProductoCreate) (*structs.Producto, error) {
	p, err := s.repo.Create(ctx, req.Build())
	if err != nil {
		return nil, err
	}

	publish(ctx, s.publisher, s.logger, events.NewEvent(ctx, productoResource, events.Created, p.ID, p))
	return p, nil
}

// Update applies a partial update. Descripcion may be cleared with null.
func (s *ProductoService) Update(ctx context.Context, id int64, req *structs.ProductoUpdate) (*structs.Producto, error) {
	if fields := req.Validate(); len(fields) > 0 {
		return nil, invalid(fields)
	}

	p, err := s.repo.GetByIDForUpdate(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, notFound("Producto", id)
	}
	if err != nil {
		return nil, err
	}
	if !applyProductoUpdate(p, req, s.now()) {
		return p, nil
	}

	updated, err := s.repo.Update(ctx, p)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, notFound("Producto", id)
	}
	if err != nil {
		return nil, err
	}

	publish(ctx, s.publisher, s.logger, events.NewEvent(ctx, productoResource, events.Updated, updated.ID, updated))
	return updated, nil
}

// Delete removes the producto with id.
func (s *ProductoService) Delete(ctx context.Context, id int64) error {
	err := s.repo.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return notFound("Producto", id)
	}
	if err != nil {
		return err
	}

	publish(ctx, s.publisher, s.logger, events.NewEvent(ctx, productoResource, events.Deleted, id, nil))
	return nil
}

// applyProductoUpdate copies the supplied fields of req onto p and stamps
// fecha_actualizacion. It reports whether any field was supplied.
func applyProductoUpdate(p *structs.Producto, req *structs.ProductoUpdate, now time.Time) bool {
	if req.Empty() {
		return false
	}
	if req.Nombre.Present() {
		p.Nombre = req.Nombre.Value
	}
	if req.Descripcion.Set {
		p.Descripcion = req.Descripcion.Ptr()
	}
	if req.Precio.Present() {
		p.Precio = req.Precio.Value
	}
	if req.Stock.Present() {
		p.Stock = req.Stock.Value
	}
	p.FechaActualizacion = now
	return true
}
