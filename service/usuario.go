package service

import (
	"context"
	"errors"
	"time"

	"github.com/ncobase/microservicio/data/events"
	"github.com/ncobase/microservicio/data/repository"
	"github.com/ncobase/microservicio/ecode"
	"github.com/ncobase/microservicio/logging/logger"
	"github.com/ncobase/microservicio/paging"
	"github.com/ncobase/microservicio/structs"
)

const usuarioResource = "usuario"

// UsuarioService handles usuario-related business logic.
type UsuarioService struct {
	repo      repository.UsuarioRepository
	publisher events.Publisher
	logger    *logger.Logger
	now       func() time.Time
}

// NewUsuarioService creates a new usuario service.
func NewUsuarioService(repo repository.UsuarioRepository, publisher events.Publisher, logger *logger.Logger) *UsuarioService {
	return &UsuarioService{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
		now:       clock,
	}
}

// List returns a page of usuarios ordered by id.
func (s *UsuarioService) List(ctx context.Context, params paging.Params) ([]*structs.Usuario, error) {
	return s.repo.List(ctx, params.Skip, params.Limit)
}

// Get returns the usuario with id.
func (s *UsuarioService) Get(ctx context.Context, id int64) (*structs.Usuario, error) {
	u, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, notFound("Usuario", id)
	}
	return u, err
}

// Create registers a new usuario; the email must not be in use.
func (s *UsuarioService) Create(ctx context.Context, req *structs.UsuarioCreate) (*structs.Usuario, error) {
	taken, err := s.repo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, conflict(ecode.MsgEmailTaken)
	}

	u, err := s.repo.Create(ctx, req.Build())
	if errors.Is(err, repository.ErrDuplicate) {
		return nil, conflict(ecode.MsgEmailTaken)
	}
	if err != nil {
		return nil, err
	}

	publish(ctx, s.publisher, s.logger, events.NewEvent(ctx, usuarioResource, events.Created, u.ID, u))
	return u, nil
}

// Update applies a partial update. Only supplied fields change; a request
// without fields returns the stored usuario untouched.
func (s *UsuarioService) Update(ctx context.Context, id int64, req *structs.UsuarioUpdate) (*structs.Usuario, error) {
	if fields := req.Validate(); len(fields) > 0 {
		return nil, invalid(fields)
	}

	u, err := s.repo.GetByIDForUpdate(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, notFound("Usuario", id)
	}
	if err != nil {
		return nil, err
	}
	if !applyUsuarioUpdate(u, req, s.now()) {
		return u, nil
	}

	updated, err := s.repo.Update(ctx, u)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return nil, notFound("Usuario", id)
	case errors.Is(err, repository.ErrDuplicate):
		return nil, conflict(ecode.MsgEmailTaken)
	case err != nil:
		return nil, err
	}

	publish(ctx, s.publisher, s.logger, events.NewEvent(ctx, usuarioResource, events.Updated, updated.ID, updated))
	return updated, nil
}

// Delete removes the usuario with id.
func (s *UsuarioService) Delete(ctx context.Context, id int64) error {
	err := s.repo.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return notFound("Usuario", id)
	}
	if err != nil {
		return err
	}

	publish(ctx, s.publisher, s.logger, events.NewEvent(ctx, usuarioResource, events.Deleted, id, nil))
	return nil
}

// applyUsuarioUpdate copies the supplied fields of req onto u and stamps
// fecha_actualizacion. It reports whether any field was supplied.
func applyUsuarioUpdate(u *structs.Usuario, req *structs.UsuarioUpdate, now time.Time) bool {
	if req.Empty() {
		return false
	}
	if req.Nombre.Present() {
		u.Nombre = req.Nombre.Value
	}
	if req.Email.Present() {
		u.Email = req.Email.Value
	}
	if req.Activo.Present() {
		u.Activo = req.Activo.Value
	}
	u.FechaActualizacion = now
	return true
}
