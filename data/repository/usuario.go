package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/ncobase/microservicio/data"
	"github.com/ncobase/microservicio/data/cache"
	"github.com/ncobase/microservicio/logging/logger"
	"github.com/ncobase/microservicio/structs"
)

const usuarioTable = "usuarios"

var usuarioColumns = []string{"id", "nombre", "email", "activo", "fecha_creacion", "fecha_actualizacion"}

// UsuarioRepository defines the interface for usuario data operations.
type UsuarioRepository interface {
	Create(ctx context.Context, u *structs.Usuario) (*structs.Usuario, error)
	GetByID(ctx context.Context, id int64) (*structs.Usuario, error)
	GetByIDForUpdate(ctx context.Context, id int64) (*structs.Usuario, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	List(ctx context.Context, offset, limit int) ([]*structs.Usuario, error)
	Update(ctx context.Context, u *structs.Usuario) (*structs.Usuario, error)
	Delete(ctx context.Context, id int64) error
}

type usuarioRepository struct {
	data   *data.Data
	cache  *cache.Cache[structs.Usuario]
	logger *logger.Logger
}

// NewUsuarioRepository creates a new usuario repository instance.
func NewUsuarioRepository(d *data.Data, logger *logger.Logger) UsuarioRepository {
	prefix, ttl := d.CacheOptions()
	return &usuarioRepository{
		data:   d,
		cache:  cache.NewCache[structs.Usuario](d.Redis, cache.Namespace(prefix, usuarioTable), ttl),
		logger: logger,
	}
}

func (r *usuarioRepository) builder() *entsql.DialectBuilder {
	return entsql.Dialect(r.data.Dialect())
}

func scanUsuario(s rowScanner) (*structs.Usuario, error) {
	var u structs.Usuario
	if err := s.Scan(&u.ID, &u.Nombre, &u.Email, &u.Activo, &u.FechaCreacion, &u.FechaActualizacion); err != nil {
		return nil, err
	}
	u.FechaCreacion = u.FechaCreacion.UTC()
	u.FechaActualizacion = u.FechaActualizacion.UTC()
	return &u, nil
}

// Create inserts u; both timestamps get the same value.
func (r *usuarioRepository) Create(ctx context.Context, u *structs.Usuario) (*structs.Usuario, error) {
	row := *u
	row.FechaCreacion = now()
	row.FechaActualizacion = row.FechaCreacion

	ib := r.builder().Insert(usuarioTable).
		Columns("nombre", "email", "activo", "fecha_creacion", "fecha_actualizacion").
		Values(row.Nombre, row.Email, row.Activo, row.FechaCreacion, row.FechaActualizacion)

	id, err := insert(ctx, r.data, ib)
	if err != nil {
		if r.data.IsUniqueViolation(err) {
			return nil, fmt.Errorf("email %s: %w", row.Email, ErrDuplicate)
		}
		r.logger.Error(ctx, "failed to create usuario", "error", err)
		return nil, fmt.Errorf("failed to create usuario: %w", err)
	}
	row.ID = id

	r.logger.Info(ctx, "usuario created", "id", row.ID)
	return &row, nil
}

// GetByID retrieves a usuario by ID, reading through the cache.
func (r *usuarioRepository) GetByID(ctx context.Context, id int64) (*structs.Usuario, error) {
	key := strconv.FormatInt(id, 10)
	if cached, err := r.cache.Get(ctx, key); err != nil {
		r.logger.Warn(ctx, "usuario cache read failed", "id", id, "error", err)
	} else if cached != nil {
		return cached, nil
	}

	u, err := r.load(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := r.cache.Set(ctx, key, u); err != nil {
		r.logger.Warn(ctx, "usuario cache write failed", "id", id, "error", err)
	}
	return u, nil
}

// GetByIDForUpdate reads a usuario from the store, bypassing the cache.
// Partial updates resolve against this row.
func (r *usuarioRepository) GetByIDForUpdate(ctx context.Context, id int64) (*structs.Usuario, error) {
	return r.load(ctx, id)
}

func (r *usuarioRepository) load(ctx context.Context, id int64) (*structs.Usuario, error) {
	query, args := r.builder().
		Select(usuarioColumns...).
		From(entsql.Table(usuarioTable)).
		Where(entsql.EQ("id", id)).
		Query()

	u, err := scanUsuario(r.data.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		r.logger.Error(ctx, "failed to get usuario", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get usuario: %w", err)
	}
	return u, nil
}

// ExistsByEmail reports whether a usuario already uses email.
func (r *usuarioRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	ok, err := exists(ctx, r.data, usuarioTable, "email", email)
	if err != nil {
		r.logger.Error(ctx, "failed to check usuario email", "error", err)
		return false, fmt.Errorf("failed to check usuario email: %w", err)
	}
	return ok, nil
}

// List retrieves usuarios ordered by id.
func (r *usuarioRepository) List(ctx context.Context, offset, limit int) ([]*structs.Usuario, error) {
	query, args := r.builder().
		Select(usuarioColumns...).
		From(entsql.Table(usuarioTable)).
		OrderBy("id").
		Limit(limit).
		Offset(offset).
		Query()

	rows, err := r.data.DB.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Error(ctx, "failed to list usuarios", "error", err)
		return nil, fmt.Errorf("failed to list usuarios: %w", err)
	}
	defer rows.Close()

	usuarios := make([]*structs.Usuario, 0)
	for rows.Next() {
		u, err := scanUsuario(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan usuario: %w", err)
		}
		usuarios = append(usuarios, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list usuarios: %w", err)
	}
	return usuarios, nil
}

// Update writes every mutable column of u in a single statement. The
// cached entry is dropped before and after the write.
func (r *usuarioRepository) Update(ctx context.Context, u *structs.Usuario) (*structs.Usuario, error) {
	query, args := r.builder().Update(usuarioTable).
		Set("nombre", u.Nombre).
		Set("email", u.Email).
		Set("activo", u.Activo).
		Set("fecha_actualizacion", u.FechaActualizacion).
		Where(entsql.EQ("id", u.ID)).
		Query()

	r.invalidate(ctx, u.ID)
	if err := execAffected(ctx, r.data, query, args); err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			return nil, ErrNotFound
		case r.data.IsUniqueViolation(err):
			return nil, fmt.Errorf("email %s: %w", u.Email, ErrDuplicate)
		}
		r.logger.Error(ctx, "failed to update usuario", "id", u.ID, "error", err)
		return nil, fmt.Errorf("failed to update usuario: %w", err)
	}
	r.invalidate(ctx, u.ID)

	r.logger.Info(ctx, "usuario updated", "id", u.ID)
	return u, nil
}

// Delete deletes a usuario by ID.
func (r *usuarioRepository) Delete(ctx context.Context, id int64) error {
	query, args := r.builder().Delete(usuarioTable).
		Where(entsql.EQ("id", id)).
		Query()

	if err := execAffected(ctx, r.data, query, args); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		r.logger.Error(ctx, "failed to delete usuario", "id", id, "error", err)
		return fmt.Errorf("failed to delete usuario: %w", err)
	}
	r.invalidate(ctx, id)

	r.logger.Info(ctx, "usuario deleted", "id", id)
	return nil
}

func (r *usuarioRepository) invalidate(ctx context.Context, id int64) {
	if err := r.cache.Delete(ctx, strconv.FormatInt(id, 10)); err != nil {
		r.logger.Warn(ctx, "usuario cache invalidation failed", "id", id, "error", err)
	}
}
