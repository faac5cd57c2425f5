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

const productoTable = "productos"

var productoColumns = []string{"id", "nombre", "descripcion", "precio", "stock", "fecha_creacion", "fecha_actualizacion"}

// ProductoRepository defines the interface for producto data operations.
type ProductoRepository interface {
	Create(ctx context.Context, p *structs.Producto) (*structs.Producto, error)
	GetByID(ctx context.Context, id int64) (*structs.Producto, error)
	GetByIDForUpdate(ctx context.Context, id int64) (*structs.Producto, error)
	List(ctx context.Context, offset, limit int) ([]*structs.Producto, error)
	Update(ctx context.Context, p *structs.Producto) (*structs.Producto, error)
	Delete(ctx context.Context, id int64) error
}

type productoRepository struct {
	data   *data.Data
	cache  *cache.Cache[structs.Producto]
	logger *logger.Logger
}

// NewProductoRepository creates a new producto repository instance.
func NewProductoRepository(d *data.Data, logger *logger.Logger) ProductoRepository {
	prefix, ttl := d.CacheOptions()
	return &productoRepository{
		data:   d,
		cache:  cache.NewCache[structs.Producto](d.Redis, cache.Namespace(prefix, productoTable), ttl),
		logger: logger,
	}
}

func (r *productoRepository) builder() *entsql.DialectBuilder {
	return entsql.Dialect(r.data.Dialect())
}

func scanProducto(s rowScanner) (*structs.Producto, error) {
	var (
		p           structs.Producto
		descripcion sql.NullString
	)
	if err := s.Scan(&p.ID, &p.Nombre, &descripcion, &p.Precio, &p.Stock, &p.FechaCreacion, &p.FechaActualizacion); err != nil {
		return nil, err
	}
	if descripcion.Valid {
		p.Descripcion = &descripcion.String
	}
	p.FechaCreacion = p.FechaCreacion.UTC()
	p.FechaActualizacion = p.FechaActualizacion.UTC()
	return &p, nil
}

// nullable maps a nil pointer to SQL NULL.
func nullable(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

// Create inserts p; both timestamps get the same value.
func (r *productoRepository) Create(ctx context.Context, p *structs.Producto) (*structs.Producto, error) {
	row := *p
	row.FechaCreacion = now()
	row.FechaActualizacion = row.FechaCreacion

	ib := r.builder().Insert(productoTable).
		Columns("nombre", "descripcion", "precio", "stock", "fecha_creacion", "fecha_actualizacion").
		Values(row.Nombre, nullable(row.Descripcion), row.Precio, row.Stock, row.FechaCreacion, row.FechaActualizacion)

	id, err := insert(ctx, r.data, ib)
	if err != nil {
		r.logger.Error(ctx, "failed to create producto", "error", err)
		return nil, fmt.Errorf("failed to create producto: %w", err)
	}
	row.ID = id

	r.logger.Info(ctx, "producto created", "id", row.ID)
	return &row, nil
}

// GetByID retrieves a producto by ID, reading through the cache.
func (r *productoRepository) GetByID(ctx context.Context, id int64) (*structs.Producto, error) {
	key := strconv.FormatInt(id, 10)
	if cached, err := r.cache.Get(ctx, key); err != nil {
		r.logger.Warn(ctx, "producto cache read failed", "id", id, "error", err)
	} else if cached != nil {
		return cached, nil
	}

	p, err := r.load(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := r.cache.Set(ctx, key, p); err != nil {
		r.logger.Warn(ctx, "producto cache write failed", "id", id, "error", err)
	}
	return p, nil
}

// GetByIDForUpdate reads a producto from the store, bypassing the cache.
// Partial updates resolve against this row.
func (r *productoRepository) GetByIDForUpdate(ctx context.Context, id int64) (*structs.Producto, error) {
	return r.load(ctx, id)
}

func (r *productoRepository) load(ctx context.Context, id int64) (*structs.Producto, error) {
	query, args := r.builder().
		Select(productoColumns...).
		From(entsql.Table(productoTable)).
		Where(entsql.EQ("id", id)).
		Query()

	p, err := scanProducto(r.data.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		r.logger.Error(ctx, "failed to get producto", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get producto: %w", err)
	}
	return p, nil
}

// List retrieves productos ordered by id.
func (r *productoRepository) List(ctx context.Context, offset, limit int) ([]*structs.Producto, error) {
	query, args := r.builder().
		Select(productoColumns...).
		From(entsql.Table(productoTable)).
		OrderBy("id").
		Limit(limit).
		Offset(offset).
		Query()

	rows, err := r.data.DB.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Error(ctx, "failed to list productos", "error", err)
		return nil, fmt.Errorf("failed to list productos: %w", err)
	}
	defer rows.Close()

	productos := make([]*structs.Producto, 0)
	for rows.Next() {
		p, err := scanProducto(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan producto: %w", err)
		}
		productos = append(productos, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list productos: %w", err)
	}
	return productos, nil
}

// Update writes every mutable column of p in a single statement. The
// cached entry is dropped before and after the write.
func (r *productoRepository) Update(ctx context.Context, p *structs.Producto) (*structs.Producto, error) {
	ub := r.builder().Update(productoTable).
		Set("nombre", p.Nombre).
		Set("precio", p.Precio).
		Set("stock", p.Stock).
		Set("fecha_actualizacion", p.FechaActualizacion).
		Where(entsql.EQ("id", p.ID))
	if p.Descripcion == nil {
		ub.SetNull("descripcion")
	} else {
		ub.Set("descripcion", *p.Descripcion)
	}
	query, args := ub.Query()

	r.invalidate(ctx, p.ID)
	if err := execAffected(ctx, r.data, query, args); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		r.logger.Error(ctx, "failed to update producto", "id", p.ID, "error", err)
		return nil, fmt.Errorf("failed to update producto: %w", err)
	}
	r.invalidate(ctx, p.ID)

	r.logger.Info(ctx, "producto updated", "id", p.ID)
	return p, nil
}

// Delete deletes a producto by ID.
func (r *productoRepository) Delete(ctx context.Context, id int64) error {
	query, args := r.builder().Delete(productoTable).
		Where(entsql.EQ("id", id)).
		Query()

	if err := execAffected(ctx, r.data, query, args); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		r.logger.Error(ctx, "failed to delete producto", "id", id, "error", err)
		return fmt.Errorf("failed to delete producto: %w", err)
	}
	r.invalidate(ctx, id)

	r.logger.Info(ctx, "producto deleted", "id", id)
	return nil
}

func (r *productoRepository) invalidate(ctx context.Context, id int64) {
	if err := r.cache.Delete(ctx, strconv.FormatInt(id, 10)); err != nil {
		r.logger.Warn(ctx, "producto cache invalidation failed", "id", id, "error", err)
	}
}
