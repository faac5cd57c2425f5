// Package repository stores usuarios and productos through the dialect
// aware SQL builder of entgo, so the same code runs on PostgreSQL, MySQL
// and SQLite.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/ncobase/microservicio/data"
	"github.com/ncobase/microservicio/logging/logger"
)

var (
	// ErrNotFound is returned when no row matches the id.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when a write violates a unique constraint.
	ErrDuplicate = errors.New("duplicate record")
)

// Repository groups the entity repositories.
type Repository struct {
	Usuario  UsuarioRepository
	Producto ProductoRepository
}

// New creates all repositories over d.
func New(d *data.Data, logger *logger.Logger) *Repository {
	return &Repository{
		Usuario:  NewUsuarioRepository(d, logger),
		Producto: NewProductoRepository(d, logger),
	}
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// now returns the timestamp written to fecha_* columns. Microsecond
// precision is what every supported column type keeps.
func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// insert runs ib and returns the generated id. PostgreSQL and SQLite use
// RETURNING, MySQL reports it through LastInsertId.
func insert(ctx context.Context, d *data.Data, ib *entsql.InsertBuilder) (int64, error) {
	if d.Dialect() == dialect.MySQL {
		query, args := ib.Query()
		res, err := d.DB.ExecContext(ctx, query, args...)
		if err != nil {
			return 0, err
		}
		return res.LastInsertId()
	}

	query, args := ib.Returning("id").Query()
	var id int64
	if err := d.DB.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

// execAffected runs a write and fails with ErrNotFound when no row matched.
func execAffected(ctx context.Context, d *data.Data, query string, args []any) error {
	res, err := d.DB.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// exists reports whether a row matches column = value.
func exists(ctx context.Context, d *data.Data, table, column string, value any) (bool, error) {
	query, args := entsql.Dialect(d.Dialect()).
		Select("id").
		From(entsql.Table(table)).
		Where(entsql.EQ(column, value)).
		Limit(1).
		Query()

	var id int64
	err := d.DB.QueryRowContext(ctx, query, args...).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
