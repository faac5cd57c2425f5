// Package mysql provides the MySQL driver for the data layer.
//
// It uses github.com/go-sql-driver/mysql and registers itself when imported:
//
//	import _ "github.com/ncobase/microservicio/data/mysql"
package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"entgo.io/ent/dialect"
	"github.com/go-sql-driver/mysql"
	"github.com/ncobase/microservicio/data"
	"github.com/ncobase/microservicio/data/config"
)

// erDupEntry is ER_DUP_ENTRY
const erDupEntry = 1062

// driver implements data.DatabaseDriver for MySQL.
type driver struct{}

// Name returns the driver identifier used in configuration files.
func (d *driver) Name() string {
	return "mysql"
}

// Dialect returns the entgo dialect name.
func (d *driver) Dialect() string {
	return dialect.MySQL
}

// Connect opens a pool for cfg.Source and verifies it with a ping.
// The DSN must carry parseTime=true so DATETIME columns scan into time.Time:
//
//	user:password@tcp(localhost:3306)/dbname?parseTime=true
func (d *driver) Connect(ctx context.Context, cfg *config.DBNode) (*sql.DB, error) {
	if cfg == nil || cfg.Source == "" {
		return nil, fmt.Errorf("mysql: connection source is empty")
	}

	dsn, err := mysql.ParseDSN(cfg.Source)
	if err != nil {
		return nil, fmt.Errorf("mysql: invalid source: %w", err)
	}
	dsn.ParseTime = true
	// RowsAffected reports matched rows, not changed rows
	dsn.ClientFoundRows = true

	db, err := sql.Open("mysql", dsn.FormatDSN())
	if err != nil {
		return nil, fmt.Errorf("mysql: failed to open connection: %w", err)
	}

	if cfg.MaxIdleConn > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConn)
	}
	if cfg.MaxOpenConn > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConn)
	}
	if cfg.ConnMaxLifeTime > 0 {
		db.SetConnMaxLifetime(cfg.ConnMaxLifeTime)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("mysql: failed to ping database: %w", err)
	}

	return db, nil
}

// Close terminates the pool.
func (d *driver) Close(db *sql.DB) error {
	if err := db.Close(); err != nil {
		return fmt.Errorf("mysql: failed to close connection: %w", err)
	}
	return nil
}

// Ping verifies the pool is alive.
func (d *driver) Ping(ctx context.Context, db *sql.DB) error {
	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("mysql: ping failed: %w", err)
	}
	return nil
}

// IsUniqueViolation reports ER_DUP_ENTRY.
func (d *driver) IsUniqueViolation(err error) bool {
	var myErr *mysql.MySQLError
	return errors.As(err, &myErr) && myErr.Number == erDupEntry
}

func init() {
	data.RegisterDatabaseDriver(&driver{})
}
