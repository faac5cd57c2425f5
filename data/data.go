package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/ncobase/microservicio/data/config"
	"github.com/ncobase/microservicio/logging/logger"
	"github.com/redis/go-redis/v9"
)

// Data represents the data layer implementation
type Data struct {
	DB     *sql.DB
	Driver DatabaseDriver
	Redis  *redis.Client

	cfg    *config.Config
	mu     sync.RWMutex
	closed bool
}

// New creates the data layer: the relational pool is mandatory, redis is
// optional and only logged when unreachable.
func New(ctx context.Context, cfg *config.Config) (*Data, func(), error) {
	if cfg == nil || cfg.Database == nil || cfg.Database.Master == nil {
		return nil, nil, errors.New("data: database configuration is missing")
	}

	driver, err := GetDatabaseDriver(cfg.Database.Master.Driver)
	if err != nil {
		return nil, nil, err
	}

	db, err := driver.Connect(ctx, cfg.Database.Master)
	if err != nil {
		return nil, nil, err
	}

	d := &Data{DB: db, Driver: driver, cfg: cfg}

	if cfg.Redis.Enabled() {
		d.Redis = connectRedis(ctx, cfg.Redis)
	}

	cleanup := func() {
		if errs := d.Close(); len(errs) > 0 {
			logger.Error(context.Background(), "data cleanup errors", "errors", fmt.Sprint(errs))
		}
	}
	return d, cleanup, nil
}

// NewWithDB wraps an already opened pool, mostly for tests
func NewWithDB(db *sql.DB, driver DatabaseDriver) *Data {
	return &Data{DB: db, Driver: driver}
}

func connectRedis(ctx context.Context, cfg *config.Redis) *redis.Client {
	driver, err := GetCacheDriver("redis")
	if err != nil {
		logger.Warn(ctx, "redis configured but driver not registered", "error", err)
		return nil
	}
	conn, err := driver.Connect(ctx, cfg)
	if err != nil {
		logger.Warn(ctx, "redis unavailable, cache disabled", "addr", cfg.Addr, "error", err)
		return nil
	}
	rc, ok := conn.(*redis.Client)
	if !ok {
		_ = driver.Close(conn)
		return nil
	}
	return rc
}

// CacheOptions returns the redis key prefix and ttl for entity caches
func (d *Data) CacheOptions() (string, time.Duration) {
	if d.cfg == nil || d.cfg.Redis == nil {
		return "", 5 * time.Minute
	}
	return d.cfg.Redis.Prefix, d.cfg.Redis.TTL
}

// Dialect returns the entgo dialect of the master pool
func (d *Data) Dialect() string {
	return d.Driver.Dialect()
}

// IsUniqueViolation reports whether err is a unique constraint violation
// for the configured driver.
func (d *Data) IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	return d.Driver.IsUniqueViolation(err)
}

// Ping checks the master pool
func (d *Data) Ping(ctx context.Context) error {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		return errors.New("data layer is closed")
	}
	return d.Driver.Ping(ctx, d.DB)
}

// Close closes all connections, it is safe to call more than once
func (d *Data) Close() (errs []error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return nil
	}
	d.closed = true

	if d.Redis != nil {
		if err := d.Redis.Close(); err != nil {
			errs = append(errs, fmt.Errorf("redis close error: %w", err))
		}
	}
	if d.DB != nil {
		if err := d.Driver.Close(d.DB); err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}
