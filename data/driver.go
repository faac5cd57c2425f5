package data

import (
	"context"
	"database/sql"
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/ncobase/microservicio/data/config"
)

// Drivers register themselves from init() in their own package and are
// looked up by the name used in configuration, the same way database/sql
// resolves its drivers.

// DatabaseDriver defines the contract for relational database drivers.
type DatabaseDriver interface {
	// Name returns the driver identifier used in configuration ("postgres", "sqlite", "mysql")
	Name() string

	// Dialect returns the entgo dialect name used to build statements
	Dialect() string

	// Connect opens a pool for cfg and verifies it with a ping
	Connect(ctx context.Context, cfg *config.DBNode) (*sql.DB, error)

	// Close releases the pool
	Close(db *sql.DB) error

	// Ping verifies the pool can still reach the server
	Ping(ctx context.Context, db *sql.DB) error

	// IsUniqueViolation reports whether err is a unique constraint violation
	IsUniqueViolation(err error) bool
}

// CacheDriver defines the interface for cache/key-value store drivers.
type CacheDriver interface {
	Name() string
	Connect(ctx context.Context, cfg any) (any, error)
	Close(conn any) error
	Ping(ctx context.Context, conn any) error
}

// MessageDriver defines the interface for message broker drivers.
type MessageDriver interface {
	Name() string
	Connect(ctx context.Context, cfg any) (any, error)
	Close(conn any) error
}

type named interface {
	Name() string
}

// registry holds the drivers of one kind.
type registry[D named] struct {
	kind    string
	mu      sync.RWMutex
	drivers map[string]D
}

func newRegistry[D named](kind string) *registry[D] {
	return &registry[D]{kind: kind, drivers: make(map[string]D)}
}

func (r *registry[D]) register(d D) {
	if any(d) == nil {
		panic(fmt.Sprintf("data: %s driver is nil", r.kind))
	}
	name := d.Name()
	if name == "" {
		panic(fmt.Sprintf("data: %s driver name is empty", r.kind))
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, dup := r.drivers[name]; dup {
		panic(fmt.Sprintf("data: %s driver %s registered twice", r.kind, name))
	}
	r.drivers[name] = d
}

func (r *registry[D]) get(name string) (D, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.drivers[name]
	if !ok {
		return d, fmt.Errorf(
			"data: %s driver %q not registered (import _ \"github.com/ncobase/microservicio/data/%s\"), available: %v",
			r.kind, name, name, r.namesLocked(),
		)
	}
	return d, nil
}

func (r *registry[D]) names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.namesLocked()
}

func (r *registry[D]) namesLocked() []string {
	return slices.Sorted(maps.Keys(r.drivers))
}

var (
	databaseDrivers = newRegistry[DatabaseDriver]("database")
	cacheDrivers    = newRegistry[CacheDriver]("cache")
	messageDrivers  = newRegistry[MessageDriver]("message")
)

// RegisterDatabaseDriver makes a database driver available by its name.
// It panics on nil, unnamed or duplicate drivers.
func RegisterDatabaseDriver(d DatabaseDriver) { databaseDrivers.register(d) }

// RegisterCacheDriver makes a cache driver available by its name.
func RegisterCacheDriver(d CacheDriver) { cacheDrivers.register(d) }

// RegisterMessageDriver makes a message broker driver available by its name.
func RegisterMessageDriver(d MessageDriver) { messageDrivers.register(d) }

// GetDatabaseDriver returns the database driver registered as name.
func GetDatabaseDriver(name string) (DatabaseDriver, error) { return databaseDrivers.get(name) }

// GetCacheDriver returns the cache driver registered as name.
func GetCacheDriver(name string) (CacheDriver, error) { return cacheDrivers.get(name) }

// GetMessageDriver returns the message driver registered as name.
func GetMessageDriver(name string) (MessageDriver, error) { return messageDrivers.get(name) }

// ListRegisteredDrivers returns the sorted driver names per kind.
func ListRegisteredDrivers() map[string][]string {
	return map[string][]string{
		"database": databaseDrivers.names(),
		"cache":    cacheDrivers.names(),
		"message":  messageDrivers.names(),
	}
}
