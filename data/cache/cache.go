// Package cache is a small JSON read-through cache on top of go-redis.
// A Cache built without a client is disabled: reads miss and writes are
// no-ops, so callers never branch on whether redis is configured.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache stores values of T as JSON under <prefix>:<field>
type Cache[T any] struct {
	rc     *redis.Client
	prefix string
	ttl    time.Duration
}

// NewCache creates a new Cache instance; rc may be nil
func NewCache[T any](rc *redis.Client, prefix string, ttl time.Duration) *Cache[T] {
	return &Cache[T]{rc: rc, prefix: prefix, ttl: ttl}
}

// Namespace builds a key prefix from an application name and a resource,
// e.g. ("Microservicio API", "usuarios") -> "microservicio-api:usuarios"
func Namespace(app, resource string) string {
	app = strings.ToLower(strings.Join(strings.Fields(app), "-"))
	if app == "" {
		return resource
	}
	return app + ":" + resource
}

// Enabled reports whether a redis client is attached
func (c *Cache[T]) Enabled() bool {
	return c != nil && c.rc != nil
}

// Key returns the full redis key for field
func (c *Cache[T]) Key(field string) string {
	if c.prefix == "" {
		return field
	}
	return fmt.Sprintf("%s:%s", c.prefix, field)
}

// Get retrieves a single item, a miss returns (nil, nil)
func (c *Cache[T]) Get(ctx context.Context, field string) (*T, error) {
	if !c.Enabled() {
		return nil, nil
	}

	result, err := c.rc.Get(ctx, c.Key(field)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get cache: %w", err)
	}

	var row T
	if err := json.Unmarshal(result, &row); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cache data: %w", err)
	}
	return &row, nil
}

// Set saves a single item with the cache ttl
func (c *Cache[T]) Set(ctx context.Context, field string, data *T) error {
	if !c.Enabled() || data == nil {
		return nil
	}

	bytes, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal data: %w", err)
	}
	if err := c.rc.Set(ctx, c.Key(field), bytes, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set cache: %w", err)
	}
	return nil
}

// Delete removes a single item
func (c *Cache[T]) Delete(ctx context.Context, field string) error {
	if !c.Enabled() {
		return nil
	}
	if err := c.rc.Del(ctx, c.Key(field)).Err(); err != nil {
		return fmt.Errorf("failed to delete cache: %w", err)
	}
	return nil
}
