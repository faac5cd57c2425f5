// Package redis registers the go-redis driver that backs the entity cache.
//
//	import _ "github.com/ncobase/microservicio/data/redis"
package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/ncobase/microservicio/data"
	"github.com/ncobase/microservicio/data/config"
	"github.com/redis/go-redis/v9"
)

var errConnType = errors.New("redis: connection is not a *redis.Client")

type driver struct{}

func (driver) Name() string { return "redis" }

// Connect dials cfg and pings it. The client name is the cache key prefix
// so the connections are recognizable in CLIENT LIST.
func (driver) Connect(ctx context.Context, cfg any) (any, error) {
	rc, ok := cfg.(*config.Redis)
	if !ok {
		return nil, fmt.Errorf("redis: unexpected config %T", cfg)
	}
	if !rc.Enabled() {
		return nil, errors.New("redis: addr is not configured")
	}

	client := redis.NewClient(&redis.Options{
		Addr:         rc.Addr,
		ClientName:   rc.Prefix,
		Username:     rc.Username,
		Password:     rc.Password,
		DB:           rc.Db,
		DialTimeout:  rc.DialTimeout,
		ReadTimeout:  rc.ReadTimeout,
		WriteTimeout: rc.WriteTimeout,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis: ping %s: %w", rc.Addr, err)
	}
	return client, nil
}

func (driver) Close(conn any) error {
	client, ok := conn.(*redis.Client)
	if !ok {
		return errConnType
	}
	return client.Close()
}

func (driver) Ping(ctx context.Context, conn any) error {
	client, ok := conn.(*redis.Client)
	if !ok {
		return errConnType
	}
	return client.Ping(ctx).Err()
}

func init() {
	data.RegisterCacheDriver(driver{})
}
