package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

type item struct {
	ID     int64  `json:"id"`
	Nombre string `json:"nombre"`
}

func newTestCache(t *testing.T) (*Cache[item], *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rc := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rc.Close() })
	return NewCache[item](rc, "microservicio-api:usuarios", time.Minute), mr
}

func TestSetGetDelete(t *testing.T) {
	ctx := context.Background()
	c, mr := newTestCache(t)

	got, err := c.Get(ctx, "1")
	if err != nil || got != nil {
		t.Fatalf("miss = %v, %v", got, err)
	}

	if err := c.Set(ctx, "1", &item{ID: 1, Nombre: "Ana"}); err != nil {
		t.Fatalf("set: %v", err)
	}
	if !mr.Exists("microservicio-api:usuarios:1") {
		t.Fatal("key not stored under namespace")
	}
	if ttl := mr.TTL("microservicio-api:usuarios:1"); ttl != time.Minute {
		t.Errorf("ttl = %v", ttl)
	}

	got, err = c.Get(ctx, "1")
	if err != nil || got == nil || got.Nombre != "Ana" {
		t.Fatalf("hit = %v, %v", got, err)
	}

	if err := c.Delete(ctx, "1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if got, _ := c.Get(ctx, "1"); got != nil {
		t.Errorf("after delete = %v", got)
	}
}

func TestCorruptEntry(t *testing.T) {
	ctx := context.Background()
	c, mr := newTestCache(t)
	_ = mr.Set("microservicio-api:usuarios:2", "{not json")

	if _, err := c.Get(ctx, "2"); err == nil {
		t.Error("expected unmarshal error")
	}
}

func TestDisabledCache(t *testing.T) {
	ctx := context.Background()
	c := NewCache[item](nil, "x", time.Minute)
	if c.Enabled() {
		t.Fatal("cache without client should be disabled")
	}
	if err := c.Set(ctx, "1", &item{ID: 1}); err != nil {
		t.Errorf("set: %v", err)
	}
	if got, err := c.Get(ctx, "1"); got != nil || err != nil {
		t.Errorf("get = %v, %v", got, err)
	}
	if err := c.Delete(ctx, "1"); err != nil {
		t.Errorf("delete: %v", err)
	}
}

func TestNamespace(t *testing.T) {
	if got := Namespace("Microservicio API", "usuarios"); got != "microservicio-api:usuarios" {
		t.Errorf("namespace = %s", got)
	}
	if got := Namespace("", "productos"); got != "productos" {
		t.Errorf("namespace = %s", got)
	}
}
