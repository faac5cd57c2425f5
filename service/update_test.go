package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/ncobase/microservicio/data"
	"github.com/ncobase/microservicio/data/config"
	"github.com/ncobase/microservicio/data/repository"
	"github.com/ncobase/microservicio/logging/logger"
	"github.com/ncobase/microservicio/structs"
	"github.com/ncobase/microservicio/types"
	"github.com/redis/go-redis/v9"
)

func TestUpdateIgnoresStaleCache(t *testing.T) {
	ctx := context.Background()
	cfg := &config.Config{
		Database: &config.Database{
			Master:  &config.DBNode{Driver: "sqlite", Source: ":memory:"},
			Migrate: true,
		},
		Redis: &config.Redis{Prefix: "test", TTL: time.Minute},
	}
	d, cleanup, err := data.ProvideData(ctx, cfg)
	if err != nil {
		t.Fatalf("provide data: %v", err)
	}
	t.Cleanup(cleanup)
	mr := miniredis.RunT(t)
	d.Redis = redis.NewClient(&redis.Options{Addr: mr.Addr()})

	l := logger.New()
	repo := repository.New(d, l)
	svc := NewService(repo, &recordingPublisher{}, l)

	p, err := svc.Producto.Create(ctx, &structs.ProductoCreate{
		Nombre: "Widget",
		Precio: types.ToPointer(int64(100)),
		Stock:  types.ToPointer(int64(5)),
	})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Producto.Get(ctx, p.ID); err != nil {
		t.Fatal(err)
	}
	key := fmt.Sprintf("test:productos:%d", p.ID)
	if !mr.Exists(key) {
		t.Fatal("get did not populate the cache")
	}

	// Redis rejects every command, so the cached stock=5 survives this update.
	mr.SetError("LOADING redis is loading the dataset")
	if _, err := svc.Producto.Update(ctx, p.ID, &structs.ProductoUpdate{Stock: types.Some(int64(3))}); err != nil {
		t.Fatal(err)
	}
	mr.SetError("")

	updated, err := svc.Producto.Update(ctx, p.ID, &structs.ProductoUpdate{Nombre: types.Some("Gadget")})
	if err != nil {
		t.Fatal(err)
	}
	if updated.Stock != 3 || updated.Nombre != "Gadget" {
		t.Errorf("updated = %+v", updated)
	}

	stored, err := repo.Producto.GetByIDForUpdate(ctx, p.ID)
	if err != nil {
		t.Fatal(err)
	}
	if stored.Stock != 3 || stored.Nombre != "Gadget" || stored.Precio != 100 {
		t.Errorf("stored = %+v", stored)
	}
	if mr.Exists(key) {
		t.Error("update left a cached entry behind")
	}
}

// usuarioStub is a UsuarioRepository whose writes fail with a fixed error.
type usuarioStub struct {
	repository.UsuarioRepository
	exists    bool
	createErr error
	creates   int
}

func (s *usuarioStub) ExistsByEmail(context.Context, string) (bool, error) {
	return s.exists, nil
}

func (s *usuarioStub) Create(_ context.Context, u *structs.Usuario) (*structs.Usuario, error) {
	s.creates++
	if s.createErr != nil {
		return nil, s.createErr
	}
	return u, nil
}

func TestCreateUniqueViolationAfterPrecheck(t *testing.T) {
	stub := &usuarioStub{createErr: fmt.Errorf("email a@example.com: %w", repository.ErrDuplicate)}
	pub := &recordingPublisher{}
	svc := NewUsuarioService(stub, pub, logger.New())

	_, err := svc.Create(context.Background(), &structs.UsuarioCreate{Nombre: "A", Email: "a@example.com"})
	if !errors.Is(err, ErrConflict) || err.Error() != "El email ya está registrado" {
		t.Fatalf("create = %v", err)
	}
	if stub.creates != 1 {
		t.Errorf("creates = %d, want 1", stub.creates)
	}
	if got := pub.types(); len(got) != 0 {
		t.Errorf("events = %v", got)
	}
}

func TestCreatePrecheckStopsInsert(t *testing.T) {
	stub := &usuarioStub{exists: true}
	svc := NewUsuarioService(stub, &recordingPublisher{}, logger.New())

	_, err := svc.Create(context.Background(), &structs.UsuarioCreate{Nombre: "A", Email: "a@example.com"})
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("create = %v", err)
	}
	if stub.creates != 0 {
		t.Errorf("creates = %d, want 0", stub.creates)
	}
}
