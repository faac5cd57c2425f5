package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/ncobase/microservicio/data"
	"github.com/ncobase/microservicio/data/config"
	"github.com/ncobase/microservicio/data/events"
	"github.com/ncobase/microservicio/data/repository"
	"github.com/ncobase/microservicio/logging/logger"
	"github.com/ncobase/microservicio/paging"
	"github.com/ncobase/microservicio/structs"
	"github.com/ncobase/microservicio/types"

	_ "github.com/ncobase/microservicio/data/sqlite"
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []events.Event
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, e events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
	return p.err
}

func (p *recordingPublisher) Close() error { return nil }

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.Type)
	}
	return out
}

func newTestService(t *testing.T, pub events.Publisher) *Service {
	t.Helper()
	cfg := &config.Config{
		Database: &config.Database{
			Master:  &config.DBNode{Driver: "sqlite", Source: ":memory:"},
			Migrate: true,
		},
		Redis: &config.Redis{},
	}
	d, cleanup, err := data.ProvideData(context.Background(), cfg)
	if err != nil {
		t.Fatalf("provide data: %v", err)
	}
	t.Cleanup(cleanup)
	l := logger.New()
	return NewService(repository.New(d, l), pub, l)
}

// tick returns a clock that advances one second per call.
func tick(start time.Time) func() time.Time {
	current := start
	return func() time.Time {
		current = current.Add(time.Second)
		return current
	}
}

func TestProductoPartialUpdateScenario(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, nil)
	svc.Producto.now = tick(time.Now().UTC().Truncate(time.Microsecond))

	created, err := svc.Producto.Create(ctx, &structs.ProductoCreate{
		Nombre:      "Widget",
		Descripcion: types.ToPointer("A widget"),
		Precio:      types.ToPointer(int64(100)),
		Stock:       types.ToPointer(int64(5)),
	})
	if err != nil {
		t.Fatal(err)
	}
	if created.ID != 1 || created.Stock != 5 || !created.FechaCreacion.Equal(created.FechaActualizacion) {
		t.Fatalf("created = %+v", created)
	}

	updated, err := svc.Producto.Update(ctx, created.ID, &structs.ProductoUpdate{Stock: types.Some(int64(3))})
	if err != nil {
		t.Fatal(err)
	}
	if updated.Stock != 3 || updated.Nombre != "Widget" || updated.Precio != 100 ||
		updated.Descripcion == nil || *updated.Descripcion != "A widget" {
		t.Errorf("updated = %+v", updated)
	}
	if !updated.FechaActualizacion.After(updated.FechaCreacion) {
		t.Error("fecha_actualizacion did not advance")
	}

	stored, err := svc.Producto.Get(ctx, created.ID)
	if err != nil {
		t.Fatal(err)
	}
	if stored.Stock != 3 || !stored.FechaCreacion.Equal(created.FechaCreacion) {
		t.Errorf("stored = %+v", stored)
	}

	_, err = svc.Producto.Get(ctx, 999)
	if !errors.Is(err, ErrNotFound) || err.Error() != "Producto con ID 999 no encontrado" {
		t.Errorf("get 999 = %v", err)
	}
}

func TestUsuarioUpdateZeroValues(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, nil)
	svc.Usuario.now = tick(time.Now().UTC().Truncate(time.Microsecond))

	u, err := svc.Usuario.Create(ctx, &structs.UsuarioCreate{Nombre: "Ana", Email: "ana@example.com"})
	if err != nil {
		t.Fatal(err)
	}
	if !u.Activo {
		t.Fatal("activo default lost")
	}

	got, err := svc.Usuario.Update(ctx, u.ID, &structs.UsuarioUpdate{Activo: types.Some(false), Nombre: types.Some("")})
	if err != nil {
		t.Fatal(err)
	}
	if got.Activo || got.Nombre != "" || got.Email != "ana@example.com" {
		t.Errorf("got %+v", got)
	}
}

func TestUpdateWithoutFieldsDoesNotWrite(t *testing.T) {
	ctx := context.Background()
	pub := &recordingPublisher{}
	svc := newTestService(t, pub)

	u, err := svc.Usuario.Create(ctx, &structs.UsuarioCreate{Nombre: "Ana", Email: "ana@example.com"})
	if err != nil {
		t.Fatal(err)
	}
	got, err := svc.Usuario.Update(ctx, u.ID, &structs.UsuarioUpdate{})
	if err != nil {
		t.Fatal(err)
	}
	if !got.FechaActualizacion.Equal(u.FechaActualizacion) {
		t.Error("empty update changed fecha_actualizacion")
	}
	if ts := pub.types(); len(ts) != 1 || ts[0] != "usuario.created" {
		t.Errorf("events = %v", ts)
	}
}

func TestUpdateUnknownIDLeavesStore(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, nil)

	_, err := svc.Usuario.Update(ctx, 7, &structs.UsuarioUpdate{Nombre: types.Some("x")})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v", err)
	}
	list, _ := svc.Usuario.List(ctx, paging.Params{Limit: 100})
	if len(list) != 0 {
		t.Errorf("store changed: %v", list)
	}
}

func TestUpdateValidation(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, nil)

	_, err := svc.Usuario.Update(ctx, 1, &structs.UsuarioUpdate{Email: types.Some("nope")})
	if !errors.Is(err, ErrInvalid) {
		t.Fatalf("err = %v", err)
	}
	if _, ok := FieldErrors(err)["email"]; !ok {
		t.Errorf("fields = %v", FieldErrors(err))
	}
}

func TestDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, nil)

	if _, err := svc.Usuario.Create(ctx, &structs.UsuarioCreate{Nombre: "A", Email: "a@example.com"}); err != nil {
		t.Fatal(err)
	}
	b, err := svc.Usuario.Create(ctx, &structs.UsuarioCreate{Nombre: "B", Email: "b@example.com"})
	if err != nil {
		t.Fatal(err)
	}

	if _, err := svc.Usuario.Create(ctx, &structs.UsuarioCreate{Nombre: "C", Email: "a@example.com"}); !errors.Is(err, ErrConflict) {
		t.Errorf("create dup = %v", err)
	}
	if _, err := svc.Usuario.Update(ctx, b.ID, &structs.UsuarioUpdate{Email: types.Some("a@example.com")}); !errors.Is(err, ErrConflict) {
		t.Errorf("update dup = %v", err)
	}
}

func TestDeleteTwice(t *testing.T) {
	ctx := context.Background()
	pub := &recordingPublisher{err: errors.New("broker down")}
	svc := newTestService(t, pub)

	p, err := svc.Producto.Create(ctx, &structs.ProductoCreate{Nombre: "x", Precio: types.ToPointer(int64(1))})
	if err != nil {
		t.Fatalf("publish failure must not fail create: %v", err)
	}
	if err := svc.Producto.Delete(ctx, p.ID); err != nil {
		t.Fatal(err)
	}
	if err := svc.Producto.Delete(ctx, p.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("second delete = %v", err)
	}
	if ts := pub.types(); len(ts) != 2 || ts[1] != "producto.deleted" {
		t.Errorf("events = %v", ts)
	}
}

func TestApplyProductoUpdate(t *testing.T) {
	now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	p := &structs.Producto{Nombre: "a", Descripcion: types.ToPointer("d"), Precio: 10, Stock: 2}

	if applyProductoUpdate(p, &structs.ProductoUpdate{}, now) {
		t.Error("empty request reported a change")
	}
	if !p.FechaActualizacion.IsZero() {
		t.Error("empty request stamped the row")
	}

	changed := applyProductoUpdate(p, &structs.ProductoUpdate{
		Descripcion: types.Null[string](),
		Precio:      types.Some(int64(0)),
	}, now)
	if !changed || p.Descripcion != nil || p.Precio != 0 || p.Stock != 2 || p.Nombre != "a" {
		t.Errorf("p = %+v", p)
	}
	if !p.FechaActualizacion.Equal(now) {
		t.Errorf("fecha_actualizacion = %v", p.FechaActualizacion)
	}
}
