package data

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/ncobase/microservicio/data/config"
)

type mockDatabaseDriver struct {
	name string
}

func (d *mockDatabaseDriver) Name() string    { return d.name }
func (d *mockDatabaseDriver) Dialect() string { return "mock" }
func (d *mockDatabaseDriver) Connect(ctx context.Context, cfg *config.DBNode) (*sql.DB, error) {
	return nil, errors.New("mock: no connection")
}
func (d *mockDatabaseDriver) Close(db *sql.DB) error                     { return nil }
func (d *mockDatabaseDriver) Ping(ctx context.Context, db *sql.DB) error { return nil }
func (d *mockDatabaseDriver) IsUniqueViolation(err error) bool           { return false }

// resetDatabaseDrivers swaps in an empty registry and restores the
// original one when the test ends.
func resetDatabaseDrivers(t *testing.T) {
	t.Helper()
	databaseDrivers.mu.Lock()
	saved := databaseDrivers.drivers
	databaseDrivers.drivers = make(map[string]DatabaseDriver)
	databaseDrivers.mu.Unlock()

	t.Cleanup(func() {
		databaseDrivers.mu.Lock()
		databaseDrivers.drivers = saved
		databaseDrivers.mu.Unlock()
	})
}

func TestRegisterDatabaseDriver(t *testing.T) {
	resetDatabaseDrivers(t)

	RegisterDatabaseDriver(&mockDatabaseDriver{name: "test-db"})

	retrieved, err := GetDatabaseDriver("test-db")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if retrieved.Name() != "test-db" {
		t.Errorf("expected driver name 'test-db', got %q", retrieved.Name())
	}
}

func TestRegisterDatabaseDriverPanicsOnNil(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected panic when registering nil driver")
		}
	}()

	RegisterDatabaseDriver(nil)
}

func TestRegisterDatabaseDriverPanicsOnDuplicate(t *testing.T) {
	resetDatabaseDrivers(t)

	driver := &mockDatabaseDriver{name: "duplicate"}
	RegisterDatabaseDriver(driver)

	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected panic when registering duplicate driver")
		}
	}()

	RegisterDatabaseDriver(driver)
}

func TestGetDatabaseDriverNotFound(t *testing.T) {
	resetDatabaseDrivers(t)
	RegisterDatabaseDriver(&mockDatabaseDriver{name: "postgres"})

	_, err := GetDatabaseDriver("oracle")
	if err == nil {
		t.Fatal("expected error when getting non-existent driver")
	}
	if !strings.Contains(err.Error(), "data/oracle") || !strings.Contains(err.Error(), "postgres") {
		t.Errorf("error should point at the import and list drivers, got %q", err)
	}
}

func TestListRegisteredDrivers(t *testing.T) {
	resetDatabaseDrivers(t)

	RegisterDatabaseDriver(&mockDatabaseDriver{name: "postgres"})
	RegisterDatabaseDriver(&mockDatabaseDriver{name: "mysql"})

	drivers := ListRegisteredDrivers()
	got := drivers["database"]
	if len(got) != 2 || got[0] != "mysql" || got[1] != "postgres" {
		t.Errorf("expected sorted [mysql postgres], got %v", got)
	}
}

func TestDriverConcurrentAccess(t *testing.T) {
	resetDatabaseDrivers(t)
	RegisterDatabaseDriver(&mockDatabaseDriver{name: "concurrent-test"})

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := GetDatabaseDriver("concurrent-test"); err != nil {
				t.Errorf("concurrent access failed: %v", err)
			}
		}()
	}
	wg.Wait()
}

func TestNewRequiresDatabaseConfig(t *testing.T) {
	if _, _, err := New(context.Background(), &config.Config{}); err == nil {
		t.Fatal("expected error without database config")
	}
}

func TestNewConnectError(t *testing.T) {
	resetDatabaseDrivers(t)
	RegisterDatabaseDriver(&mockDatabaseDriver{name: "mock"})

	cfg := &config.Config{
		Database: &config.Database{Master: &config.DBNode{Driver: "mock", Source: "x"}},
	}
	if _, _, err := New(context.Background(), cfg); err == nil {
		t.Fatal("expected connect error")
	}
}
