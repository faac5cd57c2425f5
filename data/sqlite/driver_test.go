package sqlite

import (
	"context"
	"errors"
	"testing"

	"github.com/ncobase/microservicio/data/config"
)

func TestConnectMemory(t *testing.T) {
	d := &driver{}
	db, err := d.Connect(context.Background(), &config.DBNode{Source: ":memory:"})
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	defer d.Close(db)

	if err := d.Ping(context.Background(), db); err != nil {
		t.Fatalf("ping: %v", err)
	}
	if d.Dialect() != "sqlite3" {
		t.Errorf("dialect = %s", d.Dialect())
	}
}

func TestIsUniqueViolation(t *testing.T) {
	d := &driver{}
	ctx := context.Background()
	db, err := d.Connect(ctx, &config.DBNode{Source: ":memory:"})
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	defer d.Close(db)

	if _, err := db.ExecContext(ctx, "CREATE TABLE t (email TEXT UNIQUE)"); err != nil {
		t.Fatal(err)
	}
	if _, err := db.ExecContext(ctx, "INSERT INTO t (email) VALUES ('a@x.com')"); err != nil {
		t.Fatal(err)
	}
	_, err = db.ExecContext(ctx, "INSERT INTO t (email) VALUES ('a@x.com')")
	if !d.IsUniqueViolation(err) {
		t.Fatalf("expected unique violation, got %v", err)
	}
	if d.IsUniqueViolation(errors.New("other")) {
		t.Error("plain errors are not unique violations")
	}
}
