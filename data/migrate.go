package data

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect"
)

// schema holds the CREATE TABLE statements per dialect. Ids and amounts
// are 64-bit to match the int64 fields they scan into. Tables are created
// only when missing; existing tables are left untouched.
var schema = map[string][]string{
	dialect.Postgres: {
		`CREATE TABLE IF NOT EXISTS usuarios (
			id BIGSERIAL PRIMARY KEY,
			nombre VARCHAR(100) NOT NULL,
			email VARCHAR(100) NOT NULL UNIQUE,
			activo BOOLEAN NOT NULL DEFAULT TRUE,
			fecha_creacion TIMESTAMPTZ NOT NULL,
			fecha_actualizacion TIMESTAMPTZ NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS productos (
			id BIGSERIAL PRIMARY KEY,
			nombre VARCHAR(150) NOT NULL,
			descripcion VARCHAR(500),
			precio BIGINT NOT NULL,
			stock BIGINT NOT NULL DEFAULT 0,
			fecha_creacion TIMESTAMPTZ NOT NULL,
			fecha_actualizacion TIMESTAMPTZ NOT NULL
		)`,
	},
	dialect.SQLite: {
		`CREATE TABLE IF NOT EXISTS usuarios (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			nombre VARCHAR(100) NOT NULL,
			email VARCHAR(100) NOT NULL UNIQUE,
			activo BOOLEAN NOT NULL DEFAULT 1,
			fecha_creacion TIMESTAMP NOT NULL,
			fecha_actualizacion TIMESTAMP NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS productos (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			nombre VARCHAR(150) NOT NULL,
			descripcion VARCHAR(500),
			precio INTEGER NOT NULL,
			stock INTEGER NOT NULL DEFAULT 0,
			fecha_creacion TIMESTAMP NOT NULL,
			fecha_actualizacion TIMESTAMP NOT NULL
		)`,
	},
	dialect.MySQL: {
		`CREATE TABLE IF NOT EXISTS usuarios (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			nombre VARCHAR(100) NOT NULL,
			email VARCHAR(100) NOT NULL UNIQUE,
			activo BOOLEAN NOT NULL DEFAULT TRUE,
			fecha_creacion DATETIME(6) NOT NULL,
			fecha_actualizacion DATETIME(6) NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS productos (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			nombre VARCHAR(150) NOT NULL,
			descripcion VARCHAR(500) NULL,
			precio BIGINT NOT NULL,
			stock BIGINT NOT NULL DEFAULT 0,
			fecha_creacion DATETIME(6) NOT NULL,
			fecha_actualizacion DATETIME(6) NOT NULL
		)`,
	},
}

// Migrate creates the usuarios and productos tables if they do not exist
func (d *Data) Migrate(ctx context.Context) error {
	stmts, ok := schema[d.Dialect()]
	if !ok {
		return fmt.Errorf("data: no schema for dialect %q", d.Dialect())
	}
	for _, stmt := range stmts {
		if _, err := d.DB.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("data: migrate failed: %w", err)
		}
	}
	return nil
}
