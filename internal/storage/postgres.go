// internal/storage/postgres.go
package storage

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"

	"apollotrainer/internal/config"

	_ "github.com/lib/pq"
)

// Schema is the DDL for every table the repositories use.
//
//go:embed schema.sql
var Schema string

// Open connects to PostgreSQL and verifies the connection.
func Open(ctx context.Context, cfg config.DatabaseConfig) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, Classify("storage.open", err)
	}
	return db, nil
}

// ApplySchema creates any missing tables.
func ApplySchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, Schema); err != nil {
		return Classify("storage.apply_schema", err)
	}
	return nil
}
