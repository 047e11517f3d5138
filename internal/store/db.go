// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-employee-keeper/internal/config"
	"github.com/MKhiriev/go-employee-keeper/internal/logger"
	"github.com/MKhiriev/go-employee-keeper/migrations"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
)

const (
	maxOpenConns = 10
	maxIdleConns = 4

	pingAttempts = 3
	pingBackoff  = time.Second
)

// DB is the pooled connection to the PostgreSQL document store.
// It is opened once at startup, shared by all repositories and closed on
// shutdown.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewConnectPostgres opens the connection pool described by cfg.
//
// When cfg.Name is set, every pooled connection uses it as search_path and
// the schema is created if missing, so that the collections live in a
// per-deployment namespace. Pings failing with a retryable error (e.g. the
// server is still starting) are retried a few times.
func NewConnectPostgres(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	pgCfg, err := pgx.ParseConfig(cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("invalid database URI")
		return nil, fmt.Errorf("error parsing database URI: %w", err)
	}
	if cfg.Name != "" {
		pgCfg.RuntimeParams["search_path"] = cfg.Name
	}

	conn := stdlib.OpenDB(*pgCfg)
	conn.SetMaxOpenConns(maxOpenConns)
	conn.SetMaxIdleConns(maxIdleConns)

	db, err := newDB(ctx, conn, cfg.Name, log)
	if err != nil {
		_ = conn.Close()
		return nil, err
	}

	log.Info().Str("func", "NewConnectPostgres").Str("schema", cfg.Name).Msg("connected to database successfully")
	return db, nil
}

func newDB(ctx context.Context, conn *sql.DB, schema string, log *logger.Logger) (*DB, error) {
	db := &DB{
		DB:                 conn,
		logger:             log,
		errorClassificator: NewPostgresErrorClassifier(),
	}

	if err := db.ping(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error connecting database (ping)")
		return nil, fmt.Errorf("error connecting database: %w", err)
	}

	if schema != "" {
		if _, err := conn.ExecContext(ctx, buildCreateSchemaQuery(schema)); err != nil {
			log.Err(err).Str("func", "NewConnectPostgres").Str("schema", schema).Msg("error creating schema")
			return nil, fmt.Errorf("error creating schema %q: %w", schema, err)
		}
	}

	return db, nil
}

func (db *DB) ping(ctx context.Context) error {
	var err error
	for attempt := 1; ; attempt++ {
		if err = db.PingContext(ctx); err == nil {
			return nil
		}
		if attempt >= pingAttempts || db.errorClassificator.Classify(err) != Retryable {
			return err
		}

		db.logger.Warn().Err(err).Int("attempt", attempt).Msg("database not ready, retrying ping")
		select {
		case <-ctx.Done():
			return errors.Join(err, ctx.Err())
		case <-time.After(time.Duration(attempt) * pingBackoff):
		}
	}
}

// Migrate creates the collections if they are missing.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}

// Close releases the connection pool.
func (db *DB) Close() error {
	db.logger.Info().Msg("closing database connection")
	return db.DB.Close()
}

func buildCreateSchemaQuery(schema string) string {
	return "CREATE SCHEMA IF NOT EXISTS " + pgx.Identifier{schema}.Sanitize()
}
