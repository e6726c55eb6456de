package kv

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxPool is the subset of pgxpool.Pool the store uses; it matches the
// pgxmock pool interface so tests can substitute a mock.
type PgxPool interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
	Close()
}

// PostgresStore keeps key-value documents in a single table.
type PostgresStore struct {
	pool   PgxPool
	logger *slog.Logger
}

// NewPostgres connects to PostgreSQL and initializes the schema.
func NewPostgres(ctx context.Context, dsn string, logger *slog.Logger) (*PostgresStore, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	store := &PostgresStore{pool: pool, logger: logger}
	if err := store.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return store, nil
}

func (s *PostgresStore) initSchema(ctx context.Context) error {
	const stmt = `CREATE TABLE IF NOT EXISTS kv_store (
        key TEXT PRIMARY KEY,
        value BYTEA NOT NULL,
        updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
    )`
	if _, err := s.pool.Exec(ctx, stmt); err != nil {
		return fmt.Errorf("init schema: %w", err)
	}
	return nil
}

// Get fetches the document stored under key.
func (s *PostgresStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	const query = `SELECT value FROM kv_store WHERE key=$1`
	var value []byte
	err := s.pool.QueryRow(ctx, query, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return value, true, nil
}

// Set upserts the document under key.
func (s *PostgresStore) Set(ctx context.Context, key string, value []byte) error {
	const query = `INSERT INTO kv_store (key, value) VALUES ($1, $2)
                   ON CONFLICT (key) DO UPDATE SET value=EXCLUDED.value, updated_at=NOW()`
	_, err := s.pool.Exec(ctx, query, key, value)
	return err
}

// Delete removes the document under key.
func (s *PostgresStore) Delete(ctx context.Context, key string) error {
	const query = `DELETE FROM kv_store WHERE key=$1`
	_, err := s.pool.Exec(ctx, query, key)
	return err
}

// HealthCheck verifies database connectivity.
func (s *PostgresStore) HealthCheck(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Close releases database resources.
func (s *PostgresStore) Close() error {
	if s.pool != nil {
		s.pool.Close()
	}
	return nil
}
