// Package postgres persists the session snapshot in PostgreSQL as a single
// keyed row, for deployments where local disk is not durable.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/daybalancer/findatime/pkg/db"
)

// Backend stores the snapshot under a fixed key in the store_snapshots table
type Backend struct {
	pool *pgxpool.Pool
	key  string
}

// NewBackend connects to PostgreSQL and ensures the snapshot table exists.
// The snapshot is stored under db.SnapshotKey.
func NewBackend(ctx context.Context, connString string) (*Backend, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	b := &Backend{pool: pool, key: db.SnapshotKey}
	if err := b.ensureSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return b, nil
}

// Close closes the connection pool
func (b *Backend) Close() {
	b.pool.Close()
}

func (b *Backend) ensureSchema(ctx context.Context) error {
	_, err := b.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS store_snapshots (
			store_key  TEXT PRIMARY KEY,
			payload    JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create store_snapshots table: %w", err)
	}
	return nil
}

// Load reads the snapshot row. A missing row maps to db.ErrNoSnapshot.
func (b *Backend) Load(ctx context.Context) ([]byte, error) {
	var payload []byte
	err := b.pool.QueryRow(ctx, `
		SELECT payload FROM store_snapshots WHERE store_key = $1
	`, b.key).Scan(&payload)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, db.ErrNoSnapshot
		}
		return nil, fmt.Errorf("failed to query snapshot: %w", err)
	}
	return payload, nil
}

// Save upserts the snapshot row, replacing the prior value atomically
func (b *Backend) Save(ctx context.Context, snapshot []byte) error {
	_, err := b.pool.Exec(ctx, `
		INSERT INTO store_snapshots (store_key, payload, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (store_key)
		DO UPDATE SET payload = EXCLUDED.payload, updated_at = NOW()
	`, b.key, snapshot)
	if err != nil {
		return fmt.Errorf("failed to upsert snapshot: %w", err)
	}
	return nil
}
