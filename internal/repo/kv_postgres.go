package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// pgKVStore is the Postgres implementation of KVStore.
// Values live in the kv_entries table as jsonb.
type pgKVStore struct {
	db db
}

// NewPostgresKVStore constructs a KVStore backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewPostgresKVStore(db db) KVStore {
	return &pgKVStore{db: db}
}

// Get reads a single entry by key.
func (s *pgKVStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	const q = `SELECT value FROM kv_entries WHERE key = @key`

	var value []byte
	err := s.db.QueryRow(ctx, q, pgx.NamedArgs{"key": key}).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("repo.pgKVStore.Get: %w", err)
	}
	return value, true, nil
}

// Set upserts an entry and bumps updated_at.
func (s *pgKVStore) Set(ctx context.Context, key string, value []byte) error {
	const q = `
		INSERT INTO kv_entries (key, value)
		VALUES (@key, CAST(@value AS jsonb))
		ON CONFLICT (key) DO UPDATE
		SET value      = EXCLUDED.value,
		    updated_at = now()`

	_, err := s.db.Exec(ctx, q, pgx.NamedArgs{"key": key, "value": string(value)})
	if err != nil {
		return fmt.Errorf("repo.pgKVStore.Set: %w", err)
	}
	return nil
}
