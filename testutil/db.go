// Package testutil holds helpers for tests that need real backing services.
// Every helper skips the calling test when its environment variable is unset,
// so `go test ./...` stays green on a laptop with nothing running.
package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib" // registers "pgx" driver for database/sql

	"github.com/pkordes/ventureline/backend/migrations"
)

// Environment variables consulted by the helpers.
const (
	DatabaseURLEnv = "TEST_DATABASE_URL"
	S3EndpointEnv  = "TEST_S3_ENDPOINT"
	S3AccessKeyEnv = "TEST_S3_ACCESS_KEY"
	S3SecretKeyEnv = "TEST_S3_SECRET_KEY"
)

// NewPool returns a pgx pool on TEST_DATABASE_URL, closed when the test ends.
func NewPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	ctx := context.Background()

	pool, err := pgxpool.New(ctx, requireEnv(t, DatabaseURLEnv))
	if err != nil {
		t.Fatalf("testutil.NewPool: %v", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		t.Fatalf("testutil.NewPool: ping: %v", err)
	}
	t.Cleanup(pool.Close)
	return pool
}

// NewSQLDB returns a database/sql handle on TEST_DATABASE_URL for goose.
func NewSQLDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := openSQL(requireEnv(t, DatabaseURLEnv))
	if err != nil {
		t.Fatalf("testutil.NewSQLDB: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// MigrateUp applies every embedded migration to dsn. It is meant for TestMain,
// where there is no *testing.T to skip or fail.
func MigrateUp(ctx context.Context, dsn string) error {
	db, err := openSQL(dsn)
	if err != nil {
		return err
	}
	defer db.Close()

	provider, err := migrations.NewProvider(db)
	if err != nil {
		return fmt.Errorf("testutil.MigrateUp: provider: %w", err)
	}
	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("testutil.MigrateUp: %w", err)
	}
	return nil
}

// S3Credentials returns the object-store endpoint and keys for tests.
func S3Credentials(t *testing.T) (endpoint, accessKey, secretKey string) {
	t.Helper()
	return requireEnv(t, S3EndpointEnv), os.Getenv(S3AccessKeyEnv), os.Getenv(S3SecretKeyEnv)
}

func openSQL(dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}
	if err := db.PingContext(context.Background()); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping: %w", err)
	}
	return db, nil
}

func requireEnv(t *testing.T, key string) string {
	t.Helper()
	v := os.Getenv(key)
	if v == "" {
		t.Skipf("%s not set; skipping integration test", key)
	}
	return v
}
