package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/redis/go-redis/v9"

	"github.com/pkordes/ventureline/backend/internal/config"
	"github.com/pkordes/ventureline/backend/internal/repo"
	"github.com/pkordes/ventureline/backend/migrations"
)

// OpenKVStore connects the backend named by cfg.StorageBackend.
// The returned func releases its connections and is never nil.
// Postgres is migrated to the latest schema before use.
func OpenKVStore(ctx context.Context, cfg config.Config, log *slog.Logger) (repo.KVStore, func(), error) {
	noop := func() {}

	switch cfg.StorageBackend {
	case config.BackendMemory, "":
		log.Warn("using in-memory storage; favorites and bookings are lost on restart")
		return repo.NewMemoryKVStore(), noop, nil

	case config.BackendPostgres:
		pool, err := OpenPostgres(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, noop, err
		}
		if err := MigrateUp(ctx, pool, log); err != nil {
			pool.Close()
			return nil, noop, err
		}
		log.Info("database connection established")
		return repo.NewPostgresKVStore(pool), pool.Close, nil

	case config.BackendRedis:
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPassword})
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, noop, fmt.Errorf("app.OpenKVStore: redis ping: %w", err)
		}
		log.Info("redis connection established", "addr", cfg.RedisAddr)
		return repo.NewRedisKVStore(client), func() { _ = client.Close() }, nil

	case config.BackendS3:
		kv, err := repo.NewS3KVStore(ctx, repo.S3Options{
			Endpoint:  cfg.S3Endpoint,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
			Bucket:    cfg.S3Bucket,
			UseSSL:    cfg.S3UseSSL,
		})
		if err != nil {
			return nil, noop, err
		}
		log.Info("object storage ready", "endpoint", cfg.S3Endpoint, "bucket", cfg.S3Bucket)
		return kv, noop, nil
	}
	return nil, noop, fmt.Errorf("app.OpenKVStore: unknown storage backend %q", cfg.StorageBackend)
}

// OpenPostgres creates a pool and verifies the database is reachable.
func OpenPostgres(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("app.OpenPostgres: create pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("app.OpenPostgres: ping: %w", err)
	}
	return pool, nil
}

// MigrateUp applies pending goose migrations through the pool.
func MigrateUp(ctx context.Context, pool *pgxpool.Pool, log *slog.Logger) error {
	// db borrows connections from pool; the caller owns the pool's lifetime.
	db := stdlib.OpenDBFromPool(pool)

	provider, err := migrations.NewProvider(db)
	if err != nil {
		return fmt.Errorf("app.MigrateUp: provider: %w", err)
	}
	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("app.MigrateUp: %w", err)
	}
	for _, r := range results {
		log.Info("migration applied", "version", r.Source.Version, "duration_ms", r.Duration.Milliseconds())
	}
	return nil
}

// MigrateDown rolls back the most recent migration.
func MigrateDown(ctx context.Context, pool *pgxpool.Pool, log *slog.Logger) error {
	db := stdlib.OpenDBFromPool(pool)

	provider, err := migrations.NewProvider(db)
	if err != nil {
		return fmt.Errorf("app.MigrateDown: provider: %w", err)
	}
	r, err := provider.Down(ctx)
	if err != nil {
		return fmt.Errorf("app.MigrateDown: %w", err)
	}
	log.Info("migration rolled back", "version", r.Source.Version)
	return nil
}
