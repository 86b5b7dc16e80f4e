package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// redisKVStore stores each key as a plain Redis string with no expiry.
type redisKVStore struct {
	client *redis.Client
}

// NewRedisKVStore constructs a KVStore on an existing client.
// The caller owns the client and closes it on shutdown.
func NewRedisKVStore(client *redis.Client) KVStore {
	return &redisKVStore{client: client}
}

func (s *redisKVStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	val, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("repo.redisKVStore.Get: %w", err)
	}
	return val, true, nil
}

func (s *redisKVStore) Set(ctx context.Context, key string, value []byte) error {
	if err := s.client.Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("repo.redisKVStore.Set: %w", err)
	}
	return nil
}
