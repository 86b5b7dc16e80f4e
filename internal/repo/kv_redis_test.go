package repo_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/ventureline/backend/internal/repo"
)

// newRedisKV starts an in-process Redis server for the duration of the test.
func newRedisKV(t *testing.T) (repo.KVStore, *miniredis.Miniredis) {
	t.Helper()
	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return repo.NewRedisKVStore(client), srv
}

func TestRedisKVStore(t *testing.T) {
	kv, _ := newRedisKV(t)
	testKVStoreContract(t, kv)
}

func TestRedisKVStore_noExpiry(t *testing.T) {
	kv, srv := newRedisKV(t)

	require.NoError(t, kv.Set(context.Background(), repo.FavoritesKey, []byte(`["p1"]`)))

	assert.Zero(t, srv.TTL(repo.FavoritesKey), "favorites must not expire")
	got, err := srv.Get(repo.FavoritesKey)
	require.NoError(t, err)
	assert.Equal(t, `["p1"]`, got)
}

func TestRedisKVStore_serverDown(t *testing.T) {
	kv, srv := newRedisKV(t)
	srv.Close()

	_, _, err := kv.Get(context.Background(), repo.FavoritesKey)

	assert.ErrorContains(t, err, "repo.redisKVStore.Get")
}
