package repo_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/ventureline/backend/internal/repo"
)

// failingKV is a KVStore whose every call returns err.
type failingKV struct{ err error }

func (f failingKV) Get(context.Context, string) ([]byte, bool, error) { return nil, false, f.err }
func (f failingKV) Set(context.Context, string, []byte) error         { return f.err }

var _ repo.KVStore = failingKV{}

// captureLogger returns a JSON logger writing into the returned buffer.
func captureLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewJSONHandler(&buf, nil)), &buf
}

func TestFavoriteRepo_List_absentKey(t *testing.T) {
	r := repo.NewFavoriteRepo(repo.NewMemoryKVStore(), nil)

	got, err := r.List(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestFavoriteRepo_List_doesNotWrite(t *testing.T) {
	kv := repo.NewMemoryKVStore()
	r := repo.NewFavoriteRepo(kv, nil)

	_, err := r.List(context.Background())
	require.NoError(t, err)

	_, ok, err := kv.Get(context.Background(), repo.FavoritesKey)
	require.NoError(t, err)
	assert.False(t, ok, "first read must not create the key")
}

func TestFavoriteRepo_SaveThenList(t *testing.T) {
	kv := repo.NewMemoryKVStore()
	r := repo.NewFavoriteRepo(kv, nil)
	ctx := context.Background()

	require.NoError(t, r.Save(ctx, []string{"s2", "p1"}))

	got, err := r.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"s2", "p1"}, got)

	raw, _, err := kv.Get(ctx, repo.FavoritesKey)
	require.NoError(t, err)
	assert.JSONEq(t, `["s2","p1"]`, string(raw))
}

func TestFavoriteRepo_Save_nilEncodesEmptyArray(t *testing.T) {
	kv := repo.NewMemoryKVStore()
	r := repo.NewFavoriteRepo(kv, nil)

	require.NoError(t, r.Save(context.Background(), nil))

	raw, _, err := kv.Get(context.Background(), repo.FavoritesKey)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(raw))
}

func TestFavoriteRepo_List_collapsesDuplicates(t *testing.T) {
	kv := repo.NewMemoryKVStore()
	require.NoError(t, kv.Set(context.Background(), repo.FavoritesKey, []byte(`["p1","s1","p1"]`)))
	r := repo.NewFavoriteRepo(kv, nil)

	got, err := r.List(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"p1", "s1"}, got)
}

func TestFavoriteRepo_List_malformedDegradesToEmpty(t *testing.T) {
	cases := map[string]string{
		"not json":     `{{{`,
		"object":       `{"p1":true}`,
		"mixed types":  `["p1", 7]`,
		"json null":    `null`,
		"plain string": `"p1"`,
	}
	for name, stored := range cases {
		t.Run(name, func(t *testing.T) {
			kv := repo.NewMemoryKVStore()
			require.NoError(t, kv.Set(context.Background(), repo.FavoritesKey, []byte(stored)))
			r := repo.NewFavoriteRepo(kv, nil)

			got, err := r.List(context.Background())

			require.NoError(t, err)
			assert.NotNil(t, got)
			assert.Empty(t, got)
		})
	}
}

func TestFavoriteRepo_List_logsMalformed(t *testing.T) {
	kv := repo.NewMemoryKVStore()
	require.NoError(t, kv.Set(context.Background(), repo.FavoritesKey, []byte(`oops`)))
	logger, buf := captureLogger()
	r := repo.NewFavoriteRepo(kv, logger)

	_, err := r.List(context.Background())

	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"level":"WARN"`)
	assert.Contains(t, buf.String(), repo.FavoritesKey)
}

func TestFavoriteRepo_backendErrorsPropagate(t *testing.T) {
	boom := errors.New("backend down")
	r := repo.NewFavoriteRepo(failingKV{err: boom}, nil)
	ctx := context.Background()

	_, err := r.List(ctx)
	assert.ErrorIs(t, err, boom)

	err = r.Save(ctx, []string{"p1"})
	assert.ErrorIs(t, err, boom)
}
