package repo_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/ventureline/backend/internal/repo"
	"github.com/pkordes/ventureline/backend/testutil"
)

// newPostgresKV opens a transaction against the test database and returns a
// KVStore backed by that transaction. The transaction is rolled back when the
// test finishes, giving free per-test isolation.
//
// Requires TEST_DATABASE_URL; TestMain applies the migrations.
func newPostgresKV(t *testing.T) repo.KVStore {
	t.Helper()
	pool := testutil.NewPool(t)

	tx, err := pool.Begin(context.Background())
	require.NoError(t, err, "begin transaction")

	t.Cleanup(func() {
		_ = tx.Rollback(context.Background())
	})

	return repo.NewPostgresKVStore(tx)
}

func TestPostgresKVStore(t *testing.T) {
	testKVStoreContract(t, newPostgresKV(t))
}

// TestPostgresKVStore_bookingsDocument stores a realistic bookings document and
// checks that jsonb normalisation still decodes to the same structure.
func TestPostgresKVStore_bookingsDocument(t *testing.T) {
	kv := newPostgresKV(t)
	ctx := context.Background()

	doc := `[{"id":"b1","campsiteId":"p1","campsiteName":"Wildflower Meadow Stays",` +
		`"campsiteImage":"img","campsiteLocation":"Glacier National Park, MT","dates":"Jun 1 - Jun 3",` +
		`"guests":"2","totalPrice":250,"status":"confirmed","bookedAt":"2025-06-01T12:00:00Z"}]`
	require.NoError(t, kv.Set(ctx, repo.BookingsKey, []byte(doc)))

	got, ok, err := kv.Get(ctx, repo.BookingsKey)

	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, doc, string(got))
}
