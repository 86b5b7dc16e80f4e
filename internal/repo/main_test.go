package repo_test

import (
	"context"
	"log"
	"os"
	"testing"

	"github.com/pkordes/ventureline/backend/testutil"
)

// TestMain migrates the test database when one is configured so the Postgres
// store tests can assume kv_entries exists. Other backends need nothing.
func TestMain(m *testing.M) {
	if dsn := os.Getenv(testutil.DatabaseURLEnv); dsn != "" {
		if err := testutil.MigrateUp(context.Background(), dsn); err != nil {
			log.Fatalf("repo_test.TestMain: %v", err)
		}
	}
	os.Exit(m.Run())
}
