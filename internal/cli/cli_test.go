package cli_test

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/pkordes/ventureline/backend/internal/cli"
	"github.com/pkordes/ventureline/backend/internal/domain"
	"github.com/pkordes/ventureline/backend/internal/repo"
)

// isolateEnv keeps the host environment and any .env in the package directory
// from changing how commands behave.
func isolateEnv(t *testing.T) {
	t.Helper()
	t.Chdir(t.TempDir())
	for _, k := range []string{"STORAGE_BACKEND", "LOG_LEVEL", "S3_USE_SSL", "MAX_BODY_BYTES"} {
		t.Setenv(k, "")
	}
	t.Setenv("BOOKING_LATENCY", "0s")
}

// run executes one command line against kv and returns stdout.
func run(t *testing.T, kv repo.KVStore, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := cli.NewRootCmd(cli.WithKVStore(kv))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func mustRun(t *testing.T, kv repo.KVStore, args ...string) string {
	t.Helper()
	out, err := run(t, kv, args...)
	require.NoError(t, err, "ventureline %s", strings.Join(args, " "))
	return out
}

func TestCampsites_TextAndJSON(t *testing.T) {
	isolateEnv(t)
	kv := repo.NewMemoryKVStore()

	out := mustRun(t, kv, "campsites", "tahoe")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3, "header plus two Tahoe sites")
	assert.True(t, strings.HasPrefix(lines[0], "ID"))
	assert.True(t, strings.HasPrefix(lines[1], "s1"))

	var sites []domain.Campsite
	require.NoError(t, json.Unmarshal([]byte(mustRun(t, kv, "campsites", "-o", "json")), &sites))
	assert.Len(t, sites, 7)
}

func TestCampsite_YAMLAndNotFound(t *testing.T) {
	isolateEnv(t)
	kv := repo.NewMemoryKVStore()

	var site domain.Campsite
	require.NoError(t, yaml.Unmarshal([]byte(mustRun(t, kv, "campsite", "p1", "-o", "yaml")), &site))
	assert.Equal(t, "p1", site.ID)
	assert.NotEmpty(t, site.Name)

	_, err := run(t, kv, "campsite", "nope")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUnknownOutputFormat(t *testing.T) {
	isolateEnv(t)
	_, err := run(t, repo.NewMemoryKVStore(), "campsites", "-o", "xml")
	assert.ErrorContains(t, err, "xml")
}

func TestFavorites_ToggleAndList(t *testing.T) {
	isolateEnv(t)
	kv := repo.NewMemoryKVStore()

	assert.Contains(t, mustRun(t, kv, "favorites", "toggle", "s2"), "s2 added")
	mustRun(t, kv, "favorites", "toggle", "p1")

	var sites []domain.Campsite
	require.NoError(t, json.Unmarshal([]byte(mustRun(t, kv, "favorites", "list", "-o", "json")), &sites))
	require.Len(t, sites, 2)
	assert.Equal(t, "p1", sites[0].ID, "catalog order")
	assert.Equal(t, "s2", sites[1].ID)

	assert.Contains(t, mustRun(t, kv, "favorites", "toggle", "s2"), "s2 removed")
	assert.Contains(t, mustRun(t, kv, "campsite", "p1"), "true")
}

func TestBookings_CreateListExport(t *testing.T) {
	isolateEnv(t)
	kv := repo.NewMemoryKVStore()

	var first domain.Booking
	out := mustRun(t, kv, "bookings", "create", "--campsite", "s1", "--dates", "Oct 24 - Oct 26", "--guests", "2 Adults", "-o", "json")
	require.NoError(t, json.Unmarshal([]byte(out), &first))
	assert.Equal(t, domain.BookingConfirmed, first.Status)
	assert.NotEmpty(t, first.CampsiteName)
	assert.Positive(t, first.TotalPrice)

	mustRun(t, kv, "bookings", "create", "--campsite", "p1", "--total", "0")

	var list []domain.Booking
	require.NoError(t, json.Unmarshal([]byte(mustRun(t, kv, "bookings", "list", "-o", "json")), &list))
	require.Len(t, list, 2)
	assert.Equal(t, "p1", list[0].CampsiteID, "most recent first")
	assert.Zero(t, list[0].TotalPrice)
	assert.Equal(t, first.ID, list[1].ID)

	csvOut := mustRun(t, kv, "bookings", "export", "--format", "csv")
	assert.True(t, strings.HasPrefix(csvOut, "booking_id,"))
	assert.Len(t, strings.Split(strings.TrimSpace(csvOut), "\n"), 3)

	path := filepath.Join(t.TempDir(), "bookings.parquet")
	mustRun(t, kv, "bookings", "export", "--format", "parquet", "--out", path)
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	st, err := f.Stat()
	require.NoError(t, err)
	rows, err := parquet.Read[domain.BookingExportRow](f, st.Size())
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, first.ID, rows[1].BookingID)
}

func TestBookings_CreateRejectsBadInput(t *testing.T) {
	isolateEnv(t)
	kv := repo.NewMemoryKVStore()

	_, err := run(t, kv, "bookings", "create")
	assert.ErrorContains(t, err, "campsite")

	_, err = run(t, kv, "bookings", "create", "--campsite", "ghost")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = run(t, kv, "bookings", "create", "--campsite", "s1", "--total", "-1")
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = run(t, kv, "bookings", "export", "--format", "xlsx")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestMigrate_RequiresDatabaseURL(t *testing.T) {
	isolateEnv(t)
	t.Setenv("DATABASE_URL", "")
	_, err := run(t, repo.NewMemoryKVStore(), "migrate")
	assert.ErrorContains(t, err, "DATABASE_URL")

	_, err = run(t, repo.NewMemoryKVStore(), "migrate", "sideways")
	assert.Error(t, err)
}
