package middleware_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/ventureline/backend/internal/middleware"
)

// serveLogged runs one request through the logger and returns the decoded line.
func serveLogged(t *testing.T, status int, path string) map[string]any {
	t.Helper()
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	h := middleware.NewSlogLogger(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte("{}"))
	}))

	req := httptest.NewRequest(http.MethodGet, path, nil)
	req = req.WithContext(context.WithValue(req.Context(), chimiddleware.RequestIDKey, "req-42"))
	h.ServeHTTP(httptest.NewRecorder(), req)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestSlogLogger_LogsRequestFields(t *testing.T) {
	entry := serveLogged(t, http.StatusOK, "/campsites?q=tahoe")

	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "GET", entry["method"])
	assert.Equal(t, "/campsites", entry["path"])
	assert.EqualValues(t, http.StatusOK, entry["status"])
	assert.EqualValues(t, 2, entry["bytes"])
	assert.Equal(t, "req-42", entry["request_id"])
	assert.NotNil(t, entry["duration_ms"])
}

func TestSlogLogger_ServerErrorAtWarn(t *testing.T) {
	entry := serveLogged(t, http.StatusInternalServerError, "/bookings")

	assert.Equal(t, "WARN", entry["level"])
	assert.EqualValues(t, http.StatusInternalServerError, entry["status"])
}
