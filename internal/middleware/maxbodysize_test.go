package middleware_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/ventureline/backend/internal/middleware"
)

// readAll mimics the generated JSON decoder: it reads the whole body and
// reports 413 when the read fails.
var readAll = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	if _, err := io.ReadAll(r.Body); err != nil {
		w.WriteHeader(http.StatusRequestEntityTooLarge)
		return
	}
	w.WriteHeader(http.StatusOK)
})

func postBooking(n int, contentLength int64) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/bookings", strings.NewReader(strings.Repeat("x", n)))
	req.ContentLength = contentLength
	return req
}

func TestMaxBodySizeHandler(t *testing.T) {
	const limit = 100
	tests := []struct {
		name string
		req  *http.Request
		want int
	}{
		{"under limit", postBooking(50, 50), http.StatusOK},
		{"exactly at limit", postBooking(limit, limit), http.StatusOK},
		{"declared length over limit", postBooking(200, 200), http.StatusRequestEntityTooLarge},
		{"streamed body over limit", postBooking(200, -1), http.StatusRequestEntityTooLarge},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			middleware.NewMaxBodySizeHandler(limit)(readAll).ServeHTTP(rec, tc.req)
			assert.Equal(t, tc.want, rec.Code)
		})
	}
}

func TestMaxBodySizeHandler_RejectsBeforeHandlerRuns(t *testing.T) {
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true })

	rec := httptest.NewRecorder()
	middleware.NewMaxBodySizeHandler(10)(next).ServeHTTP(rec, postBooking(20, 20))

	require.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.False(t, called)
}
