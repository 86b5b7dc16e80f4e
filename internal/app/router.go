package app

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/pkordes/ventureline/backend/internal/config"
	"github.com/pkordes/ventureline/backend/internal/handler"
	"github.com/pkordes/ventureline/backend/internal/handler/gen"
	"github.com/pkordes/ventureline/backend/internal/middleware"
	"github.com/pkordes/ventureline/backend/internal/service"
	"github.com/pkordes/ventureline/backend/spec"
)

// NewRouter builds the HTTP handler for store.
//
// Middleware order: RequestID → RealIP → SlogLogger → Recoverer → CORS → body limit.
// The logger sits outside Recoverer so recovered panics are still logged as 500s.
func NewRouter(cfg config.Config, store *service.CatalogStore, log *slog.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(log))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewCORSHandler(cfg.CORSOrigins))
	r.Use(middleware.NewMaxBodySizeHandler(cfg.MaxBodyBytes))

	r.Get("/openapi.yaml", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(spec.OpenAPI)
	})

	srv := handler.NewServer(store, store, store)
	return gen.HandlerFromMux(gen.NewStrictHandler(srv, nil), r)
}
