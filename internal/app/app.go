// Package app wires configuration, storage, the CatalogStore and the HTTP
// router together. cmd/api and the CLI's serve command both start here, so
// main functions stay free of construction logic.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/pkordes/ventureline/backend/internal/catalog"
	"github.com/pkordes/ventureline/backend/internal/config"
	"github.com/pkordes/ventureline/backend/internal/repo"
	"github.com/pkordes/ventureline/backend/internal/service"
)

// NewLogger returns a JSON slog logger at the named level.
// Unknown levels fall back to info.
func NewLogger(w io.Writer, level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: lvl}))
}

// NewCatalogStore loads the embedded catalog and builds the store over kv.
func NewCatalogStore(cfg config.Config, kv repo.KVStore, log *slog.Logger) (*service.CatalogStore, error) {
	c, err := catalog.Load()
	if err != nil {
		return nil, fmt.Errorf("app.NewCatalogStore: %w", err)
	}
	return service.NewCatalogStore(c,
		repo.NewFavoriteRepo(kv, log),
		repo.NewBookingRepo(kv, log),
		service.WithBookingLatency(cfg.BookingLatency),
	), nil
}

// Run opens storage, builds the router and serves HTTP until ctx is done,
// then gives in-flight requests up to 15 seconds to finish.
func Run(ctx context.Context, cfg config.Config, log *slog.Logger) error {
	kv, closeKV, err := OpenKVStore(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeKV()

	store, err := NewCatalogStore(cfg, kv, log)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           NewRouter(cfg, store, log),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10*time.Second + cfg.BookingLatency,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server starting", "addr", srv.Addr, "storage", cfg.StorageBackend)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("app.Run: listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("app.Run: shutdown: %w", err)
	}
	log.Info("server stopped")
	return nil
}
