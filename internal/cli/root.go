// Package cli implements the ventureline admin command line.
// Every command talks to the same CatalogStore the HTTP API uses, built from
// the environment the server would see.
package cli

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/pkordes/ventureline/backend/internal/app"
	"github.com/pkordes/ventureline/backend/internal/config"
	"github.com/pkordes/ventureline/backend/internal/repo"
	"github.com/pkordes/ventureline/backend/internal/service"
)

// Option customises the root command.
type Option func(*deps)

// WithKVStore makes every command use kv instead of opening the configured backend.
func WithKVStore(kv repo.KVStore) Option {
	return func(d *deps) { d.kv = kv }
}

// deps is filled in by the root PersistentPreRunE and shared by subcommands.
type deps struct {
	cfg    config.Config
	log    *slog.Logger
	kv     repo.KVStore
	output string
}

// NewRootCmd builds the ventureline command tree.
func NewRootCmd(opts ...Option) *cobra.Command {
	d := &deps{}
	for _, opt := range opts {
		opt(d)
	}

	cmd := &cobra.Command{
		Use:   "ventureline",
		Short: "Ventureline campsite catalog, favorites and bookings",
		Long: `Ventureline serves the campsite catalog API and administers the
favorites and bookings it stores.

Configuration comes from the environment (and a .env file if present):
STORAGE_BACKEND selects memory, postgres, redis or s3.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			config.LoadDotEnv()
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			d.cfg = cfg
			d.log = app.NewLogger(cmd.ErrOrStderr(), cfg.LogLevel)
			return validateOutput(d.output)
		},
	}
	cmd.PersistentFlags().StringVarP(&d.output, "output", "o", outputText, "output format: text, json or yaml")

	cmd.AddCommand(newServeCmd(d))
	cmd.AddCommand(newMigrateCmd(d))
	cmd.AddCommand(newCampsitesCmd(d))
	cmd.AddCommand(newCampsiteCmd(d))
	cmd.AddCommand(newFavoritesCmd(d))
	cmd.AddCommand(newBookingsCmd(d))

	return cmd
}

// store opens the configured storage and builds a CatalogStore over it.
// The returned func closes the storage.
func (d *deps) store(ctx context.Context) (*service.CatalogStore, func(), error) {
	kv, closeKV := d.kv, func() {}
	if kv == nil {
		var err error
		kv, closeKV, err = app.OpenKVStore(ctx, d.cfg, d.log)
		if err != nil {
			return nil, nil, err
		}
	}
	s, err := app.NewCatalogStore(d.cfg, kv, d.log)
	if err != nil {
		closeKV()
		return nil, nil, err
	}
	return s, closeKV, nil
}
