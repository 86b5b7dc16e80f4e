package cli

import (
	"github.com/spf13/cobra"

	"github.com/pkordes/ventureline/backend/internal/app"
)

func newServeCmd(d *deps) *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		Example: `  # Serve on PORT (default 8080) with in-memory storage
  ventureline serve

  # Serve from Redis on a custom port
  STORAGE_BACKEND=redis REDIS_ADDR=localhost:6379 ventureline serve --port 3000`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := d.cfg
			if port != "" {
				cfg.Port = port
			}
			return app.Run(cmd.Context(), cfg, d.log)
		},
	}
	cmd.Flags().StringVar(&port, "port", "", "listen port (overrides PORT)")
	return cmd
}
