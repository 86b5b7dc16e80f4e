package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pkordes/ventureline/backend/internal/app"
)

func newMigrateCmd(d *deps) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate [up|down]",
		Short: "Apply or roll back Postgres schema migrations",
		Long: `Applies all pending migrations (up, the default) or rolls back the most
recent one (down). Needs DATABASE_URL; the other backends have no schema.`,
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"up", "down"},
		RunE: func(cmd *cobra.Command, args []string) error {
			if d.cfg.DatabaseURL == "" {
				return fmt.Errorf("migrate: DATABASE_URL is not set")
			}
			pool, err := app.OpenPostgres(cmd.Context(), d.cfg.DatabaseURL)
			if err != nil {
				return err
			}
			defer pool.Close()

			if len(args) == 1 && args[0] == "down" {
				return app.MigrateDown(cmd.Context(), pool, d.log)
			}
			return app.MigrateUp(cmd.Context(), pool, d.log)
		},
	}
}
