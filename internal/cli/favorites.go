package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

type toggleResult struct {
	ID       string `json:"id" yaml:"id"`
	Favorite bool   `json:"favorite" yaml:"favorite"`
}

func newFavoritesCmd(d *deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "favorites",
		Short: "List or toggle favorite campsites",
	}
	cmd.AddCommand(newFavoritesListCmd(d))
	cmd.AddCommand(newFavoritesToggleCmd(d))
	return cmd
}

func newFavoritesListCmd(d *deps) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List favorite campsites in catalog order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, closeStore, err := d.store(cmd.Context())
			if err != nil {
				return err
			}
			defer closeStore()

			sites, err := store.FavoriteCampsites(cmd.Context())
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), d.output, sites, func(tw *tabwriter.Writer) {
				campsiteTable(tw, sites)
			})
		},
	}
}

func newFavoritesToggleCmd(d *deps) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <id>",
		Short: "Add a campsite to favorites, or remove it if already there",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, closeStore, err := d.store(cmd.Context())
			if err != nil {
				return err
			}
			defer closeStore()

			id := args[0]
			if _, ok := store.GetCampsiteByID(id); !ok {
				d.log.Warn("campsite not in catalog; toggling anyway", "id", id)
			}
			now, err := store.ToggleFavorite(cmd.Context(), id)
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), d.output, toggleResult{ID: id, Favorite: now}, func(tw *tabwriter.Writer) {
				if now {
					fmt.Fprintf(tw, "%s added to favorites\n", id)
				} else {
					fmt.Fprintf(tw, "%s removed from favorites\n", id)
				}
			})
		},
	}
}
