package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/pkordes/ventureline/backend/internal/domain"
)

func newCampsitesCmd(d *deps) *cobra.Command {
	return &cobra.Command{
		Use:   "campsites [query]",
		Short: "Search the catalog by name, location or tag",
		Example: `  ventureline campsites
  ventureline campsites tahoe -o json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, closeStore, err := d.store(cmd.Context())
			if err != nil {
				return err
			}
			defer closeStore()

			var q string
			if len(args) == 1 {
				q = args[0]
			}
			sites := store.GetCampsites(q)
			return render(cmd.OutOrStdout(), d.output, sites, func(tw *tabwriter.Writer) {
				campsiteTable(tw, sites)
			})
		},
	}
}

func newCampsiteCmd(d *deps) *cobra.Command {
	return &cobra.Command{
		Use:   "campsite <id>",
		Short: "Show one campsite",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, closeStore, err := d.store(cmd.Context())
			if err != nil {
				return err
			}
			defer closeStore()

			site, ok := store.GetCampsiteByID(args[0])
			if !ok {
				return fmt.Errorf("campsite %q %w", args[0], domain.ErrNotFound)
			}
			fav, err := store.IsFavorite(cmd.Context(), site.ID)
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), d.output, site, func(tw *tabwriter.Writer) {
				fmt.Fprintf(tw, "ID\t%s\n", site.ID)
				fmt.Fprintf(tw, "Name\t%s\n", site.Name)
				fmt.Fprintf(tw, "Location\t%s\n", site.Location)
				fmt.Fprintf(tw, "Price\t$%d/night\n", site.Price)
				fmt.Fprintf(tw, "Rating\t%.1f (%d reviews)\n", site.Rating, site.Reviews)
				fmt.Fprintf(tw, "Tags\t%s\n", strings.Join(site.Tags, ", "))
				if len(site.Amenities) > 0 {
					fmt.Fprintf(tw, "Amenities\t%s\n", strings.Join(site.Amenities, ", "))
				}
				fmt.Fprintf(tw, "Favorite\t%t\n", fav)
				if site.Description != "" {
					fmt.Fprintf(tw, "\n%s\n", site.Description)
				}
			})
		},
	}
}

func campsiteTable(tw *tabwriter.Writer, sites []domain.Campsite) {
	fmt.Fprintln(tw, "ID\tNAME\tLOCATION\tPRICE\tRATING")
	for _, s := range sites {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%.1f\n", s.ID, s.Name, s.Location, s.Price, s.Rating)
	}
}
