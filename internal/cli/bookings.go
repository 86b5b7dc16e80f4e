package cli

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/pkordes/ventureline/backend/internal/domain"
	"github.com/pkordes/ventureline/backend/internal/export"
	"github.com/pkordes/ventureline/backend/internal/service"
)

// defaultStayNights prices a booking created without --total.
const defaultStayNights = 2

func newBookingsCmd(d *deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bookings",
		Short: "List, create and export bookings",
	}
	cmd.AddCommand(newBookingsListCmd(d))
	cmd.AddCommand(newBookingsCreateCmd(d))
	cmd.AddCommand(newBookingsExportCmd(d))
	return cmd
}

func newBookingsListCmd(d *deps) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List bookings, most recent first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, closeStore, err := d.store(cmd.Context())
			if err != nil {
				return err
			}
			defer closeStore()

			bookings, err := store.GetBookings(cmd.Context())
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), d.output, bookings, func(tw *tabwriter.Writer) {
				bookingTable(tw, bookings)
			})
		},
	}
}

func newBookingsCreateCmd(d *deps) *cobra.Command {
	var req domain.BookingRequest

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a confirmed booking",
		Long: `Creates a booking after the configured processing delay (BOOKING_LATENCY).
The campsite snapshot is copied from the catalog. Without --total the price is
the nightly rate times two nights.`,
		Example: `  ventureline bookings create --campsite s1 --dates "Oct 24 - Oct 26" --guests "2 Adults"`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, closeStore, err := d.store(cmd.Context())
			if err != nil {
				return err
			}
			defer closeStore()

			site, ok := store.GetCampsiteByID(req.CampsiteID)
			if !ok {
				return fmt.Errorf("campsite %q %w", req.CampsiteID, domain.ErrNotFound)
			}
			req.CampsiteName = site.Name
			req.CampsiteImage = site.Image
			req.CampsiteLocation = site.Location
			if !cmd.Flags().Changed("total") {
				req.TotalPrice = service.QuoteTotal(site, defaultStayNights)
			} else if req.TotalPrice < 0 {
				return fmt.Errorf("%w: --total must not be negative", domain.ErrValidation)
			}

			b, err := store.CreateBooking(cmd.Context(), req)
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), d.output, b, func(tw *tabwriter.Writer) {
				bookingTable(tw, []domain.Booking{b})
			})
		},
	}
	cmd.Flags().StringVar(&req.CampsiteID, "campsite", "", "campsite id (required)")
	cmd.Flags().StringVar(&req.Dates, "dates", "", `stay dates, e.g. "Oct 24 - Oct 26"`)
	cmd.Flags().StringVar(&req.Guests, "guests", "", `party description, e.g. "2 Adults"`)
	cmd.Flags().IntVar(&req.TotalPrice, "total", 0, "total price in dollars")
	_ = cmd.MarkFlagRequired("campsite")
	return cmd
}

func newBookingsExportCmd(d *deps) *cobra.Command {
	var format, out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export bookings joined with the catalog",
		Example: `  ventureline bookings export --format csv
  ventureline bookings export --format parquet --out bookings.parquet`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := export.ParseFormat(format)
			if err != nil {
				return err
			}
			store, closeStore, err := d.store(cmd.Context())
			if err != nil {
				return err
			}
			defer closeStore()

			rows, err := store.ExportBookings(cmd.Context())
			if err != nil {
				return err
			}

			var w io.Writer = cmd.OutOrStdout()
			if out != "" {
				file, err := os.Create(out)
				if err != nil {
					return fmt.Errorf("bookings export: %w", err)
				}
				defer file.Close()
				w = file
			}
			if err := export.Write(w, f, rows); err != nil {
				return fmt.Errorf("bookings export: %w", err)
			}
			if out != "" {
				d.log.Info("bookings exported", "rows", len(rows), "format", string(f), "path", out)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", string(export.JSON), "json, csv or parquet")
	cmd.Flags().StringVar(&out, "out", "", "write to this file instead of stdout")
	return cmd
}

func bookingTable(tw *tabwriter.Writer, bookings []domain.Booking) {
	fmt.Fprintln(tw, "ID\tCAMPSITE\tDATES\tGUESTS\tTOTAL\tSTATUS\tBOOKED AT")
	for _, b := range bookings {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\t%s\t%s\n",
			b.ID, b.CampsiteName, b.Dates, b.Guests, b.TotalPrice, b.Status, b.BookedAt.Format("2006-01-02 15:04"))
	}
}
