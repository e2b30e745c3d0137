package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/me/hotelx/pkg/model"
)

func newBookingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bookings",
		Short: "List and cancel bookings",
	}
	cmd.AddCommand(newBookingsListCmd(), newBookingsCancelCmd())
	return cmd
}

func newBookingsListCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List bookings",
		RunE: func(cmd *cobra.Command, args []string) error {
			res := bookings.List(cmd.Context(), all)
			if !res.OK() {
				return resultErr(res.Errors)
			}

			if len(res.Data) == 0 {
				fmt.Println("No bookings found.")
				return nil
			}

			now := time.Now()
			fmt.Printf("%-36s  %-10s  %-10s  %6s  %s\n", "ID", "START", "END", "GUESTS", "STATUS")
			for _, b := range res.Data {
				fmt.Printf("%-36s  %-10s  %-10s  %6d  %s\n",
					b.ID, b.StartDate.Format(dayFormat), b.EndDate.Format(dayFormat),
					b.GuestCount, bookingStatus(b, now))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "List all bookings, not just your own (admin)")
	return cmd
}

func newBookingsCancelCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cancel <booking-id>",
		Short: "Cancel a booking",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]

			// Check the cancellation window locally before calling out; the
			// server enforces it again.
			res := bookings.GetByID(cmd.Context(), id)
			if !res.OK() {
				return resultErr(res.Errors)
			}
			b := res.Data
			if b.IsCancelled {
				return fmt.Errorf("booking %s is already cancelled", id)
			}
			if !b.CancellableAt(time.Now()) {
				return fmt.Errorf("booking %s starts %s; bookings can only be cancelled at least %d days in advance",
					id, b.StartDate.Format(dayFormat), model.CancellationDaysLimit)
			}

			if cres := bookings.Cancel(cmd.Context(), id); !cres.OK() {
				return resultErr(cres.Errors)
			}
			fmt.Printf("Booking %s cancelled.\n", id)
			return nil
		},
	}
}

func bookingStatus(b model.Booking, now time.Time) string {
	switch {
	case b.IsCancelled:
		return "cancelled"
	case b.EndDate.Before(now):
		return "past"
	case b.CancellableAt(now):
		return "active"
	default:
		return "active (non-cancellable)"
	}
}
