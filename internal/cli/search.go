package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/me/hotelx/pkg/model"
)

const dayFormat = "2006-01-02"

// parseDay parses a YYYY-MM-DD flag into a UTC midnight.
func parseDay(flagName, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(dayFormat, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("--%s: expected YYYY-MM-DD, got %q", flagName, value)
	}
	return t, nil
}

func newSearchCmd() *cobra.Command {
	var (
		guests  int
		from    string
		to      string
		exclude string
	)

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search available rooms",
		Long:  "Search rooms by guest count and date range. All filters are optional, but --from and --to must be given together.",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := model.AvailabilityRequest{GuestCount: guests, ExcludeBookingID: exclude}
			var err error
			if req.StartDate, err = parseDay("from", from); err != nil {
				return err
			}
			if req.EndDate, err = parseDay("to", to); err != nil {
				return err
			}

			res := rooms.Available(cmd.Context(), req)
			if !res.OK() {
				return resultErr(res.Errors)
			}

			if len(res.Data) == 0 {
				fmt.Println("No rooms available.")
				return nil
			}

			fmt.Printf("%-36s  %-20s  %6s  %4s  %8s\n", "ID", "NAME", "NUMBER", "BEDS", "PRICE")
			for _, room := range res.Data {
				fmt.Printf("%-36s  %-20s  %6d  %4d  %8.2f\n",
					room.ID, room.RoomName, room.RoomNumber, room.BedCount, room.Price)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&guests, "guests", 0, "Number of guests")
	cmd.Flags().StringVar(&from, "from", "", "Check-in date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "Check-out date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&exclude, "exclude-booking", "", "Booking ID to ignore while checking overlap")
	return cmd
}

func newBookCmd() *cobra.Command {
	var (
		guests int
		from   string
		to     string
	)

	cmd := &cobra.Command{
		Use:   "book <room-id>",
		Short: "Book a room",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := session.Principal()
			if p.Anonymous() {
				return fmt.Errorf("not logged in; run hotelctl login first")
			}

			search := model.AvailabilityRequest{GuestCount: guests}
			var err error
			if search.StartDate, err = parseDay("from", from); err != nil {
				return err
			}
			if search.EndDate, err = parseDay("to", to); err != nil {
				return err
			}

			roomRes := rooms.GetByID(cmd.Context(), args[0])
			if !roomRes.OK() {
				return resultErr(roomRes.Errors)
			}

			res := bookings.CreateFromSearch(cmd.Context(), roomRes.Data, p.ID, search)
			if !res.OK() {
				return resultErr(res.Errors)
			}

			b := res.Data
			fmt.Printf("Booked %s: %s to %s (booking %s)\n",
				roomRes.Data.RoomName, b.StartDate.Format(dayFormat), b.EndDate.Format(dayFormat), b.ID)
			return nil
		},
	}

	cmd.Flags().IntVar(&guests, "guests", 0, "Number of guests")
	cmd.Flags().StringVar(&from, "from", "", "Check-in date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "Check-out date (YYYY-MM-DD)")
	cmd.MarkFlagRequired("from")
	cmd.MarkFlagRequired("to")
	return cmd
}
