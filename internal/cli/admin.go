package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/me/hotelx/pkg/model"
)

// Admin CRUD commands for hotels, rooms, and client records. Updates send the
// full entity, so every field flag must be provided again.

func newHotelsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hotels",
		Short: "Manage hotels (admin)",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List hotels",
		RunE: func(cmd *cobra.Command, args []string) error {
			res := hotels.ListPublic(cmd.Context())
			if !res.OK() {
				return resultErr(res.Errors)
			}
			if len(res.Data) == 0 {
				fmt.Println("No hotels found.")
				return nil
			}
			fmt.Printf("%-36s  %-24s  %-30s  %s\n", "ID", "NAME", "ADDRESS", "EMAIL")
			for _, h := range res.Data {
				fmt.Printf("%-36s  %-24s  %-30s  %s\n", h.ID, h.Name, h.Address, h.Email)
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "get <id>",
		Short: "Show one hotel",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res := hotels.GetByID(cmd.Context(), args[0])
			if !res.OK() {
				return resultErr(res.Errors)
			}
			h := res.Data
			fmt.Printf("%-8s %s\n%-8s %s\n%-8s %s\n%-8s %s\n%-8s %s\n",
				"ID:", h.ID, "Name:", h.Name, "Address:", h.Address, "Phone:", h.PhoneNumber, "Email:", h.Email)
			return nil
		},
	})

	var hotel model.Hotel
	create := &cobra.Command{
		Use:   "create",
		Short: "Create a hotel",
		RunE: func(cmd *cobra.Command, args []string) error {
			res := hotels.Create(cmd.Context(), hotel)
			if !res.OK() {
				return resultErr(res.Errors)
			}
			fmt.Printf("Hotel %s created (%s)\n", res.Data.Name, res.Data.ID)
			return nil
		},
	}
	addHotelFlags(create, &hotel)

	var updated model.Hotel
	update := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a hotel",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			updated.ID = args[0]
			res := hotels.Update(cmd.Context(), args[0], updated)
			if !res.OK() {
				return resultErr(res.Errors)
			}
			fmt.Printf("Hotel %s updated\n", res.Data.ID)
			return nil
		},
	}
	addHotelFlags(update, &updated)

	cmd.AddCommand(create, update, newDeleteCmd("hotel", func(cmd *cobra.Command, id string) ([]string, error) {
		res := hotels.Delete(cmd.Context(), id)
		return res.Errors, nil
	}))
	return cmd
}

func addHotelFlags(cmd *cobra.Command, h *model.Hotel) {
	cmd.Flags().StringVar(&h.Name, "name", "", "Hotel name")
	cmd.Flags().StringVar(&h.Address, "address", "", "Street address")
	cmd.Flags().StringVar(&h.PhoneNumber, "phone", "", "Contact phone (E.164)")
	cmd.Flags().StringVar(&h.Email, "email", "", "Contact email")
}

func newRoomsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rooms",
		Short: "Manage rooms (admin)",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List rooms",
		RunE: func(cmd *cobra.Command, args []string) error {
			res := rooms.ListPublic(cmd.Context())
			if !res.OK() {
				return resultErr(res.Errors)
			}
			if len(res.Data) == 0 {
				fmt.Println("No rooms found.")
				return nil
			}
			fmt.Printf("%-36s  %-20s  %6s  %4s  %8s  %s\n", "ID", "NAME", "NUMBER", "BEDS", "PRICE", "HOTEL")
			for _, r := range res.Data {
				fmt.Printf("%-36s  %-20s  %6d  %4d  %8.2f  %s\n",
					r.ID, r.RoomName, r.RoomNumber, r.BedCount, r.Price, r.HotelID)
			}
			return nil
		},
	})

	var room model.Room
	create := &cobra.Command{
		Use:   "create",
		Short: "Create a room",
		RunE: func(cmd *cobra.Command, args []string) error {
			res := rooms.Create(cmd.Context(), room)
			if !res.OK() {
				return resultErr(res.Errors)
			}
			fmt.Printf("Room %s created (%s)\n", res.Data.RoomName, res.Data.ID)
			return nil
		},
	}
	addRoomFlags(create, &room)

	var updated model.Room
	update := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a room",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			updated.ID = args[0]
			res := rooms.Update(cmd.Context(), args[0], updated)
			if !res.OK() {
				return resultErr(res.Errors)
			}
			fmt.Printf("Room %s updated\n", res.Data.ID)
			return nil
		},
	}
	addRoomFlags(update, &updated)

	cmd.AddCommand(create, update, newDeleteCmd("room", func(cmd *cobra.Command, id string) ([]string, error) {
		res := rooms.Delete(cmd.Context(), id)
		return res.Errors, nil
	}))
	return cmd
}

func addRoomFlags(cmd *cobra.Command, r *model.Room) {
	cmd.Flags().StringVar(&r.RoomName, "name", "", "Room name")
	cmd.Flags().IntVar(&r.RoomNumber, "number", 0, "Room number")
	cmd.Flags().IntVar(&r.BedCount, "beds", 0, "Bed count")
	cmd.Flags().Float64Var(&r.Price, "price", 0, "Price per night")
	cmd.Flags().StringVar(&r.ImageURL, "image-url", "", "Image URL")
	cmd.Flags().StringVar(&r.HotelID, "hotel", "", "Hotel ID")
}

func newClientsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clients",
		Short: "Manage client records (admin)",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List client records",
		RunE: func(cmd *cobra.Command, args []string) error {
			res := clients.List(cmd.Context())
			if !res.OK() {
				return resultErr(res.Errors)
			}
			if len(res.Data) == 0 {
				fmt.Println("No clients found.")
				return nil
			}
			fmt.Printf("%-36s  %-14s  %-14s  %-26s  %s\n", "ID", "FIRST NAME", "LAST NAME", "EMAIL", "PERSONAL CODE")
			for _, c := range res.Data {
				fmt.Printf("%-36s  %-14s  %-14s  %-26s  %s\n",
					c.ID, c.FirstName, c.LastName, c.Email, c.PersonalCode)
			}
			return nil
		},
	})

	var client model.Client
	create := &cobra.Command{
		Use:   "create",
		Short: "Create a client record",
		RunE: func(cmd *cobra.Command, args []string) error {
			res := clients.Create(cmd.Context(), client)
			if !res.OK() {
				return resultErr(res.Errors)
			}
			fmt.Printf("Client %s %s created (%s)\n", res.Data.FirstName, res.Data.LastName, res.Data.ID)
			return nil
		},
	}
	addClientFlags(create, &client)

	var updated model.Client
	update := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a client record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			updated.ID = args[0]
			res := clients.Update(cmd.Context(), args[0], updated)
			if !res.OK() {
				return resultErr(res.Errors)
			}
			fmt.Printf("Client %s updated\n", res.Data.ID)
			return nil
		},
	}
	addClientFlags(update, &updated)

	cmd.AddCommand(create, update, newDeleteCmd("client", func(cmd *cobra.Command, id string) ([]string, error) {
		res := clients.Delete(cmd.Context(), id)
		return res.Errors, nil
	}))
	return cmd
}

func addClientFlags(cmd *cobra.Command, c *model.Client) {
	cmd.Flags().StringVar(&c.FirstName, "first-name", "", "First name")
	cmd.Flags().StringVar(&c.LastName, "last-name", "", "Last name")
	cmd.Flags().StringVar(&c.Email, "email", "", "Email")
	cmd.Flags().StringVar(&c.PersonalCode, "personal-code", "", "National personal code")
}

// newDeleteCmd builds the shared delete subcommand shape.
func newDeleteCmd(noun string, del func(cmd *cobra.Command, id string) ([]string, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a " + noun,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			errs, err := del(cmd, args[0])
			if err != nil {
				return err
			}
			if len(errs) > 0 {
				return resultErr(errs)
			}
			fmt.Printf("Deleted %s %s\n", noun, args[0])
			return nil
		},
	}
}
