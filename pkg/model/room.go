package model

import "fmt"

// Room is a bookable room belonging to a hotel. ImageURL is an opaque
// reference rendered by the caller; this layer never fetches it.
type Room struct {
	BaseEntity
	RoomName   string  `json:"roomName"`
	RoomNumber int     `json:"roomNumber"`
	BedCount   int     `json:"bedCount"`
	Price      float64 `json:"price"`
	ImageURL   string  `json:"imageUrl,omitempty"`
	HotelID    string  `json:"hotelId"`
}

// Validate reports every field violation on the room. Bed counts reuse the
// guest-count bounds as capacity limits.
func (r Room) Validate() error {
	var fields []FieldError
	if r.RoomName == "" {
		fields = append(fields, FieldError{Field: "roomName", Message: "Room name is required"})
	}
	if r.RoomNumber < 1 {
		fields = append(fields, FieldError{Field: "roomNumber", Message: "Room number must be a positive integer"})
	}
	if r.BedCount < MinGuestCount || r.BedCount > MaxGuestCount {
		fields = append(fields, FieldError{
			Field:   "bedCount",
			Message: fmt.Sprintf("Bed count must be between %d and %d", MinGuestCount, MaxGuestCount),
		})
	}
	if r.Price < 0 {
		fields = append(fields, FieldError{Field: "price", Message: "Price must be a non-negative number"})
	}
	if !validUUID(r.HotelID) {
		fields = append(fields, FieldError{Field: "hotelId", Message: "Invalid Hotel ID"})
	}
	return newValidationError(fields)
}
