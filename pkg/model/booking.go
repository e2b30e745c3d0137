package model

import (
	"fmt"
	"time"
)

// Booking reserves a room for a guest over a date range. Dates are UTC
// midnights produced by ToUTCDate.
type Booking struct {
	BaseEntity
	RoomID      string    `json:"roomId"`
	AppUserID   string    `json:"appUserId"`
	StartDate   time.Time `json:"startDate"`
	EndDate     time.Time `json:"endDate"`
	GuestCount  int       `json:"guestCount,omitempty"`
	IsCancelled bool      `json:"isCancelled"`
}

// Validate reports every field violation on the booking. The end date must be
// strictly after the start date.
func (b Booking) Validate() error {
	var fields []FieldError
	if !validUUID(b.RoomID) {
		fields = append(fields, FieldError{Field: "roomId", Message: "Invalid Room ID"})
	}
	if !validUUID(b.AppUserID) {
		fields = append(fields, FieldError{Field: "appUserId", Message: "Invalid App User ID"})
	}
	if b.StartDate.IsZero() {
		fields = append(fields, FieldError{Field: "startDate", Message: "Start date is required"})
	}
	if b.EndDate.IsZero() {
		fields = append(fields, FieldError{Field: "endDate", Message: "End date is required"})
	}
	if !b.StartDate.IsZero() && !b.EndDate.IsZero() && !b.EndDate.After(b.StartDate) {
		fields = append(fields, FieldError{Field: "endDate", Message: "End date cannot be earlier or equal to start date"})
	}
	if b.GuestCount != 0 && (b.GuestCount < MinGuestCount || b.GuestCount > MaxGuestCount) {
		fields = append(fields, FieldError{
			Field:   "guestCount",
			Message: fmt.Sprintf("Guest count must be between %d and %d", MinGuestCount, MaxGuestCount),
		})
	}
	return newValidationError(fields)
}

// CancellableAt reports whether the booking may still be cancelled at the
// given instant: it is not already cancelled and its start date is at least
// CancellationDaysLimit days away. A booking starting exactly on the boundary
// is still cancellable.
func (b Booking) CancellableAt(now time.Time) bool {
	if b.IsCancelled {
		return false
	}
	return !b.StartDate.Before(now.AddDate(0, 0, CancellationDaysLimit))
}
