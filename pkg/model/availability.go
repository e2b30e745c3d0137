package model

import (
	"fmt"
	"time"
)

// AvailabilityRequest describes a room search: how many guests and for which
// stay dates. All fields are optional; a zero time means the date was not
// given and a zero guest count means no capacity filter. ExcludeBookingID
// lets an edit form exclude its own booking from the availability check.
type AvailabilityRequest struct {
	GuestCount       int       `json:"guestCount,omitempty"`
	StartDate        time.Time `json:"startDate,omitzero"`
	EndDate          time.Time `json:"endDate,omitzero"`
	ExcludeBookingID string    `json:"excludeBookingId,omitempty"`
}

// Validate reports every violation in the request:
//
//   - a guest count, when given, must lie within [MinGuestCount, MaxGuestCount]
//   - start and end date must either both be given or both be absent
//   - when both are given, the end date must be strictly after the start date
//   - the exclusion id, when given, must be a well-formed UUID
func (r AvailabilityRequest) Validate() error {
	var fields []FieldError
	if r.GuestCount != 0 && (r.GuestCount < MinGuestCount || r.GuestCount > MaxGuestCount) {
		fields = append(fields, FieldError{
			Field:   "guestCount",
			Message: fmt.Sprintf("Guest count must be between %d and %d", MinGuestCount, MaxGuestCount),
		})
	}
	switch {
	case !r.StartDate.IsZero() && r.EndDate.IsZero():
		fields = append(fields, FieldError{Field: "endDate", Message: "End date is required"})
	case r.StartDate.IsZero() && !r.EndDate.IsZero():
		fields = append(fields, FieldError{Field: "startDate", Message: "Start date is required"})
	case !r.StartDate.IsZero() && !r.EndDate.IsZero() && !r.EndDate.After(r.StartDate):
		fields = append(fields, FieldError{Field: "endDate", Message: "End date cannot be earlier or equal to start date"})
	}
	if r.ExcludeBookingID != "" && !validUUID(r.ExcludeBookingID) {
		fields = append(fields, FieldError{Field: "excludeBookingId", Message: "Invalid booking ID"})
	}
	return newValidationError(fields)
}

// NormalizedUTC returns a copy of the request with both dates mapped to UTC
// midnight of their local calendar date.
func (r AvailabilityRequest) NormalizedUTC() AvailabilityRequest {
	if !r.StartDate.IsZero() {
		r.StartDate = ToUTCDate(r.StartDate)
	}
	if !r.EndDate.IsZero() {
		r.EndDate = ToUTCDate(r.EndDate)
	}
	return r
}
