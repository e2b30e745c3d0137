package hotelapi

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/me/hotelx/pkg/model"
)

// Void marks operations whose success carries no payload.
type Void = struct{}

// BookingsClient adds the booking-specific operations to the generic CRUD.
type BookingsClient struct {
	*EntityClient[model.Booking]
}

// NewBookingsClient builds the bookings client.
func NewBookingsClient(cfg Config, session *Session, logger *slog.Logger) *BookingsClient {
	return &BookingsClient{EntityClient: NewEntityClient[model.Booking](cfg, ResourceBookings, session, logger)}
}

// List retrieves bookings with bearer auth. With viewAll set an admin sees
// every booking; otherwise only the caller's own.
func (c *BookingsClient) List(ctx context.Context, viewAll bool) Result[[]model.Booking] {
	query := url.Values{"viewAll": []string{strconv.FormatBool(viewAll)}}
	return invoke[[]model.Booking](c.EntityClient.c, ctx, http.MethodGet, "", query, nil, true, true)
}

// Cancel marks the booking cancelled via the cancel sub-resource. Any status
// below 300 is success; 401 follows the shared refresh-and-retry-once
// protocol.
func (c *BookingsClient) Cancel(ctx context.Context, bookingID string) Result[Void] {
	return invoke[Void](c.EntityClient.c, ctx, http.MethodPost, bookingID+"/cancel", nil, nil, true, true)
}

// CreateFromSearch composes a new booking from a chosen room, the booking
// guest, and the search dates, normalized to UTC midnight, and delegates to
// Create. The booking starts out not cancelled.
func (c *BookingsClient) CreateFromSearch(ctx context.Context, room model.Room, guestID string, search model.AvailabilityRequest) Result[model.Booking] {
	booking := model.Booking{
		RoomID:      room.ID,
		AppUserID:   guestID,
		StartDate:   model.ToUTCDate(search.StartDate),
		EndDate:     model.ToUTCDate(search.EndDate),
		GuestCount:  search.GuestCount,
		IsCancelled: false,
	}
	if err := booking.Validate(); err != nil {
		return validationResult[model.Booking](err)
	}
	return c.Create(ctx, booking)
}
