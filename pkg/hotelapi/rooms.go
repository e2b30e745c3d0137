package hotelapi

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/me/hotelx/pkg/model"
)

// RoomsClient adds the availability search to the generic room CRUD.
type RoomsClient struct {
	*EntityClient[model.Room]
}

// NewRoomsClient builds the rooms client.
func NewRoomsClient(cfg Config, session *Session, logger *slog.Logger) *RoomsClient {
	return &RoomsClient{EntityClient: NewEntityClient[model.Room](cfg, ResourceRooms, session, logger)}
}

// Available searches rooms matching the availability request. The request is
// validated first and an invalid one — including an end date not strictly
// after the start date — is rejected without touching the network. Both dates
// are normalized to UTC midnight before querying so a date-only comparison on
// the backend cannot drift a day under any local timezone. The listing is
// public: no bearer token is sent.
func (c *RoomsClient) Available(ctx context.Context, req model.AvailabilityRequest) Result[[]model.Room] {
	if err := req.Validate(); err != nil {
		return validationResult[[]model.Room](err)
	}
	req = req.NormalizedUTC()

	query := url.Values{}
	if req.GuestCount != 0 {
		query.Set("guestCount", strconv.Itoa(req.GuestCount))
	}
	if !req.StartDate.IsZero() {
		query.Set("startDate", req.StartDate.Format(time.RFC3339))
	}
	if !req.EndDate.IsZero() {
		query.Set("endDate", req.EndDate.Format(time.RFC3339))
	}
	if req.ExcludeBookingID != "" {
		query.Set("excludeBookingId", req.ExcludeBookingID)
	}

	return invoke[[]model.Room](c.EntityClient.c, ctx, http.MethodGet, "", query, nil, false, false)
}
