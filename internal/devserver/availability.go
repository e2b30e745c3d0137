package devserver

import (
	"net/http"
	"strconv"
	"time"

	"github.com/me/hotelx/pkg/model"
)

// handleListRooms serves the room collection and the availability search in
// one: rooms with enough beds for the requested guest count that have no
// active booking overlapping the requested date range. Filters are optional
// and combine; without any, every room comes back.
func (s *Server) handleListRooms(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	guestCount := 0
	if raw := q.Get("guestCount"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid guest count")
			return
		}
		guestCount = n
	}

	var startDate, endDate time.Time
	if raw := q.Get("startDate"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid start date")
			return
		}
		startDate = t
	}
	if raw := q.Get("endDate"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid end date")
			return
		}
		endDate = t
	}
	if startDate.IsZero() != endDate.IsZero() {
		writeError(w, http.StatusBadRequest, "Start date and end date must be provided together")
		return
	}

	rooms, err := s.store.ListRooms(r.Context())
	if err != nil {
		s.internalError(w, r, "list rooms", err)
		return
	}

	occupied := map[string]bool{}
	if !startDate.IsZero() {
		overlapping, err := s.store.OverlappingBookings(r.Context(), startDate, endDate, q.Get("excludeBookingId"))
		if err != nil {
			s.internalError(w, r, "find overlapping bookings", err)
			return
		}
		for _, b := range overlapping {
			occupied[b.RoomID] = true
		}
	}

	available := []*model.Room{}
	for _, room := range rooms {
		if guestCount > 0 && room.BedCount < guestCount {
			continue
		}
		if occupied[room.ID] {
			continue
		}
		available = append(available, room)
	}
	writeJSON(w, http.StatusOK, available)
}
