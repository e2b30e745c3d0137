package devserver

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/me/hotelx/pkg/model"
)

// RoleAdmin may see and cancel every booking; customers only their own.
const RoleAdmin = "admin"

func (s *Server) handleListBookings(w http.ResponseWriter, r *http.Request) {
	user, _ := userFromContext(r.Context())

	viewAll := r.URL.Query().Get("viewAll") == "true"
	if viewAll && user.Role != RoleAdmin {
		viewAll = false
	}

	bookings, err := s.store.ListBookings(r.Context(), user.ID, viewAll)
	if err != nil {
		s.internalError(w, r, "list bookings", err)
		return
	}
	writeJSON(w, http.StatusOK, bookings)
}

func (s *Server) handleGetBooking(w http.ResponseWriter, r *http.Request) {
	b, deny := s.loadBooking(w, r)
	if deny {
		return
	}
	writeJSON(w, http.StatusOK, b)
}

func (s *Server) handleCreateBooking(w http.ResponseWriter, r *http.Request) {
	user, _ := userFromContext(r.Context())

	var b model.Booking
	if err := decodeBody(r, &b); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body: "+err.Error())
		return
	}
	if b.AppUserID == "" {
		b.AppUserID = user.ID
	}
	if err := b.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	room, err := s.store.GetRoom(r.Context(), b.RoomID)
	if err != nil {
		s.internalError(w, r, "get room", err)
		return
	}
	if room == nil {
		writeError(w, http.StatusBadRequest, "Room not found")
		return
	}
	if b.GuestCount > room.BedCount {
		writeError(w, http.StatusBadRequest, "Room does not fit the requested guest count")
		return
	}

	free, err := s.roomFree(r, b.RoomID, b.StartDate, b.EndDate, "")
	if err != nil {
		s.internalError(w, r, "check availability", err)
		return
	}
	if !free {
		writeError(w, http.StatusConflict, "Room is not available for the selected dates")
		return
	}

	b.ID = uuid.New().String()
	b.IsCancelled = false
	if err := s.store.CreateBooking(r.Context(), &b); err != nil {
		s.internalError(w, r, "create booking", err)
		return
	}
	s.logger.Info("booking created", "booking_id", b.ID, "room_id", b.RoomID, "user_id", b.AppUserID)
	writeJSON(w, http.StatusCreated, b)
}

func (s *Server) handleUpdateBooking(w http.ResponseWriter, r *http.Request) {
	existing, deny := s.loadBooking(w, r)
	if deny {
		return
	}

	var b model.Booking
	if err := decodeBody(r, &b); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body: "+err.Error())
		return
	}
	b.ID = existing.ID
	if b.AppUserID == "" {
		b.AppUserID = existing.AppUserID
	}
	if err := b.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	free, err := s.roomFree(r, b.RoomID, b.StartDate, b.EndDate, b.ID)
	if err != nil {
		s.internalError(w, r, "check availability", err)
		return
	}
	if !free {
		writeError(w, http.StatusConflict, "Room is not available for the selected dates")
		return
	}

	if err := s.store.UpdateBooking(r.Context(), &b); err != nil {
		s.internalError(w, r, "update booking", err)
		return
	}
	writeJSON(w, http.StatusOK, b)
}

func (s *Server) handleDeleteBooking(w http.ResponseWriter, r *http.Request) {
	if _, deny := s.loadBooking(w, r); deny {
		return
	}
	n, err := s.store.DeleteBooking(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.internalError(w, r, "delete booking", err)
		return
	}
	writeJSON(w, http.StatusOK, n)
}

func (s *Server) handleCancelBooking(w http.ResponseWriter, r *http.Request) {
	b, deny := s.loadBooking(w, r)
	if deny {
		return
	}

	if b.IsCancelled {
		writeError(w, http.StatusBadRequest, "Booking is already cancelled")
		return
	}
	if !b.CancellableAt(time.Now()) {
		writeError(w, http.StatusBadRequest, fmt.Sprintf(
			"Bookings can only be cancelled at least %d days before the start date", model.CancellationDaysLimit))
		return
	}

	b.IsCancelled = true
	if err := s.store.UpdateBooking(r.Context(), b); err != nil {
		s.internalError(w, r, "cancel booking", err)
		return
	}
	s.logger.Info("booking cancelled", "booking_id", b.ID)
	w.WriteHeader(http.StatusNoContent)
}

// loadBooking fetches the path booking and enforces ownership. It writes the
// response itself on any denial and reports deny=true.
func (s *Server) loadBooking(w http.ResponseWriter, r *http.Request) (b *model.Booking, deny bool) {
	user, _ := userFromContext(r.Context())

	b, err := s.store.GetBooking(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.internalError(w, r, "get booking", err)
		return nil, true
	}
	if b == nil {
		writeError(w, http.StatusNotFound, "Booking not found")
		return nil, true
	}
	if b.AppUserID != user.ID && user.Role != RoleAdmin {
		writeError(w, http.StatusForbidden, "You can only access your own bookings")
		return nil, true
	}
	return b, false
}

// roomFree reports whether the room has no active booking overlapping
// [start, end), ignoring the booking with excludeID.
func (s *Server) roomFree(r *http.Request, roomID string, start, end time.Time, excludeID string) (bool, error) {
	overlapping, err := s.store.OverlappingBookings(r.Context(), start, end, excludeID)
	if err != nil {
		return false, err
	}
	for _, o := range overlapping {
		if o.RoomID == roomID {
			return false, nil
		}
	}
	return true, nil
}
