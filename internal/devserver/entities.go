package devserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/me/hotelx/pkg/model"
)

// --- Hotels ---

func (s *Server) handleListHotels(w http.ResponseWriter, r *http.Request) {
	hotels, err := s.store.ListHotels(r.Context())
	if err != nil {
		s.internalError(w, r, "list hotels", err)
		return
	}
	writeJSON(w, http.StatusOK, hotels)
}

func (s *Server) handleGetHotel(w http.ResponseWriter, r *http.Request) {
	h, err := s.store.GetHotel(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.internalError(w, r, "get hotel", err)
		return
	}
	if h == nil {
		writeError(w, http.StatusNotFound, "Hotel not found")
		return
	}
	writeJSON(w, http.StatusOK, h)
}

func (s *Server) handleCreateHotel(w http.ResponseWriter, r *http.Request) {
	var h model.Hotel
	if err := decodeBody(r, &h); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body: "+err.Error())
		return
	}
	if err := h.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, validationMessage(err))
		return
	}
	h.ID = uuid.New().String()
	if err := s.store.CreateHotel(r.Context(), &h); err != nil {
		s.internalError(w, r, "create hotel", err)
		return
	}
	writeJSON(w, http.StatusCreated, h)
}

func (s *Server) handleUpdateHotel(w http.ResponseWriter, r *http.Request) {
	var h model.Hotel
	if err := decodeBody(r, &h); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body: "+err.Error())
		return
	}
	h.ID = chi.URLParam(r, "id")
	if err := h.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, validationMessage(err))
		return
	}
	existing, err := s.store.GetHotel(r.Context(), h.ID)
	if err != nil {
		s.internalError(w, r, "get hotel", err)
		return
	}
	if existing == nil {
		writeError(w, http.StatusNotFound, "Hotel not found")
		return
	}
	if err := s.store.UpdateHotel(r.Context(), &h); err != nil {
		s.internalError(w, r, "update hotel", err)
		return
	}
	writeJSON(w, http.StatusOK, h)
}

func (s *Server) handleDeleteHotel(w http.ResponseWriter, r *http.Request) {
	n, err := s.store.DeleteHotel(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.internalError(w, r, "delete hotel", err)
		return
	}
	writeJSON(w, http.StatusOK, n)
}

// --- Rooms ---

// handleListRooms lives in availability.go: the room collection listing and
// the availability search share one handler.

func (s *Server) handleGetRoom(w http.ResponseWriter, r *http.Request) {
	room, err := s.store.GetRoom(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.internalError(w, r, "get room", err)
		return
	}
	if room == nil {
		writeError(w, http.StatusNotFound, "Room not found")
		return
	}
	writeJSON(w, http.StatusOK, room)
}

func (s *Server) handleCreateRoom(w http.ResponseWriter, r *http.Request) {
	var room model.Room
	if err := decodeBody(r, &room); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body: "+err.Error())
		return
	}
	if err := room.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, validationMessage(err))
		return
	}
	hotel, err := s.store.GetHotel(r.Context(), room.HotelID)
	if err != nil {
		s.internalError(w, r, "get hotel", err)
		return
	}
	if hotel == nil {
		writeError(w, http.StatusBadRequest, "Hotel not found")
		return
	}
	room.ID = uuid.New().String()
	if err := s.store.CreateRoom(r.Context(), &room); err != nil {
		s.internalError(w, r, "create room", err)
		return
	}
	writeJSON(w, http.StatusCreated, room)
}

func (s *Server) handleUpdateRoom(w http.ResponseWriter, r *http.Request) {
	var room model.Room
	if err := decodeBody(r, &room); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body: "+err.Error())
		return
	}
	room.ID = chi.URLParam(r, "id")
	if err := room.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, validationMessage(err))
		return
	}
	existing, err := s.store.GetRoom(r.Context(), room.ID)
	if err != nil {
		s.internalError(w, r, "get room", err)
		return
	}
	if existing == nil {
		writeError(w, http.StatusNotFound, "Room not found")
		return
	}
	if err := s.store.UpdateRoom(r.Context(), &room); err != nil {
		s.internalError(w, r, "update room", err)
		return
	}
	writeJSON(w, http.StatusOK, room)
}

func (s *Server) handleDeleteRoom(w http.ResponseWriter, r *http.Request) {
	n, err := s.store.DeleteRoom(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.internalError(w, r, "delete room", err)
		return
	}
	writeJSON(w, http.StatusOK, n)
}

// --- Clients ---

func (s *Server) handleListClients(w http.ResponseWriter, r *http.Request) {
	clients, err := s.store.ListClients(r.Context())
	if err != nil {
		s.internalError(w, r, "list clients", err)
		return
	}
	writeJSON(w, http.StatusOK, clients)
}

func (s *Server) handleGetClient(w http.ResponseWriter, r *http.Request) {
	c, err := s.store.GetClient(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.internalError(w, r, "get client", err)
		return
	}
	if c == nil {
		writeError(w, http.StatusNotFound, "Client not found")
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (s *Server) handleCreateClient(w http.ResponseWriter, r *http.Request) {
	var c model.Client
	if err := decodeBody(r, &c); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body: "+err.Error())
		return
	}
	if err := c.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, validationMessage(err))
		return
	}
	c.ID = uuid.New().String()
	if err := s.store.CreateClient(r.Context(), &c); err != nil {
		s.internalError(w, r, "create client", err)
		return
	}
	writeJSON(w, http.StatusCreated, c)
}

func (s *Server) handleUpdateClient(w http.ResponseWriter, r *http.Request) {
	var c model.Client
	if err := decodeBody(r, &c); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body: "+err.Error())
		return
	}
	c.ID = chi.URLParam(r, "id")
	if err := c.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, validationMessage(err))
		return
	}
	existing, err := s.store.GetClient(r.Context(), c.ID)
	if err != nil {
		s.internalError(w, r, "get client", err)
		return
	}
	if existing == nil {
		writeError(w, http.StatusNotFound, "Client not found")
		return
	}
	if err := s.store.UpdateClient(r.Context(), &c); err != nil {
		s.internalError(w, r, "update client", err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (s *Server) handleDeleteClient(w http.ResponseWriter, r *http.Request) {
	n, err := s.store.DeleteClient(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.internalError(w, r, "delete client", err)
		return
	}
	writeJSON(w, http.StatusOK, n)
}
