// Package devserver implements a self-contained development backend for the
// hotel booking API. It serves the same wire contract the hotelapi clients
// speak: raw JSON entity bodies, {"error": message} failures, HS256 access
// tokens carrying the identity claims, and rotating opaque refresh tokens.
package devserver

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/me/hotelx/internal/config"
	"github.com/me/hotelx/internal/devserver/store"
)

// Server is the dev backend REST server.
type Server struct {
	router chi.Router
	logger *slog.Logger
	config config.ServerConfig
	store  store.Store
}

// New creates a new Server with all routes registered.
func New(cfg config.ServerConfig, st store.Store, logger *slog.Logger) *Server {
	s := &Server{
		router: chi.NewRouter(),
		logger: logger.With("component", "devserver"),
		config: cfg,
		store:  st,
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Handler returns the http.Handler for this server.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) routes() {
	r := s.router

	// Global middleware
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(requestIDMiddleware)
	r.Use(loggingMiddleware(s.logger))

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/identity/account", func(r chi.Router) {
			r.Post("/register", s.handleRegister)
			r.Post("/login", s.handleLogin)
			r.Post("/refreshtoken", s.handleRefreshToken)
			r.Group(func(r chi.Router) {
				r.Use(s.requireAuth)
				r.Post("/logout", s.handleLogout)
			})
		})

		// Hotels: reads are public, mutations need a token.
		r.Route("/hotels", func(r chi.Router) {
			r.Get("/", s.handleListHotels)
			r.Get("/{id}", s.handleGetHotel)
			r.Group(func(r chi.Router) {
				r.Use(s.requireAuth)
				r.Post("/", s.handleCreateHotel)
				r.Put("/{id}", s.handleUpdateHotel)
				r.Delete("/{id}", s.handleDeleteHotel)
			})
		})

		// Rooms: reads and the availability search are public. The collection
		// root doubles as the search endpoint, so clients querying
		// GET /rooms?guestCount=...&startDate=... get filtered results;
		// /available is kept as an alias.
		r.Route("/rooms", func(r chi.Router) {
			r.Get("/", s.handleListRooms)
			r.Get("/available", s.handleListRooms)
			r.Get("/{id}", s.handleGetRoom)
			r.Group(func(r chi.Router) {
				r.Use(s.requireAuth)
				r.Post("/", s.handleCreateRoom)
				r.Put("/{id}", s.handleUpdateRoom)
				r.Delete("/{id}", s.handleDeleteRoom)
			})
		})

		// Clients are an admin resource.
		r.Route("/clients", func(r chi.Router) {
			r.Use(s.requireAuth)
			r.Get("/", s.handleListClients)
			r.Post("/", s.handleCreateClient)
			r.Get("/{id}", s.handleGetClient)
			r.Put("/{id}", s.handleUpdateClient)
			r.Delete("/{id}", s.handleDeleteClient)
		})

		r.Route("/bookings", func(r chi.Router) {
			r.Use(s.requireAuth)
			r.Get("/", s.handleListBookings)
			r.Post("/", s.handleCreateBooking)
			r.Get("/{id}", s.handleGetBooking)
			r.Put("/{id}", s.handleUpdateBooking)
			r.Delete("/{id}", s.handleDeleteBooking)
			r.Post("/{id}/cancel", s.handleCancelBooking)
		})
	})
}
