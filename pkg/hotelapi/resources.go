package hotelapi

import (
	"log/slog"

	"github.com/me/hotelx/pkg/model"
)

// NewHotelsClient builds the CRUD client for hotels.
func NewHotelsClient(cfg Config, session *Session, logger *slog.Logger) *EntityClient[model.Hotel] {
	return NewEntityClient[model.Hotel](cfg, ResourceHotels, session, logger)
}

// NewClientsClient builds the CRUD client for guest records.
func NewClientsClient(cfg Config, session *Session, logger *slog.Logger) *EntityClient[model.Client] {
	return NewEntityClient[model.Client](cfg, ResourceClients, session, logger)
}
