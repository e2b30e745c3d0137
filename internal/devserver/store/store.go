package store

import (
	"context"
	"time"

	"github.com/me/hotelx/pkg/model"
)

// User is a registered account. The password is stored as a bcrypt hash.
type User struct {
	ID           string
	Email        string
	FirstName    string
	LastName     string
	PersonalCode string
	Role         string
	PasswordHash string
}

// RefreshToken is a stored refresh credential. Only the SHA-256 hash of the
// opaque token is persisted.
type RefreshToken struct {
	Hash      string
	UserID    string
	ExpiresAt time.Time
}

// Store defines the persistence layer for the dev backend.
type Store interface {
	// Users and refresh tokens
	CreateUser(ctx context.Context, u *User) error
	GetUser(ctx context.Context, id string) (*User, error)
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	SaveRefreshToken(ctx context.Context, rt *RefreshToken) error
	GetRefreshToken(ctx context.Context, hash string) (*RefreshToken, error)
	DeleteRefreshToken(ctx context.Context, hash string) error
	DeleteRefreshTokensForUser(ctx context.Context, userID string) error

	// Hotel CRUD
	CreateHotel(ctx context.Context, h *model.Hotel) error
	GetHotel(ctx context.Context, id string) (*model.Hotel, error)
	ListHotels(ctx context.Context) ([]*model.Hotel, error)
	UpdateHotel(ctx context.Context, h *model.Hotel) error
	DeleteHotel(ctx context.Context, id string) (int, error)

	// Room CRUD
	CreateRoom(ctx context.Context, r *model.Room) error
	GetRoom(ctx context.Context, id string) (*model.Room, error)
	ListRooms(ctx context.Context) ([]*model.Room, error)
	UpdateRoom(ctx context.Context, r *model.Room) error
	DeleteRoom(ctx context.Context, id string) (int, error)

	// Client CRUD
	CreateClient(ctx context.Context, c *model.Client) error
	GetClient(ctx context.Context, id string) (*model.Client, error)
	ListClients(ctx context.Context) ([]*model.Client, error)
	UpdateClient(ctx context.Context, c *model.Client) error
	DeleteClient(ctx context.Context, id string) (int, error)

	// Booking operations
	CreateBooking(ctx context.Context, b *model.Booking) error
	GetBooking(ctx context.Context, id string) (*model.Booking, error)
	ListBookings(ctx context.Context, userID string, viewAll bool) ([]*model.Booking, error)
	UpdateBooking(ctx context.Context, b *model.Booking) error
	DeleteBooking(ctx context.Context, id string) (int, error)
	// OverlappingBookings returns non-cancelled bookings whose date range
	// intersects [start, end), excluding the booking with excludeID when set.
	OverlappingBookings(ctx context.Context, start, end time.Time, excludeID string) ([]*model.Booking, error)

	// Lifecycle
	Close() error
	Migrate(ctx context.Context) error
}
