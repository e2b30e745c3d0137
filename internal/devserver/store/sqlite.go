package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/me/hotelx/pkg/model"

	_ "modernc.org/sqlite"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewSQLiteStore opens (or creates) a SQLite database at dbPath and returns a Store.
// Use ":memory:" for an in-memory database (useful in tests).
func NewSQLiteStore(dbPath string, logger *slog.Logger) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", dbPath, err)
	}

	// Enable WAL mode for better concurrent read performance.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("pragma wal: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("pragma fk: %w", err)
	}

	return &SQLiteStore{
		db:     db,
		logger: logger.With("component", "store"),
	}, nil
}

// Close closes the underlying database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Migrate creates all required tables and indexes.
func (s *SQLiteStore) Migrate(ctx context.Context) error {
	s.logger.Debug("sql", "op", "migrate")
	return migrate(ctx, s.db)
}

// --- Users and refresh tokens ---

func (s *SQLiteStore) CreateUser(ctx context.Context, u *User) error {
	s.logger.Debug("sql", "op", "insert", "table", "users", "id", u.ID)
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO users (id, email, first_name, last_name, personal_code, role, password_hash)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		u.ID, u.Email, u.FirstName, u.LastName, u.PersonalCode, u.Role, u.PasswordHash,
	)
	return err
}

func (s *SQLiteStore) GetUser(ctx context.Context, id string) (*User, error) {
	s.logger.Debug("sql", "op", "select", "table", "users", "id", id)
	var u User
	err := s.db.QueryRowContext(ctx,
		`SELECT id, email, first_name, last_name, personal_code, role, password_hash
		 FROM users WHERE id = ?`, id,
	).Scan(&u.ID, &u.Email, &u.FirstName, &u.LastName, &u.PersonalCode, &u.Role, &u.PasswordHash)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *SQLiteStore) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	s.logger.Debug("sql", "op", "select", "table", "users", "email", email)
	var u User
	err := s.db.QueryRowContext(ctx,
		`SELECT id, email, first_name, last_name, personal_code, role, password_hash
		 FROM users WHERE email = ?`, email,
	).Scan(&u.ID, &u.Email, &u.FirstName, &u.LastName, &u.PersonalCode, &u.Role, &u.PasswordHash)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *SQLiteStore) SaveRefreshToken(ctx context.Context, rt *RefreshToken) error {
	s.logger.Debug("sql", "op", "insert", "table", "refresh_tokens", "user_id", rt.UserID)
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO refresh_tokens (hash, user_id, expires_at) VALUES (?, ?, ?)`,
		rt.Hash, rt.UserID, rt.ExpiresAt.Format(time.RFC3339Nano),
	)
	return err
}

func (s *SQLiteStore) GetRefreshToken(ctx context.Context, hash string) (*RefreshToken, error) {
	s.logger.Debug("sql", "op", "select", "table", "refresh_tokens")
	var rt RefreshToken
	var expiresAt string
	err := s.db.QueryRowContext(ctx,
		`SELECT hash, user_id, expires_at FROM refresh_tokens WHERE hash = ?`, hash,
	).Scan(&rt.Hash, &rt.UserID, &expiresAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	rt.ExpiresAt, err = time.Parse(time.RFC3339Nano, expiresAt)
	if err != nil {
		return nil, fmt.Errorf("parse expires_at: %w", err)
	}
	return &rt, nil
}

func (s *SQLiteStore) DeleteRefreshToken(ctx context.Context, hash string) error {
	s.logger.Debug("sql", "op", "delete", "table", "refresh_tokens")
	_, err := s.db.ExecContext(ctx, `DELETE FROM refresh_tokens WHERE hash = ?`, hash)
	return err
}

func (s *SQLiteStore) DeleteRefreshTokensForUser(ctx context.Context, userID string) error {
	s.logger.Debug("sql", "op", "delete", "table", "refresh_tokens", "user_id", userID)
	_, err := s.db.ExecContext(ctx, `DELETE FROM refresh_tokens WHERE user_id = ?`, userID)
	return err
}

// --- Hotel CRUD ---

func (s *SQLiteStore) CreateHotel(ctx context.Context, h *model.Hotel) error {
	s.logger.Debug("sql", "op", "insert", "table", "hotels", "id", h.ID)
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO hotels (id, name, address, phone_number, email) VALUES (?, ?, ?, ?, ?)`,
		h.ID, h.Name, h.Address, h.PhoneNumber, h.Email,
	)
	return err
}

func (s *SQLiteStore) GetHotel(ctx context.Context, id string) (*model.Hotel, error) {
	s.logger.Debug("sql", "op", "select", "table", "hotels", "id", id)
	var h model.Hotel
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, address, phone_number, email FROM hotels WHERE id = ?`, id,
	).Scan(&h.ID, &h.Name, &h.Address, &h.PhoneNumber, &h.Email)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &h, nil
}

func (s *SQLiteStore) ListHotels(ctx context.Context) ([]*model.Hotel, error) {
	s.logger.Debug("sql", "op", "select", "table", "hotels")
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, address, phone_number, email FROM hotels ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	hotels := []*model.Hotel{}
	for rows.Next() {
		var h model.Hotel
		if err := rows.Scan(&h.ID, &h.Name, &h.Address, &h.PhoneNumber, &h.Email); err != nil {
			return nil, err
		}
		hotels = append(hotels, &h)
	}
	return hotels, rows.Err()
}

func (s *SQLiteStore) UpdateHotel(ctx context.Context, h *model.Hotel) error {
	s.logger.Debug("sql", "op", "update", "table", "hotels", "id", h.ID)
	_, err := s.db.ExecContext(ctx,
		`UPDATE hotels SET name = ?, address = ?, phone_number = ?, email = ? WHERE id = ?`,
		h.Name, h.Address, h.PhoneNumber, h.Email, h.ID,
	)
	return err
}

func (s *SQLiteStore) DeleteHotel(ctx context.Context, id string) (int, error) {
	s.logger.Debug("sql", "op", "delete", "table", "hotels", "id", id)
	res, err := s.db.ExecContext(ctx, `DELETE FROM hotels WHERE id = ?`, id)
	if err != nil {
		return 0, err
	}
	n, err := res.RowsAffected()
	return int(n), err
}

// --- Room CRUD ---

func (s *SQLiteStore) CreateRoom(ctx context.Context, r *model.Room) error {
	s.logger.Debug("sql", "op", "insert", "table", "rooms", "id", r.ID)
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO rooms (id, room_name, room_number, bed_count, price, image_url, hotel_id)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.RoomName, r.RoomNumber, r.BedCount, r.Price, r.ImageURL, r.HotelID,
	)
	return err
}

func (s *SQLiteStore) GetRoom(ctx context.Context, id string) (*model.Room, error) {
	s.logger.Debug("sql", "op", "select", "table", "rooms", "id", id)
	var r model.Room
	err := s.db.QueryRowContext(ctx,
		`SELECT id, room_name, room_number, bed_count, price, image_url, hotel_id
		 FROM rooms WHERE id = ?`, id,
	).Scan(&r.ID, &r.RoomName, &r.RoomNumber, &r.BedCount, &r.Price, &r.ImageURL, &r.HotelID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func (s *SQLiteStore) ListRooms(ctx context.Context) ([]*model.Room, error) {
	s.logger.Debug("sql", "op", "select", "table", "rooms")
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, room_name, room_number, bed_count, price, image_url, hotel_id
		 FROM rooms ORDER BY room_number`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	rooms := []*model.Room{}
	for rows.Next() {
		var r model.Room
		if err := rows.Scan(&r.ID, &r.RoomName, &r.RoomNumber, &r.BedCount, &r.Price, &r.ImageURL, &r.HotelID); err != nil {
			return nil, err
		}
		rooms = append(rooms, &r)
	}
	return rooms, rows.Err()
}

func (s *SQLiteStore) UpdateRoom(ctx context.Context, r *model.Room) error {
	s.logger.Debug("sql", "op", "update", "table", "rooms", "id", r.ID)
	_, err := s.db.ExecContext(ctx,
		`UPDATE rooms SET room_name = ?, room_number = ?, bed_count = ?, price = ?, image_url = ?, hotel_id = ?
		 WHERE id = ?`,
		r.RoomName, r.RoomNumber, r.BedCount, r.Price, r.ImageURL, r.HotelID, r.ID,
	)
	return err
}

func (s *SQLiteStore) DeleteRoom(ctx context.Context, id string) (int, error) {
	s.logger.Debug("sql", "op", "delete", "table", "rooms", "id", id)
	res, err := s.db.ExecContext(ctx, `DELETE FROM rooms WHERE id = ?`, id)
	if err != nil {
		return 0, err
	}
	n, err := res.RowsAffected()
	return int(n), err
}

// --- Client CRUD ---

func (s *SQLiteStore) CreateClient(ctx context.Context, c *model.Client) error {
	s.logger.Debug("sql", "op", "insert", "table", "clients", "id", c.ID)
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO clients (id, first_name, last_name, email, personal_code) VALUES (?, ?, ?, ?, ?)`,
		c.ID, c.FirstName, c.LastName, c.Email, c.PersonalCode,
	)
	return err
}

func (s *SQLiteStore) GetClient(ctx context.Context, id string) (*model.Client, error) {
	s.logger.Debug("sql", "op", "select", "table", "clients", "id", id)
	var c model.Client
	err := s.db.QueryRowContext(ctx,
		`SELECT id, first_name, last_name, email, personal_code FROM clients WHERE id = ?`, id,
	).Scan(&c.ID, &c.FirstName, &c.LastName, &c.Email, &c.PersonalCode)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *SQLiteStore) ListClients(ctx context.Context) ([]*model.Client, error) {
	s.logger.Debug("sql", "op", "select", "table", "clients")
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, first_name, last_name, email, personal_code FROM clients ORDER BY last_name, first_name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	clients := []*model.Client{}
	for rows.Next() {
		var c model.Client
		if err := rows.Scan(&c.ID, &c.FirstName, &c.LastName, &c.Email, &c.PersonalCode); err != nil {
			return nil, err
		}
		clients = append(clients, &c)
	}
	return clients, rows.Err()
}

func (s *SQLiteStore) UpdateClient(ctx context.Context, c *model.Client) error {
	s.logger.Debug("sql", "op", "update", "table", "clients", "id", c.ID)
	_, err := s.db.ExecContext(ctx,
		`UPDATE clients SET first_name = ?, last_name = ?, email = ?, personal_code = ? WHERE id = ?`,
		c.FirstName, c.LastName, c.Email, c.PersonalCode, c.ID,
	)
	return err
}

func (s *SQLiteStore) DeleteClient(ctx context.Context, id string) (int, error) {
	s.logger.Debug("sql", "op", "delete", "table", "clients", "id", id)
	res, err := s.db.ExecContext(ctx, `DELETE FROM clients WHERE id = ?`, id)
	if err != nil {
		return 0, err
	}
	n, err := res.RowsAffected()
	return int(n), err
}

// --- Booking operations ---

func (s *SQLiteStore) CreateBooking(ctx context.Context, b *model.Booking) error {
	s.logger.Debug("sql", "op", "insert", "table", "bookings", "id", b.ID)
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO bookings (id, room_id, app_user_id, start_date, end_date, guest_count, is_cancelled)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		b.ID, b.RoomID, b.AppUserID,
		b.StartDate.UTC().Format(time.RFC3339Nano), b.EndDate.UTC().Format(time.RFC3339Nano),
		b.GuestCount, boolToInt(b.IsCancelled),
	)
	return err
}

func (s *SQLiteStore) GetBooking(ctx context.Context, id string) (*model.Booking, error) {
	s.logger.Debug("sql", "op", "select", "table", "bookings", "id", id)
	row := s.db.QueryRowContext(ctx,
		`SELECT id, room_id, app_user_id, start_date, end_date, guest_count, is_cancelled
		 FROM bookings WHERE id = ?`, id)
	b, err := scanBooking(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (s *SQLiteStore) ListBookings(ctx context.Context, userID string, viewAll bool) ([]*model.Booking, error) {
	s.logger.Debug("sql", "op", "select", "table", "bookings", "user_id", userID, "view_all", viewAll)

	query := `SELECT id, room_id, app_user_id, start_date, end_date, guest_count, is_cancelled
	          FROM bookings`
	args := []any{}
	if !viewAll {
		query += ` WHERE app_user_id = ?`
		args = append(args, userID)
	}
	query += ` ORDER BY start_date`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectBookings(rows)
}

func (s *SQLiteStore) UpdateBooking(ctx context.Context, b *model.Booking) error {
	s.logger.Debug("sql", "op", "update", "table", "bookings", "id", b.ID)
	_, err := s.db.ExecContext(ctx,
		`UPDATE bookings SET room_id = ?, app_user_id = ?, start_date = ?, end_date = ?, guest_count = ?, is_cancelled = ?
		 WHERE id = ?`,
		b.RoomID, b.AppUserID,
		b.StartDate.UTC().Format(time.RFC3339Nano), b.EndDate.UTC().Format(time.RFC3339Nano),
		b.GuestCount, boolToInt(b.IsCancelled), b.ID,
	)
	return err
}

func (s *SQLiteStore) DeleteBooking(ctx context.Context, id string) (int, error) {
	s.logger.Debug("sql", "op", "delete", "table", "bookings", "id", id)
	res, err := s.db.ExecContext(ctx, `DELETE FROM bookings WHERE id = ?`, id)
	if err != nil {
		return 0, err
	}
	n, err := res.RowsAffected()
	return int(n), err
}

func (s *SQLiteStore) OverlappingBookings(ctx context.Context, start, end time.Time, excludeID string) ([]*model.Booking, error) {
	s.logger.Debug("sql", "op", "select", "table", "bookings", "overlap", true)

	// RFC 3339 strings in UTC compare lexicographically in date order, so the
	// half-open interval overlap test works directly on the stored text.
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, room_id, app_user_id, start_date, end_date, guest_count, is_cancelled
		 FROM bookings
		 WHERE is_cancelled = 0 AND start_date < ? AND end_date > ? AND id != ?`,
		end.UTC().Format(time.RFC3339Nano), start.UTC().Format(time.RFC3339Nano), excludeID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectBookings(rows)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBooking(row rowScanner) (*model.Booking, error) {
	var b model.Booking
	var startDate, endDate string
	var cancelled int
	if err := row.Scan(&b.ID, &b.RoomID, &b.AppUserID, &startDate, &endDate, &b.GuestCount, &cancelled); err != nil {
		return nil, err
	}
	var err error
	if b.StartDate, err = time.Parse(time.RFC3339Nano, startDate); err != nil {
		return nil, fmt.Errorf("parse start_date: %w", err)
	}
	if b.EndDate, err = time.Parse(time.RFC3339Nano, endDate); err != nil {
		return nil, fmt.Errorf("parse end_date: %w", err)
	}
	b.IsCancelled = cancelled != 0
	return &b, nil
}

func collectBookings(rows *sql.Rows) ([]*model.Booking, error) {
	bookings := []*model.Booking{}
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
