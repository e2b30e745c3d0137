package store

import (
	"context"
	"database/sql"
)

// schema contains the DDL for all dev backend tables.
// Each statement uses IF NOT EXISTS for idempotency.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id            TEXT PRIMARY KEY,
		email         TEXT NOT NULL UNIQUE,
		first_name    TEXT NOT NULL,
		last_name     TEXT NOT NULL,
		personal_code TEXT NOT NULL DEFAULT '',
		role          TEXT NOT NULL DEFAULT 'customer',
		password_hash TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS refresh_tokens (
		hash       TEXT PRIMARY KEY,
		user_id    TEXT NOT NULL,
		expires_at TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_refresh_tokens_user_id ON refresh_tokens(user_id)`,

	`CREATE TABLE IF NOT EXISTS hotels (
		id           TEXT PRIMARY KEY,
		name         TEXT NOT NULL,
		address      TEXT NOT NULL,
		phone_number TEXT NOT NULL,
		email        TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS rooms (
		id          TEXT PRIMARY KEY,
		room_name   TEXT NOT NULL,
		room_number INTEGER NOT NULL,
		bed_count   INTEGER NOT NULL,
		price       REAL NOT NULL,
		image_url   TEXT NOT NULL DEFAULT '',
		hotel_id    TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_rooms_hotel_id ON rooms(hotel_id)`,

	`CREATE TABLE IF NOT EXISTS clients (
		id            TEXT PRIMARY KEY,
		first_name    TEXT NOT NULL,
		last_name     TEXT NOT NULL,
		email         TEXT NOT NULL,
		personal_code TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS bookings (
		id           TEXT PRIMARY KEY,
		room_id      TEXT NOT NULL,
		app_user_id  TEXT NOT NULL,
		start_date   TEXT NOT NULL,
		end_date     TEXT NOT NULL,
		guest_count  INTEGER NOT NULL DEFAULT 0,
		is_cancelled INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE INDEX IF NOT EXISTS idx_bookings_room_id ON bookings(room_id)`,
	`CREATE INDEX IF NOT EXISTS idx_bookings_app_user_id ON bookings(app_user_id)`,
	// Compound index for the availability overlap query
	`CREATE INDEX IF NOT EXISTS idx_bookings_dates ON bookings(is_cancelled, start_date, end_date)`,
}

// migrate executes all schema DDL statements.
func migrate(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
