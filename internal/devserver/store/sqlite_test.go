package store

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/me/hotelx/pkg/model"
)

func testStore(t *testing.T) *SQLiteStore {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelError}))
	st, err := NewSQLiteStore(":memory:", logger)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	if err := st.Migrate(context.Background()); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return st
}

func utcDate(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestUserRoundTrip(t *testing.T) {
	st := testStore(t)
	ctx := context.Background()

	u := &User{
		ID:           uuid.New().String(),
		Email:        "mari@example.com",
		FirstName:    "Mari",
		LastName:     "Tamm",
		PersonalCode: "48805150000",
		Role:         "customer",
		PasswordHash: "$2a$10$fakehash",
	}
	if err := st.CreateUser(ctx, u); err != nil {
		t.Fatalf("create user: %v", err)
	}

	got, err := st.GetUserByEmail(ctx, "mari@example.com")
	if err != nil {
		t.Fatalf("get by email: %v", err)
	}
	if got == nil || *got != *u {
		t.Errorf("got %+v, want %+v", got, u)
	}

	missing, err := st.GetUser(ctx, uuid.New().String())
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Errorf("expected nil for missing user, got %+v", missing)
	}

	// Duplicate email must be rejected by the unique constraint.
	dup := *u
	dup.ID = uuid.New().String()
	if err := st.CreateUser(ctx, &dup); err == nil {
		t.Error("expected unique constraint violation for duplicate email")
	}
}

func TestRefreshTokenLifecycle(t *testing.T) {
	st := testStore(t)
	ctx := context.Background()

	userID := uuid.New().String()
	rt := &RefreshToken{
		Hash:      "abc123",
		UserID:    userID,
		ExpiresAt: time.Now().Add(24 * time.Hour).UTC().Truncate(time.Millisecond),
	}
	if err := st.SaveRefreshToken(ctx, rt); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := st.GetRefreshToken(ctx, "abc123")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || got.UserID != userID || !got.ExpiresAt.Equal(rt.ExpiresAt) {
		t.Errorf("got %+v, want %+v", got, rt)
	}

	if err := st.DeleteRefreshTokensForUser(ctx, userID); err != nil {
		t.Fatalf("delete for user: %v", err)
	}
	got, err = st.GetRefreshToken(ctx, "abc123")
	if err != nil {
		t.Fatalf("get after delete: %v", err)
	}
	if got != nil {
		t.Errorf("expected token gone, got %+v", got)
	}
}

func TestHotelCRUD(t *testing.T) {
	st := testStore(t)
	ctx := context.Background()

	h := &model.Hotel{
		BaseEntity:  model.BaseEntity{ID: uuid.New().String()},
		Name:        "Seaside",
		Address:     "1 Beach Rd",
		PhoneNumber: "+3725551234",
		Email:       "info@seaside.example",
	}
	if err := st.CreateHotel(ctx, h); err != nil {
		t.Fatalf("create: %v", err)
	}

	h.Name = "Seaside Grand"
	if err := st.UpdateHotel(ctx, h); err != nil {
		t.Fatalf("update: %v", err)
	}

	got, err := st.GetHotel(ctx, h.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != "Seaside Grand" {
		t.Errorf("Name = %q after update", got.Name)
	}

	hotels, err := st.ListHotels(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(hotels) != 1 {
		t.Fatalf("list returned %d hotels", len(hotels))
	}

	n, err := st.DeleteHotel(ctx, h.ID)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if n != 1 {
		t.Errorf("delete affected %d rows", n)
	}
	n, err = st.DeleteHotel(ctx, h.ID)
	if err != nil {
		t.Fatalf("delete again: %v", err)
	}
	if n != 0 {
		t.Errorf("second delete affected %d rows", n)
	}
}

func TestBookingRoundTripAndListScope(t *testing.T) {
	st := testStore(t)
	ctx := context.Background()

	alice := uuid.New().String()
	bob := uuid.New().String()
	room := uuid.New().String()

	mk := func(user string, startDay int) *model.Booking {
		b := &model.Booking{
			BaseEntity: model.BaseEntity{ID: uuid.New().String()},
			RoomID:     room,
			AppUserID:  user,
			StartDate:  utcDate(2026, time.October, startDay),
			EndDate:    utcDate(2026, time.October, startDay+2),
			GuestCount: 2,
		}
		if err := st.CreateBooking(ctx, b); err != nil {
			t.Fatalf("create booking: %v", err)
		}
		return b
	}
	mk(alice, 1)
	mk(alice, 10)
	bobsBooking := mk(bob, 20)

	own, err := st.ListBookings(ctx, alice, false)
	if err != nil {
		t.Fatalf("list own: %v", err)
	}
	if len(own) != 2 {
		t.Errorf("own list returned %d bookings, want 2", len(own))
	}

	all, err := st.ListBookings(ctx, alice, true)
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("viewAll list returned %d bookings, want 3", len(all))
	}

	got, err := st.GetBooking(ctx, bobsBooking.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !got.StartDate.Equal(bobsBooking.StartDate) || got.IsCancelled {
		t.Errorf("round trip mismatch: %+v", got)
	}

	got.IsCancelled = true
	if err := st.UpdateBooking(ctx, got); err != nil {
		t.Fatalf("update: %v", err)
	}
	got, err = st.GetBooking(ctx, bobsBooking.ID)
	if err != nil {
		t.Fatalf("get after cancel: %v", err)
	}
	if !got.IsCancelled {
		t.Error("cancel flag did not persist")
	}
}

func TestOverlappingBookings(t *testing.T) {
	st := testStore(t)
	ctx := context.Background()

	room := uuid.New().String()
	user := uuid.New().String()

	booked := &model.Booking{
		BaseEntity: model.BaseEntity{ID: uuid.New().String()},
		RoomID:     room,
		AppUserID:  user,
		StartDate:  utcDate(2026, time.October, 10),
		EndDate:    utcDate(2026, time.October, 15),
	}
	if err := st.CreateBooking(ctx, booked); err != nil {
		t.Fatalf("create: %v", err)
	}
	cancelled := &model.Booking{
		BaseEntity:  model.BaseEntity{ID: uuid.New().String()},
		RoomID:      room,
		AppUserID:   user,
		StartDate:   utcDate(2026, time.October, 10),
		EndDate:     utcDate(2026, time.October, 15),
		IsCancelled: true,
	}
	if err := st.CreateBooking(ctx, cancelled); err != nil {
		t.Fatalf("create cancelled: %v", err)
	}

	tests := []struct {
		name    string
		start   time.Time
		end     time.Time
		exclude string
		want    int
	}{
		{"inside", utcDate(2026, time.October, 11), utcDate(2026, time.October, 12), "", 1},
		{"spanning", utcDate(2026, time.October, 1), utcDate(2026, time.October, 30), "", 1},
		{"before", utcDate(2026, time.October, 1), utcDate(2026, time.October, 10), "", 0},
		{"adjacent after", utcDate(2026, time.October, 15), utcDate(2026, time.October, 20), "", 0},
		{"self excluded", utcDate(2026, time.October, 11), utcDate(2026, time.October, 12), booked.ID, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := st.OverlappingBookings(ctx, tt.start, tt.end, tt.exclude)
			if err != nil {
				t.Fatalf("query: %v", err)
			}
			if len(got) != tt.want {
				t.Errorf("got %d overlapping bookings, want %d", len(got), tt.want)
			}
		})
	}
}
