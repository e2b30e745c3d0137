package model

import (
	"errors"
	"testing"
)

func fieldSet(t *testing.T, err error) map[string][]string {
	t.Helper()
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	return verr.ByField()
}

func TestHotel_Validate(t *testing.T) {
	valid := Hotel{Name: "Grand Plaza", Address: "1 Seaside Ave", PhoneNumber: "+37255512345", Email: "front@grandplaza.ee"}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid hotel rejected: %v", err)
	}

	bad := Hotel{PhoneNumber: "0abc", Email: "not-an-email"}
	byField := fieldSet(t, bad.Validate())
	for _, f := range []string{"name", "address", "phoneNumber", "email"} {
		if _, ok := byField[f]; !ok {
			t.Errorf("expected violation on %q, got %v", f, byField)
		}
	}
}

func TestRoom_Validate(t *testing.T) {
	valid := Room{
		RoomName:   "Seaview Double",
		RoomNumber: 204,
		BedCount:   2,
		Price:      89.50,
		HotelID:    "3f2f4d8c-9a11-4a0e-8a57-6a2b3c4d5e6f",
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid room rejected: %v", err)
	}

	bad := valid
	bad.BedCount = MaxGuestCount + 1
	bad.Price = -1
	bad.HotelID = "x"
	byField := fieldSet(t, bad.Validate())
	for _, f := range []string{"bedCount", "price", "hotelId"} {
		if _, ok := byField[f]; !ok {
			t.Errorf("expected violation on %q, got %v", f, byField)
		}
	}

	// Boundary bed counts are accepted.
	for _, n := range []int{MinGuestCount, MaxGuestCount} {
		r := valid
		r.BedCount = n
		if err := r.Validate(); err != nil {
			t.Errorf("bedCount %d rejected: %v", n, err)
		}
	}
}

func TestRegisterData_Validate(t *testing.T) {
	valid := RegisterData{
		FirstName:         "Mari",
		LastName:          "Tamm",
		Email:             "mari@example.com",
		Password:          "Passw0rd!",
		ConfirmedPassword: "Passw0rd!",
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid registration rejected: %v", err)
	}

	tests := []struct {
		name     string
		mutate   func(*RegisterData)
		field    string
		messages int
	}{
		{name: "password mismatch", mutate: func(d *RegisterData) { d.ConfirmedPassword = "Other0ne!" }, field: "confirmedPassword"},
		{name: "weak password", mutate: func(d *RegisterData) { d.Password = "abc"; d.ConfirmedPassword = "abc" }, field: "password", messages: 4},
		{name: "bad email", mutate: func(d *RegisterData) { d.Email = "nope" }, field: "email"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := valid
			tt.mutate(&d)
			byField := fieldSet(t, d.Validate())
			msgs, ok := byField[tt.field]
			if !ok {
				t.Fatalf("expected violation on %q, got %v", tt.field, byField)
			}
			if tt.messages > 0 && len(msgs) != tt.messages {
				t.Errorf("expected %d messages on %q, got %v", tt.messages, tt.field, msgs)
			}
		})
	}
}
