package hotelapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/me/hotelx/pkg/model"
)

func TestRoomsClient_Available_QueryAndNormalization(t *testing.T) {
	var gotQuery url.Values
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/rooms" {
			t.Errorf("path = %s", r.URL.Path)
		}
		gotQuery = r.URL.Query()
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode([]model.Room{{BaseEntity: model.BaseEntity{ID: "r1"}, RoomNumber: 101, BedCount: 2}})
	}))
	defer server.Close()

	client := NewRoomsClient(DefaultConfig().WithHost(server.URL), NewSession(), nil)

	// A late-evening local time in a +13h zone: the calendar day must survive.
	zone := time.FixedZone("nzdt", 13*3600)
	req := model.AvailabilityRequest{
		GuestCount: 2,
		StartDate:  time.Date(2026, 7, 1, 23, 0, 0, 0, zone),
		EndDate:    time.Date(2026, 7, 4, 23, 0, 0, 0, zone),
	}
	res := client.Available(context.Background(), req)
	if !res.OK() {
		t.Fatalf("Available() errors = %v", res.Errors)
	}
	if len(res.Data) != 1 || res.Data[0].RoomNumber != 101 {
		t.Errorf("data = %+v", res.Data)
	}
	if gotAuth != "" {
		t.Errorf("availability search sent Authorization %q, want none", gotAuth)
	}
	if got := gotQuery.Get("guestCount"); got != "2" {
		t.Errorf("guestCount = %q", got)
	}
	if got := gotQuery.Get("startDate"); got != "2026-07-01T00:00:00Z" {
		t.Errorf("startDate = %q, want UTC midnight of the local calendar day", got)
	}
	if got := gotQuery.Get("endDate"); got != "2026-07-04T00:00:00Z" {
		t.Errorf("endDate = %q", got)
	}
}

func TestRoomsClient_Available_OmitsAbsentFilters(t *testing.T) {
	var gotQuery url.Values
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		json.NewEncoder(w).Encode([]model.Room{})
	}))
	defer server.Close()

	client := NewRoomsClient(DefaultConfig().WithHost(server.URL), NewSession(), nil)
	res := client.Available(context.Background(), model.AvailabilityRequest{})
	if !res.OK() {
		t.Fatalf("Available() errors = %v", res.Errors)
	}
	if len(gotQuery) != 0 {
		t.Errorf("expected no query parameters, got %v", gotQuery)
	}
}

func TestRoomsClient_Available_InvalidRangeShortCircuits(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("network call issued for an invalid availability request")
	}))
	defer server.Close()

	client := NewRoomsClient(DefaultConfig().WithHost(server.URL), NewSession(), nil)

	d := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	res := client.Available(context.Background(), model.AvailabilityRequest{StartDate: d, EndDate: d})
	if res.OK() {
		t.Fatal("expected validation failure for equal dates")
	}
	want := "endDate: End date cannot be earlier or equal to start date"
	if len(res.Errors) != 1 || res.Errors[0] != want {
		t.Errorf("errors = %v, want [%q]", res.Errors, want)
	}
}
