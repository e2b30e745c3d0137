package hotelapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/me/hotelx/pkg/model"
)

// testBackend scripts the bookings endpoint and the refresh endpoint behind
// one httptest server.
type testBackend struct {
	t *testing.T

	mu             sync.Mutex
	bookingsCalls  int
	bookingsTokens []string // bearer tokens seen, in order
	bookings       func(n int, token string, w http.ResponseWriter)

	refreshCalls int32
	refreshOK    bool
	freshJWT     string

	server *httptest.Server
}

func newTestBackend(t *testing.T) *testBackend {
	b := &testBackend{t: t, refreshOK: true, freshJWT: "fresh-token"}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/bookings", func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get(headerClientID); got != headerClientIDValue {
			t.Errorf("missing client identifier header, got %q", got)
		}
		token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
		b.mu.Lock()
		b.bookingsCalls++
		n := b.bookingsCalls
		b.bookingsTokens = append(b.bookingsTokens, token)
		handler := b.bookings
		b.mu.Unlock()
		handler(n, token, w)
	})
	mux.HandleFunc("/api/v1/identity/account/refreshtoken", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&b.refreshCalls, 1)
		var stale model.TokenPair
		if err := json.NewDecoder(r.Body).Decode(&stale); err != nil {
			t.Errorf("refresh body: %v", err)
		}
		if !b.refreshOK {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"error": "refresh token expired"})
			return
		}
		json.NewEncoder(w).Encode(model.TokenPair{JWT: b.freshJWT, RefreshToken: "fresh-refresh"})
	})

	b.server = httptest.NewServer(mux)
	t.Cleanup(b.server.Close)
	return b
}

func (b *testBackend) client(session *Session) *BookingsClient {
	cfg := DefaultConfig().WithHost(b.server.URL)
	return NewBookingsClient(cfg, session, nil)
}

func writeBookings(w http.ResponseWriter, bookings []model.Booking) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(bookings)
}

func TestEntityClient_List_NoRefreshNeeded(t *testing.T) {
	b := newTestBackend(t)
	b.bookings = func(n int, token string, w http.ResponseWriter) {
		if token != "valid-token" {
			t.Errorf("unexpected token %q", token)
		}
		writeBookings(w, []model.Booking{{BaseEntity: model.BaseEntity{ID: "b1"}}})
	}

	session := NewSession()
	session.Set(model.TokenPair{JWT: "valid-token", RefreshToken: "r"})

	res := b.client(session).EntityClient.List(context.Background())
	if !res.OK() {
		t.Fatalf("List() errors = %v", res.Errors)
	}
	if len(res.Data) != 1 || res.Data[0].ID != "b1" {
		t.Errorf("unexpected data %+v", res.Data)
	}
	if b.bookingsCalls != 1 {
		t.Errorf("bookings endpoint called %d times, want 1", b.bookingsCalls)
	}
	if b.refreshCalls != 0 {
		t.Errorf("refresh called %d times, want 0", b.refreshCalls)
	}
}

func TestEntityClient_List_RefreshAndRetryOnce(t *testing.T) {
	b := newTestBackend(t)
	b.bookings = func(n int, token string, w http.ResponseWriter) {
		if n == 1 {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		writeBookings(w, []model.Booking{{BaseEntity: model.BaseEntity{ID: "b1"}}, {BaseEntity: model.BaseEntity{ID: "b2"}}})
	}

	session := NewSession()
	session.Set(model.TokenPair{JWT: "stale-token", RefreshToken: "r"})

	res := b.client(session).EntityClient.List(context.Background())
	if !res.OK() {
		t.Fatalf("List() errors = %v", res.Errors)
	}
	if len(res.Data) != 2 {
		t.Errorf("expected 2 bookings, got %+v", res.Data)
	}
	if b.bookingsCalls != 2 {
		t.Errorf("bookings endpoint called %d times, want exactly 2", b.bookingsCalls)
	}
	if b.refreshCalls != 1 {
		t.Errorf("refresh called %d times, want exactly 1", b.refreshCalls)
	}

	// The retried call must use the newly committed token, not the stale one.
	if got := b.bookingsTokens[1]; got != "fresh-token" {
		t.Errorf("retry used token %q, want the refreshed one", got)
	}
	pair, ok := session.Pair()
	if !ok || pair.JWT != "fresh-token" {
		t.Errorf("session pair = %+v, want refreshed pair committed", pair)
	}
}

func TestEntityClient_List_SecondUnauthorizedTerminates(t *testing.T) {
	b := newTestBackend(t)
	b.bookings = func(n int, token string, w http.ResponseWriter) {
		w.WriteHeader(http.StatusUnauthorized)
	}

	session := NewSession()
	session.Set(model.TokenPair{JWT: "stale-token", RefreshToken: "r"})

	res := b.client(session).EntityClient.List(context.Background())
	if res.OK() {
		t.Fatal("expected a failure envelope")
	}
	if b.bookingsCalls != 2 {
		t.Errorf("bookings endpoint called %d times, want at most 2", b.bookingsCalls)
	}
	if b.refreshCalls != 1 {
		t.Errorf("refresh called %d times, want 1", b.refreshCalls)
	}
}

func TestEntityClient_List_RefreshFailure(t *testing.T) {
	b := newTestBackend(t)
	b.refreshOK = false
	b.bookings = func(n int, token string, w http.ResponseWriter) {
		w.WriteHeader(http.StatusUnauthorized)
	}

	session := NewSession()
	session.Set(model.TokenPair{JWT: "stale-token", RefreshToken: "r"})

	res := b.client(session).EntityClient.List(context.Background())
	if res.OK() {
		t.Fatal("expected a failure envelope")
	}
	if len(res.Errors) != 1 || res.Errors[0] != msgRefreshFailed {
		t.Errorf("errors = %v, want [%q]", res.Errors, msgRefreshFailed)
	}
	if b.bookingsCalls != 1 {
		t.Errorf("bookings endpoint called %d times, want 1 (no retry after failed refresh)", b.bookingsCalls)
	}
}

func TestEntityClient_List_NotLoggedIn(t *testing.T) {
	b := newTestBackend(t)
	b.bookings = func(n int, token string, w http.ResponseWriter) {
		t.Error("network call issued without a session")
	}

	res := b.client(NewSession()).EntityClient.List(context.Background())
	if res.OK() || len(res.Errors) != 1 || res.Errors[0] != msgNotLoggedIn {
		t.Errorf("errors = %v, want [%q]", res.Errors, msgNotLoggedIn)
	}
}

func TestEntityClient_ServerErrorBody(t *testing.T) {
	b := newTestBackend(t)
	b.bookings = func(n int, token string, w http.ResponseWriter) {
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(map[string]string{"error": "room already booked"})
	}

	session := NewSession()
	session.Set(model.TokenPair{JWT: "valid-token", RefreshToken: "r"})

	res := b.client(session).EntityClient.List(context.Background())
	if res.OK() {
		t.Fatal("expected a failure envelope")
	}
	want := "room already booked - 409 Conflict"
	if len(res.Errors) != 1 || res.Errors[0] != want {
		t.Errorf("errors = %v, want [%q]", res.Errors, want)
	}
}

func TestEntityClient_TransportError(t *testing.T) {
	session := NewSession()
	session.Set(model.TokenPair{JWT: "valid-token", RefreshToken: "r"})

	// Nothing listens on this address.
	cfg := DefaultConfig().WithHost("http://127.0.0.1:1")
	res := NewBookingsClient(cfg, session, nil).EntityClient.List(context.Background())
	if res.OK() {
		t.Fatal("expected a failure envelope")
	}
	if len(res.Errors) != 1 || res.Errors[0] != msgNoResponse {
		t.Errorf("errors = %v, want [%q]", res.Errors, msgNoResponse)
	}
}

func TestEntityClient_ConcurrentUnauthorized_SingleRefresh(t *testing.T) {
	b := newTestBackend(t)
	var phase atomic.Int32 // 0 = stale tokens rejected
	b.bookings = func(n int, token string, w http.ResponseWriter) {
		if token == "stale-token" && phase.Load() == 0 {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		writeBookings(w, nil)
	}

	session := NewSession()
	session.Set(model.TokenPair{JWT: "stale-token", RefreshToken: "r"})
	client := b.client(session)

	const callers = 8
	var wg sync.WaitGroup
	results := make([]Result[[]model.Booking], callers)
	for i := 0; i < callers; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = client.EntityClient.List(context.Background())
		}()
	}
	wg.Wait()
	phase.Store(1)

	for i, res := range results {
		if !res.OK() {
			t.Errorf("caller %d failed: %v", i, res.Errors)
		}
	}
	if got := atomic.LoadInt32(&b.refreshCalls); got != 1 {
		t.Errorf("refresh called %d times for %d concurrent 401s, want 1", got, callers)
	}
}
