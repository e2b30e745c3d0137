// Package hotelapi provides the authenticated client for the hotel booking
// REST API: a generic entity CRUD client with transparent token refresh,
// identity (login/register/refresh/logout) operations, and the room and
// booking request orchestrators.
package hotelapi

import (
	"net/http"
	"os"
	"strings"
	"time"
)

// DefaultHost is the backend root used when no override is configured.
const DefaultHost = "http://localhost:5172"

// EnvBackendURL overrides the backend host root at deploy time.
const EnvBackendURL = "HOTELX_BACKEND_URL"

// Fixed headers applied to every request.
const (
	headerClientID      = "X-Road-Client"
	headerClientIDValue = "EE/GOV/12345678/hotel-x"
)

// DefaultTimeout bounds each HTTP request.
const DefaultTimeout = 30 * time.Second

// API resource paths relative to {host}/api/.
const (
	ResourceIdentity = "v1/identity/account"
	ResourceBookings = "v1/bookings"
	ResourceHotels   = "v1/hotels"
	ResourceRooms    = "v1/rooms"
	ResourceClients  = "v1/clients"
)

// Config holds the settings shared by every client in this package.
type Config struct {
	// Host is the backend root, e.g. "http://localhost:5172".
	Host string

	// Timeout is the per-request HTTP timeout.
	Timeout time.Duration

	// HTTPClient overrides the transport; when nil a client with Timeout is
	// built per base client.
	HTTPClient *http.Client
}

// DefaultConfig returns a Config pointing at the environment-configured host,
// falling back to DefaultHost.
func DefaultConfig() Config {
	return Config{
		Host:    HostFromEnv(),
		Timeout: DefaultTimeout,
	}
}

// HostFromEnv resolves the backend host root from the environment.
func HostFromEnv() string {
	if h := os.Getenv(EnvBackendURL); h != "" {
		return h
	}
	return DefaultHost
}

// WithHost returns a copy of the config with the given backend root.
func (c Config) WithHost(host string) Config {
	c.Host = host
	return c
}

// WithTimeout returns a copy of the config with the given request timeout.
func (c Config) WithTimeout(timeout time.Duration) Config {
	c.Timeout = timeout
	return c
}

// resourceURL composes {host}/api/{resource}.
func (c Config) resourceURL(resource string) string {
	return strings.TrimRight(c.Host, "/") + "/api/" + strings.Trim(resource, "/")
}

func (c Config) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	timeout := c.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	return &http.Client{Timeout: timeout}
}
