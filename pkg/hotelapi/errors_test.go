package hotelapi

import (
	"errors"
	"net/url"
	"testing"
)

func TestNormalizeError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "server response with message",
			err:  newHTTPError(404, "booking not found"),
			want: "booking not found - 404 Not Found",
		},
		{
			name: "server response without message",
			err:  newHTTPError(500, ""),
			want: "No error message provided - 500 Internal Server Error",
		},
		{
			name: "request sent but no response",
			err:  &url.Error{Op: "Get", URL: "http://localhost:5172/api/v1/rooms", Err: errors.New("connection refused")},
			want: "No response received from server. Please try again later",
		},
		{
			name: "generic failure",
			err:  errors.New("marshal request: unsupported type"),
			want: "marshal request: unsupported type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := normalizeError[any](tt.err)
			if res.OK() {
				t.Fatal("normalizeError produced a success envelope")
			}
			if len(res.Errors) != 1 {
				t.Fatalf("expected exactly one error, got %v", res.Errors)
			}
			if res.Errors[0] != tt.want {
				t.Errorf("message = %q, want %q", res.Errors[0], tt.want)
			}
		})
	}
}

func TestResult_Err(t *testing.T) {
	if err := okResult(42).Err(); err != nil {
		t.Errorf("success envelope Err() = %v, want nil", err)
	}
	err := failResult[int]("first", "second").Err()
	if err == nil || err.Error() != "first, second" {
		t.Errorf("Err() = %v, want joined messages", err)
	}
}
