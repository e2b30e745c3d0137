package hotelapi

import (
	"errors"
	"strings"

	"github.com/me/hotelx/pkg/model"
)

// Result is the uniform envelope returned by every service call: either Data
// or a non-empty Errors list. An empty Errors slice means success even when
// Data is the zero value (e.g. a cancel call with no response body).
type Result[T any] struct {
	Data   T        `json:"data,omitempty"`
	Errors []string `json:"errors,omitempty"`
}

// OK reports whether the call succeeded.
func (r Result[T]) OK() bool {
	return len(r.Errors) == 0
}

// Err returns the errors joined into a single error, or nil on success.
func (r Result[T]) Err() error {
	if len(r.Errors) == 0 {
		return nil
	}
	return errors.New(strings.Join(r.Errors, ", "))
}

func okResult[T any](data T) Result[T] {
	return Result[T]{Data: data}
}

func failResult[T any](msgs ...string) Result[T] {
	return Result[T]{Errors: msgs}
}

// validationResult maps a model ValidationError to a failure envelope with
// one entry per field violation.
func validationResult[T any](err error) Result[T] {
	var verr *model.ValidationError
	if errors.As(err, &verr) {
		return failResult[T](verr.Messages()...)
	}
	return failResult[T](err.Error())
}
