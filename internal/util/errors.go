// internal/util/errors.go
package util

import (
	"errors"
	"net/http"
)

// Repository-level sentinel errors. Repositories wrap these; services translate them into *Error.
var (
	ErrNotFound       = errors.New("resource not found")
	ErrDuplicateEntry = errors.New("duplicate entry") // unique constraint violation (username, transaction_id)
	ErrForeignKey     = errors.New("referenced resource does not exist")
)

// Kind classifies an error at the service boundary. The set is closed: every Kind must have an
// entry in StatusByKind.
type Kind int

const (
	KindInternal Kind = iota
	KindConflict
	KindUnauthorized
	KindInvalidInput
	KindNotFound

	kindCount
)

// StatusByKind maps each Kind to the HTTP status it is reported with.
var StatusByKind = [...]int{
	KindInternal:     http.StatusInternalServerError,
	KindConflict:     http.StatusConflict,
	KindUnauthorized: http.StatusUnauthorized,
	KindInvalidInput: http.StatusBadRequest,
	KindNotFound:     http.StatusNotFound,
}

// Fails to compile unless StatusByKind has exactly one entry per Kind.
var (
	_ [len(StatusByKind) - int(kindCount)]struct{}
	_ [int(kindCount) - len(StatusByKind)]struct{}
)

func (k Kind) String() string {
	switch k {
	case KindConflict:
		return "conflict"
	case KindUnauthorized:
		return "unauthorized"
	case KindInvalidInput:
		return "invalid_input"
	case KindNotFound:
		return "not_found"
	default:
		return "internal"
	}
}

// HTTPStatus returns the status code for the kind.
func (k Kind) HTTPStatus() int {
	if k < 0 || k >= kindCount {
		return http.StatusInternalServerError
	}
	return StatusByKind[k]
}

// Error is the error type returned by services. Message is safe to show to clients;
// Err carries the underlying cause for logging only.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// Internal wraps an unexpected fault. The client only ever sees a generic message.
func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Message: "Internal server error", Err: err}
}

func Conflict(msg string, err error) *Error {
	return &Error{Kind: KindConflict, Message: msg, Err: err}
}

func Unauthorized(msg string, err error) *Error {
	return &Error{Kind: KindUnauthorized, Message: msg, Err: err}
}

func InvalidInput(msg string, err error) *Error {
	return &Error{Kind: KindInvalidInput, Message: msg, Err: err}
}

func NotFound(msg string, err error) *Error {
	return &Error{Kind: KindNotFound, Message: msg, Err: err}
}
