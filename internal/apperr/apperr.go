// Package apperr defines the error kinds surfaced to API clients and their
// HTTP status mapping.
package apperr

import (
	"context"
	"errors"
	"net/http"
)

// Kind classifies a failure for the client.
type Kind string

const (
	Unauthenticated Kind = "Unauthenticated"
	Forbidden       Kind = "Forbidden"
	NotFound        Kind = "NotFound"
	BadRequest      Kind = "BadRequest"
	Timeout         Kind = "Timeout"
	UpstreamFailure Kind = "UpstreamFailure"
	Internal        Kind = "Internal"
)

// Status returns the HTTP status code for the kind.
func (k Kind) Status() int {
	switch k {
	case Unauthenticated:
		return http.StatusUnauthorized
	case Forbidden:
		return http.StatusForbidden
	case NotFound:
		return http.StatusNotFound
	case BadRequest:
		return http.StatusBadRequest
	case Timeout:
		return http.StatusGatewayTimeout
	case UpstreamFailure:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// Error is a classified failure with a client-facing message.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return string(e.Kind) + ": " + e.Message + ": " + e.Err.Error()
	}
	return string(e.Kind) + ": " + e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// New returns an Error without an underlying cause.
func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Message: msg}
}

// Wrap returns an Error carrying err as its cause.
func Wrap(kind Kind, msg string, err error) *Error {
	return &Error{Kind: kind, Message: msg, Err: err}
}

// KindOf reports the kind of err. Unclassified context deadlines map to
// Timeout, anything else unclassified to Internal.
func KindOf(err error) Kind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return Timeout
	}
	return Internal
}

// Message returns the client-facing message for err.
func Message(err error) string {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Message
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return "operation timed out"
	}
	return "internal server error"
}

// Body is the JSON shape of every error response.
type Body struct {
	Error   Kind   `json:"error"`
	Message string `json:"message"`
}

// BodyOf builds the response body for err.
func BodyOf(err error) Body {
	return Body{Error: KindOf(err), Message: Message(err)}
}
