// Package apperror defines the single error taxonomy carried from the service
// layer to the HTTP boundary. Every domain failure maps to one of the
// constructors below; anything else is treated as an unexpected 500.
package apperror

import (
	"errors"
	"net/http"
)

// Error is a domain failure with the HTTP status it should surface as.
type Error struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

func (e *Error) Error() string { return e.Message }

func New(status int, message string) *Error {
	return &Error{Status: status, Message: message}
}

func Validation(message string) *Error { return New(http.StatusBadRequest, message) }

func Conflict(message string) *Error { return New(http.StatusBadRequest, message) }

func Unauthorized(message string) *Error { return New(http.StatusUnauthorized, message) }

func Forbidden(message string) *Error { return New(http.StatusForbidden, message) }

func NotFound(message string) *Error { return New(http.StatusNotFound, message) }

func ServerConfig(message string) *Error { return New(http.StatusInternalServerError, message) }

// From extracts an *Error from an error chain, or nil when err is not one.
func From(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return nil
}
