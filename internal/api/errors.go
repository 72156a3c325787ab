package api

import (
	"fmt"
	"net/http"
	"strings"

	"nathanbeddoewebdev/hirectl/internal/domain"
)

// Error is a non-2xx response. It unwraps to the domain sentinel that
// matches its status so callers can use errors.Is.
type Error struct {
	Status    int
	Message   string
	RequestID string
	sentinel  error
}

func (e *Error) Error() string {
	msg := e.Message
	if msg == "" {
		msg = strings.ToLower(http.StatusText(e.Status))
	}
	if e.sentinel != nil {
		return fmt.Sprintf("%s: %s", e.sentinel, msg)
	}
	return fmt.Sprintf("api: %d %s", e.Status, msg)
}

func (e *Error) Unwrap() error { return e.sentinel }

// HTTPStatus lets the retry package classify the error.
func (e *Error) HTTPStatus() int { return e.Status }

// newError maps an HTTP status to a domain sentinel.
func newError(status int, message, requestID string) *Error {
	e := &Error{Status: status, Message: message, RequestID: requestID}
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		e.sentinel = domain.ErrUnauthorized
	case http.StatusNotFound:
		e.sentinel = domain.ErrNotFound
	case http.StatusConflict:
		e.sentinel = domain.ErrConflict
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		e.sentinel = domain.ErrValidation
	case http.StatusPaymentRequired:
		e.sentinel = domain.ErrInsufficientCredits
	case http.StatusTooManyRequests:
		e.sentinel = domain.ErrRateLimited
	}
	return e
}

// errorBody is the union of error shapes the backend returns.
type errorBody struct {
	Message string            `json:"message"`
	Error   string            `json:"error"`
	Errors  map[string]string `json:"errors"`
}

func (b errorBody) text() string {
	msg := b.Message
	if msg == "" {
		msg = b.Error
	}
	if len(b.Errors) > 0 {
		parts := make([]string, 0, len(b.Errors))
		for _, field := range sortedFields(b.Errors) {
			parts = append(parts, field+": "+b.Errors[field])
		}
		if msg != "" {
			msg += " ("
			msg += strings.Join(parts, "; ")
			msg += ")"
		} else {
			msg = strings.Join(parts, "; ")
		}
	}
	return msg
}
