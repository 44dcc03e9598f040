// internal/app/system/apperr/apperr.go

// Package apperr defines the error taxonomy for the service core and its
// mapping onto the HTTP boundary.
//
// Every failure a handler can surface is one of four kinds:
//   - NotFound:      the entity does not exist (404)
//   - NotAuthorized: the actor lacks permission for this action (401)
//   - InvalidState:  the action is legal for the role but illegal given the
//     record's current status (400)
//   - InvalidInput:  the payload fails field constraints or contains fields
//     the role may not touch (400)
//
// The service never coerces an illegal request into a legal one; it rejects
// the whole operation with one of these.
package apperr

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"
)

// Kind discriminates the error taxonomy.
type Kind int

const (
	KindNotFound Kind = iota + 1
	KindNotAuthorized
	KindInvalidState
	KindInvalidInput
)

// Error is a request-recoverable failure with a client-safe message.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }

// NotFound reports an absent entity.
func NotFound(msg string) *Error { return &Error{Kind: KindNotFound, Message: msg} }

// NotAuthorized reports a permission failure for the acting principal.
func NotAuthorized(msg string) *Error { return &Error{Kind: KindNotAuthorized, Message: msg} }

// InvalidState reports an action blocked by the record's current status.
func InvalidState(msg string) *Error { return &Error{Kind: KindInvalidState, Message: msg} }

// InvalidInput reports a payload that fails validation or role field rules.
func InvalidInput(msg string) *Error { return &Error{Kind: KindInvalidInput, Message: msg} }

// Status returns the HTTP status code for an Error kind.
func (e *Error) Status() int {
	switch e.Kind {
	case KindNotFound:
		return http.StatusNotFound
	case KindNotAuthorized:
		return http.StatusUnauthorized
	case KindInvalidState, KindInvalidInput:
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// envelope matches the API's error body: {"success":false,"error":"..."}.
type envelope struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// WriteJSON writes an error envelope with the given status and message.
func WriteJSON(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(envelope{Success: false, Error: msg})
}

// Render writes err to the client. Taxonomy errors map to their status and
// message; anything else is logged and reported as a generic 500 so internal
// detail never leaks.
func Render(w http.ResponseWriter, log *zap.Logger, op string, err error) {
	var ae *Error
	if errors.As(err, &ae) {
		WriteJSON(w, ae.Status(), ae.Message)
		return
	}
	if log != nil {
		log.Error(op, zap.Error(err))
	}
	WriteJSON(w, http.StatusInternalServerError, "Server error")
}
