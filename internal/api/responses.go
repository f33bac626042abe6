package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	app_errors "okaigpt/backend/internal/errors"
)

// This file contains shared DTOs for API responses and helper functions for
// sending consistent HTTP responses.

// Machine-readable error codes sent alongside the message.
const (
	CodeNotFound        = "not_found"
	CodeSessionNotFound = "session_not_found"
	CodeValidation      = "validation"
	CodeDuplicateKey    = "duplicate_key"
	CodeInternal        = "internal"
)

// ErrorResponse defines the standard JSON structure for error messages.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// StatusResponse defines a generic success response for operations that
// don't return a resource, such as DELETE.
type StatusResponse struct {
	Status string `json:"status"`
}

// respondWithError maps business-layer errors to HTTP status codes and writes
// a standard JSON error body.
func respondWithError(w http.ResponseWriter, err error) {
	var statusCode int
	var code, message string

	switch {
	case errors.Is(err, app_errors.ErrSessionNotFound):
		code = CodeSessionNotFound
		statusCode = http.StatusNotFound
		message = "The chat session was not found."
	case errors.Is(err, app_errors.ErrNotFound):
		code = CodeNotFound
		statusCode = http.StatusNotFound
		message = "The requested resource was not found."
	case errors.Is(err, app_errors.ErrValidation):
		code = CodeValidation
		statusCode = http.StatusBadRequest
		// Validation messages from the service layer are safe to show.
		message = err.Error()
	case errors.Is(err, app_errors.ErrDuplicateKey):
		code = CodeDuplicateKey
		statusCode = http.StatusConflict
		message = "A resource with this identifier already exists."
	default:
		// Store failures and anything unexpected. Details stay in the log.
		code = CodeInternal
		statusCode = http.StatusInternalServerError
		message = "An unexpected internal server error occurred."
	}

	slog.Warn("Responding with error", "status_code", statusCode, "code", code, "client_message", message, "internal_error", err)

	respondWithJSON(w, statusCode, ErrorResponse{Error: message, Code: code})
}

// respondWithJSON marshals payload and writes it with the given status code.
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		slog.Error("Failed to marshal JSON response", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err := w.Write(response); err != nil {
		slog.Error("Failed to write JSON response", "error", err)
	}
}

// decodeJSON decodes the request body into dst and validates it. Unknown
// fields are rejected.
func decodeJSON(r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("%w: invalid request payload: %s", app_errors.ErrValidation, err.Error())
	}
	return validateRequest(dst)
}
