package errors

import "errors"

// This package defines the sentinel errors shared by the service and API layers.
// Services wrap them with context (fmt.Errorf("%w: ...")) and the API layer maps
// them to HTTP status codes with errors.Is.

var (
	// ErrNotFound signifies that the targeted session or video does not exist.
	// Mapped to 404 Not Found.
	ErrNotFound = errors.New("resource not found")

	// ErrSessionNotFound is returned when a message references a session that
	// does not exist. Mapped to 404 Not Found.
	ErrSessionNotFound = errors.New("session not found")

	// ErrDuplicateKey signifies an identifier collision on create.
	// Mapped to 409 Conflict.
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrValidation signifies that input data failed validation.
	// Mapped to 400 Bad Request.
	ErrValidation = errors.New("validation failed")

	// ErrStoreFailure wraps any underlying persistence error.
	// Mapped to 500 Internal Server Error.
	ErrStoreFailure = errors.New("store failure")

	// ErrInternal signifies an unexpected error outside the store, such as a
	// failing result producer. Mapped to 500 Internal Server Error.
	ErrInternal = errors.New("internal server error")
)
