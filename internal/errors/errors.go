package errors

import "errors"

// This package defines a centralized set of sentinel errors for the application.
// Services return these (usually wrapped with fmt.Errorf and %w) instead of
// HTTP status codes; the API layer checks them with errors.Is() and maps each
// one to the right response.

var (
	// ErrNotFound signifies that a referenced chat or message does not exist.
	// Mapped to 404 Not Found.
	ErrNotFound = errors.New("resource not found")

	// ErrValidation signifies that client input failed a business rule:
	// an empty title, a role outside the allowed set, empty message content,
	// or a malformed id. Mapped to 400 Bad Request.
	ErrValidation = errors.New("validation failed")

	// ErrStoreUnavailable signifies a connection or transport failure talking
	// to the persistence backend. Mapped to 500 Internal Server Error.
	ErrStoreUnavailable = errors.New("store unavailable")

	// ErrUpstreamUnavailable signifies that the inference endpoint was
	// unreachable or answered with a non-success status.
	// Mapped to 502 Bad Gateway.
	ErrUpstreamUnavailable = errors.New("upstream unavailable")

	// ErrInternal is the generic unexpected server error, used to avoid
	// leaking implementation details to the client. Mapped to 500.
	ErrInternal = errors.New("internal server error")
)
