package create_appointment

import "errors"

var (
	// ErrClientNotFound is returned when the catalog has no such client
	ErrClientNotFound = errors.New("create_appointment: client not found")

	// ErrServiceNotFound is returned when the catalog has no such service
	ErrServiceNotFound = errors.New("create_appointment: service not found")

	// ErrStylistNotFound is returned when the catalog has no such stylist
	ErrStylistNotFound = errors.New("create_appointment: stylist not found")

	// ErrValidationFailed is returned when the proposed interval breaks a
	// scheduling rule; the wrapped message carries the human-readable reason
	ErrValidationFailed = errors.New("create_appointment: validation failed")

	// ErrInvalidInput is returned for malformed input data
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrInternal is returned on internal usecase errors
	ErrInternal = errors.New("create_appointment: internal error")
)
