package update_appointment

import "errors"

var (
	// ErrAppointmentNotFound is returned when the appointment does not exist
	ErrAppointmentNotFound = errors.New("update_appointment: appointment not found")

	// ErrClientNotFound is returned when the catalog has no such client
	ErrClientNotFound = errors.New("update_appointment: client not found")

	// ErrServiceNotFound is returned when the catalog has no such service
	ErrServiceNotFound = errors.New("update_appointment: service not found")

	// ErrStylistNotFound is returned when the catalog has no such stylist
	ErrStylistNotFound = errors.New("update_appointment: stylist not found")

	// ErrValidationFailed is returned when the new interval breaks a
	// scheduling rule; the wrapped message carries the human-readable reason
	ErrValidationFailed = errors.New("update_appointment: validation failed")

	// ErrInvalidInput is returned for malformed input data
	ErrInvalidInput = errors.New("update_appointment: invalid input data")

	// ErrInternal is returned on internal usecase errors
	ErrInternal = errors.New("update_appointment: internal error")
)
