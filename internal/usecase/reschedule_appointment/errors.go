package reschedule_appointment

import "errors"

var (
	// ErrAppointmentNotFound is returned when the appointment does not exist
	ErrAppointmentNotFound = errors.New("reschedule_appointment: appointment not found")

	// ErrValidationFailed is returned when the resolved interval breaks a
	// scheduling rule; the wrapped message carries the human-readable reason
	ErrValidationFailed = errors.New("reschedule_appointment: validation failed")

	// ErrInvalidInput is returned for malformed input data
	ErrInvalidInput = errors.New("reschedule_appointment: invalid input data")

	// ErrInternal is returned on internal usecase errors
	ErrInternal = errors.New("reschedule_appointment: internal error")
)
