package appointments

import "errors"

var (
	// ErrAppointmentNotFound is returned when the appointment does not exist
	ErrAppointmentNotFound = errors.New("appointment not found")

	// ErrInvalidStatus is returned for an unknown status value
	ErrInvalidStatus = errors.New("invalid appointment status")

	// ErrInvalidTransition is returned for a status change the lifecycle forbids
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrInvalidInput is returned for malformed input data
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on internal service errors
	ErrInternal = errors.New("service: internal error")
)
