package store

import "errors"

var (
	// ErrAppointmentNotFound is returned when a mutation targets an id
	// that is not in the collection (typically a stale reference after a
	// concurrent deletion).
	ErrAppointmentNotFound = errors.New("store: appointment not found")

	// ErrInvalidInput is returned for malformed create/update data.
	ErrInvalidInput = errors.New("store: invalid input data")

	// ErrPersistence wraps failures of the outbound persistence
	// collaborator. The in-memory collection is left unchanged.
	ErrPersistence = errors.New("store: persistence error")
)
