package catalogservice

import "errors"

var (
	// ErrClientNotFound is returned when the catalog has no such client
	ErrClientNotFound = errors.New("catalogservice client: client not found")

	// ErrServiceNotFound is returned when the catalog has no such service
	ErrServiceNotFound = errors.New("catalogservice client: service not found")

	// ErrStylistNotFound is returned when the catalog has no such stylist
	ErrStylistNotFound = errors.New("catalogservice client: stylist not found")

	// ErrInternal is returned on internal client errors
	ErrInternal = errors.New("catalogservice client: internal error")

	// ErrInvalidResponse is returned on a malformed response from the catalog
	ErrInvalidResponse = errors.New("catalogservice client: invalid response")
)
