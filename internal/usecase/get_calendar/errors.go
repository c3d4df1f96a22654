package get_calendar

import "errors"

var (
	// ErrInvalidInput is returned for malformed input data
	ErrInvalidInput = errors.New("get_calendar: invalid input data")
)
