package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidTimeString is returned when a value cannot be parsed as "HH:MM".
var ErrInvalidTimeString = errors.New("types: invalid time string format")

// TimeString is a wall-clock time of day in "HH:MM" form.
// It is used everywhere a time of day travels without a date attached:
// request payloads, slot grids and the bookings table.
type TimeString string

// NewTimeString builds a TimeString from the time-of-day part of t.
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format("15:04"))
}

// NewTimeStringFromString parses and validates an "HH:MM" value.
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// Validate reports whether the value is a well-formed "HH:MM" time.
func (t TimeString) Validate() error {
	hour, minute, err := t.parts()
	if err != nil {
		return err
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return fmt.Errorf("%w: %q out of range", ErrInvalidTimeString, string(t))
	}
	return nil
}

// IsZero reports whether the value is empty.
func (t TimeString) IsZero() bool {
	return t == ""
}

// Hour returns the hour component. The value must be valid.
func (t TimeString) Hour() int {
	hour, _, _ := t.parts()
	return hour
}

// Minute returns the minute component. The value must be valid.
func (t TimeString) Minute() int {
	_, minute, _ := t.parts()
	return minute
}

// TotalMinutes returns minutes since midnight.
func (t TimeString) TotalMinutes() int {
	hour, minute, _ := t.parts()
	return hour*60 + minute
}

// IsBefore reports whether t is strictly earlier in the day than other.
func (t TimeString) IsBefore(other TimeString) bool {
	return t.TotalMinutes() < other.TotalMinutes()
}

// IsAfter reports whether t is strictly later in the day than other.
func (t TimeString) IsAfter(other TimeString) bool {
	return t.TotalMinutes() > other.TotalMinutes()
}

// AddMinutes returns the time-of-day minutes minutes later, wrapping at midnight.
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	if err := t.Validate(); err != nil {
		return "", err
	}
	total := t.TotalMinutes() + minutes
	total %= 24 * 60
	if total < 0 {
		total += 24 * 60
	}
	return TimeString(fmt.Sprintf("%02d:%02d", total/60, total%60)), nil
}

// At anchors the time of day onto the given calendar day.
func (t TimeString) At(day time.Time) time.Time {
	hour, minute, _ := t.parts()
	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, day.Location())
}

// String returns the "HH:MM" representation.
func (t TimeString) String() string {
	return string(t)
}

// Value implements driver.Valuer so the type can be written to the database.
func (t TimeString) Value() (driver.Value, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return string(t), nil
}

// Scan implements sql.Scanner. Postgres TIME columns come back as
// "HH:MM:SS"; the seconds part is dropped.
func (t *TimeString) Scan(src interface{}) error {
	var raw string
	switch v := src.(type) {
	case string:
		raw = v
	case []byte:
		raw = string(v)
	case time.Time:
		*t = NewTimeString(v)
		return nil
	default:
		return fmt.Errorf("%w: unsupported scan type %T", ErrInvalidTimeString, src)
	}
	if len(raw) > 5 {
		raw = raw[:5]
	}
	parsed, err := NewTimeStringFromString(raw)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

func (t TimeString) parts() (int, int, error) {
	fields := strings.SplitN(string(t), ":", 2)
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	hour, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	minute, err := strconv.Atoi(fields[1])
	if err != nil || len(fields[1]) != 2 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return hour, minute, nil
}
