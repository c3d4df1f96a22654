package domain

import (
	"fmt"
	"time"
)

// TimeSlot is one cell of the calendar grid: a time of day aligned to the
// slot step. Slots are ephemeral, recomputed per request and never stored.
type TimeSlot struct {
	Hour   int
	Minute int
}

// TotalMinutes returns minutes since midnight.
func (s TimeSlot) TotalMinutes() int {
	return s.Hour*60 + s.Minute
}

// On anchors the slot onto the given calendar day.
func (s TimeSlot) On(day time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), s.Hour, s.Minute, 0, 0, day.Location())
}

// Format renders the slot as "H:MM AM/PM" for axis labels and messages.
func (s TimeSlot) Format() string {
	hour12 := s.Hour % 12
	if hour12 == 0 {
		hour12 = 12
	}
	meridiem := "AM"
	if s.Hour >= 12 {
		meridiem = "PM"
	}
	return fmt.Sprintf("%d:%02d %s", hour12, s.Minute, meridiem)
}

// BusinessWindow is the daily range within which appointments may be
// scheduled. A single instance is built from config and injected into both
// validation and slot generation, so the two can never disagree.
type BusinessWindow struct {
	Start TimeSlot
	End   TimeSlot
}

// DefaultBusinessWindow returns the built-in 09:00-18:00 window.
func DefaultBusinessWindow() BusinessWindow {
	return BusinessWindow{
		Start: TimeSlot{Hour: DefaultWindowStartHour, Minute: DefaultWindowStartMinute},
		End:   TimeSlot{Hour: DefaultWindowEndHour, Minute: DefaultWindowEndMinute},
	}
}

// Validate checks the window is a non-empty range within one day.
func (w BusinessWindow) Validate() error {
	if w.Start.Hour < 0 || w.Start.Hour > 23 || w.End.Hour < 0 || w.End.Hour > 24 {
		return fmt.Errorf("business window hours out of range: %+v", w)
	}
	if w.Start.Minute < 0 || w.Start.Minute > 59 || w.End.Minute < 0 || w.End.Minute > 59 {
		return fmt.Errorf("business window minutes out of range: %+v", w)
	}
	if w.Start.TotalMinutes() >= w.End.TotalMinutes() {
		return fmt.Errorf("business window start %s is not before end %s", w.Start.Format(), w.End.Format())
	}
	return nil
}

// StartOn returns the window's opening instant on the given day.
func (w BusinessWindow) StartOn(day time.Time) time.Time {
	return w.Start.On(day)
}

// EndOn returns the window's closing instant on the given day.
func (w BusinessWindow) EndOn(day time.Time) time.Time {
	return w.End.On(day)
}

// Minutes returns the window length in minutes.
func (w BusinessWindow) Minutes() int {
	return w.End.TotalMinutes() - w.Start.TotalMinutes()
}
