package schedule

import (
	"sort"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// View is a calendar granularity.
type View string

const (
	ViewDay   View = "day"
	ViewWeek  View = "week"
	ViewMonth View = "month"
)

// ValidView reports whether s names a known calendar view.
func ValidView(s string) bool {
	switch View(s) {
	case ViewDay, ViewWeek, ViewMonth:
		return true
	default:
		return false
	}
}

// FilterByView returns the appointments visible for the anchor date at the
// given granularity, ordered by start time. Pure: the input slice and its
// appointments are never modified, and repeated calls with unchanged input
// yield identical output.
//
// Bounds are inclusive on Start: day is [startOfDay, endOfDay], week is the
// Monday-start 7-day window, month is the calendar month.
func FilterByView(appointments []*domain.Appointment, anchor time.Time, view View) []*domain.Appointment {
	var from, to time.Time

	switch view {
	case ViewWeek:
		from = startOfWeek(anchor)
		to = endOfDay(from.AddDate(0, 0, 6))
	case ViewMonth:
		from = startOfMonth(anchor)
		to = endOfDay(from.AddDate(0, 1, -1))
	default:
		from = startOfDay(anchor)
		to = endOfDay(anchor)
	}

	visible := make([]*domain.Appointment, 0)
	for _, appt := range appointments {
		if !appt.Start.Before(from) && !appt.Start.After(to) {
			visible = append(visible, appt)
		}
	}

	sort.SliceStable(visible, func(i, j int) bool {
		return visible[i].Start.Before(visible[j].Start)
	})
	return visible
}

// WeekDays returns the 7 dates of the anchor's week, Monday first.
func WeekDays(anchor time.Time) []time.Time {
	days := make([]time.Time, 0, 7)
	monday := startOfWeek(anchor)
	for i := 0; i < 7; i++ {
		days = append(days, monday.AddDate(0, 0, i))
	}
	return days
}

// MonthDays returns the dates of the full Monday-start weeks covering the
// anchor's month. Days from adjacent months are included so the grid is
// always a whole number of weeks.
func MonthDays(anchor time.Time) []time.Time {
	first := startOfWeek(startOfMonth(anchor))
	lastOfMonth := startOfMonth(anchor).AddDate(0, 1, -1)
	last := startOfWeek(lastOfMonth).AddDate(0, 0, 6)

	days := make([]time.Time, 0, 42)
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}

func startOfWeek(t time.Time) time.Time {
	day := startOfDay(t)
	// time.Weekday is Sunday-based; shift so Monday opens the week.
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}

func startOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}
