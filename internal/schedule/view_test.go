package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

func TestFilterByViewDay(t *testing.T) {
	day := testDay()
	appts := []*domain.Appointment{
		appointmentAt(t, "a1", "today", day, "10:00", "11:00"),
		appointmentAt(t, "a2", "tomorrow", day.AddDate(0, 0, 1), "10:00", "11:00"),
		appointmentAt(t, "a3", "today early", day, "09:00", "09:30"),
	}

	got := FilterByView(appts, day, ViewDay)

	require.Len(t, got, 2)
	// Ordered by start.
	assert.Equal(t, "a3", got[0].ID)
	assert.Equal(t, "a1", got[1].ID)
}

func TestFilterByViewWeek(t *testing.T) {
	monday := testDay() // 2026-03-09 is a Monday
	appts := []*domain.Appointment{
		appointmentAt(t, "a1", "monday", monday, "10:00", "11:00"),
		appointmentAt(t, "a2", "sunday", monday.AddDate(0, 0, 6), "10:00", "11:00"),
		appointmentAt(t, "a3", "next monday", monday.AddDate(0, 0, 7), "10:00", "11:00"),
		appointmentAt(t, "a4", "previous sunday", monday.AddDate(0, 0, -1), "10:00", "11:00"),
	}

	// Anchor mid-week; the window still starts on Monday.
	got := FilterByView(appts, monday.AddDate(0, 0, 3), ViewWeek)

	require.Len(t, got, 2)
	assert.Equal(t, "a1", got[0].ID)
	assert.Equal(t, "a2", got[1].ID)
}

func TestFilterByViewMonth(t *testing.T) {
	day := testDay()
	appts := []*domain.Appointment{
		appointmentAt(t, "a1", "in month", day, "10:00", "11:00"),
		appointmentAt(t, "a2", "first", time.Date(2026, time.March, 1, 0, 0, 0, 0, time.Local), "10:00", "11:00"),
		appointmentAt(t, "a3", "last", time.Date(2026, time.March, 31, 0, 0, 0, 0, time.Local), "10:00", "11:00"),
		appointmentAt(t, "a4", "april", time.Date(2026, time.April, 1, 0, 0, 0, 0, time.Local), "10:00", "11:00"),
	}

	got := FilterByView(appts, day, ViewMonth)

	require.Len(t, got, 3)
}

func TestFilterByViewIsIdempotent(t *testing.T) {
	day := testDay()
	appts := []*domain.Appointment{
		appointmentAt(t, "a1", "one", day, "10:00", "11:00"),
		appointmentAt(t, "a2", "two", day, "09:00", "09:30"),
	}

	first := FilterByView(appts, day, ViewDay)
	second := FilterByView(appts, day, ViewDay)

	assert.Equal(t, first, second)
	// Input order untouched.
	assert.Equal(t, "a1", appts[0].ID)
	assert.Equal(t, "a2", appts[1].ID)
}

func TestWeekDays(t *testing.T) {
	// Anchor on a Thursday.
	days := WeekDays(time.Date(2026, time.March, 12, 0, 0, 0, 0, time.Local))

	require.Len(t, days, 7)
	assert.Equal(t, time.Monday, days[0].Weekday())
	assert.Equal(t, 9, days[0].Day())
	assert.Equal(t, time.Sunday, days[6].Weekday())
	assert.Equal(t, 15, days[6].Day())
}

func TestMonthDays(t *testing.T) {
	// March 2026: the 1st is a Sunday, so the grid opens on Monday Feb 23
	// and closes on Sunday Apr 5.
	days := MonthDays(time.Date(2026, time.March, 15, 0, 0, 0, 0, time.Local))

	require.NotEmpty(t, days)
	assert.Equal(t, 0, len(days)%7, "grid must be whole weeks")
	assert.Equal(t, time.Monday, days[0].Weekday())
	assert.Equal(t, time.February, days[0].Month())
	assert.Equal(t, 23, days[0].Day())

	last := days[len(days)-1]
	assert.Equal(t, time.Sunday, last.Weekday())
	assert.Equal(t, time.April, last.Month())
	assert.Equal(t, 5, last.Day())
}
