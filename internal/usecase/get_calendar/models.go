package get_calendar

import (
	"time"
)

// Request selects the calendar projection: which view and around which date
type Request struct {
	View string // "day", "week" or "month"
	Date time.Time
}

// Response is one calendar projection: the days the view spans, the time
// slot grid (day and week views only) and the appointments that fall inside
// the view, each with its rendered position.
type Response struct {
	View string
	Date time.Time

	Days      []DayCell
	TimeSlots []SlotCell

	Appointments []CalendarAppointment
}

// DayCell is one day column or month cell
type DayCell struct {
	Date      string // "2026-03-09"
	Weekday   string // "Monday"
	InMonth   bool   // false for the adjacent-month padding of the month grid
	IsAnchor  bool   // the requested date
	Appointed int    // number of appointments on this day
}

// SlotCell is one row of the day/week time grid
type SlotCell struct {
	Time  string // "10:15"
	Label string // "10:15 AM"
}

// CalendarAppointment is an appointment positioned inside the view
type CalendarAppointment struct {
	ID        string
	Title     string
	Date      string
	StartTime string
	EndTime   string
	Status    string

	// Rendered geometry in grid units
	Top    float64
	Height float64
}
