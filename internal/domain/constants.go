package domain

// Scheduling constants
const (
	// MinAppointmentMinutes is the shortest bookable appointment.
	MinAppointmentMinutes = 15

	// SlotStepMinutes is the calendar grid granularity.
	SlotStepMinutes = 15

	// DefaultServiceDurationMinutes is used when neither the catalog nor
	// the caller supplies a duration.
	DefaultServiceDurationMinutes = 60
)

// Default business window. The source of truth at runtime is the [schedule]
// section of config.toml; these are only the fallbacks applied there.
const (
	DefaultWindowStartHour   = 9
	DefaultWindowStartMinute = 0
	DefaultWindowEndHour     = 18
	DefaultWindowEndMinute   = 0
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// MaxNotesLength bounds free-text notes on an appointment.
const MaxNotesLength = 500
