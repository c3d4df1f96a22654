package domain

import "time"

// AppointmentStatus represents the status of an appointment.
type AppointmentStatus string

const (
	StatusScheduled AppointmentStatus = "scheduled"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
	StatusNoShow    AppointmentStatus = "no-show"
)

// DurationSource records where an appointment's duration came from, so a
// later edit knows whether the end time was a deliberate override or just
// the service default.
type DurationSource string

const (
	DurationFromService DurationSource = "service"
	DurationExplicit    DurationSource = "explicit"
)

// Appointment is a scheduled salon visit. Client, service and stylist are
// external catalog entities; only their ids plus a display snapshot are held
// here, and the snapshot is never written back to the catalog.
type Appointment struct {
	ID        string
	Title     string // "<client name> - <service name>"
	ClientID  string
	ServiceID string
	StylistID string

	Start time.Time
	End   time.Time

	Status         AppointmentStatus
	DurationSource DurationSource
	Notes          *string

	// Denormalized catalog snapshot for display and history.
	ClientName             string
	ServiceName            string
	ServicePrice           float64
	ServiceDurationMinutes int

	// Version increases on every committed mutation. Callers use it to
	// discard stale persistence responses (spec: last write wins per id).
	Version int64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Duration returns the appointment length.
func (a *Appointment) Duration() time.Duration {
	return a.End.Sub(a.Start)
}

// DurationMinutes returns the appointment length in whole minutes.
func (a *Appointment) DurationMinutes() int {
	return int(a.Duration() / time.Minute)
}

// IsTerminal reports whether the status can no longer change.
func (a *Appointment) IsTerminal() bool {
	return a.Status != StatusScheduled
}

// CanTransitionTo reports whether the status change is allowed.
// The only legal transitions are scheduled -> completed/cancelled/no-show.
func (a *Appointment) CanTransitionTo(next AppointmentStatus) bool {
	if a.Status != StatusScheduled {
		return false
	}
	switch next {
	case StatusCompleted, StatusCancelled, StatusNoShow:
		return true
	default:
		return false
	}
}

// Clone returns a deep copy. Projections hand copies to callers so the
// store's collection is never mutated from outside.
func (a *Appointment) Clone() *Appointment {
	clone := *a
	if a.Notes != nil {
		notes := *a.Notes
		clone.Notes = &notes
	}
	return &clone
}

// ValidStatus reports whether s is one of the known appointment statuses.
func ValidStatus(s string) bool {
	switch AppointmentStatus(s) {
	case StatusScheduled, StatusCompleted, StatusCancelled, StatusNoShow:
		return true
	default:
		return false
	}
}

// AppointmentFilter narrows appointment listings.
type AppointmentFilter struct {
	From      *time.Time // inclusive lower bound on Start
	To        *time.Time // inclusive upper bound on Start
	StylistID *string
	ClientID  *string
	Status    *AppointmentStatus
}
