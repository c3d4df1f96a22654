package reschedule_appointment

import (
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// Request is a drag gesture resolved server-side: which appointment, which
// edge (move, resize-start, resize-end) and where it was dropped. A drop on
// a time slot carries Day+Time; a drop on a whole day (month view) carries
// only Day and keeps the appointment's time of day.
type Request struct {
	Mode string // "move", "resize-start" or "resize-end"

	Day  time.Time
	Time *types.TimeString // nil for a whole-day drop
}

// Response is the rescheduled appointment
type Response struct {
	ID       string
	Title    string
	Start    time.Time
	End      time.Time
	Duration int
	Status   string

	Version   int64
	UpdatedAt time.Time
}

func toResponse(a *domain.Appointment) *Response {
	return &Response{
		ID:        a.ID,
		Title:     a.Title,
		Start:     a.Start,
		End:       a.End,
		Duration:  a.DurationMinutes(),
		Status:    string(a.Status),
		Version:   a.Version,
		UpdatedAt: a.UpdatedAt,
	}
}
