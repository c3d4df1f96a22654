package create_appointment

import (
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// Request is the material for a new appointment. EndTime and
// DurationMinutes are optional; when neither is set the service's standard
// duration applies.
type Request struct {
	ClientID  string
	ServiceID string
	StylistID string

	Date      time.Time        // appointment day (no time part)
	StartTime types.TimeString // slot start, e.g. "10:00"

	EndTime         *types.TimeString
	DurationMinutes *int

	Notes *string
}

// Response is the created appointment
type Response struct {
	ID       string
	Title    string
	Date     time.Time
	Start    time.Time
	End      time.Time
	Duration int
	Status   string

	ClientID  string
	ServiceID string
	StylistID string

	// Denormalized catalog snapshot
	ClientName             string
	ServiceName            string
	ServicePrice           float64
	ServiceDurationMinutes int

	DurationSource string
	Notes          *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

func toResponse(a *domain.Appointment) *Response {
	return &Response{
		ID:                     a.ID,
		Title:                  a.Title,
		Date:                   a.Start,
		Start:                  a.Start,
		End:                    a.End,
		Duration:               a.DurationMinutes(),
		Status:                 string(a.Status),
		ClientID:               a.ClientID,
		ServiceID:              a.ServiceID,
		StylistID:              a.StylistID,
		ClientName:             a.ClientName,
		ServiceName:            a.ServiceName,
		ServicePrice:           a.ServicePrice,
		ServiceDurationMinutes: a.ServiceDurationMinutes,
		DurationSource:         string(a.DurationSource),
		Notes:                  a.Notes,
		CreatedAt:              a.CreatedAt,
		UpdatedAt:              a.UpdatedAt,
	}
}
