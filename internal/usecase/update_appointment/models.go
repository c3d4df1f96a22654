package update_appointment

import (
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// Request is a partial update. Nil fields keep their current value. When the
// start moves and no end information is supplied, the appointment keeps its
// duration.
type Request struct {
	ClientID  *string
	ServiceID *string
	StylistID *string

	Date      *time.Time
	StartTime *types.TimeString

	EndTime         *types.TimeString
	DurationMinutes *int

	Notes *string
}

// Response is the updated appointment
type Response struct {
	ID       string
	Title    string
	Start    time.Time
	End      time.Time
	Duration int
	Status   string

	ClientID  string
	ServiceID string
	StylistID string

	ClientName             string
	ServiceName            string
	ServicePrice           float64
	ServiceDurationMinutes int

	DurationSource string
	Notes          *string

	Version   int64
	UpdatedAt time.Time
}

func toResponse(a *domain.Appointment) *Response {
	return &Response{
		ID:                     a.ID,
		Title:                  a.Title,
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
		Version:                a.Version,
		UpdatedAt:              a.UpdatedAt,
	}
}
