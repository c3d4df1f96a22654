package create_appointment

import (
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	createAppointment "github.com/m04kA/SMC-SalonService/internal/usecase/create_appointment"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	ClientID        string  `json:"clientId"`
	ServiceID       string  `json:"serviceId"`
	StylistID       string  `json:"stylistId"`
	Date            string  `json:"date"`      // "2026-03-09"
	StartTime       string  `json:"startTime"` // "10:00"
	EndTime         *string `json:"endTime,omitempty"`
	DurationMinutes *int    `json:"durationMinutes,omitempty"`
	Notes           *string `json:"notes,omitempty"`
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID              string  `json:"id"`
	Title           string  `json:"title"`
	Date            string  `json:"date"`
	StartTime       string  `json:"startTime"`
	EndTime         string  `json:"endTime"`
	DurationMinutes int     `json:"durationMinutes"`
	Status          string  `json:"status"`
	ClientID        string  `json:"clientId"`
	ServiceID       string  `json:"serviceId"`
	StylistID       string  `json:"stylistId"`
	ClientName      string  `json:"clientName"`
	ServiceName     string  `json:"serviceName"`
	ServicePrice    float64 `json:"servicePrice"`
	DurationSource  string  `json:"durationSource"`
	Notes           *string `json:"notes,omitempty"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`
}

// ToUseCaseRequest converts the HTTP request into the use case model
func (r *CreateAppointmentRequest) ToUseCaseRequest() (*createAppointment.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	req := &createAppointment.Request{
		ClientID:        r.ClientID,
		ServiceID:       r.ServiceID,
		StylistID:       r.StylistID,
		Date:            date,
		StartTime:       startTime,
		DurationMinutes: r.DurationMinutes,
		Notes:           r.Notes,
	}

	if r.EndTime != nil {
		endTime, err := types.NewTimeStringFromString(*r.EndTime)
		if err != nil {
			return nil, err
		}
		req.EndTime = &endTime
	}

	return req, nil
}

// FromUseCaseResponse converts the use case response into the HTTP response
func FromUseCaseResponse(resp *createAppointment.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:              resp.ID,
		Title:           resp.Title,
		Date:            resp.Start.Format(domain.DateFormat),
		StartTime:       resp.Start.Format(domain.TimeFormat),
		EndTime:         resp.End.Format(domain.TimeFormat),
		DurationMinutes: resp.Duration,
		Status:          resp.Status,
		ClientID:        resp.ClientID,
		ServiceID:       resp.ServiceID,
		StylistID:       resp.StylistID,
		ClientName:      resp.ClientName,
		ServiceName:     resp.ServiceName,
		ServicePrice:    resp.ServicePrice,
		DurationSource:  resp.DurationSource,
		Notes:           resp.Notes,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}
}
