package list_appointments

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/service/appointments"
	"github.com/m04kA/SMC-SalonService/internal/service/appointments/models"
)

const (
	msgInvalidFrom   = "invalid from date, expected YYYY-MM-DD"
	msgInvalidTo     = "invalid to date, expected YYYY-MM-DD"
	msgInvalidStatus = "invalid status filter"
)

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/appointments
// Query parameters: from, to (YYYY-MM-DD), stylistId, clientId, status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &models.ListAppointmentsRequest{}

	if raw := query.Get("from"); raw != "" {
		from, err := time.ParseInLocation(domain.DateFormat, raw, time.Local)
		if err != nil {
			h.logger.Warn("GET /appointments - Invalid from date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFrom)
			return
		}
		req.From = &from
	}

	if raw := query.Get("to"); raw != "" {
		to, err := time.ParseInLocation(domain.DateFormat, raw, time.Local)
		if err != nil {
			h.logger.Warn("GET /appointments - Invalid to date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidTo)
			return
		}
		// The to filter is exclusive on start times, so include the whole day
		to = to.AddDate(0, 0, 1)
		req.To = &to
	}

	if stylistID := query.Get("stylistId"); stylistID != "" {
		req.StylistID = &stylistID
	}

	if clientID := query.Get("clientId"); clientID != "" {
		req.ClientID = &clientID
	}

	if status := query.Get("status"); status != "" {
		req.Status = &status
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("GET /appointments - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /appointments - Failed to list appointments: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
