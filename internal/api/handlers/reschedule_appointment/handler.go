package reschedule_appointment

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	rescheduleAppointment "github.com/m04kA/SMC-SalonService/internal/usecase/reschedule_appointment"
)

const (
	msgMissingAppointmentID = "missing appointment ID"
	msgInvalidRequestBody   = "invalid request body"
	msgInvalidDayOrTime     = "invalid day or time format"
	msgNotFound             = "appointment not found"
)

type Handler struct {
	useCase RescheduleAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase RescheduleAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments/{appointmentId}/reschedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	appointmentID := mux.Vars(r)["appointmentId"]
	if appointmentID == "" {
		h.logger.Warn("POST /appointments/{id}/reschedule - Missing appointment ID")
		handlers.RespondBadRequest(w, msgMissingAppointmentID)
		return
	}

	var req RescheduleAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments/{id}/reschedule - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /appointments/{id}/reschedule - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDayOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), appointmentID, useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, rescheduleAppointment.ErrAppointmentNotFound):
			h.logger.Warn("POST /appointments/{id}/reschedule - Not found: appointment_id=%s", appointmentID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, rescheduleAppointment.ErrValidationFailed):
			reason := strings.TrimPrefix(err.Error(), rescheduleAppointment.ErrValidationFailed.Error()+": ")
			h.logger.Warn("POST /appointments/{id}/reschedule - Schedule rejected: appointment_id=%s, reason=%s",
				appointmentID, reason)
			handlers.RespondConflict(w, reason)

		case errors.Is(err, rescheduleAppointment.ErrInvalidInput):
			reason := strings.TrimPrefix(err.Error(), rescheduleAppointment.ErrInvalidInput.Error()+": ")
			h.logger.Warn("POST /appointments/{id}/reschedule - Invalid input: appointment_id=%s, reason=%s",
				appointmentID, reason)
			handlers.RespondBadRequest(w, reason)

		default:
			h.logger.Error("POST /appointments/{id}/reschedule - Failed to reschedule: appointment_id=%s, error=%v",
				appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /appointments/{id}/reschedule - Rescheduled: appointment_id=%s, date=%s, start=%s",
		appointmentID, response.Date, response.StartTime)
	handlers.RespondJSON(w, http.StatusOK, response)
}
