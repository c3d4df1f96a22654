package update_appointment

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	updateAppointment "github.com/m04kA/SMC-SalonService/internal/usecase/update_appointment"
)

const (
	msgMissingAppointmentID = "missing appointment ID"
	msgInvalidRequestBody   = "invalid request body"
	msgInvalidDateOrTime    = "invalid date or time format"
	msgNotFound             = "appointment not found"
	msgClientNotFound       = "client not found"
	msgServiceNotFound      = "service not found"
	msgStylistNotFound      = "stylist not found"
)

type Handler struct {
	useCase UpdateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase UpdateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/appointments/{appointmentId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	appointmentID := mux.Vars(r)["appointmentId"]
	if appointmentID == "" {
		h.logger.Warn("PUT /appointments/{id} - Missing appointment ID")
		handlers.RespondBadRequest(w, msgMissingAppointmentID)
		return
	}

	var req UpdateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /appointments/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("PUT /appointments/{id} - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), appointmentID, useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, updateAppointment.ErrAppointmentNotFound):
			h.logger.Warn("PUT /appointments/{id} - Not found: appointment_id=%s", appointmentID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, updateAppointment.ErrValidationFailed):
			reason := strings.TrimPrefix(err.Error(), updateAppointment.ErrValidationFailed.Error()+": ")
			h.logger.Warn("PUT /appointments/{id} - Schedule rejected: appointment_id=%s, reason=%s",
				appointmentID, reason)
			handlers.RespondConflict(w, reason)

		case errors.Is(err, updateAppointment.ErrClientNotFound):
			h.logger.Warn("PUT /appointments/{id} - Client not found: appointment_id=%s", appointmentID)
			handlers.RespondNotFound(w, msgClientNotFound)

		case errors.Is(err, updateAppointment.ErrServiceNotFound):
			h.logger.Warn("PUT /appointments/{id} - Service not found: appointment_id=%s", appointmentID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, updateAppointment.ErrStylistNotFound):
			h.logger.Warn("PUT /appointments/{id} - Stylist not found: appointment_id=%s", appointmentID)
			handlers.RespondNotFound(w, msgStylistNotFound)

		case errors.Is(err, updateAppointment.ErrInvalidInput):
			reason := strings.TrimPrefix(err.Error(), updateAppointment.ErrInvalidInput.Error()+": ")
			h.logger.Warn("PUT /appointments/{id} - Invalid input: appointment_id=%s, reason=%s",
				appointmentID, reason)
			handlers.RespondBadRequest(w, reason)

		default:
			h.logger.Error("PUT /appointments/{id} - Failed to update: appointment_id=%s, error=%v",
				appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /appointments/{id} - Appointment updated: appointment_id=%s, version=%d",
		appointmentID, result.Version)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
