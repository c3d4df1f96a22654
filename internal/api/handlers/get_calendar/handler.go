package get_calendar

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/domain"
	getCalendar "github.com/m04kA/SMC-SalonService/internal/usecase/get_calendar"
)

const (
	msgInvalidView = "invalid view, expected day, week or month"
	msgInvalidDate = "invalid date format, expected YYYY-MM-DD"
)

type Handler struct {
	useCase GetCalendarUseCase
	logger  Logger
}

func NewHandler(useCase GetCalendarUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/calendar
// Query parameters: view (day|week|month, default week), date (YYYY-MM-DD, default today)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	view := query.Get("view")
	if view == "" {
		view = "week"
	}

	date := time.Now()
	if raw := query.Get("date"); raw != "" {
		parsed, err := time.ParseInLocation(domain.DateFormat, raw, time.Local)
		if err != nil {
			h.logger.Warn("GET /calendar - Invalid date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		date = parsed
	}

	result, err := h.useCase.Execute(r.Context(), &getCalendar.Request{View: view, Date: date})
	if err != nil {
		switch {
		case errors.Is(err, getCalendar.ErrInvalidInput):
			h.logger.Warn("GET /calendar - Invalid view: view=%q", view)
			handlers.RespondBadRequest(w, msgInvalidView)

		default:
			h.logger.Error("GET /calendar - Failed to build calendar: view=%s, error=%v", view, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
