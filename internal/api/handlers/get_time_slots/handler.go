package get_time_slots

import (
	"net/http"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
)

// TimeSlotsResponse HTTP response model
type TimeSlotsResponse struct {
	WindowStart string `json:"windowStart"`
	WindowEnd   string `json:"windowEnd"`
	Slots       []Slot `json:"slots"`
	Hours       []Hour `json:"hours"`
}

// Slot one bookable 15-minute entry
type Slot struct {
	Time  string `json:"time"`
	Label string `json:"label"`
}

// Hour one axis row of the day grid
type Hour struct {
	Hour  int    `json:"hour"`
	Label string `json:"label"`
}

type Handler struct {
	useCase GetTimeSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetTimeSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/schedule/slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result := h.useCase.Execute(r.Context())

	response := &TimeSlotsResponse{
		WindowStart: result.WindowStart,
		WindowEnd:   result.WindowEnd,
		Slots:       make([]Slot, 0, len(result.Slots)),
		Hours:       make([]Hour, 0, len(result.Hours)),
	}
	for _, slot := range result.Slots {
		response.Slots = append(response.Slots, Slot{Time: slot.Time, Label: slot.Label})
	}
	for _, hour := range result.Hours {
		response.Hours = append(response.Hours, Hour{Hour: hour.Hour, Label: hour.Label})
	}

	handlers.RespondJSON(w, http.StatusOK, response)
}
