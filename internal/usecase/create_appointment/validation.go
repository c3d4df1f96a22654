package create_appointment

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// validateRequest validates the request fields before any network calls
func validateRequest(req *Request) error {
	if req.ClientID == "" {
		return fmt.Errorf("%w: clientID is required", ErrInvalidInput)
	}

	if req.ServiceID == "" {
		return fmt.Errorf("%w: serviceID is required", ErrInvalidInput)
	}

	if req.StylistID == "" {
		return fmt.Errorf("%w: stylistID is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if req.EndTime != nil {
		if err := req.EndTime.Validate(); err != nil {
			return fmt.Errorf("%w: invalid endTime format: %v", ErrInvalidInput, err)
		}
	}

	if req.DurationMinutes != nil && *req.DurationMinutes <= 0 {
		return fmt.Errorf("%w: durationMinutes must be positive", ErrInvalidInput)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must be at most %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// proposedInterval builds the start/end instants the validator will check.
// Mirrors the store's duration precedence: explicit end, explicit duration,
// then the service's standard duration. An end at or before the start is
// taken to cross midnight.
func proposedInterval(req *Request, serviceDurationMinutes int) (start, end time.Time) {
	start = req.StartTime.At(req.Date)

	switch {
	case req.EndTime != nil:
		end = req.EndTime.At(req.Date)
		if !end.After(start) {
			end = end.AddDate(0, 0, 1)
		}
	case req.DurationMinutes != nil:
		end = start.Add(time.Duration(*req.DurationMinutes) * time.Minute)
	default:
		minutes := serviceDurationMinutes
		if minutes <= 0 {
			minutes = domain.DefaultServiceDurationMinutes
		}
		end = start.Add(time.Duration(minutes) * time.Minute)
	}

	return start, end
}
