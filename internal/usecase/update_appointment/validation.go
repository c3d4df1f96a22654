package update_appointment

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// validateRequest validates the patch fields before any network calls
func validateRequest(req *Request) error {
	if req.ClientID != nil && *req.ClientID == "" {
		return fmt.Errorf("%w: clientID cannot be empty", ErrInvalidInput)
	}

	if req.ServiceID != nil && *req.ServiceID == "" {
		return fmt.Errorf("%w: serviceID cannot be empty", ErrInvalidInput)
	}

	if req.StylistID != nil && *req.StylistID == "" {
		return fmt.Errorf("%w: stylistID cannot be empty", ErrInvalidInput)
	}

	if req.StartTime != nil {
		if err := req.StartTime.Validate(); err != nil {
			return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
		}
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

// proposedInterval resolves the interval the merged appointment would
// occupy, using the same precedence the store applies on merge.
func proposedInterval(current *domain.Appointment, req *Request) (start, end time.Time) {
	day := current.Start
	if req.Date != nil {
		day = *req.Date
	}

	start = current.Start
	startMoved := false
	if req.Date != nil || req.StartTime != nil {
		tod := types.NewTimeString(current.Start)
		if req.StartTime != nil {
			tod = *req.StartTime
		}
		start = tod.At(day)
		startMoved = true
	}

	switch {
	case req.EndTime != nil:
		end = req.EndTime.At(start)
		if !end.After(start) {
			end = end.AddDate(0, 0, 1)
		}
	case req.DurationMinutes != nil:
		end = start.Add(time.Duration(*req.DurationMinutes) * time.Minute)
	case startMoved:
		end = start.Add(current.Duration())
	default:
		end = current.End
	}

	return start, end
}
