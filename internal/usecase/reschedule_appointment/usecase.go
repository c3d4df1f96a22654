package reschedule_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/schedule"
	"github.com/m04kA/SMC-SalonService/internal/store"
)

// UseCase reschedules an appointment through a drag gesture. The drag
// controller resolves the drop into a candidate interval (ordering rules),
// the validator checks it against the rest of the schedule, and only then is
// the change committed. A move preserves the appointment's duration exactly.
type UseCase struct {
	store     AppointmentStore
	validator ScheduleValidator
	logger    Logger
}

// NewUseCase creates a new reschedule appointment use case
func NewUseCase(
	store AppointmentStore,
	validator ScheduleValidator,
	logger Logger,
) *UseCase {
	return &UseCase{
		store:     store,
		validator: validator,
		logger:    logger,
	}
}

// Execute runs the reschedule appointment use case
func (uc *UseCase) Execute(ctx context.Context, id string, req *Request) (*Response, error) {
	uc.logger.Info("RescheduleAppointment: id=%s, mode=%s, day=%s", id, req.Mode, req.Day.Format(domain.DateFormat))

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("RescheduleAppointment: validation failed for id=%s: %v", id, err)
		return nil, err
	}

	appt, ok := uc.store.GetByID(id)
	if !ok {
		uc.logger.Warn("RescheduleAppointment: appointment id=%s not found", id)
		return nil, ErrAppointmentNotFound
	}

	target := domain.DayTarget(req.Day)
	if req.Time != nil {
		target = domain.SlotTarget(req.Day, domain.TimeSlot{Hour: req.Time.Hour(), Minute: req.Time.Minute()})
	}

	// Resolve the gesture. The controller clears its state on every drop,
	// so each request runs a complete begin/drop cycle.
	controller := schedule.NewDragController()
	controller.Begin(appt, domain.DragMode(req.Mode))

	candidate, err := controller.Drop(target)
	if err != nil {
		uc.logger.Warn("RescheduleAppointment: drop rejected for id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if result := uc.validator.ValidateInterval(candidate.Start, candidate.End, uc.store.Snapshot(), id); !result.Valid {
		uc.logger.Warn("RescheduleAppointment: schedule rejected interval %s - %s for id=%s: %s",
			candidate.Start.Format(domain.TimeFormat), candidate.End.Format(domain.TimeFormat), id, result.Reason)
		return nil, fmt.Errorf("%w: %s", ErrValidationFailed, result.Reason)
	}

	// A move only patches the start so the merge keeps the duration (and
	// its origin) intact; resizes patch the edge that actually changed.
	var patch store.UpdatePatch
	switch domain.DragMode(req.Mode) {
	case domain.DragResizeStart:
		patch = store.UpdatePatch{Start: &candidate.Start, End: &candidate.End}
	case domain.DragResizeEnd:
		patch = store.UpdatePatch{End: &candidate.End}
	default:
		patch = store.UpdatePatch{Start: &candidate.Start}
	}

	updated, err := uc.store.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, store.ErrAppointmentNotFound) {
			return nil, ErrAppointmentNotFound
		}
		uc.logger.Error("RescheduleAppointment: failed to update appointment id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: failed to update appointment: %v", ErrInternal, err)
	}

	uc.logger.Info("RescheduleAppointment: appointment id=%s moved to %s - %s",
		id, updated.Start.Format(domain.TimeFormat), updated.End.Format(domain.TimeFormat))
	return toResponse(updated), nil
}

func validateRequest(req *Request) error {
	if !domain.ValidDragMode(req.Mode) {
		return fmt.Errorf("%w: unknown mode %q", ErrInvalidInput, req.Mode)
	}

	if req.Day.IsZero() {
		return fmt.Errorf("%w: day is required", ErrInvalidInput)
	}

	if req.Time != nil {
		if err := req.Time.Validate(); err != nil {
			return fmt.Errorf("%w: invalid time format: %v", ErrInvalidInput, err)
		}
	}

	// Resizing an edge needs a precise slot; a whole-day drop only makes
	// sense for a move.
	if req.Time == nil && domain.DragMode(req.Mode) != domain.DragMove {
		return fmt.Errorf("%w: %s requires a time slot", ErrInvalidInput, req.Mode)
	}

	return nil
}
