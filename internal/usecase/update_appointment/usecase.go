package update_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	catalogClient "github.com/m04kA/SMC-SalonService/internal/integrations/catalogservice"
	"github.com/m04kA/SMC-SalonService/internal/store"
)

// UseCase edits an appointment. Catalog references in the patch are
// re-resolved so the denormalized snapshot stays truthful, and the merged
// interval is re-validated against every other appointment with the edited
// one excluded from the overlap scan.
type UseCase struct {
	store     AppointmentStore
	validator ScheduleValidator
	catalog   CatalogServiceClient
	logger    Logger
}

// NewUseCase creates a new update appointment use case
func NewUseCase(
	store AppointmentStore,
	validator ScheduleValidator,
	catalog CatalogServiceClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		store:     store,
		validator: validator,
		catalog:   catalog,
		logger:    logger,
	}
}

// Execute runs the update appointment use case
func (uc *UseCase) Execute(ctx context.Context, id string, req *Request) (*Response, error) {
	uc.logger.Info("UpdateAppointment: id=%s", id)

	// 1. Validate the patch shape
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateAppointment: validation failed for id=%s: %v", id, err)
		return nil, err
	}

	current, ok := uc.store.GetByID(id)
	if !ok {
		uc.logger.Warn("UpdateAppointment: appointment id=%s not found", id)
		return nil, ErrAppointmentNotFound
	}

	patch := store.UpdatePatch{
		StylistID:       req.StylistID,
		Date:            req.Date,
		DurationMinutes: req.DurationMinutes,
		Notes:           req.Notes,
	}
	if req.StartTime != nil {
		timeStr := req.StartTime.String()
		patch.Time = &timeStr
	}
	if req.EndTime != nil {
		endStr := req.EndTime.String()
		patch.EndTime = &endStr
	}

	// 2. Re-resolve changed catalog references
	if req.ClientID != nil && *req.ClientID != current.ClientID {
		client, err := uc.catalog.GetClient(ctx, *req.ClientID)
		if err != nil {
			if errors.Is(err, catalogClient.ErrClientNotFound) {
				uc.logger.Warn("UpdateAppointment: client id=%s not found", *req.ClientID)
				return nil, ErrClientNotFound
			}
			uc.logger.Error("UpdateAppointment: failed to get client id=%s: %v", *req.ClientID, err)
			return nil, fmt.Errorf("%w: failed to get client: %v", ErrInternal, err)
		}
		patch.ClientID = req.ClientID
		patch.ClientName = &client.Name
	}

	if req.ServiceID != nil && *req.ServiceID != current.ServiceID {
		service, err := uc.catalog.GetService(ctx, *req.ServiceID)
		if err != nil {
			if errors.Is(err, catalogClient.ErrServiceNotFound) {
				uc.logger.Warn("UpdateAppointment: service id=%s not found", *req.ServiceID)
				return nil, ErrServiceNotFound
			}
			uc.logger.Error("UpdateAppointment: failed to get service id=%s: %v", *req.ServiceID, err)
			return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
		}
		patch.ServiceID = req.ServiceID
		patch.ServiceName = &service.Name
		patch.ServicePrice = &service.Price
		patch.ServiceDurationMinutes = &service.DurationMinutes
	}

	if req.StylistID != nil && *req.StylistID != current.StylistID {
		if _, err := uc.catalog.GetStylist(ctx, *req.StylistID); err != nil {
			if errors.Is(err, catalogClient.ErrStylistNotFound) {
				uc.logger.Warn("UpdateAppointment: stylist id=%s not found", *req.StylistID)
				return nil, ErrStylistNotFound
			}
			uc.logger.Error("UpdateAppointment: failed to get stylist id=%s: %v", *req.StylistID, err)
			return nil, fmt.Errorf("%w: failed to get stylist: %v", ErrInternal, err)
		}
	}

	// 3. Re-validate the merged interval, excluding this appointment
	start, end := proposedInterval(current, req)
	if result := uc.validator.ValidateInterval(start, end, uc.store.Snapshot(), id); !result.Valid {
		uc.logger.Warn("UpdateAppointment: schedule rejected interval %s - %s for id=%s: %s",
			start.Format(domain.TimeFormat), end.Format(domain.TimeFormat), id, result.Reason)
		return nil, fmt.Errorf("%w: %s", ErrValidationFailed, result.Reason)
	}

	// 4. Commit
	updated, err := uc.store.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, store.ErrAppointmentNotFound) {
			return nil, ErrAppointmentNotFound
		}
		uc.logger.Error("UpdateAppointment: failed to update appointment id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: failed to update appointment: %v", ErrInternal, err)
	}

	uc.logger.Info("UpdateAppointment: successfully updated appointment id=%s version=%d", id, updated.Version)
	return toResponse(updated), nil
}
