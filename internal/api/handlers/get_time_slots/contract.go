package get_time_slots

import (
	"context"

	getTimeSlots "github.com/m04kA/SMC-SalonService/internal/usecase/get_time_slots"
)

type GetTimeSlotsUseCase interface {
	Execute(ctx context.Context) *getTimeSlots.Response
}

type Logger interface {
	Info(format string, v ...interface{})
}
