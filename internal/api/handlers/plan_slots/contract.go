package plan_slots

import (
	"context"

	planSlots "github.com/m04kA/SMC-SalonBooking/internal/usecase/plan_slots"
)

type PlanSlotsUseCase interface {
	Execute(ctx context.Context, req *planSlots.Request) (*planSlots.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
