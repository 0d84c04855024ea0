package plan_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/internal/scheduling"
	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

const operationName = "plan_slots"

// UseCase расчет слотов без обращения к БД (предпросмотр корзины в календаре)
type UseCase struct {
	planner    SlotPlanner
	defaultGap int
	metrics    MetricsRecorder
	logger     Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(defaultGapMinutes int, metrics MetricsRecorder, logger Logger) *UseCase {
	return &UseCase{
		planner:    scheduling.NewPlanner(scheduling.KeywordClassifier{}),
		defaultGap: defaultGapMinutes,
		metrics:    metrics,
		logger:     logger,
	}
}

// WithPlanner подменяет планировщик
func (uc *UseCase) WithPlanner(planner SlotPlanner) *UseCase {
	uc.planner = planner
	return uc
}

// Execute рассчитывает слоты
func (uc *UseCase) Execute(_ context.Context, req *Request) (*Response, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: request is required", ErrInvalidInput)
	}
	if len(req.Rows) > domain.MaxServicesPerBooking {
		return nil, fmt.Errorf("%w: too many services, max %d", ErrInvalidInput, domain.MaxServicesPerBooking)
	}

	gap := uc.defaultGap
	if req.ChemicalGapMinutes != nil {
		gap = *req.ChemicalGapMinutes
	}
	if gap > domain.MaxChemicalGapMinutes {
		return nil, fmt.Errorf("%w: chemicalGapMinutes must be between 0 and %d", ErrInvalidInput, domain.MaxChemicalGapMinutes)
	}

	slots, err := uc.planner.Plan(req.StartInstant, req.Rows, req.BasketItems, gap)
	if err != nil {
		uc.logger.Warn("PlanSlots: failed to plan slots: %v", err)
		if errors.Is(err, scheduling.ErrInvalidInput) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		return nil, err
	}

	uc.logger.Info("PlanSlots: start=%s, services=%d, gap=%d", types.FormatInstant(req.StartInstant), len(req.Rows), gap)

	if uc.metrics != nil {
		uc.metrics.ObservePlannedSlots(operationName, len(slots))
	}

	return &Response{Slots: slots, GapMinutes: gap}, nil
}
