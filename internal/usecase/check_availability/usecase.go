package check_availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/scheduling"
	"github.com/m04kA/SMC-SalonBooking/pkg/metrics"
	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

// UseCase use case проверки, что мастер свободен для набора услуг.
//
// Проверка рекомендательная: между успешной проверкой и записью бронирований
// другой запрос может занять то же время. Окончательную гарантию дают
// транзакция в reschedule_booking и EXCLUDE ограничение в схеме БД.
type UseCase struct {
	bookingRepo  BookingRepository
	planner      SlotPlanner
	defaultGap   int
	checkTimeout time.Duration
	metrics      MetricsRecorder
	logger       Logger
}

// NewUseCase создает новый экземпляр use case.
// defaultGapMinutes используется, когда в запросе не указана пауза после химических услуг.
// checkTimeout ограничивает время чтения из БД (0 - без ограничения).
func NewUseCase(
	bookingRepo BookingRepository,
	defaultGapMinutes int,
	checkTimeout time.Duration,
	metrics MetricsRecorder,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		planner:      scheduling.NewPlanner(scheduling.KeywordClassifier{}),
		defaultGap:   defaultGapMinutes,
		checkTimeout: checkTimeout,
		metrics:      metrics,
		logger:       logger,
	}
}

// WithPlanner подменяет планировщик (например, с классификацией по флагу услуги)
func (uc *UseCase) WithPlanner(planner SlotPlanner) *UseCase {
	uc.planner = planner
	return uc
}

// Execute выполняет проверку доступности
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных (до любого чтения)
	if uc.bookingRepo == nil {
		uc.observe(metrics.OutcomeInvalid)
		return nil, fmt.Errorf("%w: booking repository is required", ErrInvalidInput)
	}
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckAvailability: validation failed: %v", err)
		uc.observe(metrics.OutcomeInvalid)
		return nil, err
	}

	uc.logger.Info("CheckAvailability: resource=%s, start=%s, services=%d, excluded=%d",
		req.ResourceID, types.FormatInstant(req.StartInstant), len(req.Rows), len(req.ExcludeBookingIDs))

	// 2. Рассчитываем слоты
	gap := uc.defaultGap
	if req.ChemicalGapMinutes != nil {
		gap = *req.ChemicalGapMinutes
	}

	slots, err := uc.planner.Plan(req.StartInstant, req.Rows, req.BasketItems, gap)
	if err != nil {
		uc.logger.Warn("CheckAvailability: failed to plan slots: %v", err)
		uc.observe(metrics.OutcomeInvalid)
		if errors.Is(err, scheduling.ErrInvalidInput) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		return nil, err
	}

	// 3. Один запрос на пересечения по всем слотам
	excluded := collectExcludedIDs(req.ExcludeBookingIDs, req.Rows)

	readCtx := ctx
	if uc.checkTimeout > 0 {
		var cancel context.CancelFunc
		readCtx, cancel = context.WithTimeout(ctx, uc.checkTimeout)
		defer cancel()
	}

	overlapping, err := uc.bookingRepo.FindOverlapping(readCtx, req.ResourceID, slots, excluded)
	if err != nil {
		uc.logger.Error("CheckAvailability: failed to read bookings for resource=%s: %v", req.ResourceID, err)
		uc.observe(metrics.OutcomeError)
		return nil, fmt.Errorf("%w: resource=%s: %w", ErrPersistence, req.ResourceID, err)
	}

	// 4. Формируем результат
	if len(overlapping) > 0 {
		conflict := overlapping[0]
		uc.logger.Warn("CheckAvailability: conflict for resource=%s with booking id=%s (%s - %s)",
			req.ResourceID, conflict.ID, types.FormatInstant(conflict.Start), types.FormatInstant(conflict.End))
		uc.observe(metrics.OutcomeConflict)

		return &Response{
			OK:       false,
			Message:  conflictMessage(conflict),
			Conflict: conflict,
			Slots:    slots,
		}, nil
	}

	uc.logger.Info("CheckAvailability: resource=%s is free for %d slots", req.ResourceID, len(slots))
	uc.observe(metrics.OutcomeOK)

	return &Response{OK: true, Slots: slots}, nil
}

func (uc *UseCase) observe(outcome string) {
	if uc.metrics != nil {
		uc.metrics.ObserveAvailabilityCheck(outcome)
	}
}
