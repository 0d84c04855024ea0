package reschedule_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	bookingRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/booking"
	"github.com/m04kA/SMC-SalonBooking/internal/scheduling"
	"github.com/m04kA/SMC-SalonBooking/internal/usecase/check_availability"
	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

// slotTakenMessage сообщение, когда время заняли между проверкой и записью
const slotTakenMessage = "the selected time was just taken by another booking for this stylist"

// UseCase use case сохранения (переноса) группы бронирований
type UseCase struct {
	checker     AvailabilityChecker
	bookingRepo BookingRepository
	txManager   TransactionManager
	idGenerator IDGenerator
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	checker AvailabilityChecker,
	bookingRepo BookingRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		checker:     checker,
		bookingRepo: bookingRepo,
		txManager:   txManager,
		idGenerator: UUIDGenerator{},
		logger:      logger,
	}
}

// WithIDGenerator подменяет генератор ID
func (uc *UseCase) WithIDGenerator(g IDGenerator) *UseCase {
	uc.idGenerator = g
	return uc
}

// Execute выполняет use case.
// Проверка и запись идут в одной сериализуемой транзакции, поэтому
// параллельный запрос не может занять то же время между ними.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("RescheduleBooking: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("RescheduleBooking: resource=%s, start=%s, services=%d",
		req.ResourceID, types.FormatInstant(req.StartInstant), len(req.Rows))

	var result *Response

	// 2. Проверка и запись в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		result = nil

		// 2.1. Проверяем, что мастер свободен (строки блокируются FOR UPDATE)
		check, err := uc.checker.Execute(txCtx, &check_availability.Request{
			ResourceID:         req.ResourceID,
			StartInstant:       req.StartInstant,
			Rows:               req.Rows,
			BasketItems:        req.BasketItems,
			ExcludeBookingIDs:  req.ExcludeBookingIDs,
			ChemicalGapMinutes: req.ChemicalGapMinutes,
		})
		if err != nil {
			return err
		}

		if !check.OK {
			result = &Response{
				OK:       false,
				Message:  check.Message,
				Conflict: check.Conflict,
				Slots:    check.Slots,
			}
			return nil
		}

		// 2.2. Переносим и создаем бронирования
		bookings := make([]*domain.Booking, len(req.Rows))
		for i, row := range req.Rows {
			booking, err := uc.saveRow(txCtx, req, i, row, check.Slots[i])
			if err != nil {
				return err
			}
			bookings[i] = booking
		}

		result = &Response{OK: true, Slots: check.Slots, Bookings: bookings}
		return nil
	})

	if bookingRepo.IsSlotConflict(err) {
		uc.logger.Warn("RescheduleBooking: slot taken concurrently for resource=%s: %v", req.ResourceID, err)
		return &Response{OK: false, Message: slotTakenMessage}, nil
	}
	if err != nil {
		return nil, uc.mapError(req, err)
	}

	if result.OK {
		uc.logger.Info("RescheduleBooking: saved %d bookings for resource=%s", len(result.Bookings), req.ResourceID)
	}

	return result, nil
}

// saveRow переносит существующее бронирование или создает новое для строки
func (uc *UseCase) saveRow(ctx context.Context, req *Request, i int, row domain.ServiceRow, slot domain.Slot) (*domain.Booking, error) {
	if id := strings.TrimSpace(row.BookingID); id != "" {
		existing, err := uc.bookingRepo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if !existing.CanBeRescheduled() {
			return nil, fmt.Errorf("%w: id=%s, status=%s", ErrBookingNotReschedulable, id, existing.Status)
		}

		if err := uc.bookingRepo.Reschedule(ctx, id, req.ResourceID, slot); err != nil {
			return nil, err
		}

		existing.ResourceID = req.ResourceID
		existing.Start = slot.Start
		existing.End = slot.End
		uc.logger.Info("RescheduleBooking: moved booking id=%s to %s", id, types.FormatInstant(slot.Start))
		return existing, nil
	}

	var item *domain.BasketItem
	if i < len(req.BasketItems) {
		item = &req.BasketItems[i]
	}
	d := scheduling.Describe(row, item)

	name := d.Name
	if name == "" {
		name = d.Title
	}

	created, err := uc.bookingRepo.Create(ctx, &domain.Booking{
		ID:          uc.idGenerator.NewID(),
		ResourceID:  req.ResourceID,
		Start:       slot.Start,
		End:         slot.End,
		Status:      domain.StatusBooked,
		ClientID:    req.ClientID,
		ServiceName: name,
		Category:    d.Category,
		Notes:       req.Notes,
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("RescheduleBooking: created booking id=%s at %s", created.ID, types.FormatInstant(slot.Start))
	return created, nil
}

// mapError приводит ошибки транзакции к ошибкам use case
func (uc *UseCase) mapError(req *Request, err error) error {
	switch {
	case errors.Is(err, check_availability.ErrInvalidInput):
		uc.logger.Warn("RescheduleBooking: invalid input: %v", err)
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	case errors.Is(err, ErrBookingNotReschedulable):
		uc.logger.Warn("RescheduleBooking: %v", err)
		return err
	case errors.Is(err, bookingRepo.ErrBookingNotFound):
		uc.logger.Warn("RescheduleBooking: booking not found: %v", err)
		return fmt.Errorf("%w: %v", ErrBookingNotFound, err)
	default:
		uc.logger.Error("RescheduleBooking: failed to save bookings for resource=%s: %v", req.ResourceID, err)
		return fmt.Errorf("%w: %w", ErrPersistence, err)
	}
}
