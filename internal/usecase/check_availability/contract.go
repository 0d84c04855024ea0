package check_availability

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// FindOverlapping возвращает не более одного активного бронирования мастера,
	// пересекающегося с любым из слотов, исключая excludeIDs
	FindOverlapping(ctx context.Context, resourceID string, slots []domain.Slot, excludeIDs []string) ([]*domain.Booking, error)
}

// SlotPlanner интерфейс планировщика слотов
type SlotPlanner interface {
	Plan(start time.Time, rows []domain.ServiceRow, basket []domain.BasketItem, gapMinutes int) ([]domain.Slot, error)
}

// MetricsRecorder интерфейс для учета исходов проверки
type MetricsRecorder interface {
	ObserveAvailabilityCheck(outcome string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
