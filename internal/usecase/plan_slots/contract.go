package plan_slots

import (
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// SlotPlanner интерфейс планировщика слотов
type SlotPlanner interface {
	Plan(start time.Time, rows []domain.ServiceRow, basket []domain.BasketItem, gapMinutes int) ([]domain.Slot, error)
}

// MetricsRecorder интерфейс для учета количества рассчитанных слотов
type MetricsRecorder interface {
	ObservePlannedSlots(operation string, count int)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
}
