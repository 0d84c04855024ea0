package scheduling

import "github.com/m04kA/SMC-SalonBooking/internal/domain"

// ResolveDuration определяет длительность услуги в минутах.
// Приоритет: row.Duration, затем item.DisplayDuration, затем item.Duration.
// Результат не меньше domain.MinServiceDurationMinutes.
func ResolveDuration(row domain.ServiceRow, item *domain.BasketItem) int {
	minutes := 0

	switch {
	case row.Duration != nil:
		minutes = *row.Duration
	case item != nil && item.DisplayDuration != nil:
		minutes = *item.DisplayDuration
	case item != nil && item.Duration != nil:
		minutes = *item.Duration
	}

	if minutes < domain.MinServiceDurationMinutes {
		return domain.MinServiceDurationMinutes
	}
	return minutes
}
