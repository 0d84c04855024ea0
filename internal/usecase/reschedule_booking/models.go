package reschedule_booking

import (
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// Request сохранение группы услуг клиента у одного мастера.
// Строки с BookingID переносятся, остальные создаются как новые бронирования.
type Request struct {
	ResourceID         string
	StartInstant       time.Time
	Rows               []domain.ServiceRow
	BasketItems        []domain.BasketItem
	ExcludeBookingIDs  []string
	ChemicalGapMinutes *int
	ClientID           *string // Для новых бронирований
	Notes              *string // Для новых бронирований
}

// Response результат сохранения.
// При конфликте OK=false, а Bookings пуст.
type Response struct {
	OK       bool
	Message  string
	Conflict *domain.Booking
	Slots    []domain.Slot
	Bookings []*domain.Booking // В порядке строк запроса
}
