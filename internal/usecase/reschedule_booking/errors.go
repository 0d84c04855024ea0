package reschedule_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("reschedule_booking: invalid input data")

	// ErrBookingNotFound возвращается, когда переносимое бронирование не найдено
	ErrBookingNotFound = errors.New("reschedule_booking: booking not found")

	// ErrBookingNotReschedulable возвращается для бронирований в статусе, запрещающем перенос
	ErrBookingNotReschedulable = errors.New("reschedule_booking: booking cannot be rescheduled in its current status")

	// ErrPersistence возвращается при ошибке чтения или записи бронирований
	ErrPersistence = errors.New("reschedule_booking: failed to save bookings")
)
