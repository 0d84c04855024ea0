package check_availability

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных (до обращения к БД)
	ErrInvalidInput = errors.New("check_availability: invalid input data")

	// ErrPersistence возвращается, когда не удалось прочитать бронирования.
	// Исходная ошибка остается в цепочке.
	ErrPersistence = errors.New("check_availability: failed to read bookings")
)
