package check_availability

import (
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// Request модель запроса на проверку доступности мастера
type Request struct {
	ResourceID         string              // ID мастера
	StartInstant       time.Time           // Желаемое время начала первой услуги
	Rows               []domain.ServiceRow // Услуги в порядке выполнения
	BasketItems        []domain.BasketItem // Отображаемые данные корзины (опционально)
	ExcludeBookingIDs  []string            // Переносимые бронирования, не считаются конфликтом
	ChemicalGapMinutes *int                // Пауза после химической услуги, nil - значение из конфига
}

// Response результат проверки. Конфликт - это нормальный результат, а не ошибка.
type Response struct {
	OK       bool
	Message  string          // Сообщение для пользователя при конфликте
	Conflict *domain.Booking // Первое найденное пересекающееся бронирование
	Slots    []domain.Slot   // Рассчитанные слоты
}
