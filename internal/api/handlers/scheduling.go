package handlers

import (
	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

// ServiceRowRequest строка услуги в порядке выполнения
type ServiceRowRequest struct {
	Duration  *int   `json:"duration,omitempty"` // минуты
	Name      string `json:"name,omitempty"`
	Title     string `json:"title,omitempty"`
	Category  string `json:"category,omitempty"`
	BookingID string `json:"bookingId,omitempty"` // бронирование, которое переносится
}

// BasketItemRequest отображаемые данные корзины для строки с тем же индексом
type BasketItemRequest struct {
	DisplayDuration *int   `json:"displayDuration,omitempty"`
	Duration        *int   `json:"duration,omitempty"`
	DisplayName     string `json:"displayName,omitempty"`
	DisplayCategory string `json:"displayCategory,omitempty"`
}

// SlotResponse рассчитанный слот
type SlotResponse struct {
	Start           string `json:"start"` // "2025-01-06T09:00:00.000Z"
	End             string `json:"end"`
	DurationMinutes int    `json:"durationMinutes"`
}

// ConflictResponse пересекающееся бронирование
type ConflictResponse struct {
	BookingID  string `json:"bookingId"`
	ResourceID string `json:"resourceId"`
	Start      string `json:"start"`
	End        string `json:"end"`
}

// ToDomainRows конвертирует строки запроса в domain модели
func ToDomainRows(rows []ServiceRowRequest) []domain.ServiceRow {
	result := make([]domain.ServiceRow, len(rows))
	for i, r := range rows {
		result[i] = domain.ServiceRow{
			Duration:  r.Duration,
			Name:      r.Name,
			Title:     r.Title,
			Category:  r.Category,
			BookingID: r.BookingID,
		}
	}
	return result
}

// ToDomainBasket конвертирует корзину запроса в domain модели
func ToDomainBasket(items []BasketItemRequest) []domain.BasketItem {
	if len(items) == 0 {
		return nil
	}
	result := make([]domain.BasketItem, len(items))
	for i, it := range items {
		result[i] = domain.BasketItem{
			DisplayDuration: it.DisplayDuration,
			Duration:        it.Duration,
			DisplayName:     it.DisplayName,
			DisplayCategory: it.DisplayCategory,
		}
	}
	return result
}

// FromDomainSlots конвертирует слоты в HTTP модель
func FromDomainSlots(slots []domain.Slot) []SlotResponse {
	result := make([]SlotResponse, len(slots))
	for i, s := range slots {
		result[i] = SlotResponse{
			Start:           s.StartISO(),
			End:             s.EndISO(),
			DurationMinutes: s.DurationMinutes(),
		}
	}
	return result
}

// FromDomainConflict конвертирует конфликтующее бронирование в HTTP модель
func FromDomainConflict(b *domain.Booking) *ConflictResponse {
	if b == nil {
		return nil
	}
	return &ConflictResponse{
		BookingID:  b.ID,
		ResourceID: b.ResourceID,
		Start:      types.FormatInstant(b.Start),
		End:        types.FormatInstant(b.End),
	}
}
