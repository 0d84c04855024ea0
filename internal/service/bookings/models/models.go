package models

import (
	"errors"
	"strings"
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")

	// ErrInvalidPeriod возвращается, когда начало периода не раньше конца
	ErrInvalidPeriod = errors.New("period start must be before period end")

	// ErrResourceRequired возвращается, когда не указан мастер
	ErrResourceRequired = errors.New("resource id is required")
)

// Request модели

// UpdateStatusRequest запрос на обновление статуса бронирования
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// GetResourceBookingsRequest запрос на получение бронирований мастера
type GetResourceBookingsRequest struct {
	ResourceID      string     `json:"resourceId"`
	From            *time.Time `json:"from,omitempty"`
	To              *time.Time `json:"to,omitempty"`
	IncludeInactive bool       `json:"includeInactive,omitempty"`
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetResourceBookingsRequest) ToDomainFilter() (domain.ResourceBookingsFilter, error) {
	filter := domain.ResourceBookingsFilter{
		ResourceID:      r.ResourceID,
		From:            r.From,
		To:              r.To,
		IncludeInactive: r.IncludeInactive,
	}

	if strings.TrimSpace(r.ResourceID) == "" {
		return filter, ErrResourceRequired
	}

	if r.From != nil && r.To != nil && !r.From.Before(*r.To) {
		return filter, ErrInvalidPeriod
	}

	return filter, nil
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID              string  `json:"id"`
	ResourceID      string  `json:"resourceId"`
	Start           string  `json:"start"` // "2025-01-06T09:00:00.000Z"
	End             string  `json:"end"`
	DurationMinutes int     `json:"durationMinutes"`
	Status          string  `json:"status"`
	ClientID        *string `json:"clientId,omitempty"`
	ServiceName     string  `json:"serviceName"`
	Category        string  `json:"category"`
	Notes           *string `json:"notes,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:              b.ID,
		ResourceID:      b.ResourceID,
		Start:           types.FormatInstant(b.Start),
		End:             types.FormatInstant(b.End),
		DurationMinutes: b.DurationMinutes(),
		Status:          string(b.Status),
		ClientID:        b.ClientID,
		ServiceName:     b.ServiceName,
		Category:        b.Category,
		Notes:           b.Notes,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, b := range bookings {
		if b == nil {
			continue
		}
		resp.Bookings = append(resp.Bookings, *FromDomainBooking(b))
	}

	return resp
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	switch s := domain.BookingStatus(strings.ToLower(strings.TrimSpace(status))); s {
	case domain.StatusBooked,
		domain.StatusConfirmed,
		domain.StatusArrived,
		domain.StatusCompleted,
		domain.StatusCancelled,
		domain.StatusNoShow:
		return s, nil
	default:
		return "", ErrInvalidStatus
	}
}
