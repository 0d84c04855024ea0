package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusBooked    BookingStatus = "booked"
	StatusConfirmed BookingStatus = "confirmed"
	StatusArrived   BookingStatus = "arrived"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
	StatusNoShow    BookingStatus = "no_show"
)

// Booking represents one booked service on a stylist's calendar.
// The interval is half-open: [Start, End).
type Booking struct {
	ID         string
	ResourceID string // ID мастера (стилиста)
	Start      time.Time
	End        time.Time
	Status     BookingStatus

	// Denormalized data for the calendar and booking log
	ClientID    *string
	ServiceName string
	Category    string
	Notes       *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking still occupies the stylist's time
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled && b.Status != StatusNoShow
}

// CanBeRescheduled returns true if the booking can be moved to another time
func (b *Booking) CanBeRescheduled() bool {
	return b.Status == StatusBooked || b.Status == StatusConfirmed
}

// DurationMinutes returns the booking length in whole minutes
func (b *Booking) DurationMinutes() int {
	return int(b.End.Sub(b.Start) / time.Minute)
}

// Overlaps reports whether the booking intersects [start, end).
// Touching endpoints are not an overlap.
func (b *Booking) Overlaps(start, end time.Time) bool {
	return b.Start.Before(end) && b.End.After(start)
}

// ResourceBookingsFilter фильтр для получения бронирований мастера
type ResourceBookingsFilter struct {
	ResourceID      string     // Обязательный параметр
	From            *time.Time // Начало периода (опционально)
	To              *time.Time // Конец периода (опционально)
	IncludeInactive bool       // Включать ли отмененные и no-show
}
