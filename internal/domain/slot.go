package domain

import (
	"time"

	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

// Slot is a computed [Start, End) interval for one service in a booking sequence
type Slot struct {
	Start time.Time
	End   time.Time
}

// DurationMinutes returns the slot length in whole minutes
func (s Slot) DurationMinutes() int {
	return types.MinutesBetween(s.Start, s.End)
}

// StartISO returns the slot start as ISO-8601 UTC with milliseconds
func (s Slot) StartISO() string {
	return types.FormatInstant(s.Start)
}

// EndISO returns the slot end as ISO-8601 UTC with milliseconds
func (s Slot) EndISO() string {
	return types.FormatInstant(s.End)
}
