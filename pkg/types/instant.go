package types

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// InstantLayout формат ISO-8601 в UTC с миллисекундами, например "2025-01-06T09:00:00.000Z"
const InstantLayout = "2006-01-02T15:04:05.000Z"

var (
	// ErrEmptyInstant возвращается, когда строка времени пустая
	ErrEmptyInstant = errors.New("types: empty instant")

	// ErrInvalidInstant возвращается, когда строку не удалось разобрать как момент времени
	ErrInvalidInstant = errors.New("types: invalid instant format")
)

// acceptedLayouts форматы, которые принимаются при разборе входных данных
var acceptedLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// ParseInstant разбирает строку в момент времени и приводит его к UTC.
// Строки без смещения считаются заданными в UTC.
func ParseInstant(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, ErrEmptyInstant
	}

	for _, layout := range acceptedLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}

	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidInstant, s)
}

// FormatInstant форматирует момент времени в ISO-8601 UTC с миллисекундами
func FormatInstant(t time.Time) string {
	return t.UTC().Format(InstantLayout)
}

// AddMinutes сдвигает момент времени на целое число минут без потери точности
func AddMinutes(t time.Time, minutes int) time.Time {
	return t.Add(time.Duration(minutes) * time.Minute)
}

// MinutesBetween возвращает целое число минут между start и end
func MinutesBetween(start, end time.Time) int {
	return int(end.Sub(start) / time.Minute)
}
