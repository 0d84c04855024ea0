package check_availability

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: request is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.ResourceID) == "" {
		return fmt.Errorf("%w: resourceID is required", ErrInvalidInput)
	}

	if req.StartInstant.IsZero() {
		return fmt.Errorf("%w: startInstant is required", ErrInvalidInput)
	}

	if len(req.Rows) == 0 {
		return fmt.Errorf("%w: at least one service row is required", ErrInvalidInput)
	}

	if len(req.Rows) > domain.MaxServicesPerBooking {
		return fmt.Errorf("%w: too many services, max %d", ErrInvalidInput, domain.MaxServicesPerBooking)
	}

	if req.ChemicalGapMinutes != nil {
		gap := *req.ChemicalGapMinutes
		if gap < 0 || gap > domain.MaxChemicalGapMinutes {
			return fmt.Errorf("%w: chemicalGapMinutes must be between 0 and %d", ErrInvalidInput, domain.MaxChemicalGapMinutes)
		}
	}

	return nil
}

// collectExcludedIDs объединяет явный список исключений и ID переносимых строк.
// Порядок - первое вхождение, без дублей и пустых значений.
func collectExcludedIDs(explicit []string, rows []domain.ServiceRow) []string {
	seen := make(map[string]struct{}, len(explicit)+len(rows))
	result := make([]string, 0, len(explicit)+len(rows))

	add := func(id string) {
		id = strings.TrimSpace(id)
		if id == "" {
			return
		}
		if _, ok := seen[id]; ok {
			return
		}
		seen[id] = struct{}{}
		result = append(result, id)
	}

	for _, id := range explicit {
		add(id)
	}
	for _, row := range rows {
		add(row.BookingID)
	}

	return result
}

// conflictMessage формирует сообщение о конфликте с временем пересекающегося бронирования
func conflictMessage(conflict *domain.Booking) string {
	return fmt.Sprintf("the selected time overlaps another booking for this stylist (%s-%s UTC)",
		conflict.Start.UTC().Format("15:04"), conflict.End.UTC().Format("15:04"))
}
