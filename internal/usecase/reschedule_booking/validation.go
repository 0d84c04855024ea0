package reschedule_booking

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// validateRequest проверяет поля, которые не проверяет check_availability
func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: request is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.ResourceID) == "" {
		return fmt.Errorf("%w: resourceID is required", ErrInvalidInput)
	}

	if len(req.Rows) == 0 {
		return fmt.Errorf("%w: at least one service row is required", ErrInvalidInput)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must be at most %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	seen := make(map[string]struct{}, len(req.Rows))
	for _, row := range req.Rows {
		id := strings.TrimSpace(row.BookingID)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			return fmt.Errorf("%w: booking id=%s appears more than once", ErrInvalidInput, id)
		}
		seen[id] = struct{}{}
	}

	return nil
}
