package get_resource_bookings

import (
	"fmt"
	"strconv"
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/service/bookings/models"
	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

// ToServiceRequest собирает запрос сервиса из path и query параметров
func ToServiceRequest(resourceID, fromStr, toStr, includeInactiveStr string) (*models.GetResourceBookingsRequest, error) {
	req := &models.GetResourceBookingsRequest{ResourceID: resourceID}

	if fromStr != "" {
		from, err := parseInstantParam("from", fromStr)
		if err != nil {
			return nil, err
		}
		req.From = &from
	}

	if toStr != "" {
		to, err := parseInstantParam("to", toStr)
		if err != nil {
			return nil, err
		}
		req.To = &to
	}

	if includeInactiveStr != "" {
		includeInactive, err := strconv.ParseBool(includeInactiveStr)
		if err != nil {
			return nil, fmt.Errorf("includeInactive: %w", err)
		}
		req.IncludeInactive = includeInactive
	}

	return req, nil
}

func parseInstantParam(name, value string) (time.Time, error) {
	t, err := types.ParseInstant(value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s: %w", name, err)
	}
	return t, nil
}
