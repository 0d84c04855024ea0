package check_availability

import (
	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
	checkAvailability "github.com/m04kA/SMC-SalonBooking/internal/usecase/check_availability"
	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

// CheckAvailabilityRequest HTTP request model
type CheckAvailabilityRequest struct {
	StartInstant       string                       `json:"startInstant"`
	Rows               []handlers.ServiceRowRequest `json:"rows"`
	BasketItems        []handlers.BasketItemRequest `json:"basketItems,omitempty"`
	ExcludeBookingIDs  []string                     `json:"excludeBookingIds,omitempty"`
	ChemicalGapMinutes *int                         `json:"chemicalGapMinutes,omitempty"`
}

// CheckAvailabilityResponse HTTP response model
type CheckAvailabilityResponse struct {
	OK       bool                       `json:"ok"`
	Message  string                     `json:"message,omitempty"`
	Conflict *handlers.ConflictResponse `json:"conflict,omitempty"`
	Slots    []handlers.SlotResponse    `json:"slots"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CheckAvailabilityRequest) ToUseCaseRequest(resourceID string) (*checkAvailability.Request, error) {
	start, err := types.ParseInstant(r.StartInstant)
	if err != nil {
		return nil, err
	}

	return &checkAvailability.Request{
		ResourceID:         resourceID,
		StartInstant:       start,
		Rows:               handlers.ToDomainRows(r.Rows),
		BasketItems:        handlers.ToDomainBasket(r.BasketItems),
		ExcludeBookingIDs:  r.ExcludeBookingIDs,
		ChemicalGapMinutes: r.ChemicalGapMinutes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *checkAvailability.Response) *CheckAvailabilityResponse {
	return &CheckAvailabilityResponse{
		OK:       resp.OK,
		Message:  resp.Message,
		Conflict: handlers.FromDomainConflict(resp.Conflict),
		Slots:    handlers.FromDomainSlots(resp.Slots),
	}
}
