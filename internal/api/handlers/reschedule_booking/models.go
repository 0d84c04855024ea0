package reschedule_booking

import (
	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SalonBooking/internal/service/bookings/models"
	rescheduleBooking "github.com/m04kA/SMC-SalonBooking/internal/usecase/reschedule_booking"
	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

// RescheduleRequest HTTP request model
type RescheduleRequest struct {
	StartInstant       string                       `json:"startInstant"`
	Rows               []handlers.ServiceRowRequest `json:"rows"`
	BasketItems        []handlers.BasketItemRequest `json:"basketItems,omitempty"`
	ExcludeBookingIDs  []string                     `json:"excludeBookingIds,omitempty"`
	ChemicalGapMinutes *int                         `json:"chemicalGapMinutes,omitempty"`
	ClientID           *string                      `json:"clientId,omitempty"`
	Notes              *string                      `json:"notes,omitempty"`
}

// RescheduleResponse HTTP response model
type RescheduleResponse struct {
	OK       bool                       `json:"ok"`
	Message  string                     `json:"message,omitempty"`
	Conflict *handlers.ConflictResponse `json:"conflict,omitempty"`
	Slots    []handlers.SlotResponse    `json:"slots"`
	Bookings []models.BookingResponse   `json:"bookings"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *RescheduleRequest) ToUseCaseRequest(resourceID string) (*rescheduleBooking.Request, error) {
	start, err := types.ParseInstant(r.StartInstant)
	if err != nil {
		return nil, err
	}

	return &rescheduleBooking.Request{
		ResourceID:         resourceID,
		StartInstant:       start,
		Rows:               handlers.ToDomainRows(r.Rows),
		BasketItems:        handlers.ToDomainBasket(r.BasketItems),
		ExcludeBookingIDs:  r.ExcludeBookingIDs,
		ChemicalGapMinutes: r.ChemicalGapMinutes,
		ClientID:           r.ClientID,
		Notes:              r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *rescheduleBooking.Response) *RescheduleResponse {
	return &RescheduleResponse{
		OK:       resp.OK,
		Message:  resp.Message,
		Conflict: handlers.FromDomainConflict(resp.Conflict),
		Slots:    handlers.FromDomainSlots(resp.Slots),
		Bookings: models.FromDomainBookingList(resp.Bookings).Bookings,
	}
}
