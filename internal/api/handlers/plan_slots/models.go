package plan_slots

import (
	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
	planSlots "github.com/m04kA/SMC-SalonBooking/internal/usecase/plan_slots"
	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

// PlanSlotsRequest HTTP request model
type PlanSlotsRequest struct {
	StartInstant       string                       `json:"startInstant"` // "2025-01-06T09:00:00.000Z"
	Rows               []handlers.ServiceRowRequest `json:"rows"`
	BasketItems        []handlers.BasketItemRequest `json:"basketItems,omitempty"`
	ChemicalGapMinutes *int                         `json:"chemicalGapMinutes,omitempty"`
}

// PlanSlotsResponse HTTP response model
type PlanSlotsResponse struct {
	Slots      []handlers.SlotResponse `json:"slots"`
	GapMinutes int                     `json:"gapMinutes"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *PlanSlotsRequest) ToUseCaseRequest() (*planSlots.Request, error) {
	start, err := types.ParseInstant(r.StartInstant)
	if err != nil {
		return nil, err
	}

	return &planSlots.Request{
		StartInstant:       start,
		Rows:               handlers.ToDomainRows(r.Rows),
		BasketItems:        handlers.ToDomainBasket(r.BasketItems),
		ChemicalGapMinutes: r.ChemicalGapMinutes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *planSlots.Response) *PlanSlotsResponse {
	return &PlanSlotsResponse{
		Slots:      handlers.FromDomainSlots(resp.Slots),
		GapMinutes: resp.GapMinutes,
	}
}
