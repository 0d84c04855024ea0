package plan_slots

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
	planSlots "github.com/m04kA/SMC-SalonBooking/internal/usecase/plan_slots"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidStart       = "invalid startInstant, expected ISO-8601 UTC, e.g. 2025-01-06T09:00:00.000Z"
	msgInvalidInput       = "invalid services for planning"
)

type Handler struct {
	useCase PlanSlotsUseCase
	logger  Logger
}

func NewHandler(useCase PlanSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/slots/plan
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req PlanSlotsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /slots/plan - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /slots/plan - Invalid start instant: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStart)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		if errors.Is(err, planSlots.ErrInvalidInput) {
			h.logger.Warn("POST /slots/plan - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)
			return
		}
		h.logger.Error("POST /slots/plan - Failed to plan slots: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /slots/plan - Planned %d slots", len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
