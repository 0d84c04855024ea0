package check_availability

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
	checkAvailability "github.com/m04kA/SMC-SalonBooking/internal/usecase/check_availability"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidStart       = "invalid startInstant, expected ISO-8601 UTC, e.g. 2025-01-06T09:00:00.000Z"
	msgInvalidInput       = "invalid availability request"
	msgCheckFailed        = "couldn't check availability, try again"
)

type Handler struct {
	useCase CheckAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase CheckAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/resources/{resourceId}/availability
// 200 - мастер свободен, 409 - пересечение с другим бронированием
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	resourceID := mux.Vars(r)["resourceId"]

	var req CheckAvailabilityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /resources/{id}/availability - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(resourceID)
	if err != nil {
		h.logger.Warn("POST /resources/{id}/availability - Invalid start instant: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStart)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, checkAvailability.ErrInvalidInput):
			h.logger.Warn("POST /resources/{id}/availability - Invalid input: resource_id=%s, error=%v", resourceID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /resources/{id}/availability - Failed to check availability: resource_id=%s, error=%v",
				resourceID, err)
			handlers.RespondInternalErrorWithMessage(w, msgCheckFailed)
		}
		return
	}

	response := FromUseCaseResponse(result)

	if !result.OK {
		h.logger.Info("POST /resources/{id}/availability - Conflict: resource_id=%s, booking_id=%s",
			resourceID, result.Conflict.ID)
		handlers.RespondJSON(w, http.StatusConflict, response)
		return
	}

	h.logger.Info("POST /resources/{id}/availability - Available: resource_id=%s, slots=%d", resourceID, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, response)
}
