package reschedule_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
	rescheduleBooking "github.com/m04kA/SMC-SalonBooking/internal/usecase/reschedule_booking"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidStart       = "invalid startInstant, expected ISO-8601 UTC, e.g. 2025-01-06T09:00:00.000Z"
	msgInvalidInput       = "invalid booking request"
	msgNotFound           = "booking not found"
	msgNotReschedulable   = "booking cannot be moved in its current status"
	msgSaveFailed         = "couldn't save bookings, try again"
)

type Handler struct {
	useCase RescheduleBookingUseCase
	logger  Logger
}

func NewHandler(useCase RescheduleBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/resources/{resourceId}/reschedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	resourceID := mux.Vars(r)["resourceId"]

	var req RescheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /resources/{id}/reschedule - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(resourceID)
	if err != nil {
		h.logger.Warn("POST /resources/{id}/reschedule - Invalid start instant: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStart)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, rescheduleBooking.ErrInvalidInput):
			h.logger.Warn("POST /resources/{id}/reschedule - Invalid input: resource_id=%s, error=%v", resourceID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, rescheduleBooking.ErrBookingNotFound):
			h.logger.Warn("POST /resources/{id}/reschedule - Booking not found: resource_id=%s, error=%v", resourceID, err)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, rescheduleBooking.ErrBookingNotReschedulable):
			h.logger.Warn("POST /resources/{id}/reschedule - Not reschedulable: resource_id=%s, error=%v", resourceID, err)
			handlers.RespondBadRequest(w, msgNotReschedulable)

		default:
			h.logger.Error("POST /resources/{id}/reschedule - Failed to save bookings: resource_id=%s, error=%v",
				resourceID, err)
			handlers.RespondInternalErrorWithMessage(w, msgSaveFailed)
		}
		return
	}

	response := FromUseCaseResponse(result)

	if !result.OK {
		h.logger.Info("POST /resources/{id}/reschedule - Conflict: resource_id=%s, message=%s", resourceID, result.Message)
		handlers.RespondJSON(w, http.StatusConflict, response)
		return
	}

	h.logger.Info("POST /resources/{id}/reschedule - Saved %d bookings: resource_id=%s", len(result.Bookings), resourceID)
	handlers.RespondJSON(w, http.StatusOK, response)
}
