package get_resource_bookings

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SalonBooking/internal/service/bookings"
)

const (
	msgInvalidQuery  = "invalid query parameters, expected from/to as ISO-8601 UTC and includeInactive as boolean"
	msgInvalidFilter = "invalid period or resource id"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/resources/{resourceId}/bookings
// Query params: from, to, includeInactive (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	resourceID := mux.Vars(r)["resourceId"]
	query := r.URL.Query()

	serviceReq, err := ToServiceRequest(resourceID, query.Get("from"), query.Get("to"), query.Get("includeInactive"))
	if err != nil {
		h.logger.Warn("GET /resources/{id}/bookings - Invalid query: resource_id=%s, error=%v", resourceID, err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	result, err := h.service.GetResourceBookings(r.Context(), serviceReq)
	if err != nil {
		if errors.Is(err, bookings.ErrInvalidInput) {
			h.logger.Warn("GET /resources/{id}/bookings - Invalid filter: resource_id=%s, error=%v", resourceID, err)
			handlers.RespondBadRequest(w, msgInvalidFilter)
			return
		}
		h.logger.Error("GET /resources/{id}/bookings - Failed to get bookings: resource_id=%s, error=%v", resourceID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /resources/{id}/bookings - Retrieved %d bookings: resource_id=%s", len(result.Bookings), resourceID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
