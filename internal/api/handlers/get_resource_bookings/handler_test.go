package get_resource_bookings

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBooking/internal/service/bookings"
	"github.com/m04kA/SMC-SalonBooking/internal/service/bookings/models"
)

type stubService struct {
	got *models.GetResourceBookingsRequest
	err error
}

func (s *stubService) GetResourceBookings(_ context.Context, req *models.GetResourceBookingsRequest) (*models.BookingListResponse, error) {
	s.got = req
	if s.err != nil {
		return nil, s.err
	}
	return &models.BookingListResponse{Bookings: []models.BookingResponse{{ID: "B1"}}}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serve(svc BookingService, query string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/resources/stylist-1/bookings?"+query, nil)
	req = mux.SetURLVars(req, map[string]string{"resourceId": "stylist-1"})
	rec := httptest.NewRecorder()
	NewHandler(svc, nopLogger{}).Handle(rec, req)
	return rec
}

func TestHandle_ParsesQuery(t *testing.T) {
	svc := &stubService{}

	rec := serve(svc, "from=2025-01-06T00:00:00Z&to=2025-01-07T00:00:00.000Z&includeInactive=true")

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, svc.got)
	assert.Equal(t, "stylist-1", svc.got.ResourceID)
	assert.Equal(t, time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC), *svc.got.From)
	assert.Equal(t, time.Date(2025, 1, 7, 0, 0, 0, 0, time.UTC), *svc.got.To)
	assert.True(t, svc.got.IncludeInactive)
	assert.Contains(t, rec.Body.String(), `"id":"B1"`)
}

func TestHandle_NoQuery(t *testing.T) {
	svc := &stubService{}

	rec := serve(svc, "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, svc.got.From)
	assert.Nil(t, svc.got.To)
	assert.False(t, svc.got.IncludeInactive)
}

func TestHandle_BadQuery(t *testing.T) {
	for _, q := range []string{"from=yesterday", "to=2025-13-01T00:00:00Z", "includeInactive=maybe"} {
		t.Run(q, func(t *testing.T) {
			svc := &stubService{}
			rec := serve(svc, q)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Nil(t, svc.got)
		})
	}
}

func TestHandle_InvalidFilter(t *testing.T) {
	rec := serve(&stubService{err: bookings.ErrInvalidInput}, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
