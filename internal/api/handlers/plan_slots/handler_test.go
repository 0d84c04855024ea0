package plan_slots

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	planSlots "github.com/m04kA/SMC-SalonBooking/internal/usecase/plan_slots"
)

type stubUseCase struct {
	resp *planSlots.Response
	err  error
	got  *planSlots.Request
}

func (s *stubUseCase) Execute(_ context.Context, req *planSlots.Request) (*planSlots.Response, error) {
	s.got = req
	return s.resp, s.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func at(hour, minute int) time.Time {
	return time.Date(2025, 1, 6, hour, minute, 0, 0, time.UTC)
}

const validBody = `{
	"startInstant": "2025-01-06T09:00:00.000Z",
	"rows": [{"category": "Tint"}, {"category": "Blow Dry"}],
	"basketItems": [{"displayDuration": 45}, {"duration": 20}],
	"chemicalGapMinutes": 15
}`

func serve(t *testing.T, uc PlanSlotsUseCase, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/slots/plan", strings.NewReader(body))
	rec := httptest.NewRecorder()

	NewHandler(uc, nopLogger{}).Handle(rec, req)
	return rec
}

func TestHandle_Planned(t *testing.T) {
	uc := &stubUseCase{resp: &planSlots.Response{
		Slots:      []domain.Slot{{Start: at(9, 0), End: at(9, 45)}, {Start: at(10, 0), End: at(10, 20)}},
		GapMinutes: 15,
	}}

	rec := serve(t, uc, validBody)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, uc.got)
	assert.Equal(t, at(9, 0), uc.got.StartInstant)
	require.Len(t, uc.got.BasketItems, 2)
	require.NotNil(t, uc.got.BasketItems[0].DisplayDuration)
	assert.Equal(t, 45, *uc.got.BasketItems[0].DisplayDuration)
	require.NotNil(t, uc.got.ChemicalGapMinutes)
	assert.Equal(t, 15, *uc.got.ChemicalGapMinutes)

	var resp PlanSlotsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 15, resp.GapMinutes)
	require.Len(t, resp.Slots, 2)
	assert.Equal(t, "2025-01-06T10:00:00.000Z", resp.Slots[1].Start)
	assert.Equal(t, "2025-01-06T10:20:00.000Z", resp.Slots[1].End)
	assert.Equal(t, 20, resp.Slots[1].DurationMinutes)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		err        error
		wantStatus int
		wantError  string
	}{
		{"malformed body", `[]`, nil, http.StatusBadRequest, msgInvalidRequestBody},
		{"bad instant", `{"startInstant":"06/01/2025","rows":[]}`, nil, http.StatusBadRequest, msgInvalidStart},
		{"invalid input", validBody, fmt.Errorf("%w: service 0 duration must not exceed 1440 minutes", planSlots.ErrInvalidInput), http.StatusBadRequest, msgInvalidInput},
		{"unexpected failure", validBody, errors.New("boom"), http.StatusInternalServerError, "internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(t, &stubUseCase{err: tt.err}, tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)

			var resp struct {
				Error string `json:"error"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantError, resp.Error)
		})
	}
}
