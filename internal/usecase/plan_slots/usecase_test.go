package plan_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{}) {}
func (nopLogger) Warn(string, ...interface{}) {}

type slotCounter struct {
	operation string
	count     int
}

func (c *slotCounter) ObservePlannedSlots(operation string, count int) {
	c.operation = operation
	c.count += count
}

func at(hour, minute int) time.Time {
	return time.Date(2025, 1, 6, hour, minute, 0, 0, time.UTC)
}

func TestExecute_InsertsGapAfterChemicalService(t *testing.T) {
	counter := &slotCounter{}
	uc := NewUseCase(domain.DefaultChemicalGapMinutes, counter, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		StartInstant: at(9, 0),
		Rows: []domain.ServiceRow{
			{Duration: ptr.Ptr(45), Name: "Root Tint"},
			{Duration: ptr.Ptr(20), Name: "Blow Dry"},
		},
	})

	require.NoError(t, err)
	require.Len(t, resp.Slots, 2)
	assert.Equal(t, domain.Slot{Start: at(9, 0), End: at(9, 45)}, resp.Slots[0])
	assert.Equal(t, domain.Slot{Start: at(10, 15), End: at(10, 35)}, resp.Slots[1])
	assert.Equal(t, 30, resp.GapMinutes)
	assert.Equal(t, "plan_slots", counter.operation)
	assert.Equal(t, 2, counter.count)
}

func TestExecute_ExplicitGap(t *testing.T) {
	uc := NewUseCase(domain.DefaultChemicalGapMinutes, nil, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		StartInstant:       at(9, 0),
		Rows:               []domain.ServiceRow{{Duration: ptr.Ptr(30), Category: "Bleach"}, {Duration: ptr.Ptr(30)}},
		ChemicalGapMinutes: ptr.Ptr(15),
	})

	require.NoError(t, err)
	assert.Equal(t, at(9, 45), resp.Slots[1].Start)
	assert.Equal(t, 15, resp.GapMinutes)
}

func TestExecute_BasketFallback(t *testing.T) {
	uc := NewUseCase(domain.DefaultChemicalGapMinutes, nil, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		StartInstant: at(9, 0),
		Rows:         []domain.ServiceRow{{}, {}},
		BasketItems: []domain.BasketItem{
			{DisplayDuration: ptr.Ptr(40), DisplayName: "Gloss treatment"},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, at(9, 40), resp.Slots[0].End)
	// второй строке нечего взять из корзины, длительность поднимается до минимума
	assert.Equal(t, at(10, 10), resp.Slots[1].Start)
	assert.Equal(t, at(10, 11), resp.Slots[1].End)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := NewUseCase(domain.DefaultChemicalGapMinutes, nil, nopLogger{})

	tests := []struct {
		name string
		req  *Request
	}{
		{"nil request", nil},
		{"empty rows", &Request{StartInstant: at(9, 0)}},
		{"zero start", &Request{Rows: []domain.ServiceRow{{Duration: ptr.Ptr(30)}}}},
		{"negative gap", &Request{StartInstant: at(9, 0), Rows: []domain.ServiceRow{{Duration: ptr.Ptr(30)}}, ChemicalGapMinutes: ptr.Ptr(-5)}},
		{"gap too large", &Request{StartInstant: at(9, 0), Rows: []domain.ServiceRow{{Duration: ptr.Ptr(30)}}, ChemicalGapMinutes: ptr.Ptr(241)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
