package check_availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/pkg/metrics"
	"github.com/m04kA/SMC-SalonBooking/pkg/ptr"
)

// fakeRepo хранит бронирования в памяти и применяет тот же предикат, что и SQL запрос
type fakeRepo struct {
	bookings []*domain.Booking
	err      error

	calls       int
	lastSlots   []domain.Slot
	lastExclude []string
}

func (f *fakeRepo) FindOverlapping(_ context.Context, resourceID string, slots []domain.Slot, excludeIDs []string) ([]*domain.Booking, error) {
	f.calls++
	f.lastSlots = slots
	f.lastExclude = excludeIDs

	if f.err != nil {
		return nil, f.err
	}

	excluded := make(map[string]bool, len(excludeIDs))
	for _, id := range excludeIDs {
		excluded[id] = true
	}

	for _, b := range f.bookings {
		if b.ResourceID != resourceID || excluded[b.ID] || !b.IsActive() {
			continue
		}
		for _, s := range slots {
			if b.Start.Before(s.End) && b.End.After(s.Start) {
				return []*domain.Booking{b}, nil
			}
		}
	}
	return []*domain.Booking{}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type outcomeRecorder struct {
	outcomes []string
}

func (r *outcomeRecorder) ObserveAvailabilityCheck(outcome string) {
	r.outcomes = append(r.outcomes, outcome)
}

func at(hour, minute int) time.Time {
	return time.Date(2025, 1, 6, hour, minute, 0, 0, time.UTC)
}

func booking(id, resource string, start, end time.Time) *domain.Booking {
	return &domain.Booking{ID: id, ResourceID: resource, Start: start, End: end, Status: domain.StatusBooked}
}

func newUseCase(repo BookingRepository) (*UseCase, *outcomeRecorder) {
	rec := &outcomeRecorder{}
	return NewUseCase(repo, domain.DefaultChemicalGapMinutes, 0, rec, nopLogger{}), rec
}

func haircut(minutes int) domain.ServiceRow {
	return domain.ServiceRow{Duration: ptr.Ptr(minutes), Category: "Haircut"}
}

func TestExecute_TouchingBookingIsNotAConflict(t *testing.T) {
	repo := &fakeRepo{bookings: []*domain.Booking{booking("B0", "stylist-1", at(9, 0), at(9, 30))}}
	uc, rec := newUseCase(repo)

	resp, err := uc.Execute(context.Background(), &Request{
		ResourceID:   "stylist-1",
		StartInstant: at(9, 30),
		Rows:         []domain.ServiceRow{haircut(30)},
	})

	require.NoError(t, err)
	assert.True(t, resp.OK)
	assert.Nil(t, resp.Conflict)
	assert.Empty(t, resp.Message)
	assert.Equal(t, []string{metrics.OutcomeOK}, rec.outcomes)
}

func TestExecute_StrictOverlapIsAConflict(t *testing.T) {
	existing := booking("B0", "stylist-1", at(9, 15), at(9, 45))
	repo := &fakeRepo{bookings: []*domain.Booking{existing}}
	uc, rec := newUseCase(repo)

	resp, err := uc.Execute(context.Background(), &Request{
		ResourceID:   "stylist-1",
		StartInstant: at(9, 0),
		Rows:         []domain.ServiceRow{haircut(30)},
	})

	require.NoError(t, err)
	assert.False(t, resp.OK)
	require.NotNil(t, resp.Conflict)
	assert.Equal(t, "B0", resp.Conflict.ID)
	assert.Equal(t, "stylist-1", resp.Conflict.ResourceID)
	assert.Contains(t, resp.Message, "09:15-09:45")
	assert.Equal(t, []string{metrics.OutcomeConflict}, rec.outcomes)
}

func TestExecute_ReschedulingDoesNotConflictWithItself(t *testing.T) {
	repo := &fakeRepo{bookings: []*domain.Booking{booking("B1", "stylist-1", at(9, 0), at(9, 30))}}
	uc, _ := newUseCase(repo)

	resp, err := uc.Execute(context.Background(), &Request{
		ResourceID:        "stylist-1",
		StartInstant:      at(9, 0),
		Rows:              []domain.ServiceRow{haircut(30)},
		ExcludeBookingIDs: []string{"B1"},
	})

	require.NoError(t, err)
	assert.True(t, resp.OK)
	assert.Equal(t, []string{"B1"}, repo.lastExclude)
}

func TestExecute_RowBookingIDsAreExcluded(t *testing.T) {
	repo := &fakeRepo{bookings: []*domain.Booking{
		booking("B1", "stylist-1", at(9, 0), at(9, 30)),
		booking("B2", "stylist-1", at(9, 30), at(10, 0)),
	}}
	uc, _ := newUseCase(repo)

	rows := []domain.ServiceRow{haircut(30), haircut(30)}
	rows[0].BookingID = "B1"
	rows[1].BookingID = "B2"

	resp, err := uc.Execute(context.Background(), &Request{
		ResourceID:        "stylist-1",
		StartInstant:      at(9, 15),
		Rows:              rows,
		ExcludeBookingIDs: []string{"B2", " "},
	})

	require.NoError(t, err)
	assert.True(t, resp.OK)
	assert.Equal(t, []string{"B2", "B1"}, repo.lastExclude)
}

func TestExecute_OtherResourcesAndInactiveBookingsIgnored(t *testing.T) {
	cancelled := booking("B3", "stylist-1", at(9, 0), at(10, 0))
	cancelled.Status = domain.StatusCancelled

	repo := &fakeRepo{bookings: []*domain.Booking{
		booking("B2", "stylist-2", at(9, 0), at(10, 0)),
		cancelled,
	}}
	uc, _ := newUseCase(repo)

	resp, err := uc.Execute(context.Background(), &Request{
		ResourceID:   "stylist-1",
		StartInstant: at(9, 0),
		Rows:         []domain.ServiceRow{haircut(60)},
	})

	require.NoError(t, err)
	assert.True(t, resp.OK)
}

func TestExecute_ConflictInsideChemicalGapIsFree(t *testing.T) {
	// Tint 09:00-09:45, пауза 30 минут, Blow Dry 10:15-10:35.
	// Бронирование 09:45-10:15 попадает ровно в паузу.
	repo := &fakeRepo{bookings: []*domain.Booking{booking("B5", "stylist-1", at(9, 45), at(10, 15))}}
	uc, _ := newUseCase(repo)

	resp, err := uc.Execute(context.Background(), &Request{
		ResourceID:   "stylist-1",
		StartInstant: at(9, 0),
		Rows: []domain.ServiceRow{
			{Duration: ptr.Ptr(45), Category: "Tint"},
			{Duration: ptr.Ptr(20), Category: "Blow Dry"},
		},
	})

	require.NoError(t, err)
	assert.True(t, resp.OK)
	require.Len(t, repo.lastSlots, 2)
	assert.Equal(t, at(10, 15), repo.lastSlots[1].Start)
}

func TestExecute_ConflictOnSecondSlot(t *testing.T) {
	repo := &fakeRepo{bookings: []*domain.Booking{booking("B6", "stylist-1", at(10, 30), at(11, 0))}}
	uc, _ := newUseCase(repo)

	resp, err := uc.Execute(context.Background(), &Request{
		ResourceID:   "stylist-1",
		StartInstant: at(9, 0),
		Rows: []domain.ServiceRow{
			{Duration: ptr.Ptr(45), Category: "Tint"},
			{Duration: ptr.Ptr(20), Category: "Blow Dry"},
		},
	})

	require.NoError(t, err)
	assert.False(t, resp.OK)
	assert.Equal(t, "B6", resp.Conflict.ID)
	assert.Len(t, resp.Slots, 2)
}

func TestExecute_CustomGapOverridesDefault(t *testing.T) {
	repo := &fakeRepo{}
	uc, _ := newUseCase(repo)

	_, err := uc.Execute(context.Background(), &Request{
		ResourceID:   "stylist-1",
		StartInstant: at(9, 0),
		Rows: []domain.ServiceRow{
			{Duration: ptr.Ptr(45), Category: "Tint"},
			{Duration: ptr.Ptr(20), Category: "Blow Dry"},
		},
		ChemicalGapMinutes: ptr.Ptr(0),
	})

	require.NoError(t, err)
	assert.Equal(t, at(9, 45), repo.lastSlots[1].Start)
}

func TestExecute_ValidationHappensBeforeAnyRead(t *testing.T) {
	tests := []struct {
		name string
		req  *Request
	}{
		{"nil request", nil},
		{"empty rows", &Request{ResourceID: "stylist-1", StartInstant: at(9, 0)}},
		{"missing resource", &Request{StartInstant: at(9, 0), Rows: []domain.ServiceRow{haircut(30)}}},
		{"missing start", &Request{ResourceID: "stylist-1", Rows: []domain.ServiceRow{haircut(30)}}},
		{"oversized duration", &Request{
			ResourceID:   "stylist-1",
			StartInstant: at(9, 0),
			Rows:         []domain.ServiceRow{haircut(200_000_000)},
		}},
		{"negative gap", &Request{
			ResourceID:         "stylist-1",
			StartInstant:       at(9, 0),
			Rows:               []domain.ServiceRow{haircut(30)},
			ChemicalGapMinutes: ptr.Ptr(-1),
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeRepo{}
			uc, rec := newUseCase(repo)

			_, err := uc.Execute(context.Background(), tt.req)

			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Zero(t, repo.calls)
			assert.Equal(t, []string{metrics.OutcomeInvalid}, rec.outcomes)
		})
	}
}

func TestExecute_MissingRepository(t *testing.T) {
	uc := NewUseCase(nil, domain.DefaultChemicalGapMinutes, 0, nil, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		ResourceID:   "stylist-1",
		StartInstant: at(9, 0),
		Rows:         []domain.ServiceRow{haircut(30)},
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_PersistenceErrorIsPropagated(t *testing.T) {
	driverErr := errors.New("connection refused")
	repo := &fakeRepo{err: driverErr}
	uc, rec := newUseCase(repo)

	resp, err := uc.Execute(context.Background(), &Request{
		ResourceID:   "stylist-1",
		StartInstant: at(9, 0),
		Rows:         []domain.ServiceRow{haircut(30)},
	})

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrPersistence)
	assert.ErrorIs(t, err, driverErr)
	assert.Equal(t, []string{metrics.OutcomeError}, rec.outcomes)
}

type deadlineRepo struct {
	hasDeadline bool
}

func (d *deadlineRepo) FindOverlapping(ctx context.Context, _ string, _ []domain.Slot, _ []string) ([]*domain.Booking, error) {
	_, d.hasDeadline = ctx.Deadline()
	return nil, nil
}

func TestExecute_AppliesCheckTimeout(t *testing.T) {
	repo := &deadlineRepo{}
	uc := NewUseCase(repo, domain.DefaultChemicalGapMinutes, 2*time.Second, nil, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		ResourceID:   "stylist-1",
		StartInstant: at(9, 0),
		Rows:         []domain.ServiceRow{haircut(30)},
	})

	require.NoError(t, err)
	assert.True(t, resp.OK)
	assert.True(t, repo.hasDeadline)
}
