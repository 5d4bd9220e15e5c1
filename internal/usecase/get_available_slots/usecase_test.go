package get_available_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Wong-WS/swim-scheduler/internal/domain"
)

var monday = time.Date(2025, 11, 3, 0, 0, 0, 0, time.Local)

type fakePlaceRepo struct {
	places []*domain.Place
	err    error
}

func (f *fakePlaceRepo) List(_ context.Context) ([]*domain.Place, error) {
	return f.places, f.err
}

type fakeRuleRepo struct {
	rules []*domain.AvailabilityRule
	err   error
}

func (f *fakeRuleRepo) List(_ context.Context) ([]*domain.AvailabilityRule, error) {
	return f.rules, f.err
}

type fakeBookingRepo struct {
	bookings   []*domain.Booking
	err        error
	seenFilter *domain.BookingsFilter
}

func (f *fakeBookingRepo) ListWithFilter(_ context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	f.seenFilter = &filter
	return f.bookings, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestUseCase(places *fakePlaceRepo, rules *fakeRuleRepo, bookings *fakeBookingRepo) *UseCase {
	return NewUseCase(places, rules, bookings, nopLogger{})
}

func testFixtures() (*fakePlaceRepo, *fakeRuleRepo, *fakeBookingRepo) {
	places := &fakePlaceRepo{places: []*domain.Place{
		{ID: "p1", Name: "Quayside", Area: "Tanjung Tokong", BufferTimeMinutes: 30},
	}}
	rules := &fakeRuleRepo{rules: []*domain.AvailabilityRule{
		{
			ID:      "r1",
			PlaceID: "p1",
			Rules: domain.WeeklySchedule{
				{Day: domain.Monday, StartTime: "10:00", EndTime: "14:00"},
			},
		},
	}}
	bookings := &fakeBookingRepo{}
	return places, rules, bookings
}

func TestExecute_ReturnsSlots(t *testing.T) {
	places, rules, bookings := testFixtures()
	uc := newTestUseCase(places, rules, bookings)

	resp, err := uc.Execute(context.Background(), &Request{PlaceID: "p1", Date: monday})

	require.NoError(t, err)
	require.Len(t, resp.Slots, 4)
	assert.Equal(t, "10:00", resp.Slots[0].StartFormatted)
	assert.Equal(t, domain.DefaultSlotDurationMinutes, resp.DurationMinutes)

	// Бронирования запрашиваются на весь день без фильтра по точке
	require.NotNil(t, bookings.seenFilter)
	assert.Nil(t, bookings.seenFilter.PlaceID)
	require.NotNil(t, bookings.seenFilter.StartDate)
	assert.True(t, bookings.seenFilter.StartDate.Equal(monday))
	require.NotNil(t, bookings.seenFilter.EndDate)
	assert.True(t, bookings.seenFilter.EndDate.Equal(monday))
}

func TestExecute_CustomDuration(t *testing.T) {
	places, rules, bookings := testFixtures()
	uc := newTestUseCase(places, rules, bookings)

	resp, err := uc.Execute(context.Background(), &Request{
		PlaceID:         "p1",
		Date:            monday,
		DurationMinutes: 120,
	})

	require.NoError(t, err)
	assert.Len(t, resp.Slots, 2)
	assert.Equal(t, 120, resp.DurationMinutes)
}

func TestExecute_PlaceNotFound(t *testing.T) {
	places, rules, bookings := testFixtures()
	uc := newTestUseCase(places, rules, bookings)

	_, err := uc.Execute(context.Background(), &Request{PlaceID: "missing", Date: monday})

	assert.ErrorIs(t, err, ErrPlaceNotFound)
}

func TestExecute_ClosedDayYieldsEmptyNotError(t *testing.T) {
	places, rules, bookings := testFixtures()
	uc := newTestUseCase(places, rules, bookings)

	sunday := monday.AddDate(0, 0, -1)
	resp, err := uc.Execute(context.Background(), &Request{PlaceID: "p1", Date: sunday})

	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_ValidationFailures(t *testing.T) {
	places, rules, bookings := testFixtures()
	uc := newTestUseCase(places, rules, bookings)

	tests := []struct {
		name string
		req  *Request
	}{
		{"missing place", &Request{Date: monday}},
		{"missing date", &Request{PlaceID: "p1"}},
		{"duration too small", &Request{PlaceID: "p1", Date: monday, DurationMinutes: 5}},
		{"duration too large", &Request{PlaceID: "p1", Date: monday, DurationMinutes: 600}},
		{"negative duration", &Request{PlaceID: "p1", Date: monday, DurationMinutes: -60}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecute_RepositoryErrors(t *testing.T) {
	repoErr := errors.New("connection refused")

	t.Run("places", func(t *testing.T) {
		places, rules, bookings := testFixtures()
		places.err = repoErr
		uc := newTestUseCase(places, rules, bookings)

		_, err := uc.Execute(context.Background(), &Request{PlaceID: "p1", Date: monday})
		assert.ErrorIs(t, err, ErrInternal)
	})

	t.Run("rules", func(t *testing.T) {
		places, rules, bookings := testFixtures()
		rules.err = repoErr
		uc := newTestUseCase(places, rules, bookings)

		_, err := uc.Execute(context.Background(), &Request{PlaceID: "p1", Date: monday})
		assert.ErrorIs(t, err, ErrInternal)
	})

	t.Run("bookings", func(t *testing.T) {
		places, rules, bookings := testFixtures()
		bookings.err = repoErr
		uc := newTestUseCase(places, rules, bookings)

		_, err := uc.Execute(context.Background(), &Request{PlaceID: "p1", Date: monday})
		assert.ErrorIs(t, err, ErrInternal)
	})
}
