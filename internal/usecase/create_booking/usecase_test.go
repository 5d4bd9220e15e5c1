package create_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Wong-WS/swim-scheduler/internal/domain"
	"github.com/Wong-WS/swim-scheduler/pkg/types"
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
	bookings  []*domain.Booking
	listErr   error
	createErr error
	created   *domain.Booking
}

func (f *fakeBookingRepo) ListWithFilter(_ context.Context, _ domain.BookingsFilter) ([]*domain.Booking, error) {
	return f.bookings, f.listErr
}

func (f *fakeBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = booking
	out := *booking
	out.CreatedAt = time.Now()
	out.UpdatedAt = out.CreatedAt
	return &out, nil
}

type fakeTxManager struct {
	calls int
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

type fixedTimeProvider struct {
	now time.Time
}

func (f *fixedTimeProvider) Now() time.Time {
	return f.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testFixtures() (*fakePlaceRepo, *fakeRuleRepo, *fakeBookingRepo, *fakeTxManager) {
	places := &fakePlaceRepo{places: []*domain.Place{
		{ID: "p1", Name: "Quayside", Area: "Tanjung Tokong", BufferTimeMinutes: 30},
		{ID: "p2", Name: "Straits Quay", Area: "Tanjung Tokong", BufferTimeMinutes: 20},
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
	return places, rules, &fakeBookingRepo{}, &fakeTxManager{}
}

func newTestUseCase(places *fakePlaceRepo, rules *fakeRuleRepo, bookings *fakeBookingRepo, tx *fakeTxManager) *UseCase {
	uc := NewUseCase(places, rules, bookings, tx, nopLogger{})
	// Фиксируем "сегодня" до даты бронирования
	uc.timeProvider = &fixedTimeProvider{now: monday.AddDate(0, 0, -7)}
	return uc
}

func validRequest() *Request {
	return &Request{
		Name:      "Aisyah Tan",
		Email:     "aisyah@example.com",
		PlaceID:   "p1",
		Date:      monday,
		StartTime: types.TimeString("11:00"),
	}
}

func TestExecute_CreatesBooking(t *testing.T) {
	places, rules, bookings, tx := testFixtures()
	uc := newTestUseCase(places, rules, bookings, tx)

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, 1, tx.calls)
	require.NotNil(t, bookings.created)
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "p1", resp.PlaceID)
	assert.Equal(t, domain.DefaultSlotDurationMinutes, resp.DurationMinutes)

	wantStart := time.Date(2025, 11, 3, 11, 0, 0, 0, monday.Location())
	assert.True(t, resp.StartTime.Equal(wantStart))
	assert.True(t, resp.EndTime.Equal(wantStart.Add(time.Hour)))
	assert.True(t, bookings.created.BookingDate.Equal(monday))
}

func TestExecute_SlotTaken(t *testing.T) {
	places, rules, bookings, tx := testFixtures()
	// Бронирование на той же точке, пересекающее запрошенный слот
	bookings.bookings = []*domain.Booking{
		{
			ID:          "b1",
			PlaceID:     "p1",
			BookingDate: monday,
			StartTime:   time.Date(2025, 11, 3, 11, 0, 0, 0, monday.Location()),
			EndTime:     time.Date(2025, 11, 3, 12, 0, 0, 0, monday.Location()),
		},
	}
	uc := newTestUseCase(places, rules, bookings, tx)

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Nil(t, bookings.created)
}

func TestExecute_TravelBufferBlocksSlot(t *testing.T) {
	places, rules, bookings, tx := testFixtures()
	// Занятие на соседней точке того же района заканчивается в 10:45:
	// буфер точки назначения (30 минут) делает слот 11:00 недоступным
	bookings.bookings = []*domain.Booking{
		{
			ID:          "b1",
			PlaceID:     "p2",
			BookingDate: monday,
			StartTime:   time.Date(2025, 11, 3, 9, 45, 0, 0, monday.Location()),
			EndTime:     time.Date(2025, 11, 3, 10, 45, 0, 0, monday.Location()),
		},
	}
	uc := newTestUseCase(places, rules, bookings, tx)

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestExecute_OffGridStartRejected(t *testing.T) {
	places, rules, bookings, tx := testFixtures()
	uc := newTestUseCase(places, rules, bookings, tx)

	req := validRequest()
	req.StartTime = types.TimeString("11:30")

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestExecute_PlaceNotFound(t *testing.T) {
	places, rules, bookings, tx := testFixtures()
	uc := newTestUseCase(places, rules, bookings, tx)

	req := validRequest()
	req.PlaceID = "missing"

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrPlaceNotFound)
	assert.Equal(t, 0, tx.calls)
}

func TestExecute_DateInPast(t *testing.T) {
	places, rules, bookings, tx := testFixtures()
	uc := NewUseCase(places, rules, bookings, tx, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: monday.AddDate(0, 0, 7)}

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecute_ValidationFailures(t *testing.T) {
	places, rules, bookings, tx := testFixtures()
	uc := newTestUseCase(places, rules, bookings, tx)

	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{"missing name", func(r *Request) { r.Name = "  " }},
		{"missing email", func(r *Request) { r.Email = "" }},
		{"bad email", func(r *Request) { r.Email = "not-an-email" }},
		{"missing place", func(r *Request) { r.PlaceID = "" }},
		{"missing date", func(r *Request) { r.Date = time.Time{} }},
		{"missing startTime", func(r *Request) { r.StartTime = "" }},
		{"bad startTime", func(r *Request) { r.StartTime = "25:99" }},
		{"duration too small", func(r *Request) { r.DurationMinutes = 5 }},
		{"duration too large", func(r *Request) { r.DurationMinutes = 600 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecute_RepositoryErrors(t *testing.T) {
	repoErr := errors.New("connection refused")

	t.Run("list bookings", func(t *testing.T) {
		places, rules, bookings, tx := testFixtures()
		bookings.listErr = repoErr
		uc := newTestUseCase(places, rules, bookings, tx)

		_, err := uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrInternal)
	})

	t.Run("create booking", func(t *testing.T) {
		places, rules, bookings, tx := testFixtures()
		bookings.createErr = repoErr
		uc := newTestUseCase(places, rules, bookings, tx)

		_, err := uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrInternal)
	})
}
