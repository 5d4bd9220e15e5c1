package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Wong-WS/swim-scheduler/internal/domain"
	"github.com/Wong-WS/swim-scheduler/pkg/types"
)

// monday фиксированная дата-понедельник для тестов
var monday = time.Date(2025, 11, 3, 0, 0, 0, 0, time.Local)

func newPlace(id, area string, bufferMinutes int) *domain.Place {
	return &domain.Place{
		ID:                id,
		Name:              "Place " + id,
		Area:              area,
		BufferTimeMinutes: bufferMinutes,
	}
}

func newRule(placeID string, day domain.Weekday, start, end string) *domain.AvailabilityRule {
	return &domain.AvailabilityRule{
		ID:      "rule-" + placeID,
		PlaceID: placeID,
		Rules: domain.WeeklySchedule{
			{Day: day, StartTime: types.TimeString(start), EndTime: types.TimeString(end)},
		},
	}
}

func newBooking(id, placeID string, date time.Time, start, end string) *domain.Booking {
	return &domain.Booking{
		ID:          id,
		Name:        "Client " + id,
		Email:       "client" + id + "@example.com",
		PlaceID:     placeID,
		BookingDate: date,
		StartTime:   at(date, start),
		EndTime:     at(date, end),
	}
}

func at(date time.Time, hhmm string) time.Time {
	parsed, err := time.Parse("15:04", hhmm)
	if err != nil {
		panic(err)
	}
	return time.Date(date.Year(), date.Month(), date.Day(),
		parsed.Hour(), parsed.Minute(), 0, 0, date.Location())
}

func slotStarts(slots []domain.Slot) []string {
	starts := make([]string, len(slots))
	for i, s := range slots {
		starts[i] = s.StartFormatted
	}
	return starts
}

func TestComputeAvailableSlots_TilingDeterminism(t *testing.T) {
	place := newPlace("1", "North", 30)
	rule := newRule("1", domain.Monday, "10:00", "18:00")

	slots := ComputeAvailableSlots(monday, "1",
		[]*domain.Place{place}, nil, []*domain.AvailabilityRule{rule}, 60)

	require.Len(t, slots, 8)
	assert.Equal(t,
		[]string{"10:00", "11:00", "12:00", "13:00", "14:00", "15:00", "16:00", "17:00"},
		slotStarts(slots))

	// Слоты хронологически упорядочены, непрерывны и ровно по часу
	for i, s := range slots {
		assert.Equal(t, time.Hour, s.End.Sub(s.Start))
		if i > 0 {
			assert.True(t, slots[i-1].End.Equal(s.Start))
		}
	}
	assert.Equal(t, "18:00", slots[7].EndFormatted)
}

func TestComputeAvailableSlots_TrailingPartialSlotDiscarded(t *testing.T) {
	place := newPlace("1", "North", 30)
	rule := newRule("1", domain.Monday, "10:00", "17:30")

	slots := ComputeAvailableSlots(monday, "1",
		[]*domain.Place{place}, nil, []*domain.AvailabilityRule{rule}, 60)

	// 17:00-18:00 не помещается в окно, хвост 17:00-17:30 отбрасывается
	require.Len(t, slots, 7)
	assert.Equal(t, "17:00", slots[6].EndFormatted)
}

func TestComputeAvailableSlots_WindowShorterThanDuration(t *testing.T) {
	place := newPlace("1", "North", 30)
	rule := newRule("1", domain.Monday, "10:00", "10:45")

	slots := ComputeAvailableSlots(monday, "1",
		[]*domain.Place{place}, nil, []*domain.AvailabilityRule{rule}, 60)

	assert.Empty(t, slots)
}

func TestComputeAvailableSlots_ClosedDay(t *testing.T) {
	place := newPlace("1", "North", 30)
	// Расписание только на вторник, запрашиваем понедельник
	rule := newRule("1", domain.Tuesday, "10:00", "18:00")

	slots := ComputeAvailableSlots(monday, "1",
		[]*domain.Place{place}, nil, []*domain.AvailabilityRule{rule}, 60)

	assert.Empty(t, slots)
}

func TestComputeAvailableSlots_EmptyResultConditions(t *testing.T) {
	place := newPlace("1", "North", 30)
	rule := newRule("1", domain.Monday, "10:00", "18:00")
	places := []*domain.Place{place}
	rules := []*domain.AvailabilityRule{rule}

	t.Run("unknown place", func(t *testing.T) {
		assert.Empty(t, ComputeAvailableSlots(monday, "missing", places, nil, rules, 60))
	})

	t.Run("no rule for place", func(t *testing.T) {
		other := newPlace("2", "North", 30)
		assert.Empty(t, ComputeAvailableSlots(monday, "2",
			[]*domain.Place{place, other}, nil, rules, 60))
	})

	t.Run("non-positive duration", func(t *testing.T) {
		assert.Empty(t, ComputeAvailableSlots(monday, "1", places, nil, rules, 0))
		assert.Empty(t, ComputeAvailableSlots(monday, "1", places, nil, rules, -30))
	})

	t.Run("malformed day window treated as closed", func(t *testing.T) {
		broken := newRule("1", domain.Monday, "18:00", "10:00")
		assert.Empty(t, ComputeAvailableSlots(monday, "1", places, nil,
			[]*domain.AvailabilityRule{broken}, 60))
	})
}

func TestComputeAvailableSlots_CaseInsensitiveWeekday(t *testing.T) {
	place := newPlace("1", "North", 30)
	rule := &domain.AvailabilityRule{
		ID:      "rule-1",
		PlaceID: "1",
		Rules: domain.WeeklySchedule{
			{Day: "Monday", StartTime: "10:00", EndTime: "12:00"},
		},
	}

	slots := ComputeAvailableSlots(monday, "1",
		[]*domain.Place{place}, nil, []*domain.AvailabilityRule{rule}, 60)

	assert.Equal(t, []string{"10:00", "11:00"}, slotStarts(slots))
}

func TestComputeAvailableSlots_EmptyBookingsPassthrough(t *testing.T) {
	place := newPlace("1", "North", 30)
	rule := newRule("1", domain.Monday, "09:00", "17:00")

	slots := ComputeAvailableSlots(monday, "1",
		[]*domain.Place{place}, []*domain.Booking{}, []*domain.AvailabilityRule{rule}, 60)

	// Без бронирований результат совпадает с чистой нарезкой окна
	assert.Equal(t,
		[]string{"09:00", "10:00", "11:00", "12:00", "13:00", "14:00", "15:00", "16:00"},
		slotStarts(slots))
}

func TestComputeAvailableSlots_NoDoubleBooking(t *testing.T) {
	quayside := newPlace("1", "North", 0)
	gurney := newPlace("2", "South", 0)
	rule := newRule("1", domain.Monday, "10:00", "14:00")

	// Тренер занят 11:30-12:30 на ДРУГОЙ точке - слоты 11:00 и 12:00
	// всё равно выпадают, тренер один на все точки
	booking := newBooking("b1", "2", monday, "11:30", "12:30")

	slots := ComputeAvailableSlots(monday, "1",
		[]*domain.Place{quayside, gurney},
		[]*domain.Booking{booking},
		[]*domain.AvailabilityRule{rule}, 60)

	assert.Equal(t, []string{"10:00", "13:00"}, slotStarts(slots))

	for _, s := range slots {
		assert.False(t, booking.Overlaps(s.Start, s.End))
	}
}

func TestComputeAvailableSlots_OtherDayBookingsIgnored(t *testing.T) {
	place := newPlace("1", "North", 30)
	rule := newRule("1", domain.Monday, "10:00", "12:00")

	tuesday := monday.AddDate(0, 0, 1)
	booking := newBooking("b1", "1", tuesday, "10:00", "11:00")

	slots := ComputeAvailableSlots(monday, "1",
		[]*domain.Place{place}, []*domain.Booking{booking},
		[]*domain.AvailabilityRule{rule}, 60)

	assert.Equal(t, []string{"10:00", "11:00"}, slotStarts(slots))
}

func TestComputeAvailableSlots_SamePlaceAdjacencyNeedsNoBuffer(t *testing.T) {
	place := newPlace("1", "North", 30)
	rule := newRule("1", domain.Monday, "10:00", "14:00")

	// Занятие на той же точке заканчивается в 12:00 - слот 12:00-13:00
	// остается доступным, переезда нет
	booking := newBooking("b1", "1", monday, "11:00", "12:00")

	slots := ComputeAvailableSlots(monday, "1",
		[]*domain.Place{place}, []*domain.Booking{booking},
		[]*domain.AvailabilityRule{rule}, 60)

	assert.Equal(t, []string{"10:00", "12:00", "13:00"}, slotStarts(slots))
}

func TestComputeAvailableSlots_CrossAreaConservativeBuffer(t *testing.T) {
	north := newPlace("A", "North", 30)
	south := newPlace("B", "South", 40)
	places := []*domain.Place{north, south}

	// Занятие в North заканчивается в 12:00; для переезда через районы
	// требуется max(30, 40) = 40 минут
	booking := newBooking("b1", "A", monday, "11:00", "12:00")

	t.Run("25 minute gap rejected", func(t *testing.T) {
		rule := newRule("B", domain.Monday, "12:25", "14:25")
		slots := ComputeAvailableSlots(monday, "B", places,
			[]*domain.Booking{booking}, []*domain.AvailabilityRule{rule}, 60)
		assert.Equal(t, []string{"13:25"}, slotStarts(slots))
	})

	t.Run("40 minute gap accepted", func(t *testing.T) {
		rule := newRule("B", domain.Monday, "12:40", "14:40")
		slots := ComputeAvailableSlots(monday, "B", places,
			[]*domain.Booking{booking}, []*domain.AvailabilityRule{rule}, 60)
		assert.Equal(t, []string{"12:40", "13:40"}, slotStarts(slots))
	})
}

func TestComputeAvailableSlots_SameAreaUsesDestinationBuffer(t *testing.T) {
	a := newPlace("A", "Gurney", 20)
	a2 := newPlace("A2", "Gurney", 15)
	places := []*domain.Place{a, a2}

	// Занятие в A заканчивается в 09:00; внутри района буфер задаёт
	// точка назначения A2 (15 минут), а не точка отправления
	booking := newBooking("b1", "A", monday, "08:00", "09:00")

	t.Run("12 minute gap rejected", func(t *testing.T) {
		rule := newRule("A2", domain.Monday, "09:12", "11:12")
		slots := ComputeAvailableSlots(monday, "A2", places,
			[]*domain.Booking{booking}, []*domain.AvailabilityRule{rule}, 60)
		assert.Equal(t, []string{"10:12"}, slotStarts(slots))
	})

	t.Run("exactly required gap accepted", func(t *testing.T) {
		rule := newRule("A2", domain.Monday, "09:15", "11:15")
		slots := ComputeAvailableSlots(monday, "A2", places,
			[]*domain.Booking{booking}, []*domain.AvailabilityRule{rule}, 60)
		assert.Equal(t, []string{"09:15", "10:15"}, slotStarts(slots))
	})

	t.Run("16 minute gap accepted", func(t *testing.T) {
		rule := newRule("A2", domain.Monday, "09:16", "11:16")
		slots := ComputeAvailableSlots(monday, "A2", places,
			[]*domain.Booking{booking}, []*domain.AvailabilityRule{rule}, 60)
		assert.Equal(t, []string{"09:16", "10:16"}, slotStarts(slots))
	})
}

func TestComputeAvailableSlots_BufferBeforeNextBooking(t *testing.T) {
	a := newPlace("A", "Gurney", 20)
	a2 := newPlace("A2", "Gurney", 15)
	places := []*domain.Place{a, a2}
	rule := newRule("A2", domain.Monday, "09:00", "11:00")

	t.Run("insufficient gap to next booking", func(t *testing.T) {
		// Следующее занятие в A начинается в 11:10: после слота 10:00-11:00
		// остаётся 10 минут, а до A (точка назначения) нужно 20
		next := newBooking("b1", "A", monday, "11:10", "12:10")
		slots := ComputeAvailableSlots(monday, "A2", places,
			[]*domain.Booking{next}, []*domain.AvailabilityRule{rule}, 60)
		assert.Equal(t, []string{"09:00"}, slotStarts(slots))
	})

	t.Run("sufficient gap to next booking", func(t *testing.T) {
		next := newBooking("b1", "A", monday, "11:20", "12:20")
		slots := ComputeAvailableSlots(monday, "A2", places,
			[]*domain.Booking{next}, []*domain.AvailabilityRule{rule}, 60)
		assert.Equal(t, []string{"09:00", "10:00"}, slotStarts(slots))
	})
}

func TestComputeAvailableSlots_BufferMonotonicity(t *testing.T) {
	rule := newRule("B", domain.Monday, "12:00", "18:00")
	booking := newBooking("b1", "A", monday, "10:30", "11:30")

	compute := func(aArea string) []string {
		a := newPlace("A", aArea, 50)
		b := newPlace("B", "South", 40)
		return slotStarts(ComputeAvailableSlots(monday, "B",
			[]*domain.Place{a, b}, []*domain.Booking{booking},
			[]*domain.AvailabilityRule{rule}, 60))
	}

	// Один и тот же сценарий: внутри района требуется 40 минут,
	// через районы max(50, 40) = 50 - требование растёт
	sameArea := compute("South")
	crossArea := compute("North")

	assert.Subset(t, sameArea, crossArea,
		"с большим требованием буфера слотов не может стать больше")
}

func TestComputeAvailableSlots_BookingAtUnknownPlace(t *testing.T) {
	place := newPlace("1", "North", 30)
	rule := newRule("1", domain.Monday, "10:00", "14:00")

	t.Run("overlap still blocks the coach", func(t *testing.T) {
		booking := newBooking("b1", "ghost", monday, "11:00", "12:00")
		slots := ComputeAvailableSlots(monday, "1",
			[]*domain.Place{place}, []*domain.Booking{booking},
			[]*domain.AvailabilityRule{rule}, 60)
		assert.Equal(t, []string{"10:00", "12:00", "13:00"}, slotStarts(slots))
	})

	t.Run("buffer check is skipped", func(t *testing.T) {
		// Занятие на неизвестной точке заканчивается в 09:50: буферное
		// ограничение к нему не применяется, слот 10:00 остаётся
		booking := newBooking("b1", "ghost", monday, "08:50", "09:50")
		slots := ComputeAvailableSlots(monday, "1",
			[]*domain.Place{place}, []*domain.Booking{booking},
			[]*domain.AvailabilityRule{rule}, 60)
		assert.Equal(t, []string{"10:00", "11:00", "12:00", "13:00"}, slotStarts(slots))
	})
}

func TestComputeAvailableSlots_NonDefaultDuration(t *testing.T) {
	place := newPlace("1", "North", 30)
	rule := newRule("1", domain.Monday, "10:00", "12:00")

	slots := ComputeAvailableSlots(monday, "1",
		[]*domain.Place{place}, nil, []*domain.AvailabilityRule{rule}, 30)

	assert.Equal(t, []string{"10:00", "10:30", "11:00", "11:30"}, slotStarts(slots))
}

func TestRequiredBufferMinutes(t *testing.T) {
	north1 := newPlace("1", "North", 30)
	north2 := newPlace("2", "North", 25)
	south := newPlace("3", "South", 40)

	tests := []struct {
		name        string
		origin      *domain.Place
		destination *domain.Place
		want        int
	}{
		{"same place", north1, north1, 0},
		{"same area uses destination buffer", north1, north2, 25},
		{"same area reverse direction", north2, north1, 30},
		{"cross area takes the larger buffer", north1, south, 40},
		{"cross area reverse direction", south, north1, 40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, requiredBufferMinutes(tt.origin, tt.destination))
		})
	}
}
