package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWeekday(t *testing.T) {
	tests := []struct {
		in   string
		want Weekday
		ok   bool
	}{
		{"monday", Monday, true},
		{"Monday", Monday, true},
		{"  SUNDAY ", Sunday, true},
		{"wednesday", Wednesday, true},
		{"someday", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, err := ParseWeekday(tt.in)
		if tt.ok {
			require.NoError(t, err, tt.in)
			assert.Equal(t, tt.want, got)
		} else {
			assert.ErrorIs(t, err, ErrInvalidWeekday, tt.in)
		}
	}
}

func TestWeekday_Matches(t *testing.T) {
	assert.True(t, Monday.Matches(time.Monday))
	assert.False(t, Monday.Matches(time.Tuesday))

	// Значения, записанные до нормализации, всё равно сопоставляются
	assert.True(t, Weekday("Monday").Matches(time.Monday))
	assert.True(t, Weekday("SATURDAY").Matches(time.Saturday))
	assert.False(t, Weekday("notaday").Matches(time.Monday))
}

func TestWeeklySchedule_ForWeekday(t *testing.T) {
	schedule := WeeklySchedule{
		{Day: Monday, StartTime: "10:00", EndTime: "18:00"},
		{Day: Friday, StartTime: "09:00", EndTime: "12:00"},
	}

	rule := schedule.ForWeekday(time.Monday)
	require.NotNil(t, rule)
	assert.Equal(t, Monday, rule.Day)

	// Отсутствие окна означает закрытый день
	assert.Nil(t, schedule.ForWeekday(time.Sunday))
}

func TestWeeklySchedule_Validate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		schedule := WeeklySchedule{
			{Day: Monday, StartTime: "10:00", EndTime: "18:00"},
			{Day: Tuesday, StartTime: "10:00", EndTime: "18:00"},
		}
		assert.NoError(t, schedule.Validate())
	})

	t.Run("inverted range", func(t *testing.T) {
		schedule := WeeklySchedule{
			{Day: Monday, StartTime: "18:00", EndTime: "10:00"},
		}
		assert.ErrorIs(t, schedule.Validate(), ErrInvalidTimeRange)
	})

	t.Run("zero-length range", func(t *testing.T) {
		schedule := WeeklySchedule{
			{Day: Monday, StartTime: "10:00", EndTime: "10:00"},
		}
		assert.ErrorIs(t, schedule.Validate(), ErrInvalidTimeRange)
	})

	t.Run("duplicate day ignoring case", func(t *testing.T) {
		schedule := WeeklySchedule{
			{Day: Monday, StartTime: "10:00", EndTime: "12:00"},
			{Day: Weekday("Monday"), StartTime: "14:00", EndTime: "18:00"},
		}
		assert.ErrorIs(t, schedule.Validate(), ErrDuplicateWeekday)
	})
}

func TestWeeklySchedule_ScanValue(t *testing.T) {
	schedule := WeeklySchedule{
		{Day: Monday, StartTime: "10:00", EndTime: "18:00"},
	}

	value, err := schedule.Value()
	require.NoError(t, err)

	var decoded WeeklySchedule
	require.NoError(t, decoded.Scan(value))
	assert.Equal(t, schedule, decoded)

	var empty WeeklySchedule
	require.NoError(t, empty.Scan(nil))
	assert.Nil(t, empty)
}

func TestBooking_Overlaps(t *testing.T) {
	day := time.Date(2025, 11, 3, 0, 0, 0, 0, time.Local)
	at := func(h, m int) time.Time {
		return time.Date(2025, 11, 3, h, m, 0, 0, time.Local)
	}

	b := &Booking{
		BookingDate: day,
		StartTime:   at(10, 0),
		EndTime:     at(11, 0),
	}

	assert.True(t, b.Overlaps(at(10, 30), at(11, 30)))
	assert.True(t, b.Overlaps(at(9, 30), at(10, 30)))
	assert.True(t, b.Overlaps(at(10, 15), at(10, 45)))

	// Интервалы полуоткрытые: соприкосновение границами не считается пересечением
	assert.False(t, b.Overlaps(at(11, 0), at(12, 0)))
	assert.False(t, b.Overlaps(at(9, 0), at(10, 0)))
}

func TestPlace_SameArea(t *testing.T) {
	a := &Place{ID: "a", Area: "Tanjung Tokong"}
	b := &Place{ID: "b", Area: "Tanjung Tokong"}
	c := &Place{ID: "c", Area: "Batu Ferringhi"}

	assert.True(t, a.SameArea(b))
	assert.False(t, a.SameArea(c))
}
