package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Wong-WS/swim-scheduler/internal/domain"
)

func TestToDomainSchedule(t *testing.T) {
	t.Run("normalizes weekday case", func(t *testing.T) {
		schedule, err := ToDomainSchedule([]WeeklyRuleInput{
			{Day: "Monday", StartTime: "10:00", EndTime: "18:00"},
			{Day: "SATURDAY", StartTime: "09:00", EndTime: "12:00"},
		})

		require.NoError(t, err)
		require.Len(t, schedule, 2)
		assert.Equal(t, domain.Monday, schedule[0].Day)
		assert.Equal(t, domain.Saturday, schedule[1].Day)
	})

	t.Run("empty set is valid", func(t *testing.T) {
		schedule, err := ToDomainSchedule(nil)
		require.NoError(t, err)
		assert.Empty(t, schedule)
	})

	t.Run("rejects unknown weekday", func(t *testing.T) {
		_, err := ToDomainSchedule([]WeeklyRuleInput{
			{Day: "someday", StartTime: "10:00", EndTime: "18:00"},
		})
		assert.ErrorIs(t, err, domain.ErrInvalidWeekday)
	})

	t.Run("rejects inverted time range", func(t *testing.T) {
		_, err := ToDomainSchedule([]WeeklyRuleInput{
			{Day: "monday", StartTime: "18:00", EndTime: "10:00"},
		})
		assert.ErrorIs(t, err, domain.ErrInvalidTimeRange)
	})

	t.Run("rejects duplicate weekday", func(t *testing.T) {
		_, err := ToDomainSchedule([]WeeklyRuleInput{
			{Day: "monday", StartTime: "10:00", EndTime: "12:00"},
			{Day: "Monday", StartTime: "14:00", EndTime: "18:00"},
		})
		assert.ErrorIs(t, err, domain.ErrDuplicateWeekday)
	})

	t.Run("rejects malformed time", func(t *testing.T) {
		_, err := ToDomainSchedule([]WeeklyRuleInput{
			{Day: "monday", StartTime: "10am", EndTime: "18:00"},
		})
		assert.Error(t, err)
	})
}
