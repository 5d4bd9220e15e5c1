package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeString_Validate(t *testing.T) {
	valid := []string{"00:00", "09:30", "23:59", "10:00"}
	for _, v := range valid {
		assert.NoError(t, TimeString(v).Validate(), v)
	}

	invalid := []string{"", "24:00", "10:60", "9:30", "10-00", "10:00:00", "abc"}
	for _, v := range invalid {
		assert.Error(t, TimeString(v).Validate(), v)
	}
}

func TestTimeString_Minutes(t *testing.T) {
	m, err := TimeString("10:30").Minutes()
	require.NoError(t, err)
	assert.Equal(t, 630, m)

	m, err = TimeString("00:00").Minutes()
	require.NoError(t, err)
	assert.Equal(t, 0, m)

	_, err = TimeString("25:00").Minutes()
	assert.Error(t, err)
}

func TestTimeString_AddMinutes(t *testing.T) {
	got, err := TimeString("10:00").AddMinutes(90)
	require.NoError(t, err)
	assert.Equal(t, TimeString("11:30"), got)

	// Выход за пределы суток
	_, err = TimeString("23:30").AddMinutes(60)
	assert.Error(t, err)

	_, err = TimeString("10:00").AddMinutes(-30)
	assert.Error(t, err)
}

func TestTimeString_Comparisons(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("10:00"))
	assert.False(t, TimeString("10:00").IsBefore("10:00"))
	assert.True(t, TimeString("11:00").IsAfter("10:59"))
}

func TestTimeString_On(t *testing.T) {
	date := time.Date(2025, 11, 3, 0, 0, 0, 0, time.Local)

	got, err := TimeString("14:30").On(date)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 11, 3, 14, 30, 0, 0, time.Local), got)

	_, err = TimeString("99:99").On(date)
	assert.Error(t, err)
}

func TestNewTimeString(t *testing.T) {
	ts := NewTimeString(time.Date(2025, 11, 3, 7, 5, 0, 0, time.UTC))
	assert.Equal(t, TimeString("07:05"), ts)
}
