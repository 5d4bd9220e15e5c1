package domain

// Default configuration values
const (
	DefaultSlotDurationMinutes = 60
)

// Business validation constants
const (
	MinSlotDurationMinutes = 15
	MaxSlotDurationMinutes = 480 // 8 hours

	MinBufferTimeMinutes = 0
	MaxBufferTimeMinutes = 240 // 4 hours

	MaxNameLength  = 200
	MaxEmailLength = 254
	MaxAreaLength  = 100
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
