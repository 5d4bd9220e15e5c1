package domain

import "time"

// Booking подтвержденная запись клиента к тренеру.
// Тренер один, поэтому бронирование на любой точке занимает его целиком.
type Booking struct {
	ID      string
	Name    string
	Email   string
	PlaceID string

	BookingDate time.Time // календарная дата занятия (производная от StartTime)
	StartTime   time.Time
	EndTime     time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsOnDay проверяет, что бронирование приходится на указанную календарную дату
func (b *Booking) IsOnDay(date time.Time) bool {
	y1, m1, d1 := b.StartTime.Date()
	y2, m2, d2 := date.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// Overlaps проверяет пересечение с интервалом [start, end).
// Граничное касание (конец одного равен началу другого) пересечением не считается.
func (b *Booking) Overlaps(start, end time.Time) bool {
	return b.StartTime.Before(end) && start.Before(b.EndTime)
}

// BookingsFilter фильтр для выборки бронирований
type BookingsFilter struct {
	PlaceID   *string    // Фильтр по точке (опционально)
	StartDate *time.Time // Начало периода по booking_date (опционально)
	EndDate   *time.Time // Конец периода по booking_date (опционально)
}
