package get_available_slots

import (
	"context"

	"github.com/Wong-WS/swim-scheduler/internal/domain"
)

// PlaceRepository интерфейс репозитория точек
type PlaceRepository interface {
	List(ctx context.Context) ([]*domain.Place, error)
}

// RuleRepository интерфейс репозитория расписаний доступности
type RuleRepository interface {
	List(ctx context.Context) ([]*domain.AvailabilityRule, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// ListWithFilter получает бронирования по фильтру;
	// для расчёта слотов запрашиваются бронирования дня на всех точках
	ListWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
