package create_booking

import (
	"context"
	"time"

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
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	// ListWithFilter внутри транзакции с фильтром по одной дате
	// блокирует строки дня (FOR UPDATE)
	ListWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
