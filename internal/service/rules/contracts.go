package rules

import (
	"context"

	"github.com/Wong-WS/swim-scheduler/internal/domain"
)

// RuleRepository интерфейс репозитория расписаний доступности
type RuleRepository interface {
	Create(ctx context.Context, rule *domain.AvailabilityRule) (*domain.AvailabilityRule, error)
	GetByID(ctx context.Context, id string) (*domain.AvailabilityRule, error)
	GetByPlaceID(ctx context.Context, placeID string) (*domain.AvailabilityRule, error)
	List(ctx context.Context) ([]*domain.AvailabilityRule, error)
	UpdateRules(ctx context.Context, id string, rules domain.WeeklySchedule) error
	Delete(ctx context.Context, id string) error
}

// PlaceRepository интерфейс репозитория точек
type PlaceRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Place, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
