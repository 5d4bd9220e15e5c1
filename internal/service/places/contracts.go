package places

import (
	"context"

	"github.com/Wong-WS/swim-scheduler/internal/domain"
)

// PlaceRepository интерфейс репозитория точек
type PlaceRepository interface {
	Create(ctx context.Context, place *domain.Place) (*domain.Place, error)
	GetByID(ctx context.Context, id string) (*domain.Place, error)
	List(ctx context.Context) ([]*domain.Place, error)
	Update(ctx context.Context, place *domain.Place) error
	Delete(ctx context.Context, id string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
