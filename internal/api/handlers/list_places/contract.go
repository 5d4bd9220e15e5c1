package list_places

import (
	"context"

	"github.com/Wong-WS/swim-scheduler/internal/service/places/models"
)

type PlaceService interface {
	List(ctx context.Context) (*models.PlaceListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
