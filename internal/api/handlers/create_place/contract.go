package create_place

import (
	"context"

	"github.com/Wong-WS/swim-scheduler/internal/service/places/models"
)

type PlaceService interface {
	Create(ctx context.Context, req *models.CreatePlaceRequest) (*models.PlaceResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
