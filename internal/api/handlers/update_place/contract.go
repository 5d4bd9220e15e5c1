package update_place

import (
	"context"

	"github.com/Wong-WS/swim-scheduler/internal/service/places/models"
)

type PlaceService interface {
	Update(ctx context.Context, id string, req *models.UpdatePlaceRequest) (*models.PlaceResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
