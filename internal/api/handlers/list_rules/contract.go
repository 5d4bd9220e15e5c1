package list_rules

import (
	"context"

	"github.com/Wong-WS/swim-scheduler/internal/service/rules/models"
)

type RuleService interface {
	List(ctx context.Context) (*models.RuleListResponse, error)
	GetByPlaceID(ctx context.Context, placeID string) (*models.RuleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
