package create_rule

import (
	"errors"
	"net/http"

	"github.com/Wong-WS/swim-scheduler/internal/api/handlers"
	"github.com/Wong-WS/swim-scheduler/internal/service/rules"
	"github.com/Wong-WS/swim-scheduler/internal/service/rules/models"
)

const (
	msgInvalidBody       = "некорректное тело запроса"
	msgInvalidInput      = "некорректные данные расписания"
	msgPlaceNotFound     = "точка не найдена"
	msgRuleAlreadyExists = "у точки уже есть расписание"
)

type Handler struct {
	service RuleService
	logger  Logger
}

func NewHandler(service RuleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/availability-rules
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateRuleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /availability-rules - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, rules.ErrInvalidInput):
			h.logger.Warn("POST /availability-rules - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, rules.ErrPlaceNotFound):
			h.logger.Warn("POST /availability-rules - Place not found: place_id=%s", req.PlaceID)
			handlers.RespondNotFound(w, msgPlaceNotFound)

		case errors.Is(err, rules.ErrRuleAlreadyExists):
			h.logger.Warn("POST /availability-rules - Rule already exists: place_id=%s", req.PlaceID)
			handlers.RespondError(w, http.StatusConflict, msgRuleAlreadyExists)

		default:
			h.logger.Error("POST /availability-rules - Failed to create rule: place_id=%s, error=%v", req.PlaceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /availability-rules - Rule created successfully: rule_id=%s, place_id=%s", result.ID, req.PlaceID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
