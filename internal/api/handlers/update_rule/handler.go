package update_rule

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Wong-WS/swim-scheduler/internal/api/handlers"
	"github.com/Wong-WS/swim-scheduler/internal/service/rules"
	"github.com/Wong-WS/swim-scheduler/internal/service/rules/models"
)

const (
	msgMissingRuleID = "ID расписания обязателен"
	msgInvalidBody   = "некорректное тело запроса"
	msgInvalidInput  = "некорректные данные расписания"
	msgRuleNotFound  = "расписание не найдено"
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

// Handle PUT /api/v1/availability-rules/{ruleId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	ruleID := vars["ruleId"]
	if ruleID == "" {
		h.logger.Warn("PUT /availability-rules/{id} - Missing rule ID")
		handlers.RespondBadRequest(w, msgMissingRuleID)
		return
	}

	var req models.UpdateRuleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /availability-rules/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	result, err := h.service.Update(r.Context(), ruleID, &req)
	if err != nil {
		switch {
		case errors.Is(err, rules.ErrRuleNotFound):
			h.logger.Warn("PUT /availability-rules/{id} - Rule not found: rule_id=%s", ruleID)
			handlers.RespondNotFound(w, msgRuleNotFound)

		case errors.Is(err, rules.ErrInvalidInput):
			h.logger.Warn("PUT /availability-rules/{id} - Invalid input: rule_id=%s, error=%v", ruleID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /availability-rules/{id} - Failed to update rule: rule_id=%s, error=%v", ruleID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /availability-rules/{id} - Rule updated successfully: rule_id=%s", ruleID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
