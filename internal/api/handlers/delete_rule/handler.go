package delete_rule

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Wong-WS/swim-scheduler/internal/api/handlers"
	"github.com/Wong-WS/swim-scheduler/internal/service/rules"
)

const (
	msgMissingRuleID = "ID расписания обязателен"
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

// Handle DELETE /api/v1/availability-rules/{ruleId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	ruleID := vars["ruleId"]
	if ruleID == "" {
		h.logger.Warn("DELETE /availability-rules/{id} - Missing rule ID")
		handlers.RespondBadRequest(w, msgMissingRuleID)
		return
	}

	if err := h.service.Delete(r.Context(), ruleID); err != nil {
		switch {
		case errors.Is(err, rules.ErrRuleNotFound):
			h.logger.Warn("DELETE /availability-rules/{id} - Rule not found: rule_id=%s", ruleID)
			handlers.RespondNotFound(w, msgRuleNotFound)

		case errors.Is(err, rules.ErrInvalidInput):
			h.logger.Warn("DELETE /availability-rules/{id} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgMissingRuleID)

		default:
			h.logger.Error("DELETE /availability-rules/{id} - Failed to delete rule: rule_id=%s, error=%v", ruleID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /availability-rules/{id} - Rule deleted successfully: rule_id=%s", ruleID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
