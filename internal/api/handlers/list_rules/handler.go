package list_rules

import (
	"errors"
	"net/http"

	"github.com/Wong-WS/swim-scheduler/internal/api/handlers"
	"github.com/Wong-WS/swim-scheduler/internal/service/rules"
)

const msgRuleNotFound = "расписание не найдено"

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

// Handle GET /api/v1/availability-rules
// Query params: placeId (опционально - расписание конкретной точки)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	if placeID := r.URL.Query().Get("placeId"); placeID != "" {
		result, err := h.service.GetByPlaceID(r.Context(), placeID)
		if err != nil {
			switch {
			case errors.Is(err, rules.ErrRuleNotFound):
				h.logger.Warn("GET /availability-rules - Rule not found: place_id=%s", placeID)
				handlers.RespondNotFound(w, msgRuleNotFound)

			default:
				h.logger.Error("GET /availability-rules - Failed to get rule: place_id=%s, error=%v", placeID, err)
				handlers.RespondInternalError(w)
			}
			return
		}

		h.logger.Info("GET /availability-rules - Rule retrieved successfully: place_id=%s", placeID)
		handlers.RespondJSON(w, http.StatusOK, result)
		return
	}

	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /availability-rules - Failed to list rules: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /availability-rules - Rules listed successfully: count=%d", len(result.Rules))
	handlers.RespondJSON(w, http.StatusOK, result)
}
