package update_place

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Wong-WS/swim-scheduler/internal/api/handlers"
	"github.com/Wong-WS/swim-scheduler/internal/service/places"
	"github.com/Wong-WS/swim-scheduler/internal/service/places/models"
)

const (
	msgMissingPlaceID = "ID точки обязателен"
	msgInvalidBody    = "некорректное тело запроса"
	msgInvalidInput   = "некорректные данные точки"
	msgPlaceNotFound  = "точка не найдена"
)

type Handler struct {
	service PlaceService
	logger  Logger
}

func NewHandler(service PlaceService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/places/{placeId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	placeID := vars["placeId"]
	if placeID == "" {
		h.logger.Warn("PUT /places/{id} - Missing place ID")
		handlers.RespondBadRequest(w, msgMissingPlaceID)
		return
	}

	var req models.UpdatePlaceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /places/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	result, err := h.service.Update(r.Context(), placeID, &req)
	if err != nil {
		switch {
		case errors.Is(err, places.ErrPlaceNotFound):
			h.logger.Warn("PUT /places/{id} - Place not found: place_id=%s", placeID)
			handlers.RespondNotFound(w, msgPlaceNotFound)

		case errors.Is(err, places.ErrInvalidInput):
			h.logger.Warn("PUT /places/{id} - Invalid input: place_id=%s, error=%v", placeID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /places/{id} - Failed to update place: place_id=%s, error=%v", placeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /places/{id} - Place updated successfully: place_id=%s", placeID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
