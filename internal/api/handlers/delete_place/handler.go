package delete_place

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Wong-WS/swim-scheduler/internal/api/handlers"
	"github.com/Wong-WS/swim-scheduler/internal/service/places"
)

const (
	msgMissingPlaceID   = "ID точки обязателен"
	msgPlaceNotFound    = "точка не найдена"
	msgPlaceHasBookings = "нельзя удалить точку с бронированиями"
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

// Handle DELETE /api/v1/places/{placeId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	placeID := vars["placeId"]
	if placeID == "" {
		h.logger.Warn("DELETE /places/{id} - Missing place ID")
		handlers.RespondBadRequest(w, msgMissingPlaceID)
		return
	}

	if err := h.service.Delete(r.Context(), placeID); err != nil {
		switch {
		case errors.Is(err, places.ErrPlaceNotFound):
			h.logger.Warn("DELETE /places/{id} - Place not found: place_id=%s", placeID)
			handlers.RespondNotFound(w, msgPlaceNotFound)

		case errors.Is(err, places.ErrPlaceHasBookings):
			h.logger.Warn("DELETE /places/{id} - Place has bookings: place_id=%s", placeID)
			handlers.RespondError(w, http.StatusConflict, msgPlaceHasBookings)

		case errors.Is(err, places.ErrInvalidInput):
			h.logger.Warn("DELETE /places/{id} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgMissingPlaceID)

		default:
			h.logger.Error("DELETE /places/{id} - Failed to delete place: place_id=%s, error=%v", placeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /places/{id} - Place deleted successfully: place_id=%s", placeID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
