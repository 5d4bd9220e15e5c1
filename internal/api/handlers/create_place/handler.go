package create_place

import (
	"errors"
	"net/http"

	"github.com/Wong-WS/swim-scheduler/internal/api/handlers"
	"github.com/Wong-WS/swim-scheduler/internal/service/places"
	"github.com/Wong-WS/swim-scheduler/internal/service/places/models"
)

const (
	msgInvalidBody  = "некорректное тело запроса"
	msgInvalidInput = "некорректные данные точки"
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

// Handle POST /api/v1/places
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePlaceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /places - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, places.ErrInvalidInput):
			h.logger.Warn("POST /places - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /places - Failed to create place: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /places - Place created successfully: place_id=%s", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
