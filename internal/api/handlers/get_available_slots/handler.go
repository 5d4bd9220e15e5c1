package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/Wong-WS/swim-scheduler/internal/api/handlers"
	getAvailableSlots "github.com/Wong-WS/swim-scheduler/internal/usecase/get_available_slots"
)

const (
	msgMissingDate     = "дата обязательна"
	msgInvalidDate     = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidDuration = "некорректная длительность занятия"
	msgInvalidInput    = "некорректные параметры запроса"
	msgPlaceNotFound   = "точка не найдена"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/places/{placeId}/available-slots
// Query params: date (required, YYYY-MM-DD), duration (optional, minutes)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	placeID := vars["placeId"]

	// Извлекаем date из query параметров
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /places/{id}/available-slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	// Извлекаем duration из query параметров (опционально)
	durationMinutes := 0
	if durationStr := r.URL.Query().Get("duration"); durationStr != "" {
		parsed, err := strconv.Atoi(durationStr)
		if err != nil {
			h.logger.Warn("GET /places/{id}/available-slots - Invalid duration: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDuration)
			return
		}
		durationMinutes = parsed
	}

	// Формируем запрос к use case (с парсингом даты)
	useCaseReq, err := ToUseCaseRequest(placeID, dateStr, durationMinutes)
	if err != nil {
		h.logger.Warn("GET /places/{id}/available-slots - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrPlaceNotFound):
			h.logger.Warn("GET /places/{id}/available-slots - Place not found: place_id=%s", placeID)
			handlers.RespondNotFound(w, msgPlaceNotFound)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /places/{id}/available-slots - Invalid input: place_id=%s, error=%v", placeID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /places/{id}/available-slots - Failed to get slots: place_id=%s, date=%s, error=%v",
				placeID, dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /places/{id}/available-slots - Slots retrieved successfully: place_id=%s, date=%s, slots_count=%d",
		placeID, dateStr, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, response)
}
