package get_available_slots

import (
	"time"

	"github.com/Wong-WS/swim-scheduler/internal/domain"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	PlaceID         string    // ID точки
	Date            time.Time // Дата для расчёта слотов (без времени)
	DurationMinutes int       // Длительность слота; 0 означает значение по умолчанию
}

// Response модель ответа со списком доступных слотов
type Response struct {
	PlaceID         string        // ID точки, для которой запрашивались слоты
	Date            time.Time     // Дата, на которую запрашивались слоты
	DurationMinutes int           // Фактически использованная длительность слота
	Slots           []domain.Slot // Доступные слоты в хронологическом порядке
}
