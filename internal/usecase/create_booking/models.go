package create_booking

import (
	"time"

	"github.com/Wong-WS/swim-scheduler/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	Name            string           // Имя клиента
	Email           string           // Email клиента
	PlaceID         string           // ID точки (бассейна)
	Date            time.Time        // Дата бронирования (без времени)
	StartTime       types.TimeString // Время начала слота (например, "10:00")
	DurationMinutes int              // Длительность в минутах (0 = стандартная)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID              string    // ID созданного бронирования
	Name            string    // Имя клиента
	Email           string    // Email клиента
	PlaceID         string    // ID точки
	BookingDate     time.Time // Дата бронирования
	StartTime       time.Time // Время начала занятия
	EndTime         time.Time // Время окончания занятия
	DurationMinutes int       // Длительность в минутах

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
