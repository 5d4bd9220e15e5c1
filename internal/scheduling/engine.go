// Package scheduling вычисляет доступные для бронирования слоты.
//
// Тренер - единственный ресурс, общий для всех точек, поэтому слот на одной
// точке блокируется бронированием на любой другой. Между занятиями на разных
// точках дополнительно требуется travel buffer, зависящий от районов точек.
//
// Все функции пакета чистые: принимают снимки коллекций, ничего не мутируют
// и не выполняют I/O. Недоступность (неизвестная точка, нет расписания,
// выходной день) выражается пустым результатом, а не ошибкой - для клиента
// "закрыто" и "всё занято" выглядят одинаково.
package scheduling

import (
	"time"

	"github.com/Wong-WS/swim-scheduler/internal/domain"
)

// ComputeAvailableSlots возвращает упорядоченный по времени начала список
// свободных слотов длительностью durationMinutes на точке placeID в дату date.
//
// Слоты нарезаются от начала дневного окна расписания с шагом durationMinutes
// (неполный хвост отбрасывается), затем отфильтровываются слоты, пересекающиеся
// с любым бронированием этого дня на любой точке, и слоты без достаточного
// travel buffer-а до соседних бронирований.
func ComputeAvailableSlots(
	date time.Time,
	placeID string,
	places []*domain.Place,
	bookings []*domain.Booking,
	rules []*domain.AvailabilityRule,
	durationMinutes int,
) []domain.Slot {
	if durationMinutes <= 0 {
		return []domain.Slot{}
	}

	place := findPlace(places, placeID)
	if place == nil {
		return []domain.Slot{}
	}

	rule := findRuleForPlace(rules, placeID)
	if rule == nil {
		return []domain.Slot{}
	}

	dayRule := rule.Rules.ForWeekday(date.Weekday())
	if dayRule == nil {
		return []domain.Slot{}
	}

	// Некорректное окно (start >= end, битое время) трактуем как выходной,
	// валидация таких данных - задача административных форм
	if err := dayRule.Validate(); err != nil {
		return []domain.Slot{}
	}

	candidates, err := tileSlots(date, dayRule, durationMinutes)
	if err != nil {
		return []domain.Slot{}
	}

	// Бронирования других дней конфликтовать не могут - учитываем только этот день
	dayBookings := make([]*domain.Booking, 0, len(bookings))
	for _, b := range bookings {
		if b.IsOnDay(date) {
			dayBookings = append(dayBookings, b)
		}
	}

	placesByID := make(map[string]*domain.Place, len(places))
	for _, p := range places {
		placesByID[p.ID] = p
	}

	available := make([]domain.Slot, 0, len(candidates))
	for _, slot := range candidates {
		// Сначала занятость тренера, затем буферы: буфер имеет смысл
		// только для непересекающихся слотов
		if overlapsAny(slot, dayBookings) {
			continue
		}
		if !hasTravelBuffer(slot, place, dayBookings, placesByID) {
			continue
		}
		available = append(available, slot)
	}

	return available
}

// tileSlots нарезает дневное окно расписания на непрерывные слоты фиксированной
// длительности, начиная с начала окна. Слот, не помещающийся в окно целиком,
// отбрасывается, а не укорачивается.
func tileSlots(date time.Time, dayRule *domain.WeeklyRule, durationMinutes int) ([]domain.Slot, error) {
	windowStart, err := dayRule.StartTime.On(date)
	if err != nil {
		return nil, err
	}

	windowEnd, err := dayRule.EndTime.On(date)
	if err != nil {
		return nil, err
	}

	duration := time.Duration(durationMinutes) * time.Minute

	slots := make([]domain.Slot, 0)
	for slotStart := windowStart; slotStart.Before(windowEnd); slotStart = slotStart.Add(duration) {
		slotEnd := slotStart.Add(duration)
		if slotEnd.After(windowEnd) {
			break
		}
		slots = append(slots, domain.NewSlot(slotStart, slotEnd))
	}

	return slots, nil
}

// overlapsAny проверяет пересечение слота с любым бронированием списка.
// Точка бронирования не важна - тренер занят в любом случае.
func overlapsAny(slot domain.Slot, bookings []*domain.Booking) bool {
	for _, b := range bookings {
		if b.Overlaps(slot.Start, slot.End) {
			return true
		}
	}
	return false
}

// hasTravelBuffer проверяет, что между слотом и каждым соседним по времени
// бронированием достаточно travel buffer-а.
//
// Бронирования на точках, отсутствующих в снимке places, буферное ограничение
// не накладывают (пересечение для них уже проверено отдельно).
func hasTravelBuffer(
	slot domain.Slot,
	place *domain.Place,
	bookings []*domain.Booking,
	placesByID map[string]*domain.Place,
) bool {
	for _, b := range bookings {
		bookingPlace := placesByID[b.PlaceID]
		if bookingPlace == nil {
			continue
		}

		// Бронирование заканчивается до начала слота: тренер едет с точки
		// бронирования на запрашиваемую точку
		if !b.EndTime.After(slot.Start) {
			required := requiredBufferMinutes(bookingPlace, place)
			if minutesBetween(b.EndTime, slot.Start) < required {
				return false
			}
		}

		// Бронирование начинается после конца слота: тренер едет с
		// запрашиваемой точки на точку бронирования
		if !b.StartTime.Before(slot.End) {
			required := requiredBufferMinutes(place, bookingPlace)
			if minutesBetween(slot.End, b.StartTime) < required {
				return false
			}
		}
	}

	return true
}

// requiredBufferMinutes возвращает требуемый буфер в минутах для переезда
// origin -> destination. Внутри одного района буфер задаёт точка назначения
// (время обустроиться по приезде); между районами дорога менее предсказуема,
// поэтому берётся больший буфер из двух точек.
func requiredBufferMinutes(origin, destination *domain.Place) int {
	if origin.ID == destination.ID {
		return 0
	}
	if origin.SameArea(destination) {
		return destination.BufferTimeMinutes
	}
	if origin.BufferTimeMinutes > destination.BufferTimeMinutes {
		return origin.BufferTimeMinutes
	}
	return destination.BufferTimeMinutes
}

// minutesBetween возвращает целое число минут от from до to
func minutesBetween(from, to time.Time) int {
	return int(to.Sub(from) / time.Minute)
}

func findPlace(places []*domain.Place, id string) *domain.Place {
	for _, p := range places {
		if p.ID == id {
			return p
		}
	}
	return nil
}

func findRuleForPlace(rules []*domain.AvailabilityRule, placeID string) *domain.AvailabilityRule {
	for _, r := range rules {
		if r.PlaceID == placeID {
			return r
		}
	}
	return nil
}
