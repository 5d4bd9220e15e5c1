package domain

import "time"

// Slot доступное для бронирования временное окно на запрошенную дату.
// Значение-результат движка расписания: нигде не хранится,
// строится заново при каждом запросе.
type Slot struct {
	Start time.Time
	End   time.Time

	StartFormatted string // "HH:MM" для отображения
	EndFormatted   string // "HH:MM" для отображения
}

// NewSlot создает слот с отформатированными временами начала и конца
func NewSlot(start, end time.Time) Slot {
	return Slot{
		Start:          start,
		End:            end,
		StartFormatted: start.Format(TimeFormat),
		EndFormatted:   end.Format(TimeFormat),
	}
}
