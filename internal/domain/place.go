package domain

import "time"

// Place физическая точка (бассейн), которую обслуживает тренер.
// Area группирует точки по районам для расчёта travel buffer-а.
type Place struct {
	ID                string
	Name              string
	Area              string
	BufferTimeMinutes int // время на дорогу/подготовку при переезде с другой точки, >= 0

	CreatedAt time.Time
	UpdatedAt time.Time
}

// SameArea проверяет, что обе точки находятся в одном районе
func (p *Place) SameArea(other *Place) bool {
	return p.Area == other.Area
}
