package models

import (
	"time"

	"github.com/Wong-WS/swim-scheduler/internal/domain"
)

// Request модели

// CreatePlaceRequest запрос на создание точки
type CreatePlaceRequest struct {
	Name              string `json:"name"`
	Area              string `json:"area"`
	BufferTimeMinutes int    `json:"bufferTimeMinutes"`
}

// UpdatePlaceRequest запрос на обновление точки.
// Nil-поля не изменяются (частичное обновление)
type UpdatePlaceRequest struct {
	Name              *string `json:"name,omitempty"`
	Area              *string `json:"area,omitempty"`
	BufferTimeMinutes *int    `json:"bufferTimeMinutes,omitempty"`
}

// Response модели

// PlaceResponse ответ с данными точки
type PlaceResponse struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	Area              string    `json:"area"`
	BufferTimeMinutes int       `json:"bufferTimeMinutes"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// PlaceListResponse ответ со списком точек
type PlaceListResponse struct {
	Places []PlaceResponse `json:"places"`
}

// Методы конвертации

// FromDomainPlace конвертирует domain модель в DTO
func FromDomainPlace(p *domain.Place) *PlaceResponse {
	if p == nil {
		return nil
	}

	return &PlaceResponse{
		ID:                p.ID,
		Name:              p.Name,
		Area:              p.Area,
		BufferTimeMinutes: p.BufferTimeMinutes,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}

// FromDomainPlaceList конвертирует список domain моделей в DTO
func FromDomainPlaceList(places []*domain.Place) *PlaceListResponse {
	resp := &PlaceListResponse{
		Places: make([]PlaceResponse, 0, len(places)),
	}

	for _, place := range places {
		if placeResp := FromDomainPlace(place); placeResp != nil {
			resp.Places = append(resp.Places, *placeResp)
		}
	}

	return resp
}
