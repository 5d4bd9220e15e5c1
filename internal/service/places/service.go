package places

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/Wong-WS/swim-scheduler/internal/domain"
	placeRepo "github.com/Wong-WS/swim-scheduler/internal/infra/storage/place"
	"github.com/Wong-WS/swim-scheduler/internal/service/places/models"
)

// Service сервис для работы с точками (бассейнами)
type Service struct {
	placeRepo PlaceRepository
	logger    Logger
}

// NewService создает новый экземпляр сервиса точек
func NewService(placeRepo PlaceRepository, logger Logger) *Service {
	return &Service{
		placeRepo: placeRepo,
		logger:    logger,
	}
}

// Create создает новую точку
func (s *Service) Create(ctx context.Context, req *models.CreatePlaceRequest) (*models.PlaceResponse, error) {
	s.logger.Info("Create: creating place name=%s, area=%s", req.Name, req.Area)

	name := strings.TrimSpace(req.Name)
	area := strings.TrimSpace(req.Area)

	if err := validatePlaceFields(name, area, req.BufferTimeMinutes); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	place := &domain.Place{
		ID:                uuid.NewString(),
		Name:              name,
		Area:              area,
		BufferTimeMinutes: req.BufferTimeMinutes,
	}

	created, err := s.placeRepo.Create(ctx, place)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created place id=%s", created.ID)
	return models.FromDomainPlace(created), nil
}

// GetByID получает точку по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.PlaceResponse, error) {
	s.logger.Info("GetByID: fetching place id=%s", id)

	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("%w: place id is required", ErrInvalidInput)
	}

	place, err := s.placeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, placeRepo.ErrPlaceNotFound) {
			s.logger.Warn("GetByID: place id=%s not found", id)
			return nil, ErrPlaceNotFound
		}
		s.logger.Error("GetByID: repository error for place id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainPlace(place), nil
}

// List получает список всех точек
func (s *Service) List(ctx context.Context) (*models.PlaceListResponse, error) {
	s.logger.Info("List: fetching places")

	places, err := s.placeRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d places", len(places))
	return models.FromDomainPlaceList(places), nil
}

// Update обновляет точку. Nil-поля запроса не изменяются
func (s *Service) Update(ctx context.Context, id string, req *models.UpdatePlaceRequest) (*models.PlaceResponse, error) {
	s.logger.Info("Update: updating place id=%s", id)

	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("%w: place id is required", ErrInvalidInput)
	}

	place, err := s.placeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, placeRepo.ErrPlaceNotFound) {
			s.logger.Warn("Update: place id=%s not found", id)
			return nil, ErrPlaceNotFound
		}
		s.logger.Error("Update: repository error for place id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	if req.Name != nil {
		place.Name = strings.TrimSpace(*req.Name)
	}
	if req.Area != nil {
		place.Area = strings.TrimSpace(*req.Area)
	}
	if req.BufferTimeMinutes != nil {
		place.BufferTimeMinutes = *req.BufferTimeMinutes
	}

	if err := validatePlaceFields(place.Name, place.Area, place.BufferTimeMinutes); err != nil {
		s.logger.Warn("Update: validation failed for place id=%s: %v", id, err)
		return nil, err
	}

	if err := s.placeRepo.Update(ctx, place); err != nil {
		if errors.Is(err, placeRepo.ErrPlaceNotFound) {
			s.logger.Warn("Update: place id=%s not found during update", id)
			return nil, ErrPlaceNotFound
		}
		s.logger.Error("Update: repository error for place id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	updated, err := s.placeRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("Update: failed to reload place id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated place id=%s", id)
	return models.FromDomainPlace(updated), nil
}

// Delete удаляет точку. Точка с бронированиями не удаляется
func (s *Service) Delete(ctx context.Context, id string) error {
	s.logger.Info("Delete: deleting place id=%s", id)

	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: place id is required", ErrInvalidInput)
	}

	if err := s.placeRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, placeRepo.ErrPlaceNotFound) {
			s.logger.Warn("Delete: place id=%s not found", id)
			return ErrPlaceNotFound
		}
		if errors.Is(err, placeRepo.ErrPlaceHasBookings) {
			s.logger.Warn("Delete: place id=%s has bookings", id)
			return ErrPlaceHasBookings
		}
		s.logger.Error("Delete: repository error for place id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted place id=%s", id)
	return nil
}

// validatePlaceFields проверяет поля точки
func validatePlaceFields(name, area string, bufferTimeMinutes int) error {
	if name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len(name) > domain.MaxNameLength {
		return fmt.Errorf("%w: name must be at most %d characters", ErrInvalidInput, domain.MaxNameLength)
	}

	if area == "" {
		return fmt.Errorf("%w: area is required", ErrInvalidInput)
	}
	if len(area) > domain.MaxAreaLength {
		return fmt.Errorf("%w: area must be at most %d characters", ErrInvalidInput, domain.MaxAreaLength)
	}

	if bufferTimeMinutes < domain.MinBufferTimeMinutes || bufferTimeMinutes > domain.MaxBufferTimeMinutes {
		return fmt.Errorf("%w: bufferTimeMinutes must be between %d and %d",
			ErrInvalidInput, domain.MinBufferTimeMinutes, domain.MaxBufferTimeMinutes)
	}

	return nil
}
