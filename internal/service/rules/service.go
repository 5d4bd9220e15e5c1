package rules

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/Wong-WS/swim-scheduler/internal/domain"
	placeRepo "github.com/Wong-WS/swim-scheduler/internal/infra/storage/place"
	ruleRepo "github.com/Wong-WS/swim-scheduler/internal/infra/storage/rule"
	"github.com/Wong-WS/swim-scheduler/internal/service/rules/models"
)

// Service сервис для работы с расписаниями доступности
type Service struct {
	ruleRepo  RuleRepository
	placeRepo PlaceRepository
	logger    Logger
}

// NewService создает новый экземпляр сервиса расписаний
func NewService(ruleRepo RuleRepository, placeRepo PlaceRepository, logger Logger) *Service {
	return &Service{
		ruleRepo:  ruleRepo,
		placeRepo: placeRepo,
		logger:    logger,
	}
}

// Create создает расписание для точки. У точки может быть только одно расписание
func (s *Service) Create(ctx context.Context, req *models.CreateRuleRequest) (*models.RuleResponse, error) {
	s.logger.Info("Create: creating rule for place=%s", req.PlaceID)

	if strings.TrimSpace(req.PlaceID) == "" {
		return nil, fmt.Errorf("%w: placeId is required", ErrInvalidInput)
	}

	schedule, err := models.ToDomainSchedule(req.Rules)
	if err != nil {
		s.logger.Warn("Create: invalid schedule for place=%s: %v", req.PlaceID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// Точка должна существовать
	if _, err := s.placeRepo.GetByID(ctx, req.PlaceID); err != nil {
		if errors.Is(err, placeRepo.ErrPlaceNotFound) {
			s.logger.Warn("Create: place id=%s not found", req.PlaceID)
			return nil, ErrPlaceNotFound
		}
		s.logger.Error("Create: failed to get place id=%s: %v", req.PlaceID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	rule := &domain.AvailabilityRule{
		ID:      uuid.NewString(),
		PlaceID: req.PlaceID,
		Rules:   schedule,
	}

	created, err := s.ruleRepo.Create(ctx, rule)
	if err != nil {
		if errors.Is(err, ruleRepo.ErrRuleAlreadyExists) {
			s.logger.Warn("Create: rule already exists for place=%s", req.PlaceID)
			return nil, ErrRuleAlreadyExists
		}
		s.logger.Error("Create: repository error for place=%s: %v", req.PlaceID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created rule id=%s for place=%s", created.ID, req.PlaceID)
	return models.FromDomainRule(created), nil
}

// GetByID получает расписание по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.RuleResponse, error) {
	s.logger.Info("GetByID: fetching rule id=%s", id)

	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("%w: rule id is required", ErrInvalidInput)
	}

	rule, err := s.ruleRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ruleRepo.ErrRuleNotFound) {
			s.logger.Warn("GetByID: rule id=%s not found", id)
			return nil, ErrRuleNotFound
		}
		s.logger.Error("GetByID: repository error for rule id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainRule(rule), nil
}

// GetByPlaceID получает расписание точки
func (s *Service) GetByPlaceID(ctx context.Context, placeID string) (*models.RuleResponse, error) {
	s.logger.Info("GetByPlaceID: fetching rule for place=%s", placeID)

	if strings.TrimSpace(placeID) == "" {
		return nil, fmt.Errorf("%w: placeId is required", ErrInvalidInput)
	}

	rule, err := s.ruleRepo.GetByPlaceID(ctx, placeID)
	if err != nil {
		if errors.Is(err, ruleRepo.ErrRuleNotFound) {
			s.logger.Warn("GetByPlaceID: rule for place=%s not found", placeID)
			return nil, ErrRuleNotFound
		}
		s.logger.Error("GetByPlaceID: repository error for place=%s: %v", placeID, err)
		return nil, fmt.Errorf("%w: GetByPlaceID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainRule(rule), nil
}

// List получает список всех расписаний
func (s *Service) List(ctx context.Context) (*models.RuleListResponse, error) {
	s.logger.Info("List: fetching rules")

	rules, err := s.ruleRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d rules", len(rules))
	return models.FromDomainRuleList(rules), nil
}

// Update заменяет набор правил расписания целиком
func (s *Service) Update(ctx context.Context, id string, req *models.UpdateRuleRequest) (*models.RuleResponse, error) {
	s.logger.Info("Update: updating rule id=%s", id)

	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("%w: rule id is required", ErrInvalidInput)
	}

	schedule, err := models.ToDomainSchedule(req.Rules)
	if err != nil {
		s.logger.Warn("Update: invalid schedule for rule id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.ruleRepo.UpdateRules(ctx, id, schedule); err != nil {
		if errors.Is(err, ruleRepo.ErrRuleNotFound) {
			s.logger.Warn("Update: rule id=%s not found", id)
			return nil, ErrRuleNotFound
		}
		s.logger.Error("Update: repository error for rule id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	updated, err := s.ruleRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("Update: failed to reload rule id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated rule id=%s", id)
	return models.FromDomainRule(updated), nil
}

// Delete удаляет расписание. Точка без расписания считается закрытой
func (s *Service) Delete(ctx context.Context, id string) error {
	s.logger.Info("Delete: deleting rule id=%s", id)

	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: rule id is required", ErrInvalidInput)
	}

	if err := s.ruleRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, ruleRepo.ErrRuleNotFound) {
			s.logger.Warn("Delete: rule id=%s not found", id)
			return ErrRuleNotFound
		}
		s.logger.Error("Delete: repository error for rule id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted rule id=%s", id)
	return nil
}
