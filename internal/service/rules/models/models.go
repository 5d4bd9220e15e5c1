package models

import (
	"fmt"
	"time"

	"github.com/Wong-WS/swim-scheduler/internal/domain"
	"github.com/Wong-WS/swim-scheduler/pkg/types"
)

// Request модели

// WeeklyRuleInput правило доступности на один день недели
type WeeklyRuleInput struct {
	Day       string `json:"day"`       // "monday" .. "sunday" (регистр не важен)
	StartTime string `json:"startTime"` // "10:00"
	EndTime   string `json:"endTime"`   // "18:00"
}

// CreateRuleRequest запрос на создание расписания точки
type CreateRuleRequest struct {
	PlaceID string            `json:"placeId"`
	Rules   []WeeklyRuleInput `json:"rules"`
}

// UpdateRuleRequest запрос на замену набора правил расписания
type UpdateRuleRequest struct {
	Rules []WeeklyRuleInput `json:"rules"`
}

// ToDomainSchedule конвертирует входные правила в domain.WeeklySchedule
// Дни недели нормализуются к нижнему регистру на входе
func ToDomainSchedule(inputs []WeeklyRuleInput) (domain.WeeklySchedule, error) {
	schedule := make(domain.WeeklySchedule, 0, len(inputs))

	for i, in := range inputs {
		day, err := domain.ParseWeekday(in.Day)
		if err != nil {
			return nil, fmt.Errorf("rules[%d]: %w", i, err)
		}

		rule := domain.WeeklyRule{
			Day:       day,
			StartTime: types.TimeString(in.StartTime),
			EndTime:   types.TimeString(in.EndTime),
		}
		if err := rule.Validate(); err != nil {
			return nil, fmt.Errorf("rules[%d]: %w", i, err)
		}

		schedule = append(schedule, rule)
	}

	if err := schedule.Validate(); err != nil {
		return nil, err
	}

	return schedule, nil
}

// Response модели

// WeeklyRuleResponse правило доступности в ответе
type WeeklyRuleResponse struct {
	Day       string `json:"day"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// RuleResponse ответ с расписанием точки
type RuleResponse struct {
	ID        string               `json:"id"`
	PlaceID   string               `json:"placeId"`
	Rules     []WeeklyRuleResponse `json:"rules"`
	CreatedAt time.Time            `json:"createdAt"`
	UpdatedAt time.Time            `json:"updatedAt"`
}

// RuleListResponse ответ со списком расписаний
type RuleListResponse struct {
	Rules []RuleResponse `json:"rules"`
}

// Методы конвертации

// FromDomainRule конвертирует domain модель в DTO
func FromDomainRule(r *domain.AvailabilityRule) *RuleResponse {
	if r == nil {
		return nil
	}

	weekly := make([]WeeklyRuleResponse, 0, len(r.Rules))
	for _, wr := range r.Rules {
		weekly = append(weekly, WeeklyRuleResponse{
			Day:       string(wr.Day),
			StartTime: wr.StartTime.String(),
			EndTime:   wr.EndTime.String(),
		})
	}

	return &RuleResponse{
		ID:        r.ID,
		PlaceID:   r.PlaceID,
		Rules:     weekly,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// FromDomainRuleList конвертирует список domain моделей в DTO
func FromDomainRuleList(rules []*domain.AvailabilityRule) *RuleListResponse {
	resp := &RuleListResponse{
		Rules: make([]RuleResponse, 0, len(rules)),
	}

	for _, rule := range rules {
		if ruleResp := FromDomainRule(rule); ruleResp != nil {
			resp.Rules = append(resp.Rules, *ruleResp)
		}
	}

	return resp
}
