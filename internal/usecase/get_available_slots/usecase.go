package get_available_slots

import (
	"context"
	"fmt"

	"github.com/Wong-WS/swim-scheduler/internal/domain"
	"github.com/Wong-WS/swim-scheduler/internal/scheduling"
)

// UseCase use case для получения доступных слотов для бронирования
type UseCase struct {
	placeRepo   PlaceRepository
	ruleRepo    RuleRepository
	bookingRepo BookingRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	placeRepo PlaceRepository,
	ruleRepo RuleRepository,
	bookingRepo BookingRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		placeRepo:   placeRepo,
		ruleRepo:    ruleRepo,
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// Execute выполняет use case получения доступных слотов.
// Собирает снимки коллекций и передает их движку расписания;
// сам расчёт - чистая функция без побочных эффектов.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: place=%s, date=%s, duration=%d",
		req.PlaceID, req.Date.Format(domain.DateFormat), req.DurationMinutes)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	duration := req.DurationMinutes
	if duration == 0 {
		duration = domain.DefaultSlotDurationMinutes
	}

	// 2. Загружаем точки
	places, err := uc.placeRepo.List(ctx)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to list places: %v", err)
		return nil, fmt.Errorf("%w: failed to list places: %v", ErrInternal, err)
	}

	// 3. Проверяем существование точки: для движка неизвестная точка -
	// пустой результат, но API должен отличать её от занятого дня
	if !placeExists(places, req.PlaceID) {
		uc.logger.Warn("GetAvailableSlots: place id=%s not found", req.PlaceID)
		return nil, ErrPlaceNotFound
	}

	// 4. Загружаем расписания
	rules, err := uc.ruleRepo.List(ctx)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to list rules: %v", err)
		return nil, fmt.Errorf("%w: failed to list rules: %v", ErrInternal, err)
	}

	// 5. Загружаем бронирования дня на ВСЕХ точках -
	// тренер один, занятость на любой точке блокирует слоты
	filter := domain.BookingsFilter{
		StartDate: &req.Date,
		EndDate:   &req.Date,
	}

	bookings, err := uc.bookingRepo.ListWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to list bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
	}

	// 6. Вычисляем доступные слоты
	slots := scheduling.ComputeAvailableSlots(req.Date, req.PlaceID, places, bookings, rules, duration)

	uc.logger.Info("GetAvailableSlots: computed %d slots for place=%s, date=%s",
		len(slots), req.PlaceID, req.Date.Format(domain.DateFormat))

	return &Response{
		PlaceID:         req.PlaceID,
		Date:            req.Date,
		DurationMinutes: duration,
		Slots:           slots,
	}, nil
}

func placeExists(places []*domain.Place, id string) bool {
	for _, p := range places {
		if p.ID == id {
			return true
		}
	}
	return false
}
