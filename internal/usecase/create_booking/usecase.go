package create_booking

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/Wong-WS/swim-scheduler/internal/domain"
	"github.com/Wong-WS/swim-scheduler/internal/scheduling"
)

// UseCase use case для создания бронирования
type UseCase struct {
	placeRepo    PlaceRepository
	ruleRepo     RuleRepository
	bookingRepo  BookingRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	placeRepo PlaceRepository,
	ruleRepo RuleRepository,
	bookingRepo BookingRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		placeRepo:    placeRepo,
		ruleRepo:     ruleRepo,
		bookingRepo:  bookingRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования.
// Доступность слота пересчитывается внутри сериализуемой транзакции
// с блокировкой бронирований дня, чтобы исключить двойное бронирование
// при конкурирующих запросах.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: place=%s, date=%s, time=%s, email=%s",
		req.PlaceID, req.Date.Format(domain.DateFormat), req.StartTime, req.Email)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем, что дата не в прошлом
	now := uc.timeProvider.Now()
	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("CreateBooking: date validation failed: %v", err)
		return nil, err
	}

	duration := req.DurationMinutes
	if duration == 0 {
		duration = domain.DefaultSlotDurationMinutes
	}

	// 3. Загружаем точки и проверяем существование целевой точки
	places, err := uc.placeRepo.List(ctx)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to list places: %v", err)
		return nil, fmt.Errorf("%w: failed to list places: %v", ErrInternal, err)
	}

	if !placeExists(places, req.PlaceID) {
		uc.logger.Warn("CreateBooking: place id=%s not found", req.PlaceID)
		return nil, ErrPlaceNotFound
	}

	// 4. Загружаем расписания доступности
	rules, err := uc.ruleRepo.List(ctx)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to list rules: %v", err)
		return nil, fmt.Errorf("%w: failed to list rules: %v", ErrInternal, err)
	}

	// 5. Вычисляем начало и конец занятия
	startAt, err := req.StartTime.On(req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid startTime: %v", ErrInvalidInput, err)
	}
	endTime, err := req.StartTime.AddMinutes(duration)
	if err != nil {
		return nil, fmt.Errorf("%w: slot does not fit into the day: %v", ErrInvalidInput, err)
	}
	endAt, err := endTime.On(req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid endTime: %v", ErrInvalidInput, err)
	}

	var result *domain.Booking

	// 6. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 6.1. Получаем бронирования дня на всех точках с блокировкой (FOR UPDATE)
		filter := domain.BookingsFilter{
			StartDate: &req.Date,
			EndDate:   &req.Date,
		}

		bookings, err := uc.bookingRepo.ListWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to list bookings: %v", err)
			return fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
		}

		// 6.2. Пересчитываем доступные слоты с учетом текущих бронирований
		slots := scheduling.ComputeAvailableSlots(req.Date, req.PlaceID, places, bookings, rules, duration)

		// 6.3. Запрошенное время должно совпадать с одним из доступных слотов
		if slotMatches(slots, startAt) == nil {
			uc.logger.Warn("CreateBooking: slot %s not available at place=%s on %s",
				req.StartTime, req.PlaceID, req.Date.Format(domain.DateFormat))
			return ErrSlotNotAvailable
		}

		// 6.4. Создаем бронирование
		booking := &domain.Booking{
			ID:          uuid.NewString(),
			Name:        req.Name,
			Email:       req.Email,
			PlaceID:     req.PlaceID,
			BookingDate: req.Date,
			StartTime:   startAt,
			EndTime:     endAt,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%s", result.ID)

	return &Response{
		ID:              result.ID,
		Name:            result.Name,
		Email:           result.Email,
		PlaceID:         result.PlaceID,
		BookingDate:     result.BookingDate,
		StartTime:       result.StartTime,
		EndTime:         result.EndTime,
		DurationMinutes: duration,
		CreatedAt:       result.CreatedAt,
		UpdatedAt:       result.UpdatedAt,
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
