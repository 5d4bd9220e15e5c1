package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	createBookingHandler "github.com/Wong-WS/swim-scheduler/internal/api/handlers/create_booking"
	createPlaceHandler "github.com/Wong-WS/swim-scheduler/internal/api/handlers/create_place"
	createRuleHandler "github.com/Wong-WS/swim-scheduler/internal/api/handlers/create_rule"
	deleteBookingHandler "github.com/Wong-WS/swim-scheduler/internal/api/handlers/delete_booking"
	deletePlaceHandler "github.com/Wong-WS/swim-scheduler/internal/api/handlers/delete_place"
	deleteRuleHandler "github.com/Wong-WS/swim-scheduler/internal/api/handlers/delete_rule"
	getAvailableSlotsHandler "github.com/Wong-WS/swim-scheduler/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/Wong-WS/swim-scheduler/internal/api/handlers/get_booking"
	listBookingsHandler "github.com/Wong-WS/swim-scheduler/internal/api/handlers/list_bookings"
	listPlacesHandler "github.com/Wong-WS/swim-scheduler/internal/api/handlers/list_places"
	listRulesHandler "github.com/Wong-WS/swim-scheduler/internal/api/handlers/list_rules"
	updatePlaceHandler "github.com/Wong-WS/swim-scheduler/internal/api/handlers/update_place"
	updateRuleHandler "github.com/Wong-WS/swim-scheduler/internal/api/handlers/update_rule"
	"github.com/Wong-WS/swim-scheduler/internal/api/middleware"
	"github.com/Wong-WS/swim-scheduler/internal/config"
	bookingRepo "github.com/Wong-WS/swim-scheduler/internal/infra/storage/booking"
	placeRepo "github.com/Wong-WS/swim-scheduler/internal/infra/storage/place"
	ruleRepo "github.com/Wong-WS/swim-scheduler/internal/infra/storage/rule"
	bookingsService "github.com/Wong-WS/swim-scheduler/internal/service/bookings"
	placesService "github.com/Wong-WS/swim-scheduler/internal/service/places"
	rulesService "github.com/Wong-WS/swim-scheduler/internal/service/rules"
	createBookingUC "github.com/Wong-WS/swim-scheduler/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/Wong-WS/swim-scheduler/internal/usecase/get_available_slots"
	"github.com/Wong-WS/swim-scheduler/migrations"
	"github.com/Wong-WS/swim-scheduler/pkg/dbmetrics"
	"github.com/Wong-WS/swim-scheduler/pkg/logger"
	"github.com/Wong-WS/swim-scheduler/pkg/metrics"
	"github.com/Wong-WS/swim-scheduler/pkg/simpletxmanager"
	"github.com/Wong-WS/swim-scheduler/pkg/txmanager"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting swim-scheduler...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Применяем миграции
	if err := migrations.Up(db); err != nil {
		log.Fatal("Failed to apply migrations: %v", err)
	}
	log.Info("Database migrations applied")

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository *bookingRepo.Repository
		placeRepository   *placeRepo.Repository
		ruleRepository    *ruleRepo.Repository
	)

	// Транзакционный менеджер для usecase создания бронирования
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		placeRepository = placeRepo.NewRepository(wrappedDB)
		ruleRepository = ruleRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		placeRepository = placeRepo.NewRepository(db)
		ruleRepository = ruleRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, log)
	placeSvc := placesService.NewService(placeRepository, log)
	ruleSvc := rulesService.NewService(ruleRepository, placeRepository, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		placeRepository,
		ruleRepository,
		bookingRepository,
		txMgr,
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		placeRepository,
		ruleRepository,
		bookingRepository,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	listPlaces := listPlacesHandler.NewHandler(placeSvc, log)

	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	deleteBooking := deleteBookingHandler.NewHandler(bookingSvc, log)
	createPlace := createPlaceHandler.NewHandler(placeSvc, log)
	updatePlace := updatePlaceHandler.NewHandler(placeSvc, log)
	deletePlace := deletePlaceHandler.NewHandler(placeSvc, log)
	listRules := listRulesHandler.NewHandler(ruleSvc, log)
	createRule := createRuleHandler.NewHandler(ruleSvc, log)
	updateRule := updateRuleHandler.NewHandler(ruleSvc, log)
	deleteRule := deleteRuleHandler.NewHandler(ruleSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (страница записи на занятие)
	// ============================================================

	// Список точек
	api.HandleFunc("/places", listPlaces.Handle).Methods(http.MethodGet)

	// Доступные слоты точки на дату
	api.HandleFunc("/places/{placeId}/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Создание бронирования
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (требуют X-Admin-Token header)
	// ============================================================

	admin := api.PathPrefix("").Subrouter()
	admin.Use(middleware.AdminAuth(cfg.Auth.AdminToken))

	// --- Бронирования ---
	admin.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{bookingId}", deleteBooking.Handle).Methods(http.MethodDelete)

	// --- Точки ---
	admin.HandleFunc("/places", createPlace.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/places/{placeId}", updatePlace.Handle).Methods(http.MethodPut)
	admin.HandleFunc("/places/{placeId}", deletePlace.Handle).Methods(http.MethodDelete)

	// --- Расписания доступности ---
	admin.HandleFunc("/availability-rules", listRules.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/availability-rules", createRule.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/availability-rules/{ruleId}", updateRule.Handle).Methods(http.MethodPut)
	admin.HandleFunc("/availability-rules/{ruleId}", deleteRule.Handle).Methods(http.MethodDelete)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
