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
	"github.com/redis/go-redis/v9"

	createReservationHandler "github.com/m04kA/SMC-ExcursionBooking/internal/api/handlers/create_reservation"
	deleteReservationHandler "github.com/m04kA/SMC-ExcursionBooking/internal/api/handlers/delete_reservation"
	getAvailabilityHandler "github.com/m04kA/SMC-ExcursionBooking/internal/api/handlers/get_availability"
	getReservationHandler "github.com/m04kA/SMC-ExcursionBooking/internal/api/handlers/get_reservation"
	getSchedulesHandler "github.com/m04kA/SMC-ExcursionBooking/internal/api/handlers/get_schedules"
	listReservationsHandler "github.com/m04kA/SMC-ExcursionBooking/internal/api/handlers/list_reservations"
	listWatercraftHandler "github.com/m04kA/SMC-ExcursionBooking/internal/api/handlers/list_watercraft"
	updateReservationHandler "github.com/m04kA/SMC-ExcursionBooking/internal/api/handlers/update_reservation"
	"github.com/m04kA/SMC-ExcursionBooking/internal/api/middleware"
	"github.com/m04kA/SMC-ExcursionBooking/internal/config"
	"github.com/m04kA/SMC-ExcursionBooking/internal/domain"
	availabilityCache "github.com/m04kA/SMC-ExcursionBooking/internal/infra/cache/availability"
	reservationRepo "github.com/m04kA/SMC-ExcursionBooking/internal/infra/storage/reservation"
	scheduleRepo "github.com/m04kA/SMC-ExcursionBooking/internal/infra/storage/schedule"
	watercraftRepo "github.com/m04kA/SMC-ExcursionBooking/internal/infra/storage/watercraft"
	"github.com/m04kA/SMC-ExcursionBooking/internal/integrations/notifications"
	catalogService "github.com/m04kA/SMC-ExcursionBooking/internal/service/catalog"
	reservationsService "github.com/m04kA/SMC-ExcursionBooking/internal/service/reservations"
	scheduleService "github.com/m04kA/SMC-ExcursionBooking/internal/service/schedule"
	createReservationUC "github.com/m04kA/SMC-ExcursionBooking/internal/usecase/create_reservation"
	getAvailabilityUC "github.com/m04kA/SMC-ExcursionBooking/internal/usecase/get_availability"
	getScheduleOverviewUC "github.com/m04kA/SMC-ExcursionBooking/internal/usecase/get_schedule_overview"
	updateReservationUC "github.com/m04kA/SMC-ExcursionBooking/internal/usecase/update_reservation"
	"github.com/m04kA/SMC-ExcursionBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-ExcursionBooking/pkg/logger"
	"github.com/m04kA/SMC-ExcursionBooking/pkg/metrics"
	"github.com/m04kA/SMC-ExcursionBooking/pkg/txmanager"
)

// Кэш и публикатор событий, общие для use cases и сервиса бронирований
type availabilityStore interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	InvalidateDate(ctx context.Context, date time.Time) error
}

type eventPublisher interface {
	PublishReservationCreated(ctx context.Context, reservation *domain.Reservation) error
	PublishReservationUpdated(ctx context.Context, reservation *domain.Reservation) error
	PublishReservationDeleted(ctx context.Context, reservation *domain.Reservation) error
}

func main() {
	configPath := "config.toml"
	if p := os.Getenv("BOOKING_CONFIG"); p != "" {
		configPath = p
	}

	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
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

	log.Info("Starting SMC-ExcursionBooking...")
	log.Info("Configuration loaded from %s", configPath)

	// Инициализируем метрики (если включены)
	// nil коллектор безопасен: все методы *metrics.Metrics проверяют получателя
	var metricsCollector *metrics.Metrics
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

	// Обёртка нужна и без метрик: через неё txmanager кладёт транзакцию в контекст
	var wrappedDB *dbmetrics.DB
	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")
	} else {
		wrappedDB = dbmetrics.Wrap(db, nil)
	}

	// Расписание из конфигурации уже проверено в config.Load
	scheduleRules, err := cfg.Schedule.Build()
	if err != nil {
		log.Fatal("Failed to build schedule: %v", err)
	}

	// Инициализируем кэш доступности
	var cache availabilityStore = availabilityCache.Noop{}
	if cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()

		pingCtx, cancelPing := context.WithTimeout(context.Background(), 3*time.Second)
		if err := redisClient.Ping(pingCtx).Err(); err != nil {
			// Кэш не обязателен: сервис работает и без него, промахи идут в БД
			log.Warn("Redis is unavailable at %s, continuing without cache: %v", cfg.Redis.Addr, err)
		} else {
			cache = availabilityCache.NewCache(redisClient, time.Duration(cfg.Redis.TTL)*time.Second)
			log.Info("Availability cache enabled (addr=%s, ttl=%ds)", cfg.Redis.Addr, cfg.Redis.TTL)
		}
		cancelPing()
	}

	// Инициализируем публикатор событий
	var publisher eventPublisher = notifications.Noop{}
	if cfg.RabbitMQ.Enabled {
		publisher = notifications.NewPublisher(
			cfg.RabbitMQ.URL,
			time.Duration(cfg.RabbitMQ.Timeout)*time.Second,
			log,
		)
		log.Info("Reservation events will be published to RabbitMQ (timeout=%ds)", cfg.RabbitMQ.Timeout)
	}

	// Инициализируем репозитории
	reservationRepository := reservationRepo.NewRepository(wrappedDB)
	watercraftRepository := watercraftRepo.NewRepository(wrappedDB)
	scheduleRepository := scheduleRepo.NewRepository(wrappedDB)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Инициализируем сервисы
	scheduleSvc := scheduleService.NewService(scheduleRepository, scheduleRules, log)
	catalogSvc := catalogService.NewService(watercraftRepository, log)
	reservationsSvc := reservationsService.NewService(
		reservationRepository,
		cache,
		publisher,
		metricsCollector,
		log,
	)

	// Инициализируем use cases
	createReservationUseCase := createReservationUC.NewUseCase(
		reservationRepository,
		watercraftRepository,
		scheduleSvc,
		txMgr,
		cache,
		publisher,
		metricsCollector,
		log,
	)

	updateReservationUseCase := updateReservationUC.NewUseCase(
		reservationRepository,
		watercraftRepository,
		scheduleSvc,
		txMgr,
		cache,
		publisher,
		metricsCollector,
		log,
	)

	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(
		reservationRepository,
		watercraftRepository,
		scheduleSvc,
		cache,
		log,
	)

	getScheduleOverviewUseCase := getScheduleOverviewUC.NewUseCase(
		scheduleSvc,
		watercraftRepository,
		reservationRepository,
		cache,
		log,
	)

	// Инициализируем handlers
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	updateReservation := updateReservationHandler.NewHandler(updateReservationUseCase, log)
	deleteReservation := deleteReservationHandler.NewHandler(reservationsSvc, log)
	getReservation := getReservationHandler.NewHandler(reservationsSvc, log)
	listReservations := listReservationsHandler.NewHandler(reservationsSvc, log)
	listWatercraft := listWatercraftHandler.NewHandler(catalogSvc, log)
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	getSchedules := getSchedulesHandler.NewHandler(getScheduleOverviewUseCase, log)

	authenticator := middleware.NewAuthenticator(cfg.Auth.JWTSecret)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware и endpoint (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, metricsCollector.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Даты сезона с загрузкой по плавсредствам
	api.HandleFunc("/schedules", getSchedules.Handle).Methods(http.MethodGet)

	// Каталог плавсредств
	api.HandleFunc("/watercraft", listWatercraft.Handle).Methods(http.MethodGet)

	// Сетка занятости плавсредства на дату
	api.HandleFunc("/schedules/{date}/watercraft/{watercraftId}/availability",
		getAvailability.Handle).Methods(http.MethodGet)

	// ============================================================
	// OPTIONAL AUTH ROUTES (токен не обязателен, но если есть - проверяется)
	// ============================================================

	optional := api.PathPrefix("").Subrouter()
	optional.Use(authenticator.OptionalAuth)

	// Создание бронирования, анонимное бронирование остаётся без владельца
	optional.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)

	// Список бронирований (mine=true требует токен)
	optional.HandleFunc("/reservations", listReservations.Handle).Methods(http.MethodGet)

	// Получение бронирования по ID
	optional.HandleFunc("/reservations/{reservationId}", getReservation.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют Bearer токен)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(authenticator.Auth)

	// Изменение бронирования (владелец или администратор)
	protected.HandleFunc("/reservations/{reservationId}", updateReservation.Handle).Methods(http.MethodPut)

	// Удаление бронирования (владелец или администратор)
	protected.HandleFunc("/reservations/{reservationId}", deleteReservation.Handle).Methods(http.MethodDelete)

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
	close(stopMetricsCh)

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
