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

	courtsHandler "github.com/m04kA/SMC-CourtService/internal/api/handlers/courts"
	createReservationHandler "github.com/m04kA/SMC-CourtService/internal/api/handlers/create_reservation"
	generateSlotsHandler "github.com/m04kA/SMC-CourtService/internal/api/handlers/generate_slots"
	getAvailableSlotsHandler "github.com/m04kA/SMC-CourtService/internal/api/handlers/get_available_slots"
	notificationsHandler "github.com/m04kA/SMC-CourtService/internal/api/handlers/notifications"
	operationHoursHandler "github.com/m04kA/SMC-CourtService/internal/api/handlers/operation_hours"
	reservationsHandler "github.com/m04kA/SMC-CourtService/internal/api/handlers/reservations"
	timeSlotsHandler "github.com/m04kA/SMC-CourtService/internal/api/handlers/time_slots"
	updateReservationStatusHandler "github.com/m04kA/SMC-CourtService/internal/api/handlers/update_reservation_status"
	usersHandler "github.com/m04kA/SMC-CourtService/internal/api/handlers/users"
	"github.com/m04kA/SMC-CourtService/internal/api/middleware"
	"github.com/m04kA/SMC-CourtService/internal/config"
	businessHourRepo "github.com/m04kA/SMC-CourtService/internal/infra/storage/businesshour"
	courtRepo "github.com/m04kA/SMC-CourtService/internal/infra/storage/court"
	"github.com/m04kA/SMC-CourtService/internal/infra/storage/migrations"
	notificationRepo "github.com/m04kA/SMC-CourtService/internal/infra/storage/notification"
	reservationRepo "github.com/m04kA/SMC-CourtService/internal/infra/storage/reservation"
	timeSlotRepo "github.com/m04kA/SMC-CourtService/internal/infra/storage/timeslot"
	userRepo "github.com/m04kA/SMC-CourtService/internal/infra/storage/user"
	"github.com/m04kA/SMC-CourtService/internal/scheduler"
	businessHoursService "github.com/m04kA/SMC-CourtService/internal/service/businesshours"
	courtsService "github.com/m04kA/SMC-CourtService/internal/service/courts"
	notificationsService "github.com/m04kA/SMC-CourtService/internal/service/notifications"
	reservationsService "github.com/m04kA/SMC-CourtService/internal/service/reservations"
	timeSlotsService "github.com/m04kA/SMC-CourtService/internal/service/timeslots"
	usersService "github.com/m04kA/SMC-CourtService/internal/service/users"
	cleanExpiredSlotsUC "github.com/m04kA/SMC-CourtService/internal/usecase/clean_expired_slots"
	createReservationUC "github.com/m04kA/SMC-CourtService/internal/usecase/create_reservation"
	generateSlotsUC "github.com/m04kA/SMC-CourtService/internal/usecase/generate_slots"
	getAvailableSlotsUC "github.com/m04kA/SMC-CourtService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-CourtService/pkg/dbmetrics"
	"github.com/m04kA/SMC-CourtService/pkg/logger"
	"github.com/m04kA/SMC-CourtService/pkg/metrics"
	"github.com/m04kA/SMC-CourtService/pkg/txmanager"
)

func main() {
	configPath := "config.toml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		configPath = v
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

	log.Info("Starting SMC-CourtService...")
	log.Info("Configuration loaded from %s", configPath)

	location, err := cfg.App.Location()
	if err != nil {
		log.Fatal("Failed to load timezone %s: %v", cfg.App.Timezone, err)
	}

	// Инициализируем метрики (если включены)
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

	// Применяем миграции схемы
	if err := migrations.Up(db); err != nil {
		log.Fatal("Failed to apply migrations: %v", err)
	}
	log.Info("Database migrations applied")

	// Без метрик обёртка работает как прозрачный прокси
	var wrappedDB *dbmetrics.DB
	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")
	} else {
		wrappedDB = dbmetrics.Wrap(db, nil)
	}

	// Инициализируем репозитории
	courtRepository := courtRepo.NewRepository(wrappedDB)
	businessHourRepository := businessHourRepo.NewRepository(wrappedDB)
	timeSlotRepository := timeSlotRepo.NewRepository(wrappedDB)
	reservationRepository := reservationRepo.NewRepository(wrappedDB)
	notificationRepository := notificationRepo.NewRepository(wrappedDB)
	userRepository := userRepo.NewRepository(wrappedDB)

	txMgr := txmanager.NewTransactionManager(wrappedDB)
	timeProvider := &generateSlotsUC.RealTimeProvider{}

	// Инициализируем use cases
	generateSlotsUseCase := generateSlotsUC.NewUseCase(
		courtRepository,
		businessHourRepository,
		timeSlotRepository,
		txMgr,
		metricsCollector,
		log,
	)

	createReservationUseCase := createReservationUC.NewUseCase(
		reservationRepository,
		userRepository,
		courtRepository,
		notificationRepository,
		txMgr,
		metricsCollector,
		createReservationUC.Options{
			DefaultPassword:  cfg.Reservations.DefaultPassword,
			PlaceholderPhone: cfg.Reservations.PlaceholderPhone,
		},
		log,
	)

	cleanExpiredSlotsUseCase := cleanExpiredSlotsUC.NewUseCase(
		timeSlotRepository,
		metricsCollector,
		timeProvider,
		location,
		cfg.Scheduler.RetentionMonths,
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		timeSlotRepository,
		reservationRepository,
		courtRepository,
		txMgr,
		timeProvider,
		location,
		log,
	)

	// Инициализируем сервисы
	reservationSvc := reservationsService.NewService(
		reservationRepository,
		notificationRepository,
		txMgr,
		timeProvider,
		reservationsService.Options{
			AllowReopenCancelled: cfg.Reservations.AllowReopenCancelled,
			Location:             location,
		},
		log,
	)
	businessHourSvc := businessHoursService.NewService(businessHourRepository, txMgr, log)
	courtSvc := courtsService.NewService(courtRepository, log)
	timeSlotSvc := timeSlotsService.NewService(timeSlotRepository, courtRepository, log)
	userSvc := usersService.NewService(userRepository, log)
	notificationSvc := notificationsService.NewService(notificationRepository, log)

	// Инициализируем handlers
	generateSlots := generateSlotsHandler.NewHandler(generateSlotsUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	updateReservationStatus := updateReservationStatusHandler.NewHandler(reservationSvc, log)
	reservations := reservationsHandler.NewHandler(reservationSvc, log)
	timeSlots := timeSlotsHandler.NewHandler(timeSlotSvc, cleanExpiredSlotsUseCase, log)
	operationHours := operationHoursHandler.NewHandler(businessHourSvc, log)
	courts := courtsHandler.NewHandler(courtSvc, log)
	users := usersHandler.NewHandler(userSvc, log)
	notifications := notificationsHandler.NewHandler(notificationSvc, log)

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.Recovery(log))

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api").Subrouter()

	// --- Бронирования ---
	// Создание бронирования ограничено по частоте на клиента
	var createHandler http.Handler = http.HandlerFunc(createReservation.Handle)
	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst, log)
		go limiter.Run(ctx)
		createHandler = limiter.Limit(createHandler)
		log.Info("Rate limit for reservations: rps=%.2f, burst=%d", cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	}
	api.Handle("/reservations", createHandler).Methods(http.MethodPost)
	api.HandleFunc("/reservations/bulk", createReservation.HandleBulk).Methods(http.MethodPost)
	api.HandleFunc("/reservations", reservations.List).Methods(http.MethodGet)
	api.HandleFunc("/reservations/user/{userId}", reservations.GetByUser).Methods(http.MethodGet)
	api.HandleFunc("/reservations/{id}", reservations.Get).Methods(http.MethodGet)
	api.HandleFunc("/reservations/{id}", reservations.Update).Methods(http.MethodPut)
	api.HandleFunc("/reservations/{id}", reservations.Delete).Methods(http.MethodDelete)
	api.HandleFunc("/reservations/{id}/status", updateReservationStatus.Handle).Methods(http.MethodPut)

	// --- Слоты и шаблоны ---
	api.HandleFunc("/time-slots/generate", generateSlots.Handle).Methods(http.MethodPost)
	api.HandleFunc("/time-slots/available", getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/time-slots/cleanup-expired", timeSlots.CleanupExpired).Methods(http.MethodPost)
	api.HandleFunc("/time-slots/clean-non-templates", timeSlots.CleanNonTemplates).Methods(http.MethodDelete)
	api.HandleFunc("/time-slots", timeSlots.List).Methods(http.MethodGet)
	api.HandleFunc("/time-slots", timeSlots.Create).Methods(http.MethodPost)
	api.HandleFunc("/time-slots/{id:[0-9]+}", timeSlots.Get).Methods(http.MethodGet)
	api.HandleFunc("/time-slots/{id:[0-9]+}", timeSlots.Update).Methods(http.MethodPut)
	api.HandleFunc("/time-slots/{id:[0-9]+}", timeSlots.Delete).Methods(http.MethodDelete)

	// --- Рабочие часы ---
	api.HandleFunc("/operationhour", operationHours.GetAll).Methods(http.MethodGet)
	api.HandleFunc("/operationhour", operationHours.Create).Methods(http.MethodPost)
	api.HandleFunc("/operationhour/bulk", operationHours.Bulk).Methods(http.MethodPost)
	api.HandleFunc("/operationhour/{dayOfWeek}", operationHours.GetByDay).Methods(http.MethodGet)
	api.HandleFunc("/operationhour/{dayOfWeek}", operationHours.Update).Methods(http.MethodPut)
	api.HandleFunc("/operationhour/{dayOfWeek}", operationHours.Delete).Methods(http.MethodDelete)

	// --- Корты ---
	api.HandleFunc("/courts", courts.GetAll).Methods(http.MethodGet)
	api.HandleFunc("/courts", courts.Create).Methods(http.MethodPost)
	api.HandleFunc("/courts/{id}", courts.Get).Methods(http.MethodGet)
	api.HandleFunc("/courts/{id}", courts.Update).Methods(http.MethodPut)
	api.HandleFunc("/courts/{id}", courts.Delete).Methods(http.MethodDelete)

	// --- Пользователи ---
	api.HandleFunc("/users", users.Upsert).Methods(http.MethodPost)
	api.HandleFunc("/users", users.GetAll).Methods(http.MethodGet)
	api.HandleFunc("/users/{id}", users.Get).Methods(http.MethodGet)

	// --- Уведомления ---
	api.HandleFunc("/notifications/user/{userId}", notifications.GetByUser).Methods(http.MethodGet)
	api.HandleFunc("/notifications/{id}/read", notifications.MarkAsRead).Methods(http.MethodPut)
	api.HandleFunc("/notifications/{id}", notifications.Delete).Methods(http.MethodDelete)

	// Фоновые задачи
	if cfg.Scheduler.Enabled {
		jobs := scheduler.New(log,
			scheduler.GenerationJob(
				generateSlotsUseCase,
				timeProvider,
				location,
				cfg.Scheduler.DaysToGenerate,
				cfg.Scheduler.GenerationInterval(),
				log,
			),
			scheduler.RetentionJob(cleanExpiredSlotsUseCase, cfg.Scheduler.RetentionInterval(), log),
		)
		go jobs.Start(ctx)
		log.Info("Scheduler started (generation every %s, retention every %s)",
			cfg.Scheduler.GenerationInterval(), cfg.Scheduler.RetentionInterval())
	}

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      middleware.CORS(cfg.CORS.AllowedOrigins)(r),
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

	// Останавливаем планировщик и очистку лимитера
	stop()

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
