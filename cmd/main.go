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

	cancelAppointmentHandler "github.com/jc1971451-arch/paulo-jorge2/internal/api/handlers/cancel_appointment"
	createAppointmentHandler "github.com/jc1971451-arch/paulo-jorge2/internal/api/handlers/create_appointment"
	getAppointmentHandler "github.com/jc1971451-arch/paulo-jorge2/internal/api/handlers/get_appointment"
	getAvailableSlotsHandler "github.com/jc1971451-arch/paulo-jorge2/internal/api/handlers/get_available_slots"
	getBookingRulesHandler "github.com/jc1971451-arch/paulo-jorge2/internal/api/handlers/get_booking_rules"
	getProfessionalAgendaHandler "github.com/jc1971451-arch/paulo-jorge2/internal/api/handlers/get_professional_agenda"
	getUserAppointmentsHandler "github.com/jc1971451-arch/paulo-jorge2/internal/api/handlers/get_user_appointments"
	updateAppointmentStatusHandler "github.com/jc1971451-arch/paulo-jorge2/internal/api/handlers/update_appointment_status"
	updateBookingRulesHandler "github.com/jc1971451-arch/paulo-jorge2/internal/api/handlers/update_booking_rules"
	"github.com/jc1971451-arch/paulo-jorge2/internal/api/middleware"
	"github.com/jc1971451-arch/paulo-jorge2/internal/config"
	appointmentRepo "github.com/jc1971451-arch/paulo-jorge2/internal/infra/storage/appointment"
	rulesRepo "github.com/jc1971451-arch/paulo-jorge2/internal/infra/storage/rules"
	directoryClient "github.com/jc1971451-arch/paulo-jorge2/internal/integrations/directory"
	appointmentsService "github.com/jc1971451-arch/paulo-jorge2/internal/service/appointments"
	rulesService "github.com/jc1971451-arch/paulo-jorge2/internal/service/rules"
	createAppointmentUC "github.com/jc1971451-arch/paulo-jorge2/internal/usecase/create_appointment"
	getAvailableSlotsUC "github.com/jc1971451-arch/paulo-jorge2/internal/usecase/get_available_slots"
	"github.com/jc1971451-arch/paulo-jorge2/pkg/dbmetrics"
	"github.com/jc1971451-arch/paulo-jorge2/pkg/logger"
	"github.com/jc1971451-arch/paulo-jorge2/pkg/metrics"
	"github.com/jc1971451-arch/paulo-jorge2/pkg/simpletxmanager"
	"github.com/jc1971451-arch/paulo-jorge2/pkg/txmanager"
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

	log.Info("Starting AppointmentService...")
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

	// Инициализируем клиент справочника салона
	directory := directoryClient.NewClient(
		cfg.Directory.URL,
		time.Duration(cfg.Directory.Timeout)*time.Second,
		log,
	)
	log.Info("Directory client initialized (url=%s, timeout=%ds)",
		cfg.Directory.URL, cfg.Directory.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		appointmentRepository *appointmentRepo.Repository
		rulesRepository       *rulesRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		appointmentRepository = appointmentRepo.NewRepository(wrappedDB)
		rulesRepository = rulesRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		appointmentRepository = appointmentRepo.NewRepository(db)
		rulesRepository = rulesRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	appointmentsSvc := appointmentsService.NewService(
		appointmentRepository,
		rulesRepository,
		directory,
		log,
	)
	rulesSvc := rulesService.NewService(
		rulesRepository,
		directory,
		log,
	)

	// Инициализируем use cases
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		rulesRepository,
		directory,
		txMgr,
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		appointmentRepository,
		rulesRepository,
		directory,
		log,
	)

	// Инициализируем handlers
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentsSvc, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(appointmentsSvc, log)
	updateAppointmentStatus := updateAppointmentStatusHandler.NewHandler(appointmentsSvc, log)
	getUserAppointments := getUserAppointmentsHandler.NewHandler(appointmentsSvc, log)
	getProfessionalAgenda := getProfessionalAgendaHandler.NewHandler(appointmentsSvc, log)
	getBookingRules := getBookingRulesHandler.NewHandler(rulesSvc, log)
	updateBookingRules := updateBookingRulesHandler.NewHandler(rulesSvc, log)

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
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Получение доступных слотов мастера
	api.HandleFunc("/professionals/{professionalId}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)

	// Получение правил бронирования салона
	api.HandleFunc("/rules", getBookingRules.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Записи ---
	// Создание записи
	protected.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)

	// Получение записи по ID
	protected.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)

	// Отмена записи
	protected.HandleFunc("/appointments/{appointmentId}/cancel", cancelAppointment.Handle).Methods(http.MethodPatch)

	// Смена статуса записи (завершение сотрудником)
	protected.HandleFunc("/appointments/{appointmentId}/status", updateAppointmentStatus.Handle).Methods(http.MethodPatch)

	// История записей пользователя
	protected.HandleFunc("/users/{userId}/appointments", getUserAppointments.Handle).Methods(http.MethodGet)

	// --- Расписание мастера (для сотрудников) ---
	protected.HandleFunc("/professionals/{professionalId}/agenda", getProfessionalAgenda.Handle).Methods(http.MethodGet)

	// --- Управление правилами (для админов) ---
	protected.HandleFunc("/rules", updateBookingRules.Handle).Methods(http.MethodPut)

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
