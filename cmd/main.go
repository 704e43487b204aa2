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

	bookSlotHandler "github.com/jporcarn/dralia/internal/api/handlers/book_slot"
	getWeeklySlotsHandler "github.com/jporcarn/dralia/internal/api/handlers/get_weekly_slots"
	healthHandler "github.com/jporcarn/dralia/internal/api/handlers/health"
	listBookingAttemptsHandler "github.com/jporcarn/dralia/internal/api/handlers/list_booking_attempts"
	"github.com/jporcarn/dralia/internal/api/middleware"
	"github.com/jporcarn/dralia/internal/config"
	bookingLogRepo "github.com/jporcarn/dralia/internal/infra/storage/bookinglog"
	slotServiceClient "github.com/jporcarn/dralia/internal/integrations/slotservice"
	bookSlotUC "github.com/jporcarn/dralia/internal/usecase/book_slot"
	getWeeklySlotsUC "github.com/jporcarn/dralia/internal/usecase/get_weekly_slots"
	"github.com/jporcarn/dralia/pkg/dbmetrics"
	"github.com/jporcarn/dralia/pkg/logger"
	"github.com/jporcarn/dralia/pkg/metrics"
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

	log.Info("Starting dralia slot service...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Часовой пояс учреждения: рабочие часы апстрима заданы в гражданском
	// времени именно этого пояса
	facilityLoc, err := time.LoadLocation(cfg.SlotService.FacilityTimezone)
	if err != nil {
		log.Fatal("Failed to load facility timezone %q: %v", cfg.SlotService.FacilityTimezone, err)
	}
	log.Info("Facility timezone: %s", cfg.SlotService.FacilityTimezone)

	// Инициализируем клиента внешнего сервиса доступности
	var integrationMetrics slotServiceClient.MetricsObserver
	if cfg.Metrics.Enabled {
		integrationMetrics = metricsCollector
	}
	slotClient := slotServiceClient.NewClient(
		cfg.SlotService.URL,
		cfg.SlotService.Username,
		cfg.SlotService.Password,
		time.Duration(cfg.SlotService.Timeout)*time.Second,
		log,
		integrationMetrics,
	)
	log.Info("Slot service client initialized (URL=%s timeout=%ds)",
		cfg.SlotService.URL, cfg.SlotService.Timeout)

	// Журнал попыток бронирования (опционально)
	var recorder bookSlotUC.AttemptRecorder = bookSlotUC.NoopRecorder{}
	var attemptLog *bookingLogRepo.Repository

	if cfg.AuditLog.Enabled {
		db, err := sql.Open("postgres", cfg.AuditLog.DSN())
		if err != nil {
			log.Fatal("Failed to connect to audit database: %v", err)
		}
		defer db.Close()

		// Настраиваем connection pool
		db.SetMaxOpenConns(cfg.AuditLog.MaxOpenConns)
		db.SetMaxIdleConns(cfg.AuditLog.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.AuditLog.ConnMaxLifetime) * time.Second)

		// Проверяем соединение
		if err := db.Ping(); err != nil {
			log.Fatal("Failed to ping audit database: %v", err)
		}
		log.Info("Successfully connected to audit database (host=%s, port=%d, db=%s)",
			cfg.AuditLog.Host, cfg.AuditLog.Port, cfg.AuditLog.DBName)

		if cfg.Metrics.Enabled {
			wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
			attemptLog = bookingLogRepo.NewRepository(wrappedDB)
			log.Info("Database metrics collection started")
		} else {
			attemptLog = bookingLogRepo.NewRepository(db)
		}
		recorder = attemptLog
	} else {
		log.Info("Audit log disabled, booking attempts will not be recorded")
	}

	// Инициализируем use cases
	getWeeklySlotsUseCase := getWeeklySlotsUC.NewUseCase(slotClient, facilityLoc, log)
	bookSlotUseCase := bookSlotUC.NewUseCase(
		getWeeklySlotsUseCase,
		slotClient,
		recorder,
		log,
	)

	// Инициализируем handlers
	getWeeklySlots := getWeeklySlotsHandler.NewHandler(getWeeklySlotsUseCase, log)
	bookSlot := bookSlotHandler.NewHandler(bookSlotUseCase, getWeeklySlotsUseCase, log)
	health := healthHandler.NewHandler(slotClient, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// Недельная сетка слотов: /slot?year=&week=
	r.HandleFunc("/slot", getWeeklySlots.Handle).Methods(http.MethodGet)

	// Бронирование слота по моменту начала
	r.HandleFunc("/slot/{startDate}/book", bookSlot.Handle).Methods(http.MethodPut)

	// Служебная выборка журнала попыток (только при включенном auditlog)
	if attemptLog != nil {
		listBookingAttempts := listBookingAttemptsHandler.NewHandler(attemptLog, log)
		r.HandleFunc("/booking-attempts", listBookingAttempts.Handle).Methods(http.MethodGet)
		log.Info("Booking attempts endpoint exposed at /booking-attempts")
	}

	// Health check (проба апстрима)
	r.HandleFunc("/health", health.Handle).Methods(http.MethodGet)

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
