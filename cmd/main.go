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
	"github.com/patrickmn/go-cache"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	cancelReservationHandler "github.com/m04kA/SMC-LaundryService/internal/api/handlers/cancel_reservation"
	createReservationHandler "github.com/m04kA/SMC-LaundryService/internal/api/handlers/create_reservation"
	getScheduleHandler "github.com/m04kA/SMC-LaundryService/internal/api/handlers/get_schedule"
	listReservationsHandler "github.com/m04kA/SMC-LaundryService/internal/api/handlers/list_reservations"
	"github.com/m04kA/SMC-LaundryService/internal/api/middleware"
	"github.com/m04kA/SMC-LaundryService/internal/config"
	reservationStorage "github.com/m04kA/SMC-LaundryService/internal/infra/storage/reservation"
	reservationsService "github.com/m04kA/SMC-LaundryService/internal/service/reservations"
	cancelReservationUC "github.com/m04kA/SMC-LaundryService/internal/usecase/cancel_reservation"
	createReservationUC "github.com/m04kA/SMC-LaundryService/internal/usecase/create_reservation"
	getScheduleUC "github.com/m04kA/SMC-LaundryService/internal/usecase/get_schedule"
	"github.com/m04kA/SMC-LaundryService/migrations"
	"github.com/m04kA/SMC-LaundryService/pkg/logger"
	"github.com/m04kA/SMC-LaundryService/pkg/metrics"
	"github.com/m04kA/SMC-LaundryService/pkg/txmanager"
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

	log.Info("Starting SMC-LaundryService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var storeObserver reservationStorage.Observer
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		storeObserver = metricsCollector
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Инициализируем хранилище резерваций
	var store reservationStorage.Store

	switch cfg.Storage.Backend {
	case config.BackendPostgres:
		db, err := sql.Open("postgres", cfg.Storage.Postgres.DSN())
		if err != nil {
			log.Fatal("Failed to connect to database: %v", err)
		}

		// Настраиваем connection pool
		db.SetMaxOpenConns(cfg.Storage.Postgres.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Storage.Postgres.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Storage.Postgres.ConnMaxLifetime) * time.Second)

		if err := db.Ping(); err != nil {
			log.Fatal("Failed to ping database: %v", err)
		}
		log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
			cfg.Storage.Postgres.Host, cfg.Storage.Postgres.Port, cfg.Storage.Postgres.DBName)

		// Применяем миграции
		if err := migrations.Up(context.Background(), db); err != nil {
			log.Fatal("Failed to apply migrations: %v", err)
		}
		log.Info("Database migrations applied")

		txMgr := txmanager.NewTransactionManager(db)
		store = reservationStorage.NewRepository(db, txMgr, storeObserver)

	case config.BackendFile:
		fileStore, err := reservationStorage.NewFileStore(cfg.Storage.File.Path, storeObserver)
		if err != nil {
			// Повреждённый файл не повод молча начинать с пустого
			// состояния: останавливаемся и ждём оператора.
			log.Fatal("Failed to open reservation file %s: %v", cfg.Storage.File.Path, err)
		}
		store = fileStore
		log.Info("Reservation file store opened at %s", cfg.Storage.File.Path)

	default:
		log.Fatal("Unknown storage backend: %s", cfg.Storage.Backend)
	}
	defer store.Close()

	// Инициализируем сервисы
	reservationSvc := reservationsService.NewService(store, log)

	// Инициализируем use cases
	createReservationUseCase := createReservationUC.NewUseCase(store, log)
	cancelReservationUseCase := cancelReservationUC.NewUseCase(store, log)
	getScheduleUseCase := getScheduleUC.NewUseCase(store, log)

	// Инициализируем handlers
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	cancelReservation := cancelReservationHandler.NewHandler(cancelReservationUseCase, log)
	getSchedule := getScheduleHandler.NewHandler(getScheduleUseCase, log)
	listReservations := listReservationsHandler.NewHandler(reservationSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")
	}

	// Ограничение частоты запросов по IP (если включено)
	if cfg.RateLimit.Enabled {
		r.Use(middleware.RateLimit(rate.Limit(cfg.RateLimit.RPS), cfg.RateLimit.Burst))
		log.Info("Rate limiting enabled (rps=%.1f, burst=%d)", cfg.RateLimit.RPS, cfg.RateLimit.Burst)
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

	public := api.PathPrefix("").Subrouter()

	// Кэш GET-ответов (если включен)
	if cfg.Cache.Enabled {
		ttl := time.Duration(cfg.Cache.TTLSeconds) * time.Second
		responseCache := cache.New(ttl, 2*ttl)
		public.Use(middleware.Cache(responseCache, ttl))
		log.Info("GET response cache enabled (ttl=%ds)", cfg.Cache.TTLSeconds)
	}

	// Двухнедельная сетка доступности
	public.HandleFunc("/schedule", getSchedule.Handle).Methods(http.MethodGet)

	// Список резерваций с фильтрами
	public.HandleFunc("/reservations", listReservations.Handle).Methods(http.MethodGet)

	// Создание резервации
	api.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют X-Admin-Token header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.AdminAuth(cfg.Admin.Token))

	// Отмена резервации
	protected.HandleFunc("/reservations", cancelReservation.Handle).Methods(http.MethodDelete)

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

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped")
}
