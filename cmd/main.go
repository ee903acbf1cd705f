package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	assignTablesHandler "github.com/restoh/ReservationService/internal/api/handlers/assign_tables"
	cancelReservationHandler "github.com/restoh/ReservationService/internal/api/handlers/cancel_reservation"
	createReservationHandler "github.com/restoh/ReservationService/internal/api/handlers/create_reservation"
	getReservationHandler "github.com/restoh/ReservationService/internal/api/handlers/get_reservation"
	getSlotsHandler "github.com/restoh/ReservationService/internal/api/handlers/get_slots"
	getStatsHandler "github.com/restoh/ReservationService/internal/api/handlers/get_stats"
	listReservationsHandler "github.com/restoh/ReservationService/internal/api/handlers/list_reservations"
	suggestTablesHandler "github.com/restoh/ReservationService/internal/api/handlers/suggest_tables"
	updateReservationHandler "github.com/restoh/ReservationService/internal/api/handlers/update_reservation"
	updateStatusHandler "github.com/restoh/ReservationService/internal/api/handlers/update_status"
	"github.com/restoh/ReservationService/internal/api/middleware"
	"github.com/restoh/ReservationService/internal/config"
	"github.com/restoh/ReservationService/internal/infra/registry"
	storeClient "github.com/restoh/ReservationService/internal/integrations/reservationstore"
	reservationsService "github.com/restoh/ReservationService/internal/service/reservations"
	createReservationUC "github.com/restoh/ReservationService/internal/usecase/create_reservation"
	suggestTablesUC "github.com/restoh/ReservationService/internal/usecase/suggest_tables"
	updateReservationUC "github.com/restoh/ReservationService/internal/usecase/update_reservation"
	"github.com/restoh/ReservationService/pkg/logger"
	"github.com/restoh/ReservationService/pkg/metrics"
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

	log.Info("Starting ReservationService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Каталог слотов и план зала - статические данные конфигурации
	catalog := cfg.SlotCatalog()
	plan := cfg.FloorPlan()
	policy := cfg.BookingPolicy()
	log.Info("Floor plan loaded: %d table(s), %d slot(s) per day", plan.TotalTables(), catalog.SlotsPerDay())

	// Клиент хранилища бронирований
	store := storeClient.NewClient(
		cfg.ReservationStore.URL,
		time.Duration(cfg.ReservationStore.Timeout)*time.Second,
		log,
	)
	if cfg.Metrics.Enabled {
		store = store.WithMetrics(metricsCollector)
	}
	log.Info("Reservation store client initialized (url=%s, timeout=%ds)",
		cfg.ReservationStore.URL, cfg.ReservationStore.Timeout)

	// In-memory коллекция бронирований
	reg := registry.New()

	// Сервис и use cases
	reservationSvc := reservationsService.NewService(store, reg, catalog, plan, policy, log)
	if cfg.Metrics.Enabled {
		reservationSvc = reservationSvc.WithMetrics(metricsCollector)
	}

	createReservationUseCase := createReservationUC.NewUseCase(store, reg, catalog, plan, policy, log)
	updateReservationUseCase := updateReservationUC.NewUseCase(store, reg, catalog, plan, policy, log)
	suggestTablesUseCase := suggestTablesUC.NewUseCase(store, reg, catalog, plan, policy, log)

	// Инициализируем handlers
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	listReservations := listReservationsHandler.NewHandler(reservationSvc, log)
	getReservation := getReservationHandler.NewHandler(reservationSvc, log)
	updateReservation := updateReservationHandler.NewHandler(updateReservationUseCase, log)
	cancelReservation := cancelReservationHandler.NewHandler(reservationSvc, log)
	updateStatus := updateStatusHandler.NewHandler(reservationSvc, log)
	assignTables := assignTablesHandler.NewHandler(reservationSvc, log)
	getStats := getStatsHandler.NewHandler(reservationSvc, log)
	suggestTables := suggestTablesHandler.NewHandler(suggestTablesUseCase, log)
	getSlots := getSlotsHandler.NewHandler(catalog)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.Use(middleware.RequestID)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Каталог временных слотов
	api.HandleFunc("/slots", getSlots.Handle).Methods(http.MethodGet)

	// Свободные столики и рекомендация под размер группы
	api.HandleFunc("/tables/available", suggestTables.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// Создание бронирования
	protected.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)

	// Список бронирований с фильтрами
	protected.HandleFunc("/reservations", listReservations.Handle).Methods(http.MethodGet)

	// Сводная статистика (только администратор).
	// Регистрируется раньше /reservations/{id}, иначе "stats" прочитался бы как id.
	protected.Handle("/reservations/stats",
		middleware.RequireAdmin(http.HandlerFunc(getStats.Handle))).Methods(http.MethodGet)

	// Получение бронирования по ID
	protected.HandleFunc("/reservations/{id}", getReservation.Handle).Methods(http.MethodGet)

	// Изменение бронирования
	protected.HandleFunc("/reservations/{id}", updateReservation.Handle).Methods(http.MethodPut)

	// Отмена бронирования
	protected.HandleFunc("/reservations/{id}/cancel", cancelReservation.Handle).Methods(http.MethodPatch)

	// ============================================================
	// ADMIN ROUTES (требуют X-User-Role: admin)
	// ============================================================

	admin := protected.PathPrefix("").Subrouter()
	admin.Use(middleware.RequireAdmin)

	// Смена статуса бронирования
	admin.HandleFunc("/reservations/{id}/status", updateStatus.Handle).Methods(http.MethodPatch)

	// Назначение столиков
	admin.HandleFunc("/reservations/{id}/tables", assignTables.Handle).Methods(http.MethodPatch)

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

	// Прогреваем коллекцию бронирований, не блокируя старт сервера
	go func() {
		warmupCtx, cancel := context.WithTimeout(
			context.Background(),
			time.Duration(cfg.ReservationStore.Timeout)*time.Second,
		)
		defer cancel()

		if err := reservationSvc.Refresh(warmupCtx, false); err != nil {
			log.Warn("Initial reservation load failed, collection will load lazily: %v", err)
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

	log.Info("Server stopped gracefully")
}
