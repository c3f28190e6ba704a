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

	bookAppointmentHandler "github.com/m04kA/Salon-BookingService/internal/api/handlers/book_appointment"
	cancelBookingHandler "github.com/m04kA/Salon-BookingService/internal/api/handlers/cancel_booking"
	getAvailableTimesHandler "github.com/m04kA/Salon-BookingService/internal/api/handlers/get_available_times"
	getBookingHandler "github.com/m04kA/Salon-BookingService/internal/api/handlers/get_booking"
	getMonthScheduleHandler "github.com/m04kA/Salon-BookingService/internal/api/handlers/get_month_schedule"
	getWeekScheduleHandler "github.com/m04kA/Salon-BookingService/internal/api/handlers/get_week_schedule"
	rebookBookingHandler "github.com/m04kA/Salon-BookingService/internal/api/handlers/rebook_booking"
	"github.com/m04kA/Salon-BookingService/internal/api/middleware"
	"github.com/m04kA/Salon-BookingService/internal/config"
	"github.com/m04kA/Salon-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/Salon-BookingService/internal/infra/storage/booking"
	treatmentRepo "github.com/m04kA/Salon-BookingService/internal/infra/storage/treatment"
	userRepo "github.com/m04kA/Salon-BookingService/internal/infra/storage/user"
	bookingsService "github.com/m04kA/Salon-BookingService/internal/service/bookings"
	bookAppointmentUC "github.com/m04kA/Salon-BookingService/internal/usecase/book_appointment"
	getAvailableTimesUC "github.com/m04kA/Salon-BookingService/internal/usecase/get_available_times"
	rebookBookingUC "github.com/m04kA/Salon-BookingService/internal/usecase/rebook_booking"
	"github.com/m04kA/Salon-BookingService/pkg/dbmetrics"
	"github.com/m04kA/Salon-BookingService/pkg/logger"
	"github.com/m04kA/Salon-BookingService/pkg/metrics"
	"github.com/m04kA/Salon-BookingService/pkg/simpletxmanager"
	"github.com/m04kA/Salon-BookingService/pkg/txmanager"
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

	log.Info("Starting Salon-BookingService...")
	log.Info("Configuration loaded from config.toml")

	// Рабочие часы салона
	workDay := domain.DefaultWorkDay()
	if cfg.Schedule.WorkDayStart != "" && cfg.Schedule.WorkDayEnd != "" {
		workDay, err = domain.ParseWorkDay(cfg.Schedule.WorkDayStart, cfg.Schedule.WorkDayEnd)
		if err != nil {
			log.Fatal("Invalid schedule config: %v", err)
		}
	}
	log.Info("Working hours: %s - %s", cfg.Schedule.WorkDayStart, cfg.Schedule.WorkDayEnd)

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

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository   *bookingRepo.Repository
		userRepository      *userRepo.Repository
		treatmentRepository *treatmentRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases и сервисе)
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		userRepository = userRepo.NewRepository(wrappedDB)
		treatmentRepository = treatmentRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		userRepository = userRepo.NewRepository(db)
		treatmentRepository = treatmentRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервис
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		userRepository,
		txMgr,
		log,
	)

	// Инициализируем use cases
	getAvailableTimesUseCase := getAvailableTimesUC.NewUseCase(
		bookingRepository,
		userRepository,
		treatmentRepository,
		workDay,
		log,
	)

	bookAppointmentUseCase := bookAppointmentUC.NewUseCase(
		bookingRepository,
		userRepository,
		treatmentRepository,
		txMgr,
		workDay,
		log,
	)

	rebookBookingUseCase := rebookBookingUC.NewUseCase(
		bookingRepository,
		treatmentRepository,
		txMgr,
		workDay,
		log,
	)

	// Инициализируем handlers
	getAvailableTimes := getAvailableTimesHandler.NewHandler(getAvailableTimesUseCase, log)
	bookAppointment := bookAppointmentHandler.NewHandler(bookAppointmentUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	rebookBooking := rebookBookingHandler.NewHandler(rebookBookingUseCase, log)
	getWeekSchedule := getWeekScheduleHandler.NewHandler(bookingSvc, log)
	getMonthSchedule := getMonthScheduleHandler.NewHandler(bookingSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")

		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Свободные времена для записи к парикмахеру
	api.HandleFunc("/hairdressers/{hairdresserId}/available-times",
		getAvailableTimes.Handle).Methods(http.MethodGet)

	// Расписание парикмахера на неделю
	api.HandleFunc("/hairdressers/{hairdresserId}/schedule/week",
		getWeekSchedule.Handle).Methods(http.MethodGet)

	// Расписание парикмахера на месяц
	api.HandleFunc("/hairdressers/{hairdresserId}/schedule/month",
		getMonthSchedule.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// Создание бронирования
	protected.HandleFunc("/bookings", bookAppointment.Handle).Methods(http.MethodPost)

	// Получение бронирования по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Отмена бронирования (строка удаляется)
	protected.HandleFunc("/bookings/{bookingId}", cancelBooking.Handle).Methods(http.MethodDelete)

	// Перенос бронирования на новый интервал
	protected.HandleFunc("/bookings/{bookingId}", rebookBooking.Handle).Methods(http.MethodPut)

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
