package cli

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-AvailabilityService/internal/api"
	cancelReservationHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/cancel_reservation"
	getAvailableRoomsHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/get_available_rooms"
	getDashboardCalendarHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/get_dashboard_calendar"
	getDashboardMetricsHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/get_dashboard_metrics"
	getReservationHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/get_reservation"
	getReservationsByDateHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/get_reservations_by_date"
	getRestaurantAvailabilityHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/get_restaurant_availability"
	getRestaurantSettingsHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/get_restaurant_settings"
	getRoomHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/get_room"
	getStayQuoteHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/get_stay_quote"
	"github.com/m04kA/SMC-AvailabilityService/internal/config"
	settingsCache "github.com/m04kA/SMC-AvailabilityService/internal/infra/cache/settings"
	reservationRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/reservation"
	restaurantRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/restaurant"
	roomRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/room"
	reservationsService "github.com/m04kA/SMC-AvailabilityService/internal/service/reservations"
	roomsService "github.com/m04kA/SMC-AvailabilityService/internal/service/rooms"
	settingsService "github.com/m04kA/SMC-AvailabilityService/internal/service/settings"
	getAvailableRoomsUC "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_available_rooms"
	getDashboardCalendarUC "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_dashboard_calendar"
	getDashboardMetricsUC "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_dashboard_metrics"
	getRestaurantAvailabilityUC "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_restaurant_availability"
	getStayQuoteUC "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_stay_quote"
	"github.com/m04kA/SMC-AvailabilityService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AvailabilityService/pkg/logger"
	"github.com/m04kA/SMC-AvailabilityService/pkg/metrics"
	"github.com/m04kA/SMC-AvailabilityService/pkg/txmanager"
)

// NewServeCmd запускает HTTP сервер
func NewServeCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context(), *configPath)
		},
	}
}

func serve(ctx context.Context, configPath string) error {
	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer log.Close()

	log.Info("Starting SMC-AvailabilityService...")
	log.Info("Configuration loaded from %s", configPath)

	// Цены отдаются числами, а не строками
	decimal.MarshalJSONWithoutQuotes = true

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})
	defer close(stopMetricsCh)

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := openDB(cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Репозитории работают с обёрткой метрик или напрямую с *sql.DB
	var (
		executor   dbmetrics.DBExecutor
		txBeginner txmanager.Beginner
	)
	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		executor = wrappedDB
		txBeginner = wrappedDB
		log.Info("Database metrics collection started")
	} else {
		executor = db
		txBeginner = txmanager.SQLBeginner{DB: db}
	}

	reservationRepository := reservationRepo.NewRepository(executor)
	restaurantRepository := restaurantRepo.NewRepository(executor)
	roomRepository := roomRepo.NewRepository(executor)
	txMgr := txmanager.NewTransactionManager(txBeginner)

	// Кэш настроек ресторана (Redis опционален)
	redisClient, err := openRedis(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	var cacheClient redis.UniversalClient
	if redisClient != nil {
		defer redisClient.Close()
		cacheClient = redisClient
		log.Info("Redis connected, settings cache ttl=%ds", cfg.Cache.SettingsTTL)
	} else {
		log.Info("Redis not configured, settings cache disabled")
	}

	settings := settingsCache.New(
		restaurantRepository,
		cacheClient,
		time.Duration(cfg.Cache.SettingsTTL)*time.Second,
		metricsCollector,
		log,
	)

	// Инициализируем сервисы
	reservationSvc := reservationsService.NewService(reservationRepository, txMgr, log)
	roomSvc := roomsService.NewService(roomRepository, log)
	settingsSvc := settingsService.NewService(settings, settings, log)

	// Инициализируем use cases
	availableRoomsUseCase := getAvailableRoomsUC.NewUseCase(roomRepository, reservationRepository, log)
	stayQuoteUseCase := getStayQuoteUC.NewUseCase(roomRepository, cfg.Pricing.TaxPerNightDecimal(), log)
	availabilityUseCase := getRestaurantAvailabilityUC.NewUseCase(settings, reservationRepository, metricsCollector, log)
	dashboardMetricsUseCase := getDashboardMetricsUC.NewUseCase(settings, reservationRepository, log)
	dashboardCalendarUseCase := getDashboardCalendarUC.NewUseCase(reservationRepository, log)

	// Инициализируем handlers и роутер
	router := api.NewRouter(api.Handlers{
		AvailableRooms:         getAvailableRoomsHandler.NewHandler(availableRoomsUseCase, log),
		Room:                   getRoomHandler.NewHandler(roomSvc, log),
		StayQuote:              getStayQuoteHandler.NewHandler(stayQuoteUseCase, log),
		RestaurantAvailability: getRestaurantAvailabilityHandler.NewHandler(availabilityUseCase, log),
		RestaurantSettings:     getRestaurantSettingsHandler.NewHandler(settingsSvc, log),
		DashboardMetrics:       getDashboardMetricsHandler.NewHandler(dashboardMetricsUseCase, log),
		DashboardCalendar:      getDashboardCalendarHandler.NewHandler(dashboardCalendarUseCase, log),
		ReservationsByDate:     getReservationsByDateHandler.NewHandler(reservationSvc, log),
		Reservation:            getReservationHandler.NewHandler(reservationSvc, log),
		CancelReservation:      cancelReservationHandler.NewHandler(reservationSvc, log),
	}, api.RouterOptions{
		Metrics:     metricsCollector,
		MetricsPath: cfg.Metrics.Path,
		Logger:      log,
	})

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-quit:
	case err := <-serverErr:
		return fmt.Errorf("server failed to start: %w", err)
	}

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
	return nil
}

// openDB открывает пул соединений и проверяет доступность базы
func openDB(cfg config.DatabaseConfig) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return db, nil
}

// openRedis подключается к Redis; пустой URL - кэш выключен, клиент nil
func openRedis(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	if cfg.URL == "" {
		return nil, nil
	}

	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}
	return client, nil
}
