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
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	cancelCheckinHandler "github.com/m04kA/PawsCheckinService/internal/api/handlers/cancel_checkin"
	deselectAddonHandler "github.com/m04kA/PawsCheckinService/internal/api/handlers/deselect_addon"
	getCheckinHandler "github.com/m04kA/PawsCheckinService/internal/api/handlers/get_checkin"
	getCompanyDogsHandler "github.com/m04kA/PawsCheckinService/internal/api/handlers/get_company_dogs"
	getCurrentGuestsHandler "github.com/m04kA/PawsCheckinService/internal/api/handlers/get_current_guests"
	getServiceTypesHandler "github.com/m04kA/PawsCheckinService/internal/api/handlers/get_service_types"
	getTodaysRevenueHandler "github.com/m04kA/PawsCheckinService/internal/api/handlers/get_todays_revenue"
	quotePricingHandler "github.com/m04kA/PawsCheckinService/internal/api/handlers/quote_pricing"
	selectAddonHandler "github.com/m04kA/PawsCheckinService/internal/api/handlers/select_addon"
	startCheckinHandler "github.com/m04kA/PawsCheckinService/internal/api/handlers/start_checkin"
	submitCheckinHandler "github.com/m04kA/PawsCheckinService/internal/api/handlers/submit_checkin"
	updateCheckinHandler "github.com/m04kA/PawsCheckinService/internal/api/handlers/update_checkin"
	"github.com/m04kA/PawsCheckinService/internal/api/middleware"
	"github.com/m04kA/PawsCheckinService/internal/config"
	catalogCache "github.com/m04kA/PawsCheckinService/internal/infra/cache/catalog"
	catalogRepo "github.com/m04kA/PawsCheckinService/internal/infra/storage/catalog"
	checkinRepo "github.com/m04kA/PawsCheckinService/internal/infra/storage/checkin"
	petAPIClient "github.com/m04kA/PawsCheckinService/internal/integrations/petapi"
	"github.com/m04kA/PawsCheckinService/internal/pricing"
	catalogService "github.com/m04kA/PawsCheckinService/internal/service/catalog"
	checkinService "github.com/m04kA/PawsCheckinService/internal/service/checkin"
	dashboardService "github.com/m04kA/PawsCheckinService/internal/service/dashboard"
	quotePricingUC "github.com/m04kA/PawsCheckinService/internal/usecase/quote_pricing"
	submitCheckinUC "github.com/m04kA/PawsCheckinService/internal/usecase/submit_checkin"
	"github.com/m04kA/PawsCheckinService/pkg/logger"
	"github.com/m04kA/PawsCheckinService/pkg/metrics"
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

	log.Info("Starting PawsCheckinService...")
	log.Info("Configuration loaded from config.toml (env=%s)", cfg.Env)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Клиент внешнего graph API
	petClient := petAPIClient.NewClient(
		cfg.PetAPI.URL,
		cfg.PetAPI.Token,
		time.Duration(cfg.PetAPI.Timeout)*time.Second,
		log,
	)
	log.Info("Pet API client initialized (url=%s, timeout=%ds)", cfg.PetAPI.URL, cfg.PetAPI.Timeout)

	// Источник каталога: внешний API или зеркало в postgres
	var catalogSource catalogService.Source = petClient
	if cfg.Catalog.Source == config.CatalogSourcePostgres {
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
		log.Info("Successfully connected to catalog mirror (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

		if cfg.Metrics.Enabled {
			prometheus.MustRegister(collectors.NewDBStatsCollector(db, cfg.Database.DBName))
			log.Info("Database pool metrics collection started")
		}

		catalogSource = catalogRepo.NewRepository(db)
	}

	// Кэш каталога в redis (если включен)
	var cache catalogService.Cache
	if cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()

		pingCtx, pingCancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := redisClient.Ping(pingCtx).Err(); err != nil {
			log.Warn("Redis is not reachable at %s, catalog cache will fall through: %v", cfg.Redis.Addr(), err)
		}
		pingCancel()

		cache = catalogCache.NewCache(redisClient, time.Duration(cfg.Catalog.CacheTTL)*time.Second)
		log.Info("Catalog cache enabled (redis=%s, ttl=%ds)", cfg.Redis.Addr(), cfg.Catalog.CacheTTL)
	}

	// Загружаем часовой пояс дашборда
	location, err := cfg.Dashboard.Location()
	if err != nil {
		log.Fatal("Failed to load dashboard timezone: %v", err)
	}

	// Инициализируем репозитории и сервисы
	sessionRepository := checkinRepo.NewRepository()
	composer := pricing.NewComposer(cfg.Checkin.NightLocale)

	catalogSvc := catalogService.NewService(catalogSource, cache, metricsCollector, log)
	checkinSvc := checkinService.NewService(
		sessionRepository,
		catalogSvc,
		petClient,
		composer,
		metricsCollector,
		log,
	)
	dashboardSvc := dashboardService.NewService(petClient, location, log)

	// Инициализируем use cases
	submitCheckinUseCase := submitCheckinUC.NewUseCase(
		sessionRepository,
		catalogSvc,
		petClient,
		composer,
		metricsCollector,
		log,
	)
	quotePricingUseCase := quotePricingUC.NewUseCase(catalogSvc, composer, log)

	// Фоновая очистка брошенных сессий
	sweeperCtx, stopSweeper := context.WithCancel(context.Background())
	defer stopSweeper()

	sweeper := checkinService.NewSweeper(
		sessionRepository,
		time.Duration(cfg.Checkin.SessionTTL)*time.Minute,
		time.Duration(cfg.Checkin.SweepInterval)*time.Second,
		metricsCollector,
		log,
	)
	go sweeper.Run(sweeperCtx)

	// Инициализируем handlers
	getServiceTypes := getServiceTypesHandler.NewHandler(catalogSvc, log)
	quotePricing := quotePricingHandler.NewHandler(quotePricingUseCase, log)
	startCheckin := startCheckinHandler.NewHandler(checkinSvc, log)
	getCheckin := getCheckinHandler.NewHandler(checkinSvc, log)
	getCompanyDogs := getCompanyDogsHandler.NewHandler(checkinSvc, log)
	updateCheckin := updateCheckinHandler.NewHandler(checkinSvc, log)
	selectAddon := selectAddonHandler.NewHandler(checkinSvc, log)
	deselectAddon := deselectAddonHandler.NewHandler(checkinSvc, log)
	submitCheckin := submitCheckinHandler.NewHandler(submitCheckinUseCase, log)
	cancelCheckin := cancelCheckinHandler.NewHandler(checkinSvc, log)
	getCurrentGuests := getCurrentGuestsHandler.NewHandler(dashboardSvc, log)
	getTodaysRevenue := getTodaysRevenueHandler.NewHandler(dashboardSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		// Metrics endpoint (публичный, без аутентификации)
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Типы услуг, доступные для оформления
	api.HandleFunc("/companies/{companyId}/service-types", getServiceTypes.Handle).Methods(http.MethodGet)

	// Расчет стоимости вне сессии
	api.HandleFunc("/companies/{companyId}/quotes", quotePricing.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют Authorization: Bearer)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Оформление заезда ---
	protected.HandleFunc("/companies/{companyId}/dogs", getCompanyDogs.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/companies/{companyId}/checkins", startCheckin.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/checkins/{checkinId}", getCheckin.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/checkins/{checkinId}", updateCheckin.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/checkins/{checkinId}", cancelCheckin.Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/checkins/{checkinId}/addons/{serviceId}", selectAddon.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/checkins/{checkinId}/addons/{serviceId}", deselectAddon.Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/checkins/{checkinId}/submit", submitCheckin.Handle).Methods(http.MethodPost)

	// --- Дашборд ---
	protected.HandleFunc("/companies/{companyId}/guests/current", getCurrentGuests.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/companies/{companyId}/revenue/today", getTodaysRevenue.Handle).Methods(http.MethodGet)

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

	// Останавливаем очистку сессий
	stopSweeper()

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
