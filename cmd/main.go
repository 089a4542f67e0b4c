package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/DoctFaust/campus-info-system/docs"
	"github.com/DoctFaust/campus-info-system/internal/config"
	v1 "github.com/DoctFaust/campus-info-system/internal/handler/http/v1"
	"github.com/DoctFaust/campus-info-system/internal/repository"
	"github.com/DoctFaust/campus-info-system/internal/service"
	"github.com/DoctFaust/campus-info-system/internal/webhook"
	"github.com/DoctFaust/campus-info-system/pkg/logger"
	"github.com/DoctFaust/campus-info-system/pkg/migrator"
	"github.com/DoctFaust/campus-info-system/pkg/postgres"
	redisclient "github.com/DoctFaust/campus-info-system/pkg/redis"
	"github.com/DoctFaust/campus-info-system/pkg/sqlite"
)

// openRepository подключает выбранное хранилище и применяет миграции.
// Возвращает функцию закрытия соединения.
func openRepository(ctx context.Context, cfg *config.Config, log *logrus.Logger) (service.IncidentRepository, func(), error) {
	switch cfg.DatabaseDriver {
	case config.DriverSQLite:
		db, err := sqlite.NewSQLiteDB(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		if err := migrator.UpSQLite(db, filepath.Join(cfg.MigrationsPath, "sqlite"), log); err != nil {
			db.Close()
			return nil, nil, err
		}
		log.WithField("path", cfg.SQLitePath).Info("Successfully opened SQLite database")
		return repository.NewSQLiteIncidentRepository(db), func() { db.Close() }, nil

	default:
		if err := migrator.UpPostgres(cfg.DatabaseURL, filepath.Join(cfg.MigrationsPath, "postgres"), log); err != nil {
			return nil, nil, err
		}
		dbpool, err := postgres.NewPostgresDB(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		log.Info("Successfully connected to PostgreSQL")
		return repository.NewPostgresIncidentRepository(dbpool), dbpool.Close, nil
	}
}

// @title Campus Info System API
// @version 1.0
// @description Campus incident map with spatial analysis.
// @host localhost:8080
// @BasePath /api/v1
func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel)

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	incidentRepo, closeDB, err := openRepository(ctx, cfg, log)
	if err != nil {
		log.Fatalf("Failed to open %s storage: %v", cfg.DatabaseDriver, err)
	}
	defer closeDB()

	// Redis необязателен: без него кеш и вебхуки отключены
	var (
		incidentCache    service.IncidentCache    = repository.NopIncidentCache{}
		webhookPublisher webhook.WebhookPublisher = webhook.NopPublisher{}
	)
	if cfg.RedisAddr != "" {
		redisClient, err := redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisClient.Close()
		log.Info("Successfully connected to Redis")

		incidentCache = repository.NewRedisIncidentCache(redisClient, cfg.CacheTTL)
		webhookPublisher = webhook.NewRedisWebhookPublisher(redisClient)

		// Инициализация и запуск воркера вебхуков
		webhookWorker := webhook.NewWebhookWorker(redisClient, log, cfg)
		webhookWorker.Start(ctx)
	} else {
		log.Warn("REDIS_ADDR is empty, cache and webhooks are disabled")
	}

	// Инициализация сервисов
	incidentService := service.NewIncidentService(incidentRepo, incidentCache, log, cfg, webhookPublisher)
	analyticsService := service.NewAnalyticsService(incidentRepo, log, cfg)

	// Инициализация хэндлеров
	handler := v1.NewHandler(incidentService, analyticsService, log, cfg)

	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		log.Fatalf("Failed to create upload dir: %v", err)
	}

	// Настройка Gin роутера
	router := gin.Default()
	router.MaxMultipartMemory = cfg.MaxUploadBytes
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)
	router.Static("/uploads", cfg.UploadDir)

	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Запуск HTTP-сервера
	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	// Запуск сервера в горутине
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("Server gracefully stopped")
}
