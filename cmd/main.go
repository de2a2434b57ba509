package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/shenikar/wildfire_notifier/internal/arcgis"
	"github.com/shenikar/wildfire_notifier/internal/channel"
	"github.com/shenikar/wildfire_notifier/internal/config"
	v1 "github.com/shenikar/wildfire_notifier/internal/handler/http/v1"
	"github.com/shenikar/wildfire_notifier/internal/kafka"
	"github.com/shenikar/wildfire_notifier/internal/observability"
	"github.com/shenikar/wildfire_notifier/internal/repository"
	"github.com/shenikar/wildfire_notifier/internal/service"
	"github.com/shenikar/wildfire_notifier/pkg/logger"
	"github.com/shenikar/wildfire_notifier/pkg/postgres"
	redisclient "github.com/shenikar/wildfire_notifier/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/wildfire_notifier/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const feedTimeout = 30 * time.Second

// @title Wildfire Notifier API
// @version 1.0
// @description Nearest-wildfire notification service.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func runMigrations(cfg *config.Config, log *logrus.Logger) error {
	log.Info("Running database migrations...")

	migrationURL := cfg.DatabaseURL
	if !strings.HasPrefix(migrationURL, "pgx5://") {
		migrationURL = strings.Replace(migrationURL, "postgres://", "pgx5://", 1)
	}

	m, err := migrate.New(
		"file://migrations",
		migrationURL,
	)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations applied successfully")
	return nil
}

// buildChannels подключает только настроенные каналы; остальные остаются nil
func buildChannels(cfg *config.Config, log *logrus.Logger) service.Channels {
	channels := service.Channels{
		Webhook: channel.NewWebhookSender(cfg.DiscordWebhookBaseURL, cfg.WebhookTimeout, cfg.WebhookMaxRetries, cfg.WebhookBaseDelay, log),
	}

	if cfg.SMSEnabled() {
		channels.SMS = channel.NewSMSSender(cfg.TwilioAccountSID, cfg.TwilioAuthToken, cfg.TwilioFromNumber, cfg.SMSRatePerSecond, log)
		log.Info("SMS channel enabled")
	} else {
		log.Warn("Twilio is not configured, SMS channel disabled")
	}

	if cfg.TelegramBotToken != "" {
		tg, err := channel.NewTelegramSender(cfg.TelegramBotToken, log)
		if err != nil {
			log.WithError(err).Error("Telegram channel disabled")
		} else {
			channels.Telegram = tg
			log.Info("Telegram channel enabled")
		}
	}

	return channels
}

func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel, cfg.LogFile)

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Запуск миграций
	if err := runMigrations(cfg, log); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	// Подключение к PostgreSQL
	dbpool, err := postgres.NewPostgresDB(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer dbpool.Close()
	log.Info("Successfully connected to PostgreSQL")

	// Инициализация Redis клиента
	redisClient, err := redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	clock := clockwork.NewRealClock()
	metrics := observability.NewMetrics()

	// Инициализация репозиториев
	subscriberRepo := repository.NewSubscriberRepository(dbpool)
	fireRepo := repository.NewCachedFireRepository(repository.NewFireRepository(dbpool), redisClient, cfg.FireCacheTTL, log)

	// Публикация обновлений пожаров в Kafka включается списком брокеров
	var publisher service.FirePublisher
	if len(cfg.KafkaBrokers) > 0 {
		kafkaPublisher := kafka.NewFirePublisher(cfg.KafkaBrokers, cfg.KafkaFireTopic)
		defer kafkaPublisher.Close()
		publisher = kafkaPublisher
		log.WithField("topic", cfg.KafkaFireTopic).Info("Kafka fire publisher enabled")
	}

	// Инициализация сервисов
	feed := arcgis.NewClient(cfg.ArcGISURL, cfg.FireState, cfg.FireDaysBack, feedTimeout, clock, log)
	ingestService := service.NewIngestService(feed, fireRepo, publisher, log, metrics)
	notificationService := service.NewNotificationService(subscriberRepo, fireRepo, buildChannels(cfg, log), log, cfg, metrics, clock)

	// Планировщик опроса фида и рассылки
	scheduler := service.NewScheduler(ingestService, notificationService, cfg.PollInterval, cfg.NotifyInterval, clock, log)
	schedulerDone := make(chan struct{})
	go func() {
		scheduler.Run(ctx)
		close(schedulerDone)
	}()

	// Инициализация хэндлеров
	handler := v1.NewHandler(notificationService, ingestService, log, cfg)

	// Настройка Gin роутера
	router := gin.Default()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Запуск HTTP-сервера
	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:              serverAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
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
	<-schedulerDone

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorf("Server forced to shutdown: %v", err)
	}

	log.Info("Server gracefully stopped")
}
