package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"travelbook/internal/api"
	"travelbook/internal/config"
	"travelbook/internal/database"
	"travelbook/internal/domain"
	"travelbook/internal/events"
	"travelbook/internal/export"
	"travelbook/internal/logging"
	"travelbook/internal/metrics"
	"travelbook/internal/repository"
	"travelbook/internal/service"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	cfg, logger, closer, err := loadConfigAndLogger()
	if err != nil {
		return err
	}
	if closer != nil {
		defer (func() { _ = closer.Close() })()
	}

	db, err := initDatabase(cfg, &logger)
	if err != nil {
		return err
	}
	defer db.Close()

	redisClient := initRedis(cfg, &logger)
	if redisClient != nil {
		defer redisClient.Close()
	}

	cache := buildStatsCache(redisClient, &logger)
	eventBus := events.NewEventBus()
	subscribeEventLog(eventBus, &logger)

	customers := service.NewCustomerService(db, eventBus, cache, &logger)
	bookings := service.NewBookingService(db, eventBus, cache, &logger)
	payments := service.NewPaymentService(db, eventBus, &logger)
	reviews := service.NewReviewService(db, eventBus, cache, &logger)
	catalog := service.NewCatalogService(db, &logger)
	exporter := export.NewLedgerExporter(db, cfg.Exports.Path, &logger)

	httpServer := api.NewHTTPServer(cfg.API, customers, bookings, payments, reviews, catalog, exporter, &logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	startMetrics(ctx, cfg, &logger)

	return startServer(ctx, httpServer, &logger)
}

func loadConfigAndLogger() (*config.Config, zerolog.Logger, io.Closer, error) {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "configs/config.yaml"
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, zerolog.Logger{}, nil, fmt.Errorf("load config: %w", err)
	}

	baseLogger, closer, err := logging.New(cfg.Logging, cfg.App)
	if err != nil {
		return nil, zerolog.Logger{}, nil, fmt.Errorf("init logger: %w", err)
	}
	logger := baseLogger.With().Str("component", "api-main").Logger()

	return cfg, logger, closer, nil
}

func initDatabase(cfg *config.Config, logger *zerolog.Logger) (*database.DB, error) {
	db, err := database.NewDB(cfg.Database.Path, logger)
	if err != nil {
		logger.Error().Err(err).Str("db_path", cfg.Database.Path).Msg("init database")
		return nil, err
	}
	return db, nil
}

func initRedis(cfg *config.Config, logger *zerolog.Logger) *redis.Client {
	if cfg.Redis.Address == "" {
		return nil
	}

	redisClient := repository.NewRedisClient(cfg.Redis)

	if _, err := redisClient.Ping(context.Background()).Result(); err != nil {
		logger.Warn().Err(err).Msg("redis connection failed, continuing without redis")
		return nil
	}

	logger.Info().Str("addr", cfg.Redis.Address).Msg("redis connected")
	return redisClient
}

// buildStatsCache returns the failover cache when redis is available, the
// in-memory one otherwise.
func buildStatsCache(redisClient *redis.Client, logger *zerolog.Logger) domain.StatsCache {
	memory := repository.NewMemoryStatsCache(5 * time.Minute)
	if redisClient == nil {
		return memory
	}
	primary := repository.NewRedisStatsCache(redisClient, 5*time.Minute)
	return repository.NewFailoverStatsCache(primary, memory, logger)
}

// subscribeEventLog writes an audit line for every domain event.
func subscribeEventLog(bus *events.EventBus, logger *zerolog.Logger) {
	eventTypes := []string{
		events.EventCustomerCreated,
		events.EventCustomerDeleted,
		events.EventBookingCreated,
		events.EventBookingConfirmed,
		events.EventBookingCancelled,
		events.EventPaymentSettled,
		events.EventReviewAdded,
	}
	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, func(event *events.Event) error {
			logger.Debug().Str("event_type", event.Type).RawJSON("payload", event.Payload).Msg("domain event")
			return nil
		})
	}
}

func startMetrics(ctx context.Context, cfg *config.Config, logger *zerolog.Logger) {
	if !cfg.Monitoring.PrometheusEnabled {
		return
	}

	metrics.Register()
	port := cfg.Monitoring.PrometheusPort
	if port == 0 {
		port = 9090
	}
	go startMetricsServer(ctx, port, logger)
}

func startServer(ctx context.Context, httpServer *api.HTTPServer, logger *zerolog.Logger) error {
	go func() {
		if err := httpServer.Start(); err != nil {
			logger.Error().Err(err).Msg("http server stopped")
		}
	}()

	<-ctx.Done()
	logger.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("http server shutdown")
	}

	logger.Info().Msg("API server stopped")
	return nil
}

func startMetricsServer(ctx context.Context, port int, logger *zerolog.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{Addr: fmt.Sprintf(":%d", port), Handler: mux}
	go func() {
		<-ctx.Done()
		ctxShutdown, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctxShutdown)
	}()
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error().Err(err).Msg("metrics server error")
	}
}
