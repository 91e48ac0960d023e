package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/icconsult/customer-service/internal/api/http"
	"github.com/icconsult/customer-service/internal/api/http/handlers"
	"github.com/icconsult/customer-service/internal/auth"
	"github.com/icconsult/customer-service/internal/config"
	"github.com/icconsult/customer-service/internal/events"
	"github.com/icconsult/customer-service/internal/observability"
	"github.com/icconsult/customer-service/internal/persistence"
	"github.com/icconsult/customer-service/internal/repository"
	"github.com/icconsult/customer-service/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	dependencies := map[string]handlers.Pinger{}
	var customerRepo repository.CustomerRepository
	if pg.Enabled() {
		if cfg.Postgres.RunMigrations {
			if err := persistence.RunMigrations(ctx, pg.PoolHandle(), cfg.Postgres.MigrationsDir, logger); err != nil {
				logger.Fatal("failed to run migrations", zap.Error(err))
			}
		}
		customerRepo = repository.NewCustomerRepository(pg.PoolHandle())
		dependencies["postgres"] = pg
	} else {
		logger.Warn("using in-memory customer store; records are not persisted")
		customerRepo = repository.NewMemoryCustomerRepository()
	}

	dispatcher := events.NewInMemoryDispatcher(logger)
	var sink events.EventHandler
	if redis := persistence.NewRedis(ctx, cfg.Redis, logger); redis != nil {
		defer redis.Close()
		sink = events.NewRedisStreamSink(redis.Client, cfg.Events.RedisStream).Handle
		dependencies["redis"] = redis
	}
	service.NewNotificationService(dispatcher, logger, sink).RegisterHandlers()

	customerService := service.NewCustomerService(service.CustomerDependencies{
		CustomerRepo: customerRepo,
		Dispatcher:   dispatcher,
		Logger:       logger,
	})
	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTLMinutes, cfg.Auth.Issuer, cfg.Auth.Audience)
	if cfg.Auth.LogRawToken {
		logger.Warn("AUTH_LOG_RAW_TOKEN enabled; bearer tokens will be written to debug logs")
	}

	metrics := observability.NewMetrics()
	app := fiber.New(fiber.Config{AppName: cfg.App.Name, DisableStartupMessage: true})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())
	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, dependencies),
		Customers:      handlers.NewCustomersHandler(customerService, auth.NewExtractor(logger, cfg.Auth.LogRawToken)),
		AuthMiddleware: auth.NewAuthMiddleware(tokens),
	})

	go func() {
		logger.Info("listening", zap.String("addr", cfg.App.Addr()), zap.String("env", cfg.Env()))
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
	snap := metrics.Snapshot()
	logger.Info("request totals", zap.Any("requests", snap.Requests), zap.Any("errors", snap.Errors))
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
