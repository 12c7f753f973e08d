package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/riskzero/supplier-registry/internal/api/http"
	"github.com/riskzero/supplier-registry/internal/api/http/handlers"
	"github.com/riskzero/supplier-registry/internal/auth"
	"github.com/riskzero/supplier-registry/internal/config"
	"github.com/riskzero/supplier-registry/internal/observability"
	"github.com/riskzero/supplier-registry/internal/persistence"
	"github.com/riskzero/supplier-registry/internal/repository"
	"github.com/riskzero/supplier-registry/internal/screening"
	"github.com/riskzero/supplier-registry/internal/service"
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

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	userRepo := repository.NewUserRepository(pool)
	supplierRepo := repository.NewSupplierRepository(pool)
	countryRepo := repository.NewCountryRepository(pool)

	authService := service.NewAuthService(cfg.Auth, userRepo)
	supplierService := service.NewSupplierService(supplierRepo)
	countryService := service.NewCountryService(countryRepo)

	var cache screening.Cache
	if cfg.Screening.CacheBackend == config.CacheBackendRedis {
		cache = screening.NewRedisCache(redis.Client)
	} else {
		cache = screening.NewMemoryCache()
	}
	screeningClient := screening.NewClient(cfg.Screening, logger)
	screeningService := service.NewScreeningService(screeningClient, cache, logger)

	authMiddleware := auth.NewMiddleware(authService.TokenManager(), userRepo)
	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout(), cfg.CORS.AllowedOrigins)

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Auth:           handlers.NewAuthHandler(authService),
		Suppliers:      handlers.NewSupplierHandler(supplierService),
		Countries:      handlers.NewCountryHandler(countryService),
		Screening:      handlers.NewScreeningHandler(supplierService, screeningService),
		AuthMiddleware: authMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
