package api

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	ordersmemory "github.com/Apurer/go-order-api/internal/domains/orders/adapters/memory"
	ordersobs "github.com/Apurer/go-order-api/internal/domains/orders/adapters/observability"
	orderspostgres "github.com/Apurer/go-order-api/internal/domains/orders/adapters/persistence/postgres"
	ordersapp "github.com/Apurer/go-order-api/internal/domains/orders/application"
	ordersports "github.com/Apurer/go-order-api/internal/domains/orders/ports"
	platformmigrations "github.com/Apurer/go-order-api/internal/platform/migrations"
	platformobservability "github.com/Apurer/go-order-api/internal/platform/observability"
	platformpostgres "github.com/Apurer/go-order-api/internal/platform/postgres"
	orderserver "github.com/Apurer/go-order-api/internal/server"
)

// Run boots the Order HTTP API with observability and repositories wired.
func Run(ctx context.Context) error {
	const serviceName = "order-api"
	instruments, shutdown, err := platformobservability.Init(ctx, serviceName)
	if err != nil {
		return fmt.Errorf("failed to initialize observability: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			instruments.Logger.Error("failed to shutdown observability", slog.String("error", err.Error()))
		}
	}()
	logger := instruments.Logger
	cfg := LoadConfig()

	orderRepo, cleanupRepo := buildOrderRepository(ctx, cfg, logger)
	defer cleanupRepo()
	orderService := ordersobs.New(
		ordersapp.NewService(orderRepo),
		ordersobs.WithLogger(logger),
		ordersobs.WithTracer(instruments.Tracer("internal.orders.application")),
		ordersobs.WithMeter(instruments.Meter("internal.orders.application")),
	)

	handlers := orderserver.ApiHandleFunctions{
		OrderAPI: orderserver.NewOrderAPI(orderService),
	}

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	router.Use(otelgin.Middleware(serviceName), orderserver.RequestID())
	router = orderserver.NewRouterWithGinEngine(router, handlers)
	logger.Info("Order API listening", slog.String("addr", cfg.Addr()), slog.String("environment", cfg.Environment))
	if err := router.Run(cfg.Addr()); err != nil {
		logger.Error("Order API server exited", slog.String("addr", cfg.Addr()), slog.String("error", err.Error()))
		return err
	}
	return nil
}

func buildOrderRepository(ctx context.Context, cfg Config, logger *slog.Logger) (ordersports.Repository, func()) {
	if cfg.PostgresDSN == "" {
		logger.Warn("POSTGRES_DSN not set, falling back to in-memory order repository")
		return ordersmemory.NewRepository(), func() {}
	}
	db, err := platformpostgres.Connect(ctx, cfg.PostgresDSN)
	if err != nil {
		logger.Warn("failed to connect to postgres, falling back to memory", slog.String("error", err.Error()))
		return ordersmemory.NewRepository(), func() {}
	}
	sqlDB, err := db.DB()
	if err != nil {
		logger.Warn("failed to unwrap postgres connection, falling back to memory", slog.String("error", err.Error()))
		return ordersmemory.NewRepository(), func() {}
	}
	if err := platformmigrations.Run(db); err != nil {
		logger.Warn("failed to migrate order schema, falling back to memory", slog.String("error", err.Error()))
		_ = sqlDB.Close()
		return ordersmemory.NewRepository(), func() {}
	}
	logger.Info("order repository configured with postgres")
	return orderspostgres.NewRepository(db), func() { _ = sqlDB.Close() }
}
