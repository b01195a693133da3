package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/shiftswap-service/internal/api/http"
	"github.com/spec-kit/shiftswap-service/internal/api/http/handlers"
	"github.com/spec-kit/shiftswap-service/internal/config"
	"github.com/spec-kit/shiftswap-service/internal/events"
	"github.com/spec-kit/shiftswap-service/internal/observability"
	"github.com/spec-kit/shiftswap-service/internal/persistence"
	"github.com/spec-kit/shiftswap-service/internal/ranking"
	"github.com/spec-kit/shiftswap-service/internal/repository"
	"github.com/spec-kit/shiftswap-service/internal/service"
	"github.com/spec-kit/shiftswap-service/internal/worker"
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
	colleagueRepo := repository.NewColleagueRepository(pool)
	shiftRepo := repository.NewShiftRepository(pool)
	swapRepo := repository.NewSwapRequestRepository(pool)

	metrics := observability.NewMetrics()
	ranker := ranking.NewRanker(cfg.Ranking, logger, metrics)
	ranker = ranking.NewCachedRanker(ranker, redis.Client, cfg.Ranking.CacheTTL(), logger, metrics)

	dispatcher := events.NewInMemoryDispatcher(logger)
	swapService := service.NewSwapService(service.SwapDependencies{
		ShiftRepo:     shiftRepo,
		ColleagueRepo: colleagueRepo,
		SwapRepo:      swapRepo,
		Ranker:        ranker,
		Dispatcher:    dispatcher,
		Logger:        logger,
	})
	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)
	worker.StartNotificationWorker(notificationService)

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	healthHandler := handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis)
	swapsHandler := handlers.NewSwapsHandler(swapService)

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health: healthHandler,
		Swaps:  swapsHandler,
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
