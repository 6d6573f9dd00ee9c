package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/interaction-service/internal/api/http"
	"github.com/spec-kit/interaction-service/internal/api/http/handlers"
	"github.com/spec-kit/interaction-service/internal/auth"
	"github.com/spec-kit/interaction-service/internal/config"
	"github.com/spec-kit/interaction-service/internal/events"
	"github.com/spec-kit/interaction-service/internal/observability"
	"github.com/spec-kit/interaction-service/internal/persistence"
	"github.com/spec-kit/interaction-service/internal/repository"
	"github.com/spec-kit/interaction-service/internal/service"
	"github.com/spec-kit/interaction-service/internal/worker"
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

	pool := pg.PoolHandle()
	interactionRepo := repository.NewInteractionRepository(pool)
	staffRepo := repository.NewStaffRepository(pool)
	tagRepo := repository.NewTagRepository(pool)

	dispatcher := events.NewInMemoryDispatcher()
	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)
	worker.StartNotificationWorker(notificationService)

	interactionService := service.NewInteractionService(service.InteractionDependencies{
		InteractionRepo: interactionRepo,
		Dispatcher:      dispatcher,
	})
	staffService := service.NewStaffService(service.StaffDependencies{StaffRepo: staffRepo})
	catalogService := service.NewCatalogService(service.CatalogDependencies{
		TagRepo:   tagRepo,
		StaffRepo: staffRepo,
	}, logger)
	authService := service.NewAuthService(*cfg)

	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:       handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg),
		Auth:         handlers.NewAuthHandler(authService, cfg.App.IsProduction()),
		Interactions: handlers.NewInteractionsHandler(interactionService),
		Staff:        handlers.NewStaffHandler(staffService),
		Catalog:      handlers.NewCatalogHandler(catalogService),
		SessionGate:  auth.NewSessionGate(authService.TokenManager()),
		StaticDir:    cfg.App.StaticDir,
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
