package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/cleanstreet/complaint-service/internal/api/http"
	"github.com/cleanstreet/complaint-service/internal/api/http/handlers"
	"github.com/cleanstreet/complaint-service/internal/auth"
	"github.com/cleanstreet/complaint-service/internal/cache"
	"github.com/cleanstreet/complaint-service/internal/config"
	"github.com/cleanstreet/complaint-service/internal/events"
	"github.com/cleanstreet/complaint-service/internal/geo"
	"github.com/cleanstreet/complaint-service/internal/observability"
	"github.com/cleanstreet/complaint-service/internal/persistence"
	"github.com/cleanstreet/complaint-service/internal/repository"
	"github.com/cleanstreet/complaint-service/internal/service"
	"github.com/cleanstreet/complaint-service/internal/storage"
	"github.com/cleanstreet/complaint-service/internal/worker"
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

	fileStore, err := storage.NewLocalFileStore(cfg.Upload)
	if err != nil {
		logger.Fatal("failed to init file store", zap.Error(err))
	}

	pool := pg.PoolHandle()
	userRepo := repository.NewUserRepository(pool)
	complaintRepo := repository.NewComplaintRepository(pool)
	locationRepo := repository.NewLocationRepository(pool)
	feedbackRepo := repository.NewFeedbackRepository(pool)

	dispatcher := events.NewInMemoryDispatcher()

	userService := service.NewUserService(cfg.Auth, service.UserDependencies{
		UserRepo:      userRepo,
		ComplaintRepo: complaintRepo,
	})
	locationService := service.NewLocationService(
		locationRepo,
		cache.NewLocationCache(redis.Client, cfg.Geo.CacheTTL()),
		geo.NewStaticResolver(cfg.Geo),
	)
	complaintService := service.NewComplaintService(service.ComplaintDependencies{
		ComplaintRepo: complaintRepo,
		Locations:     locationService,
		FileStore:     fileStore,
		Dispatcher:    dispatcher,
	})
	feedbackService := service.NewFeedbackService(feedbackRepo)

	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)
	worker.StartNotificationWorker(notificationService)

	gate := auth.NewGate(userService.TokenManager(), userRepo)
	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:     handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Users:      handlers.NewUsersHandler(userService),
		Complaints: handlers.NewComplaintsHandler(complaintService),
		Locations:  handlers.NewLocationsHandler(locationService),
		Feedback:   handlers.NewFeedbackHandler(feedbackService),
		Gate:       gate,
		UploadDir:  cfg.Upload.Dir,
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
