package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/ashtabanjan/restaurant-api/internal/api/http"
	"github.com/ashtabanjan/restaurant-api/internal/api/http/handlers"
	"github.com/ashtabanjan/restaurant-api/internal/auth"
	"github.com/ashtabanjan/restaurant-api/internal/config"
	"github.com/ashtabanjan/restaurant-api/internal/events"
	"github.com/ashtabanjan/restaurant-api/internal/observability"
	"github.com/ashtabanjan/restaurant-api/internal/persistence"
	"github.com/ashtabanjan/restaurant-api/internal/ratelimit"
	"github.com/ashtabanjan/restaurant-api/internal/repository"
	"github.com/ashtabanjan/restaurant-api/internal/service"
	"github.com/ashtabanjan/restaurant-api/internal/worker"
)

const shutdownTimeout = 10 * time.Second

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

	mongoConn, err := persistence.NewMongo(ctx, cfg.Mongo, logger)
	if err != nil {
		logger.Fatal("failed to connect mongodb", zap.Error(err))
	}
	db := mongoConn.Database()
	if cfg.Mongo.EnsureIndexes {
		if err := repository.EnsureIndexes(ctx, db); err != nil {
			logger.Fatal("failed to ensure indexes", zap.Error(err))
		}
	}

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), cfg.Postgres.MigrationsDir, logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	healthDeps := []handlers.Dependency{{Name: "mongo", Check: mongoConn}}
	if pg.Configured() {
		healthDeps = append(healthDeps, handlers.Dependency{Name: "postgres", Check: pg, Optional: true})
	}

	var redisConn *persistence.Redis
	var authLimiter ratelimit.Limiter
	switch cfg.RateLimit.Backend {
	case "redis":
		redisConn, err = persistence.NewRedis(ctx, cfg.Redis, logger)
		if err != nil {
			logger.Fatal("failed to configure redis", zap.Error(err))
		}
		authLimiter = ratelimit.NewRedisLimiter(redisConn.Client, cfg.RateLimit.Requests, cfg.RateLimit.Window())
		healthDeps = append(healthDeps, handlers.Dependency{Name: "redis", Check: redisConn, Optional: true})
	case "memory":
		authLimiter = ratelimit.NewLocalLimiter(cfg.RateLimit.Requests, cfg.RateLimit.Window())
	default:
		authLimiter = ratelimit.Unlimited{}
	}

	userRepo := repository.NewUserRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	cartRepo := repository.NewCartRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	statsRepo := repository.NewStatsRepository(db)
	auditRepo := repository.NewAccessAuditRepository(pg.PoolHandle())
	resetRepo := repository.NewPasswordResetRepository(pg.PoolHandle())

	dispatcher := events.NewInMemoryDispatcher()
	metrics := observability.NewMetrics()

	authService := service.NewAuthService(cfg.Auth, service.AuthDependencies{
		UserRepo:          userRepo,
		PasswordResetRepo: resetRepo,
		Dispatcher:        dispatcher,
		Logger:            logger,
	})
	userService := service.NewUserService(userRepo)
	menuService := service.NewMenuService(menuRepo)
	cartService := service.NewCartService(service.CartDependencies{
		CartRepo: cartRepo,
		MenuRepo: menuRepo,
		UserRepo: userRepo,
	})
	reviewService := service.NewReviewService(reviewRepo, userRepo)
	paymentService := service.NewPaymentService(service.PaymentDependencies{
		PaymentRepo: paymentRepo,
		CartRepo:    cartRepo,
		UserRepo:    userRepo,
		Dispatcher:  dispatcher,
		Logger:      logger,
	})
	statsService := service.NewStatsService(statsRepo)
	auditService := service.NewAuditService(dispatcher, auditRepo, logger)
	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)

	worker.StartAuditWorker(auditService)
	worker.StartNotificationWorker(notificationService)

	pipeline := auth.NewPipeline(authService.TokenManager(), auth.NewRoleGate(userRepo), dispatcher, logger)

	app := fiber.New(fiber.Config{
		AppName:               cfg.App.Name,
		DisableStartupMessage: true,
	})
	httptransport.RegisterMiddlewares(app, httptransport.MiddlewareConfig{
		Logger:           logger,
		Metrics:          metrics,
		RequestTimeout:   cfg.App.RequestTimeout(),
		CORSAllowOrigins: cfg.App.CORSAllowOrigins,
	})

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health: handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, cfg.App.Port, healthDeps...),
		Auth:   handlers.NewAuthHandler(authService),
		Users:  handlers.NewUsersHandler(userService),
		Menu:   handlers.NewMenuHandler(menuService),
		Orders: handlers.NewOrdersHandler(handlers.OrdersDependencies{
			Carts:    cartService,
			Payments: paymentService,
			Reviews:  reviewService,
		}),
		Admin:       handlers.NewAdminHandler(statsService, auditService, metrics),
		Pipeline:    pipeline,
		AuthLimiter: authLimiter,
		Logger:      logger,
	})

	go func() {
		logger.Info("listening", zap.String("addr", cfg.App.Addr()), zap.String("env", cfg.App.Env))
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil {
		logger.Warn("http shutdown", zap.Error(err))
	}
	closeCtx, closeCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer closeCancel()
	if err := mongoConn.Close(closeCtx); err != nil {
		logger.Warn("mongodb disconnect", zap.Error(err))
	}
	pg.Close()
	redisConn.Close()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
