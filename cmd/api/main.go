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

	httptransport "github.com/spec-kit/billing-admin/internal/api/http"
	"github.com/spec-kit/billing-admin/internal/api/http/handlers"
	"github.com/spec-kit/billing-admin/internal/auth"
	"github.com/spec-kit/billing-admin/internal/config"
	"github.com/spec-kit/billing-admin/internal/events"
	"github.com/spec-kit/billing-admin/internal/observability"
	"github.com/spec-kit/billing-admin/internal/persistence"
	"github.com/spec-kit/billing-admin/internal/repository"
	"github.com/spec-kit/billing-admin/internal/service"
	"github.com/spec-kit/billing-admin/internal/session"
	"github.com/spec-kit/billing-admin/internal/worker"
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

	var credStore session.Store
	if redis != nil {
		credStore = session.NewRedisStore(redis.Client, cfg.Session.KeyPrefix)
	} else {
		logger.Warn("REDIS_ADDR not provided; using in-memory credential store")
		credStore = session.NewMemoryStore()
	}
	guard := session.NewGuard(credStore, nil)

	pool := pg.PoolHandle()
	userRepo := repository.NewUserRepository(pool)
	staffRepo := repository.NewStaffRepository(pool)
	customerRepo := repository.NewCustomerRepository(pool)
	productRepo := repository.NewProductRepository(pool)
	invoiceRepo := repository.NewInvoiceRepository(pool)

	dispatcher := events.NewInMemoryDispatcher()
	worker.StartAuditWorker(service.NewAuditService(dispatcher, logger))

	authService := service.NewAuthService(*cfg, service.AuthDependencies{
		StaffRepo:       staffRepo,
		CredentialStore: credStore,
		Guard:           guard,
		Dispatcher:      dispatcher,
	})
	accountService := service.NewAccountService(userRepo, staffRepo, cfg.Auth.BcryptCost)
	billingService := service.NewBillingService(customerRepo, productRepo, invoiceRepo, dispatcher)

	metrics := observability.NewMetrics()
	guardMiddleware := auth.NewMiddleware(guard, metrics)

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	pageSize := cfg.Session.DefaultPageSize
	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:    handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Auth:      handlers.NewAuthHandler(authService),
		Dashboard: handlers.NewDashboardHandler(userRepo, staffRepo, customerRepo, productRepo, invoiceRepo),
		Users:     handlers.NewUsersHandler(accountService, pageSize),
		Staff:     handlers.NewStaffHandler(accountService, pageSize),
		Customers: handlers.NewCustomersHandler(billingService, pageSize),
		Products:  handlers.NewProductsHandler(billingService, pageSize),
		Invoices:  handlers.NewInvoicesHandler(billingService, pageSize),
		Guard:     guardMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	go warnOnExpiringSession(ctx, guard, cfg.Session.ExpiryWarnWindow(), logger)

	waitForShutdown(logger)

	_ = app.Shutdown()
}

// warnOnExpiringSession periodically probes the guard so operators see an
// early warning in the logs before the credential hard-expires.
func warnOnExpiringSession(ctx context.Context, guard *session.Guard, window time.Duration, logger *zap.Logger) {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if guard.Status(ctx).Kind == session.StatusAuthenticated && guard.IsExpiringSoon(ctx, window) {
				logger.Warn("session expiring soon", zap.Duration("window", window))
			}
		}
	}
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
