package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sitedesk/sitedesk/internal/app"
	"github.com/sitedesk/sitedesk/internal/auth"
	"github.com/sitedesk/sitedesk/internal/clients"
	"github.com/sitedesk/sitedesk/internal/dashboard"
	"github.com/sitedesk/sitedesk/internal/inventory"
	"github.com/sitedesk/sitedesk/internal/issues"
	"github.com/sitedesk/sitedesk/internal/observability"
	"github.com/sitedesk/sitedesk/internal/platform/db"
	"github.com/sitedesk/sitedesk/internal/projects"
	"github.com/sitedesk/sitedesk/internal/rpc"
	"github.com/sitedesk/sitedesk/internal/rpc/httprpc"
	"github.com/sitedesk/sitedesk/internal/shared"
	"github.com/sitedesk/sitedesk/internal/suppliers"
	"github.com/sitedesk/sitedesk/internal/tasks"
	"github.com/sitedesk/sitedesk/internal/users"
)

func main() {
	if app.InTestMode() {
		slog.Default().Info("test mode detected, skipping runtime startup")
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)

	pool, err := db.New(ctx, cfg.PGDSN)
	if err != nil {
		logger.Error("connect postgres", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	redisClient := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		logger.Warn("redis ping", slog.Any("error", err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logger.Warn("redis close", slog.Any("error", err))
		}
	}()

	sessionManager := shared.NewSessionManager(redisClient, "sitedesk_session", cfg.SessionSecret, cfg.SessionTTL, cfg.IsProduction())
	csrfManager := shared.NewCSRFManager(cfg.CSRFSecret)
	auditLogger := shared.NewAuditLogger(pool)
	metrics := observability.NewMetrics()

	authService := auth.NewService(auth.NewRepository(pool))
	authHandler := auth.NewHandler(logger, authService, sessionManager, csrfManager)

	projectService := projects.NewService(projects.NewRepository(pool), auditLogger)
	taskService := tasks.NewService(tasks.NewRepository(pool), auditLogger)
	issueService := issues.NewService(issues.NewRepository(pool), auditLogger)
	clientService := clients.NewService(clients.NewRepository(pool), auditLogger)
	supplierService := suppliers.NewService(suppliers.NewRepository(pool), auditLogger)
	inventoryService := inventory.NewService(inventory.NewRepository(pool), auditLogger)
	userService := users.NewService(users.NewRepository(pool), auditLogger)

	dashboardCache := dashboard.NewCache(redisClient, cfg.DashboardCacheTTL)
	dashboardService := dashboard.NewService(dashboard.NewRepository(pool), dashboardCache)

	router := rpc.NewRouter(logger, metrics)
	router.Register(projects.Procedures(projectService)...)
	router.Register(tasks.Procedures(taskService)...)
	router.Register(issues.Procedures(issueService)...)
	router.Register(clients.Procedures(clientService)...)
	router.Register(suppliers.Procedures(supplierService)...)
	router.Register(inventory.Procedures(inventoryService)...)
	router.Register(users.Procedures(userService)...)
	router.Register(dashboard.Procedures(dashboardService)...)

	rpcHandler := httprpc.NewHandler(logger, router, authService)

	handler := app.NewRouter(app.RouterParams{
		Logger:         logger,
		Config:         cfg,
		SessionManager: sessionManager,
		CSRFManager:    csrfManager,
		AuthHandler:    authHandler,
		RPCHandler:     rpcHandler,
		Metrics:        metrics,
	})

	server := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      handler,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	go func() {
		logger.Info("starting http server", slog.String("addr", cfg.AppAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("http server", slog.Any("error", err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown", slog.Any("error", err))
	}
}
