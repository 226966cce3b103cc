package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/TajHussain7/Kashi-Pizza-Home/pkg/app"
	"github.com/TajHussain7/Kashi-Pizza-Home/pkg/config"
	"github.com/TajHussain7/Kashi-Pizza-Home/pkg/events"
	"github.com/TajHussain7/Kashi-Pizza-Home/pkg/httpx"
	"github.com/TajHussain7/Kashi-Pizza-Home/pkg/kv"
	"github.com/TajHussain7/Kashi-Pizza-Home/pkg/logger"
	"github.com/TajHussain7/Kashi-Pizza-Home/pkg/telemetry"
	billingApi "github.com/TajHussain7/Kashi-Pizza-Home/services/billing/application/api"
	billingsvcs "github.com/TajHussain7/Kashi-Pizza-Home/services/billing/application/services"
	billingdomain "github.com/TajHussain7/Kashi-Pizza-Home/services/billing/domain"
	domainsvcs "github.com/TajHussain7/Kashi-Pizza-Home/services/billing/domain/services"
	"github.com/TajHussain7/Kashi-Pizza-Home/services/billing/infrastructure/ledger"
	exportApi "github.com/TajHussain7/Kashi-Pizza-Home/services/export/application/api"
	exportsvcs "github.com/TajHussain7/Kashi-Pizza-Home/services/export/application/services"
	"github.com/TajHussain7/Kashi-Pizza-Home/services/export/infrastructure/blob"
	menuApi "github.com/TajHussain7/Kashi-Pizza-Home/services/menu/application/api"
	menusvcs "github.com/TajHussain7/Kashi-Pizza-Home/services/menu/application/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if err := config.ValidateForProduction(cfg); err != nil {
		slog.Error("production config validation failed", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg)

	// Telemetry: OTel tracing + metrics
	ctx := context.Background()
	otelShutdown, metricsHandler, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		log.Error("failed to setup otel", "error", err)
		os.Exit(1)
	}
	defer otelShutdown(ctx) //nolint:errcheck

	// Crash reporting: Sentry (optional — log and continue on failure)
	if err := telemetry.SetupSentry(cfg); err != nil {
		log.Warn("failed to setup sentry, continuing without crash reporting", "error", err)
	}
	defer telemetry.SentryFlush()

	// Persistence: file-backed by default, Redis when REDIS_URL is set
	var (
		store      kv.Store
		redisStore *kv.RedisStore
	)
	if cfg.RedisURL != "" {
		redisStore, err = kv.NewRedisStore(cfg.RedisURL, cfg.ServiceName)
		if err != nil {
			log.Error("failed to connect to redis", "error", err)
			os.Exit(1) //nolint:gocritic // intentional: startup failure
		}
		defer redisStore.Close() //nolint:errcheck
		store = redisStore
		log.Info("store connected", "backend", "redis")
	} else {
		fileStore, err := kv.NewFileStore(cfg.DataDir)
		if err != nil {
			log.Error("failed to open data dir", "error", err)
			os.Exit(1) //nolint:gocritic
		}
		store = fileStore
		log.Info("store opened", "backend", "file", "dir", cfg.DataDir)
	}

	eventBus := events.NewEventBus(log)
	defer eventBus.Close() //nolint:errcheck

	catalog, err := menusvcs.NewCatalogService(ctx, store, log, cfg.ProtectedCategoryList())
	if err != nil {
		log.Error("failed to load catalog", "error", err)
		os.Exit(1) //nolint:gocritic
	}

	orders, err := billingsvcs.NewOrderService(ctx, store, log, catalog)
	if err != nil {
		log.Error("failed to load current order", "error", err)
		os.Exit(1) //nolint:gocritic
	}

	shop := billingdomain.DefaultShopInfo
	shop.Name = strings.ToUpper(cfg.ShopName)
	invoices, err := billingsvcs.NewInvoiceService(ctx, billingsvcs.InvoiceServiceParams{
		Store:    store,
		Log:      log,
		Bus:      eventBus,
		Orders:   orders,
		Numbers:  domainsvcs.NewNumberGenerator(cfg.InvoicePrefix, nil),
		Shop:     shop,
		Currency: cfg.Currency,
		PageSize: cfg.InvoicePageSize,
	})
	if err != nil {
		log.Error("failed to load invoice log", "error", err)
		os.Exit(1) //nolint:gocritic
	}

	mirror := ledger.NewMirror(store, log, eventBus)
	if err := mirror.Start(ctx); err != nil {
		log.Error("failed to start ledger mirror", "error", err)
		os.Exit(1) //nolint:gocritic
	}

	primaryTier, err := blob.NewFilesystemTier(cfg.ExportDir)
	if err != nil {
		log.Error("failed to open export dir", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	exports, err := exportsvcs.NewGatewayService(ctx, exportsvcs.GatewayParams{
		Store:     store,
		Log:       log,
		Primary:   primaryTier,
		Fallback:  blob.NewInlineTier(store),
		Retention: cfg.ExportRetention,
	})
	if err != nil {
		log.Error("failed to load export index", "error", err)
		os.Exit(1) //nolint:gocritic
	}

	appConfig := &app.Application{
		Config:   cfg,
		Logger:   log,
		Store:    store,
		EventBus: eventBus,
		Catalog:  catalog,
		Orders:   orders,
		Invoices: invoices,
		Exports:  exports,
	}

	r := httpx.NewRouter(
		httpx.ServerConfig{
			ServiceName:        cfg.ServiceName,
			IsDevelopment:      cfg.Environment == config.EnvDevelopment,
			CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		},
		logger.Middleware(log),
		logger.Recovery(log),
		telemetry.SentryMiddleware(),
		otelhttp.NewMiddleware(cfg.ServiceName),
	)

	r.Get("/health", httpx.HealthHandler(httpx.HealthChecks{
		Storage: store,
		Redis:   healthChecker(redisStore),
	}))
	r.Get("/metrics", metricsHandler.ServeHTTP)
	r.Route("/api", func(r chi.Router) {
		registerRoutes(r, appConfig)
	})

	srv := httpx.NewServer(cfg.ListenAddr, r)

	go func() {
		log.Info("server listening", "addr", srv.Addr, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("forced shutdown", "error", err)
		os.Exit(1)
	}
	log.Info("server stopped")
}

// healthChecker avoids putting a typed nil into the HealthChecks interface
// field when Redis is not configured.
func healthChecker(r *kv.RedisStore) httpx.HealthChecker {
	if r == nil {
		return nil
	}
	return r
}

// registerRoutes mounts all service routes under /api.
// Add each new service's route function here.
func registerRoutes(r chi.Router, a *app.Application) {
	menuApi.MenuRoutes(r, a)
	billingApi.BillingRoutes(r, a)
	exportApi.ExportRoutes(r, a)
}
