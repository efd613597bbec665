package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	coreport "github.com/amirhossein-jamali/companion-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/companion-ledger/internal/domain/port/gateway"
	accountUseCase "github.com/amirhossein-jamali/companion-ledger/internal/domain/usecase/account"
	generationUseCase "github.com/amirhossein-jamali/companion-ledger/internal/domain/usecase/generation"
	ledgerUseCase "github.com/amirhossein-jamali/companion-ledger/internal/domain/usecase/ledger"
	paymentUseCase "github.com/amirhossein-jamali/companion-ledger/internal/domain/usecase/payment"
	personaUseCase "github.com/amirhossein-jamali/companion-ledger/internal/domain/usecase/persona"
	"github.com/amirhossein-jamali/companion-ledger/internal/domain/usecase/pricing"

	"github.com/amirhossein-jamali/companion-ledger/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/companion-ledger/internal/infrastructure/adapter/api/middleware"
	"github.com/amirhossein-jamali/companion-ledger/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/companion-ledger/internal/infrastructure/adapter/auth"
	"github.com/amirhossein-jamali/companion-ledger/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/companion-ledger/internal/infrastructure/adapter/idgen"
	"github.com/amirhossein-jamali/companion-ledger/internal/infrastructure/adapter/imagegen"
	"github.com/amirhossein-jamali/companion-ledger/internal/infrastructure/adapter/llm"
	"github.com/amirhossein-jamali/companion-ledger/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/companion-ledger/internal/infrastructure/adapter/metrics"
	"github.com/amirhossein-jamali/companion-ledger/internal/infrastructure/adapter/payment"
	"github.com/amirhossein-jamali/companion-ledger/internal/infrastructure/adapter/storage"
	timeProvider "github.com/amirhossein-jamali/companion-ledger/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/companion-ledger/internal/infrastructure/config"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger, err := logger.NewZapLogger(logger.Options{
		Level:      cfg.Logger.Level,
		Format:     cfg.Logger.Format,
		Output:     cfg.Logger.Output,
		CallerInfo: cfg.Logger.CallerInfo,
	})
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = appLogger.Flush() }()

	if err := run(cfg, appLogger); err != nil {
		appLogger.Error("Server stopped with error", map[string]any{"error": err.Error()})
		_ = appLogger.Flush()
		os.Exit(1)
	}
	appLogger.Info("Server exited gracefully", nil)
}

func run(cfg *config.Config, appLogger coreport.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	tp := timeProvider.NewRealTimeProvider()

	// Connect to the database and bring the schema up to date
	dbManager := database.NewManager(database.NewConfig(cfg.Database), appLogger, tp)
	if err := dbManager.Connect(ctx); err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer func() {
		if err := dbManager.Close(); err != nil {
			appLogger.Warn("Error closing database", map[string]any{"error": err.Error()})
		}
	}()
	if err := dbManager.Migrate(ctx); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}
	uow := dbManager.CreateUnitOfWork()

	// Metrics
	registry := prometheus.NewRegistry()
	var (
		appMetrics  coreport.Metrics = metrics.NewNoopMetrics()
		httpMetrics *middleware.HTTPMetrics
		gatherer    prometheus.Gatherer
	)
	if cfg.Server.MetricsEnabled {
		registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		if sqlDB := dbManager.SQLDB(); sqlDB != nil {
			registry.MustRegister(collectors.NewDBStatsCollector(sqlDB, cfg.Database.Database))
		}

		promMetrics, err := metrics.NewPrometheusMetrics(registry)
		if err != nil {
			return fmt.Errorf("register metrics: %w", err)
		}
		appMetrics = promMetrics
		if httpMetrics, err = middleware.NewHTTPMetrics(registry); err != nil {
			return fmt.Errorf("register http metrics: %w", err)
		}
		gatherer = registry
	}

	// Domain configuration
	prices, err := pricing.New(cfg.Ledger.PricingConfig())
	if err != nil {
		return fmt.Errorf("pricing: %w", err)
	}
	ids := idgen.NewTypeIDGenerator()

	// Gateways
	hasher := auth.NewBcryptHasher(cfg.Auth.BcryptCost)
	tokens, err := auth.NewJWTIssuer(cfg.Auth.JWTSecret, cfg.Auth.Issuer, cfg.Auth.TokenTTL, tp)
	if err != nil {
		return fmt.Errorf("token issuer: %w", err)
	}

	responder, err := llm.NewOpenAIResponder(llm.Config{
		BaseURL:     cfg.Responder.BaseURL,
		APIKey:      cfg.Responder.APIKey,
		Model:       cfg.Responder.Model,
		Temperature: cfg.Responder.Temperature,
		MaxTokens:   cfg.Responder.MaxTokens,
	}, appLogger)
	if err != nil {
		return fmt.Errorf("responder: %w", err)
	}

	images, err := imagegen.NewFalProvider(imagegen.Config{
		BaseURL:           cfg.ImageProvider.BaseURL,
		APIKey:            cfg.ImageProvider.APIKey,
		ImageSize:         cfg.ImageProvider.ImageSize,
		InferenceSteps:    cfg.ImageProvider.InferenceSteps,
		GuidanceScale:     cfg.ImageProvider.GuidanceScale,
		EnableSafetyCheck: cfg.ImageProvider.EnableSafetyCheck,
	}, &http.Client{Timeout: cfg.Generation.ImageTimeout}, appLogger)
	if err != nil {
		return fmt.Errorf("image provider: %w", err)
	}

	var processor gateway.PaymentProcessor
	if cfg.Payment.SecretKey != "" {
		stripeProcessor, err := payment.NewStripeProcessor(payment.Config{
			SecretKey:     cfg.Payment.SecretKey,
			WebhookSecret: cfg.Payment.WebhookSecret,
			Currency:      cfg.Payment.Currency,
		}, nil, appLogger)
		if err != nil {
			return fmt.Errorf("payment processor: %w", err)
		}
		processor = stripeProcessor
	} else {
		appLogger.Warn("Payment provider not configured, checkout is disabled", nil)
	}

	// Use cases
	ledgerService := ledgerUseCase.NewService(uow, prices, ids, tp, appLogger, appMetrics).
		WithRetryPolicy(ledgerUseCase.RetryPolicy{
			MaxTries:        cfg.Ledger.MaxRetries,
			InitialInterval: cfg.Ledger.RetryInterval,
			MaxInterval:     cfg.Ledger.MaxRetryInterval,
		})

	generationService := generationUseCase.NewService(uow, ledgerService, prices, responder, images, ids, tp, appLogger, appMetrics,
		generationUseCase.Config{
			ContextWindow:    cfg.Generation.ContextWindow,
			ResponderTimeout: cfg.Generation.ResponderTimeout,
			ImageTimeout:     cfg.Generation.ImageTimeout,
			MirrorTimeout:    cfg.Storage.UploadTimeout,
			RefundTimeout:    cfg.Generation.RefundTimeout,
			RefundMaxTries:   cfg.Generation.RefundMaxTries,
		})
	if cfg.Storage.Enabled {
		mirror, err := storage.NewS3Mirror(storage.Config{
			Endpoint:      cfg.Storage.Endpoint,
			Region:        cfg.Storage.Region,
			AccessKey:     cfg.Storage.AccessKey,
			SecretKey:     cfg.Storage.SecretKey,
			Bucket:        cfg.Storage.Bucket,
			PublicBaseURL: cfg.Storage.PublicBaseURL,
			UsePathStyle:  cfg.Storage.UsePathStyle,
			Prefix:        cfg.Storage.KeyPrefix,
		}, &http.Client{Timeout: cfg.Storage.FetchTimeout}, tp, appLogger)
		if err != nil {
			return fmt.Errorf("image storage: %w", err)
		}
		generationService.WithImageStore(mirror)
	}

	reconciler := generationUseCase.NewReconciler(uow, ledgerService, tp, appLogger, generationUseCase.ReconcilerConfig{
		After:    cfg.Generation.ReconcileAfter,
		Interval: cfg.Generation.ReconcileInterval,
		Batch:    cfg.Generation.ReconcileBatch,
	})
	reconciler.Start(ctx)
	defer reconciler.Stop()

	accounts := accountUseCase.NewAccountUseCase(uow, ledgerService, hasher, tokens, ids, tp, appLogger, prices.OpeningBalance())
	personas := personaUseCase.NewPersonaUseCase(uow, images, ids, tp, appLogger, cfg.Generation.AvatarTimeout)
	payments := paymentUseCase.NewPaymentUseCase(uow, ledgerService, processor, gateway.CheckoutURLs{
		Success: cfg.Payment.SuccessURL,
		Cancel:  cfg.Payment.CancelURL,
	}, tp, appLogger)

	// HTTP
	router := gin.New()
	routes.SetupMiddlewares(router, appLogger, cfg.Server.CORSOrigins, httpMetrics)
	routes.SetupRoutes(router, routes.Handlers{
		Account:    handler.NewAccountHandler(accounts, appLogger),
		Persona:    handler.NewPersonaHandler(personas, appLogger),
		Generation: handler.NewGenerationHandler(generationService, appLogger),
		Payment:    handler.NewPaymentHandler(payments, appLogger),
		Ledger:     handler.NewLedgerHandler(ledgerService, appLogger),
		Health:     handler.NewHealthHandler(dbManager, cfg.Database.QueryTimeout, appLogger),
	}, accounts, gatherer)

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		appLogger.Info("Starting server", map[string]any{
			"addr":   server.Addr,
			"env":    cfg.Environment,
			"driver": cfg.Database.Driver,
		})
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	appLogger.Info("Shutting down server...", nil)

	// In-flight generations finish their refunds on detached contexts
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	return nil
}
