package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/robfig/cron/v3"

	"github.com/finora/liability-service/internal/application/usecase"
	"github.com/finora/liability-service/internal/domain/service"
	"github.com/finora/liability-service/internal/infrastructure/config"
	"github.com/finora/liability-service/internal/infrastructure/kafka"
	pgRepo "github.com/finora/liability-service/internal/infrastructure/postgres"
	grpcPresentation "github.com/finora/liability-service/internal/presentation/grpc"
	"github.com/finora/liability-service/internal/presentation/rest"
	"github.com/finora/liability-service/pkg/auth"
	pkgkafka "github.com/finora/liability-service/pkg/kafka"
	"github.com/finora/liability-service/pkg/observability"
	pkgpostgres "github.com/finora/liability-service/pkg/postgres"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Load configuration.
	cfg := config.Load()
	cfg.Validate()

	// Initialize structured logger via shared observability package.
	logger := observability.InitLogger(cfg.Log)
	slog.SetDefault(logger)

	logger.Info("starting liability-service",
		"http_port", cfg.HTTPPort,
		"grpc_port", cfg.GRPCPort,
	)

	// Initialize tracing.
	shutdown, err := observability.InitTracer(ctx, cfg.Tracing)
	if err != nil {
		logger.Warn("failed to initialize tracer, continuing without tracing", "error", err)
	} else {
		defer func() { _ = shutdown(ctx) }() //nolint:errcheck // best-effort tracer shutdown
	}

	// Initialize metrics.
	meterProvider, metricsHandler, err := observability.InitMetrics(observability.MetricsConfig{
		ServiceName: cfg.ServiceName,
	})
	if err != nil {
		logger.Error("failed to initialize metrics", "error", err)
		os.Exit(1)
	}
	defer func() { _ = meterProvider.Shutdown(ctx) }() //nolint:errcheck // best-effort meter shutdown

	// Database connection.
	dbCtx, dbCancel := context.WithTimeout(ctx, 10*time.Second)
	defer dbCancel()

	pool, err := pkgpostgres.NewPool(dbCtx, cfg.DB)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()
	logger.Info("connected to database")

	// Run database migrations.
	if migErr := pkgpostgres.RunMigrations(cfg.DB.DSN(), "file://"+cfg.MigrationsDir); migErr != nil {
		logger.Warn("migration warning", "error", migErr)
	}

	// Wire infrastructure adapters.
	liabilityRepo := pgRepo.NewLiabilityRepo(pool)
	ledgerRepo := pgRepo.NewLedgerRepo(pool)
	settlementRepo := pgRepo.NewSettlementRepo(pool)
	kafkaProducer := pkgkafka.NewProducer(cfg.Kafka)
	defer kafkaProducer.Close()
	publisher := kafka.NewEventPublisher(kafkaProducer, cfg.EventsTopic, logger)

	// Domain services.
	analyzer := service.NewImpactAnalyzer()
	reconciler := service.NewSettlementReconciler()

	// Wire use cases.
	createUC := usecase.NewCreateLiabilityUseCase(liabilityRepo, publisher)
	getUC := usecase.NewGetLiabilityUseCase(liabilityRepo)
	listUC := usecase.NewListLiabilitiesUseCase(liabilityRepo)
	previewUC := usecase.NewPreviewImpactUseCase(liabilityRepo, analyzer)
	recalcUC := usecase.NewRecalculateScheduleUseCase(liabilityRepo, publisher)
	skipUC := usecase.NewSkipInstallmentUseCase(liabilityRepo, publisher)
	changeAmountUC := usecase.NewChangeInstallmentAmountUseCase(liabilityRepo, publisher)
	changeDateUC := usecase.NewChangeInstallmentDateUseCase(liabilityRepo, publisher)
	markPaidUC := usecase.NewMarkInstallmentPaidUseCase(liabilityRepo, publisher)
	settlementStatusUC := usecase.NewGetSettlementStatusUseCase(liabilityRepo, ledgerRepo, reconciler)
	executeSettlementUC := usecase.NewExecuteSettlementUseCase(liabilityRepo, ledgerRepo, settlementRepo, publisher, reconciler, logger)
	sweepUC := usecase.NewSweepOverdueUseCase(liabilityRepo, publisher, logger)

	// JWT service (validation-only: public key preferred, secret as fallback).
	jwtSvc, err := auth.NewJWTService(cfg.JWT)
	if err != nil {
		logger.Error("failed to initialize JWT service", "error", err)
		os.Exit(1)
	}

	// gRPC server.
	handler := grpcPresentation.NewLiabilityHandler(
		createUC, getUC, listUC, previewUC, recalcUC,
		skipUC, changeAmountUC, changeDateUC, markPaidUC,
		settlementStatusUC, executeSettlementUC,
	)
	grpcServer := grpcPresentation.NewServer(handler, logger, jwtSvc, cfg.TLSCertFile, cfg.TLSKeyFile)

	// HTTP server (health checks, metrics, impact preview).
	router := mux.NewRouter()
	healthHandler := rest.NewHealthHandler(logger, func() error {
		probeCtx, probeCancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer probeCancel()
		return pkgpostgres.HealthCheck(probeCtx, pool)
	})
	healthHandler.RegisterRoutes(router)
	previewHandler := rest.NewPreviewHandler(previewUC, logger)
	previewHandler.RegisterRoutes(router)
	router.Handle("/metrics", metricsHandler).Methods(http.MethodGet)

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Overdue sweep on a cron schedule (with seconds field).
	sweeper := cron.New(cron.WithSeconds())
	if _, err := sweeper.AddFunc(cfg.OverdueCron, func() {
		sweepCtx, sweepCancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer sweepCancel()
		result, err := sweepUC.Execute(sweepCtx)
		if err != nil {
			logger.Error("overdue sweep finished with errors", "error", err)
		}
		if result.InstallmentsFlagged > 0 {
			logger.Info("overdue sweep flagged installments",
				"liabilities", result.LiabilitiesFlagged,
				"installments", result.InstallmentsFlagged,
			)
		}
	}); err != nil {
		logger.Error("invalid overdue sweep schedule", "cron", cfg.OverdueCron, "error", err)
		os.Exit(1)
	}
	sweeper.Start()
	defer sweeper.Stop()

	// Start servers.
	errCh := make(chan error, 2)

	go func() {
		if err := grpcServer.Serve(cfg.GRPCAddr()); err != nil {
			errCh <- fmt.Errorf("gRPC server error: %w", err)
		}
	}()

	go func() {
		logger.Info("HTTP server starting", "port", cfg.HTTPPort)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	// Wait for shutdown signal.
	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-errCh:
		logger.Error("server error", "error", err)
	}

	// Graceful shutdown.
	grpcServer.GracefulStop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", "error", err)
	}

	logger.Info("liability-service stopped")
}
