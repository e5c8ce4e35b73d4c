package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	grpclib "google.golang.org/grpc"

	grpcadapter "github.com/simaogato/recipecost-backend/internal/adapter/grpc"
	recipecostv1 "github.com/simaogato/recipecost-backend/internal/adapter/grpc/recipecost/v1"
	"github.com/simaogato/recipecost-backend/internal/adapter/httpapi"
	"github.com/simaogato/recipecost-backend/internal/adapter/repository/postgres"
	"github.com/simaogato/recipecost-backend/internal/config"
	"github.com/simaogato/recipecost-backend/internal/logger"
	"github.com/simaogato/recipecost-backend/internal/metrics"
	"github.com/simaogato/recipecost-backend/internal/scheduler"
	"github.com/simaogato/recipecost-backend/internal/usecase/dashboard"
	"github.com/simaogato/recipecost-backend/internal/usecase/expense"
	"github.com/simaogato/recipecost-backend/internal/usecase/history"
	"github.com/simaogato/recipecost-backend/internal/usecase/ingredient"
	"github.com/simaogato/recipecost-backend/internal/usecase/recipe"
	"github.com/simaogato/recipecost-backend/internal/usecase/tax"
)

const (
	dbConnectAttempts = 5
	dbRetryDelay      = 2 * time.Second
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "recipecost: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log, err := logger.New(cfg.LogLevel, cfg.IsProduction())
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 1. Setup Database
	db, err := connectWithRetry(ctx, cfg.DBConnStr, log)
	if err != nil {
		return err
	}
	defer db.Close()

	if cfg.MigrateOnBoot {
		if err := postgres.Migrate(db); err != nil {
			return err
		}
		log.Info("database migrations applied")
	}

	// 2. Initialize Repositories (Postgres)
	ingredientRepo := postgres.NewIngredientRepository(db)
	historyRepo := postgres.NewIngredientHistoryRepository(db)
	expenseRepo := postgres.NewExpenseRepository(db)
	taxRepo := postgres.NewTaxRepository(db)
	recipeRepo := postgres.NewRecipeRepository(db)

	// 3. Initialize Services (Use Cases)
	m := metrics.New()
	tracker := history.NewTracker(historyRepo, logger.Named(log, "history"))
	ingredientService := ingredient.NewIngredientService(ingredientRepo, recipeRepo, tracker, db, logger.Named(log, "ingredient"))
	expenseService := expense.NewExpenseService(expenseRepo, logger.Named(log, "expense"))
	taxService := tax.NewTaxService(taxRepo, db, logger.Named(log, "tax"))
	recipeService := recipe.NewRecipeService(ingredientRepo, expenseRepo, taxRepo, recipeRepo, m, logger.Named(log, "recipe"))
	dashboardService := dashboard.NewDashboardService(ingredientRepo, expenseRepo, taxRepo, recipeRepo, tracker)

	// 4. gRPC Server
	grpcServer := grpclib.NewServer(
		grpclib.ChainUnaryInterceptor(
			grpcadapter.LoggingInterceptor(logger.Named(log, "grpc")),
			grpcadapter.MetricsInterceptor(m),
			grpcadapter.AuthInterceptor(cfg.APIToken),
		),
	)
	grpcAdapter := grpcadapter.NewServer(ingredientService, expenseService, taxService, recipeService, dashboardService)
	recipecostv1.RegisterRecipeCostServiceServer(grpcServer, grpcAdapter)

	lis, err := net.Listen("tcp", cfg.GRPCAddr())
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", cfg.GRPCAddr(), err)
	}

	// 5. Admin HTTP Server
	adminServer := &http.Server{
		Addr:              cfg.AdminAddr(),
		Handler:           httpapi.NewRouter(httpapi.NewHandler(db, logger.Named(log, "admin")), m.Registry),
		ReadHeaderTimeout: 5 * time.Second,
	}

	// 6. Scheduler (a signal cancels a repricing run in progress)
	sched := scheduler.NewScheduler(recipeService, cfg.RepriceSchedule, cfg.RepriceTimeout, logger.Named(log, "scheduler"))
	if err := sched.Start(ctx); err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("gRPC server listening", zap.String("addr", cfg.GRPCAddr()))
		if err := grpcServer.Serve(lis); err != nil && !errors.Is(err, grpclib.ErrServerStopped) {
			return fmt.Errorf("gRPC server failed: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		log.Info("admin server listening", zap.String("addr", cfg.AdminAddr()))
		if err := adminServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("admin server failed: %w", err)
		}
		return nil
	})

	// Graceful shutdown
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down gracefully")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		if err := sched.Stop(shutdownCtx); err != nil {
			log.Warn("scheduler shutdown", zap.Error(err))
		}
		if err := adminServer.Shutdown(shutdownCtx); err != nil {
			log.Warn("admin server shutdown", zap.Error(err))
		}

		stopped := make(chan struct{})
		go func() {
			grpcServer.GracefulStop()
			close(stopped)
		}()
		select {
		case <-stopped:
		case <-shutdownCtx.Done():
			grpcServer.Stop()
		}

		log.Info("servers stopped")
		return nil
	})

	return g.Wait()
}

// connectWithRetry waits for Postgres to accept connections
func connectWithRetry(ctx context.Context, connStr string, log *zap.Logger) (*postgres.DB, error) {
	var lastErr error
	for attempt := 1; attempt <= dbConnectAttempts; attempt++ {
		db, err := postgres.NewDB(ctx, connStr)
		if err == nil {
			return db, nil
		}
		lastErr = err
		log.Warn("database not ready", zap.Int("attempt", attempt), zap.Error(err))

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(dbRetryDelay):
		}
	}
	return nil, fmt.Errorf("failed to connect to database: %w", lastErr)
}
