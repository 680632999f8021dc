package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	portssvc "github.com/nkhandel/personal_finance_app/internal/core/ports/services"
	"github.com/nkhandel/personal_finance_app/internal/core/services"
	"github.com/nkhandel/personal_finance_app/internal/middleware"
	"github.com/nkhandel/personal_finance_app/internal/platform/config"
	"github.com/nkhandel/personal_finance_app/internal/repositories/database/pgsql"
	"github.com/nkhandel/personal_finance_app/internal/utils"
	"github.com/nkhandel/personal_finance_app/pkg/database"
)

// workerDistinctID identifies this batch process in analytics events.
const workerDistinctID = "pfa-worker"

// The worker materializes due recurring rules and credits salaries on a
// fixed interval. It shares the repositories and services of the backend
// but runs as its own binary so the HTTP process never owns batch state.
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer dbPool.Close()
	logger.Info("Database connection pool established.")

	repos := pgsql.NewRepositoryProvider(dbPool)
	svcContainer := services.NewServiceContainer(repos)

	posthogClient := utils.InitializePosthogClient(cfg.PosthogAPIKey, logger)
	defer posthogClient.Close()

	logger.Info("Worker starting",
		slog.Duration("interval", cfg.WorkerInterval),
		slog.Bool("run_at_start", cfg.WorkerRunAtStart),
	)

	if cfg.WorkerRunAtStart {
		runOnce(ctx, logger, svcContainer, posthogClient)
	}

	ticker := time.NewTicker(cfg.WorkerInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Worker shutting down")
			return
		case <-ticker.C:
			runOnce(ctx, logger, svcContainer, posthogClient)
		}
	}
}

// runOnce executes a single obligation pass and logs its outcome.
func runOnce(ctx context.Context, logger *slog.Logger, svcContainer *portssvc.ServiceContainer, posthogClient *utils.PosthogClientWrapper) {
	runLogger := logger.With(slog.Time("as_of", time.Now().UTC()))
	runCtx := middleware.WithLogger(ctx, runLogger)

	summary, err := svcContainer.Obligation.Run(runCtx, time.Now().UTC())
	if err != nil {
		runLogger.Error("Obligation run failed", slog.String("error", err.Error()))
		return
	}

	runLogger.Info("Obligation run completed",
		slog.Int("rules_processed", summary.RulesProcessed),
		slog.Int("rules_skipped", summary.RulesSkipped),
		slog.Int("salaries_credited", summary.SalariesCredited),
	)

	posthogClient.Enqueue(workerDistinctID, "obligation_run", map[string]any{
		"rules_processed":   summary.RulesProcessed,
		"rules_skipped":     summary.RulesSkipped,
		"salaries_credited": summary.SalariesCredited,
	})
}
