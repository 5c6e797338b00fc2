package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	httpAdapter "github.com/iho/fintrack/internal/adapter/http"
	"github.com/iho/fintrack/internal/adapter/http/handler"
	sqliteRepo "github.com/iho/fintrack/internal/adapter/repository/sqlite"
	"github.com/iho/fintrack/internal/domain"
	"github.com/iho/fintrack/internal/infrastructure/config"
	"github.com/iho/fintrack/internal/infrastructure/logger"
	"github.com/iho/fintrack/internal/infrastructure/sqlite"
	"github.com/iho/fintrack/internal/usecase"
)

func main() {
	// Load .env if present. Real environment variables win.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})

	ctx := context.Background()

	// Run migrations before opening the pooled connection.
	if err := sqlite.RunMigrations(cfg.DatabasePath); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	db, err := sqlite.Open(ctx, cfg.DatabasePath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open database")
	}
	defer db.Close()
	log.Info().Str("path", cfg.DatabasePath).Msg("connected to sqlite")

	opening, err := decimal.NewFromString(cfg.OpeningBalance)
	if err != nil {
		log.Fatal().Err(err).Str("value", cfg.OpeningBalance).Msg("invalid opening balance")
	}

	// Initialize repositories and use cases
	transactionRepo := sqliteRepo.NewTransactionRepository(db)
	ledgerUC := usecase.NewLedgerUseCase(transactionRepo, domain.NewBalance(opening))
	reportUC := usecase.NewReportUseCase(transactionRepo, ledgerUC)

	// Initialize handlers
	transactionHandler := handler.NewTransactionHandler(ledgerUC)
	balanceHandler := handler.NewBalanceHandler(ledgerUC)
	reportHandler := handler.NewReportHandler(reportUC)
	healthHandler := handler.NewHealthHandler(db)

	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		TransactionHandler: transactionHandler,
		BalanceHandler:     balanceHandler,
		ReportHandler:      reportHandler,
		HealthHandler:      healthHandler,
		Logger:             log,
	})

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	go func() {
		log.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}
