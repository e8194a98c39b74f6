package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"fintrack-server/src/advice"
	"fintrack-server/src/api"
	"fintrack-server/src/auth"
	"fintrack-server/src/config"
	"fintrack-server/src/db"
	"fintrack-server/src/db/postgres"
	"fintrack-server/src/db/sqlite"
	"fintrack-server/src/logging"
	"fintrack-server/src/metrics"
	"fintrack-server/src/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "invalid configuration:", err)
		os.Exit(1)
	}
	logger := logging.Setup(os.Stderr, cfg.LogLevel, cfg.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("Server stopped", "error", err)
		os.Exit(1)
	}
}

func openStore(ctx context.Context, cfg config.Config) (db.Store, error) {
	switch cfg.DBDriver {
	case "postgres":
		return postgres.Connect(ctx, cfg.DatabaseURL)
	default:
		if dir := filepath.Dir(cfg.SQLitePath); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, err
			}
		}
		return sqlite.Open(ctx, cfg.SQLitePath)
	}
}

func run(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	// Connect to database
	inner, err := openStore(ctx, cfg)
	if err != nil {
		return fmt.Errorf("DB connection failed: %w", err)
	}
	store, err := db.NewCachedStore(inner, cfg.CategoryCacheTTL)
	if err != nil {
		inner.Close()
		return err
	}
	defer store.Close()
	logger.Info("Connected to database", "driver", cfg.DBDriver)

	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)
	m := metrics.New()

	var asker advice.Asker
	if cfg.AdviceAPIKey != "" {
		asker = advice.NewOpenAIClient(cfg.AdviceAPIKey, cfg.AdviceBaseURL, cfg.AdviceModel)
	} else {
		logger.Warn("ADVICE_API_KEY not set, tips will use the built-in fallback")
	}

	router := api.NewRouter(api.Deps{
		Resolver:     auth.NewResolver(tokens, store),
		Auth:         service.NewAuthService(store, auth.NewHasher(cfg.BcryptCost), tokens),
		Categories:   service.NewCategoryService(store),
		Transactions: service.NewTransactionService(store),
		Goals:        service.NewGoalService(store),
		Dashboard:    service.NewDashboardService(store, cfg.LedgerBatchLimit, logger),
		Advice:       service.NewAdviceService(store, asker, cfg.AdviceTimeout, m, logger),
		Metrics:      m,
		Logger:       logger,
		CORSOrigins:  cfg.CORSOrigins,
		Ping:         store.Ping,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("API server running", "port", cfg.Port)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
