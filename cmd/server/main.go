package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cryptofolio/internal/config"
	"cryptofolio/internal/database"
	"cryptofolio/internal/middleware"
	"cryptofolio/internal/providers"
	"cryptofolio/internal/repositories"
	"cryptofolio/internal/secrets"
	"cryptofolio/internal/server"
	"cryptofolio/internal/services"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	level := new(slog.LevelVar)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	if err := run(logger, level); err != nil {
		logger.Error("fatal error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(logger *slog.Logger, level *slog.LevelVar) error {
	cfg := config.Load()
	if cfg.IsDevelopment() {
		level.Set(slog.LevelDebug)
	}
	logger.Info("config loaded",
		slog.String("environment", cfg.Server.Environment),
		slog.String("listen_addr", net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)),
		slog.Bool("scheduler_enabled", cfg.Sync.SchedulerEnabled),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.Initialize(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			logger.Error("error closing database", slog.String("error", closeErr.Error()))
		}
	}()

	cipher, err := secrets.NewCipher(cfg.Security.CredentialEncryptionKey)
	if err != nil {
		return err
	}

	credentialRepo := repositories.NewCredentialRepository(db.DB, cipher)
	balanceRepo := repositories.NewBalanceRepository(db.DB)

	metrics := services.NewPrometheusMetrics(prometheus.DefaultRegisterer)
	syncLogger := services.NewSyncLogger(logger)

	coinbase := providers.NewCoinbaseAdapter(&cfg.Coinbase, nil, logger)
	gemini := providers.NewGeminiAdapter(&cfg.Gemini, nil, providers.NewNonceSource(), logger)
	ledger := providers.NewLedgerAdapter()
	adapters := []services.ProviderAdapter{coinbase, gemini, ledger}

	var oauth services.OAuthExchanger
	if cfg.Coinbase.ClientID != "" {
		oauth = coinbase
	} else {
		logger.Warn("COINBASE_CLIENT_ID not set, coinbase OAuth linking disabled")
	}

	priceBreaker := services.NewCircuitBreaker(services.DefaultCircuitBreakerConfig("coinmarketcap"), metrics)
	oracle := providers.NewCoinMarketCapOracle(&cfg.Prices, nil, priceBreaker, metrics, logger)

	tokens := services.NewTokenRefreshService(credentialRepo, coinbase, coinbase, &cfg.Sync, syncLogger, metrics, logger)
	reconciler := services.NewReconciliationService(credentialRepo, balanceRepo, adapters, tokens, syncLogger, metrics, logger)
	connections := services.NewConnectionService(credentialRepo, balanceRepo, adapters, oauth, reconciler, &cfg.Sync, syncLogger, metrics, logger)
	portfolio := services.NewPortfolioService(credentialRepo, balanceRepo, oracle, logger)
	export := services.NewExportService(portfolio, metrics, logger)

	if cfg.Sync.SchedulerEnabled {
		scheduler := services.NewSyncScheduler(credentialRepo, reconciler, &cfg.Sync, metrics, logger)
		go scheduler.Start(ctx)
	}

	router := server.NewRouter(&server.Dependencies{
		Config:         cfg,
		DB:             db.DB,
		Identity:       services.NewIdentityService(&cfg.Auth),
		Connections:    connections,
		Reconciliation: reconciler,
		Portfolio:      portfolio,
		Export:         export,
		RateLimiter:    middleware.NewRateLimiter(ctx, cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitBurst),
		MetricsHandler: promhttp.Handler(),
	})

	srv := &http.Server{
		Addr:              net.JoinHostPort(cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       120 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("http server starting", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case <-ctx.Done():
	case err := <-serveErr:
		if err != nil {
			return err
		}
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown failed", slog.String("error", err.Error()))
	}

	// initial syncs started by recent connects hold their own timeout
	connections.Wait()

	logger.Info("server exited")
	return nil
}
