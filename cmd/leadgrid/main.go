// Command leadgrid serves the LeadGrid console: the role-gated,
// namespace-aware dashboard shell.
package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/leadgrid/leadgrid/internal/auth"
	"github.com/leadgrid/leadgrid/internal/config"
	"github.com/leadgrid/leadgrid/internal/nav"
	"github.com/leadgrid/leadgrid/internal/observability"
	"github.com/leadgrid/leadgrid/internal/server"
	"github.com/leadgrid/leadgrid/internal/tenants"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		zap.NewExample().Fatal("failed to load config", zap.Error(err))
	}

	log := buildLogger(cfg.LogLevel)
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := observability.SetupTracing(ctx, cfg.Tracing)
	if err != nil {
		log.Fatal("failed to set up tracing", zap.Error(err))
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = shutdownTracing(shutdownCtx)
	}()

	navCfg := nav.Default()
	if err := navCfg.Validate(); err != nil {
		log.Fatal("invalid navigation configuration", zap.Error(err))
	}

	provider := auth.StaticProvider{
		Bearer: cfg.Auth.Token,
		Logout: cfg.Auth.LogoutPath,
	}

	var dir tenants.Directory = tenants.NewClient(cfg.APIBaseURL, provider)
	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr})
		dir = tenants.NewCachedDirectory(dir, rdb, cfg.Redis.TTL, log)
		log.Info("tenant list cache enabled", zap.String("addr", cfg.Redis.Addr))
	}

	n := nav.New(navCfg, provider,
		nav.WithTenantDirectory(dir),
		nav.WithLogger(log),
	)

	var checker auth.Checker
	if cfg.Auth.Token != "" && cfg.Auth.User != nil {
		checker = auth.TokenChecker{Token: cfg.Auth.Token, User: cfg.Auth.User.User()}
	}

	srv := server.New(log, n, checker)

	httpServer := &http.Server{
		Addr:              cfg.Listen,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("console listening", zap.String("addr", cfg.Listen))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Warn("shutdown incomplete", zap.Error(err))
	}
}

func buildLogger(level string) *zap.Logger {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	log, err := cfg.Build()
	if err != nil {
		return zap.NewExample()
	}
	return log
}
