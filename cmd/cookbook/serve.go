package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mwhite7112/woodpantry-cookbook/internal/api"
	"github.com/mwhite7112/woodpantry-cookbook/internal/config"
	"github.com/mwhite7112/woodpantry-cookbook/internal/cookbook"
	"github.com/mwhite7112/woodpantry-cookbook/internal/logging"
	"github.com/mwhite7112/woodpantry-cookbook/internal/seed"
	"github.com/mwhite7112/woodpantry-cookbook/internal/service"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func newServeCmd() *cobra.Command {
	cfg, loadErr := config.Load()

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the cookbook HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			if loadErr != nil {
				return loadErr
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, cfg)
		},
	}

	f := cmd.Flags()
	f.StringVar(&cfg.Port, "port", cfg.Port, "listen port (env PORT)")
	f.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "debug, info, warn or error (env LOG_LEVEL)")
	f.StringVar(&cfg.SeedFile, "seed", cfg.SeedFile, "YAML file of entries to load at startup (env SEED_FILE)")
	f.Float64Var(&cfg.SuggestThreshold, "suggest-threshold", cfg.SuggestThreshold, "minimum similarity for name suggestions (env SUGGEST_THRESHOLD)")
	f.Float64Var(&cfg.RateLimit, "rate-limit", cfg.RateLimit, "requests per second, 0 disables (env RATE_LIMIT)")
	f.IntVar(&cfg.RateLimitBurst, "rate-limit-burst", cfg.RateLimitBurst, "rate limiter burst (env RATE_LIMIT_BURST)")
	f.DurationVar(&cfg.ShutdownTimeout, "shutdown-timeout", cfg.ShutdownTimeout, "graceful shutdown timeout (env SHUTDOWN_TIMEOUT)")

	return cmd
}

func serve(ctx context.Context, cfg config.Config) error {
	logging.SetupWithLevel(cfg.LogLevel)

	svc := service.New(cookbook.NewMemoryStore(), cfg.SuggestThreshold)
	if cfg.SeedFile != "" {
		if _, err := seed.LoadFile(ctx, svc, cfg.SeedFile); err != nil {
			return err
		}
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           api.NewRouter(svc, api.WithRateLimit(cfg.RateLimit, cfg.RateLimitBurst)),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("cookbook service listening", "addr", srv.Addr, "version", version)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		slog.Info("shutting down server")
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		slog.Error("server error", "error", err)
		return err
	}
	slog.Info("server stopped gracefully")
	return nil
}
