// Package main runs the execution quote service: an HTTP API and
// WebSocket stream over the quote engine, with Prometheus metrics.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"exec-planner/internal/config"
	"exec-planner/internal/logging"
	"exec-planner/internal/observability"
	"exec-planner/internal/server"
	"exec-planner/internal/simulation"
)

func main() {
	configPath := flag.String("config", "", "Path to YAML config file (defaults apply when empty)")
	flag.Parse()

	if err := run(*configPath); err != nil {
		fmt.Fprintf(os.Stderr, "server: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger, err := logging.NewLogger(cfg.Logging)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	assembler := simulation.NewAssembler(simulation.Options{
		Params:    cfg.Engine.ToParams(),
		CacheSize: cfg.Cache.Size,
	})
	metrics := observability.NewMetrics()
	srv := server.New(assembler, cfg.Market.ToSnapshot(), metrics, logger)
	httpSrv := srv.HTTPServer(cfg.Server)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("listening",
			zap.String("addr", cfg.Server.Addr),
			zap.Float64("spot_price", cfg.Market.SpotPrice),
			zap.Int("cache_size", cfg.Cache.Size))
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		logger.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		return httpSrv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("stopped")
	return nil
}
