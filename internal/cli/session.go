package cli

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/aretw0/fable"
	"github.com/aretw0/fable/internal/config"
	"github.com/aretw0/fable/internal/presentation/tui"
	"github.com/aretw0/fable/pkg/domain"
	"github.com/aretw0/fable/pkg/observability"
	"github.com/aretw0/fable/pkg/runner"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RunSession executes one interactive session over in/out.
func RunSession(ctx context.Context, cfg config.Config, in io.Reader, out io.Writer) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	logger := createLogger(cfg)
	interactive := isTerminal(in)

	loader, closeLoader := createLoader(cfg)
	defer func() {
		if err := closeLoader(); err != nil {
			logger.Warn("failed to close story source", "error", err)
		}
	}()

	var hooks domain.LifecycleHooks
	if cfg.MetricsAddr != "" {
		reg := prometheus.NewRegistry()
		hooks = observability.NewMetrics(reg).Hooks()
		stop := serveMetrics(cfg.MetricsAddr, reg, logger)
		defer stop()
	}

	engine, err := createEngine(cfg, loader, logger, hooks)
	if err != nil {
		return err
	}

	if interactive {
		tui.PrintBanner(out, fable.Version)
		if cfg.Story == "" {
			tui.SystemMessage(out, "Type the name of a story file. %s closes it, %s exits.", runner.CommandReset, runner.CommandQuit)
		}
	}

	opts := []runner.Option{
		runner.WithInput(in),
		runner.WithOutput(out),
		runner.WithLogger(logger),
		runner.WithHeadless(!interactive),
		runner.WithStory(cfg.Story),
	}
	if interactive && !cfg.Plain {
		opts = append(opts, runner.WithRenderer(tui.NewRenderer()))
	}

	err = runner.New(opts...).Run(ctx, engine)
	if errors.Is(err, context.Canceled) {
		return nil // Exit 0 for interruptions
	}
	return err
}

// serveMetrics exposes reg on addr until the returned func is called.
func serveMetrics(addr string, reg *prometheus.Registry, logger *slog.Logger) func() {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		logger.Info("serving metrics", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", "error", err)
		}
	}()

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}
}
