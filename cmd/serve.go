package main

import (
	"context"
	"errors"
	"linkaudit/internal/api"
	"linkaudit/internal/api/handler/v1handler"
	"linkaudit/internal/config"
	"linkaudit/internal/runner"
	"linkaudit/internal/worker"
	"linkaudit/pkg/logger"
	"linkaudit/pkg/metrics"
	"linkaudit/pkg/probe/httpprobe"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

func setupServer(ctx context.Context,
	cfg *config.Config,
	r runner.Runner,
	gatherer prometheus.Gatherer,
	meter metric.Meter) func(ctx context.Context) {
	server, err := api.NewServer(api.Deps{
		Deps:     v1handler.Deps{Runner: r},
		Gatherer: gatherer,
		Meter:    meter,
	}, api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...", zap.String("addr", cfg.HTTP.Addr))
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

// serveCommand constructs the 'serve' subcommand running the API server and
// the background audit workers until SIGINT or SIGTERM.
func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts API server and background audit workers",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			reg := metrics.NewRegistry()
			meterProvider, err := metrics.NewMeterProvider(reg)
			if err != nil {
				logger.Fatal(ctx, "could not create meter provider", zap.Error(err))
			}
			otel.SetMeterProvider(meterProvider)
			meter := meterProvider.Meter(metrics.MeterName)

			probes, err := metrics.NewProbes(meter)
			if err != nil {
				logger.Fatal(ctx, "could not create probe metrics", zap.Error(err))
			}

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			r := runner.New(strg, newAuditor(cfg, newProber(cfg, httpprobe.Options{Metrics: probes})), runner.NewOptions(cfg))

			// jobs must outlive the signal so that Stop can drain them.
			riverClient, err := worker.Start(context.WithoutCancel(ctx), strg.Pool, r, worker.NewOptions(cfg))
			if err != nil {
				logger.Fatal(ctx, "could not start audit workers", zap.Error(err))
			}

			stopWebserver := setupServer(ctx, cfg, r, reg, meter)

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)

			logger.Info(shutdownCtx, "stopping audit workers...")
			if err := riverClient.Stop(shutdownCtx); err != nil {
				logger.Error(shutdownCtx, "could not stop audit workers gracefully", zap.Error(err))
			}

			if err := meterProvider.Shutdown(shutdownCtx); err != nil {
				logger.Warn(shutdownCtx, "could not shutdown meter provider", zap.Error(err))
			}
		},
	}

	return cmd
}
