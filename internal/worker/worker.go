// Package worker runs the background audit jobs on River.
package worker

import (
	"context"
	"fmt"
	"linkaudit/internal/config"
	"linkaudit/internal/runner"
	"linkaudit/pkg/logger"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
	"go.uber.org/zap/exp/zapslog"
)

// DefaultMaxWorkers is used when Options.MaxWorkers is not positive.
const DefaultMaxWorkers = 10

// Options configure the River client.
type Options struct {
	// MaxWorkers bounds how many audit jobs run at the same time.
	MaxWorkers int
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{MaxWorkers: cfg.Worker.MaxWorkers}
}

// NewClient builds a River client with the audit worker registered on the
// default queue. River logs through the context logger.
func NewClient(ctx context.Context,
	dbPool *pgxpool.Pool,
	runner runner.Runner,
	options Options) (*river.Client[pgx.Tx], error) {
	maxWorkers := options.MaxWorkers
	if maxWorkers <= 0 {
		maxWorkers = DefaultMaxWorkers
	}

	workers := river.NewWorkers()
	if err := river.AddWorkerSafely(workers, NewAuditWorker(runner)); err != nil {
		return nil, fmt.Errorf("could not register audit worker: %w", err)
	}

	riverClient, err := river.NewClient(riverpgxv5.New(dbPool), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: maxWorkers},
		},
		Workers: workers,
		Logger:  slog.New(zapslog.NewHandler(logger.Get(ctx).Core())),
	})
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}

	return riverClient, nil
}

// Start builds the River client and starts working jobs until ctx is done
// or the client is stopped.
func Start(ctx context.Context,
	dbPool *pgxpool.Pool,
	runner runner.Runner,
	options Options) (*river.Client[pgx.Tx], error) {
	riverClient, err := NewClient(ctx, dbPool, runner, options)
	if err != nil {
		return nil, err
	}

	if err := riverClient.Start(ctx); err != nil {
		return nil, fmt.Errorf("could not start river queue client: %w", err)
	}

	return riverClient, nil
}
