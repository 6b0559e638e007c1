package worker

import (
	"context"
	"errors"
	"fmt"
	"linkaudit/internal/runner"
	"linkaudit/pkg/domain"
	"linkaudit/pkg/logger"
	"linkaudit/pkg/serrors"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// AuditWorker is the River worker of AuditNotebookJob. Each job audits one
// notebook through the runner; concurrency across notebooks is bounded by the
// queue's MaxWorkers.
type AuditWorker struct {
	river.WorkerDefaults[runner.JobArgs]

	runner runner.Runner
}

// NewAuditWorker constructs an AuditWorker processing audits with runner.
func NewAuditWorker(runner runner.Runner) *AuditWorker {
	return &AuditWorker{runner: runner}
}

// Work processes the audit referenced by the job. A job whose audit no longer
// exists is cancelled; any other failure is returned so River can retry it
// within the job's MaxAttempts.
func (w *AuditWorker) Work(ctx context.Context, job *river.Job[runner.JobArgs]) error {
	ctx = logger.WithFields(ctx,
		zap.Int64("jobID", job.ID),
		zap.Int("attempt", job.Attempt),
		zap.String("auditID", job.Args.AuditID.String()))

	if err := w.runner.Process(ctx, domain.AuditID(job.Args.AuditID)); err != nil {
		if errors.Is(err, serrors.ErrNotFound) {
			logger.Warn(ctx, "audit of job not found, cancelling")

			return river.JobCancel(err) //nolint: wrapcheck
		}

		logger.Error(ctx, "could not process audit", zap.Error(err))

		return fmt.Errorf("could not process audit: %w", err)
	}

	logger.Debug(ctx, "audit processed")

	return nil
}
