package runner

import (
	"context"
	"errors"
	"fmt"
	"linkaudit/internal/auditor"
	"linkaudit/internal/config"
	"linkaudit/pkg/domain"
	"linkaudit/pkg/logger"
	"linkaudit/pkg/serrors"
	"linkaudit/pkg/storage"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Options configure how runs are created and their jobs enqueued.
type Options struct {
	// Root is the directory the notebooks of a run are discovered in.
	Root string
	// MaxAttempts is how many times an audit that could not be completed is
	// processed. Values below one fall back to River's default.
	MaxAttempts int
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		Root:        cfg.Auditor.Root,
		MaxAttempts: cfg.Worker.MaxAttempts,
	}
}

type runner struct {
	options Options
	storage storage.Storage
	auditor auditor.Auditor
}

// Ensure runner conforms to the Runner interface at compile time.
var _ Runner = (*runner)(nil)

// New creates a Runner persisting to storage and auditing with auditor.
func New(storage storage.Storage, auditor auditor.Auditor, options Options) Runner {
	return &runner{
		options: options,
		storage: storage,
		auditor: auditor,
	}
}

// Start discovers the notebooks under the configured root and, in a single
// transaction, stores a pending audit and enqueues a job for each of them.
// An empty root creates no run: the zero RunID is returned with no audits.
func (r *runner) Start(ctx context.Context) (domain.RunID, []domain.Audit, error) {
	runID := domain.RunID(uuid.New())
	ctx = logger.WithFields(ctx, zap.Stringer("runID", runID))

	notebooks, err := r.auditor.Discover(ctx, r.options.Root)
	if err != nil {
		return domain.RunID{}, nil, fmt.Errorf("could not discover notebooks: %w", err)
	}
	if len(notebooks) == 0 {
		logger.Warn(ctx, "no notebooks found, no run created", zap.String("root", r.options.Root))

		return domain.RunID{}, nil, nil
	}

	pending := make([]domain.Audit, len(notebooks))
	for i, nb := range notebooks {
		pending[i] = domain.Audit{
			RunID:    runID,
			Notebook: nb,
			Status:   domain.AuditStatusPending,
		}
	}

	var audits []domain.Audit
	if err := r.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		stored, err := tx.StoreAudits(ctx, pending...)
		if err != nil {
			return fmt.Errorf("could not store audits: %w", err)
		}

		for _, a := range stored {
			if _, err := tx.AddJob(ctx, JobArgs{
				AuditID:     uuid.UUID(a.ID),
				maxAttempts: r.options.MaxAttempts,
			}, nil); err != nil {
				return fmt.Errorf("could not add job: %w", err)
			}
		}
		audits = stored

		return nil
	}); err != nil {
		return domain.RunID{}, nil, fmt.Errorf("could not start run: %w", err)
	}

	logger.Info(ctx, "run started", zap.Int("notebooks", len(audits)))

	return runID, audits, nil
}

// Process audits the notebook of a pending audit and records the verdict.
// Dead links are a completed audit, not a processing error. A notebook that
// could not be audited is marked ERROR and the cause is returned so the job
// may be retried.
func (r *runner) Process(ctx context.Context, auditID domain.AuditID) error {
	ctx = logger.WithFields(ctx, zap.Stringer("auditID", auditID))

	a, err := r.storage.AuditByID(ctx, auditID)
	if err != nil {
		return fmt.Errorf("could not get audit: %w", err)
	}
	if a == nil {
		return serrors.With(serrors.ErrNotFound, "audit not found")
	}
	if a.Status == domain.AuditStatusPassed || a.Status == domain.AuditStatusFailed {
		logger.Debug(ctx, "audit already completed", zap.String("status", string(a.Status)))

		return nil
	}

	result, auditErr := r.auditor.Audit(ctx, a.Notebook)
	if auditErr != nil && ctx.Err() != nil {
		return fmt.Errorf("audit interrupted: %w", auditErr)
	}

	noError := ""
	updates := storage.AuditUpdates{Status: domain.AuditStatusPassed, Result: &result, LastError: &noError}
	switch {
	case auditErr == nil:
	case errors.Is(auditErr, serrors.ErrDeadLinks):
		updates.Status = domain.AuditStatusFailed
	default:
		msg := auditErr.Error()
		updates = storage.AuditUpdates{Status: domain.AuditStatusError, LastError: &msg}
	}

	updated, err := r.storage.UpdateAuditByID(ctx, auditID, updates)
	if err != nil {
		return fmt.Errorf("could not update audit: %w", err)
	}
	if updated == nil {
		return serrors.With(serrors.ErrNotFound, "audit not found")
	}

	if updates.Status == domain.AuditStatusError {
		return fmt.Errorf("could not audit notebook: %w", auditErr)
	}

	return nil
}

// Run returns the audits of a run ordered by notebook path.
func (r *runner) Run(ctx context.Context, runID domain.RunID) ([]domain.Audit, error) {
	audits, err := r.storage.RunAudits(ctx, runID)
	if err != nil {
		return nil, fmt.Errorf("could not get run audits: %w", err)
	}
	if len(audits) == 0 {
		return nil, serrors.With(serrors.ErrNotFound, "run not found")
	}

	return audits, nil
}

// Audit returns a single audit.
func (r *runner) Audit(ctx context.Context, auditID domain.AuditID) (*domain.Audit, error) {
	a, err := r.storage.AuditByID(ctx, auditID)
	if err != nil {
		return nil, fmt.Errorf("could not get audit: %w", err)
	}
	if a == nil {
		return nil, serrors.With(serrors.ErrNotFound, "audit not found")
	}

	return a, nil
}
