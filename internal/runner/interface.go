// Package runner schedules and processes service-mode audit runs. A run
// discovers the notebooks once, persists one pending audit per notebook and
// enqueues one job per audit; workers then call Process for each job.
package runner

import (
	"context"
	"linkaudit/pkg/domain"
)

//go:generate mockgen -package mockrunner -source=interface.go -destination=mock/mockrunner.go *
type Runner interface {
	Start(ctx context.Context) (domain.RunID, []domain.Audit, error)
	Process(ctx context.Context, auditID domain.AuditID) error
	Run(ctx context.Context, runID domain.RunID) ([]domain.Audit, error)
	Audit(ctx context.Context, auditID domain.AuditID) (*domain.Audit, error)
}
