package storage

import (
	"context"
	"linkaudit/pkg/domain"
)

// AuditUpdates lists the fields changed when an audit is processed.
type AuditUpdates struct {
	// Status is the new status of the audit.
	Status domain.AuditStatus
	// Result, when non-nil, replaces the stored result.
	Result *domain.AuditResult
	// LastError, when non-nil, sets the last error. An empty string clears it.
	LastError *string
}

// AuditStorage persists notebook audits.
type AuditStorage interface {
	// StoreAudits inserts the audits and returns them with their generated
	// fields populated, in input order.
	StoreAudits(ctx context.Context, audits ...domain.Audit) ([]domain.Audit, error)
	// UpdateAuditByID applies updates to the audit, increments its attempts
	// and sets updated_at. It returns nil when no such audit exists.
	UpdateAuditByID(ctx context.Context, ID domain.AuditID, updates AuditUpdates) (*domain.Audit, error)
	// AuditByID returns the audit with the given ID, or nil when not found.
	AuditByID(ctx context.Context, ID domain.AuditID) (*domain.Audit, error)
	// RunAudits returns the audits of a run ordered by notebook path. The
	// result is empty for an unknown run.
	RunAudits(ctx context.Context, runID domain.RunID) ([]domain.Audit, error)
}
