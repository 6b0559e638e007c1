// Package auditor finds the notebooks of a documentation gallery, extracts the
// URLs embedded in their raw text and reports the ones that do not answer a
// probe. Reachability is delegated to a probe.Prober so the auditor itself
// performs no network I/O.
package auditor

import (
	"context"
	"linkaudit/pkg/domain"
)

// Auditor audits notebooks for dead links.
//
//go:generate mockgen -package mockauditor -source=interface.go -destination=mock/mockauditor.go *
type Auditor interface {
	// Discover lists the notebook files under root in lexical order.
	Discover(ctx context.Context, root string) ([]string, error)
	// Audit checks every URL found in the notebook at path. When at least one
	// URL is unreachable, the returned error is of kind serrors.ErrDeadLinks and
	// its message is the notebook report.
	Audit(ctx context.Context, path string) (domain.AuditResult, error)
	// AuditAll discovers the notebooks under root and audits each of them
	// exactly once, one after the other.
	AuditAll(ctx context.Context, root string) ([]domain.AuditResult, error)
}
