package postgres

import (
	"context"
	"fmt"
	"linkaudit/pkg/domain"
	"linkaudit/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	auditsTable = "audits"
)

// Ensure PgSQL conforms to the storage interfaces at compile time.
var (
	_ storage.Storage   = (*PgSQL)(nil)
	_ storage.TxStorage = (*PgSQL)(nil)
)

func (p *PgSQL) StoreAudits(ctx context.Context, audits ...domain.Audit) ([]domain.Audit, error) {
	if len(audits) == 0 {
		return nil, nil
	}

	var rows []PgAudit
	if err := p.Builder.Insert(auditsTable).
		Rows(domainAuditsToPg(audits)).
		Returning(&PgAudit{}).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not store audits into pg: %w", err)
	}

	return pgAuditsToDomain(rows)
}

// UpdateAuditByID sets the provided fields, increments attempts and stamps
// updated_at. It returns nil when the audit does not exist.
func (p *PgSQL) UpdateAuditByID(ctx context.Context,
	id domain.AuditID,
	updates storage.AuditUpdates) (*domain.Audit, error) {
	rec := goqu.Record{
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
		"attempts":   goqu.L("attempts + 1"),
		"status":     string(updates.Status),
	}
	if updates.Result != nil {
		rec["result"] = string(domain.MarshalResult(*updates.Result))
	}
	if updates.LastError != nil {
		if *updates.LastError == "" {
			rec["last_error"] = goqu.L("NULL")
		} else {
			rec["last_error"] = *updates.LastError
		}
	}

	var row PgAudit
	found, err := p.Builder.Update(auditsTable).
		Set(rec).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Returning(&PgAudit{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update audit in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

func (p *PgSQL) AuditByID(ctx context.Context, id domain.AuditID) (*domain.Audit, error) {
	var row PgAudit
	found, err := p.Builder.From(auditsTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch audit by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// RunAudits returns the audits of a run ordered by notebook path.
func (p *PgSQL) RunAudits(ctx context.Context, runID domain.RunID) ([]domain.Audit, error) {
	var rows []PgAudit
	if err := p.Builder.From(auditsTable).
		Where(goqu.I("run_id").Eq(uuid.UUID(runID))).
		Order(goqu.I("notebook").Asc(), goqu.I("id").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch run audits from pg: %w", err)
	}

	return pgAuditsToDomain(rows)
}
