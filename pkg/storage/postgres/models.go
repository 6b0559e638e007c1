package postgres

import (
	"database/sql"
	"fmt"
	"linkaudit/pkg/domain"
	"time"

	"github.com/google/uuid"
)

// PgAudit is the row layout of the audits table.
type PgAudit struct {
	ID    uuid.UUID `db:"id"     goqu:"skipinsert"`
	RunID uuid.UUID `db:"run_id"`

	Notebook string `db:"notebook"`
	Status   string `db:"status"`
	Result   []byte `db:"result" goqu:"skipinsert"`

	Attempts  uint           `db:"attempts"   goqu:"skipinsert"`
	LastError sql.NullString `db:"last_error" goqu:"skipinsert"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgAudit) ToDomain() (*domain.Audit, error) {
	result, err := domain.UnmarshalResult(p.Result)
	if err != nil {
		return nil, fmt.Errorf("could not decode audit result: %w", err)
	}

	return &domain.Audit{
		ID:        domain.AuditID(p.ID),
		RunID:     domain.RunID(p.RunID),
		Notebook:  p.Notebook,
		Status:    domain.AuditStatus(p.Status),
		Result:    result,
		Attempts:  p.Attempts,
		LastError: p.LastError.String,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt.Time,
	}, nil
}

func (p *PgAudit) FromDomain(audit domain.Audit) {
	*p = PgAudit{
		ID:       uuid.UUID(audit.ID),
		RunID:    uuid.UUID(audit.RunID),
		Notebook: audit.Notebook,
		Status:   string(audit.Status),
		Result:   domain.MarshalResult(audit.Result),
		Attempts: audit.Attempts,
		LastError: sql.NullString{
			String: audit.LastError,
			Valid:  audit.LastError != "",
		},
		CreatedAt: audit.CreatedAt,
		UpdatedAt: sql.NullTime{
			Time:  audit.UpdatedAt,
			Valid: !audit.UpdatedAt.IsZero(),
		},
	}
}

func domainAuditsToPg(audits []domain.Audit) []PgAudit {
	out := make([]PgAudit, len(audits))
	for i := range out {
		out[i].FromDomain(audits[i])
	}

	return out
}

func pgAuditsToDomain(audits []PgAudit) ([]domain.Audit, error) {
	out := make([]domain.Audit, 0, len(audits))
	for _, audit := range audits {
		d, err := audit.ToDomain()
		if err != nil {
			return nil, err
		}

		out = append(out, *d)
	}

	return out, nil
}
