package v1handler

import (
	"linkaudit/pkg/domain"
	"linkaudit/pkg/serrors"
	"net/http"

	"github.com/go-faster/jx"
	"github.com/google/uuid"
)

func encodeAudits(e *jx.Encoder, audits []domain.Audit) {
	e.ArrStart()
	for _, a := range audits {
		a.Encode(e)
	}
	e.ArrEnd()
}

func encodeRun(runID domain.RunID, audits []domain.Audit) func(e *jx.Encoder) {
	return func(e *jx.Encoder) {
		status := domain.RunStatus(audits)

		e.ObjStart()
		if !runID.IsZero() {
			e.FieldStart("runId")
			e.Str(runID.String())
		}
		e.FieldStart("status")
		e.Str(string(status))
		e.FieldStart("passed")
		e.Bool(status == domain.AuditStatusPassed)
		e.FieldStart("audits")
		encodeAudits(e, audits)
		e.ObjEnd()
	}
}

func pathUUID(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		return uuid.Nil, serrors.Wrap(serrors.ErrBadRequest, err, "invalid %s", name)
	}

	return id, nil
}

// CreateRun starts a run over the configured notebook root and answers 201
// with the pending audits. When the root holds no notebook nothing is
// persisted, so the body carries no runId and no Location is set.
func (h *Handler) CreateRun(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	runID, audits, err := h.deps.Runner.Start(ctx)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	if !runID.IsZero() {
		w.Header().Set("Location", "/v1/runs/"+runID.String())
	}
	writeJSON(ctx, w, http.StatusCreated, encodeRun(runID, audits))
}

// GetRun returns the audits of a run together with its folded status.
func (h *Handler) GetRun(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathUUID(r, "runId")
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	runID := domain.RunID(id)
	audits, err := h.deps.Runner.Run(ctx, runID)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	writeJSON(ctx, w, http.StatusOK, encodeRun(runID, audits))
}

// GetAudit returns a single notebook audit.
func (h *Handler) GetAudit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathUUID(r, "auditId")
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	a, err := h.deps.Runner.Audit(ctx, domain.AuditID(id))
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	writeJSON(ctx, w, http.StatusOK, a.Encode)
}
