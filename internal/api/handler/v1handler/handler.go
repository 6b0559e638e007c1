// Package v1handler implements the version 1 HTTP API: starting audit runs
// and reading their results.
package v1handler

import (
	"context"
	"linkaudit/internal/runner"
	"linkaudit/pkg/logger"
	"net/http"

	"github.com/go-faster/jx"
	"go.uber.org/zap"
)

// Deps are the services the handlers call into.
type Deps struct {
	Runner runner.Runner
}

type Handler struct {
	deps Deps
}

func New(deps Deps) *Handler {
	return &Handler{deps: deps}
}

// Register mounts the v1 routes on mux, each wrapped by auth.
func (h *Handler) Register(mux *http.ServeMux, auth func(http.Handler) http.Handler) {
	mux.Handle("POST /v1/runs", auth(http.HandlerFunc(h.CreateRun)))
	mux.Handle("GET /v1/runs/{runId}", auth(http.HandlerFunc(h.GetRun)))
	mux.Handle("GET /v1/audits/{auditId}", auth(http.HandlerFunc(h.GetAudit)))
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, encode func(e *jx.Encoder)) {
	var e jx.Encoder
	encode(&e)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(e.Bytes()); err != nil {
		logger.Warn(ctx, "could not write response", zap.Error(err))
	}
}

func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	res := NewError(ctx, err)
	writeJSON(ctx, w, res.StatusCode, res.Encode)
}
