package v1handler_test

import (
	"context"
	"errors"
	"fmt"
	"linkaudit/internal/api/handler/v1handler"
	mockrunner "linkaudit/internal/runner/mock"
	"linkaudit/pkg/domain"
	"linkaudit/pkg/logger"
	"linkaudit/pkg/serrors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	_ = logger.Setup(logger.DevelopmentEnvironment, "")
	m.Run()
}

func TestNewError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		code    string
		message string
	}{
		{"plain error", errors.New("pq: connection refused"), 500, "INTERNAL", "internal error"},
		{"kind sentinel", serrors.ErrNotFound, 404, "NOT_FOUND", "resource not found"},
		{"kind with message", serrors.With(serrors.ErrBadRequest, "invalid runId"), 400, "BAD_REQUEST", "invalid runId"},
		{
			"wrapped kind",
			serrors.Wrap(serrors.ErrUnauthorized, errors.New("token is expired"), "invalid token"),
			401, "UNAUTHORIZED", "invalid token",
		},
		{
			"kind inside fmt wrap",
			fmt.Errorf("could not get audit: %w", serrors.With(serrors.ErrNotFound, "audit not found")),
			404, "NOT_FOUND", "audit not found",
		},
		{"dead links are internal", serrors.With(serrors.ErrDeadLinks, "nb:\n- x is dead"), 500, "INTERNAL", "internal error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := v1handler.NewError(context.Background(), tt.err)
			require.Equal(t, tt.status, res.StatusCode)
			require.Equal(t, tt.code, res.Code)
			require.Equal(t, tt.message, res.Message)
		})
	}
}

func newTestMux(t *testing.T) (*mockrunner.MockRunner, *http.ServeMux) {
	t.Helper()

	r := mockrunner.NewMockRunner(gomock.NewController(t))
	mux := http.NewServeMux()
	v1handler.New(v1handler.Deps{Runner: r}).Register(mux, func(h http.Handler) http.Handler { return h })

	return r, mux
}

func serve(mux http.Handler, method, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(method, path, nil))

	return rec
}

func TestHandler_CreateRun(t *testing.T) {
	r, mux := newTestMux(t)

	runID := domain.RunID(uuid.MustParse("7d0c7c2e-8a46-4b52-a0a8-4dc9b8a0c3f1"))
	auditID := domain.AuditID(uuid.MustParse("0b6f3c5e-2f5c-4a8e-9d55-0f6f2f3f9d10"))
	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	r.EXPECT().Start(gomock.Any()).Return(runID, []domain.Audit{{
		ID:        auditID,
		RunID:     runID,
		Notebook:  "docs/gallery/interactive/a.ipynb",
		Status:    domain.AuditStatusPending,
		Result:    domain.AuditResult{},
		CreatedAt: created,
	}}, nil)

	rec := serve(mux, http.MethodPost, "/v1/runs")
	require.Equal(t, http.StatusCreated, rec.Code)
	require.Equal(t, "/v1/runs/"+runID.String(), rec.Header().Get("Location"))
	require.JSONEq(t, `{
		"runId": "7d0c7c2e-8a46-4b52-a0a8-4dc9b8a0c3f1",
		"status": "PENDING",
		"passed": false,
		"audits": [{
			"id": "0b6f3c5e-2f5c-4a8e-9d55-0f6f2f3f9d10",
			"runId": "7d0c7c2e-8a46-4b52-a0a8-4dc9b8a0c3f1",
			"notebook": "docs/gallery/interactive/a.ipynb",
			"status": "PENDING",
			"result": {"notebook": "", "checked": 0, "passed": true, "dead": []},
			"attempts": 0,
			"createdAt": "2026-01-02T03:04:05Z"
		}]
	}`, rec.Body.String())
}

func TestHandler_CreateRun_NoNotebooks(t *testing.T) {
	r, mux := newTestMux(t)
	r.EXPECT().Start(gomock.Any()).Return(domain.RunID{}, nil, nil)

	rec := serve(mux, http.MethodPost, "/v1/runs")
	require.Equal(t, http.StatusCreated, rec.Code)
	require.Empty(t, rec.Header().Get("Location"))
	require.JSONEq(t, `{"status": "PASSED", "passed": true, "audits": []}`, rec.Body.String())
}

func TestHandler_CreateRun_Error(t *testing.T) {
	r, mux := newTestMux(t)
	r.EXPECT().Start(gomock.Any()).Return(domain.RunID{}, nil, errors.New("could not discover notebooks"))

	rec := serve(mux, http.MethodPost, "/v1/runs")
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.JSONEq(t, `{"code":"INTERNAL","error":"internal error"}`, rec.Body.String())
}

func TestHandler_GetRun(t *testing.T) {
	runID := domain.RunID(uuid.New())

	t.Run("failed run", func(t *testing.T) {
		r, mux := newTestMux(t)
		r.EXPECT().Run(gomock.Any(), runID).Return([]domain.Audit{
			{RunID: runID, Notebook: "a.ipynb", Status: domain.AuditStatusPassed},
			{RunID: runID, Notebook: "b.ipynb", Status: domain.AuditStatusFailed, Result: domain.AuditResult{
				Notebook: "b.ipynb",
				Checked:  2,
				Dead:     []domain.DeadLink{{URL: "http://dead.example/b", Reason: domain.ReasonDead}},
			}},
		}, nil)

		rec := serve(mux, http.MethodGet, "/v1/runs/"+runID.String())
		require.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		require.Contains(t, body, `"status":"FAILED"`)
		require.Contains(t, body, `"passed":false`)
		require.Contains(t, body, `{"url":"http://dead.example/b","reason":"dead"}`)
	})

	t.Run("unknown run", func(t *testing.T) {
		r, mux := newTestMux(t)
		r.EXPECT().Run(gomock.Any(), runID).Return(nil, serrors.With(serrors.ErrNotFound, "run not found"))

		rec := serve(mux, http.MethodGet, "/v1/runs/"+runID.String())
		require.Equal(t, http.StatusNotFound, rec.Code)
		require.JSONEq(t, `{"code":"NOT_FOUND","error":"run not found"}`, rec.Body.String())
	})

	t.Run("invalid id", func(t *testing.T) {
		_, mux := newTestMux(t)

		rec := serve(mux, http.MethodGet, "/v1/runs/nope")
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.JSONEq(t, `{"code":"BAD_REQUEST","error":"invalid runId"}`, rec.Body.String())
	})
}

func TestHandler_GetAudit(t *testing.T) {
	auditID := domain.AuditID(uuid.New())

	t.Run("found", func(t *testing.T) {
		r, mux := newTestMux(t)
		r.EXPECT().Audit(gomock.Any(), auditID).Return(&domain.Audit{
			ID:        auditID,
			Notebook:  "a.ipynb",
			Status:    domain.AuditStatusError,
			Attempts:  1,
			LastError: "read notebook: permission denied",
		}, nil)

		rec := serve(mux, http.MethodGet, "/v1/audits/"+auditID.String())
		require.Equal(t, http.StatusOK, rec.Code)
		require.True(t, strings.Contains(rec.Body.String(), `"lastError":"read notebook: permission denied"`))
		require.Contains(t, rec.Body.String(), `"id":"`+auditID.String()+`"`)
	})

	t.Run("missing", func(t *testing.T) {
		r, mux := newTestMux(t)
		r.EXPECT().Audit(gomock.Any(), auditID).Return(nil, serrors.With(serrors.ErrNotFound, "audit not found"))

		rec := serve(mux, http.MethodGet, "/v1/audits/"+auditID.String())
		require.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("wrong method", func(t *testing.T) {
		_, mux := newTestMux(t)

		rec := serve(mux, http.MethodDelete, "/v1/audits/"+auditID.String())
		require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	})
}
