package api_test

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"io"
	"linkaudit/internal/api"
	"linkaudit/internal/api/handler/v1handler"
	mockrunner "linkaudit/internal/runner/mock"
	"linkaudit/pkg/domain"
	"linkaudit/pkg/metrics"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestServer(t *testing.T) (*mockrunner.MockRunner, *rsa.PrivateKey, *httptest.Server) {
	t.Helper()

	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	pubASN1, err := x509.MarshalPKIXPublicKey(&priv.PublicKey)
	require.NoError(t, err)

	reg := metrics.NewRegistry()
	mp, err := metrics.NewMeterProvider(reg)
	require.NoError(t, err)

	r := mockrunner.NewMockRunner(gomock.NewController(t))
	handler, err := api.NewHandler(api.Deps{
		Deps:     v1handler.Deps{Runner: r},
		Gatherer: reg,
		Meter:    mp.Meter(metrics.MeterName),
	}, api.Options{
		SecHandlerOptions: &v1handler.SecHandlerOptions{
			PublicKey: string(pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: pubASN1})),
		},
		RequestTimeout: 5 * time.Second,
		MetricsPath:    "/metrics",
	})
	require.NoError(t, err)

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return r, priv, srv
}

func get(t *testing.T, url, token string) *http.Response {
	t.Helper()

	req, err := http.NewRequest(http.MethodGet, url, nil)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	res, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = res.Body.Close() })

	return res
}

func TestServer_Routes(t *testing.T) {
	r, priv, srv := newTestServer(t)

	now := time.Now()
	token, err := jwt.NewWithClaims(jwt.SigningMethodRS256, jwt.RegisteredClaims{
		Subject:   "docs-ci",
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
	}).SignedString(priv)
	require.NoError(t, err)

	t.Run("v1 requires a token", func(t *testing.T) {
		res := get(t, srv.URL+"/v1/runs/"+uuid.NewString(), "")
		require.Equal(t, http.StatusUnauthorized, res.StatusCode)
		require.NotEmpty(t, res.Header.Get("X-Request-Id"))
		require.Equal(t, "*", res.Header.Get("Access-Control-Allow-Origin"))
	})

	t.Run("v1 with token", func(t *testing.T) {
		runID := domain.RunID(uuid.New())
		r.EXPECT().Run(gomock.Any(), runID).Return([]domain.Audit{{RunID: runID, Status: domain.AuditStatusPassed}}, nil)

		res := get(t, srv.URL+"/v1/runs/"+runID.String(), token)
		require.Equal(t, http.StatusOK, res.StatusCode)
		require.Equal(t, "application/json", res.Header.Get("Content-Type"))
	})

	t.Run("docs are public", func(t *testing.T) {
		require.Equal(t, http.StatusOK, get(t, srv.URL+"/specs/v1.yaml", "").StatusCode)
		require.Equal(t, http.StatusOK, get(t, srv.URL+"/v1/docs/", "").StatusCode)
	})

	t.Run("pprof", func(t *testing.T) {
		require.Equal(t, http.StatusOK, get(t, srv.URL+"/debug/pprof/", "").StatusCode)
	})

	t.Run("metrics include requests", func(t *testing.T) {
		res := get(t, srv.URL+"/metrics", "")
		require.Equal(t, http.StatusOK, res.StatusCode)

		body, err := io.ReadAll(res.Body)
		require.NoError(t, err)
		require.Contains(t, string(body), "linkaudit_http_requests_total")
	})
}
