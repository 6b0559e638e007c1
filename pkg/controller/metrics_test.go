package controller_test

import (
	"context"
	"linkaudit/pkg/controller"
	"linkaudit/pkg/metrics"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func TestWithMetrics(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	m, err := metrics.NewHTTP(sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader)).Meter(metrics.MeterName))
	require.NoError(t, err)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /v1/runs/{runId}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	h := controller.WithMetrics(m, mux)

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/v1/runs/abc", nil))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	got := map[string]int64{}
	for _, sm := range rm.ScopeMetrics {
		for _, metric := range sm.Metrics {
			if metric.Name != "linkaudit_http_requests_total" {
				continue
			}
			for _, dp := range metric.Data.(metricdata.Sum[int64]).DataPoints {
				route, _ := dp.Attributes.Value("route")
				code, _ := dp.Attributes.Value("code")
				require.EqualValues(t, http.StatusNotFound, code.AsInt64())
				got[route.AsString()] += dp.Value
			}
		}
	}
	require.Equal(t, map[string]int64{"GET /v1/runs/{runId}": 1, "unmatched": 1}, got)
}
