package metrics

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// HTTP records API requests.
type HTTP struct {
	total    metric.Int64Counter
	duration metric.Float64Histogram
}

// NewHTTP creates the HTTP server instruments on meter.
func NewHTTP(meter metric.Meter) (*HTTP, error) {
	total, err := meter.Int64Counter("linkaudit_http_requests_total",
		metric.WithDescription("Number of API requests by route and status code."))
	if err != nil {
		return nil, fmt.Errorf("could not create requests counter: %w", err)
	}

	duration, err := meter.Float64Histogram("linkaudit_http_request_duration_seconds",
		metric.WithDescription("Latency of API requests."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(DefaultBuckets...))
	if err != nil {
		return nil, fmt.Errorf("could not create request duration histogram: %w", err)
	}

	return &HTTP{total: total, duration: duration}, nil
}

// Record counts one request. route is the matched mux pattern, never the raw
// path, to keep cardinality bounded. A nil receiver is a no-op.
func (h *HTTP) Record(ctx context.Context, method, route string, status int, elapsed time.Duration) {
	if h == nil {
		return
	}

	attrs := metric.WithAttributes(
		attribute.String("method", method),
		attribute.String("route", route),
		attribute.Int("code", status))
	h.total.Add(ctx, 1, attrs)
	h.duration.Record(ctx, elapsed.Seconds(), attrs)
}
