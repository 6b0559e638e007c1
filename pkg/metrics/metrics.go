// Package metrics holds the OpenTelemetry instruments shared by the probe and
// the API server.
package metrics

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

// MeterName is the instrumentation scope of all linkaudit instruments.
const MeterName = "linkaudit"

// Outcome labels a probe result.
type Outcome string

const (
	// OutcomeReachable is a probe that got a response below 400.
	OutcomeReachable Outcome = "reachable"
	// OutcomeDead is a probe that got a response of 400 or above.
	OutcomeDead Outcome = "dead"
	// OutcomeError is a probe that got no response at all.
	OutcomeError Outcome = "error"
)

// Probes records probe counts and latencies.
type Probes struct {
	total    metric.Int64Counter
	duration metric.Float64Histogram
}

// NewProbes creates the probe instruments on meter.
func NewProbes(meter metric.Meter) (*Probes, error) {
	total, err := meter.Int64Counter("linkaudit_probes_total",
		metric.WithDescription("Number of URL probes by outcome."))
	if err != nil {
		return nil, fmt.Errorf("could not create probes counter: %w", err)
	}

	duration, err := meter.Float64Histogram("linkaudit_probe_duration_seconds",
		metric.WithDescription("Latency of URL probes."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(DefaultBuckets...))
	if err != nil {
		return nil, fmt.Errorf("could not create probe duration histogram: %w", err)
	}

	return &Probes{total: total, duration: duration}, nil
}

// Record counts one probe with its outcome and latency. A nil receiver is a no-op.
func (p *Probes) Record(ctx context.Context, outcome Outcome, elapsed time.Duration) {
	if p == nil {
		return
	}

	attrs := metric.WithAttributes(attribute.String("outcome", string(outcome)))
	p.total.Add(ctx, 1, attrs)
	p.duration.Record(ctx, elapsed.Seconds(), attrs)
}
