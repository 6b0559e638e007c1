// Package httpprobe provides a probe.Prober that checks URLs with a single
// HEAD request.
package httpprobe

import (
	"context"
	"linkaudit/pkg/logger"
	"linkaudit/pkg/metrics"
	"linkaudit/pkg/probe"
	"net/http"
	"time"

	"github.com/go-faster/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// DefaultTimeout bounds a single probe when Options.Timeout is not set.
const DefaultTimeout = 5 * time.Second

// Options configure a Prober.
type Options struct {
	// Timeout bounds one probe, including connection setup. Zero means DefaultTimeout.
	Timeout time.Duration
	// UserAgent is sent with every probe when non-empty.
	UserAgent string
	// FollowRedirects makes the probe judge the final response of a redirect
	// chain. When false a 3xx response is itself the verdict.
	FollowRedirects bool
	// Metrics records probe outcomes; nil disables recording.
	Metrics *metrics.Probes
}

// Prober issues one HEAD request per URL and never retries. It is safe for
// concurrent use.
type Prober struct {
	httpClient *http.Client
	timeout    time.Duration
	userAgent  string
	metrics    *metrics.Probes
	tracer     trace.Tracer
}

// Ensure Prober conforms to the probe.Prober interface at compile time.
var _ probe.Prober = (*Prober)(nil)

// New constructs a Prober on top of httpClient (http.DefaultTransport when nil).
// The client is copied so its redirect policy can be set without side effects.
func New(httpClient *http.Client, opts Options) *Prober {
	var c http.Client
	if httpClient != nil {
		c = *httpClient
	}
	if !opts.FollowRedirects {
		c.CheckRedirect = func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		}
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &Prober{
		httpClient: &c,
		timeout:    timeout,
		userAgent:  opts.UserAgent,
		metrics:    opts.Metrics,
		tracer:     otel.Tracer("linkaudit/probe"),
	}
}

// Reachable reports whether URL answered a HEAD request with a status code
// below 400. Malformed URLs, DNS failures, connection errors and timeouts all
// yield false.
func (p *Prober) Reachable(ctx context.Context, URL string) bool {
	ctx, span := p.tracer.Start(ctx, "probe.Reachable", trace.WithAttributes(attribute.String("url", URL)))
	defer span.End()

	start := time.Now()
	status, err := p.head(ctx, URL)
	elapsed := time.Since(start)

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "no response")
		p.metrics.Record(ctx, metrics.OutcomeError, elapsed)
		logger.Debug(ctx, "probe got no response", zap.String("url", URL), zap.Error(err))

		return false
	}

	span.SetAttributes(attribute.Int("status", status))
	if status >= http.StatusBadRequest {
		p.metrics.Record(ctx, metrics.OutcomeDead, elapsed)
		logger.Debug(ctx, "probe got error status", zap.String("url", URL), zap.Int("status", status))

		return false
	}

	p.metrics.Record(ctx, metrics.OutcomeReachable, elapsed)
	logger.Debug(ctx, "probe succeeded", zap.String("url", URL), zap.Int("status", status))

	return true
}

func (p *Prober) head(ctx context.Context, URL string) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, URL, nil)
	if err != nil {
		return 0, errors.Wrap(err, "create request")
	}
	if p.userAgent != "" {
		req.Header.Set("User-Agent", p.userAgent)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return 0, errors.Wrap(err, "send request")
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	return resp.StatusCode, nil
}
