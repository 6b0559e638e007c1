// Package api configures the HTTP server of the audit service: the v1 routes,
// metrics, API docs, profiling endpoints and the shared middlewares.
package api

import (
	_ "embed"
	"fmt"
	"linkaudit/internal/api/handler/v1handler"
	"linkaudit/internal/config"
	"linkaudit/pkg/controller"
	"linkaudit/pkg/metrics"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/swaggest/swgui/v5emb"
	"go.opentelemetry.io/otel/metric"
)

// v1Spec contains the embedded OpenAPI specification for version 1 of the API.
//
//go:embed specs/v1.yaml
var v1Spec []byte

// Options holds configuration for the HTTP server, usually built with NewOptions.
type Options struct {
	// SecHandlerOptions configures bearer authentication of the v1 routes.
	SecHandlerOptions *v1handler.SecHandlerOptions

	// Addr is the TCP address the server listens on, e.g. ":8080".
	Addr string
	// ReadTimeout is the maximum duration for reading the entire request, including the body.
	ReadTimeout time.Duration
	// ReadHeaderTimeout is the amount of time allowed to read request headers.
	ReadHeaderTimeout time.Duration
	// WriteTimeout is the maximum duration before timing out writes of the response.
	WriteTimeout time.Duration
	// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled.
	IdleTimeout time.Duration
	// RequestTimeout bounds the context of every request.
	RequestTimeout time.Duration
	// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header.
	MaxHeaderBytes int
	// MetricsPath is the HTTP path at which Prometheus metrics are served.
	MetricsPath string
}

// NewOptions maps the HTTP settings of cfg to Options.
func NewOptions(cfg *config.Config) Options {
	return Options{
		SecHandlerOptions: v1handler.NewSecHandlerOptions(cfg),

		Addr:              cfg.HTTP.Addr,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
		RequestTimeout:    cfg.HTTP.RequestTimeout,
		MaxHeaderBytes:    cfg.HTTP.MaxHeaderBytes,
		MetricsPath:       cfg.HTTP.MetricsPath,
	}
}

// Deps are the services and telemetry sinks the server is built on.
type Deps struct {
	v1handler.Deps

	// Gatherer is served on MetricsPath.
	Gatherer prometheus.Gatherer
	// Meter creates the HTTP request instruments.
	Meter metric.Meter
}

// NewHandler builds the root handler: metrics, the OpenAPI spec and its
// Swagger UI, the authenticated v1 routes and pprof, wrapped with request
// metrics, a request deadline, CORS and the access logger.
func NewHandler(deps Deps, opts Options) (http.Handler, error) {
	mux := http.NewServeMux()

	mux.Handle("GET "+opts.MetricsPath, promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{}))

	mux.HandleFunc("GET /specs/v1.yaml", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(v1Spec)
	})
	mux.Handle("/v1/docs/", v5emb.New(
		"Link Audit Service",
		"/specs/v1.yaml",
		"/v1/docs/",
	))

	secHandler, err := v1handler.NewSecHandler(opts.SecHandlerOptions)
	if err != nil {
		return nil, fmt.Errorf("could not create sec handler: %w", err)
	}
	v1handler.New(deps.Deps).Register(mux, secHandler.Middleware)

	mux.Handle(controller.PprofPrefix, controller.PprofMux())

	httpMetrics, err := metrics.NewHTTP(deps.Meter)
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	handler := controller.WithMetrics(httpMetrics, mux)
	handler = controller.WithTimeout(opts.RequestTimeout, handler)
	handler = controller.WithCORS(handler)
	handler = controller.WithLogger(handler)

	return handler, nil
}

// NewServer wires NewHandler into an *http.Server configured from opts.
func NewServer(deps Deps, opts Options) (*http.Server, error) {
	handler, err := NewHandler(deps, opts)
	if err != nil {
		return nil, err
	}

	return &http.Server{
		Addr:              opts.Addr,
		Handler:           handler,
		ReadTimeout:       opts.ReadTimeout,
		ReadHeaderTimeout: opts.ReadHeaderTimeout,
		WriteTimeout:      opts.WriteTimeout,
		IdleTimeout:       opts.IdleTimeout,
		MaxHeaderBytes:    opts.MaxHeaderBytes,
	}, nil
}
