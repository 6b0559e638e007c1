// Package controller contains the HTTP middlewares and debug handlers shared
// by the API server: CORS, a request-scoped logger with request IDs, a
// per-request deadline and the pprof endpoints.
package controller
