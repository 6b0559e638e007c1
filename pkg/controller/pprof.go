package controller

import (
	"net/http"
	"net/http/pprof"
)

// PprofPrefix is where the profiling endpoints are served.
const PprofPrefix = "/debug/pprof/"

// PprofMux returns a mux serving the net/http/pprof handlers under PprofPrefix.
func PprofMux() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc(PprofPrefix, pprof.Index)
	mux.HandleFunc(PprofPrefix+"cmdline", pprof.Cmdline)
	mux.HandleFunc(PprofPrefix+"profile", pprof.Profile)
	mux.HandleFunc(PprofPrefix+"symbol", pprof.Symbol)
	mux.HandleFunc(PprofPrefix+"trace", pprof.Trace)

	return mux
}
