// Package probe defines the reachability capability the link auditor depends
// on. Implementations answer a single question per URL and never fail: any
// problem obtaining a response is reported as "not reachable".
package probe

import "context"

// Prober checks whether a URL is reachable.
//
//go:generate mockgen -package mockprobe -source=interface.go -destination=mock/mockprobe.go *
type Prober interface {
	// Reachable reports whether a response with a status code below 400 was
	// obtained for URL.
	Reachable(ctx context.Context, URL string) bool
}

// Func adapts an ordinary function to the Prober interface.
type Func func(ctx context.Context, URL string) bool

// Reachable calls f(ctx, URL).
func (f Func) Reachable(ctx context.Context, URL string) bool { return f(ctx, URL) }

// Static returns a Prober answering from verdicts; URLs missing from the map
// are unreachable.
func Static(verdicts map[string]bool) Prober {
	return Func(func(_ context.Context, URL string) bool { return verdicts[URL] })
}
