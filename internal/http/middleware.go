package http

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/foundriesio/polis-client/pkg/polis"
)

// Middleware wraps an http.RoundTripper and returns a new one. The returned
// RoundTripper must be safe for concurrent use.
type Middleware func(http.RoundTripper) http.RoundTripper

// RoundTripperFunc adapts a function to an http.RoundTripper.
type RoundTripperFunc func(*http.Request) (*http.Response, error)

// RoundTrip implements http.RoundTripper.
func (f RoundTripperFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

// Chain applies middlewares to base: Chain(base, a, b) returns a(b(base)).
// Nil middlewares are skipped.
func Chain(base http.RoundTripper, mws ...Middleware) http.RoundTripper {
	for i := len(mws) - 1; i >= 0; i-- {
		if mws[i] == nil {
			continue
		}

		base = mws[i](base)
	}

	return base
}

// MetricsMiddleware records every round trip in metrics.
func MetricsMiddleware(metrics *polis.Metrics) Middleware {
	return func(next http.RoundTripper) http.RoundTripper {
		return RoundTripperFunc(func(r *http.Request) (*http.Response, error) {
			done := metrics.Begin(r.Method)

			resp, err := next.RoundTrip(r)
			if err != nil {
				done(0, err)

				return resp, err //nolint:wrapcheck // round trippers pass errors through
			}

			done(resp.StatusCode, nil)

			return resp, nil
		})
	}
}

// RequestIDMiddleware sets header to a random UUID on requests that do not
// carry it yet. An empty header disables the middleware.
func RequestIDMiddleware(header string) Middleware {
	if header == "" {
		return nil
	}

	return func(next http.RoundTripper) http.RoundTripper {
		return RoundTripperFunc(func(r *http.Request) (*http.Response, error) {
			if r.Header.Get(header) != "" {
				return next.RoundTrip(r) //nolint:wrapcheck // round trippers pass errors through
			}

			clone := r.Clone(r.Context())
			clone.Header.Set(header, uuid.NewString())

			return next.RoundTrip(clone) //nolint:wrapcheck // round trippers pass errors through
		})
	}
}
