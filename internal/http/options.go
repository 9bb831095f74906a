package http

import "github.com/foundriesio/polis-client/pkg/polis"

// Option configures a Transport.
type Option func(*Transport)

// WithPool sets the connection pool. Transports default to DefaultPool().
func WithPool(pool *Pool) Option {
	return func(t *Transport) {
		if pool != nil {
			t.pool = pool
		}
	}
}

// WithLogger sets the logger.
func WithLogger(logger polis.Logger) Option {
	return func(t *Transport) {
		t.logger = logger
	}
}

// WithDebug enables debug logging of every request and response.
func WithDebug(debug bool) Option {
	return func(t *Transport) {
		t.debug = debug
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(t *Transport) {
		if userAgent != "" {
			t.userAgent = userAgent
		}
	}
}

// WithHTTPMiddleware wraps the pooled round tripper with mws, outermost
// first.
func WithHTTPMiddleware(mws ...Middleware) Option {
	return func(t *Transport) {
		t.middleware = append(t.middleware, mws...)
	}
}
