package polis

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"github.com/foundriesio/polis-client/internal/constants"
)

// RequestInterceptor is called before a request is sent. It may add headers
// to req; returning an error aborts the call before any network I/O.
type RequestInterceptor func(ctx context.Context, req *http.Request) error

// ResponseInterceptor is called once the response headers have arrived. It
// must not consume resp.Body.
type ResponseInterceptor func(ctx context.Context, req *http.Request, resp *http.Response) error

// InterceptorChain manages a chain of interceptors. It is safe to add
// interceptors while requests are in flight.
type InterceptorChain struct {
	mu                   sync.RWMutex
	requestInterceptors  []RequestInterceptor
	responseInterceptors []ResponseInterceptor
}

// NewInterceptorChain creates a new interceptor chain.
func NewInterceptorChain() *InterceptorChain {
	return &InterceptorChain{
		requestInterceptors:  make([]RequestInterceptor, 0),
		responseInterceptors: make([]ResponseInterceptor, 0),
	}
}

// AddRequestInterceptor adds a request interceptor to the chain.
func (c *InterceptorChain) AddRequestInterceptor(interceptor RequestInterceptor) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.requestInterceptors = append(c.requestInterceptors, interceptor)
}

// AddResponseInterceptor adds a response interceptor to the chain.
func (c *InterceptorChain) AddResponseInterceptor(interceptor ResponseInterceptor) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.responseInterceptors = append(c.responseInterceptors, interceptor)
}

// ExecuteRequestInterceptors runs all request interceptors in order.
func (c *InterceptorChain) ExecuteRequestInterceptors(ctx context.Context, req *http.Request) error {
	if c == nil {
		return nil
	}

	c.mu.RLock()
	interceptors := c.requestInterceptors
	c.mu.RUnlock()

	for _, interceptor := range interceptors {
		err := interceptor(ctx, req)
		if err != nil {
			return fmt.Errorf("request interceptor failed: %w", err)
		}
	}

	return nil
}

// ExecuteResponseInterceptors runs all response interceptors in order.
func (c *InterceptorChain) ExecuteResponseInterceptors(ctx context.Context, req *http.Request, resp *http.Response) error {
	if c == nil {
		return nil
	}

	c.mu.RLock()
	interceptors := c.responseInterceptors
	c.mu.RUnlock()

	for _, interceptor := range interceptors {
		err := interceptor(ctx, req, resp)
		if err != nil {
			return fmt.Errorf("response interceptor failed: %w", err)
		}
	}

	return nil
}

// Common Interceptors

// LoggingInterceptor logs requests.
func LoggingInterceptor(logger Logger) RequestInterceptor {
	return func(ctx context.Context, req *http.Request) error {
		logger.Debug("API Request", map[string]interface{}{
			"method": req.Method,
			"path":   req.URL.Path,
		})

		return nil
	}
}

// LoggingResponseInterceptor logs responses. Failed statuses are logged at
// warn level.
func LoggingResponseInterceptor(logger Logger) ResponseInterceptor {
	return func(ctx context.Context, req *http.Request, resp *http.Response) error {
		fields := map[string]interface{}{
			"method":      req.Method,
			"path":        req.URL.Path,
			"status_code": resp.StatusCode,
		}

		if resp.StatusCode >= http.StatusBadRequest {
			logger.Warn("API Response Error", fields)
		} else {
			logger.Debug("API Response", fields)
		}

		return nil
	}
}

// HeaderInterceptor adds custom headers to requests.
func HeaderInterceptor(headers map[string]string) RequestInterceptor {
	return func(ctx context.Context, req *http.Request) error {
		for key, value := range headers {
			req.Header.Set(key, value)
		}

		return nil
	}
}

// BearerTokenInterceptor authenticates requests with a token supplied by the
// caller. Requests that already carry an Authorization header are left alone.
func BearerTokenInterceptor(tokenProvider func(context.Context) (string, error)) RequestInterceptor {
	return func(ctx context.Context, req *http.Request) error {
		if req.Header.Get(constants.HeaderAuthorization) != "" {
			return nil
		}

		token, err := tokenProvider(ctx)
		if err != nil {
			return fmt.Errorf("failed to get authentication token: %w", err)
		}

		req.Header.Set(constants.HeaderAuthorization, BearerAuth(token))

		return nil
	}
}

// BasicAuthInterceptor authenticates requests with static credentials unless
// they already carry an Authorization header.
func BasicAuthInterceptor(username, password string) RequestInterceptor {
	value := BasicAuth(username, password)

	return func(ctx context.Context, req *http.Request) error {
		if req.Header.Get(constants.HeaderAuthorization) == "" {
			req.Header.Set(constants.HeaderAuthorization, value)
		}

		return nil
	}
}
