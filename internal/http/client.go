// Package http implements the polis transport: URL building, body encoding,
// connection pooling and the HTTP verbs.
package http

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"slices"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/foundriesio/polis-client/internal/constants"
	"github.com/foundriesio/polis-client/pkg/polis"
)

// Request describes a single call. It is built per call and never shared.
type Request struct {
	Method  string
	Path    string
	Body    any
	Query   *polis.Query
	Options *polis.RequestOptions
}

// Transport sends requests to one API address. A Transport is safe for
// concurrent use and holds no mutable state once built.
type Transport struct {
	address         *url.URL
	basePath        string
	contentType     string
	trailingSlash   bool
	followRedirects bool
	insecure        bool

	headers   map[string]string
	timeout   time.Duration
	userAgent string

	debug        bool
	logger       polis.Logger
	interceptors *polis.InterceptorChain

	pool       *Pool
	middleware []Middleware
	client     *retryablehttp.Client
}

type startTimeKey struct{}

// NewTransport creates a transport for config. The address is validated here,
// before any network I/O.
func NewTransport(config *polis.Config, opts ...Option) (*Transport, error) {
	if config == nil {
		return nil, polis.ErrConfigRequired
	}

	if config.Address == "" {
		return nil, polis.ErrAddressRequired
	}

	address, err := ParseAddress(config.Address)
	if err != nil {
		return nil, err
	}

	transport := &Transport{
		address:         address,
		basePath:        constants.DefaultBasePath,
		contentType:     config.ContentType,
		trailingSlash:   config.TrailingSlash,
		followRedirects: !config.DisableRedirects,
		insecure:        config.InsecureSkipVerify,
		headers:         config.Headers,
		timeout:         config.Timeout,
		userAgent:       config.UserAgent,
		debug:           config.Debug,
		logger:          config.Logger,
		interceptors:    config.Interceptors,
		pool:            DefaultPool(),
	}

	if transport.contentType == "" {
		transport.contentType = constants.ContentTypeJSON
	}

	if transport.userAgent == "" {
		transport.userAgent = constants.DefaultUserAgent
	}

	if config.Metrics != nil {
		transport.middleware = append(transport.middleware, MetricsMiddleware(config.Metrics))
	}

	if mw := RequestIDMiddleware(config.RequestIDHeader); mw != nil {
		transport.middleware = append(transport.middleware, mw)
	}

	for _, opt := range opts {
		opt(transport)
	}

	if transport.logger == nil {
		transport.logger = polis.NopLogger{}
	}

	transport.client = transport.newRetryableClient()

	return transport, nil
}

func (t *Transport) newRetryableClient() *retryablehttp.Client {
	roundTripper := Chain(t.pool.Transport(t.address.Scheme, t.insecure), slices.Clone(t.middleware)...)

	httpClient := &http.Client{
		// The pooled transport is shared process-wide; hiding it behind a
		// func keeps CloseIdleConnections from reaching it.
		Transport: RoundTripperFunc(roundTripper.RoundTrip),
	}

	if !t.followRedirects {
		httpClient.CheckRedirect = func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		}
	}

	client := &retryablehttp.Client{
		HTTPClient:   httpClient,
		RetryMax:     0,
		CheckRetry:   neverRetry,
		Backoff:      retryablehttp.DefaultBackoff,
		ErrorHandler: retryablehttp.PassthroughErrorHandler,
	}

	if t.debug {
		client.RequestLogHook = t.logRequest
		client.ResponseLogHook = t.logResponse
	}

	return client
}

// neverRetry hands every outcome back to the caller.
func neverRetry(context.Context, *http.Response, error) (bool, error) {
	return false, nil
}

// WithBasePath returns a transport that shares t's connection pool and
// settings but resolves paths under basePath.
func (t *Transport) WithBasePath(basePath string) *Transport {
	clone := *t
	clone.basePath = basePath

	return &clone
}

// BasePath returns the base path requests are resolved under.
func (t *Transport) BasePath() string {
	return t.basePath
}

// Address returns the API base address.
func (t *Transport) Address() string {
	return t.address.String()
}

// ContentType returns the default content type.
func (t *Transport) ContentType() string {
	return t.contentType
}

// URL returns the absolute URL req would be sent to.
func (t *Transport) URL(req Request) (string, error) {
	trailingSlash := t.trailingSlash
	if req.Options != nil && req.Options.TrailingSlash != nil {
		trailingSlash = *req.Options.TrailingSlash
	}

	return BuildURL(t.address, t.basePath, req.Path, req.Query, trailingSlash)
}

// Fetch performs req and returns the raw response. Non-2xx statuses are not
// errors at this level. The caller owns the response body.
func (t *Transport) Fetch(ctx context.Context, req Request) (*http.Response, error) {
	method := req.Method
	if method == "" {
		method = http.MethodGet
	}

	options := req.Options
	if options == nil {
		options = &polis.RequestOptions{}
	}

	contentType := t.contentType
	if options.ContentType != "" {
		contentType = options.ContentType
	}

	target, err := t.URL(req)
	if err != nil {
		return nil, err
	}

	payload, hasBody, err := encodeBody(req.Body, contentType)
	if err != nil {
		return nil, err
	}

	timeout := t.timeout
	if options.Timeout > 0 {
		timeout = options.Timeout
	}

	cancel := context.CancelFunc(func() {})
	if timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, timeout)
	}

	ctx = context.WithValue(ctx, startTimeKey{}, time.Now())

	var rawBody any
	if len(payload) > 0 {
		rawBody = payload
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, method, target, rawBody)
	if err != nil {
		cancel()

		return nil, &polis.InvalidURLError{URL: target, Err: err}
	}

	t.setHeaders(httpReq.Header, options.Headers, contentType, hasBody)

	err = t.interceptors.ExecuteRequestInterceptors(ctx, httpReq.Request)
	if err != nil {
		cancel()

		return nil, fmt.Errorf("preparing %s %s: %w", method, target, err)
	}

	resp, err := t.client.Do(httpReq)
	if err != nil {
		cancel()

		return nil, requestError(ctx, method, target, err)
	}

	err = t.interceptors.ExecuteResponseInterceptors(ctx, httpReq.Request, resp)
	if err != nil {
		_ = resp.Body.Close()

		cancel()

		return nil, fmt.Errorf("handling %s %s: %w", method, target, err)
	}

	resp.Body = &cancelOnClose{ReadCloser: resp.Body, cancel: cancel}

	return resp, nil
}

// setHeaders applies default headers, then per-call headers. Content-Type is
// only added for requests with a body and never overrides the caller's.
func (t *Transport) setHeaders(header http.Header, callHeaders map[string]string, contentType string, hasBody bool) {
	for key, value := range t.headers {
		header.Set(key, value)
	}

	for key, value := range callHeaders {
		header.Set(key, value)
	}

	if hasBody && header.Get(constants.HeaderContentType) == "" {
		header.Set(constants.HeaderContentType, contentType)
	}

	if header.Get(constants.HeaderAccept) == "" {
		header.Set(constants.HeaderAccept, contentType)
	}

	if header.Get(constants.HeaderUserAgent) == "" {
		header.Set(constants.HeaderUserAgent, t.userAgent)
	}
}

// Get performs a GET request.
func (t *Transport) Get(ctx context.Context, req Request) (*http.Response, error) {
	req.Method = http.MethodGet

	return t.Fetch(ctx, req)
}

// Post performs a POST request.
func (t *Transport) Post(ctx context.Context, req Request) (*http.Response, error) {
	req.Method = http.MethodPost

	return t.Fetch(ctx, req)
}

// Put performs a PUT request.
func (t *Transport) Put(ctx context.Context, req Request) (*http.Response, error) {
	req.Method = http.MethodPut

	return t.Fetch(ctx, req)
}

// Patch performs a PATCH request.
func (t *Transport) Patch(ctx context.Context, req Request) (*http.Response, error) {
	req.Method = http.MethodPatch

	return t.Fetch(ctx, req)
}

// Delete performs a DELETE request.
func (t *Transport) Delete(ctx context.Context, req Request) (*http.Response, error) {
	req.Method = http.MethodDelete

	return t.Fetch(ctx, req)
}

// Head performs a HEAD request.
func (t *Transport) Head(ctx context.Context, req Request) (*http.Response, error) {
	req.Method = http.MethodHead

	return t.Fetch(ctx, req)
}

// Options performs an OPTIONS request.
func (t *Transport) Options(ctx context.Context, req Request) (*http.Response, error) {
	req.Method = http.MethodOptions

	return t.Fetch(ctx, req)
}

func (t *Transport) logRequest(_ retryablehttp.Logger, req *http.Request, _ int) {
	t.logger.Debug("HTTP Request", map[string]interface{}{
		"method": req.Method,
		"url":    req.URL.String(),
	})
}

func (t *Transport) logResponse(_ retryablehttp.Logger, resp *http.Response) {
	fields := map[string]interface{}{
		"status": resp.StatusCode,
	}

	if req := resp.Request; req != nil {
		fields["method"] = req.Method
		fields["url"] = req.URL.String()

		if start, ok := req.Context().Value(startTimeKey{}).(time.Time); ok {
			fields["duration"] = time.Since(start).String()
		}
	}

	t.logger.Debug("HTTP Response", fields)
}

func requestError(ctx context.Context, method, target string, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return fmt.Errorf("%w: %s %s: %w", polis.ErrCanceled, method, target, ctxErr)
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %s %s: %w", polis.ErrCanceled, method, target, err)
	}

	return &polis.NetworkError{Method: method, URL: target, Err: err}
}

// cancelOnClose releases the call context once the body is closed.
type cancelOnClose struct {
	io.ReadCloser

	cancel context.CancelFunc
}

func (c *cancelOnClose) Close() error {
	defer c.cancel()

	return c.ReadCloser.Close()
}
