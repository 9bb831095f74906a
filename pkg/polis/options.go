package polis

import (
	"encoding/base64"
	"maps"
	"time"

	"github.com/foundriesio/polis-client/internal/constants"
)

// RequestOptions are the per-call settings recognized by the transport.
// Cancellation is carried by the context passed to every call.
type RequestOptions struct {
	// Headers are added to the request after the configured default headers.
	// A caller-provided Content-Type wins over the transport's.
	Headers map[string]string

	// Timeout bounds the whole call, including reading the body. Zero means
	// the configured default, which itself defaults to no timeout.
	Timeout time.Duration

	// ContentType overrides the transport content type for this call, both
	// for body serialization and for the Content-Type header.
	ContentType string

	// TrailingSlash overrides the transport's trailing-slash convention for
	// this call when non-nil.
	TrailingSlash *bool
}

// WithHeader returns a copy of o with key set to value. o is left untouched,
// so shared options are never mutated. A nil receiver is treated as empty
// options.
func (o *RequestOptions) WithHeader(key, value string) *RequestOptions {
	clone := &RequestOptions{}
	if o != nil {
		*clone = *o
	}

	clone.Headers = make(map[string]string, len(clone.Headers)+1)
	if o != nil {
		maps.Copy(clone.Headers, o.Headers)
	}

	clone.Headers[key] = value

	return clone
}

// Params carries the optional arguments shared by every resource operation.
type Params struct {
	Query   *Query
	Options *RequestOptions
}

// Call carries the optional arguments of the generic verbs that also accept
// a path relative to the resource base path.
type Call struct {
	Path    string
	Query   *Query
	Options *RequestOptions
}

// At returns a Call for path carrying p's query and options.
func (p Params) At(path string) Call {
	return Call{Path: path, Query: p.Query, Options: p.Options}
}

// Bool returns a pointer to v, for RequestOptions.TrailingSlash.
func Bool(v bool) *bool {
	return &v
}

// BasicAuth returns the value of a Basic Authorization header.
func BasicAuth(username, password string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(username+":"+password))
}

// BearerAuth returns the value of a Bearer Authorization header.
func BearerAuth(token string) string {
	return "Bearer " + token
}

// WithBasicAuth returns a copy of o carrying Basic credentials.
func (o *RequestOptions) WithBasicAuth(username, password string) *RequestOptions {
	return o.WithHeader(constants.HeaderAuthorization, BasicAuth(username, password))
}

// WithBearerToken returns a copy of o carrying a Bearer token.
func (o *RequestOptions) WithBearerToken(token string) *RequestOptions {
	return o.WithHeader(constants.HeaderAuthorization, BearerAuth(token))
}
