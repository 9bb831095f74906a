package polis

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorKind is the symbolic classification of a failed HTTP status.
type ErrorKind string

// Error kinds produced by Classify.
const (
	KindBadRequest         ErrorKind = "bad_request"
	KindUnauthorized       ErrorKind = "unauthorized"
	KindForbidden          ErrorKind = "forbidden"
	KindNotFound           ErrorKind = "not_found"
	KindNotAllowed         ErrorKind = "not_allowed"
	KindNotAcceptable      ErrorKind = "not_acceptable"
	KindRequestTimeout     ErrorKind = "request_timeout"
	KindGone               ErrorKind = "gone"
	KindServerError        ErrorKind = "server_error"
	KindNotImplemented     ErrorKind = "not_implemented"
	KindServiceUnavailable ErrorKind = "service_unavailable"
	KindTimeout            ErrorKind = "timeout"

	// KindHTTPError is used for every status without a dedicated kind.
	KindHTTPError ErrorKind = "http_error"
)

// Static errors that can be wrapped with context.
var (
	ErrConfigRequired        = errors.New("config is required")
	ErrAddressRequired       = errors.New("API address is required")
	ErrIDRequired            = errors.New("resource id is required")
	ErrCanceled              = errors.New("request canceled")
	ErrResponseClosed        = errors.New("response body already closed")
	ErrUnexpectedContentType = errors.New("unexpected content type")
)

// InvalidURLError reports a base address or request path that cannot form an
// absolute URL. It is returned before any network call is made.
type InvalidURLError struct {
	URL string
	Err error
}

func (e *InvalidURLError) Error() string {
	return fmt.Sprintf("invalid URL %q: %v", e.URL, e.Err)
}

func (e *InvalidURLError) Unwrap() error {
	return e.Err
}

// NetworkError reports a failure to complete the HTTP exchange: connection
// refused, DNS failure, reset, TLS verification failure.
type NetworkError struct {
	Method string
	URL    string
	Err    error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Method, e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// DecodeError reports a body that is present but cannot be decoded as the
// requested representation.
type DecodeError struct {
	ContentType string
	Format      string
	Err         error
}

func (e *DecodeError) Error() string {
	if e.ContentType == "" {
		return fmt.Sprintf("decoding %s body: %v", e.Format, e.Err)
	}

	return fmt.Sprintf("decoding %s body (content type %q): %v", e.Format, e.ContentType, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// EncodeError reports a request body that cannot be serialized for the
// effective content type.
type EncodeError struct {
	ContentType string
	Err         error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("encoding request body as %q: %v", e.ContentType, e.Err)
}

func (e *EncodeError) Unwrap() error {
	return e.Err
}

// HTTPError represents a non-2xx response from the API. It is built by
// Classify; Text and JSON hold the decoded error body when it could be
// decoded and are empty otherwise.
type HTTPError struct {
	StatusCode int
	Kind       ErrorKind
	Message    string
	Text       string
	JSON       any
	Header     http.Header
}

// Error implements the error interface.
func (e *HTTPError) Error() string {
	return e.Message
}

// IsKind reports whether err is an HTTPError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	httpErr := &HTTPError{}
	if errors.As(err, &httpErr) {
		return httpErr.Kind == kind
	}

	return false
}

// IsNotFound checks if the error is a not found error.
func IsNotFound(err error) bool {
	return IsKind(err, KindNotFound)
}

// IsUnauthorized checks if the error is an unauthorized error.
func IsUnauthorized(err error) bool {
	return IsKind(err, KindUnauthorized)
}

// IsForbidden checks if the error is a forbidden error.
func IsForbidden(err error) bool {
	return IsKind(err, KindForbidden)
}

// IsCanceled checks if the request was canceled or ran past its deadline.
func IsCanceled(err error) bool {
	return errors.Is(err, ErrCanceled)
}

// StatusCode returns the HTTP status carried by err, or 0 when err is not an
// HTTPError.
func StatusCode(err error) int {
	httpErr := &HTTPError{}
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode
	}

	return 0
}
