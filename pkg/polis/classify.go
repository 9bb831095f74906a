package polis

import (
	"fmt"
	"net/http"
)

var kindsByStatus = map[int]ErrorKind{
	http.StatusBadRequest:          KindBadRequest,
	http.StatusUnauthorized:        KindUnauthorized,
	http.StatusForbidden:           KindForbidden,
	http.StatusNotFound:            KindNotFound,
	http.StatusMethodNotAllowed:    KindNotAllowed,
	http.StatusNotAcceptable:       KindNotAcceptable,
	http.StatusRequestTimeout:      KindRequestTimeout,
	http.StatusGone:                KindGone,
	http.StatusInternalServerError: KindServerError,
	http.StatusNotImplemented:      KindNotImplemented,
	http.StatusServiceUnavailable:  KindServiceUnavailable,
	http.StatusGatewayTimeout:      KindTimeout,
}

// KindForStatus maps an HTTP status to its error kind. Statuses without a
// dedicated kind map to KindHTTPError.
func KindForStatus(status int) ErrorKind {
	if kind, ok := kindsByStatus[status]; ok {
		return kind
	}

	return KindHTTPError
}

// Classify returns resp unchanged when its status is 2xx. Otherwise it reads
// the error body best-effort and returns an *HTTPError; a body that cannot be
// decoded leaves the corresponding HTTPError field empty.
func Classify(resp *Response) (*Response, error) {
	if resp.OK() {
		return resp, nil
	}

	return nil, newHTTPError(resp)
}

func newHTTPError(resp *Response) *HTTPError {
	status := resp.StatusCode()
	kind := KindForStatus(status)

	httpErr := &HTTPError{
		StatusCode: status,
		Kind:       kind,
		Message:    fmt.Sprintf("%s: %d %s", kind, status, http.StatusText(status)),
		Header:     resp.Header(),
	}

	if text, err := resp.Text(); err == nil {
		httpErr.Text = text
	}

	if payload, err := resp.JSON(); err == nil {
		httpErr.JSON = payload
	}

	_ = resp.Close()

	return httpErr
}
