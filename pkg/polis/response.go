package polis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/foundriesio/polis-client/internal/constants"
	"github.com/foundriesio/polis-client/internal/mediatype"
)

// maxDrainBytes bounds how much of an unread body Close discards so the
// connection can return to the pool.
const maxDrainBytes = 64 << 10

// Pagination holds the page cursor carried by collection responses.
type Pagination struct {
	Total   int `json:"total"`
	Last    int `json:"last"`
	Next    int `json:"next"`
	Current int `json:"current"`
	Pages   int `json:"pages"`
	Limit   int `json:"limit"`
	Prev    int `json:"prev"`
}

// Response wraps an *http.Response with lazily decoded, cached body
// representations.
//
// The body is not read until Bytes, Text, JSON or Decode is first called, and
// it is read at most once no matter how many accessors run or from how many
// goroutines. A Response whose body is never decoded must be closed with
// Close to release its connection.
type Response struct {
	raw        *http.Response
	header     http.Header
	pagination Pagination

	readOnce sync.Once
	body     []byte
	readErr  error

	textOnce sync.Once
	text     string
	textErr  error

	jsonOnce sync.Once
	json     any
	jsonErr  error
}

// NewResponse wraps raw. The pagination metadata is derived from the headers
// here, once.
func NewResponse(raw *http.Response) *Response {
	header := raw.Header
	if header == nil {
		header = http.Header{}
	}

	return &Response{
		raw:        raw,
		header:     header,
		pagination: parsePagination(header),
	}
}

// StatusCode returns the HTTP status code.
func (r *Response) StatusCode() int {
	return r.raw.StatusCode
}

// OK reports whether the status code is in [200, 300).
func (r *Response) OK() bool {
	return r.raw.StatusCode >= http.StatusOK && r.raw.StatusCode < http.StatusMultipleChoices
}

// Header returns a copy of the response headers.
func (r *Response) Header() http.Header {
	return r.header.Clone()
}

// ContentType returns the raw Content-Type header value.
func (r *Response) ContentType() string {
	return r.header.Get(constants.HeaderContentType)
}

// Raw returns the underlying response. Reading Raw().Body directly bypasses
// the decode cache.
func (r *Response) Raw() *http.Response {
	return r.raw
}

// Pagination returns the pagination metadata. Missing or non-numeric headers
// yield zero fields.
func (r *Response) Pagination() Pagination {
	return r.pagination
}

// Bytes reads the body once and returns it. The body is closed after reading.
func (r *Response) Bytes() ([]byte, error) {
	r.readOnce.Do(func() {
		if r.raw.Body == nil {
			return
		}

		defer func() { _ = r.raw.Body.Close() }()

		body, err := io.ReadAll(r.raw.Body)
		if err != nil {
			r.readErr = r.readError(err)

			return
		}

		r.body = body
	})

	return r.body, r.readErr
}

// Text returns the body as a string. Binary content types fail with a
// *DecodeError.
func (r *Response) Text() (string, error) {
	r.textOnce.Do(func() {
		contentType := r.ContentType()
		mediaType := mediatype.Parse(contentType)

		if mediaType != "" && !mediatype.IsText(mediaType) {
			r.textErr = &DecodeError{ContentType: contentType, Format: "text", Err: ErrUnexpectedContentType}

			return
		}

		body, err := r.Bytes()
		if err != nil {
			r.textErr = err

			return
		}

		r.text = string(body)
	})

	return r.text, r.textErr
}

// JSON decodes the body as JSON once and returns the cached value on every
// later call. A missing Content-Type is tolerated; any other non-JSON content
// type fails with a *DecodeError.
func (r *Response) JSON() (any, error) {
	r.jsonOnce.Do(func() {
		contentType := r.ContentType()
		mediaType := mediatype.Parse(contentType)

		if mediaType != "" && !mediatype.IsJSON(mediaType) {
			r.jsonErr = &DecodeError{ContentType: contentType, Format: "json", Err: ErrUnexpectedContentType}

			return
		}

		body, err := r.Bytes()
		if err != nil {
			r.jsonErr = err

			return
		}

		var payload any

		err = json.Unmarshal(body, &payload)
		if err != nil {
			r.jsonErr = &DecodeError{ContentType: contentType, Format: "json", Err: err}

			return
		}

		r.json = payload
	})

	return r.json, r.jsonErr
}

// Decode unmarshals the body into v according to the response content type
// (JSON or YAML). Each call decodes the cached bytes again, so v may be any
// type.
func (r *Response) Decode(v any) error {
	contentType := r.ContentType()
	mediaType := mediatype.Parse(contentType)

	body, err := r.Bytes()
	if err != nil {
		return err
	}

	switch {
	case mediaType == "" || mediatype.IsJSON(mediaType):
		err = json.Unmarshal(body, v)
		if err != nil {
			return &DecodeError{ContentType: contentType, Format: "json", Err: err}
		}
	case mediatype.IsYAML(mediaType):
		err = yaml.Unmarshal(body, v)
		if err != nil {
			return &DecodeError{ContentType: contentType, Format: "yaml", Err: err}
		}
	default:
		return &DecodeError{ContentType: contentType, Format: mediaType, Err: ErrUnexpectedContentType}
	}

	return nil
}

// Close releases the body without decoding it. Later reads fail with
// ErrResponseClosed. Close after a decode is a no-op.
func (r *Response) Close() error {
	var err error

	r.readOnce.Do(func() {
		r.readErr = ErrResponseClosed

		if r.raw.Body == nil {
			return
		}

		_, _ = io.Copy(io.Discard, io.LimitReader(r.raw.Body, maxDrainBytes))
		err = r.raw.Body.Close()
	})

	return err
}

func (r *Response) readError(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: reading body: %w", ErrCanceled, err)
	}

	method, target := "", ""
	if req := r.raw.Request; req != nil && req.URL != nil {
		method = req.Method
		target = req.URL.String()
	}

	return &NetworkError{Method: method, URL: target, Err: err}
}

func parsePagination(header http.Header) Pagination {
	return Pagination{
		Total:   headerInt(header, constants.HeaderPaginationCount),
		Last:    headerInt(header, constants.HeaderPaginationLastPage),
		Next:    headerInt(header, constants.HeaderPaginationNextPage),
		Current: headerInt(header, constants.HeaderPaginationRequestedPage),
		Pages:   headerInt(header, constants.HeaderPaginationPages),
		Limit:   headerInt(header, constants.HeaderPaginationPerPage),
		Prev:    headerInt(header, constants.HeaderPaginationPrevPage),
	}
}

func headerInt(header http.Header, name string) int {
	value, err := strconv.Atoi(strings.TrimSpace(header.Get(name)))
	if err != nil {
		return 0
	}

	return value
}
