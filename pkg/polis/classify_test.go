package polis_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foundriesio/polis-client/pkg/polis"
)

func TestClassify_Success(t *testing.T) {
	t.Parallel()

	for _, status := range []int{200, 201, 204, 299} {
		body := newCountingBody(`{"ok":true}`)
		resp := polis.NewResponse(newRawResponse(status, "application/json", body))

		got, err := polis.Classify(resp)
		require.NoError(t, err)
		assert.Same(t, resp, got)

		// the body is left for the caller
		reads, _ := body.counts()
		assert.Zero(t, reads)
	}
}

//nolint:funlen // Table tests can be longer for comprehensive testing
func TestClassify_Kinds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status int
		kind   polis.ErrorKind
	}{
		{http.StatusBadRequest, polis.KindBadRequest},
		{http.StatusUnauthorized, polis.KindUnauthorized},
		{http.StatusForbidden, polis.KindForbidden},
		{http.StatusNotFound, polis.KindNotFound},
		{http.StatusMethodNotAllowed, polis.KindNotAllowed},
		{http.StatusNotAcceptable, polis.KindNotAcceptable},
		{http.StatusRequestTimeout, polis.KindRequestTimeout},
		{http.StatusGone, polis.KindGone},
		{http.StatusInternalServerError, polis.KindServerError},
		{http.StatusNotImplemented, polis.KindNotImplemented},
		{http.StatusServiceUnavailable, polis.KindServiceUnavailable},
		{http.StatusGatewayTimeout, polis.KindTimeout},
		{http.StatusTeapot, polis.KindHTTPError},
		{http.StatusConflict, polis.KindHTTPError},
		{http.StatusTooManyRequests, polis.KindHTTPError},
		{http.StatusBadGateway, polis.KindHTTPError},
		{http.StatusFound, polis.KindHTTPError},
		{http.StatusNotModified, polis.KindHTTPError},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d", tt.status), func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.kind, polis.KindForStatus(tt.status))

			resp := polis.NewResponse(newRawResponse(tt.status, "application/json", newCountingBody(`{"message":"nope"}`)))

			got, err := polis.Classify(resp)
			require.Error(t, err)
			assert.Nil(t, got)

			var httpErr *polis.HTTPError
			require.True(t, errors.As(err, &httpErr))
			assert.Equal(t, tt.status, httpErr.StatusCode)
			assert.Equal(t, tt.kind, httpErr.Kind)
			assert.Contains(t, httpErr.Error(), string(tt.kind))
			assert.Contains(t, httpErr.Error(), fmt.Sprintf("%d", tt.status))
			assert.True(t, polis.IsKind(err, tt.kind))
			assert.Equal(t, tt.status, polis.StatusCode(err))
		})
	}
}

//nolint:funlen // Table tests can be longer for comprehensive testing
func TestClassify_ErrorBody(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		contentType string
		body        string
		wantText    string
		wantJSON    any
	}{
		{
			name:        "JSON body",
			contentType: "application/json",
			body:        `{"message":"org not found"}`,
			wantText:    `{"message":"org not found"}`,
			wantJSON:    map[string]any{"message": "org not found"},
		},
		{
			name:        "empty body",
			contentType: "application/json",
			body:        "",
			wantText:    "",
			wantJSON:    nil,
		},
		{
			name:        "invalid JSON",
			contentType: "application/json",
			body:        "{broken",
			wantText:    "{broken",
			wantJSON:    nil,
		},
		{
			name:        "plain text",
			contentType: "text/plain",
			body:        "upstream unavailable",
			wantText:    "upstream unavailable",
			wantJSON:    nil,
		},
		{
			name:        "no content type",
			body:        `["a"]`,
			wantText:    `["a"]`,
			wantJSON:    []any{"a"},
		},
		{
			name:        "binary",
			contentType: "application/octet-stream",
			body:        "\x00\x01",
			wantText:    "",
			wantJSON:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			body := newCountingBody(tt.body)
			raw := newRawResponse(http.StatusNotFound, tt.contentType, body)
			raw.Header.Set("X-Request-Id", "abc")

			_, err := polis.Classify(polis.NewResponse(raw))

			var httpErr *polis.HTTPError
			require.ErrorAs(t, err, &httpErr)
			assert.Equal(t, polis.KindNotFound, httpErr.Kind)
			assert.Equal(t, tt.wantText, httpErr.Text)
			assert.Equal(t, tt.wantJSON, httpErr.JSON)
			assert.Equal(t, "abc", httpErr.Header.Get("X-Request-Id"))

			// the body is always released
			_, closes := body.counts()
			assert.Equal(t, 1, closes)
		})
	}
}
