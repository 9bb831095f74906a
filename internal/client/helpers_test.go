package client_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foundriesio/polis-client/internal/client"
	"github.com/foundriesio/polis-client/pkg/polis"
)

// recordedRequest is what the test server saw for one request.
type recordedRequest struct {
	Method   string
	Path     string
	RawQuery string
	Header   http.Header
	Body     []byte
}

// recorder is a test server handler that records every request and answers
// with a fixed status and JSON body.
type recorder struct {
	mu       sync.Mutex
	requests []recordedRequest
	status   int
	body     string
}

func (r *recorder) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	body, _ := io.ReadAll(req.Body)

	r.mu.Lock()
	r.requests = append(r.requests, recordedRequest{
		Method:   req.Method,
		Path:     req.URL.Path,
		RawQuery: req.URL.RawQuery,
		Header:   req.Header.Clone(),
		Body:     body,
	})
	status, responseBody := r.status, r.body
	r.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(responseBody))
}

func (r *recorder) all() []recordedRequest {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]recordedRequest(nil), r.requests...)
}

func (r *recorder) last(t *testing.T) recordedRequest {
	t.Helper()

	requests := r.all()
	require.NotEmpty(t, requests)

	return requests[len(requests)-1]
}

// newRecordingServer starts a server answering every request with status and
// body.
func newRecordingServer(t *testing.T, status int, body string) (*httptest.Server, *recorder) {
	t.Helper()

	rec := &recorder{status: status, body: body}
	server := httptest.NewServer(rec)
	t.Cleanup(server.Close)

	return server, rec
}

// newTestClient creates a client for address. configure may adjust the
// configuration before the client is built.
func newTestClient(t *testing.T, address string, configure func(*polis.Config)) *client.Client {
	t.Helper()

	config := &polis.Config{Address: address}
	if configure != nil {
		configure(config)
	}

	c, err := client.New(config)
	require.NoError(t, err)

	return c
}

// pathCase describes one resource operation and the request it must send.
type pathCase struct {
	Name     string
	Call     func(ctx context.Context, c *client.Client) (*polis.Response, error)
	Method   string
	Path     string
	RawQuery string
	Body     string
}

// runPathCases runs each case against its own recording server and checks the
// method, path, query and JSON body that reached it.
func runPathCases(t *testing.T, cases []pathCase) {
	t.Helper()

	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			t.Parallel()

			server, rec := newRecordingServer(t, http.StatusOK, `{"ok":true}`)
			c := newTestClient(t, server.URL, nil)

			resp, err := tc.Call(context.Background(), c)
			require.NoError(t, err)
			require.NotNil(t, resp)
			require.NoError(t, resp.Close())

			got := rec.last(t)
			assert.Equal(t, tc.Method, got.Method)
			assert.Equal(t, tc.Path, got.Path)
			assert.Equal(t, tc.RawQuery, got.RawQuery)

			if tc.Body == "" {
				assert.Empty(t, got.Body)
			} else {
				assert.JSONEq(t, tc.Body, string(got.Body))
				assert.Equal(t, "application/json", got.Header.Get("Content-Type"))
			}
		})
	}
}

// idCase describes an operation called with a missing id.
type idCase struct {
	Name string
	Call func(ctx context.Context, c *client.Client) (*polis.Response, error)
	ID   string
}

// runIDCases checks that each case fails with ErrIDRequired without sending a
// request.
func runIDCases(t *testing.T, cases []idCase) {
	t.Helper()

	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			t.Parallel()

			server, rec := newRecordingServer(t, http.StatusOK, `{}`)
			c := newTestClient(t, server.URL, nil)

			resp, err := tc.Call(context.Background(), c)
			require.Error(t, err)
			assert.Nil(t, resp)
			require.ErrorIs(t, err, polis.ErrIDRequired)

			if tc.ID != "" {
				assert.Contains(t, err.Error(), tc.ID)
			}

			assert.Empty(t, rec.all())
		})
	}
}
