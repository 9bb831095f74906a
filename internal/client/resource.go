package client

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	internalhttp "github.com/foundriesio/polis-client/internal/http"
	"github.com/foundriesio/polis-client/pkg/polis"
)

// ResourceClient implements polis.ResourceClient for one base path.
type ResourceClient struct {
	transport *internalhttp.Transport
}

// NewResourceClient creates a resource client rooted at basePath. The
// transport's connection pool and settings are shared.
func NewResourceClient(transport *internalhttp.Transport, basePath string) *ResourceClient {
	return &ResourceClient{
		transport: transport.WithBasePath(basePath),
	}
}

// BasePath returns the resource base path.
func (c *ResourceClient) BasePath() string {
	return c.transport.BasePath()
}

// Find implements polis.ResourceClient.Find.
func (c *ResourceClient) Find(ctx context.Context, call polis.Call) (*polis.Response, error) {
	resp, err := c.do(ctx, http.MethodGet, nil, call)
	if err != nil {
		return nil, fmt.Errorf("finding resource: %w", err)
	}

	return resp, nil
}

// FindByID implements polis.ResourceClient.FindByID.
func (c *ResourceClient) FindByID(ctx context.Context, id string, params polis.Params) (*polis.Response, error) {
	if id == "" {
		return nil, fmt.Errorf("finding resource: %w", polis.ErrIDRequired)
	}

	resp, err := c.do(ctx, http.MethodGet, nil, params.At(id))
	if err != nil {
		return nil, fmt.Errorf("finding resource %s: %w", id, err)
	}

	return resp, nil
}

// Create implements polis.ResourceClient.Create.
func (c *ResourceClient) Create(ctx context.Context, data any, call polis.Call) (*polis.Response, error) {
	resp, err := c.do(ctx, http.MethodPost, data, call)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	return resp, nil
}

// Update implements polis.ResourceClient.Update.
func (c *ResourceClient) Update(ctx context.Context, data any, call polis.Call) (*polis.Response, error) {
	if call.Path == "" {
		return nil, fmt.Errorf("updating resource: %w", polis.ErrIDRequired)
	}

	resp, err := c.do(ctx, http.MethodPatch, data, call)
	if err != nil {
		return nil, fmt.Errorf("updating resource %s: %w", call.Path, err)
	}

	return resp, nil
}

// Remove implements polis.ResourceClient.Remove.
func (c *ResourceClient) Remove(ctx context.Context, call polis.Call) (*polis.Response, error) {
	if call.Path == "" {
		return nil, fmt.Errorf("removing resource: %w", polis.ErrIDRequired)
	}

	resp, err := c.do(ctx, http.MethodDelete, nil, call)
	if err != nil {
		return nil, fmt.Errorf("removing resource %s: %w", call.Path, err)
	}

	return resp, nil
}

// do sends one request and classifies its response. Each call builds its own
// request value, so concurrent calls share nothing but the transport.
func (c *ResourceClient) do(ctx context.Context, method string, data any, call polis.Call) (*polis.Response, error) {
	raw, err := c.transport.Fetch(ctx, internalhttp.Request{
		Method:  method,
		Path:    call.Path,
		Body:    data,
		Query:   call.Query,
		Options: call.Options,
	})
	if err != nil {
		return nil, err //nolint:wrapcheck // wrapped by the calling verb
	}

	return polis.Classify(polis.NewResponse(raw))
}

// joinPath joins path fragments with "/". Empty fragments are rejected by
// the callers before joining.
func joinPath(fragments ...string) string {
	return strings.Join(fragments, "/")
}

// requireIDs returns an error naming the first empty id.
func requireIDs(operation string, ids ...string) error {
	for i := 0; i+1 < len(ids); i += 2 {
		if ids[i+1] == "" {
			return fmt.Errorf("%s: %w: %s", operation, polis.ErrIDRequired, ids[i])
		}
	}

	return nil
}
