package client

import (
	"context"
	"fmt"

	"github.com/foundriesio/polis-client/internal/constants"
	internalhttp "github.com/foundriesio/polis-client/internal/http"
	"github.com/foundriesio/polis-client/pkg/polis"
)

// AuthClient implements polis.AuthClient.
type AuthClient struct {
	resource *ResourceClient
}

// NewAuthClient creates a new auth client.
func NewAuthClient(transport *internalhttp.Transport) *AuthClient {
	return &AuthClient{
		resource: NewResourceClient(transport, constants.BasePathAuth),
	}
}

// Local implements polis.AuthClient.Local.
func (c *AuthClient) Local(ctx context.Context, email, password string, params polis.Params) (*polis.Response, error) {
	resp, err := c.resource.Find(ctx, polis.Call{
		Path:    constants.PathLocalAuth,
		Query:   params.Query,
		Options: params.Options.WithBasicAuth(email, password),
	})
	if err != nil {
		return nil, fmt.Errorf("authenticating %s: %w", email, err)
	}

	return resp, nil
}
