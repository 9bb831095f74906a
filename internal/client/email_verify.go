package client

import (
	"context"

	"github.com/foundriesio/polis-client/internal/constants"
	internalhttp "github.com/foundriesio/polis-client/internal/http"
	"github.com/foundriesio/polis-client/pkg/polis"
)

// EmailVerifyClient implements polis.EmailVerifyClient.
type EmailVerifyClient struct {
	resource *ResourceClient
}

// NewEmailVerifyClient creates a new email verification client.
func NewEmailVerifyClient(transport *internalhttp.Transport) *EmailVerifyClient {
	return &EmailVerifyClient{
		resource: NewResourceClient(transport, constants.BasePathEmailVerify),
	}
}

// Update implements polis.EmailVerifyClient.Update.
func (c *EmailVerifyClient) Update(ctx context.Context, id string, data any, params polis.Params) (*polis.Response, error) {
	return c.resource.Update(ctx, data, params.At(id))
}
