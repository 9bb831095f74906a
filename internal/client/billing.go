package client

import (
	"context"

	"github.com/foundriesio/polis-client/internal/constants"
	internalhttp "github.com/foundriesio/polis-client/internal/http"
	"github.com/foundriesio/polis-client/pkg/polis"
)

// BillingClient implements polis.BillingClient.
type BillingClient struct {
	resource *ResourceClient
}

// NewBillingClient creates a new billing client.
func NewBillingClient(transport *internalhttp.Transport) *BillingClient {
	return &BillingClient{
		resource: NewResourceClient(transport, constants.BasePathBilling),
	}
}

// FindByID implements polis.BillingClient.FindByID.
func (c *BillingClient) FindByID(ctx context.Context, id string, params polis.Params) (*polis.Response, error) {
	return c.resource.FindByID(ctx, id, params)
}

// Create implements polis.BillingClient.Create.
func (c *BillingClient) Create(ctx context.Context, data any, params polis.Params) (*polis.Response, error) {
	return c.resource.Create(ctx, data, params.At(""))
}

// Remove implements polis.BillingClient.Remove.
func (c *BillingClient) Remove(ctx context.Context, id string, params polis.Params) (*polis.Response, error) {
	return c.resource.Remove(ctx, params.At(id))
}
