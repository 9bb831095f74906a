package client

import (
	"context"

	"github.com/foundriesio/polis-client/internal/constants"
	internalhttp "github.com/foundriesio/polis-client/internal/http"
	"github.com/foundriesio/polis-client/pkg/polis"
)

// FactoriesClient implements polis.FactoriesClient.
type FactoriesClient struct {
	*ResourceClient
}

// NewFactoriesClient creates a new factories client.
func NewFactoriesClient(transport *internalhttp.Transport) *FactoriesClient {
	return &FactoriesClient{
		ResourceClient: NewResourceClient(transport, constants.BasePathOrgs),
	}
}

// UpdateBilling implements polis.FactoriesClient.UpdateBilling.
func (c *FactoriesClient) UpdateBilling(ctx context.Context, oid, bid string, data any, params polis.Params) (*polis.Response, error) {
	err := requireIDs("updating factory billing", "oid", oid, "bid", bid)
	if err != nil {
		return nil, err
	}

	return c.Update(ctx, data, params.At(joinPath(oid, constants.PathBilling, bid)))
}
