package client

import (
	"context"
	"fmt"

	"github.com/foundriesio/polis-client/internal/constants"
	internalhttp "github.com/foundriesio/polis-client/internal/http"
	"github.com/foundriesio/polis-client/pkg/polis"
)

// DeviceAuthorizationClient implements polis.DeviceAuthorizationClient.
type DeviceAuthorizationClient struct {
	resource *ResourceClient
}

// NewDeviceAuthorizationClient creates a new device authorization client.
func NewDeviceAuthorizationClient(transport *internalhttp.Transport) *DeviceAuthorizationClient {
	return &DeviceAuthorizationClient{
		resource: NewResourceClient(transport, constants.BasePathDeviceAuthorization),
	}
}

type userCodeLookup struct {
	UserCode string `json:"user_code" yaml:"user_code"`
}

// FindByUserCode implements polis.DeviceAuthorizationClient.FindByUserCode.
func (c *DeviceAuthorizationClient) FindByUserCode(ctx context.Context, userCode string, params polis.Params) (*polis.Response, error) {
	err := requireIDs("finding device authorization", "user_code", userCode)
	if err != nil {
		return nil, err
	}

	resp, err := c.resource.Create(ctx, userCodeLookup{UserCode: userCode}, params.At(""))
	if err != nil {
		return nil, fmt.Errorf("finding device authorization by user code: %w", err)
	}

	return resp, nil
}

// Update implements polis.DeviceAuthorizationClient.Update.
func (c *DeviceAuthorizationClient) Update(
	ctx context.Context,
	aid string,
	update polis.DeviceAuthorizationUpdate,
	params polis.Params,
) (*polis.Response, error) {
	resp, err := c.resource.Update(ctx, update, params.At(aid))
	if err != nil {
		return nil, fmt.Errorf("updating device authorization: %w", err)
	}

	return resp, nil
}
