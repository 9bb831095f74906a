package client

import (
	"fmt"

	"github.com/foundriesio/polis-client/internal/constants"
	internalhttp "github.com/foundriesio/polis-client/internal/http"
	"github.com/foundriesio/polis-client/pkg/polis"
)

// Client implements the polis.Client interface. One transport backs every
// resource client.
type Client struct {
	transport *internalhttp.Transport

	// Resource clients
	auth                *AuthClient
	billing             *BillingClient
	deviceAuthorization *DeviceAuthorizationClient
	emailVerify         *EmailVerifyClient
	factories           *FactoriesClient
	invites             *ResourceClient
	members             *MembersClient
	users               *UsersClient
}

// New creates a new polis API client.
func New(config *polis.Config, opts ...internalhttp.Option) (*Client, error) {
	if config == nil {
		return nil, polis.ErrConfigRequired
	}

	transport, err := internalhttp.NewTransport(config, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating transport: %w", err)
	}

	return NewWithTransport(transport), nil
}

// NewWithTransport creates a client whose resource clients all share
// transport.
func NewWithTransport(transport *internalhttp.Transport) *Client {
	client := &Client{transport: transport}
	client.initializeResourceClients()

	return client
}

func (c *Client) initializeResourceClients() {
	c.auth = NewAuthClient(c.transport)
	c.billing = NewBillingClient(c.transport)
	c.deviceAuthorization = NewDeviceAuthorizationClient(c.transport)
	c.emailVerify = NewEmailVerifyClient(c.transport)
	c.factories = NewFactoriesClient(c.transport)
	c.invites = NewResourceClient(c.transport, constants.BasePathInvites)
	c.members = NewMembersClient(c.transport)
	c.users = NewUsersClient(c.transport)
}

// Transport returns the transport shared by the resource clients.
func (c *Client) Transport() *internalhttp.Transport {
	return c.transport
}

// Auth implements polis.Client.Auth.
func (c *Client) Auth() polis.AuthClient {
	return c.auth
}

// DeviceAuthorization implements polis.Client.DeviceAuthorization.
func (c *Client) DeviceAuthorization() polis.DeviceAuthorizationClient {
	return c.deviceAuthorization
}

// EmailVerify implements polis.Client.EmailVerify.
func (c *Client) EmailVerify() polis.EmailVerifyClient {
	return c.emailVerify
}

// Users implements polis.Client.Users.
func (c *Client) Users() polis.UsersClient {
	return c.users
}

// Billing implements polis.Client.Billing.
func (c *Client) Billing() polis.BillingClient {
	return c.billing
}

// Factories implements polis.Client.Factories.
func (c *Client) Factories() polis.FactoriesClient {
	return c.factories
}

// Members implements polis.Client.Members.
func (c *Client) Members() polis.MembersClient {
	return c.members
}

// Invites implements polis.Client.Invites.
func (c *Client) Invites() polis.ResourceClient {
	return c.invites
}

// Resource implements polis.Client.Resource.
func (c *Client) Resource(basePath string) polis.ResourceClient {
	return NewResourceClient(c.transport, basePath)
}

var _ polis.Client = (*Client)(nil)
