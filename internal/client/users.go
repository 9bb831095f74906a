package client

import (
	"context"

	"github.com/foundriesio/polis-client/internal/constants"
	internalhttp "github.com/foundriesio/polis-client/internal/http"
	"github.com/foundriesio/polis-client/pkg/polis"
)

// UsersClient implements polis.UsersClient.
type UsersClient struct {
	*ResourceClient
}

// NewUsersClient creates a new users client.
func NewUsersClient(transport *internalhttp.Transport) *UsersClient {
	return &UsersClient{
		ResourceClient: NewResourceClient(transport, constants.BasePathUsers),
	}
}

// collection returns the path of a user's sub-collection. Collection paths
// end in a slash.
func collection(uid, name string) string {
	return joinPath(uid, name) + "/"
}

// FindAPITokens implements polis.UsersClient.FindAPITokens.
func (c *UsersClient) FindAPITokens(ctx context.Context, uid string, params polis.Params) (*polis.Response, error) {
	err := requireIDs("listing api tokens", "uid", uid)
	if err != nil {
		return nil, err
	}

	return c.Find(ctx, params.At(collection(uid, constants.PathAPITokens)))
}

// FindAPIToken implements polis.UsersClient.FindAPIToken.
func (c *UsersClient) FindAPIToken(ctx context.Context, uid, tid string, params polis.Params) (*polis.Response, error) {
	err := requireIDs("getting api token", "uid", uid, "tid", tid)
	if err != nil {
		return nil, err
	}

	return c.Find(ctx, params.At(joinPath(uid, constants.PathAPITokens, tid)))
}

// CreateAPIToken implements polis.UsersClient.CreateAPIToken.
func (c *UsersClient) CreateAPIToken(ctx context.Context, uid string, data any, params polis.Params) (*polis.Response, error) {
	err := requireIDs("creating api token", "uid", uid)
	if err != nil {
		return nil, err
	}

	return c.Create(ctx, data, params.At(collection(uid, constants.PathAPITokens)))
}

// UpdateAPIToken implements polis.UsersClient.UpdateAPIToken.
func (c *UsersClient) UpdateAPIToken(ctx context.Context, uid, tid string, data any, params polis.Params) (*polis.Response, error) {
	err := requireIDs("updating api token", "uid", uid, "tid", tid)
	if err != nil {
		return nil, err
	}

	return c.Update(ctx, data, params.At(joinPath(uid, constants.PathAPITokens, tid)))
}

// RemoveAPIToken implements polis.UsersClient.RemoveAPIToken.
func (c *UsersClient) RemoveAPIToken(ctx context.Context, uid, tid string, params polis.Params) (*polis.Response, error) {
	err := requireIDs("removing api token", "uid", uid, "tid", tid)
	if err != nil {
		return nil, err
	}

	return c.Remove(ctx, params.At(joinPath(uid, constants.PathAPITokens, tid)))
}

// FindClientCredentials implements polis.UsersClient.FindClientCredentials.
func (c *UsersClient) FindClientCredentials(ctx context.Context, uid string, params polis.Params) (*polis.Response, error) {
	err := requireIDs("listing client credentials", "uid", uid)
	if err != nil {
		return nil, err
	}

	return c.Find(ctx, params.At(collection(uid, constants.PathClientCredentials)))
}

// FindClientCredential implements polis.UsersClient.FindClientCredential.
func (c *UsersClient) FindClientCredential(ctx context.Context, uid, cid string, params polis.Params) (*polis.Response, error) {
	err := requireIDs("getting client credential", "uid", uid, "cid", cid)
	if err != nil {
		return nil, err
	}

	return c.Find(ctx, params.At(joinPath(uid, constants.PathClientCredentials, cid)))
}

// CreateClientCredential implements polis.UsersClient.CreateClientCredential.
func (c *UsersClient) CreateClientCredential(ctx context.Context, uid string, data any, params polis.Params) (*polis.Response, error) {
	err := requireIDs("creating client credential", "uid", uid)
	if err != nil {
		return nil, err
	}

	return c.Create(ctx, data, params.At(collection(uid, constants.PathClientCredentials)))
}

// UpdateClientCredential implements polis.UsersClient.UpdateClientCredential.
func (c *UsersClient) UpdateClientCredential(ctx context.Context, uid, cid string, data any, params polis.Params) (*polis.Response, error) {
	err := requireIDs("updating client credential", "uid", uid, "cid", cid)
	if err != nil {
		return nil, err
	}

	return c.Update(ctx, data, params.At(joinPath(uid, constants.PathClientCredentials, cid)))
}

// RemoveClientCredential implements polis.UsersClient.RemoveClientCredential.
func (c *UsersClient) RemoveClientCredential(ctx context.Context, uid, cid string, params polis.Params) (*polis.Response, error) {
	err := requireIDs("removing client credential", "uid", uid, "cid", cid)
	if err != nil {
		return nil, err
	}

	return c.Remove(ctx, params.At(joinPath(uid, constants.PathClientCredentials, cid)))
}

// ResetPassword implements polis.UsersClient.ResetPassword.
func (c *UsersClient) ResetPassword(ctx context.Context, uid string, params polis.Params) (*polis.Response, error) {
	err := requireIDs("resetting password", "uid", uid)
	if err != nil {
		return nil, err
	}

	return c.Create(ctx, nil, params.At(collection(uid, constants.PathPasswordReset)))
}

// FindResetPassword implements polis.UsersClient.FindResetPassword. Without
// a uid the reset is looked up by rid alone.
func (c *UsersClient) FindResetPassword(ctx context.Context, rid, uid string, params polis.Params) (*polis.Response, error) {
	err := requireIDs("getting password reset", "rid", rid)
	if err != nil {
		return nil, err
	}

	path := joinPath(constants.PathPasswordReset, rid)
	if uid != "" {
		path = joinPath(uid, path)
	}

	return c.Find(ctx, params.At(path))
}

// UpdateResetPassword implements polis.UsersClient.UpdateResetPassword.
func (c *UsersClient) UpdateResetPassword(ctx context.Context, uid, rid string, data any, params polis.Params) (*polis.Response, error) {
	err := requireIDs("updating password reset", "uid", uid, "rid", rid)
	if err != nil {
		return nil, err
	}

	return c.Update(ctx, data, params.At(joinPath(uid, constants.PathPasswordReset, rid)))
}

// RemoveResetPassword implements polis.UsersClient.RemoveResetPassword.
func (c *UsersClient) RemoveResetPassword(ctx context.Context, uid, rid string, params polis.Params) (*polis.Response, error) {
	err := requireIDs("removing password reset", "uid", uid, "rid", rid)
	if err != nil {
		return nil, err
	}

	return c.Remove(ctx, params.At(joinPath(uid, constants.PathPasswordReset, rid)))
}
