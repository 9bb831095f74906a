package client

import (
	"context"

	"github.com/foundriesio/polis-client/internal/constants"
	internalhttp "github.com/foundriesio/polis-client/internal/http"
	"github.com/foundriesio/polis-client/pkg/polis"
)

// MembersClient implements polis.MembersClient.
type MembersClient struct {
	resource *ResourceClient
}

// NewMembersClient creates a new organization members client.
func NewMembersClient(transport *internalhttp.Transport) *MembersClient {
	return &MembersClient{
		resource: NewResourceClient(transport, constants.BasePathOrgs),
	}
}

// Find implements polis.MembersClient.Find.
func (c *MembersClient) Find(ctx context.Context, oid string, params polis.Params) (*polis.Response, error) {
	err := requireIDs("listing members", "oid", oid)
	if err != nil {
		return nil, err
	}

	return c.resource.Find(ctx, params.At(joinPath(oid, constants.PathMembers)))
}

// FindByID implements polis.MembersClient.FindByID.
func (c *MembersClient) FindByID(ctx context.Context, oid, uid string, params polis.Params) (*polis.Response, error) {
	err := requireIDs("getting member", "oid", oid, "uid", uid)
	if err != nil {
		return nil, err
	}

	return c.resource.Find(ctx, params.At(joinPath(oid, constants.PathMembers, uid)))
}

// Add implements polis.MembersClient.Add.
func (c *MembersClient) Add(ctx context.Context, oid, uid string, data any, params polis.Params) (*polis.Response, error) {
	err := requireIDs("adding member", "oid", oid, "uid", uid)
	if err != nil {
		return nil, err
	}

	return c.resource.Create(ctx, data, params.At(joinPath(oid, constants.PathMembers, uid)))
}

// Remove implements polis.MembersClient.Remove.
func (c *MembersClient) Remove(ctx context.Context, oid, uid string, params polis.Params) (*polis.Response, error) {
	err := requireIDs("removing member", "oid", oid, "uid", uid)
	if err != nil {
		return nil, err
	}

	return c.resource.Remove(ctx, params.At(joinPath(oid, constants.PathMembers, uid)))
}

// RemoveAll implements polis.MembersClient.RemoveAll.
func (c *MembersClient) RemoveAll(ctx context.Context, oid string, params polis.Params) (*polis.Response, error) {
	err := requireIDs("removing members", "oid", oid)
	if err != nil {
		return nil, err
	}

	return c.resource.Remove(ctx, params.At(joinPath(oid, constants.PathMembers)))
}

// Update implements polis.MembersClient.Update.
func (c *MembersClient) Update(ctx context.Context, oid, mid string, data any, params polis.Params) (*polis.Response, error) {
	err := requireIDs("updating member", "oid", oid, "mid", mid)
	if err != nil {
		return nil, err
	}

	return c.resource.Update(ctx, data, params.At(joinPath(oid, constants.PathMembers, mid)))
}

// UpdateAll implements polis.MembersClient.UpdateAll.
func (c *MembersClient) UpdateAll(ctx context.Context, oid string, data any, params polis.Params) (*polis.Response, error) {
	err := requireIDs("updating members", "oid", oid)
	if err != nil {
		return nil, err
	}

	return c.resource.Update(ctx, data, params.At(joinPath(oid, constants.PathMembers)))
}
