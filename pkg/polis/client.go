package polis

import "context"

// ResourceClient offers the generic verbs of one server-side collection,
// rooted at the resource base path. Every verb returns the wrapped response
// on a 2xx status and an *HTTPError otherwise.
type ResourceClient interface {
	// Find issues a GET for call.Path (the base path when empty).
	Find(ctx context.Context, call Call) (*Response, error)
	// FindByID issues a GET for id.
	FindByID(ctx context.Context, id string, params Params) (*Response, error)
	// Create issues a POST of data to call.Path.
	Create(ctx context.Context, data any, call Call) (*Response, error)
	// Update issues a PATCH of data to call.Path, which is an id or sub-path
	// and must not be empty.
	Update(ctx context.Context, data any, call Call) (*Response, error)
	// Remove issues a DELETE for call.Path, which must not be empty.
	Remove(ctx context.Context, call Call) (*Response, error)
}

// AuthClient authenticates users.
type AuthClient interface {
	// Local authenticates with email and password using Basic credentials.
	Local(ctx context.Context, email, password string, params Params) (*Response, error)
}

// BillingClient manages billing accounts.
type BillingClient interface {
	FindByID(ctx context.Context, id string, params Params) (*Response, error)
	Create(ctx context.Context, data any, params Params) (*Response, error)
	Remove(ctx context.Context, id string, params Params) (*Response, error)
}

// DeviceAuthorizationUpdate is the payload accepted when approving or
// denying a device authorization.
type DeviceAuthorizationUpdate struct {
	ClientID string `json:"client_id" yaml:"client_id"`
	Status   string `json:"status"    yaml:"status"`
	User     string `json:"user"      yaml:"user"`
}

// DeviceAuthorizationClient drives the device authorization flow.
type DeviceAuthorizationClient interface {
	// FindByUserCode looks up the authorization matching the code typed by
	// the user.
	FindByUserCode(ctx context.Context, userCode string, params Params) (*Response, error)
	Update(ctx context.Context, aid string, update DeviceAuthorizationUpdate, params Params) (*Response, error)
}

// EmailVerifyClient confirms email addresses.
type EmailVerifyClient interface {
	Update(ctx context.Context, id string, data any, params Params) (*Response, error)
}

// FactoriesClient manages factories.
type FactoriesClient interface {
	ResourceClient
	UpdateBilling(ctx context.Context, oid, bid string, data any, params Params) (*Response, error)
}

// MembersClient manages the members of an organization.
type MembersClient interface {
	Find(ctx context.Context, oid string, params Params) (*Response, error)
	FindByID(ctx context.Context, oid, uid string, params Params) (*Response, error)
	Add(ctx context.Context, oid, uid string, data any, params Params) (*Response, error)
	Remove(ctx context.Context, oid, uid string, params Params) (*Response, error)
	RemoveAll(ctx context.Context, oid string, params Params) (*Response, error)
	Update(ctx context.Context, oid, mid string, data any, params Params) (*Response, error)
	UpdateAll(ctx context.Context, oid string, data any, params Params) (*Response, error)
}

// UsersClient manages users together with their API tokens, client
// credentials and password resets.
type UsersClient interface {
	ResourceClient

	FindAPITokens(ctx context.Context, uid string, params Params) (*Response, error)
	FindAPIToken(ctx context.Context, uid, tid string, params Params) (*Response, error)
	CreateAPIToken(ctx context.Context, uid string, data any, params Params) (*Response, error)
	UpdateAPIToken(ctx context.Context, uid, tid string, data any, params Params) (*Response, error)
	RemoveAPIToken(ctx context.Context, uid, tid string, params Params) (*Response, error)

	FindClientCredentials(ctx context.Context, uid string, params Params) (*Response, error)
	FindClientCredential(ctx context.Context, uid, cid string, params Params) (*Response, error)
	CreateClientCredential(ctx context.Context, uid string, data any, params Params) (*Response, error)
	UpdateClientCredential(ctx context.Context, uid, cid string, data any, params Params) (*Response, error)
	RemoveClientCredential(ctx context.Context, uid, cid string, params Params) (*Response, error)

	// ResetPassword starts a password reset for uid.
	ResetPassword(ctx context.Context, uid string, params Params) (*Response, error)
	// FindResetPassword looks up reset rid, scoped to uid when uid is not
	// empty.
	FindResetPassword(ctx context.Context, rid, uid string, params Params) (*Response, error)
	UpdateResetPassword(ctx context.Context, uid, rid string, data any, params Params) (*Response, error)
	RemoveResetPassword(ctx context.Context, uid, rid string, params Params) (*Response, error)
}

// AuthClients groups the authentication resources.
type AuthClients interface {
	Auth() AuthClient
	DeviceAuthorization() DeviceAuthorizationClient
	EmailVerify() EmailVerifyClient
}

// AccountClients groups the account resources.
type AccountClients interface {
	Users() UsersClient
	Billing() BillingClient
}

// OrganizationClients groups the organization resources.
type OrganizationClients interface {
	Factories() FactoriesClient
	Members() MembersClient
	Invites() ResourceClient
}

// Client is the main interface for the polis API.
type Client interface {
	AuthClients
	AccountClients
	OrganizationClients

	// Resource returns a generic client for a collection without a dedicated
	// client.
	Resource(basePath string) ResourceClient
}
