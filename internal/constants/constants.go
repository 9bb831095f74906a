package constants

import "time"

// Content types.
const (
	// ContentTypeJSON is the default content type for request bodies.
	ContentTypeJSON = "application/json"

	// ContentTypeYAML is accepted for YAML request and response bodies.
	ContentTypeYAML = "application/yaml"

	// ContentTypeForm is used for url-encoded form bodies.
	ContentTypeForm = "application/x-www-form-urlencoded"

	// ContentTypeText is used for plain text bodies.
	ContentTypeText = "text/plain"
)

// HTTP headers.
const (
	HeaderAccept        = "Accept"
	HeaderAuthorization = "Authorization"
	HeaderContentType   = "Content-Type"
	HeaderUserAgent     = "User-Agent"
)

// Pagination response headers.
const (
	HeaderPaginationCount         = "X-Polis-Count"
	HeaderPaginationLastPage      = "X-Polis-Last-Page"
	HeaderPaginationNextPage      = "X-Polis-Next-Page"
	HeaderPaginationPages         = "X-Polis-Pages"
	HeaderPaginationPerPage       = "X-Polis-Per-Page"
	HeaderPaginationPrevPage      = "X-Polis-Prev-Page"
	HeaderPaginationRequestedPage = "X-Polis-Requested-Page"
)

// Client defaults.
const (
	// DefaultBasePath is the base path of a transport that has not been
	// scoped to a resource.
	DefaultBasePath = "/"

	// DefaultUserAgent is sent when the configuration does not name one.
	DefaultUserAgent = "polis-client-go"

	// DefaultEnvPrefix is the environment variable prefix read by LoadConfig.
	DefaultEnvPrefix = "POLIS"
)

// Connection pool tuning, applied on top of the go-cleanhttp pooled defaults.
const (
	// PoolMaxIdleConnsPerHost bounds idle keep-alive connections per host.
	PoolMaxIdleConnsPerHost = 32

	// PoolIdleConnTimeout closes keep-alive connections idle for this long.
	PoolIdleConnTimeout = 90 * time.Second
)

// Resource base paths.
const (
	BasePathAuth                = "/auth/"
	BasePathBilling             = "/billing/"
	BasePathDeviceAuthorization = "/auth/devices/"
	BasePathEmailVerify         = "/auth/email/"
	BasePathOrgs                = "/orgs/"
	BasePathInvites             = "/invites/"
	BasePathUsers               = "/users/"
)

// Resource path fragments.
const (
	PathLocalAuth         = "local/"
	PathMembers           = "members"
	PathBilling           = "billing"
	PathAPITokens         = "api_tokens"
	PathClientCredentials = "client_credentials"
	PathPasswordReset     = "pwd_reset"
)
