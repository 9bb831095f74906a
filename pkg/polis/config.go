package polis

import (
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/foundriesio/polis-client/internal/constants"
)

// Config represents client configuration for building a polis client.
//
// # Address and base paths
//
// Address is the API base address. Its path, if any, is a prefix shared by
// every resource: with Address "https://api.example.com/v1" the members
// resource ("/orgs/") resolves to "https://api.example.com/v1/orgs/".
//
// # Timeouts, cancellation and TLS
//
// No timeout is applied unless Timeout or RequestOptions.Timeout is set; the
// context passed to each call is the primary cancellation mechanism. TLS
// certificates are verified unless InsecureSkipVerify is set.
type Config struct {
	// Address: API base address (e.g. "https://api.foundries.io"). polisclient.New
	// adds "https://" when no scheme is present.
	Address string `mapstructure:"address"`

	// ContentType: content type used to serialize structured bodies and sent as
	// Content-Type/Accept. Defaults to "application/json".
	ContentType string `mapstructure:"content_type"`
	// UserAgent: overrides the default User-Agent header.
	UserAgent string `mapstructure:"user_agent"`
	// Headers: default headers sent with every request. Per-call headers win.
	Headers map[string]string `mapstructure:"headers"`
	// Timeout: default per-call timeout. Zero means none.
	Timeout time.Duration `mapstructure:"timeout"`
	// TrailingSlash: append "/" to every request path that lacks one. Can be
	// overridden per call with RequestOptions.TrailingSlash.
	TrailingSlash bool `mapstructure:"trailing_slash"`
	// DisableRedirects: return 3xx responses instead of following them.
	DisableRedirects bool `mapstructure:"disable_redirects"`
	// InsecureSkipVerify: skip TLS certificate verification. Development only.
	InsecureSkipVerify bool `mapstructure:"insecure_skip_verify"`
	// Debug: enables verbose HTTP request/response logging when a Logger is provided.
	Debug bool `mapstructure:"debug"`
	// RequestIDHeader: when set, requests lacking this header get a random id.
	RequestIDHeader string `mapstructure:"request_id_header"`

	// Logger: optional structured logger used by the HTTP layer.
	Logger Logger `mapstructure:"-"`
	// Metrics: optional Prometheus collectors updated for every request.
	Metrics *Metrics `mapstructure:"-"`
	// Interceptors: optional request/response hooks.
	Interceptors *InterceptorChain `mapstructure:"-"`
}

// LoadConfig reads a Config from the file at path (YAML, JSON or TOML, by
// extension) overlaid with POLIS_* environment variables. An empty path reads
// the environment only.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()

	v.SetEnvPrefix(constants.DefaultEnvPrefix)
	v.AutomaticEnv()

	v.SetDefault("address", "")
	v.SetDefault("content_type", constants.ContentTypeJSON)
	v.SetDefault("user_agent", constants.DefaultUserAgent)
	v.SetDefault("headers", map[string]string{})
	v.SetDefault("timeout", time.Duration(0))
	v.SetDefault("trailing_slash", false)
	v.SetDefault("disable_redirects", false)
	v.SetDefault("insecure_skip_verify", false)
	v.SetDefault("debug", false)
	v.SetDefault("request_id_header", "")

	if path != "" {
		v.SetConfigFile(path)

		err := v.ReadInConfig()
		if err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
	}

	config := &Config{}

	err := v.Unmarshal(config)
	if err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}

	return config, nil
}
