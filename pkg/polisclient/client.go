package polisclient

import (
	"fmt"
	"strings"

	"github.com/foundriesio/polis-client/internal/client"
	"github.com/foundriesio/polis-client/internal/constants"
	"github.com/foundriesio/polis-client/pkg/polis"
)

// New creates a new polis API client. config is not modified.
func New(config *polis.Config) (polis.Client, error) {
	if config == nil {
		return nil, polis.ErrConfigRequired
	}

	address := strings.TrimSpace(config.Address)
	if address == "" {
		return nil, polis.ErrAddressRequired
	}

	// Normalize API address
	if !strings.Contains(address, "://") {
		address = "https://" + address
	}

	normalized := *config
	normalized.Address = address

	c, err := client.New(&normalized)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return c, nil
}

// NewWithConfigFile creates a client from a configuration file overlaid with
// POLIS_* environment variables. An empty path reads the environment only.
func NewWithConfigFile(path string) (polis.Client, error) {
	config, err := polis.LoadConfig(path)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	return New(config)
}

// NewWithAddress creates a new client with just an API address (no auth).
func NewWithAddress(address string) (polis.Client, error) {
	return New(&polis.Config{Address: address})
}

// NewWithToken creates a new client that sends token as a Bearer credential.
func NewWithToken(address, token string) (polis.Client, error) {
	return New(&polis.Config{
		Address: address,
		Headers: map[string]string{constants.HeaderAuthorization: polis.BearerAuth(token)},
	})
}

// NewWithBasicAuth creates a new client that sends Basic credentials.
func NewWithBasicAuth(address, username, password string) (polis.Client, error) {
	return New(&polis.Config{
		Address: address,
		Headers: map[string]string{constants.HeaderAuthorization: polis.BasicAuth(username, password)},
	})
}
