//go:build integration

package integration

import (
	"fmt"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/foundriesio/polis-client/pkg/polis"
	"github.com/foundriesio/polis-client/pkg/polisclient"
)

// TestConfig holds configuration for integration tests
type TestConfig struct {
	Address  string
	Token    string
	Email    string
	Password string
	Org      string
	Verbose  bool
}

// LoadTestConfig loads configuration from environment variables
func LoadTestConfig() *TestConfig {
	return &TestConfig{
		Address:  os.Getenv("POLIS_ADDRESS"),
		Token:    os.Getenv("POLIS_TOKEN"),
		Email:    os.Getenv("POLIS_EMAIL"),
		Password: os.Getenv("POLIS_PASSWORD"),
		Org:      os.Getenv("POLIS_ORG"),
		Verbose:  os.Getenv("POLIS_VERBOSE") == "true",
	}
}

// SkipIfMissingConfig skips test if required config is missing
func (config *TestConfig) SkipIfMissingConfig(t *testing.T) {
	t.Helper()

	if config.Address == "" {
		t.Skip("POLIS_ADDRESS not set, skipping integration test")
	}
}

// NewClient builds a client for the configured API. Verbose runs log every
// request and response.
func (config *TestConfig) NewClient(t *testing.T) polis.Client {
	t.Helper()

	clientConfig := &polis.Config{
		Address:         config.Address,
		Timeout:         30 * time.Second,
		RequestIDHeader: "X-Request-Id",
	}

	if config.Token != "" {
		clientConfig.Headers = map[string]string{"Authorization": polis.BearerAuth(config.Token)}
	}

	if config.Verbose {
		clientConfig.Debug = true
		clientConfig.Logger = polis.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	client, err := polisclient.New(clientConfig)
	if err != nil {
		t.Fatalf("failed to create polis client: %v", err)
	}

	return client
}

// GenerateTestName creates a unique test resource name
func GenerateTestName(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, time.Now().UnixNano())
}
