package polis_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foundriesio/polis-client/pkg/polis"
)

func writeConfigFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoadConfig_YAML(t *testing.T) {
	t.Parallel()

	path := writeConfigFile(t, "polis.yaml", `
address: https://api.example.com/v1
content_type: application/yaml
timeout: 30s
trailing_slash: true
disable_redirects: true
request_id_header: X-Request-Id
headers:
  x-team: core
`)

	config, err := polis.LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "https://api.example.com/v1", config.Address)
	assert.Equal(t, "application/yaml", config.ContentType)
	assert.Equal(t, 30*time.Second, config.Timeout)
	assert.True(t, config.TrailingSlash)
	assert.True(t, config.DisableRedirects)
	assert.False(t, config.InsecureSkipVerify)
	assert.Equal(t, "X-Request-Id", config.RequestIDHeader)
	assert.Equal(t, "polis-client-go", config.UserAgent)
	assert.Equal(t, map[string]string{"x-team": "core"}, config.Headers)
	assert.Nil(t, config.Logger)
	assert.Nil(t, config.Metrics)
}

func TestLoadConfig_JSON(t *testing.T) {
	t.Parallel()

	path := writeConfigFile(t, "polis.json", `{"address": "http://localhost:8080", "debug": true}`)

	config, err := polis.LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080", config.Address)
	assert.True(t, config.Debug)
	assert.Equal(t, "application/json", config.ContentType)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := polis.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config file")
}

// Environment tests cannot run in parallel.
func TestLoadConfig_Environment(t *testing.T) {
	t.Setenv("POLIS_ADDRESS", "https://env.example.com")
	t.Setenv("POLIS_TIMEOUT", "5s")

	path := writeConfigFile(t, "polis.yaml", "address: https://file.example.com\ntrailing_slash: true\n")

	config, err := polis.LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "https://env.example.com", config.Address)
	assert.Equal(t, 5*time.Second, config.Timeout)
	assert.True(t, config.TrailingSlash)

	config, err = polis.LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "https://env.example.com", config.Address)
	assert.False(t, config.TrailingSlash)
}
