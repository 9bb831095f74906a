package client_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foundriesio/polis-client/internal/client"
	"github.com/foundriesio/polis-client/pkg/polis"
)

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("requires config", func(t *testing.T) {
		t.Parallel()

		_, err := client.New(nil)
		require.ErrorIs(t, err, polis.ErrConfigRequired)
	})

	t.Run("requires API address", func(t *testing.T) {
		t.Parallel()

		_, err := client.New(&polis.Config{})
		require.Error(t, err)
		assert.ErrorIs(t, err, polis.ErrAddressRequired)
		assert.Contains(t, err.Error(), "creating transport")
	})

	t.Run("rejects relative address", func(t *testing.T) {
		t.Parallel()

		_, err := client.New(&polis.Config{Address: "/api"})

		var urlErr *polis.InvalidURLError
		require.ErrorAs(t, err, &urlErr)
	})

	t.Run("creates client", func(t *testing.T) {
		t.Parallel()

		c, err := client.New(&polis.Config{Address: "https://api.example.com"})
		require.NoError(t, err)
		require.NotNil(t, c)

		assert.NotNil(t, c.Auth())
		assert.NotNil(t, c.Billing())
		assert.NotNil(t, c.DeviceAuthorization())
		assert.NotNil(t, c.EmailVerify())
		assert.NotNil(t, c.Factories())
		assert.NotNil(t, c.Invites())
		assert.NotNil(t, c.Members())
		assert.NotNil(t, c.Users())
		assert.Equal(t, "https://api.example.com", c.Transport().Address())
	})
}

func TestClient_ResourceBasePaths(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, "https://api.example.com", nil)

	invites, ok := c.Invites().(*client.ResourceClient)
	require.True(t, ok)
	assert.Equal(t, "/invites/", invites.BasePath())

	factories, ok := c.Factories().(*client.FactoriesClient)
	require.True(t, ok)
	assert.Equal(t, "/orgs/", factories.BasePath())

	users, ok := c.Users().(*client.UsersClient)
	require.True(t, ok)
	assert.Equal(t, "/users/", users.BasePath())

	// scoping a resource leaves the shared transport alone
	teams, ok := c.Resource("/teams/").(*client.ResourceClient)
	require.True(t, ok)
	assert.Equal(t, "/teams/", teams.BasePath())
	assert.Equal(t, "/", c.Transport().BasePath())
}

func TestClient_Interceptors(t *testing.T) {
	t.Parallel()

	server, rec := newRecordingServer(t, http.StatusOK, `{}`)

	chain := polis.NewInterceptorChain()
	chain.AddRequestInterceptor(polis.BearerTokenInterceptor(func(context.Context) (string, error) {
		return "from-provider", nil
	}))
	chain.AddRequestInterceptor(polis.HeaderInterceptor(map[string]string{"X-Client": "tests"}))

	c := newTestClient(t, server.URL, func(config *polis.Config) {
		config.Interceptors = chain
	})

	resp, err := c.Users().FindByID(context.Background(), "u1", polis.Params{})
	require.NoError(t, err)
	require.NoError(t, resp.Close())

	// explicit credentials win over the provider
	resp, err = c.Auth().Local(context.Background(), "user", "pass", polis.Params{})
	require.NoError(t, err)
	require.NoError(t, resp.Close())

	requests := rec.all()
	require.Len(t, requests, 2)

	assert.Equal(t, "Bearer from-provider", requests[0].Header.Get("Authorization"))
	assert.Equal(t, "tests", requests[0].Header.Get("X-Client"))
	assert.Equal(t, "Basic dXNlcjpwYXNz", requests[1].Header.Get("Authorization"))
}
