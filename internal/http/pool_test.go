package http_test

import (
	"net/http"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	polishttp "github.com/foundriesio/polis-client/internal/http"
)

func TestPool_Transport(t *testing.T) {
	t.Parallel()

	pool := polishttp.NewPool()

	https := pool.Transport("https", false)
	require.NotNil(t, https)

	assert.Same(t, https, pool.Transport("HTTPS", false))
	assert.NotSame(t, https, pool.Transport("http", false))

	insecure := pool.Transport("https", true)
	assert.NotSame(t, https, insecure)
	require.NotNil(t, insecure.TLSClientConfig)
	assert.True(t, insecure.TLSClientConfig.InsecureSkipVerify)

	if https.TLSClientConfig != nil {
		assert.False(t, https.TLSClientConfig.InsecureSkipVerify)
	}

	// insecure has no meaning for plain http
	assert.Same(t, pool.Transport("http", false), pool.Transport("http", true))
	assert.Equal(t, 3, pool.Len())
}

func TestPool_KeepAlive(t *testing.T) {
	t.Parallel()

	transport := polishttp.NewPool().Transport("https", false)

	assert.False(t, transport.DisableKeepAlives)
	assert.Positive(t, transport.MaxIdleConnsPerHost)
	assert.Positive(t, transport.IdleConnTimeout)
}

func TestPool_ConcurrentFirstUse(t *testing.T) {
	t.Parallel()

	var built atomic.Int32

	pool := polishttp.NewPoolWithFactory(func(bool) *http.Transport {
		built.Add(1)

		return &http.Transport{}
	})

	var (
		wg    sync.WaitGroup
		mu    sync.Mutex
		found = make(map[*http.Transport]struct{})
	)

	for range 32 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			transport := pool.Transport("https", false)

			mu.Lock()
			found[transport] = struct{}{}
			mu.Unlock()
		}()
	}

	wg.Wait()

	assert.Equal(t, int32(1), built.Load())
	assert.Len(t, found, 1)
}

func TestDefaultPool(t *testing.T) {
	t.Parallel()

	assert.Same(t, polishttp.DefaultPool(), polishttp.DefaultPool())
}

func TestTransport_SharesPool(t *testing.T) {
	t.Parallel()

	var built atomic.Int32

	pool := polishttp.NewPoolWithFactory(func(bool) *http.Transport {
		built.Add(1)

		return &http.Transport{}
	})

	for range 3 {
		newTransport(t, "https://api.example.com", nil, polishttp.WithPool(pool))
	}

	newTransport(t, "https://other.example.com", nil, polishttp.WithPool(pool)).WithBasePath("/users/")

	assert.Equal(t, int32(1), built.Load())
	assert.Equal(t, 1, pool.Len())
}
