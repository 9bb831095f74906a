package http

import (
	"crypto/tls"
	"net/http"
	"strings"
	"sync"

	"github.com/hashicorp/go-cleanhttp"

	"github.com/foundriesio/polis-client/internal/constants"
)

// TransportFactory builds the keep-alive transport of one pool entry.
type TransportFactory func(insecure bool) *http.Transport

type poolKey struct {
	scheme   string
	insecure bool
}

// Pool hands out one keep-alive *http.Transport per (scheme, TLS
// verification) pair. Entries are created on first use and never replaced,
// so every Transport sharing a Pool reuses the same connections.
type Pool struct {
	mu         sync.Mutex
	factory    TransportFactory
	transports map[poolKey]*http.Transport
}

//nolint:gochecknoglobals // process-wide connection pool
var (
	defaultPool     *Pool
	defaultPoolOnce sync.Once
)

// DefaultPool returns the process-wide pool, creating it on first use.
func DefaultPool() *Pool {
	defaultPoolOnce.Do(func() {
		defaultPool = NewPool()
	})

	return defaultPool
}

// NewPool creates an empty pool backed by go-cleanhttp pooled transports.
func NewPool() *Pool {
	return NewPoolWithFactory(newPooledTransport)
}

// NewPoolWithFactory creates an empty pool whose entries are built by factory.
func NewPoolWithFactory(factory TransportFactory) *Pool {
	return &Pool{
		factory:    factory,
		transports: make(map[poolKey]*http.Transport),
	}
}

// Transport returns the shared transport for scheme. insecure only applies to
// https and selects a separate entry that skips certificate verification.
func (p *Pool) Transport(scheme string, insecure bool) *http.Transport {
	scheme = strings.ToLower(scheme)
	key := poolKey{scheme: scheme, insecure: insecure && scheme == "https"}

	p.mu.Lock()
	defer p.mu.Unlock()

	if transport, ok := p.transports[key]; ok {
		return transport
	}

	transport := p.factory(key.insecure)
	p.transports[key] = transport

	return transport
}

// Len returns the number of entries created so far.
func (p *Pool) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	return len(p.transports)
}

func newPooledTransport(insecure bool) *http.Transport {
	transport := cleanhttp.DefaultPooledTransport()
	transport.MaxIdleConnsPerHost = constants.PoolMaxIdleConnsPerHost
	transport.IdleConnTimeout = constants.PoolIdleConnTimeout

	if insecure {
		tlsConfig := &tls.Config{MinVersion: tls.VersionTLS12}
		if transport.TLSClientConfig != nil {
			tlsConfig = transport.TLSClientConfig.Clone()
		}

		tlsConfig.InsecureSkipVerify = true // #nosec G402 -- explicit opt-in via Config.InsecureSkipVerify
		transport.TLSClientConfig = tlsConfig
	}

	return transport
}
