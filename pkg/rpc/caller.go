package rpc

import (
	"context"
	"net/http"
	"time"
)

// Caller is the transport interface the client dispatches through.
// It captures the one capability this package needs from HTTP: send a
// request, receive a response. Implementations must be safe for concurrent
// use and must honor ctx, surfacing cancellation or expiry as an error
// rather than returning a partial response.
type Caller interface {
	// Call sends the request and returns the raw response. The response
	// body is left unconsumed for the caller.
	Call(ctx context.Context, req *http.Request) (*http.Response, error)
}

// HTTPCallerConfig contains configuration options for the HTTP caller.
type HTTPCallerConfig struct {
	// Timeout bounds a whole exchange, from dialing to reading the
	// response body. Zero means no client-side limit.
	Timeout time.Duration

	// MaxIdleConns caps the pooled idle connections kept for reuse.
	// Zero means no limit.
	MaxIdleConns int

	// IdleConnTimeout is how long an idle connection stays pooled
	// before it is closed. Zero means idle connections never expire.
	IdleConnTimeout time.Duration
}

// DefaultHTTPCallerConfig provides sensible defaults for talking to a
// daemon on the local machine or a nearby host.
var DefaultHTTPCallerConfig = HTTPCallerConfig{
	Timeout:         30 * time.Second,
	MaxIdleConns:    16,
	IdleConnTimeout: 90 * time.Second,
}

// HTTPCaller implements Caller on top of net/http. The embedded client
// pools connections, so a single HTTPCaller should be shared by every
// Client talking to the same daemon.
type HTTPCaller struct {
	client *http.Client
}

// Ensure HTTPCaller implements the Caller interface
var _ Caller = (*HTTPCaller)(nil)

// NewHTTPCaller creates an HTTP caller with the given configuration.
func NewHTTPCaller(cfg HTTPCallerConfig) *HTTPCaller {
	return &HTTPCaller{
		client: &http.Client{
			Timeout: cfg.Timeout,
			Transport: &http.Transport{
				MaxIdleConns:    cfg.MaxIdleConns,
				IdleConnTimeout: cfg.IdleConnTimeout,
			},
		},
	}
}

// Call sends the request bound to ctx and returns the raw response.
func (c *HTTPCaller) Call(ctx context.Context, req *http.Request) (*http.Response, error) {
	return c.client.Do(req.WithContext(ctx))
}
