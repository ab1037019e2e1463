/**
 * @description
 * This file owns the authenticated HTTP session shared by all endpoint
 * methods. It encapsulates lazy session construction, idempotent teardown,
 * header injection, and the single Request primitive every endpoint method
 * is built on.
 *
 * Key features:
 * - The underlying http.Client is created on first use and recreated after
 *   Close, so a closed client can be reused safely.
 * - Concurrent calls are safe: the connection pool synchronizes itself, and
 *   an optional cap bounds simultaneous connections to the API host.
 * - Transport failures are rewrapped as network errors before they reach the
 *   caller; the raw *url.Error never escapes.
 *
 * @dependencies
 * - net/http: transport and connection pooling.
 */
package monoclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"
	"unicode"
)

const defaultRequestTimeout = 30 * time.Second

// core is the shared request capability behind the public and personal
// endpoint sets. It is not exported; callers construct one of the two
// endpoint clients instead.
type core struct {
	token  string
	server APIServer

	// connectionsLimit caps simultaneous connections to the API host.
	// Zero means no cap; requests beyond the cap queue in the transport.
	connectionsLimit int
	timeout          time.Duration

	mu         sync.Mutex
	httpClient *http.Client
}

func newCore(token string, server APIServer, connectionsLimit int, timeout time.Duration) *core {
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}
	return &core{
		token:            token,
		server:           server,
		connectionsLimit: connectionsLimit,
		timeout:          timeout,
	}
}

// checkToken validates a token before any network call is made: it must not
// contain whitespace characters.
func checkToken(token string) error {
	for _, r := range token {
		if unicode.IsSpace(r) {
			return validationError("token is invalid: it can't contain spaces")
		}
	}
	return nil
}

// session returns the current http.Client, creating a fresh one when none
// exists yet or the previous one was closed.
func (c *core) session() *http.Client {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.httpClient == nil {
		transport := http.DefaultTransport.(*http.Transport).Clone()
		transport.MaxConnsPerHost = c.connectionsLimit
		c.httpClient = &http.Client{
			Transport: transport,
			Timeout:   c.timeout,
		}
	}
	return c.httpClient
}

// Close releases the pooled connections. It is idempotent, and a later
// request transparently builds a new session.
func (c *core) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.httpClient != nil {
		c.httpClient.CloseIdleConnections()
		c.httpClient = nil
	}
}

// Request issues one API call and returns the response body as raw JSON, or
// a classified error. A non-nil body is JSON-encoded into the request.
func (c *core) Request(ctx context.Context, method, path string, body any) (json.RawMessage, error) {
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.server.URL(path), reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("X-Token", c.token)
	}

	resp, err := c.session().Do(req)
	if err != nil {
		return nil, networkError(err, "transport error: %v", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, networkError(err, "failed to read response body: %v", err)
	}

	return checkResult(path, resp.StatusCode, resp.Header.Get("Content-Type"), string(respBody))
}

// Option adjusts client construction.
type Option func(*options)

type options struct {
	server           APIServer
	connectionsLimit int
	timeout          time.Duration
	now              func() time.Time
}

func defaultOptions() options {
	return options{
		server: Production,
		now:    time.Now,
	}
}

// WithServer points the client at a non-production API deployment.
func WithServer(server APIServer) Option {
	return func(o *options) { o.server = server }
}

// WithConnectionsLimit caps the number of simultaneous connections held
// against the API host. Zero or negative means unlimited.
func WithConnectionsLimit(limit int) Option {
	return func(o *options) {
		if limit > 0 {
			o.connectionsLimit = limit
		}
	}
}

// WithTimeout overrides the per-request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(o *options) { o.timeout = timeout }
}

// withClock substitutes the clock used for cache expiry and default
// statement windows. Test hook.
func withClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}
