package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"charge-finder/core/reconcile"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// DefaultTimeout applies when a client is created without one.
const DefaultTimeout = 10 * time.Second

// maxErrorBody bounds how much of a failed response is kept in the error.
const maxErrorBody = 512

// Client performs JSON calls against one provider.
type Client struct {
	provider string
	http     *http.Client
	auth     Authenticator
	apiKey   string
	logger   *zap.Logger
	group    *singleflight.Group
}

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithAuth sets the authenticator and key. An empty key disables it.
func WithAuth(auth Authenticator, apiKey string) Option {
	return func(c *Client) {
		c.auth = auth
		c.apiKey = apiKey
	}
}

// WithLogger sets the logger used for request tracing.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// WithCoalescing shares one upstream GET between identical concurrent
// callers. Each caller still decodes its own copy of the body.
func WithCoalescing() Option {
	return func(c *Client) { c.group = &singleflight.Group{} }
}

// New creates a client for the named provider.
func New(provider string, timeout time.Duration, opts ...Option) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	c := &Client{
		provider: provider,
		http:     &http.Client{Timeout: timeout},
		auth:     NoAuth{},
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Provider returns the provider name used in errors.
func (c *Client) Provider() string {
	return c.provider
}

// GetJSON issues a GET with the given query and decodes the JSON body into target.
func (c *Client) GetJSON(ctx context.Context, operation, rawURL string, query url.Values, headers map[string]string, target any) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return c.fail(operation, 0, fmt.Errorf("parse url: %w", err))
	}
	if len(query) > 0 {
		q := u.Query()
		for k, vs := range query {
			for _, v := range vs {
				q.Add(k, v)
			}
		}
		u.RawQuery = q.Encode()
	}
	if c.group == nil {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
		if err != nil {
			return c.fail(operation, 0, fmt.Errorf("create request: %w", err))
		}
		return c.do(req, operation, headers, target)
	}

	// The shared call outlives any single caller, so it is detached from
	// the caller's cancellation and bounded by the client timeout alone.
	key := operation + " " + u.String()
	ch := c.group.DoChan(key, func() (any, error) {
		req, err := http.NewRequestWithContext(context.WithoutCancel(ctx), http.MethodGet, u.String(), nil)
		if err != nil {
			return nil, c.fail(operation, 0, fmt.Errorf("create request: %w", err))
		}
		body, status, err := c.fetch(req, operation, headers)
		if err != nil {
			return nil, err
		}
		return response{body: body, status: status}, nil
	})

	select {
	case <-ctx.Done():
		return c.fail(operation, 0, ctx.Err())
	case res := <-ch:
		if res.Err != nil {
			return res.Err
		}
		if res.Shared {
			c.logger.Debug("Coalesced provider call",
				zap.String("provider", c.provider),
				zap.String("operation", operation))
		}
		r := res.Val.(response)
		return c.decode(operation, r.status, r.body, target)
	}
}

type response struct {
	body   []byte
	status int
}

// PostJSON issues a POST with a JSON body and decodes the JSON response into target.
func (c *Client) PostJSON(ctx context.Context, operation, rawURL string, body any, headers map[string]string, target any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return c.fail(operation, 0, fmt.Errorf("encode request: %w", err))
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, rawURL, bytes.NewReader(payload))
	if err != nil {
		return c.fail(operation, 0, fmt.Errorf("create request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, operation, headers, target)
}

func (c *Client) do(req *http.Request, operation string, headers map[string]string, target any) error {
	body, status, err := c.fetch(req, operation, headers)
	if err != nil {
		return err
	}
	return c.decode(operation, status, body, target)
}

// fetch performs the request and returns the body of a 2xx response.
func (c *Client) fetch(req *http.Request, operation string, headers map[string]string) ([]byte, int, error) {
	req.Header.Set("Accept", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	if c.apiKey != "" {
		c.auth.Apply(req, c.apiKey)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		// url.Error embeds the full URL, which may carry the API key.
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			err = fmt.Errorf("%s request: %w", urlErr.Op, urlErr.Err)
		}
		return nil, 0, c.fail(operation, 0, err)
	}
	defer resp.Body.Close()

	c.logger.Debug("Provider call",
		zap.String("provider", c.provider),
		zap.String("operation", operation),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, resp.StatusCode, c.fail(operation, resp.StatusCode, fmt.Errorf("unexpected response: %s", bytes.TrimSpace(body)))
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, c.fail(operation, resp.StatusCode, fmt.Errorf("read response: %w", err))
	}
	return body, resp.StatusCode, nil
}

func (c *Client) decode(operation string, status int, body []byte, target any) error {
	if err := json.Unmarshal(body, target); err != nil {
		return c.fail(operation, status, fmt.Errorf("decode response: %w", err))
	}
	return nil
}

// Fail builds a ProviderError for failures detected after decoding, such as
// an error status embedded in a successful response.
func (c *Client) Fail(operation string, err error) error {
	return c.fail(operation, 0, err)
}

func (c *Client) fail(operation string, status int, err error) error {
	return &reconcile.ProviderError{
		Provider:   c.provider,
		Operation:  operation,
		StatusCode: status,
		Err:        err,
	}
}
