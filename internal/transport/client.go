// Package transport provides the HTTP client used to talk to the remote
// e-signature service, applying header-token authentication and common
// JSON headers to every request.
package transport

import (
	"bytes"
	"context"
	"net/http"
	"time"

	"github.com/paperfold/formsync/pkg/errors"
)

// DefaultHTTPTimeout is the default timeout for HTTP requests.
const DefaultHTTPTimeout = 30 * time.Second

// AuthHeader carries the API token on every authenticated request.
const AuthHeader = "X-Auth-Token"

// Client provides HTTP client functionality with authentication.
type Client struct {
	http   *http.Client
	apiKey string
}

// New creates a transport client using the given API key. An empty key
// leaves requests unauthenticated; callers that require auth validate the
// key before constructing the client.
func New(apiKey string, opts ...Option) *Client {
	c := &Client{
		http:   &http.Client{Timeout: DefaultHTTPTimeout},
		apiKey: apiKey,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client, e.g. for tests or
// custom transports.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// Do performs an HTTP request with authentication and common headers applied.
func (c *Client) Do(req *http.Request) (*http.Response, error) {
	if c.apiKey != "" {
		req.Header.Set(AuthHeader, c.apiKey)
	}
	req.Header.Set("Accept", "application/json")
	if req.Method == http.MethodPost || req.Method == http.MethodPut || req.Method == http.MethodPatch {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.http.Do(req)
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.WrapResource("create", "request", "GET "+url, err)
	}
	return c.Do(req)
}

// Post performs a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, url string, body []byte) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, errors.WrapResource("create", "request", "POST "+url, err)
	}
	return c.Do(req)
}
