// ABOUTME: HTTP client for the copyparty file server.
// ABOUTME: Request construction, password auth, and error classification.

package copyparty

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	// DefaultTimeout bounds every request unless overridden.
	DefaultTimeout = 60 * time.Second

	// maxErrorBody caps how much of an error response body is kept
	// for the error message.
	maxErrorBody = 4096
)

// Client talks to one copyparty server. It holds no mutable state and
// is safe for concurrent use.
type Client struct {
	base     *url.URL
	password string
	hc       *http.Client
	logger   *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client. Used by tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.hc = hc
	}
}

// WithTimeout sets the transport timeout for all requests.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.hc.Timeout = d
	}
}

// WithLogger sets the client's logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// New creates a client for the copyparty server at baseURL. The
// password may be empty for anonymous servers.
func New(baseURL, password string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, Validationf("server URL is required")
	}
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, Validationf("invalid server URL %q: %v", baseURL, err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, Validationf("server URL %q must be http or https", baseURL)
	}

	c := &Client{
		base:     base,
		password: password,
		hc:       &http.Client{Timeout: DefaultTimeout},
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// BaseURL returns the configured server URL.
func (c *Client) BaseURL() string {
	return c.base.String()
}

// HasAuth reports whether a password is configured.
func (c *Client) HasAuth() bool {
	return c.password != ""
}

// endpoint joins a remote path onto the base URL with the given query
// parameters, escaping each path segment.
func (c *Client) endpoint(path string, q url.Values) string {
	if path == "" {
		path = "/"
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	u := *c.base
	u.Path = strings.TrimSuffix(u.Path, "/") + path
	u.RawQuery = q.Encode()
	return u.String()
}

// do issues one request and classifies the outcome. The caller owns
// the response body on success.
func (c *Client) do(ctx context.Context, method, path string, q url.Values, body io.Reader, contentType string) (*http.Response, error) {
	target := c.endpoint(path, q)
	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, Validationf("cannot build request for %q: %v", path, err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.password != "" {
		req.Header.Set("PW", c.password)
	}

	c.logger.Debug("request", "method", method, "path", path)
	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, &ConnectivityError{URL: c.base.String(), Err: err}
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return resp, nil
	}

	msg := readErrorBody(resp)
	resp.Body.Close()
	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return nil, &AuthError{Status: resp.StatusCode, Msg: msg}
	}
	return nil, &RemoteError{Status: resp.StatusCode, Msg: msg}
}

// fetch issues a request and returns the whole response body.
func (c *Client) fetch(ctx context.Context, method, path string, q url.Values, body io.Reader, contentType string) ([]byte, http.Header, error) {
	resp, err := c.do(ctx, method, path, q, body, contentType)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, &ConnectivityError{URL: c.base.String(), Err: err}
	}
	return data, resp.Header, nil
}

// getJSON issues a GET and decodes the JSON response into v.
func (c *Client) getJSON(ctx context.Context, path string, q url.Values, v any) error {
	data, _, err := c.fetch(ctx, http.MethodGet, path, q, nil, "")
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return &RemoteError{Status: http.StatusOK, Msg: fmt.Sprintf("unexpected response shape: %v", err)}
	}
	return nil
}

// postForm issues a form-encoded POST and discards the response body.
func (c *Client) postForm(ctx context.Context, path string, q url.Values, form url.Values) error {
	body := strings.NewReader(form.Encode())
	_, _, err := c.fetch(ctx, http.MethodPost, path, q, body, "application/x-www-form-urlencoded")
	return err
}

func readErrorBody(resp *http.Response) string {
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}
