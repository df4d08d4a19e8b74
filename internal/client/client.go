// Package client is the HTTP client for the activities API. It holds no
// state beyond its connection settings: every call is a single
// request/response against the server, which stays the authority on the
// roster contents and their order.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/mergington/activities/internal/activity"
)

// APIError is a server-reported application error: the request reached the
// server and it answered with a non-2xx status and a detail payload.
// Transport failures are returned as ordinary errors instead.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("server returned status %d: %s", e.StatusCode, e.Detail)
}

// Client talks to the activities API
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient sets the underlying HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithLogger sets the logger used for request diagnostics
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// New creates a client for the activities API at baseURL
func New(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("base URL must include http or https scheme")
	}

	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: http.DefaultClient,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// FetchRoster retrieves the full activity roster. The returned roster
// preserves the server's ordering. Any transport or decode failure is
// returned as an error; there is no client-side retry.
func (c *Client) FetchRoster(ctx context.Context) (*activity.Roster, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/activities", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build roster request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch activities: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, c.apiError(resp)
	}

	roster := activity.NewRoster()
	if err := json.NewDecoder(resp.Body).Decode(roster); err != nil {
		return nil, fmt.Errorf("failed to decode activities: %w", err)
	}

	c.logger.Debug("fetched roster", "activities", roster.Len())
	return roster, nil
}

// SignUp registers email for the named activity and returns the server's
// confirmation message. A non-2xx response is returned as an *APIError
// carrying the server's detail text.
func (c *Client) SignUp(ctx context.Context, name, email string) (string, error) {
	return c.signupRequest(ctx, http.MethodPost, name, email)
}

// CancelSignup removes email from the named activity. Same contract as
// SignUp; idempotency is up to the server.
func (c *Client) CancelSignup(ctx context.Context, name, email string) (string, error) {
	return c.signupRequest(ctx, http.MethodDelete, name, email)
}

func (c *Client) signupRequest(ctx context.Context, method, name, email string) (string, error) {
	reqURL := c.signupURL(name, email)
	req, err := http.NewRequestWithContext(ctx, method, reqURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build signup request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to reach server: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := c.apiError(resp)
		c.logger.Debug("signup request rejected",
			"method", method, "activity", name, "status", resp.StatusCode)
		return "", apiErr
	}

	var out activity.MessageResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	return out.Message, nil
}

// signupURL builds /activities/{name}/signup?email=... with both the path
// segment and the query percent-encoded
func (c *Client) signupURL(name, email string) string {
	q := url.Values{}
	q.Set("email", email)
	return fmt.Sprintf("%s/activities/%s/signup?%s",
		c.baseURL, url.PathEscape(name), q.Encode())
}

// apiError turns a non-2xx response into an *APIError, falling back to a
// generic detail when the body carries none
func (c *Client) apiError(resp *http.Response) error {
	detail := fmt.Sprintf("request failed with status %d", resp.StatusCode)

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err == nil {
		var payload struct {
			Detail string `json:"detail"`
		}
		if json.Unmarshal(body, &payload) == nil && payload.Detail != "" {
			detail = payload.Detail
		}
	}

	return &APIError{StatusCode: resp.StatusCode, Detail: detail}
}
