// Package upstream implements the outbound client for the third-party user
// directory (JSONPlaceholder).
package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/bankcore/bank-client-api/internal/core/domain"
)

// DefaultBaseURL is the fixed directory endpoint. The current design does not
// call for runtime reconfiguration; the config layer only overrides it for
// tests and local stubs.
const DefaultBaseURL = "https://jsonplaceholder.typicode.com"

const requestTimeout = 10 * time.Second

// Client wraps interactions with the external user directory. The underlying
// http.Client is constructed once and reused across calls; there is no
// per-request teardown, retry, or backoff.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient constructs a directory client. An empty baseURL falls back to
// DefaultBaseURL.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
	}
}

// ListUsers fetches every user from the directory in a single call. Network
// failures, non-2xx statuses, and undecodable bodies all collapse into
// domain.ErrUpstreamUnavailable with the cause attached. An empty body is a
// valid empty list.
func (c *Client) ListUsers(ctx context.Context) ([]domain.ExternalUser, error) {
	body, status, err := c.get(ctx, fmt.Sprintf("%s/users", c.baseURL))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrUpstreamUnavailable, err)
	}
	if status < 200 || status > 299 {
		return nil, fmt.Errorf("%w: directory returned status %d", domain.ErrUpstreamUnavailable, status)
	}
	if len(body) == 0 {
		return []domain.ExternalUser{}, nil
	}

	var users []domain.ExternalUser
	if err := json.Unmarshal(body, &users); err != nil {
		return nil, fmt.Errorf("%w: decode users: %w", domain.ErrUpstreamUnavailable, err)
	}
	if users == nil {
		users = []domain.ExternalUser{}
	}
	return users, nil
}

// GetUser fetches a single user by id. A non-2xx status (the upstream 404
// case included) is a not-found outcome, distinct from the directory being
// unreachable or returning garbage.
func (c *Client) GetUser(ctx context.Context, id int) (*domain.ExternalUser, error) {
	body, status, err := c.get(ctx, fmt.Sprintf("%s/users/%d", c.baseURL, id))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrUpstreamUnavailable, err)
	}
	if status < 200 || status > 299 {
		return nil, domain.ErrExternalUserNotFound
	}

	var user domain.ExternalUser
	if err := json.Unmarshal(body, &user); err != nil {
		return nil, fmt.Errorf("%w: decode user: %w", domain.ErrUpstreamUnavailable, err)
	}
	return &user, nil
}

// get performs one GET and returns the full body and status code.
func (c *Client) get(ctx context.Context, url string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, 0, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, err
	}
	return body, resp.StatusCode, nil
}
