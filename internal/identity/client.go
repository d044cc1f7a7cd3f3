package identity

import (
	"context"
	"encoding/json/v2"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	domainerrors "github.com/shelfspace/shelfspace-server/internal/errors"
)

// Client talks to the identity provider's admin API over HTTP.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiToken   string
	logger     *slog.Logger
}

// NewClient creates an identity provider client.
func NewClient(baseURL, apiToken string, timeout time.Duration, logger *slog.Logger) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL:  baseURL,
		apiToken: apiToken,
		logger:   logger,
	}
}

// GetUserInfo implements Provider.
func (c *Client) GetUserInfo(ctx context.Context, userID string) (*UserInfo, error) {
	endpoint := c.baseURL + "/admin/users/" + url.PathEscape(userID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build user info request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiToken)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("identity provider request failed: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, domainerrors.NotFoundf("identity provider does not know user %s", userID)
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("identity provider returned status %d", resp.StatusCode)
	}

	var info UserInfo
	if err := json.UnmarshalRead(resp.Body, &info); err != nil {
		return nil, fmt.Errorf("decode user info response: %w", err)
	}

	return &info, nil
}

// DeleteUser implements Provider.
func (c *Client) DeleteUser(ctx context.Context, userID string) error {
	endpoint := c.baseURL + "/admin/users/" + url.PathEscape(userID)

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, endpoint, nil)
	if err != nil {
		return fmt.Errorf("build user delete request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("identity provider request failed: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusNoContent:
		return nil
	case http.StatusNotFound:
		// Account already gone; deletion is idempotent from our side.
		if c.logger != nil {
			c.logger.Warn("identity provider had no account to delete", "user_id", userID)
		}
		return nil
	default:
		return fmt.Errorf("identity provider returned status %d", resp.StatusCode)
	}
}
