package chronopass

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Client is the chronopass verification API client.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// Option is a function that configures the Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(client *Client) {
		client.httpClient = c
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(d time.Duration) Option {
	return func(client *Client) {
		client.httpClient.Timeout = d
	}
}

// NewClient creates a new chronopass API client.
//
// Parameters:
//   - baseURL: the API base URL (e.g. "https://passes.example.com")
//   - token: the bearer token identifying the relying service
func NewClient(baseURL, token string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		token:   token,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetSubscription retrieves a pass record with its derived activity flag.
func (c *Client) GetSubscription(ctx context.Context, tokenID uint64) (*SubscriptionStatus, error) {
	endpoint := fmt.Sprintf("%s/api/v1/subscriptions/%d", c.baseURL, tokenID)

	var status SubscriptionStatus
	if err := c.doRequest(ctx, http.MethodGet, endpoint, nil, &status); err != nil {
		return nil, fmt.Errorf("get subscription: %w", err)
	}
	return &status, nil
}

// HasFeature reports whether an active pass carries the given feature key.
func (c *Client) HasFeature(ctx context.Context, tokenID uint64, featureKey string) (bool, error) {
	endpoint := fmt.Sprintf("%s/api/v1/subscriptions/%d/features/%s", c.baseURL, tokenID, url.PathEscape(featureKey))

	var result featureResult
	if err := c.doRequest(ctx, http.MethodGet, endpoint, nil, &result); err != nil {
		return false, fmt.Errorf("has feature: %w", err)
	}
	return result.HasFeature, nil
}

// VerifyOwnership reports whether the given principal holds the pass.
func (c *Client) VerifyOwnership(ctx context.Context, tokenID uint64, owner string) (bool, error) {
	endpoint := fmt.Sprintf("%s/api/v1/subscriptions/%d/ownership?owner=%s", c.baseURL, tokenID, url.QueryEscape(owner))

	var result ownershipResult
	if err := c.doRequest(ctx, http.MethodGet, endpoint, nil, &result); err != nil {
		return false, fmt.Errorf("verify ownership: %w", err)
	}
	return result.IsOwner, nil
}

// VerifyAccess answers activity, ownership and feature membership in one
// round trip. This is the call relying services are expected to gate on.
func (c *Client) VerifyAccess(ctx context.Context, tokenID uint64, featureKey string) (*AccessResult, error) {
	endpoint := fmt.Sprintf("%s/api/v1/subscriptions/%d/access/%s", c.baseURL, tokenID, url.PathEscape(featureKey))

	var result AccessResult
	if err := c.doRequest(ctx, http.MethodGet, endpoint, nil, &result); err != nil {
		return nil, fmt.Errorf("verify access: %w", err)
	}
	return &result, nil
}

// GetTier retrieves a tier definition.
func (c *Client) GetTier(ctx context.Context, tierID uint64) (*Tier, error) {
	endpoint := fmt.Sprintf("%s/api/v1/tiers/%d", c.baseURL, tierID)

	var tier Tier
	if err := c.doRequest(ctx, http.MethodGet, endpoint, nil, &tier); err != nil {
		return nil, fmt.Errorf("get tier: %w", err)
	}
	return &tier, nil
}

// doRequest performs an HTTP request and decodes the response envelope.
func (c *Client) doRequest(ctx context.Context, method, endpoint string, body any, result any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	var apiResp apiResponse
	if err := json.Unmarshal(respBody, &apiResp); err != nil {
		return fmt.Errorf("api error: status=%d body=%s", resp.StatusCode, string(respBody))
	}

	if !apiResp.Success {
		if apiResp.Error != nil {
			return fmt.Errorf("api error: status=%d type=%s message=%s", resp.StatusCode, apiResp.Error.Type, apiResp.Error.Message)
		}
		return fmt.Errorf("api error: status=%d body=%s", resp.StatusCode, string(respBody))
	}

	if result == nil || apiResp.Data == nil {
		return nil
	}

	dataBytes, err := json.Marshal(apiResp.Data)
	if err != nil {
		return fmt.Errorf("re-marshal response data: %w", err)
	}
	if err := json.Unmarshal(dataBytes, result); err != nil {
		return fmt.Errorf("unmarshal response data: %w", err)
	}

	return nil
}
