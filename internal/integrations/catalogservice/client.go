package catalogservice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// HTTPClient talks to the salon catalog service, which owns clients,
// services and stylists. The scheduling service only keeps denormalized
// snapshots of those records on each appointment.
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient creates a new catalog service client
func NewClient(baseURL string, timeout time.Duration, log Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetClient fetches a salon client by id
func (c *HTTPClient) GetClient(ctx context.Context, id string) (*Client, error) {
	var client Client
	if err := c.get(ctx, fmt.Sprintf("%s/internal/clients/%s", c.baseURL, url.PathEscape(id)), &client, ErrClientNotFound); err != nil {
		return nil, err
	}
	return &client, nil
}

// GetService fetches a salon service by id
func (c *HTTPClient) GetService(ctx context.Context, id string) (*Service, error) {
	var service Service
	if err := c.get(ctx, fmt.Sprintf("%s/internal/services/%s", c.baseURL, url.PathEscape(id)), &service, ErrServiceNotFound); err != nil {
		return nil, err
	}
	return &service, nil
}

// GetStylist fetches a stylist by id
func (c *HTTPClient) GetStylist(ctx context.Context, id string) (*Stylist, error) {
	var stylist Stylist
	if err := c.get(ctx, fmt.Sprintf("%s/internal/stylists/%s", c.baseURL, url.PathEscape(id)), &stylist, ErrStylistNotFound); err != nil {
		return nil, err
	}
	return &stylist, nil
}

func (c *HTTPClient) get(ctx context.Context, requestURL string, out interface{}, notFound error) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("CatalogService request failed: url=%s: %v", requestURL, err)
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// fall through to decoding
	case http.StatusNotFound:
		return notFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return nil
}
