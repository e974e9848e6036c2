// Package webhook delivers JSON payloads to external webhook endpoints.
package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client posts JSON payloads to webhook URLs.
type Client interface {
	// Post marshals payload as JSON and sends it to url. A non-2xx response
	// is reported as a *DeliveryError.
	Post(ctx context.Context, url string, payload any) error
}

// DeliveryError indicates the endpoint rejected the delivery.
type DeliveryError struct {
	URL        string
	StatusCode int
	Body       string
}

// Error implements the error interface.
func (e *DeliveryError) Error() string {
	return fmt.Sprintf("webhook: delivery to %s failed with status %d", e.URL, e.StatusCode)
}

// HTTPClient is a Client backed by net/http.
type HTTPClient struct {
	client *http.Client
}

// NewHTTPClient constructs an HTTPClient with the given request timeout.
func NewHTTPClient(timeout time.Duration) *HTTPClient {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &HTTPClient{
		client: &http.Client{Timeout: timeout},
	}
}

// Post sends payload to url as an application/json POST.
func (c *HTTPClient) Post(ctx context.Context, url string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("webhook: marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("webhook: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("webhook: post %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		// keep a short body excerpt for debugging, never the full payload
		excerpt, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &DeliveryError{
			URL:        url,
			StatusCode: resp.StatusCode,
			Body:       string(excerpt),
		}
	}

	return nil
}
