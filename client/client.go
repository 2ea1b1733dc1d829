// Package client is the consumer-side library for the blog-post API. It
// wraps outbound HTTP calls with a fixed timeout, bounded retries with
// linear backoff, and error-message normalization, and layers a keyed
// query cache with TTL staleness on top.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	// DefaultTimeout bounds each individual HTTP attempt.
	DefaultTimeout = 10 * time.Second
	// DefaultMaxRetries is the number of retries after the first attempt.
	DefaultMaxRetries = 3
	// DefaultRetryDelay is the base backoff; the wait before retry n is
	// n times this value.
	DefaultRetryDelay = time.Second
)

// Client is an HTTP client for the blog-post API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	maxRetries int
	retryDelay time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout overrides the per-attempt timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = d }
}

// WithMaxRetries overrides the retry budget.
func WithMaxRetries(n int) Option {
	return func(c *Client) { c.maxRetries = n }
}

// WithRetryDelay overrides the base backoff delay.
func WithRetryDelay(d time.Duration) Option {
	return func(c *Client) { c.retryDelay = d }
}

// New creates a Client for the API at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: DefaultTimeout},
		baseURL:    baseURL,
		maxRetries: DefaultMaxRetries,
		retryDelay: DefaultRetryDelay,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// APIError is the normalized form of any failed call. Message is what
// should reach UI-level error states; StatusCode is zero when no response
// was received.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

// get issues a GET and decodes the JSON response into out.
func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

// post issues a POST with a JSON body and decodes the response into out.
func (c *Client) post(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

// delete issues a DELETE, discarding any response body.
func (c *Client) delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

// do executes a request, retrying on network failures, on any server
// error, and on status 400 (a deliberate carry-over from the reference
// client), never on other client errors. Backoff grows linearly with the
// attempt number.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
	}

	var lastErr *APIError
	for attempt := 0; ; attempt++ {
		err := c.send(ctx, method, path, payload, out)
		if err == nil {
			return nil
		}

		apiErr, ok := err.(*APIError)
		if !ok {
			return err
		}
		lastErr = apiErr

		if !shouldRetry(apiErr) || attempt >= c.maxRetries {
			return lastErr
		}
		if err := c.wait(ctx, attempt+1); err != nil {
			return lastErr
		}
	}
}

// send performs a single attempt.
func (c *Client) send(ctx context.Context, method, path string, payload []byte, out interface{}) error {
	var bodyReader io.Reader
	if payload != nil {
		bodyReader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &APIError{Message: err.Error()}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &APIError{StatusCode: resp.StatusCode, Message: err.Error()}
	}

	if resp.StatusCode >= 400 {
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    normalizeMessage(resp.StatusCode, data),
		}
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

// wait sleeps for attempt times the base delay, or until ctx is done.
func (c *Client) wait(ctx context.Context, attempt int) error {
	timer := time.NewTimer(c.retryDelay * time.Duration(attempt))
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func shouldRetry(err *APIError) bool {
	if err.StatusCode == 0 {
		// No response received.
		return true
	}
	return err.StatusCode >= 500 || err.StatusCode == http.StatusBadRequest
}

// normalizeMessage prefers a server-supplied error or message field, then
// falls back to a generic message for the status.
func normalizeMessage(status int, data []byte) string {
	var body struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &body); err == nil {
		if body.Error != "" {
			return body.Error
		}
		if body.Message != "" {
			return body.Message
		}
	}
	return fmt.Sprintf("request failed with status %d", status)
}
