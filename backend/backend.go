package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"
)

// Client represents a client to communicate with the backend API server.
type Client struct {
	mu         sync.RWMutex
	baseURL    string
	headers    http.Header
	httpClient *http.Client
}

// Option customises a Client.
type Option func(*Client)

// WithTimeout bounds every request. Zero means no timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithHeaders adds headers sent with every request.
func WithHeaders(h map[string]string) Option {
	return func(c *Client) {
		for k, v := range h {
			c.headers.Set(k, v)
		}
	}
}

// NewBackendClient creates a new BackendClient with the specified base URL.
func NewBackendClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		headers:    make(http.Header),
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the URL requests are currently sent to.
func (c *Client) BaseURL() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.baseURL
}

// SetBaseURL points the client at a different backend. Requests already in
// flight keep their original target.
func (c *Client) SetBaseURL(baseURL string) {
	c.mu.Lock()
	c.baseURL = strings.TrimRight(baseURL, "/")
	c.mu.Unlock()
}

// Forward sends the HTTP request to the backend server and returns the response.
func (c *Client) Forward(ctx context.Context, method, path string, headers http.Header, body io.Reader) (*http.Response, error) {
	// Construct the full URL.
	url := fmt.Sprintf("%s%s", c.BaseURL(), path)

	// Create a new HTTP request with context.
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, err
	}

	// Copy headers.
	for key, values := range c.headers {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}
	for key, values := range headers {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}
	if id := RequestIDFromContext(ctx); id != "" {
		req.Header.Set(RequestIDHeader, id)
	}

	// Send the request to the backend.
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}

	return resp, nil
}

// PostJSON sends payload as a JSON body and decodes the reply into out.
// The reply is decoded whatever the status code.
func (c *Client) PostJSON(ctx context.Context, path string, payload, out any) error {
	b, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encoding %s payload: %w", path, err)
	}
	headers := http.Header{}
	headers.Set("Content-Type", "application/json")

	resp, err := c.Forward(ctx, http.MethodPost, path, headers, bytes.NewReader(b))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return decodeBody(resp, out)
}

// GetJSON issues a GET and decodes the reply into out whatever the status code.
func (c *Client) GetJSON(ctx context.Context, path string, out any) error {
	resp, err := c.Forward(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return decodeBody(resp, out)
}

// Trigger issues a body-less POST. Any non-2xx status is returned as a
// *StatusError. The reply body is returned for logging only.
func (c *Client) Trigger(ctx context.Context, path string) ([]byte, error) {
	resp, err := c.Forward(ctx, http.MethodPost, path, nil, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return body, &StatusError{
			Method:     http.MethodPost,
			Path:       path,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s response: %w", path, err)
	}
	return body, nil
}

func decodeBody(resp *http.Response, out any) error {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}
	// A null reply has no fields to read and counts as unparseable.
	if !json.Valid(body) || bytes.Equal(bytes.TrimSpace(body), []byte("null")) {
		return &ParseError{StatusCode: resp.StatusCode, Body: truncate(string(body), 200)}
	}
	// Valid JSON of an unexpected shape leaves out at its zero value, so the
	// caller sees every recognised field as absent.
	var typeErr *json.UnmarshalTypeError
	if err := json.Unmarshal(body, out); err != nil && !errors.As(err, &typeErr) {
		return &ParseError{StatusCode: resp.StatusCode, Body: truncate(string(body), 200)}
	}
	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
