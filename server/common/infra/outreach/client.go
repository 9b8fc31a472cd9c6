// Package outreach is the single HTTP client for the remote outreach API.
// Every service module goes through it: it attaches the backend bearer token
// when one is supplied, speaks JSON both ways, and normalizes transport,
// status, and decode failures into *APIError values with messages fit to
// show a user.
package outreach

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"outreach_web/server/common/env"
)

const (
	defaultBaseURL     = "https://api.agent-outreach.io"
	defaultHTTPTimeout = 10 * time.Second
)

// APIError is the uniform failure for any outreach call. Message is always
// human-readable; Status is 0 for transport and decode failures.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Status == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (status %d)", e.Message, e.Status)
}

const genericFailureMessage = "request to the outreach service failed"

type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	normalized := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if normalized == "" {
		normalized = defaultBaseURL
	}
	timeout := env.Duration("OUTREACH_HTTP_TIMEOUT", defaultHTTPTimeout)
	return &Client{
		baseURL: normalized,
		http:    &http.Client{Timeout: timeout},
	}
}

// Get issues a GET with optional query values; out may be nil to discard
// the body.
func (c *Client) Get(ctx context.Context, token, path string, query url.Values, out any) error {
	return c.do(ctx, token, http.MethodGet, path, query, nil, out)
}

func (c *Client) Post(ctx context.Context, token, path string, payload, out any) error {
	return c.do(ctx, token, http.MethodPost, path, nil, payload, out)
}

func (c *Client) Put(ctx context.Context, token, path string, payload, out any) error {
	return c.do(ctx, token, http.MethodPut, path, nil, payload, out)
}

func (c *Client) Delete(ctx context.Context, token, path string, out any) error {
	return c.do(ctx, token, http.MethodDelete, path, nil, nil, out)
}

func (c *Client) do(ctx context.Context, token, method, path string, query url.Values, payload, out any) error {
	normalizedPath := path
	if !strings.HasPrefix(normalizedPath, "/") {
		normalizedPath = "/" + normalizedPath
	}
	fullURL := c.baseURL + normalizedPath
	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return &APIError{Message: genericFailureMessage}
		}
		body = bytes.NewBuffer(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, body)
	if err != nil {
		return &APIError{Message: genericFailureMessage}
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &APIError{Message: genericFailureMessage}
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &APIError{Message: genericFailureMessage}
	}

	if resp.StatusCode >= 300 {
		return &APIError{Status: resp.StatusCode, Message: backendMessage(raw)}
	}

	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &APIError{Message: genericFailureMessage}
	}
	return nil
}

// backendMessage pulls the backend's own error text out of a failure body,
// falling back to the generic message when the body has none.
func backendMessage(raw []byte) string {
	var parsed struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &parsed); err == nil {
		if parsed.Error != "" {
			return parsed.Error
		}
		if parsed.Message != "" {
			return parsed.Message
		}
	}
	return genericFailureMessage
}
