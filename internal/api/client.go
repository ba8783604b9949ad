// Package api is the JSON-over-HTTP client for the Warfront API.
//
// A Client is immutable once constructed: the bearer credential is fixed at
// construction time, and callers are expected to build a fresh client on
// every session transition instead of mutating a shared one.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/felixgeelhaar/warfront/internal/errors"
)

// Client is the Warfront API client
type Client struct {
	baseURL    string
	httpClient *http.Client
	token      string
}

// Option configures a Client
type Option func(*Client)

// WithToken attaches a bearer credential to every request the client sends
func WithToken(token string) Option {
	return func(c *Client) {
		c.token = token
	}
}

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// New creates a new Warfront API client
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the configured API endpoint
func (c *Client) BaseURL() string {
	return c.baseURL
}

// StatusError describes a non-2xx response from the API.
// Detail carries the backend's {"detail": ...} message when present.
type StatusError struct {
	Status int
	Detail string
}

// Error implements the error interface
func (e *StatusError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("status %d: %s", e.Status, e.Detail)
	}
	return fmt.Sprintf("status %d", e.Status)
}

// doRequest performs an HTTP request, attaching the bearer credential when set
func (c *Client) doRequest(ctx context.Context, method, path string, body any) (*http.Response, error) {
	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeAPIRequest, "marshal request body", err)
		}
		reqBody = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeAPIRequest, "create request", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeAPIRequest, "reach the Warfront API", err)
	}

	return resp, nil
}

// errorDetail is the FastAPI-style error envelope
type errorDetail struct {
	Detail string `json:"detail"`
}

// parseResponse decodes a 2xx body into target, or returns a StatusError
// for any other status.
func parseResponse(resp *http.Response, target any) error {
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)

		var detail errorDetail
		if err := json.Unmarshal(body, &detail); err == nil && detail.Detail != "" {
			return &StatusError{Status: resp.StatusCode, Detail: detail.Detail}
		}
		return &StatusError{Status: resp.StatusCode, Detail: string(body)}
	}

	if target != nil {
		if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
			return errors.Wrap(errors.ErrCodeAPIDecode, "decode response", err)
		}
	}

	return nil
}

// generalize maps a StatusError onto the generic taxonomy: 401 becomes a
// credential rejection, everything else a generic retryable failure.
func generalize(err error) error {
	se, ok := err.(*StatusError)
	if !ok {
		return err
	}
	if se.Status == http.StatusUnauthorized {
		return errors.Wrap(errors.ErrCodeAPIUnauthorized, "credential rejected by the Warfront API", se).
			WithSuggestion("Run 'warfront auth login' to re-authenticate")
	}
	return errors.NewAPIStatusError(se.Status, se.Detail)
}
