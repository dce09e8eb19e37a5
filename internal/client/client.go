// Package client talks to the back-office REST API. Every entity is exposed
// as a Resource that converts between the internal record shape and the
// snake_case wire shape.
package client

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
)

// TokenStore holds the bearer token attached to every request.
type TokenStore interface {
	Token() string
	SetToken(token string) error
	Reset() error
}

// MemoryTokens is a TokenStore that lives for the process only.
type MemoryTokens struct {
	mu    sync.RWMutex
	token string
}

func (m *MemoryTokens) Token() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token
}

func (m *MemoryTokens) SetToken(token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
	return nil
}

func (m *MemoryTokens) Reset() error {
	return m.SetToken("")
}

type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenStore
	logger  *slog.Logger
}

type Option func(*Client)

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

func WithTokenStore(ts TokenStore) Option {
	return func(c *Client) { c.tokens = ts }
}

func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// New returns a client for the API rooted at baseURL, e.g.
// "http://localhost:8080/api/v1".
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    http.DefaultClient,
		tokens:  &MemoryTokens{},
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) Tokens() TokenStore { return c.tokens }

// APIError is returned for every non-2xx response.
type APIError struct {
	Method  string
	Path    string
	Status  int
	Code    string
	Message string
	Details map[string]string
}

func (e *APIError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = http.StatusText(e.Status)
	}
	return fmt.Sprintf("%s %s: %d %s", e.Method, e.Path, e.Status, msg)
}

// IsStatus reports whether err is an APIError with the given status.
func IsStatus(err error, status int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == status
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   *struct {
		Code    string            `json:"code"`
		Message string            `json:"message"`
		Details map[string]string `json:"details,omitempty"`
	} `json:"error,omitempty"`
}

// do sends one request and returns the envelope's data field.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, payload []byte) (json.RawMessage, error) {
	raw, err := c.doRaw(ctx, method, path, query, payload, "application/json")
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, nil
	}
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("decode %s %s response: %w", method, path, err)
	}
	return env.Data, nil
}

func (c *Client) doRaw(ctx context.Context, method, path string, query url.Values, payload []byte, accept string) ([]byte, error) {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", accept)
	req.Header.Set("X-Request-ID", uuid.NewString())
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.tokens.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Error("api request failed", "method", method, "path", path, "error", err)
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s %s response: %w", method, path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{Method: method, Path: path, Status: resp.StatusCode}
		var env envelope
		if json.Unmarshal(raw, &env) == nil && env.Error != nil {
			apiErr.Code = env.Error.Code
			apiErr.Message = env.Error.Message
			apiErr.Details = env.Error.Details
		}
		c.intercept(apiErr)
		return nil, apiErr
	}
	return raw, nil
}

// intercept is the shared reaction to failed calls: a 401 drops the held
// credentials, everything else is logged and handed back to the caller.
func (c *Client) intercept(err *APIError) {
	switch {
	case err.Status == http.StatusUnauthorized:
		if resetErr := c.tokens.Reset(); resetErr != nil {
			c.logger.Error("failed to reset credentials", "error", resetErr)
		}
		c.logger.Warn("session rejected, credentials cleared", "method", err.Method, "path", err.Path)
	case err.Status == http.StatusForbidden:
		c.logger.Warn("access denied", "method", err.Method, "path", err.Path, "message", err.Message)
	case err.Status == http.StatusNotFound:
		c.logger.Warn("resource not found", "method", err.Method, "path", err.Path)
	case err.Status >= 500:
		c.logger.Error("server error", "method", err.Method, "path", err.Path, "status", err.Status, "message", err.Message)
	}
}
