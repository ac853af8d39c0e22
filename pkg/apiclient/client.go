package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"

	"github.com/google/uuid"
)

const apiPrefix = "/api/v1"

// maxErrorBody caps how much of an error response is read while probing it
// for a detail message or an HTML page.
const maxErrorBody = 64 << 10

// Client talks to the platform API. It is safe for concurrent use; the
// cached bearer token is shared across all requests made through it.
type Client struct {
	baseURL  string
	mediaURL string
	http     *http.Client
	logger   *slog.Logger

	mu    sync.RWMutex
	token string
}

// Option configures the client during construction.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client, e.g. to inject a
// recording transport in tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithLogger sets the diagnostics logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New creates a client for the API at cfg.BaseURL.
func New(cfg Config, opts ...Option) *Client {
	c := &Client{
		baseURL:  strings.TrimRight(cfg.BaseURL, "/"),
		mediaURL: strings.TrimRight(cfg.MediaBaseURL, "/"),
		http:     &http.Client{Timeout: cfg.RequestTimeout},
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	if c.mediaURL == "" {
		c.mediaURL = c.baseURL
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetToken caches the bearer token attached to subsequent requests.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

// ClearToken discards the cached bearer token.
func (c *Client) ClearToken() {
	c.SetToken("")
}

// Token returns the cached bearer token, if any.
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// MediaURL resolves a media path returned by the API against the media
// origin. Absolute URLs pass through unchanged; empty input stays empty.
func (c *Client) MediaURL(path string) string {
	if path == "" {
		return ""
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return c.mediaURL + path
}

// do performs a JSON round-trip against the API. A nil out discards the
// response body after the status check.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := c.newRequest(ctx, method, path, reqBody)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.errorFromResponse(resp)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	return decodeJSON(resp.Body, out)
}

// decodeJSON decodes a success body, folding HTML-where-JSON-was-expected
// into the error taxonomy instead of leaking a raw decode error.
func decodeJSON(r io.Reader, out any) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		if looksLikeHTML(data) {
			return fmt.Errorf("%w: server returned an HTML page where JSON was expected; check that the backend is running and reachable", ErrHTMLResponse)
		}
		return errors.Join(ErrInvalidResponse, err)
	}
	return nil
}

// newRequest builds an API request with the bearer token and a request id
// attached. The path is relative to the /api/v1 prefix.
func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+apiPrefix+path, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if token := c.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req, nil
}

// errorFromResponse normalizes a non-2xx response. The backend reports
// failures as {"detail": "..."}; anything else (most commonly an HTML error
// page) is folded into the taxonomy rather than surfaced as a parse error.
func (c *Client) errorFromResponse(resp *http.Response) error {
	data, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	if looksLikeHTML(data) {
		c.logger.Warn("api returned html error page",
			slog.Int("status", resp.StatusCode),
			slog.String("url", resp.Request.URL.String()),
		)
		return fmt.Errorf("%w: server returned an HTML page (status %d); check that the backend is running and reachable", ErrHTMLResponse, resp.StatusCode)
	}

	apiErr := &APIError{Status: resp.StatusCode}
	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(data, &payload); err == nil {
		apiErr.Detail = payload.Detail
	}
	return apiErr
}

func looksLikeHTML(body []byte) bool {
	probe := strings.ToLower(string(bytes.TrimSpace(body)))
	return strings.HasPrefix(probe, "<!doctype") || strings.HasPrefix(probe, "<html")
}
