package wordpress

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/crunchtools/wordpress-mcp-server/metrics"
)

const (
	// DefaultTimeout bounds connection setup and the full round-trip.
	DefaultTimeout = 30 * time.Second

	// MaxResponseSize caps response bodies to prevent memory exhaustion
	// from a malicious or misbehaving server (10 MiB).
	MaxResponseSize = 10 * 1024 * 1024
)

// Client is the single chokepoint for outbound WordPress REST API requests.
// Every request is built relative to the fixed API base URL, signed with the
// current credential, and bounded by the timeout and response-size ceilings.
// Safe for concurrent use; it holds no per-call mutable state.
type Client struct {
	config     *Config
	httpClient *http.Client
	logger     *slog.Logger
}

// ClientOption configures the Client.
type ClientOption func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) ClientOption {
	return func(c *Client) {
		c.logger = l
	}
}

// NewClient creates a WordPress API client bound to the configured site.
func NewClient(cfg *Config, opts ...ClientOption) *Client {
	c := &Client{
		config:     cfg,
		httpClient: newHTTPClient(DefaultTimeout),
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Close releases idle transport connections.
func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}

// Config returns the client's configuration.
func (c *Client) Config() *Config {
	return c.config
}

// Request describes one API call. Path is always interpreted relative to the
// fixed API base URL; fully-qualified URLs are impossible by construction.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	JSON   any               // JSON body for create/update
	Form   map[string]string // multipart form fields, used with File
	File   *FilePayload      // multipart file part
}

// Execute performs an API request and returns the parsed body. Failures are
// always one of the taxonomy errors.
func (c *Client) Execute(ctx context.Context, req Request) (Body, error) {
	start := time.Now()
	body, err := c.execute(ctx, req)
	metrics.RecordAPICall(resourceSegment(req.Path), req.Method, time.Since(start).Seconds(), err == nil, errorCode(err))
	return body, err
}

func (c *Client) execute(ctx context.Context, req Request) (Body, error) {
	httpReq, err := c.buildRequest(ctx, req)
	if err != nil {
		return Body{}, err
	}

	c.logger.Debug("API request", "method", req.Method, "path", req.Path)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		redact := c.config.AppPassword.Redact
		if isTimeout(err) {
			return Body{}, &APIError{Code: "timeout", Message: redact(fmt.Sprintf("Request timeout: %v", err))}
		}
		return Body{}, &APIError{Code: "request_failed", Message: redact(fmt.Sprintf("Request failed: %v", err))}
	}
	defer resp.Body.Close()

	// Reject oversized responses before reading the body.
	if resp.ContentLength > MaxResponseSize {
		return Body{}, &APIError{Code: "response_too_large", Message: "Response too large"}
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, MaxResponseSize+1))
	if err != nil {
		return Body{}, &APIError{Code: "request_failed", Message: "Failed to read response"}
	}
	if len(raw) > MaxResponseSize {
		return Body{}, &APIError{Code: "response_too_large", Message: "Response too large"}
	}

	body, err := ParseBody(raw)
	if err != nil {
		return Body{}, &APIError{Code: "invalid_json", Message: fmt.Sprintf("Invalid JSON response: %v", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Body{}, ClassifyError(resp.StatusCode, body, req.Path, c.config.AppPassword.Redact)
	}

	return body, nil
}

// buildRequest assembles the outbound http.Request: URL relative to the API
// base, body encoding, and headers. The Authorization header is recomputed
// from the current credential on every request so a rotation takes effect on
// the next call.
func (c *Client) buildRequest(ctx context.Context, req Request) (*http.Request, error) {
	reqURL := c.config.APIBaseURL() + req.Path
	if len(req.Query) > 0 {
		reqURL += "?" + req.Query.Encode()
	}

	var bodyReader io.Reader
	contentType := "application/json"

	switch {
	case req.File != nil:
		var buf bytes.Buffer
		w := multipart.NewWriter(&buf)
		for key, val := range req.Form {
			if err := w.WriteField(key, val); err != nil {
				return nil, &APIError{Code: "request_failed", Message: "Failed to encode upload form"}
			}
		}
		part, err := createFilePart(w, req.File)
		if err != nil {
			return nil, &APIError{Code: "request_failed", Message: "Failed to encode upload form"}
		}
		if _, err := part.Write(req.File.Data); err != nil {
			return nil, &APIError{Code: "request_failed", Message: "Failed to encode upload form"}
		}
		if err := w.Close(); err != nil {
			return nil, &APIError{Code: "request_failed", Message: "Failed to encode upload form"}
		}
		bodyReader = &buf
		// The multipart writer owns the boundary, so the default JSON
		// content type is dropped.
		contentType = w.FormDataContentType()

	case req.JSON != nil:
		encoded, err := json.Marshal(req.JSON)
		if err != nil {
			return nil, &APIError{Code: "request_failed", Message: "Failed to encode request body"}
		}
		bodyReader = bytes.NewReader(encoded)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, reqURL, bodyReader)
	if err != nil {
		return nil, &APIError{Code: "request_failed", Message: "Failed to create request"}
	}

	httpReq.Header.Set("Authorization", c.authHeader())
	httpReq.Header.Set("Content-Type", contentType)
	return httpReq, nil
}

// authHeader computes the Basic auth header from the current credential.
// The credential travels only in this header, never in the URL.
func (c *Client) authHeader() string {
	credentials := c.config.Username + ":" + c.config.AppPassword.Reveal()
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(credentials))
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (Body, error) {
	return c.Execute(ctx, Request{Method: http.MethodGet, Path: path, Query: query})
}

// Post performs a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, jsonBody any) (Body, error) {
	return c.Execute(ctx, Request{Method: http.MethodPost, Path: path, JSON: jsonBody})
}

// Patch performs a PATCH request with a JSON body.
func (c *Client) Patch(ctx context.Context, path string, jsonBody any) (Body, error) {
	return c.Execute(ctx, Request{Method: http.MethodPatch, Path: path, JSON: jsonBody})
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, path string, query url.Values) (Body, error) {
	return c.Execute(ctx, Request{Method: http.MethodDelete, Path: path, Query: query})
}

// Upload performs a multipart POST with form fields and one file part.
func (c *Client) Upload(ctx context.Context, path string, form map[string]string, file *FilePayload) (Body, error) {
	return c.Execute(ctx, Request{Method: http.MethodPost, Path: path, Form: form, File: file})
}

// resourceSegment returns the leading path segment for metric labels.
func resourceSegment(path string) string {
	trimmed := strings.TrimPrefix(path, "/")
	if i := strings.IndexByte(trimmed, '/'); i >= 0 {
		trimmed = trimmed[:i]
	}
	if trimmed == "" {
		return "unknown"
	}
	return trimmed
}

// errorCode maps a taxonomy error to a stable metric label.
func errorCode(err error) string {
	if err == nil {
		return ""
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Code
	}
	var notFound *NotFoundError
	if errors.As(err, &notFound) {
		return "not_found"
	}
	var permErr *PermissionDeniedError
	if errors.As(err, &permErr) {
		return "permission_denied"
	}
	var rateErr *RateLimitError
	if errors.As(err, &rateErr) {
		return "rate_limited"
	}
	return "error"
}

// isTimeout distinguishes deadline expiry from other transport failures.
func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var urlErr *url.Error
	return errors.As(err, &urlErr) && urlErr.Timeout()
}

// newHTTPClient creates an HTTP client with pooled transport settings.
// TLS certificate validation is always enabled and not configurable.
func newHTTPClient(timeout time.Duration) *http.Client {
	transport := &http.Transport{
		MaxIdleConns:          100,
		MaxIdleConnsPerHost:   20,
		IdleConnTimeout:       120 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ResponseHeaderTimeout: timeout,
		ForceAttemptHTTP2:     true,
	}
	return &http.Client{
		Timeout:   timeout,
		Transport: transport,
	}
}
