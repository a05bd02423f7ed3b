// Package site exposes site-level information and a connection self-test.
package site

import (
	"context"
	"fmt"
	"net/url"
	"sort"

	"github.com/crunchtools/wordpress-mcp-server/internal/wordpress"
)

// Client provides site-level operations.
type Client struct {
	api *wordpress.Client
}

// NewClient creates a site client on top of the shared API client.
func NewClient(api *wordpress.Client) *Client {
	return &Client{api: api}
}

// InfoArgs is empty; site info takes no parameters.
type InfoArgs struct{}

// InfoResult is the site information summary. When the settings endpoint is
// not accessible to the current user, only URL and Source are populated.
type InfoResult struct {
	URL         string `json:"url"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Language    string `json:"language,omitempty"`
	Timezone    string `json:"timezone,omitempty"`
	// Source records whether the data came from the settings endpoint or
	// only from local configuration.
	Source string `json:"source"`
}

// TestArgs is empty; the connection test takes no parameters.
type TestArgs struct{}

// TestResult reports the outcome of an authenticated round-trip.
type TestResult struct {
	Connected    bool     `json:"connected"`
	URL          string   `json:"url"`
	Username     string   `json:"username"`
	UserID       int      `json:"user_id,omitempty"`
	DisplayName  string   `json:"display_name,omitempty"`
	Roles        []string `json:"roles,omitempty"`
	Capabilities []string `json:"capabilities,omitempty"`
	Message      string   `json:"message"`
}

// capabilitySample is the subset of capabilities worth reporting; the full
// map on an administrator runs to dozens of entries.
var capabilitySample = []string{
	"edit_posts",
	"edit_pages",
	"publish_posts",
	"upload_files",
	"moderate_comments",
	"manage_options",
}

// Info returns site settings when the authenticated user may read them,
// falling back to the configured URL otherwise. The settings endpoint is
// admin-only, so a permission error here is expected for lesser roles and
// is not surfaced as a failure.
func (c *Client) Info(ctx context.Context) (*InfoResult, error) {
	cfg := c.api.Config()

	body, err := c.api.Get(ctx, "/settings", nil)
	if err != nil {
		if wordpress.IsPermissionDenied(err) {
			return &InfoResult{URL: cfg.BaseURL, Source: "configuration"}, nil
		}
		return nil, err
	}

	obj, ok := body.AsObject()
	if !ok {
		return nil, &wordpress.APIError{Code: "unexpected_response", Message: "Expected a settings object"}
	}

	return &InfoResult{
		URL:         orDefault(wordpress.Str(obj, "url"), cfg.BaseURL),
		Title:       wordpress.Str(obj, "title"),
		Description: wordpress.Str(obj, "description"),
		Language:    wordpress.Str(obj, "language"),
		Timezone:    wordpress.Str(obj, "timezone_string"),
		Source:      "settings",
	}, nil
}

// TestConnection performs an authenticated request against the current-user
// endpoint and reports the resolved identity. A classification error passes
// through unchanged so the caller sees the precise failure mode.
func (c *Client) TestConnection(ctx context.Context) (*TestResult, error) {
	cfg := c.api.Config()

	query := url.Values{}
	query.Set("context", "edit")
	body, err := c.api.Get(ctx, "/users/me", query)
	if err != nil {
		return nil, err
	}

	obj, ok := body.AsObject()
	if !ok {
		return nil, &wordpress.APIError{Code: "unexpected_response", Message: "Expected a user object"}
	}

	result := &TestResult{
		Connected:   true,
		URL:         cfg.BaseURL,
		Username:    cfg.Username,
		UserID:      wordpress.Int(obj, "id"),
		DisplayName: wordpress.Str(obj, "name"),
		Roles:       stringSlice(obj, "roles"),
	}
	result.Capabilities = grantedCapabilities(wordpress.Object(obj, "capabilities"))
	result.Message = fmt.Sprintf("Connected to %s as %s", cfg.BaseURL, result.DisplayName)
	return result, nil
}

// grantedCapabilities filters the user's capability map down to the sample
// set, keeping only granted entries.
func grantedCapabilities(caps map[string]any) []string {
	if caps == nil {
		return nil
	}
	var granted []string
	for _, name := range capabilitySample {
		if v, ok := caps[name].(bool); ok && v {
			granted = append(granted, name)
		}
	}
	sort.Strings(granted)
	return granted
}

func stringSlice(obj map[string]any, key string) []string {
	arr, ok := obj[key].([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(arr))
	for _, v := range arr {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
