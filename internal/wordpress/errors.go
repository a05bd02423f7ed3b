// Package wordpress provides the secure WordPress REST API client shared by
// all resource operations: configuration and credential handling, request
// lifecycle, response-size defense, upload validation, and the closed error
// taxonomy surfaced to MCP clients.
package wordpress

import (
	"errors"
	"fmt"
)

// ResourceKind identifies one of the content entities the server manages.
type ResourceKind string

const (
	ResourcePost    ResourceKind = "post"
	ResourcePage    ResourceKind = "page"
	ResourceMedia   ResourceKind = "media"
	ResourceComment ResourceKind = "comment"
)

// label returns the resource kind as it reads in user-facing messages.
func (k ResourceKind) label() string {
	switch k {
	case ResourcePost:
		return "Post"
	case ResourcePage:
		return "Page"
	case ResourceMedia:
		return "Media item"
	case ResourceComment:
		return "Comment"
	}
	return "Resource"
}

// idField returns the tool argument name for this kind's identifier.
func (k ResourceKind) idField() string {
	return string(k) + "_id"
}

// ConfigurationError indicates a missing or invalid setting at startup.
// Configuration failures are fatal; the server must not serve tool calls
// with an incomplete configuration.
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return "configuration error: " + e.Message
}

// ValidationError indicates malformed tool input.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return "validation error: " + e.Message
}

// InvalidIDError indicates a non-positive integer ID for a resource kind.
// The message is fixed per kind and names the offending field.
type InvalidIDError struct {
	Kind ResourceKind
}

func (e *InvalidIDError) Error() string {
	return fmt.Sprintf("Invalid %s format. Expected positive integer.", e.Kind.idField())
}

// NotFoundError indicates an HTTP 404 on a path recognizable as a resource
// kind. Identifier is the trailing path segment of the failed request.
type NotFoundError struct {
	Kind       ResourceKind
	Identifier string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found or not accessible: %s", e.Kind.label(), e.Identifier)
}

// PermissionDeniedError indicates HTTP 401 or 403.
type PermissionDeniedError struct {
	Operation string
}

func (e *PermissionDeniedError) Error() string {
	return fmt.Sprintf("Permission denied for %s.", e.Operation)
}

// RateLimitError indicates HTTP 429. RetryAfter is the server's advisory wait
// in seconds, zero when the server supplied none. The client never retries on
// its own; the caller decides what to do with the advice.
type RateLimitError struct {
	RetryAfter int
}

func (e *RateLimitError) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("Rate limit exceeded. Retry after %d seconds.", e.RetryAfter)
	}
	return "Rate limit exceeded."
}

// APIError is the generic shape for transport failures, oversized or
// malformed responses, and unclassified non-success statuses. Message must be
// sanitized through Secret.Redact before construction whenever it may carry
// server-reflected text.
type APIError struct {
	Code    string
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("WordPress API error [%s]: %s", e.Code, e.Message)
}

// IsNotFound reports whether err is a NotFoundError for the given kind.
func IsNotFound(err error, kind ResourceKind) bool {
	var nf *NotFoundError
	return errors.As(err, &nf) && nf.Kind == kind
}

// IsPermissionDenied reports whether err is a PermissionDeniedError.
func IsPermissionDenied(err error) bool {
	var pd *PermissionDeniedError
	return errors.As(err, &pd)
}
