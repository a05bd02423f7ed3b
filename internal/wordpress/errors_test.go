package wordpress

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			"invalid post id",
			&InvalidIDError{Kind: ResourcePost},
			"Invalid post_id format. Expected positive integer.",
		},
		{
			"invalid comment id",
			&InvalidIDError{Kind: ResourceComment},
			"Invalid comment_id format. Expected positive integer.",
		},
		{
			"post not found",
			&NotFoundError{Kind: ResourcePost, Identifier: "42"},
			"Post not found or not accessible: 42",
		},
		{
			"media not found",
			&NotFoundError{Kind: ResourceMedia, Identifier: "15"},
			"Media item not found or not accessible: 15",
		},
		{
			"permission denied",
			&PermissionDeniedError{Operation: "this operation"},
			"Permission denied for this operation.",
		},
		{
			"rate limit with advice",
			&RateLimitError{RetryAfter: 60},
			"Rate limit exceeded. Retry after 60 seconds.",
		},
		{
			"rate limit without advice",
			&RateLimitError{},
			"Rate limit exceeded.",
		},
		{
			"api error",
			&APIError{Code: "rest_invalid_param", Message: "Invalid parameter: status"},
			"WordPress API error [rest_invalid_param]: Invalid parameter: status",
		},
		{
			"configuration error",
			&ConfigurationError{Message: "WORDPRESS_URL environment variable required. Example: https://example.com"},
			"configuration error: WORDPRESS_URL environment variable required. Example: https://example.com",
		},
		{
			"validation error",
			&ValidationError{Message: "File is empty: /tmp/x"},
			"validation error: File is empty: /tmp/x",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIsNotFound(t *testing.T) {
	err := &NotFoundError{Kind: ResourcePage, Identifier: "7"}

	if !IsNotFound(err, ResourcePage) {
		t.Error("IsNotFound should match the page kind")
	}
	if IsNotFound(err, ResourcePost) {
		t.Error("IsNotFound should not match a different kind")
	}

	wrapped := fmt.Errorf("wordpress_get_page failed: %w", err)
	if !IsNotFound(wrapped, ResourcePage) {
		t.Error("IsNotFound should see through wrapping")
	}

	if IsNotFound(errors.New("plain"), ResourcePage) {
		t.Error("IsNotFound should reject unrelated errors")
	}
}

func TestIsPermissionDenied(t *testing.T) {
	err := &PermissionDeniedError{Operation: "this operation"}
	if !IsPermissionDenied(err) {
		t.Error("IsPermissionDenied should match")
	}
	wrapped := fmt.Errorf("tool failed: %w", err)
	if !IsPermissionDenied(wrapped) {
		t.Error("IsPermissionDenied should see through wrapping")
	}
	if IsPermissionDenied(&RateLimitError{}) {
		t.Error("IsPermissionDenied should reject other taxonomy errors")
	}
}
