package posts

import (
	"fmt"
	"sort"
	"strings"

	"github.com/crunchtools/wordpress-mcp-server/internal/wordpress"
)

// validStatuses are the WordPress post statuses accepted by the REST API.
var validStatuses = map[string]bool{
	"publish": true,
	"future":  true,
	"draft":   true,
	"pending": true,
	"private": true,
}

// validFormats are the WordPress post formats.
var validFormats = map[string]bool{
	"standard": true,
	"aside":    true,
	"chat":     true,
	"gallery":  true,
	"link":     true,
	"image":    true,
	"quote":    true,
	"status":   true,
	"video":    true,
	"audio":    true,
}

// ValidateStatus checks a post status value. Empty is allowed (no filter or
// server default).
func ValidateStatus(status string) error {
	if status == "" || validStatuses[status] {
		return nil
	}
	return &wordpress.ValidationError{
		Message: fmt.Sprintf("invalid post status %q. Allowed: %s", status, sortedKeys(validStatuses)),
	}
}

// ValidateFormat checks and normalizes a post format value.
func ValidateFormat(format string) (string, error) {
	if format == "" {
		return "", nil
	}
	normalized := strings.ToLower(format)
	if !validFormats[normalized] {
		return "", &wordpress.ValidationError{
			Message: fmt.Sprintf("invalid post format %q. Allowed: %s", format, sortedKeys(validFormats)),
		}
	}
	return normalized, nil
}

func sortedKeys(set map[string]bool) string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return strings.Join(keys, ", ")
}
