package wordpress

import "strings"

// classified resource path segments, in match order. Categories, tags and
// settings deliberately have no dedicated not-found kind; unrecognized paths
// fall through to the generic APIError.
var pathKinds = []struct {
	segment string
	kind    ResourceKind
}{
	{"/posts", ResourcePost},
	{"/pages", ResourcePage},
	{"/media", ResourceMedia},
	{"/comments", ResourceComment},
}

// ClassifyError maps a non-success response to a taxonomy error. Pure: it
// inspects only the status code, the parsed body and the request path, and
// never issues further requests. redact sanitizes any server-reflected text.
func ClassifyError(status int, body Body, path string, redact func(string) string) error {
	if redact == nil {
		redact = func(s string) string { return s }
	}

	// WordPress error envelope: {"code": "...", "message": "...", "data": {...}}
	code := "unknown_error"
	message := "Unknown error"
	if obj, ok := body.AsObject(); ok {
		if c, ok := obj["code"].(string); ok && c != "" {
			code = c
		}
		if m, ok := obj["message"].(string); ok && m != "" {
			message = m
		}
	}

	switch status {
	case 401:
		return &PermissionDeniedError{Operation: "authentication required"}
	case 403:
		return &PermissionDeniedError{Operation: "this operation"}
	case 404:
		for _, pk := range pathKinds {
			if strings.Contains(path, pk.segment+"/") || strings.HasSuffix(path, pk.segment) {
				return &NotFoundError{Kind: pk.kind, Identifier: trailingSegment(path)}
			}
		}
		return &APIError{Code: redact(code), Message: redact(message)}
	case 429:
		retryAfter := 0
		if obj, ok := body.AsObject(); ok {
			if data, ok := obj["data"].(map[string]any); ok {
				if ra, ok := data["retry_after"].(float64); ok {
					retryAfter = int(ra)
				}
			}
		}
		return &RateLimitError{RetryAfter: retryAfter}
	}

	return &APIError{Code: redact(code), Message: redact(message)}
}

// trailingSegment returns the last path segment, used as the identifier in
// not-found errors.
func trailingSegment(path string) string {
	path = strings.TrimSuffix(path, "/")
	if i := strings.LastIndex(path, "/"); i >= 0 {
		return path[i+1:]
	}
	return path
}
