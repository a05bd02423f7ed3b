package wordpress

import (
	"strings"
	"testing"
)

func mustParse(t *testing.T, raw string) Body {
	t.Helper()
	body, err := ParseBody([]byte(raw))
	if err != nil {
		t.Fatalf("ParseBody(%q) failed: %v", raw, err)
	}
	return body
}

func TestClassifyErrorAuth(t *testing.T) {
	err := ClassifyError(401, mustParse(t, `{"code":"rest_not_logged_in","message":"You are not currently logged in."}`), "/posts", nil)
	perm, ok := err.(*PermissionDeniedError)
	if !ok {
		t.Fatalf("401 classified as %T", err)
	}
	if perm.Operation != "authentication required" {
		t.Errorf("Operation = %q", perm.Operation)
	}

	err = ClassifyError(403, mustParse(t, `{"code":"rest_forbidden","message":"Sorry, you are not allowed to do that."}`), "/posts", nil)
	perm, ok = err.(*PermissionDeniedError)
	if !ok {
		t.Fatalf("403 classified as %T", err)
	}
	if perm.Operation != "this operation" {
		t.Errorf("Operation = %q", perm.Operation)
	}
}

func TestClassifyErrorNotFound(t *testing.T) {
	body := mustParse(t, `{"code":"rest_post_invalid_id","message":"Invalid post ID."}`)

	tests := []struct {
		path       string
		kind       ResourceKind
		identifier string
	}{
		{"/posts/42", ResourcePost, "42"},
		{"/pages/7", ResourcePage, "7"},
		{"/media/15", ResourceMedia, "15"},
		{"/comments/9", ResourceComment, "9"},
		{"/posts/42/revisions/3", ResourcePost, "3"},
		{"/posts", ResourcePost, "posts"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			err := ClassifyError(404, body, tt.path, nil)
			nf, ok := err.(*NotFoundError)
			if !ok {
				t.Fatalf("404 on %s classified as %T", tt.path, err)
			}
			if nf.Kind != tt.kind {
				t.Errorf("Kind = %s, want %s", nf.Kind, tt.kind)
			}
			if nf.Identifier != tt.identifier {
				t.Errorf("Identifier = %q, want %q", nf.Identifier, tt.identifier)
			}
		})
	}
}

func TestClassifyErrorNotFoundUnrecognizedPath(t *testing.T) {
	// Categories and tags have no dedicated not-found kind; the API error
	// envelope passes through.
	body := mustParse(t, `{"code":"rest_term_invalid","message":"Term does not exist."}`)
	err := ClassifyError(404, body, "/categories/99", nil)

	apiErr, ok := err.(*APIError)
	if !ok {
		t.Fatalf("404 on /categories classified as %T", err)
	}
	if apiErr.Code != "rest_term_invalid" {
		t.Errorf("Code = %q", apiErr.Code)
	}
}

func TestClassifyErrorRateLimit(t *testing.T) {
	body := mustParse(t, `{"code":"rest_rate_limited","message":"Too many requests.","data":{"retry_after":60}}`)
	err := ClassifyError(429, body, "/posts", nil)

	rl, ok := err.(*RateLimitError)
	if !ok {
		t.Fatalf("429 classified as %T", err)
	}
	if rl.RetryAfter != 60 {
		t.Errorf("RetryAfter = %d, want 60", rl.RetryAfter)
	}
	if !strings.Contains(rl.Error(), "60") {
		t.Errorf("message should surface the advice: %q", rl.Error())
	}
}

func TestClassifyErrorRateLimitNoAdvice(t *testing.T) {
	err := ClassifyError(429, mustParse(t, `{"code":"rest_rate_limited","message":"Too many requests."}`), "/posts", nil)
	rl, ok := err.(*RateLimitError)
	if !ok {
		t.Fatalf("429 classified as %T", err)
	}
	if rl.RetryAfter != 0 {
		t.Errorf("RetryAfter = %d, want 0", rl.RetryAfter)
	}
}

func TestClassifyErrorGeneric(t *testing.T) {
	body := mustParse(t, `{"code":"rest_invalid_param","message":"Invalid parameter: status"}`)
	err := ClassifyError(400, body, "/posts", nil)

	apiErr, ok := err.(*APIError)
	if !ok {
		t.Fatalf("400 classified as %T", err)
	}
	if apiErr.Code != "rest_invalid_param" {
		t.Errorf("Code = %q", apiErr.Code)
	}
	if apiErr.Message != "Invalid parameter: status" {
		t.Errorf("Message = %q", apiErr.Message)
	}
}

func TestClassifyErrorMissingEnvelope(t *testing.T) {
	err := ClassifyError(500, mustParse(t, `[]`), "/posts", nil)
	apiErr, ok := err.(*APIError)
	if !ok {
		t.Fatalf("500 classified as %T", err)
	}
	if apiErr.Code != "unknown_error" || apiErr.Message != "Unknown error" {
		t.Errorf("fallback envelope = [%s] %s", apiErr.Code, apiErr.Message)
	}
}

func TestClassifyErrorRedactsReflectedSecret(t *testing.T) {
	secret := NewSecret("app-pass-xyz")
	body := mustParse(t, `{"code":"auth_failed","message":"invalid credentials: app-pass-xyz"}`)

	err := ClassifyError(400, body, "/posts", secret.Redact)
	apiErr, ok := err.(*APIError)
	if !ok {
		t.Fatalf("classified as %T", err)
	}
	if strings.Contains(apiErr.Message, "app-pass-xyz") {
		t.Errorf("message leaked the credential: %q", apiErr.Message)
	}
	if !strings.Contains(apiErr.Message, "***") {
		t.Errorf("message missing redaction marker: %q", apiErr.Message)
	}
}
