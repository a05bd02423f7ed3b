package comments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/crunchtools/wordpress-mcp-server/internal/wordpress"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &wordpress.Config{
		BaseURL:     server.URL,
		Username:    "admin",
		AppPassword: wordpress.NewSecret("secret"),
	}
	return NewClient(wordpress.NewClient(cfg, wordpress.WithHTTPClient(server.Client())))
}

const sampleComment = `{
	"id": 9,
	"post": 42,
	"parent": 0,
	"author_name": "Alice",
	"content": {"rendered": "<p>Nice post!</p>"},
	"status": "approved",
	"date": "2026-03-01T12:00:00",
	"link": "https://example.com/hello-world/#comment-9"
}`

func TestListDefaultStatusTranslation(t *testing.T) {
	var gotQuery url.Values
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		fmt.Fprint(w, `[]`)
	})

	if _, err := client.List(context.Background(), ListArgs{}); err != nil {
		t.Fatalf("List failed: %v", err)
	}

	// The exposed default "approved" travels as the API's "approve".
	if got := gotQuery.Get("status"); got != "approve" {
		t.Errorf("status = %q, want approve", got)
	}
}

func TestListFilters(t *testing.T) {
	var gotQuery url.Values
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		fmt.Fprintf(w, `[%s]`, sampleComment)
	})

	result, err := client.List(context.Background(), ListArgs{PostID: 42, Status: "hold", Search: "nice"})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}

	if got := gotQuery.Get("post"); got != "42" {
		t.Errorf("post = %q", got)
	}
	if got := gotQuery.Get("status"); got != "hold" {
		t.Errorf("status = %q", got)
	}
	if got := gotQuery.Get("search"); got != "nice" {
		t.Errorf("search = %q", got)
	}
	if len(result.Comments) != 1 || result.Comments[0].PostID != 42 {
		t.Errorf("comments = %+v", result.Comments)
	}
}

func TestListInvalidStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("request should not reach the server")
	})

	_, err := client.List(context.Background(), ListArgs{Status: "pending"})
	var valErr *wordpress.ValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("err = %v, want ValidationError", err)
	}
}

func TestGetComment(t *testing.T) {
	var gotPath string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		fmt.Fprint(w, sampleComment)
	})

	result, err := client.GetComment(context.Background(), 9)
	if err != nil {
		t.Fatalf("GetComment failed: %v", err)
	}

	if gotPath != "/wp-json/wp/v2/comments/9" {
		t.Errorf("path = %q", gotPath)
	}
	if result.Comment.Content != "<p>Nice post!</p>" {
		t.Errorf("Content = %q", result.Comment.Content)
	}
	if result.Comment.AuthorName != "Alice" {
		t.Errorf("AuthorName = %q", result.Comment.AuthorName)
	}
}

func TestCreate(t *testing.T) {
	var gotPayload map[string]any
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		json.Unmarshal(raw, &gotPayload)
		fmt.Fprint(w, sampleComment)
	})

	args := CreateArgs{PostID: 42, Content: "Nice post!", Parent: 3}
	if _, err := client.Create(context.Background(), args); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if gotPayload["post"] != float64(42) {
		t.Errorf("post = %v", gotPayload["post"])
	}
	if gotPayload["content"] != "Nice post!" {
		t.Errorf("content = %v", gotPayload["content"])
	}
	if gotPayload["parent"] != float64(3) {
		t.Errorf("parent = %v", gotPayload["parent"])
	}
	if _, ok := gotPayload["author_name"]; ok {
		t.Error("empty author_name should be omitted")
	}
}

func TestCreateEmptyContent(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("request should not reach the server")
	})

	_, err := client.Create(context.Background(), CreateArgs{PostID: 42, Content: "   "})
	var valErr *wordpress.ValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("err = %v, want ValidationError", err)
	}
}

func TestUpdateStatusTranslation(t *testing.T) {
	var gotPayload map[string]any
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		json.Unmarshal(raw, &gotPayload)
		fmt.Fprint(w, sampleComment)
	})

	if _, err := client.Update(context.Background(), UpdateArgs{CommentID: 9, Status: "approved"}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if gotPayload["status"] != "approve" {
		t.Errorf("status = %v, want approve", gotPayload["status"])
	}
}

func TestUpdateNoFields(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("request should not reach the server")
	})

	_, err := client.Update(context.Background(), UpdateArgs{CommentID: 9})
	var valErr *wordpress.ValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("err = %v, want ValidationError", err)
	}
}

func TestDeleteComment(t *testing.T) {
	tests := []struct {
		name      string
		force     bool
		wantForce string
		wantMsg   string
	}{
		{"trash", false, "", "Comment 9 moved to trash"},
		{"permanent", true, "true", "Comment 9 permanently deleted"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotForce string
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				gotForce = r.URL.Query().Get("force")
				fmt.Fprint(w, `{"deleted":true}`)
			})

			result, err := client.DeleteComment(context.Background(), 9, tt.force)
			if err != nil {
				t.Fatalf("DeleteComment failed: %v", err)
			}
			if gotForce != tt.wantForce {
				t.Errorf("force = %q, want %q", gotForce, tt.wantForce)
			}
			if result.Message != tt.wantMsg {
				t.Errorf("message = %q", result.Message)
			}
		})
	}
}

func TestModerate(t *testing.T) {
	tests := []struct {
		action      string
		wantPayload string
		wantStatus  string
	}{
		{"approve", "approve", "approved"},
		{"hold", "hold", "hold"},
		{"spam", "spam", "spam"},
		{"trash", "trash", "trash"},
	}

	for _, tt := range tests {
		t.Run(tt.action, func(t *testing.T) {
			var gotPayload map[string]any
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				raw, _ := io.ReadAll(r.Body)
				json.Unmarshal(raw, &gotPayload)
				fmt.Fprintf(w, `{"id":9,"status":%q}`, tt.wantStatus)
			})

			result, err := client.Moderate(context.Background(), ModerateArgs{CommentID: 9, Action: tt.action})
			if err != nil {
				t.Fatalf("Moderate failed: %v", err)
			}
			if gotPayload["status"] != tt.wantPayload {
				t.Errorf("payload status = %v, want %q", gotPayload["status"], tt.wantPayload)
			}
			if result.Status != tt.wantStatus {
				t.Errorf("result status = %q, want %q", result.Status, tt.wantStatus)
			}
		})
	}
}

func TestModerateInvalidAction(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("request should not reach the server")
	})

	_, err := client.Moderate(context.Background(), ModerateArgs{CommentID: 9, Action: "yeet"})
	var valErr *wordpress.ValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("err = %v, want ValidationError", err)
	}
}
