package posts

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

const samplePost = `{
	"id": 42,
	"title": {"rendered": "Hello World"},
	"slug": "hello-world",
	"status": "publish",
	"date": "2026-01-15T10:00:00",
	"modified": "2026-01-16T09:30:00",
	"link": "https://example.com/hello-world",
	"author": 3,
	"excerpt": {"rendered": "<p>Intro</p>"},
	"content": {"rendered": "<p>Body</p>"},
	"categories": [1, 5],
	"tags": [9],
	"featured_media": 7,
	"format": "standard",
	"_embedded": {"author": [{"id": 3, "name": "Alice"}]}
}`

func TestListQueryDefaults(t *testing.T) {
	var gotQuery url.Values
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		fmt.Fprint(w, `[]`)
	})

	if _, err := client.List(context.Background(), ListArgs{}); err != nil {
		t.Fatalf("List failed: %v", err)
	}

	want := map[string]string{
		"page":     "1",
		"per_page": "10",
		"orderby":  "date",
		"order":    "desc",
		"_embed":   "true",
	}
	for key, val := range want {
		if got := gotQuery.Get(key); got != val {
			t.Errorf("%s = %q, want %q", key, got, val)
		}
	}
	if gotQuery.Has("status") || gotQuery.Has("search") {
		t.Errorf("unexpected filter params in %v", gotQuery)
	}
}

func TestListFilters(t *testing.T) {
	var gotQuery url.Values
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		fmt.Fprint(w, `[]`)
	})

	args := ListArgs{
		Status:     "draft",
		Search:     "golang",
		Categories: []int{1, 5},
		Tags:       []int{9},
		PerPage:    150,
	}
	result, err := client.List(context.Background(), args)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}

	if got := gotQuery.Get("per_page"); got != "100" {
		t.Errorf("per_page = %q, want clamped 100", got)
	}
	if got := gotQuery.Get("status"); got != "draft" {
		t.Errorf("status = %q", got)
	}
	if got := gotQuery.Get("search"); got != "golang" {
		t.Errorf("search = %q", got)
	}
	if got := gotQuery.Get("categories"); got != "1,5" {
		t.Errorf("categories = %q", got)
	}
	if got := gotQuery.Get("tags"); got != "9" {
		t.Errorf("tags = %q", got)
	}
	if result.PerPage != 100 {
		t.Errorf("result.PerPage = %d, want 100", result.PerPage)
	}
}

func TestListInvalidStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("request should not reach the server")
	})

	_, err := client.List(context.Background(), ListArgs{Status: "bogus"})
	var valErr *wordpress.ValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("err = %v, want ValidationError", err)
	}
}

func TestListFlattensPosts(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `[%s]`, samplePost)
	})

	result, err := client.List(context.Background(), ListArgs{})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(result.Posts) != 1 {
		t.Fatalf("got %d posts", len(result.Posts))
	}

	post := result.Posts[0]
	if post.ID != 42 {
		t.Errorf("ID = %d", post.ID)
	}
	if post.Title != "Hello World" {
		t.Errorf("Title = %q", post.Title)
	}
	if post.AuthorName != "Alice" {
		t.Errorf("AuthorName = %q", post.AuthorName)
	}
	if post.Excerpt != "<p>Intro</p>" {
		t.Errorf("Excerpt = %q", post.Excerpt)
	}
	// Listings omit full content.
	if post.Content != "" {
		t.Errorf("Content = %q, want empty in listings", post.Content)
	}
}

func TestGetPost(t *testing.T) {
	var gotPath string
	var gotQuery url.Values
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		fmt.Fprint(w, samplePost)
	})

	result, err := client.GetPost(context.Background(), GetArgs{PostID: 42})
	if err != nil {
		t.Fatalf("GetPost failed: %v", err)
	}

	if gotPath != "/wp-json/wp/v2/posts/42" {
		t.Errorf("path = %q", gotPath)
	}
	if gotQuery.Get("_embed") != "true" {
		t.Errorf("_embed = %q", gotQuery.Get("_embed"))
	}
	if result.Post.Content != "<p>Body</p>" {
		t.Errorf("Content = %q", result.Post.Content)
	}
}

func TestGetPostInvalidID(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("request should not reach the server")
	})

	_, err := client.GetPost(context.Background(), GetArgs{PostID: 0})
	var idErr *wordpress.InvalidIDError
	if !errors.As(err, &idErr) || idErr.Kind != wordpress.ResourcePost {
		t.Fatalf("err = %v, want InvalidIDError for post", err)
	}
}

func TestSearchMapsKeyword(t *testing.T) {
	var gotQuery url.Values
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		fmt.Fprint(w, `[]`)
	})

	if _, err := client.Search(context.Background(), SearchArgs{Keyword: "kubernetes"}); err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if got := gotQuery.Get("search"); got != "kubernetes" {
		t.Errorf("search = %q", got)
	}
}

func TestCreateDefaultsToDraft(t *testing.T) {
	var gotPayload map[string]any
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		if err := json.Unmarshal(raw, &gotPayload); err != nil {
			t.Errorf("bad payload: %v", err)
		}
		fmt.Fprint(w, samplePost)
	})

	args := CreateArgs{Title: "New Post", Content: "<p>Text</p>"}
	if _, err := client.Create(context.Background(), args); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if gotPayload["status"] != "draft" {
		t.Errorf("status = %v, want draft", gotPayload["status"])
	}
	if gotPayload["title"] != "New Post" {
		t.Errorf("title = %v", gotPayload["title"])
	}
	if _, ok := gotPayload["excerpt"]; ok {
		t.Error("empty excerpt should be omitted")
	}
}

func TestCreateNormalizesFormat(t *testing.T) {
	var gotPayload map[string]any
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		json.Unmarshal(raw, &gotPayload)
		fmt.Fprint(w, samplePost)
	})

	args := CreateArgs{Title: "T", Content: "C", Format: "Quote"}
	if _, err := client.Create(context.Background(), args); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if gotPayload["format"] != "quote" {
		t.Errorf("format = %v, want quote", gotPayload["format"])
	}
}

func TestCreateInvalidStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("request should not reach the server")
	})

	_, err := client.Create(context.Background(), CreateArgs{Title: "T", Content: "C", Status: "published"})
	var valErr *wordpress.ValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("err = %v, want ValidationError", err)
	}
}

func TestUpdateSendsOnlySetFields(t *testing.T) {
	var gotPayload map[string]any
	var gotMethod string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		raw, _ := io.ReadAll(r.Body)
		json.Unmarshal(raw, &gotPayload)
		fmt.Fprint(w, samplePost)
	})

	title := "Renamed"
	if _, err := client.Update(context.Background(), UpdateArgs{PostID: 42, Title: &title}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	if gotMethod != http.MethodPatch {
		t.Errorf("method = %q", gotMethod)
	}
	if len(gotPayload) != 1 || gotPayload["title"] != "Renamed" {
		t.Errorf("payload = %v, want only title", gotPayload)
	}
}

func TestUpdateNoFields(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("request should not reach the server")
	})

	_, err := client.Update(context.Background(), UpdateArgs{PostID: 42})
	var valErr *wordpress.ValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("err = %v, want ValidationError", err)
	}
}

func TestDeletePost(t *testing.T) {
	tests := []struct {
		name      string
		force     bool
		wantQuery string
		wantMsg   string
	}{
		{"trash", false, "false", "Post moved to trash"},
		{"permanent", true, "true", "Post permanently deleted"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotForce string
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				gotForce = r.URL.Query().Get("force")
				fmt.Fprint(w, `{"deleted":true}`)
			})

			result, err := client.DeletePost(context.Background(), DeleteArgs{PostID: 42, Force: tt.force})
			if err != nil {
				t.Fatalf("DeletePost failed: %v", err)
			}
			if gotForce != tt.wantQuery {
				t.Errorf("force = %q, want %q", gotForce, tt.wantQuery)
			}
			if !result.Success || result.Message != tt.wantMsg {
				t.Errorf("result = %+v", result)
			}
		})
	}
}

func TestListRevisions(t *testing.T) {
	var gotPath string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		fmt.Fprint(w, `[{"id":101,"author":3,"date":"2026-01-15","modified":"2026-01-16","title":{"rendered":"Rev 1"}}]`)
	})

	result, err := client.ListRevisions(context.Background(), ListRevisionsArgs{PostID: 42})
	if err != nil {
		t.Fatalf("ListRevisions failed: %v", err)
	}

	if gotPath != "/wp-json/wp/v2/posts/42/revisions" {
		t.Errorf("path = %q", gotPath)
	}
	if len(result.Revisions) != 1 || result.Revisions[0].Title != "Rev 1" {
		t.Errorf("revisions = %+v", result.Revisions)
	}
	if result.PostID != 42 {
		t.Errorf("PostID = %d", result.PostID)
	}
}

func TestGetRevision(t *testing.T) {
	var gotPath string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		fmt.Fprint(w, `{"id":101,"author":3,"date":"2026-01-15","title":{"rendered":"Rev 1"},"content":{"rendered":"old body"},"excerpt":{"rendered":"old intro"}}`)
	})

	result, err := client.GetRevision(context.Background(), GetRevisionArgs{PostID: 42, RevisionID: 101})
	if err != nil {
		t.Fatalf("GetRevision failed: %v", err)
	}

	if gotPath != "/wp-json/wp/v2/posts/42/revisions/101" {
		t.Errorf("path = %q", gotPath)
	}
	if result.Revision.Content != "old body" {
		t.Errorf("Content = %q", result.Revision.Content)
	}
}

func TestListCategories(t *testing.T) {
	var gotQuery url.Values
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		fmt.Fprint(w, `[{"id":1,"name":"News","slug":"news","description":"","count":12,"parent":0}]`)
	})

	result, err := client.ListCategories(context.Background(), ListCategoriesArgs{})
	if err != nil {
		t.Fatalf("ListCategories failed: %v", err)
	}

	// Term listings default to the API maximum page size.
	if got := gotQuery.Get("per_page"); got != "100" {
		t.Errorf("per_page = %q, want 100", got)
	}
	if len(result.Categories) != 1 || result.Categories[0].Name != "News" {
		t.Errorf("categories = %+v", result.Categories)
	}
}

func TestListTags(t *testing.T) {
	var gotQuery url.Values
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		fmt.Fprint(w, `[{"id":9,"name":"go","slug":"go","description":"","count":4}]`)
	})

	result, err := client.ListTags(context.Background(), ListTagsArgs{Search: "go"})
	if err != nil {
		t.Fatalf("ListTags failed: %v", err)
	}

	if got := gotQuery.Get("search"); got != "go" {
		t.Errorf("search = %q", got)
	}
	if len(result.Tags) != 1 || result.Tags[0].Slug != "go" {
		t.Errorf("tags = %+v", result.Tags)
	}
}
