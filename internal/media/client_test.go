package media

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
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
		UploadDir:   t.TempDir(),
	}
	return NewClient(wordpress.NewClient(cfg, wordpress.WithHTTPClient(server.Client())))
}

const sampleMedia = `{
	"id": 15,
	"title": {"rendered": "Sunset"},
	"media_type": "image",
	"mime_type": "image/jpeg",
	"source_url": "https://example.com/uploads/sunset.jpg",
	"alt_text": "A sunset",
	"caption": {"rendered": "Evening sky"},
	"description": {"rendered": "Taken in June"},
	"date": "2026-02-01T18:00:00",
	"link": "https://example.com/?attachment_id=15",
	"media_details": {
		"width": 2048,
		"height": 1365,
		"sizes": {
			"thumbnail": {"source_url": "https://example.com/uploads/sunset-150x150.jpg"},
			"medium": {"source_url": "https://example.com/uploads/sunset-300x200.jpg"},
			"large": {"source_url": "https://example.com/uploads/sunset-1024x683.jpg"}
		}
	}
}`

func TestListQuery(t *testing.T) {
	var gotQuery url.Values
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		fmt.Fprint(w, `[]`)
	})

	args := ListArgs{MediaType: "image", MimeType: "image/png", Search: "logo", PerPage: 200}
	result, err := client.List(context.Background(), args)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}

	if got := gotQuery.Get("media_type"); got != "image" {
		t.Errorf("media_type = %q", got)
	}
	if got := gotQuery.Get("mime_type"); got != "image/png" {
		t.Errorf("mime_type = %q", got)
	}
	if got := gotQuery.Get("search"); got != "logo" {
		t.Errorf("search = %q", got)
	}
	if got := gotQuery.Get("per_page"); got != "100" {
		t.Errorf("per_page = %q, want clamped 100", got)
	}
	if result.PerPage != 100 {
		t.Errorf("result.PerPage = %d", result.PerPage)
	}
}

func TestListInvalidMediaType(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("request should not reach the server")
	})

	_, err := client.List(context.Background(), ListArgs{MediaType: "document"})
	var valErr *wordpress.ValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("err = %v, want ValidationError", err)
	}
}

func TestGetMedia(t *testing.T) {
	var gotPath string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		fmt.Fprint(w, sampleMedia)
	})

	result, err := client.GetMedia(context.Background(), 15)
	if err != nil {
		t.Fatalf("GetMedia failed: %v", err)
	}

	if gotPath != "/wp-json/wp/v2/media/15" {
		t.Errorf("path = %q", gotPath)
	}
	m := result.Media
	if m.Title != "Sunset" || m.MimeType != "image/jpeg" {
		t.Errorf("media = %+v", m)
	}
	if m.Description != "Taken in June" {
		t.Errorf("Description = %q", m.Description)
	}
	if m.MediaDetails == nil {
		t.Error("MediaDetails missing on single fetch")
	}
}

func TestGetMediaInvalidID(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("request should not reach the server")
	})

	_, err := client.GetMedia(context.Background(), 0)
	var idErr *wordpress.InvalidIDError
	if !errors.As(err, &idErr) || idErr.Kind != wordpress.ResourceMedia {
		t.Fatalf("err = %v, want InvalidIDError for media", err)
	}
}

func TestUpload(t *testing.T) {
	var gotTitle, gotAlt, gotFilename, gotPartType string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("ParseMultipartForm failed: %v", err)
			w.WriteHeader(http.StatusBadRequest)
			fmt.Fprint(w, `{"code":"bad_upload","message":"bad"}`)
			return
		}
		gotTitle = r.FormValue("title")
		gotAlt = r.FormValue("alt_text")
		file, header, err := r.FormFile("file")
		if err != nil {
			t.Errorf("FormFile failed: %v", err)
			w.WriteHeader(http.StatusBadRequest)
			fmt.Fprint(w, `{"code":"bad_upload","message":"bad"}`)
			return
		}
		defer file.Close()
		gotFilename = header.Filename
		gotPartType = header.Header.Get("Content-Type")
		io.Copy(io.Discard, file)
		fmt.Fprint(w, sampleMedia)
	})

	path := filepath.Join(t.TempDir(), "sunset.jpg")
	if err := os.WriteFile(path, []byte("jpeg-bytes"), 0o644); err != nil {
		t.Fatal(err)
	}

	args := UploadArgs{FilePath: path, Title: "Sunset", AltText: "A sunset"}
	result, err := client.Upload(context.Background(), args)
	if err != nil {
		t.Fatalf("Upload failed: %v", err)
	}

	if result.Media.ID != 15 {
		t.Errorf("ID = %d", result.Media.ID)
	}
	if gotTitle != "Sunset" || gotAlt != "A sunset" {
		t.Errorf("form fields = %q, %q", gotTitle, gotAlt)
	}
	if gotFilename != "sunset.jpg" {
		t.Errorf("filename = %q", gotFilename)
	}
	if gotPartType != "image/jpeg" {
		t.Errorf("file part Content-Type = %q", gotPartType)
	}
}

func TestUploadMissingFile(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("request should not reach the server")
	})

	_, err := client.Upload(context.Background(), UploadArgs{FilePath: "/nonexistent/file.png"})
	var valErr *wordpress.ValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("err = %v, want ValidationError", err)
	}
}

func TestUpdateNoFields(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("request should not reach the server")
	})

	_, err := client.Update(context.Background(), UpdateArgs{MediaID: 15})
	var valErr *wordpress.ValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("err = %v, want ValidationError", err)
	}
}

func TestDeleteMediaAlwaysForces(t *testing.T) {
	var gotForce string
	var gotMethod string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotForce = r.URL.Query().Get("force")
		fmt.Fprint(w, `{"deleted":true}`)
	})

	result, err := client.DeleteMedia(context.Background(), 15)
	if err != nil {
		t.Fatalf("DeleteMedia failed: %v", err)
	}

	// Media has no trash state, so deletion is always forced.
	if gotMethod != http.MethodDelete || gotForce != "true" {
		t.Errorf("method = %q, force = %q", gotMethod, gotForce)
	}
	if result.Message != "Media 15 permanently deleted" {
		t.Errorf("message = %q", result.Message)
	}
}

func TestGetURL(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, sampleMedia)
	})

	result, err := client.GetURL(context.Background(), GetURLArgs{MediaID: 15, Size: "thumbnail"})
	if err != nil {
		t.Fatalf("GetURL failed: %v", err)
	}

	if result.URL != "https://example.com/uploads/sunset-150x150.jpg" {
		t.Errorf("URL = %q", result.URL)
	}
	want := []string{"large", "medium", "thumbnail"}
	if len(result.AvailableSizes) != len(want) {
		t.Fatalf("AvailableSizes = %v", result.AvailableSizes)
	}
	for i, name := range want {
		if result.AvailableSizes[i] != name {
			t.Errorf("AvailableSizes[%d] = %q, want %q", i, result.AvailableSizes[i], name)
		}
	}
}

func TestGetURLFallsBackToSource(t *testing.T) {
	tests := []struct {
		name string
		size string
	}{
		{"default full", ""},
		{"unknown size", "gigantic"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, sampleMedia)
			})

			result, err := client.GetURL(context.Background(), GetURLArgs{MediaID: 15, Size: tt.size})
			if err != nil {
				t.Fatalf("GetURL failed: %v", err)
			}
			if result.URL != "https://example.com/uploads/sunset.jpg" {
				t.Errorf("URL = %q, want original source", result.URL)
			}
		})
	}
}

func TestGetURLNonImage(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"id":20,"mime_type":"application/pdf","source_url":"https://example.com/uploads/report.pdf","media_details":{}}`)
	})

	result, err := client.GetURL(context.Background(), GetURLArgs{MediaID: 20, Size: "thumbnail"})
	if err != nil {
		t.Fatalf("GetURL failed: %v", err)
	}
	if result.URL != "https://example.com/uploads/report.pdf" {
		t.Errorf("URL = %q", result.URL)
	}
	if len(result.AvailableSizes) != 0 {
		t.Errorf("AvailableSizes = %v, want none", result.AvailableSizes)
	}
}
