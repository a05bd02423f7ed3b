// Package media manages the WordPress media library: listing, metadata,
// uploads from local files, and URL resolution across generated image sizes.
package media

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"strconv"

	"github.com/crunchtools/wordpress-mcp-server/internal/wordpress"
	"github.com/crunchtools/wordpress-mcp-server/metrics"
)

// Client provides media library operations.
type Client struct {
	api *wordpress.Client
}

// NewClient creates a media client on top of the shared API client.
func NewClient(api *wordpress.Client) *Client {
	return &Client{api: api}
}

// Summary is a flattened media item.
type Summary struct {
	ID           int            `json:"id"`
	Title        string         `json:"title"`
	MediaType    string         `json:"media_type"`
	MimeType     string         `json:"mime_type"`
	SourceURL    string         `json:"source_url"`
	AltText      string         `json:"alt_text"`
	Caption      string         `json:"caption"`
	Description  string         `json:"description,omitempty"`
	Date         string         `json:"date"`
	Link         string         `json:"link"`
	MediaDetails map[string]any `json:"media_details,omitempty"`
}

var validMediaTypes = map[string]bool{
	"image":       true,
	"video":       true,
	"audio":       true,
	"application": true,
}

// List returns media items with optional type, MIME and keyword filters.
func (c *Client) List(ctx context.Context, args ListArgs) (*ListResult, error) {
	if args.MediaType != "" && !validMediaTypes[args.MediaType] {
		return nil, &wordpress.ValidationError{
			Message: fmt.Sprintf("Invalid media_type %q. Valid types: application, audio, image, video", args.MediaType),
		}
	}

	page := args.Page
	if page < 1 {
		page = 1
	}
	perPage := args.PerPage
	if perPage == 0 {
		perPage = 10
	}
	perPage = wordpress.ClampPerPage(perPage)

	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("per_page", strconv.Itoa(perPage))
	query.Set("orderby", orDefault(args.OrderBy, "date"))
	query.Set("order", orDefault(args.Order, "desc"))
	if args.MediaType != "" {
		query.Set("media_type", args.MediaType)
	}
	if args.MimeType != "" {
		query.Set("mime_type", args.MimeType)
	}
	if args.Search != "" {
		query.Set("search", args.Search)
	}

	body, err := c.api.Get(ctx, "/media", query)
	if err != nil {
		return nil, err
	}

	items, _ := body.AsArray()
	result := &ListResult{Media: make([]Summary, 0, len(items)), Page: page, PerPage: perPage}
	for _, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			continue
		}
		result.Media = append(result.Media, formatMedia(obj, false))
	}
	return result, nil
}

// GetMedia returns a single media item with its full details.
func (c *Client) GetMedia(ctx context.Context, mediaID int) (*GetResult, error) {
	if _, err := wordpress.ValidateMediaID(mediaID); err != nil {
		return nil, err
	}

	body, err := c.api.Get(ctx, "/media/"+strconv.Itoa(mediaID), nil)
	if err != nil {
		return nil, err
	}

	obj, ok := body.AsObject()
	if !ok {
		return nil, &wordpress.APIError{Code: "unexpected_response", Message: "Expected a media object"}
	}
	return &GetResult{Media: formatMedia(obj, true)}, nil
}

// Upload reads a local file through the upload gate and posts it as a new
// media item. Metadata fields travel as multipart form fields alongside the
// file part.
func (c *Client) Upload(ctx context.Context, args UploadArgs) (*GetResult, error) {
	file, err := wordpress.ReadUploadFile(args.FilePath, c.api.Config().UploadDir)
	if err != nil {
		return nil, err
	}
	metrics.RecordUpload(int64(len(file.Data)))

	form := map[string]string{}
	if args.Title != "" {
		form["title"] = args.Title
	}
	if args.AltText != "" {
		form["alt_text"] = args.AltText
	}
	if args.Caption != "" {
		form["caption"] = args.Caption
	}
	if args.Description != "" {
		form["description"] = args.Description
	}

	body, err := c.api.Upload(ctx, "/media", form, file)
	if err != nil {
		return nil, err
	}

	obj, ok := body.AsObject()
	if !ok {
		return nil, &wordpress.APIError{Code: "unexpected_response", Message: "Expected a media object"}
	}
	return &GetResult{Media: formatMedia(obj, false)}, nil
}

// Update changes media metadata. Nil fields are left untouched.
func (c *Client) Update(ctx context.Context, args UpdateArgs) (*GetResult, error) {
	if _, err := wordpress.ValidateMediaID(args.MediaID); err != nil {
		return nil, err
	}

	payload := map[string]any{}
	if args.Title != nil {
		payload["title"] = *args.Title
	}
	if args.AltText != nil {
		payload["alt_text"] = *args.AltText
	}
	if args.Caption != nil {
		payload["caption"] = *args.Caption
	}
	if args.Description != nil {
		payload["description"] = *args.Description
	}
	if len(payload) == 0 {
		return nil, &wordpress.ValidationError{Message: "No fields to update"}
	}

	body, err := c.api.Post(ctx, "/media/"+strconv.Itoa(args.MediaID), payload)
	if err != nil {
		return nil, err
	}

	obj, ok := body.AsObject()
	if !ok {
		return nil, &wordpress.APIError{Code: "unexpected_response", Message: "Expected a media object"}
	}
	return &GetResult{Media: formatMedia(obj, false)}, nil
}

// DeleteMedia permanently deletes a media item. WordPress has no trash state
// for media, so force=true is always sent.
func (c *Client) DeleteMedia(ctx context.Context, mediaID int) (*DeleteResult, error) {
	if _, err := wordpress.ValidateMediaID(mediaID); err != nil {
		return nil, err
	}

	query := url.Values{}
	query.Set("force", "true")
	if _, err := c.api.Delete(ctx, "/media/"+strconv.Itoa(mediaID), query); err != nil {
		return nil, err
	}

	return &DeleteResult{
		Success: true,
		Message: fmt.Sprintf("Media %d permanently deleted", mediaID),
		MediaID: mediaID,
	}, nil
}

// GetURL resolves the public URL for a media item at the requested size,
// falling back to the original source URL when the size does not exist or
// the item is not an image.
func (c *Client) GetURL(ctx context.Context, args GetURLArgs) (*GetURLResult, error) {
	if _, err := wordpress.ValidateMediaID(args.MediaID); err != nil {
		return nil, err
	}

	body, err := c.api.Get(ctx, "/media/"+strconv.Itoa(args.MediaID), nil)
	if err != nil {
		return nil, err
	}

	obj, ok := body.AsObject()
	if !ok {
		return nil, &wordpress.APIError{Code: "unexpected_response", Message: "Expected a media object"}
	}

	size := orDefault(args.Size, "full")
	sourceURL := wordpress.Str(obj, "source_url")
	resolved := sourceURL
	var available []string

	details := wordpress.Object(obj, "media_details")
	if sizes := wordpress.Object(details, "sizes"); sizes != nil {
		for name := range sizes {
			available = append(available, name)
		}
		sort.Strings(available)
		if size != "full" {
			if entry, ok := sizes[size].(map[string]any); ok {
				if u := wordpress.Str(entry, "source_url"); u != "" {
					resolved = u
				}
			}
		}
	}

	return &GetURLResult{
		MediaID:        args.MediaID,
		URL:            resolved,
		Size:           size,
		AvailableSizes: available,
		MimeType:       wordpress.Str(obj, "mime_type"),
	}, nil
}

// formatMedia flattens a media response object. Title and caption arrive in
// rendered envelopes.
func formatMedia(obj map[string]any, includeDetails bool) Summary {
	s := Summary{
		ID:        wordpress.Int(obj, "id"),
		Title:     wordpress.Rendered(obj["title"]),
		MediaType: wordpress.Str(obj, "media_type"),
		MimeType:  wordpress.Str(obj, "mime_type"),
		SourceURL: wordpress.Str(obj, "source_url"),
		AltText:   wordpress.Str(obj, "alt_text"),
		Caption:   wordpress.Rendered(obj["caption"]),
		Date:      wordpress.Str(obj, "date"),
		Link:      wordpress.Str(obj, "link"),
	}
	if includeDetails {
		s.Description = wordpress.Rendered(obj["description"])
		s.MediaDetails = wordpress.Object(obj, "media_details")
	}
	return s
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
