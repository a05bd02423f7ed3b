// Package pages implements the page operations of the WordPress MCP server.
package pages

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/crunchtools/wordpress-mcp-server/internal/posts"
	"github.com/crunchtools/wordpress-mcp-server/internal/wordpress"
)

// Client provides page operations on top of the core API client.
type Client struct {
	*wordpress.Client
}

// NewClient wraps the core client.
func NewClient(c *wordpress.Client) *Client {
	return &Client{Client: c}
}

// Summary is the flattened page representation returned by tools.
type Summary struct {
	ID            int    `json:"id"`
	Title         string `json:"title"`
	Slug          string `json:"slug"`
	Status        string `json:"status"`
	Date          string `json:"date"`
	Modified      string `json:"modified"`
	Link          string `json:"link"`
	Author        int    `json:"author"`
	AuthorName    string `json:"author_name,omitempty"`
	Excerpt       string `json:"excerpt"`
	Parent        int    `json:"parent"`
	MenuOrder     int    `json:"menu_order"`
	Template      string `json:"template"`
	FeaturedMedia int    `json:"featured_media"`
	Content       string `json:"content,omitempty"`
}

// Revision is one entry in a page's revision list.
type Revision struct {
	ID       int    `json:"id"`
	Author   int    `json:"author"`
	Date     string `json:"date"`
	Modified string `json:"modified"`
	Title    string `json:"title"`
}

// List returns pages with filtering and pagination. per_page is clamped to
// the REST API maximum of 100.
func (c *Client) List(ctx context.Context, args ListArgs) (ListResult, error) {
	if err := posts.ValidateStatus(args.Status); err != nil {
		return ListResult{}, err
	}

	page := args.Page
	if page < 1 {
		page = 1
	}
	perPage := wordpress.ClampPerPage(args.PerPage)

	params := url.Values{}
	params.Set("page", strconv.Itoa(page))
	params.Set("per_page", strconv.Itoa(perPage))
	params.Set("orderby", orDefault(args.OrderBy, "date"))
	params.Set("order", orDefault(args.Order, "desc"))
	params.Set("_embed", "true")

	if args.Status != "" {
		params.Set("status", args.Status)
	}
	if args.Search != "" {
		params.Set("search", args.Search)
	}
	if args.Parent != nil {
		params.Set("parent", strconv.Itoa(*args.Parent))
	}

	body, err := c.Get(ctx, "/pages", params)
	if err != nil {
		return ListResult{}, err
	}

	result := ListResult{Pages: []Summary{}, Page: page, PerPage: perPage}
	if arr, ok := body.AsArray(); ok {
		for _, item := range arr {
			if obj, ok := item.(map[string]any); ok {
				result.Pages = append(result.Pages, formatPage(obj, false))
			}
		}
	}
	return result, nil
}

// GetPage returns a single page with full content.
func (c *Client) GetPage(ctx context.Context, args GetArgs) (GetResult, error) {
	id, err := wordpress.ValidatePageID(args.PageID)
	if err != nil {
		return GetResult{}, err
	}

	params := url.Values{}
	params.Set("_embed", "true")

	body, err := c.Get(ctx, fmt.Sprintf("/pages/%d", id), params)
	if err != nil {
		return GetResult{}, err
	}

	obj, ok := body.AsObject()
	if !ok {
		return GetResult{}, &wordpress.APIError{Code: "unexpected_response", Message: "Unexpected response format"}
	}
	return GetResult{Page: formatPage(obj, true)}, nil
}

// Create creates a new page. Status defaults to draft.
func (c *Client) Create(ctx context.Context, args CreateArgs) (GetResult, error) {
	status := orDefault(args.Status, "draft")
	if err := posts.ValidateStatus(status); err != nil {
		return GetResult{}, err
	}

	data := map[string]any{
		"title":   args.Title,
		"content": args.Content,
		"status":  status,
	}
	if args.Excerpt != "" {
		data["excerpt"] = args.Excerpt
	}
	if args.Slug != "" {
		data["slug"] = args.Slug
	}
	if args.Parent > 0 {
		data["parent"] = args.Parent
	}
	if args.MenuOrder != nil {
		data["menu_order"] = *args.MenuOrder
	}
	if args.Template != "" {
		data["template"] = args.Template
	}
	if args.FeaturedMedia > 0 {
		data["featured_media"] = args.FeaturedMedia
	}
	if args.Date != "" {
		data["date"] = args.Date
	}

	body, err := c.Post(ctx, "/pages", data)
	if err != nil {
		return GetResult{}, err
	}

	obj, ok := body.AsObject()
	if !ok {
		return GetResult{}, &wordpress.APIError{Code: "unexpected_response", Message: "Unexpected response format"}
	}
	return GetResult{Page: formatPage(obj, true)}, nil
}

// Update patches an existing page. Only non-nil fields are sent.
func (c *Client) Update(ctx context.Context, args UpdateArgs) (GetResult, error) {
	id, err := wordpress.ValidatePageID(args.PageID)
	if err != nil {
		return GetResult{}, err
	}

	data := map[string]any{}
	if args.Title != nil {
		data["title"] = *args.Title
	}
	if args.Content != nil {
		data["content"] = *args.Content
	}
	if args.Status != nil {
		if err := posts.ValidateStatus(*args.Status); err != nil {
			return GetResult{}, err
		}
		data["status"] = *args.Status
	}
	if args.Excerpt != nil {
		data["excerpt"] = *args.Excerpt
	}
	if args.Slug != nil {
		data["slug"] = *args.Slug
	}
	if args.Parent != nil {
		data["parent"] = *args.Parent
	}
	if args.MenuOrder != nil {
		data["menu_order"] = *args.MenuOrder
	}
	if args.Template != nil {
		data["template"] = *args.Template
	}
	if args.FeaturedMedia != nil {
		data["featured_media"] = *args.FeaturedMedia
	}
	if args.Date != nil {
		data["date"] = *args.Date
	}

	if len(data) == 0 {
		return GetResult{}, &wordpress.ValidationError{Message: "no fields to update"}
	}

	body, err := c.Patch(ctx, fmt.Sprintf("/pages/%d", id), data)
	if err != nil {
		return GetResult{}, err
	}

	obj, ok := body.AsObject()
	if !ok {
		return GetResult{}, &wordpress.APIError{Code: "unexpected_response", Message: "Unexpected response format"}
	}
	return GetResult{Page: formatPage(obj, true)}, nil
}

// DeletePage deletes or trashes a page depending on the force flag.
func (c *Client) DeletePage(ctx context.Context, args DeleteArgs) (DeleteResult, error) {
	id, err := wordpress.ValidatePageID(args.PageID)
	if err != nil {
		return DeleteResult{}, err
	}

	params := url.Values{}
	params.Set("force", strconv.FormatBool(args.Force))

	if _, err := c.Delete(ctx, fmt.Sprintf("/pages/%d", id), params); err != nil {
		return DeleteResult{}, err
	}

	message := "Page moved to trash"
	if args.Force {
		message = "Page permanently deleted"
	}
	return DeleteResult{Success: true, Message: message, PageID: id}, nil
}

// ListRevisions returns the revision history of a page.
func (c *Client) ListRevisions(ctx context.Context, args ListRevisionsArgs) (ListRevisionsResult, error) {
	id, err := wordpress.ValidatePageID(args.PageID)
	if err != nil {
		return ListRevisionsResult{}, err
	}

	body, err := c.Get(ctx, fmt.Sprintf("/pages/%d/revisions", id), nil)
	if err != nil {
		return ListRevisionsResult{}, err
	}

	result := ListRevisionsResult{Revisions: []Revision{}, PageID: id}
	if arr, ok := body.AsArray(); ok {
		for _, item := range arr {
			obj, ok := item.(map[string]any)
			if !ok {
				continue
			}
			result.Revisions = append(result.Revisions, Revision{
				ID:       wordpress.Int(obj, "id"),
				Author:   wordpress.Int(obj, "author"),
				Date:     wordpress.Str(obj, "date"),
				Modified: wordpress.Str(obj, "modified"),
				Title:    wordpress.Rendered(obj["title"]),
			})
		}
	}
	return result, nil
}

// formatPage flattens a page response object.
func formatPage(obj map[string]any, includeContent bool) Summary {
	s := Summary{
		ID:            wordpress.Int(obj, "id"),
		Title:         wordpress.Rendered(obj["title"]),
		Slug:          wordpress.Str(obj, "slug"),
		Status:        wordpress.Str(obj, "status"),
		Date:          wordpress.Str(obj, "date"),
		Modified:      wordpress.Str(obj, "modified"),
		Link:          wordpress.Str(obj, "link"),
		Author:        wordpress.Int(obj, "author"),
		AuthorName:    wordpress.EmbeddedAuthorName(obj),
		Excerpt:       wordpress.Rendered(obj["excerpt"]),
		Parent:        wordpress.Int(obj, "parent"),
		MenuOrder:     wordpress.Int(obj, "menu_order"),
		Template:      wordpress.Str(obj, "template"),
		FeaturedMedia: wordpress.Int(obj, "featured_media"),
	}
	if includeContent {
		s.Content = wordpress.Rendered(obj["content"])
	}
	return s
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
