// Package posts implements the post, category and tag operations of the
// WordPress MCP server.
package posts

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/crunchtools/wordpress-mcp-server/internal/wordpress"
)

// Client provides post operations on top of the core API client.
type Client struct {
	*wordpress.Client
}

// NewClient wraps the core client.
func NewClient(c *wordpress.Client) *Client {
	return &Client{Client: c}
}

// List returns posts with filtering and pagination. per_page is clamped to
// the REST API maximum of 100.
func (c *Client) List(ctx context.Context, args ListArgs) (ListResult, error) {
	if err := ValidateStatus(args.Status); err != nil {
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
	params.Set("orderby", defaultString(args.OrderBy, "date"))
	params.Set("order", defaultString(args.Order, "desc"))
	params.Set("_embed", "true")

	if args.Status != "" {
		params.Set("status", args.Status)
	}
	if args.Search != "" {
		params.Set("search", args.Search)
	}
	if len(args.Categories) > 0 {
		params.Set("categories", joinInts(args.Categories))
	}
	if len(args.Tags) > 0 {
		params.Set("tags", joinInts(args.Tags))
	}

	body, err := c.Get(ctx, "/posts", params)
	if err != nil {
		return ListResult{}, err
	}

	result := ListResult{Posts: []Summary{}, Page: page, PerPage: perPage}
	if arr, ok := body.AsArray(); ok {
		for _, item := range arr {
			if obj, ok := item.(map[string]any); ok {
				result.Posts = append(result.Posts, formatPost(obj, false))
			}
		}
	}
	return result, nil
}

// GetPost returns a single post with full content.
func (c *Client) GetPost(ctx context.Context, args GetArgs) (GetResult, error) {
	id, err := wordpress.ValidatePostID(args.PostID)
	if err != nil {
		return GetResult{}, err
	}

	params := url.Values{}
	params.Set("_embed", "true")

	body, err := c.Get(ctx, fmt.Sprintf("/posts/%d", id), params)
	if err != nil {
		return GetResult{}, err
	}

	obj, ok := body.AsObject()
	if !ok {
		return GetResult{}, &wordpress.APIError{Code: "unexpected_response", Message: "Unexpected response format"}
	}
	return GetResult{Post: formatPost(obj, true)}, nil
}

// Search runs a keyword search over title and content.
func (c *Client) Search(ctx context.Context, args SearchArgs) (ListResult, error) {
	return c.List(ctx, ListArgs{
		Search:  args.Keyword,
		Page:    args.Page,
		PerPage: args.PerPage,
	})
}

// Create creates a new post. Status defaults to draft.
func (c *Client) Create(ctx context.Context, args CreateArgs) (GetResult, error) {
	status := defaultString(args.Status, "draft")
	if err := ValidateStatus(status); err != nil {
		return GetResult{}, err
	}
	format, err := ValidateFormat(args.Format)
	if err != nil {
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
	if len(args.Categories) > 0 {
		data["categories"] = args.Categories
	}
	if len(args.Tags) > 0 {
		data["tags"] = args.Tags
	}
	if args.FeaturedMedia > 0 {
		data["featured_media"] = args.FeaturedMedia
	}
	if args.Date != "" {
		data["date"] = args.Date
	}
	if format != "" {
		data["format"] = format
	}

	body, err := c.Post(ctx, "/posts", data)
	if err != nil {
		return GetResult{}, err
	}

	obj, ok := body.AsObject()
	if !ok {
		return GetResult{}, &wordpress.APIError{Code: "unexpected_response", Message: "Unexpected response format"}
	}
	return GetResult{Post: formatPost(obj, true)}, nil
}

// Update patches an existing post. Only non-nil fields are sent.
func (c *Client) Update(ctx context.Context, args UpdateArgs) (GetResult, error) {
	id, err := wordpress.ValidatePostID(args.PostID)
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
		if err := ValidateStatus(*args.Status); err != nil {
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
	if args.Categories != nil {
		data["categories"] = args.Categories
	}
	if args.Tags != nil {
		data["tags"] = args.Tags
	}
	if args.FeaturedMedia != nil {
		data["featured_media"] = *args.FeaturedMedia
	}
	if args.Date != nil {
		data["date"] = *args.Date
	}
	if args.Format != nil {
		format, err := ValidateFormat(*args.Format)
		if err != nil {
			return GetResult{}, err
		}
		data["format"] = format
	}

	if len(data) == 0 {
		return GetResult{}, &wordpress.ValidationError{Message: "no fields to update"}
	}

	body, err := c.Patch(ctx, fmt.Sprintf("/posts/%d", id), data)
	if err != nil {
		return GetResult{}, err
	}

	obj, ok := body.AsObject()
	if !ok {
		return GetResult{}, &wordpress.APIError{Code: "unexpected_response", Message: "Unexpected response format"}
	}
	return GetResult{Post: formatPost(obj, true)}, nil
}

// DeletePost deletes or trashes a post depending on the force flag.
func (c *Client) DeletePost(ctx context.Context, args DeleteArgs) (DeleteResult, error) {
	id, err := wordpress.ValidatePostID(args.PostID)
	if err != nil {
		return DeleteResult{}, err
	}

	params := url.Values{}
	params.Set("force", strconv.FormatBool(args.Force))

	if _, err := c.Delete(ctx, fmt.Sprintf("/posts/%d", id), params); err != nil {
		return DeleteResult{}, err
	}

	message := "Post moved to trash"
	if args.Force {
		message = "Post permanently deleted"
	}
	return DeleteResult{Success: true, Message: message, PostID: id}, nil
}

// ListRevisions returns the revision history of a post.
func (c *Client) ListRevisions(ctx context.Context, args ListRevisionsArgs) (ListRevisionsResult, error) {
	id, err := wordpress.ValidatePostID(args.PostID)
	if err != nil {
		return ListRevisionsResult{}, err
	}

	body, err := c.Get(ctx, fmt.Sprintf("/posts/%d/revisions", id), nil)
	if err != nil {
		return ListRevisionsResult{}, err
	}

	result := ListRevisionsResult{Revisions: []Revision{}, PostID: id}
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

// GetRevision returns one revision with content.
func (c *Client) GetRevision(ctx context.Context, args GetRevisionArgs) (GetRevisionResult, error) {
	postID, err := wordpress.ValidatePostID(args.PostID)
	if err != nil {
		return GetRevisionResult{}, err
	}
	revisionID, err := wordpress.ValidatePostID(args.RevisionID)
	if err != nil {
		return GetRevisionResult{}, err
	}

	body, err := c.Get(ctx, fmt.Sprintf("/posts/%d/revisions/%d", postID, revisionID), nil)
	if err != nil {
		return GetRevisionResult{}, err
	}

	obj, ok := body.AsObject()
	if !ok {
		return GetRevisionResult{}, &wordpress.APIError{Code: "unexpected_response", Message: "Unexpected response format"}
	}
	return GetRevisionResult{Revision: RevisionDetail{
		ID:      wordpress.Int(obj, "id"),
		Author:  wordpress.Int(obj, "author"),
		Date:    wordpress.Str(obj, "date"),
		Title:   wordpress.Rendered(obj["title"]),
		Content: wordpress.Rendered(obj["content"]),
		Excerpt: wordpress.Rendered(obj["excerpt"]),
	}}, nil
}

// ListCategories returns available categories.
func (c *Client) ListCategories(ctx context.Context, args ListCategoriesArgs) (ListCategoriesResult, error) {
	params := termListParams(args.Page, args.PerPage, args.Search)

	body, err := c.Get(ctx, "/categories", params)
	if err != nil {
		return ListCategoriesResult{}, err
	}

	result := ListCategoriesResult{Categories: []Category{}}
	if arr, ok := body.AsArray(); ok {
		for _, item := range arr {
			obj, ok := item.(map[string]any)
			if !ok {
				continue
			}
			result.Categories = append(result.Categories, Category{
				ID:          wordpress.Int(obj, "id"),
				Name:        wordpress.Str(obj, "name"),
				Slug:        wordpress.Str(obj, "slug"),
				Description: wordpress.Str(obj, "description"),
				Count:       wordpress.Int(obj, "count"),
				Parent:      wordpress.Int(obj, "parent"),
			})
		}
	}
	return result, nil
}

// ListTags returns available tags.
func (c *Client) ListTags(ctx context.Context, args ListTagsArgs) (ListTagsResult, error) {
	params := termListParams(args.Page, args.PerPage, args.Search)

	body, err := c.Get(ctx, "/tags", params)
	if err != nil {
		return ListTagsResult{}, err
	}

	result := ListTagsResult{Tags: []Tag{}}
	if arr, ok := body.AsArray(); ok {
		for _, item := range arr {
			obj, ok := item.(map[string]any)
			if !ok {
				continue
			}
			result.Tags = append(result.Tags, Tag{
				ID:          wordpress.Int(obj, "id"),
				Name:        wordpress.Str(obj, "name"),
				Slug:        wordpress.Str(obj, "slug"),
				Description: wordpress.Str(obj, "description"),
				Count:       wordpress.Int(obj, "count"),
			})
		}
	}
	return result, nil
}

// termListParams builds the query for category/tag listings. Terms default
// to the API maximum page size since the full set is usually wanted.
func termListParams(page, perPage int, search string) url.Values {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 100
	}
	params := url.Values{}
	params.Set("page", strconv.Itoa(page))
	params.Set("per_page", strconv.Itoa(wordpress.ClampPerPage(perPage)))
	if search != "" {
		params.Set("search", search)
	}
	return params
}

func defaultString(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

func joinInts(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, ",")
}
