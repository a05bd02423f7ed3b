// Package comments handles comment retrieval, authoring and moderation.
package comments

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/crunchtools/wordpress-mcp-server/internal/wordpress"
)

// Client provides comment operations.
type Client struct {
	api *wordpress.Client
}

// NewClient creates a comments client on top of the shared API client.
func NewClient(api *wordpress.Client) *Client {
	return &Client{api: api}
}

// Summary is a flattened comment.
type Summary struct {
	ID         int    `json:"id"`
	PostID     int    `json:"post_id"`
	Parent     int    `json:"parent,omitempty"`
	AuthorName string `json:"author_name"`
	Content    string `json:"content"`
	Status     string `json:"status"`
	Date       string `json:"date"`
	Link       string `json:"link"`
}

var validCommentStatuses = map[string]bool{
	"approved": true,
	"hold":     true,
	"spam":     true,
	"trash":    true,
}

// moderationStatus maps a moderation action onto the comment status it
// assigns. "approve" is the odd one out: the status is "approved".
var moderationStatus = map[string]string{
	"approve": "approved",
	"hold":    "hold",
	"spam":    "spam",
	"trash":   "trash",
}

// List returns comments with optional post, status and keyword filters.
func (c *Client) List(ctx context.Context, args ListArgs) (*ListResult, error) {
	status := args.Status
	if status == "" {
		status = "approved"
	}
	if !validCommentStatuses[status] {
		return nil, &wordpress.ValidationError{
			Message: fmt.Sprintf("Invalid status %q. Valid statuses: %s", args.Status, statusList()),
		}
	}
	if args.PostID != 0 {
		if _, err := wordpress.ValidatePostID(args.PostID); err != nil {
			return nil, err
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
	query.Set("status", apiStatus(status))
	if args.PostID != 0 {
		query.Set("post", strconv.Itoa(args.PostID))
	}
	if args.Search != "" {
		query.Set("search", args.Search)
	}

	body, err := c.api.Get(ctx, "/comments", query)
	if err != nil {
		return nil, err
	}

	items, _ := body.AsArray()
	result := &ListResult{Comments: make([]Summary, 0, len(items)), Page: page, PerPage: perPage}
	for _, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			continue
		}
		result.Comments = append(result.Comments, formatComment(obj))
	}
	return result, nil
}

// GetComment returns a single comment.
func (c *Client) GetComment(ctx context.Context, commentID int) (*GetResult, error) {
	if _, err := wordpress.ValidateCommentID(commentID); err != nil {
		return nil, err
	}

	body, err := c.api.Get(ctx, "/comments/"+strconv.Itoa(commentID), nil)
	if err != nil {
		return nil, err
	}

	obj, ok := body.AsObject()
	if !ok {
		return nil, &wordpress.APIError{Code: "unexpected_response", Message: "Expected a comment object"}
	}
	return &GetResult{Comment: formatComment(obj)}, nil
}

// Create posts a new comment as the authenticated user.
func (c *Client) Create(ctx context.Context, args CreateArgs) (*GetResult, error) {
	if _, err := wordpress.ValidatePostID(args.PostID); err != nil {
		return nil, err
	}
	if strings.TrimSpace(args.Content) == "" {
		return nil, &wordpress.ValidationError{Message: "Comment content cannot be empty"}
	}
	if args.Parent != 0 {
		if _, err := wordpress.ValidateCommentID(args.Parent); err != nil {
			return nil, err
		}
	}

	payload := map[string]any{
		"post":    args.PostID,
		"content": args.Content,
	}
	if args.Parent != 0 {
		payload["parent"] = args.Parent
	}
	if args.AuthorName != "" {
		payload["author_name"] = args.AuthorName
	}
	if args.AuthorEmail != "" {
		payload["author_email"] = args.AuthorEmail
	}

	body, err := c.api.Post(ctx, "/comments", payload)
	if err != nil {
		return nil, err
	}

	obj, ok := body.AsObject()
	if !ok {
		return nil, &wordpress.APIError{Code: "unexpected_response", Message: "Expected a comment object"}
	}
	return &GetResult{Comment: formatComment(obj)}, nil
}

// Update edits a comment's content or status.
func (c *Client) Update(ctx context.Context, args UpdateArgs) (*GetResult, error) {
	if _, err := wordpress.ValidateCommentID(args.CommentID); err != nil {
		return nil, err
	}

	payload := map[string]any{}
	if strings.TrimSpace(args.Content) != "" {
		payload["content"] = args.Content
	}
	if args.Status != "" {
		if !validCommentStatuses[args.Status] {
			return nil, &wordpress.ValidationError{
				Message: fmt.Sprintf("Invalid status %q. Valid statuses: %s", args.Status, statusList()),
			}
		}
		payload["status"] = apiStatus(args.Status)
	}
	if len(payload) == 0 {
		return nil, &wordpress.ValidationError{Message: "No fields to update"}
	}

	body, err := c.api.Post(ctx, "/comments/"+strconv.Itoa(args.CommentID), payload)
	if err != nil {
		return nil, err
	}

	obj, ok := body.AsObject()
	if !ok {
		return nil, &wordpress.APIError{Code: "unexpected_response", Message: "Expected a comment object"}
	}
	return &GetResult{Comment: formatComment(obj)}, nil
}

// DeleteComment moves a comment to trash, or deletes it permanently with
// force.
func (c *Client) DeleteComment(ctx context.Context, commentID int, force bool) (*DeleteResult, error) {
	if _, err := wordpress.ValidateCommentID(commentID); err != nil {
		return nil, err
	}

	query := url.Values{}
	if force {
		query.Set("force", "true")
	}
	if _, err := c.api.Delete(ctx, "/comments/"+strconv.Itoa(commentID), query); err != nil {
		return nil, err
	}

	msg := fmt.Sprintf("Comment %d moved to trash", commentID)
	if force {
		msg = fmt.Sprintf("Comment %d permanently deleted", commentID)
	}
	return &DeleteResult{Success: true, Message: msg, CommentID: commentID}, nil
}

// Moderate applies a moderation action by setting the comment's status.
func (c *Client) Moderate(ctx context.Context, args ModerateArgs) (*ModerateResult, error) {
	if _, err := wordpress.ValidateCommentID(args.CommentID); err != nil {
		return nil, err
	}
	status, ok := moderationStatus[args.Action]
	if !ok {
		return nil, &wordpress.ValidationError{
			Message: fmt.Sprintf("Invalid action %q. Valid actions: approve, hold, spam, trash", args.Action),
		}
	}

	body, err := c.api.Post(ctx, "/comments/"+strconv.Itoa(args.CommentID), map[string]any{
		"status": apiStatus(status),
	})
	if err != nil {
		return nil, err
	}

	obj, _ := body.AsObject()
	applied := status
	if s := wordpress.Str(obj, "status"); s != "" {
		applied = s
	}
	return &ModerateResult{
		Success:   true,
		CommentID: args.CommentID,
		Status:    applied,
		Message:   fmt.Sprintf("Comment %d set to %s", args.CommentID, applied),
	}, nil
}

// apiStatus translates the exposed status vocabulary into the REST API's.
// The API uses "approve" (no trailing d) as the query and payload value.
func apiStatus(status string) string {
	if status == "approved" {
		return "approve"
	}
	return status
}

func formatComment(obj map[string]any) Summary {
	return Summary{
		ID:         wordpress.Int(obj, "id"),
		PostID:     wordpress.Int(obj, "post"),
		Parent:     wordpress.Int(obj, "parent"),
		AuthorName: wordpress.Str(obj, "author_name"),
		Content:    wordpress.Rendered(obj["content"]),
		Status:     wordpress.Str(obj, "status"),
		Date:       wordpress.Str(obj, "date"),
		Link:       wordpress.Str(obj, "link"),
	}
}

func statusList() string {
	keys := make([]string, 0, len(validCommentStatuses))
	for k := range validCommentStatuses {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return strings.Join(keys, ", ")
}
