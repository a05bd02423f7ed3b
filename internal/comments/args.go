package comments

// ListArgs contains parameters for listing comments.
type ListArgs struct {
	PostID  int    `json:"post_id,omitempty" jsonschema_description:"Filter comments by post ID"`
	Status  string `json:"status,omitempty" jsonschema_description:"Filter by status (approved, hold, spam, trash; default approved)"`
	Search  string `json:"search,omitempty" jsonschema_description:"Search comments by keyword"`
	Page    int    `json:"page,omitempty" jsonschema_description:"Page number (default 1)"`
	PerPage int    `json:"per_page,omitempty" jsonschema_description:"Results per page, max 100 (default 10)"`
}

// ListResult is the result of listing comments.
type ListResult struct {
	Comments []Summary `json:"comments"`
	Page     int       `json:"page"`
	PerPage  int       `json:"per_page"`
}

// GetArgs contains parameters for fetching a single comment.
type GetArgs struct {
	CommentID int `json:"comment_id" jsonschema:"required" jsonschema_description:"Comment ID"`
}

// GetResult is the result of fetching, creating or updating a comment.
type GetResult struct {
	Comment Summary `json:"comment"`
}

// CreateArgs contains parameters for creating a comment. By default the
// comment is authored by the authenticated user; author_name and
// author_email override the displayed identity where the site allows it.
type CreateArgs struct {
	PostID      int    `json:"post_id" jsonschema:"required" jsonschema_description:"Post to comment on"`
	Content     string `json:"content" jsonschema:"required" jsonschema_description:"Comment text"`
	Parent      int    `json:"parent,omitempty" jsonschema_description:"Parent comment ID for threaded replies"`
	AuthorName  string `json:"author_name,omitempty" jsonschema_description:"Display name for the comment author"`
	AuthorEmail string `json:"author_email,omitempty" jsonschema_description:"Email for the comment author"`
}

// UpdateArgs contains parameters for editing a comment. At least one of
// content or status must be set.
type UpdateArgs struct {
	CommentID int    `json:"comment_id" jsonschema:"required" jsonschema_description:"Comment ID to update"`
	Content   string `json:"content,omitempty" jsonschema_description:"New comment text"`
	Status    string `json:"status,omitempty" jsonschema_description:"New status (approved, hold, spam, trash)"`
}

// DeleteArgs contains parameters for deleting a comment.
type DeleteArgs struct {
	CommentID int  `json:"comment_id" jsonschema:"required" jsonschema_description:"Comment ID to delete"`
	Force     bool `json:"force,omitempty" jsonschema_description:"Permanently delete instead of moving to trash"`
}

// DeleteResult confirms a deletion.
type DeleteResult struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	CommentID int    `json:"comment_id"`
}

// ModerateArgs contains parameters for moderating a comment.
type ModerateArgs struct {
	CommentID int    `json:"comment_id" jsonschema:"required" jsonschema_description:"Comment ID to moderate"`
	Action    string `json:"action" jsonschema:"required" jsonschema_description:"Moderation action (approve, hold, spam, trash)"`
}

// ModerateResult reports the status a comment was moved to.
type ModerateResult struct {
	Success   bool   `json:"success"`
	CommentID int    `json:"comment_id"`
	Status    string `json:"status"`
	Message   string `json:"message"`
}
