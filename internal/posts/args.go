package posts

// ListArgs contains parameters for listing posts.
type ListArgs struct {
	Status     string `json:"status,omitempty" jsonschema_description:"Filter by status (publish, draft, pending, private, future)"`
	Search     string `json:"search,omitempty" jsonschema_description:"Search posts by keyword"`
	Categories []int  `json:"categories,omitempty" jsonschema_description:"Filter by category IDs"`
	Tags       []int  `json:"tags,omitempty" jsonschema_description:"Filter by tag IDs"`
	Page       int    `json:"page,omitempty" jsonschema_description:"Page number (default 1)"`
	PerPage    int    `json:"per_page,omitempty" jsonschema_description:"Results per page, max 100 (default 10)"`
	OrderBy    string `json:"orderby,omitempty" jsonschema_description:"Sort by field (date, title, id, modified)"`
	Order      string `json:"order,omitempty" jsonschema_description:"Sort direction (asc, desc)"`
}

// ListResult is the result of listing posts.
type ListResult struct {
	Posts   []Summary `json:"posts"`
	Page    int       `json:"page"`
	PerPage int       `json:"per_page"`
}

// GetArgs contains parameters for fetching a single post.
type GetArgs struct {
	PostID int `json:"post_id" jsonschema:"required" jsonschema_description:"Post ID"`
}

// GetResult is the result of fetching, creating or updating a post.
type GetResult struct {
	Post Summary `json:"post"`
}

// SearchArgs contains parameters for keyword search across posts.
type SearchArgs struct {
	Keyword string `json:"keyword" jsonschema:"required" jsonschema_description:"Search keyword"`
	Page    int    `json:"page,omitempty" jsonschema_description:"Page number (default 1)"`
	PerPage int    `json:"per_page,omitempty" jsonschema_description:"Results per page (default 10)"`
}

// CreateArgs contains parameters for creating a post.
type CreateArgs struct {
	Title         string `json:"title" jsonschema:"required" jsonschema_description:"Post title"`
	Content       string `json:"content" jsonschema:"required" jsonschema_description:"Post content (HTML or block format)"`
	Status        string `json:"status,omitempty" jsonschema_description:"Post status - publish, draft, pending, private, future (default: draft)"`
	Excerpt       string `json:"excerpt,omitempty" jsonschema_description:"Post excerpt"`
	Slug          string `json:"slug,omitempty" jsonschema_description:"URL slug"`
	Categories    []int  `json:"categories,omitempty" jsonschema_description:"Category IDs"`
	Tags          []int  `json:"tags,omitempty" jsonschema_description:"Tag IDs"`
	FeaturedMedia int    `json:"featured_media,omitempty" jsonschema_description:"Featured image media ID"`
	Date          string `json:"date,omitempty" jsonschema_description:"Publication date (ISO 8601, for scheduling)"`
	Format        string `json:"post_format,omitempty" jsonschema_description:"Format - standard, aside, gallery, link, image, quote, status, video, audio"`
}

// UpdateArgs contains parameters for updating a post. Nil fields are left
// untouched on the server.
type UpdateArgs struct {
	PostID        int     `json:"post_id" jsonschema:"required" jsonschema_description:"Post ID to update"`
	Title         *string `json:"title,omitempty" jsonschema_description:"New title"`
	Content       *string `json:"content,omitempty" jsonschema_description:"New content"`
	Status        *string `json:"status,omitempty" jsonschema_description:"New status"`
	Excerpt       *string `json:"excerpt,omitempty" jsonschema_description:"New excerpt"`
	Slug          *string `json:"slug,omitempty" jsonschema_description:"New slug"`
	Categories    []int   `json:"categories,omitempty" jsonschema_description:"New category IDs"`
	Tags          []int   `json:"tags,omitempty" jsonschema_description:"New tag IDs"`
	FeaturedMedia *int    `json:"featured_media,omitempty" jsonschema_description:"New featured image ID"`
	Date          *string `json:"date,omitempty" jsonschema_description:"New publication date"`
	Format        *string `json:"post_format,omitempty" jsonschema_description:"New post format"`
}

// DeleteArgs contains parameters for deleting or trashing a post.
type DeleteArgs struct {
	PostID int  `json:"post_id" jsonschema:"required" jsonschema_description:"Post ID to delete"`
	Force  bool `json:"force,omitempty" jsonschema_description:"Permanently delete instead of moving to trash"`
}

// DeleteResult confirms a deletion.
type DeleteResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	PostID  int    `json:"post_id"`
}

// ListRevisionsArgs contains parameters for listing post revisions.
type ListRevisionsArgs struct {
	PostID int `json:"post_id" jsonschema:"required" jsonschema_description:"Post ID"`
}

// ListRevisionsResult is the result of listing revisions.
type ListRevisionsResult struct {
	Revisions []Revision `json:"revisions"`
	PostID    int        `json:"post_id"`
}

// GetRevisionArgs contains parameters for fetching one revision.
type GetRevisionArgs struct {
	PostID     int `json:"post_id" jsonschema:"required" jsonschema_description:"Post ID"`
	RevisionID int `json:"revision_id" jsonschema:"required" jsonschema_description:"Revision ID"`
}

// GetRevisionResult is the result of fetching one revision.
type GetRevisionResult struct {
	Revision RevisionDetail `json:"revision"`
}

// ListCategoriesArgs contains parameters for listing categories.
type ListCategoriesArgs struct {
	Page    int    `json:"page,omitempty" jsonschema_description:"Page number (default 1)"`
	PerPage int    `json:"per_page,omitempty" jsonschema_description:"Results per page, max 100 (default 100)"`
	Search  string `json:"search,omitempty" jsonschema_description:"Search categories by name"`
}

// ListCategoriesResult is the result of listing categories.
type ListCategoriesResult struct {
	Categories []Category `json:"categories"`
}

// ListTagsArgs contains parameters for listing tags.
type ListTagsArgs struct {
	Page    int    `json:"page,omitempty" jsonschema_description:"Page number (default 1)"`
	PerPage int    `json:"per_page,omitempty" jsonschema_description:"Results per page, max 100 (default 100)"`
	Search  string `json:"search,omitempty" jsonschema_description:"Search tags by name"`
}

// ListTagsResult is the result of listing tags.
type ListTagsResult struct {
	Tags []Tag `json:"tags"`
}
