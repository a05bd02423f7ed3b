package pages

// ListArgs contains parameters for listing pages.
type ListArgs struct {
	Status  string `json:"status,omitempty" jsonschema_description:"Filter by status (publish, draft, pending, private, future)"`
	Search  string `json:"search,omitempty" jsonschema_description:"Search pages by keyword"`
	Parent  *int   `json:"parent,omitempty" jsonschema_description:"Filter by parent page ID"`
	Page    int    `json:"page,omitempty" jsonschema_description:"Page number (default 1)"`
	PerPage int    `json:"per_page,omitempty" jsonschema_description:"Results per page, max 100 (default 10)"`
	OrderBy string `json:"orderby,omitempty" jsonschema_description:"Sort by field (date, title, id, modified, menu_order)"`
	Order   string `json:"order,omitempty" jsonschema_description:"Sort direction (asc, desc)"`
}

// ListResult is the result of listing pages.
type ListResult struct {
	Pages   []Summary `json:"pages"`
	Page    int       `json:"page"`
	PerPage int       `json:"per_page"`
}

// GetArgs contains parameters for fetching a single page.
type GetArgs struct {
	PageID int `json:"page_id" jsonschema:"required" jsonschema_description:"Page ID"`
}

// GetResult is the result of fetching, creating or updating a page.
type GetResult struct {
	Page Summary `json:"page"`
}

// CreateArgs contains parameters for creating a page.
type CreateArgs struct {
	Title         string `json:"title" jsonschema:"required" jsonschema_description:"Page title"`
	Content       string `json:"content" jsonschema:"required" jsonschema_description:"Page content (HTML or block format)"`
	Status        string `json:"status,omitempty" jsonschema_description:"Page status - publish, draft, pending, private, future (default: draft)"`
	Excerpt       string `json:"excerpt,omitempty" jsonschema_description:"Page excerpt"`
	Slug          string `json:"slug,omitempty" jsonschema_description:"URL slug"`
	Parent        int    `json:"parent,omitempty" jsonschema_description:"Parent page ID"`
	MenuOrder     *int   `json:"menu_order,omitempty" jsonschema_description:"Menu order"`
	Template      string `json:"template,omitempty" jsonschema_description:"Page template file"`
	FeaturedMedia int    `json:"featured_media,omitempty" jsonschema_description:"Featured image media ID"`
	Date          string `json:"date,omitempty" jsonschema_description:"Publication date (ISO 8601)"`
}

// UpdateArgs contains parameters for updating a page. Nil fields are left
// untouched on the server.
type UpdateArgs struct {
	PageID        int     `json:"page_id" jsonschema:"required" jsonschema_description:"Page ID to update"`
	Title         *string `json:"title,omitempty" jsonschema_description:"New title"`
	Content       *string `json:"content,omitempty" jsonschema_description:"New content"`
	Status        *string `json:"status,omitempty" jsonschema_description:"New status"`
	Excerpt       *string `json:"excerpt,omitempty" jsonschema_description:"New excerpt"`
	Slug          *string `json:"slug,omitempty" jsonschema_description:"New slug"`
	Parent        *int    `json:"parent,omitempty" jsonschema_description:"New parent page ID"`
	MenuOrder     *int    `json:"menu_order,omitempty" jsonschema_description:"New menu order"`
	Template      *string `json:"template,omitempty" jsonschema_description:"New template"`
	FeaturedMedia *int    `json:"featured_media,omitempty" jsonschema_description:"New featured image ID"`
	Date          *string `json:"date,omitempty" jsonschema_description:"New publication date"`
}

// DeleteArgs contains parameters for deleting or trashing a page.
type DeleteArgs struct {
	PageID int  `json:"page_id" jsonschema:"required" jsonschema_description:"Page ID to delete"`
	Force  bool `json:"force,omitempty" jsonschema_description:"Permanently delete instead of moving to trash"`
}

// DeleteResult confirms a deletion.
type DeleteResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	PageID  int    `json:"page_id"`
}

// ListRevisionsArgs contains parameters for listing page revisions.
type ListRevisionsArgs struct {
	PageID int `json:"page_id" jsonschema:"required" jsonschema_description:"Page ID"`
}

// ListRevisionsResult is the result of listing page revisions.
type ListRevisionsResult struct {
	Revisions []Revision `json:"revisions"`
	PageID    int        `json:"page_id"`
}
