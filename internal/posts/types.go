package posts

import "github.com/crunchtools/wordpress-mcp-server/internal/wordpress"

// Summary is the flattened post representation returned by tools. Rendered
// envelopes are unwrapped and embedded author info is surfaced.
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
	Categories    []int  `json:"categories"`
	Tags          []int  `json:"tags"`
	FeaturedMedia int    `json:"featured_media"`
	Format        string `json:"format"`
	Content       string `json:"content,omitempty"`
}

// Revision is one entry in a post's revision list.
type Revision struct {
	ID       int    `json:"id"`
	Author   int    `json:"author"`
	Date     string `json:"date"`
	Modified string `json:"modified"`
	Title    string `json:"title"`
}

// RevisionDetail is a full revision including content.
type RevisionDetail struct {
	ID      int    `json:"id"`
	Author  int    `json:"author"`
	Date    string `json:"date"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Excerpt string `json:"excerpt"`
}

// Category is a flattened category term.
type Category struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Count       int    `json:"count"`
	Parent      int    `json:"parent"`
}

// Tag is a flattened tag term.
type Tag struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Count       int    `json:"count"`
}

// formatPost flattens a post response object.
func formatPost(obj map[string]any, includeContent bool) Summary {
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
		Categories:    wordpress.IntSlice(obj, "categories"),
		Tags:          wordpress.IntSlice(obj, "tags"),
		FeaturedMedia: wordpress.Int(obj, "featured_media"),
		Format:        wordpress.Str(obj, "format"),
	}
	if s.Format == "" {
		s.Format = "standard"
	}
	if includeContent {
		s.Content = wordpress.Rendered(obj["content"])
	}
	return s
}
