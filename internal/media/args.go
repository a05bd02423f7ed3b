package media

// ListArgs contains parameters for listing media items.
type ListArgs struct {
	MediaType string `json:"media_type,omitempty" jsonschema_description:"Filter by type (image, video, audio, application)"`
	MimeType  string `json:"mime_type,omitempty" jsonschema_description:"Filter by MIME type (e.g., image/jpeg)"`
	Search    string `json:"search,omitempty" jsonschema_description:"Search media by keyword"`
	Page      int    `json:"page,omitempty" jsonschema_description:"Page number (default 1)"`
	PerPage   int    `json:"per_page,omitempty" jsonschema_description:"Results per page, max 100 (default 10)"`
	OrderBy   string `json:"orderby,omitempty" jsonschema_description:"Sort by field (date, title, id)"`
	Order     string `json:"order,omitempty" jsonschema_description:"Sort direction (asc, desc)"`
}

// ListResult is the result of listing media items.
type ListResult struct {
	Media   []Summary `json:"media"`
	Page    int       `json:"page"`
	PerPage int       `json:"per_page"`
}

// GetArgs contains parameters for fetching a single media item.
type GetArgs struct {
	MediaID int `json:"media_id" jsonschema:"required" jsonschema_description:"Media ID"`
}

// GetResult is the result of fetching, uploading or updating a media item.
type GetResult struct {
	Media Summary `json:"media"`
}

// UploadArgs contains parameters for uploading a file from a local path.
// The file is read from disk, avoiding large base64 payloads over the MCP
// protocol.
type UploadArgs struct {
	FilePath    string `json:"file_path" jsonschema:"required" jsonschema_description:"Absolute path to the file on disk (e.g., /tmp/mcp-uploads/image.png)"`
	Title       string `json:"title,omitempty" jsonschema_description:"Media title"`
	AltText     string `json:"alt_text,omitempty" jsonschema_description:"Alt text for accessibility"`
	Caption     string `json:"caption,omitempty" jsonschema_description:"Media caption"`
	Description string `json:"description,omitempty" jsonschema_description:"Media description"`
}

// UpdateArgs contains parameters for updating media metadata. Nil fields are
// left untouched on the server.
type UpdateArgs struct {
	MediaID     int     `json:"media_id" jsonschema:"required" jsonschema_description:"Media ID to update"`
	Title       *string `json:"title,omitempty" jsonschema_description:"New title"`
	AltText     *string `json:"alt_text,omitempty" jsonschema_description:"New alt text"`
	Caption     *string `json:"caption,omitempty" jsonschema_description:"New caption"`
	Description *string `json:"description,omitempty" jsonschema_description:"New description"`
}

// DeleteArgs contains parameters for deleting a media item. The remote API
// has no trash state for media, so deletion is always permanent regardless
// of the flag.
type DeleteArgs struct {
	MediaID int  `json:"media_id" jsonschema:"required" jsonschema_description:"Media ID to delete"`
	Force   bool `json:"force,omitempty" jsonschema_description:"Ignored; media deletion is always permanent"`
}

// DeleteResult confirms a deletion.
type DeleteResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	MediaID int    `json:"media_id"`
}

// GetURLArgs contains parameters for resolving a media item's public URL.
type GetURLArgs struct {
	MediaID int    `json:"media_id" jsonschema:"required" jsonschema_description:"Media ID"`
	Size    string `json:"size,omitempty" jsonschema_description:"Image size (thumbnail, medium, large, full; default full)"`
}

// GetURLResult is the resolved URL for a media item.
type GetURLResult struct {
	MediaID        int      `json:"media_id"`
	URL            string   `json:"url"`
	Size           string   `json:"size"`
	AvailableSizes []string `json:"available_sizes"`
	MimeType       string   `json:"mime_type"`
}
