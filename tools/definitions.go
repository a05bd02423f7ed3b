package tools

// AllTools contains all tool specifications for the WordPress MCP server.
// Tools are organized by resource for easier maintenance.
// Tool descriptions follow a structured format for optimal LLM tool selection:
// - USE WHEN: Natural language triggers
// - NOT FOR: Disambiguation from similar tools
// - PARAMETERS: Key arguments with defaults
// - RETURNS: What the tool returns
var AllTools = []ToolSpec{
	// ==========================================================================
	// POST TOOLS
	// ==========================================================================
	{
		Name:     "wordpress_list_posts",
		Method:   "ListPosts",
		Title:    "List Posts",
		Resource: "posts",
		Description: `List blog posts with filtering, sorting and pagination.

USE WHEN: User asks "show recent posts", "list draft posts", "what posts are in category X".

NOT FOR: Full-text search by keyword (use wordpress_search_posts), static pages (use wordpress_list_pages).

PARAMETERS:
- status: publish, future, draft, pending, private (optional)
- search: Keyword filter (optional)
- categories / tags: Term IDs (optional)
- page: Page number (default 1)
- per_page: Results per page, max 100 (default 10)
- orderby / order: Sort field and direction (default date desc)

RETURNS: Post summaries with ID, title, status, excerpt, author and link.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "wordpress_get_post",
		Method:   "GetPost",
		Title:    "Get Post",
		Resource: "posts",
		Description: `Fetch one post by ID, including its full content.

USE WHEN: User asks "show me post 42", "read that post", or a post ID is already known.

NOT FOR: Finding posts by keyword (use wordpress_search_posts).

PARAMETERS:
- post_id: Post ID (required)

RETURNS: The full post with rendered content, metadata and author.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "wordpress_search_posts",
		Method:   "SearchPosts",
		Title:    "Search Posts",
		Resource: "posts",
		Description: `Search posts by keyword across titles and content.

USE WHEN: User asks "find posts about X", "is there a post mentioning X".

NOT FOR: Listing by status or category alone (use wordpress_list_posts), pages (use wordpress_list_pages with search).

PARAMETERS:
- query: Search text (required)
- page / per_page: Pagination (defaults 1 / 10, max 100)

RETURNS: Matching post summaries ordered by relevance.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "wordpress_create_post",
		Method:   "CreatePost",
		Title:    "Create Post",
		Resource: "posts",
		Description: `Create a new blog post.

USE WHEN: User asks "write a post about X", "create a draft titled Y", "publish a new article".

NOT FOR: Editing an existing post (use wordpress_update_post), static pages (use wordpress_create_page).

PARAMETERS:
- title: Post title (required)
- content: Post body, HTML allowed (required)
- status: publish, future, draft, pending, private (default draft)
- excerpt, categories, tags, format: Optional metadata

RETURNS: The created post with its new ID and link.`,
		OpenWorld: true,
	},
	{
		Name:     "wordpress_update_post",
		Method:   "UpdatePost",
		Title:    "Update Post",
		Resource: "posts",
		Description: `Update fields on an existing post. Only supplied fields change.

USE WHEN: User asks "change the title of post 42", "publish that draft", "fix the content".

NOT FOR: Creating posts (use wordpress_create_post), deleting (use wordpress_delete_post).

PARAMETERS:
- post_id: Post ID (required)
- title, content, excerpt, status, categories, tags, format: Fields to change (at least one required)

RETURNS: The updated post.`,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "wordpress_delete_post",
		Method:   "DeletePost",
		Title:    "Delete Post",
		Resource: "posts",
		Description: `Delete a post, moving it to trash by default.

USE WHEN: User asks "delete post 42", "remove that article".

NOT FOR: Unpublishing while keeping the post (use wordpress_update_post with status draft).

PARAMETERS:
- post_id: Post ID (required)
- force: Permanently delete, bypassing trash (default false)

RETURNS: Confirmation with the deleted post ID.`,
		Destructive: true,
		Idempotent:  true,
		OpenWorld:   true,
	},
	{
		Name:     "wordpress_list_post_revisions",
		Method:   "ListPostRevisions",
		Title:    "List Post Revisions",
		Resource: "posts",
		Description: `List the saved revision history of a post.

USE WHEN: User asks "what changed in post 42", "show edit history".

NOT FOR: Reading one revision's content (use wordpress_get_post_revision).

PARAMETERS:
- post_id: Post ID (required)

RETURNS: Revisions with ID, author and modification date, newest first.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "wordpress_get_post_revision",
		Method:   "GetPostRevision",
		Title:    "Get Post Revision",
		Resource: "posts",
		Description: `Fetch the full content of one specific post revision.

USE WHEN: User asks "show the previous version of post 42", after picking a revision from wordpress_list_post_revisions.

NOT FOR: The current post content (use wordpress_get_post).

PARAMETERS:
- post_id: Post ID (required)
- revision_id: Revision ID (required)

RETURNS: The revision's title, content and modification date.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "wordpress_list_categories",
		Method:   "ListCategories",
		Title:    "List Categories",
		Resource: "posts",
		Description: `List post categories.

USE WHEN: User asks "what categories exist", or a category ID is needed for filtering or creating posts.

NOT FOR: Tags (use wordpress_list_tags).

PARAMETERS:
- search: Filter by name (optional)
- per_page: Results per page, max 100 (default 100)

RETURNS: Categories with ID, name, slug and post count.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "wordpress_list_tags",
		Method:   "ListTags",
		Title:    "List Tags",
		Resource: "posts",
		Description: `List post tags.

USE WHEN: User asks "what tags exist", or a tag ID is needed for filtering or creating posts.

NOT FOR: Categories (use wordpress_list_categories).

PARAMETERS:
- search: Filter by name (optional)
- per_page: Results per page, max 100 (default 100)

RETURNS: Tags with ID, name, slug and post count.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},

	// ==========================================================================
	// PAGE TOOLS
	// ==========================================================================
	{
		Name:     "wordpress_list_pages",
		Method:   "ListPages",
		Title:    "List Pages",
		Resource: "pages",
		Description: `List static pages with filtering and pagination.

USE WHEN: User asks "what pages does the site have", "list child pages of X".

NOT FOR: Blog posts (use wordpress_list_posts).

PARAMETERS:
- status: publish, future, draft, pending, private (optional)
- search: Keyword filter (optional)
- parent: Restrict to children of a page ID (optional)
- page / per_page: Pagination (defaults 1 / 10, max 100)
- orderby / order: Sort field and direction (menu_order supported)

RETURNS: Page summaries with ID, title, status, parent and link.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "wordpress_get_page",
		Method:   "GetPage",
		Title:    "Get Page",
		Resource: "pages",
		Description: `Fetch one page by ID, including its full content.

USE WHEN: User asks "show the About page" and its ID is known, "read page 7".

NOT FOR: Posts (use wordpress_get_post), finding pages by name (use wordpress_list_pages with search).

PARAMETERS:
- page_id: Page ID (required)

RETURNS: The full page with rendered content, template and parent.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "wordpress_create_page",
		Method:   "CreatePage",
		Title:    "Create Page",
		Resource: "pages",
		Description: `Create a new static page.

USE WHEN: User asks "add a Contact page", "create a child page under X".

NOT FOR: Blog posts (use wordpress_create_post).

PARAMETERS:
- title: Page title (required)
- content: Page body, HTML allowed (required)
- status: publish, future, draft, pending, private (default draft)
- parent, menu_order, template: Optional hierarchy and layout

RETURNS: The created page with its new ID and link.`,
		OpenWorld: true,
	},
	{
		Name:     "wordpress_update_page",
		Method:   "UpdatePage",
		Title:    "Update Page",
		Resource: "pages",
		Description: `Update fields on an existing page. Only supplied fields change.

USE WHEN: User asks "edit the About page", "move page 7 under page 3".

NOT FOR: Posts (use wordpress_update_post).

PARAMETERS:
- page_id: Page ID (required)
- title, content, status, parent, menu_order, template: Fields to change (at least one required)

RETURNS: The updated page.`,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "wordpress_delete_page",
		Method:   "DeletePage",
		Title:    "Delete Page",
		Resource: "pages",
		Description: `Delete a page, moving it to trash by default.

USE WHEN: User asks "delete the old landing page", "remove page 7".

NOT FOR: Posts (use wordpress_delete_post).

PARAMETERS:
- page_id: Page ID (required)
- force: Permanently delete, bypassing trash (default false)

RETURNS: Confirmation with the deleted page ID.`,
		Destructive: true,
		Idempotent:  true,
		OpenWorld:   true,
	},
	{
		Name:     "wordpress_list_page_revisions",
		Method:   "ListPageRevisions",
		Title:    "List Page Revisions",
		Resource: "pages",
		Description: `List the saved revision history of a page.

USE WHEN: User asks "show edit history of the About page".

NOT FOR: Post revisions (use wordpress_list_post_revisions).

PARAMETERS:
- page_id: Page ID (required)

RETURNS: Revisions with ID, author and modification date, newest first.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},

	// ==========================================================================
	// MEDIA TOOLS
	// ==========================================================================
	{
		Name:     "wordpress_list_media",
		Method:   "ListMedia",
		Title:    "List Media",
		Resource: "media",
		Description: `List media library items with type and keyword filters.

USE WHEN: User asks "what images are uploaded", "list PDFs in the media library".

NOT FOR: Resolving a known item's URL (use wordpress_get_media_url).

PARAMETERS:
- media_type: image, video, audio, application (optional)
- mime_type: Exact MIME type like image/jpeg (optional)
- search: Keyword filter (optional)
- page / per_page: Pagination (defaults 1 / 10, max 100)

RETURNS: Media summaries with ID, title, type and source URL.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "wordpress_get_media",
		Method:   "GetMedia",
		Title:    "Get Media",
		Resource: "media",
		Description: `Fetch one media item with its full details, including generated sizes.

USE WHEN: User asks "show details of image 15", "what sizes exist for that image".

NOT FOR: Just the URL (use wordpress_get_media_url).

PARAMETERS:
- media_id: Media ID (required)

RETURNS: The media item with metadata, dimensions and available sizes.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "wordpress_upload_media",
		Method:   "UploadMedia",
		Title:    "Upload Media",
		Resource: "media",
		Description: `Upload a file from the local filesystem to the media library.

USE WHEN: User asks "upload this image", "add /tmp/mcp-uploads/photo.png to the library".

NOT FOR: Editing metadata of an existing item (use wordpress_update_media).

PARAMETERS:
- file_path: Absolute path to the file on disk (required, max 50 MiB)
- title, alt_text, caption, description: Optional metadata

RETURNS: The created media item with its ID and source URL.`,
		OpenWorld: true,
	},
	{
		Name:     "wordpress_update_media",
		Method:   "UpdateMedia",
		Title:    "Update Media",
		Resource: "media",
		Description: `Update metadata on an existing media item. Only supplied fields change.

USE WHEN: User asks "set alt text on image 15", "rename that upload".

NOT FOR: Uploading files (use wordpress_upload_media).

PARAMETERS:
- media_id: Media ID (required)
- title, alt_text, caption, description: Fields to change (at least one required)

RETURNS: The updated media item.`,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "wordpress_delete_media",
		Method:   "DeleteMedia",
		Title:    "Delete Media",
		Resource: "media",
		Description: `Permanently delete a media item. Media has no trash; deletion cannot be undone.

USE WHEN: User asks "delete image 15", "remove that upload".

NOT FOR: Posts or pages (use their delete tools).

PARAMETERS:
- media_id: Media ID (required)

RETURNS: Confirmation with the deleted media ID.`,
		Destructive: true,
		Idempotent:  true,
		OpenWorld:   true,
	},
	{
		Name:     "wordpress_get_media_url",
		Method:   "GetMediaURL",
		Title:    "Get Media URL",
		Resource: "media",
		Description: `Resolve the public URL of a media item at a given image size.

USE WHEN: User asks "give me the URL for image 15", "thumbnail link for that image".

NOT FOR: Full metadata (use wordpress_get_media).

PARAMETERS:
- media_id: Media ID (required)
- size: thumbnail, medium, large, full (default full)

RETURNS: The URL at the requested size, falling back to the original when the size does not exist.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},

	// ==========================================================================
	// COMMENT TOOLS
	// ==========================================================================
	{
		Name:     "wordpress_list_comments",
		Method:   "ListComments",
		Title:    "List Comments",
		Resource: "comments",
		Description: `List comments with post, status and keyword filters.

USE WHEN: User asks "show comments on post 42", "any comments awaiting moderation".

NOT FOR: Reading one known comment (use wordpress_get_comment).

PARAMETERS:
- post_id: Restrict to one post (optional)
- status: approved, hold, spam, trash (default approved)
- search: Keyword filter (optional)
- page / per_page: Pagination (defaults 1 / 10, max 100)

RETURNS: Comment summaries with ID, author, content and status.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "wordpress_get_comment",
		Method:   "GetComment",
		Title:    "Get Comment",
		Resource: "comments",
		Description: `Fetch one comment by ID.

USE WHEN: A comment ID is known from a listing and its full content is needed.

NOT FOR: Browsing comments (use wordpress_list_comments).

PARAMETERS:
- comment_id: Comment ID (required)

RETURNS: The comment with author, content, status and post.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "wordpress_create_comment",
		Method:   "CreateComment",
		Title:    "Create Comment",
		Resource: "comments",
		Description: `Post a new comment or threaded reply on a post.

USE WHEN: User asks "reply to that comment", "comment on post 42".

NOT FOR: Editing existing comments (use wordpress_update_comment).

PARAMETERS:
- post_id: Post to comment on (required)
- content: Comment text (required)
- parent: Parent comment ID for replies (optional)
- author_name, author_email: Override displayed identity (optional)

RETURNS: The created comment with its new ID.`,
		OpenWorld: true,
	},
	{
		Name:     "wordpress_update_comment",
		Method:   "UpdateComment",
		Title:    "Update Comment",
		Resource: "comments",
		Description: `Edit a comment's content or status.

USE WHEN: User asks "fix the typo in comment 9", "change its status".

NOT FOR: Moderation verbs like approve/spam (use wordpress_moderate_comment).

PARAMETERS:
- comment_id: Comment ID (required)
- content: New text (optional)
- status: approved, hold, spam, trash (optional; at least one field required)

RETURNS: The updated comment.`,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "wordpress_delete_comment",
		Method:   "DeleteComment",
		Title:    "Delete Comment",
		Resource: "comments",
		Description: `Delete a comment, moving it to trash by default.

USE WHEN: User asks "delete comment 9", "remove that comment entirely".

NOT FOR: Marking as spam while keeping it (use wordpress_moderate_comment).

PARAMETERS:
- comment_id: Comment ID (required)
- force: Permanently delete, bypassing trash (default false)

RETURNS: Confirmation with the deleted comment ID.`,
		Destructive: true,
		Idempotent:  true,
		OpenWorld:   true,
	},
	{
		Name:     "wordpress_moderate_comment",
		Method:   "ModerateComment",
		Title:    "Moderate Comment",
		Resource: "comments",
		Description: `Apply a moderation action to a comment.

USE WHEN: User asks "approve that comment", "mark comment 9 as spam", "hold it for review".

NOT FOR: Editing content (use wordpress_update_comment), permanent deletion (use wordpress_delete_comment with force).

PARAMETERS:
- comment_id: Comment ID (required)
- action: approve, hold, spam, trash (required)

RETURNS: Confirmation with the comment's new status.`,
		Idempotent: true,
		OpenWorld:  true,
	},

	// ==========================================================================
	// SITE TOOLS
	// ==========================================================================
	{
		Name:     "wordpress_get_site_info",
		Method:   "GetSiteInfo",
		Title:    "Get Site Info",
		Resource: "site",
		Description: `Fetch site settings: title, description, language, timezone.

USE WHEN: User asks "what site is this", "what's the site title".

NOT FOR: Checking whether credentials work (use wordpress_test_connection).

PARAMETERS: none

RETURNS: Site settings, or the configured URL alone when settings require an administrator.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "wordpress_test_connection",
		Method:   "TestConnection",
		Title:    "Test Connection",
		Resource: "site",
		Description: `Verify connectivity and credentials with an authenticated round-trip.

USE WHEN: User asks "is the connection working", "which user am I", or before a batch of write operations.

NOT FOR: Site metadata (use wordpress_get_site_info).

PARAMETERS: none

RETURNS: The authenticated user's identity, roles and key capabilities.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
}
