package tools

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/crunchtools/wordpress-mcp-server/internal/comments"
	"github.com/crunchtools/wordpress-mcp-server/internal/media"
	"github.com/crunchtools/wordpress-mcp-server/internal/pages"
	"github.com/crunchtools/wordpress-mcp-server/internal/posts"
	"github.com/crunchtools/wordpress-mcp-server/internal/site"
	"github.com/crunchtools/wordpress-mcp-server/internal/wordpress"
	"github.com/crunchtools/wordpress-mcp-server/metrics"
	"github.com/crunchtools/wordpress-mcp-server/tracing"
)

// HandlerRegistry provides type-safe tool registration by mapping
// tool names to their concrete handler implementations.
type HandlerRegistry struct {
	posts    *posts.Client
	pages    *pages.Client
	media    *media.Client
	comments *comments.Client
	site     *site.Client
	logger   *slog.Logger
}

// NewHandlerRegistry creates a new handler registry.
func NewHandlerRegistry(postsClient *posts.Client, pagesClient *pages.Client, mediaClient *media.Client, commentsClient *comments.Client, siteClient *site.Client, logger *slog.Logger) *HandlerRegistry {
	return &HandlerRegistry{
		posts:    postsClient,
		pages:    pagesClient,
		media:    mediaClient,
		comments: commentsClient,
		site:     siteClient,
		logger:   logger,
	}
}

// RegisterAll registers all tools with the MCP server.
func (h *HandlerRegistry) RegisterAll(server *mcp.Server) {
	for _, spec := range AllTools {
		h.registerByName(server, spec)
	}
	h.logger.Info("Registered all tools", "count", len(AllTools))
}

// registerByName dispatches to the correct typed registration function.
func (h *HandlerRegistry) registerByName(server *mcp.Server, spec ToolSpec) {
	tool := h.buildTool(spec)

	switch spec.Method {
	// Post tools
	case "ListPosts":
		register(h, server, tool, spec, h.posts.List)
	case "GetPost":
		register(h, server, tool, spec, h.posts.GetPost)
	case "SearchPosts":
		register(h, server, tool, spec, h.posts.Search)
	case "CreatePost":
		register(h, server, tool, spec, h.posts.Create)
	case "UpdatePost":
		register(h, server, tool, spec, h.posts.Update)
	case "DeletePost":
		register(h, server, tool, spec, h.posts.DeletePost)
	case "ListPostRevisions":
		register(h, server, tool, spec, h.posts.ListRevisions)
	case "GetPostRevision":
		register(h, server, tool, spec, h.posts.GetRevision)
	case "ListCategories":
		register(h, server, tool, spec, h.posts.ListCategories)
	case "ListTags":
		register(h, server, tool, spec, h.posts.ListTags)

	// Page tools
	case "ListPages":
		register(h, server, tool, spec, h.pages.List)
	case "GetPage":
		register(h, server, tool, spec, h.pages.GetPage)
	case "CreatePage":
		register(h, server, tool, spec, h.pages.Create)
	case "UpdatePage":
		register(h, server, tool, spec, h.pages.Update)
	case "DeletePage":
		register(h, server, tool, spec, h.pages.DeletePage)
	case "ListPageRevisions":
		register(h, server, tool, spec, h.pages.ListRevisions)

	// Media tools
	case "ListMedia":
		register(h, server, tool, spec, h.media.ListMCP)
	case "GetMedia":
		register(h, server, tool, spec, h.media.GetMediaMCP)
	case "UploadMedia":
		register(h, server, tool, spec, h.media.UploadMCP)
	case "UpdateMedia":
		register(h, server, tool, spec, h.media.UpdateMCP)
	case "DeleteMedia":
		register(h, server, tool, spec, h.media.DeleteMediaMCP)
	case "GetMediaURL":
		register(h, server, tool, spec, h.media.GetURLMCP)

	// Comment tools
	case "ListComments":
		register(h, server, tool, spec, h.comments.ListMCP)
	case "GetComment":
		register(h, server, tool, spec, h.comments.GetCommentMCP)
	case "CreateComment":
		register(h, server, tool, spec, h.comments.CreateMCP)
	case "UpdateComment":
		register(h, server, tool, spec, h.comments.UpdateMCP)
	case "DeleteComment":
		register(h, server, tool, spec, h.comments.DeleteCommentMCP)
	case "ModerateComment":
		register(h, server, tool, spec, h.comments.ModerateMCP)

	// Site tools
	case "GetSiteInfo":
		register(h, server, tool, spec, h.site.InfoMCP)
	case "TestConnection":
		register(h, server, tool, spec, h.site.TestConnectionMCP)

	default:
		h.logger.Error("Unknown method, tool not registered", "method", spec.Method, "tool", spec.Name)
	}
}

// buildTool creates an mcp.Tool from a ToolSpec.
func (h *HandlerRegistry) buildTool(spec ToolSpec) *mcp.Tool {
	annotations := &mcp.ToolAnnotations{
		Title:          spec.Title,
		ReadOnlyHint:   spec.ReadOnly,
		IdempotentHint: spec.Idempotent,
	}
	if spec.Destructive {
		annotations.DestructiveHint = ptr(true)
	}
	if spec.OpenWorld {
		annotations.OpenWorldHint = ptr(true)
	}

	return &mcp.Tool{
		Name:        spec.Name,
		Description: spec.Description,
		Annotations: annotations,
	}
}

// register is a generic helper that registers a tool with the MCP server.
// It wraps the client method with panic recovery, metrics, tracing, and logging.
func register[Args, Result any](
	h *HandlerRegistry,
	server *mcp.Server,
	tool *mcp.Tool,
	spec ToolSpec,
	method func(context.Context, Args) (Result, error),
) {
	mcp.AddTool(server, tool, func(ctx context.Context, req *mcp.CallToolRequest, args Args) (*mcp.CallToolResult, Result, error) {
		defer h.recoverPanic(spec.Name)

		// Start trace span
		ctx, span := tracing.StartSpan(ctx, "mcp.tool."+spec.Name)
		defer span.End()

		span.SetAttributes(
			attribute.String("mcp.tool.name", spec.Name),
			attribute.String("mcp.tool.resource", spec.Resource),
			attribute.Bool("mcp.tool.readonly", spec.ReadOnly),
		)

		// Track in-flight requests
		metrics.RequestInFlight.WithLabelValues(spec.Name).Inc()
		defer metrics.RequestInFlight.WithLabelValues(spec.Name).Dec()

		start := time.Now()
		result, err := method(ctx, args)
		duration := time.Since(start).Seconds()

		span.SetAttributes(attribute.Float64("mcp.tool.duration_seconds", duration))

		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			metrics.RecordRequest(spec.Name, duration, false)
			recordFailure(spec.Name, err)
			var zero Result
			return nil, zero, fmt.Errorf("%s failed: %w", spec.Name, err)
		}

		span.SetStatus(codes.Ok, "")
		metrics.RecordRequest(spec.Name, duration, true)
		h.logExecution(spec, args, result)
		return nil, result, nil
	})
}

// recordFailure routes permission and rate-limit failures to their
// dedicated counters.
func recordFailure(tool string, err error) {
	var permErr *wordpress.PermissionDeniedError
	if errors.As(err, &permErr) {
		metrics.AuthFailures.WithLabelValues(tool).Inc()
		return
	}
	var rateErr *wordpress.RateLimitError
	if errors.As(err, &rateErr) {
		metrics.RateLimitHits.WithLabelValues(tool).Inc()
	}
}

// recoverPanic recovers from panics in tool handlers.
func (h *HandlerRegistry) recoverPanic(toolName string) {
	if rec := recover(); rec != nil {
		metrics.PanicsRecovered.WithLabelValues(toolName).Inc()
		h.logger.Error("Panic recovered",
			"tool", toolName,
			"panic", rec,
			"stack", string(debug.Stack()))
	}
}

// logExecution logs tool execution details.
func (h *HandlerRegistry) logExecution(spec ToolSpec, args, result any) {
	attrs := []any{"tool", spec.Name, "resource", spec.Resource}

	// Add extractable fields from args using type assertions
	switch a := args.(type) {
	// Post args
	case posts.ListArgs:
		if a.Search != "" {
			attrs = append(attrs, "search", a.Search)
		}
		if a.Status != "" {
			attrs = append(attrs, "status", a.Status)
		}
	case posts.GetArgs:
		attrs = append(attrs, "post_id", a.PostID)
	case posts.SearchArgs:
		attrs = append(attrs, "keyword", a.Keyword)
	case posts.CreateArgs:
		attrs = append(attrs, "title", a.Title)
	case posts.UpdateArgs:
		attrs = append(attrs, "post_id", a.PostID)
	case posts.DeleteArgs:
		attrs = append(attrs, "post_id", a.PostID, "force", a.Force)
	case posts.ListRevisionsArgs:
		attrs = append(attrs, "post_id", a.PostID)
	case posts.GetRevisionArgs:
		attrs = append(attrs, "post_id", a.PostID, "revision_id", a.RevisionID)
	// Page args
	case pages.ListArgs:
		if a.Search != "" {
			attrs = append(attrs, "search", a.Search)
		}
	case pages.GetArgs:
		attrs = append(attrs, "page_id", a.PageID)
	case pages.CreateArgs:
		attrs = append(attrs, "title", a.Title)
	case pages.UpdateArgs:
		attrs = append(attrs, "page_id", a.PageID)
	case pages.DeleteArgs:
		attrs = append(attrs, "page_id", a.PageID, "force", a.Force)
	case pages.ListRevisionsArgs:
		attrs = append(attrs, "page_id", a.PageID)
	// Media args
	case media.GetArgs:
		attrs = append(attrs, "media_id", a.MediaID)
	case media.UploadArgs:
		attrs = append(attrs, "file_path", a.FilePath)
	case media.UpdateArgs:
		attrs = append(attrs, "media_id", a.MediaID)
	case media.DeleteArgs:
		attrs = append(attrs, "media_id", a.MediaID)
	case media.GetURLArgs:
		attrs = append(attrs, "media_id", a.MediaID, "size", a.Size)
	// Comment args
	case comments.ListArgs:
		if a.PostID != 0 {
			attrs = append(attrs, "post_id", a.PostID)
		}
	case comments.GetArgs:
		attrs = append(attrs, "comment_id", a.CommentID)
	case comments.CreateArgs:
		attrs = append(attrs, "post_id", a.PostID)
	case comments.UpdateArgs:
		attrs = append(attrs, "comment_id", a.CommentID)
	case comments.DeleteArgs:
		attrs = append(attrs, "comment_id", a.CommentID, "force", a.Force)
	case comments.ModerateArgs:
		attrs = append(attrs, "comment_id", a.CommentID, "action", a.Action)
	}

	// Add extractable fields from result
	switch r := result.(type) {
	// Post results
	case posts.ListResult:
		attrs = append(attrs, "results_count", len(r.Posts))
	case posts.GetResult:
		attrs = append(attrs, "result_id", r.Post.ID)
	case posts.ListRevisionsResult:
		attrs = append(attrs, "revisions", len(r.Revisions))
	case posts.ListCategoriesResult:
		attrs = append(attrs, "categories", len(r.Categories))
	case posts.ListTagsResult:
		attrs = append(attrs, "tags", len(r.Tags))
	// Page results
	case pages.ListResult:
		attrs = append(attrs, "results_count", len(r.Pages))
	case pages.GetResult:
		attrs = append(attrs, "result_id", r.Page.ID)
	case pages.ListRevisionsResult:
		attrs = append(attrs, "revisions", len(r.Revisions))
	// Media results
	case media.ListResult:
		attrs = append(attrs, "results_count", len(r.Media))
	case media.GetResult:
		attrs = append(attrs, "result_id", r.Media.ID)
	case media.GetURLResult:
		attrs = append(attrs, "url", r.URL)
	// Comment results
	case comments.ListResult:
		attrs = append(attrs, "results_count", len(r.Comments))
	case comments.GetResult:
		attrs = append(attrs, "result_id", r.Comment.ID)
	case comments.ModerateResult:
		attrs = append(attrs, "status", r.Status)
	// Site results
	case site.TestResult:
		attrs = append(attrs, "connected", r.Connected, "user", r.DisplayName)
	}

	h.logger.Info("Tool executed", attrs...)
}
