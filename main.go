// WordPress MCP Server - A Model Context Protocol server for WordPress sites
// Provides tools for managing posts, pages, media, and comments over the REST API
package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/crunchtools/wordpress-mcp-server/internal/comments"
	"github.com/crunchtools/wordpress-mcp-server/internal/media"
	"github.com/crunchtools/wordpress-mcp-server/internal/pages"
	"github.com/crunchtools/wordpress-mcp-server/internal/posts"
	"github.com/crunchtools/wordpress-mcp-server/internal/site"
	"github.com/crunchtools/wordpress-mcp-server/internal/wordpress"
	"github.com/crunchtools/wordpress-mcp-server/tools"
	"github.com/crunchtools/wordpress-mcp-server/tracing"
)

const (
	ServerName    = "wordpress-mcp-server"
	ServerVersion = "1.0.0"
)

func main() {
	// Configure logging to stderr (stdout is used for MCP protocol)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Load configuration from environment; the server must not start with
	// incomplete credentials
	config, err := wordpress.LoadConfig(logger)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	// Initialize tracing
	shutdownTracing, err := tracing.Setup(ctx, tracing.DefaultConfig())
	if err != nil {
		log.Fatalf("Failed to initialize tracing: %v", err)
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			logger.Error("Tracing shutdown failed", "error", err)
		}
	}()

	// Create the shared WordPress API client and the per-resource clients
	apiClient := wordpress.NewClient(config, wordpress.WithLogger(logger))
	defer apiClient.Close()

	registry := tools.NewHandlerRegistry(
		posts.NewClient(apiClient),
		pages.NewClient(apiClient),
		media.NewClient(apiClient),
		comments.NewClient(apiClient),
		site.NewClient(apiClient),
		logger,
	)

	// Create MCP server
	server := mcp.NewServer(&mcp.Implementation{
		Name:    ServerName,
		Version: ServerVersion,
	}, &mcp.ServerOptions{
		Logger: logger,
		Instructions: `WordPress MCP Server provides tools for managing a WordPress site over its REST API.

Available tools:
- wordpress_list_posts / wordpress_get_post / wordpress_search_posts: Browse and read blog posts
- wordpress_create_post / wordpress_update_post / wordpress_delete_post: Author and manage posts
- wordpress_list_post_revisions / wordpress_get_post_revision: Post edit history
- wordpress_list_categories / wordpress_list_tags: Taxonomy terms for filtering and authoring
- wordpress_list_pages / wordpress_get_page: Browse and read static pages
- wordpress_create_page / wordpress_update_page / wordpress_delete_page: Manage pages
- wordpress_list_page_revisions: Page edit history
- wordpress_list_media / wordpress_get_media / wordpress_get_media_url: Browse the media library
- wordpress_upload_media / wordpress_update_media / wordpress_delete_media: Manage media (deletion is permanent)
- wordpress_list_comments / wordpress_get_comment: Browse comments
- wordpress_create_comment / wordpress_update_comment / wordpress_delete_comment: Manage comments
- wordpress_moderate_comment: Approve, hold, spam or trash a comment
- wordpress_get_site_info / wordpress_test_connection: Site metadata and credential check

Configure via environment variables:
- WORDPRESS_URL: Site URL (e.g., https://example.com)
- WORDPRESS_USERNAME: WordPress username
- WORDPRESS_APP_PASSWORD: Application password (Users > Profile > Application Passwords)`,
	})

	// Register all tools
	registry.RegisterAll(server)

	// Run server on stdio transport
	logger.Info("Starting WordPress MCP Server",
		"name", ServerName,
		"version", ServerVersion,
		"site_url", config.BaseURL,
	)

	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
