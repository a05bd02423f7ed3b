package wordpress

import (
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"strings"
)

// APIPathPrefix is the WordPress REST API namespace. It is hardcoded so no
// caller input can redirect requests outside the fixed API path.
const APIPathPrefix = "/wp-json/wp/v2"

// DefaultUploadDir is where a sandboxed deployment is expected to mount
// files for the upload tool.
const DefaultUploadDir = "/tmp/mcp-uploads"

// Config holds the WordPress connection settings. Immutable after LoadConfig.
type Config struct {
	// BaseURL is scheme+host of the site, no trailing slash, no path.
	BaseURL string

	// Username identifies the account; safe to log.
	Username string

	// AppPassword is the application password (a scoped, revocable secret
	// distinct from the login password).
	AppPassword Secret

	// UploadDir is where the upload tool expects files to be mounted.
	UploadDir string
}

// LoadConfig reads configuration from environment variables.
// WORDPRESS_URL, WORDPRESS_USERNAME and WORDPRESS_APP_PASSWORD are required;
// WORDPRESS_UPLOAD_DIR is optional.
func LoadConfig(logger *slog.Logger) (*Config, error) {
	if logger == nil {
		logger = slog.Default()
	}

	rawURL := os.Getenv("WORDPRESS_URL")
	if rawURL == "" {
		return nil, &ConfigurationError{
			Message: "WORDPRESS_URL environment variable required. Example: https://example.com",
		}
	}

	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, &ConfigurationError{
			Message: "WORDPRESS_URL must be a valid URL (e.g., https://example.com)",
		}
	}

	// Path, query and fragment are discarded; only scheme+host survive.
	baseURL := parsed.Scheme + "://" + parsed.Host

	if parsed.Scheme != "https" && !isDevelopmentHost(parsed.Hostname()) {
		logger.Warn("WORDPRESS_URL should use HTTPS for security", "url", baseURL)
	}

	username := os.Getenv("WORDPRESS_USERNAME")
	if username == "" {
		return nil, &ConfigurationError{
			Message: "WORDPRESS_USERNAME environment variable required.",
		}
	}

	password := os.Getenv("WORDPRESS_APP_PASSWORD")
	if password == "" {
		return nil, &ConfigurationError{
			Message: "WORDPRESS_APP_PASSWORD environment variable required. " +
				"Create an application password in WordPress: Users -> Profile -> Application Passwords",
		}
	}

	uploadDir := os.Getenv("WORDPRESS_UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = DefaultUploadDir
	}

	cfg := &Config{
		BaseURL:     baseURL,
		Username:    username,
		AppPassword: NewSecret(password),
		UploadDir:   uploadDir,
	}

	logger.Info("Configuration loaded", "site_url", cfg.BaseURL, "username", cfg.Username)
	return cfg, nil
}

// APIBaseURL returns the REST API root: base URL plus the fixed path prefix.
func (c *Config) APIBaseURL() string {
	return c.BaseURL + APIPathPrefix
}

// String never exposes the application password.
func (c *Config) String() string {
	return fmt.Sprintf("Config(url=%s, username=%s, password=%s)", c.BaseURL, c.Username, redactionMarker)
}

// isDevelopmentHost reports whether host is a loopback or conventional
// development name where plain HTTP is tolerated.
func isDevelopmentHost(host string) bool {
	host = strings.ToLower(host)
	return host == "localhost" || host == "127.0.0.1" || host == "::1" ||
		strings.HasSuffix(host, ".localhost") || strings.HasSuffix(host, ".local")
}
