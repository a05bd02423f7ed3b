// Package tools provides a metadata-driven registry for MCP tool definitions.
// It reduces boilerplate in main.go by defining tools declaratively and
// using type-safe handlers to register them.
package tools

// ToolSpec defines a tool's metadata for declarative registration.
// Each spec maps to a client method with matching Args/Result types.
type ToolSpec struct {
	// Name is the MCP tool name (e.g., "wordpress_list_posts")
	Name string

	// Method is the client method name (e.g., "ListPosts")
	Method string

	// Description is the tool description shown to LLMs
	Description string

	// Title is the human-readable tool title for annotations
	Title string

	// Resource indicates which WordPress resource this tool operates on
	// (posts, pages, media, comments, site)
	Resource string

	// ReadOnly indicates the tool doesn't modify site state
	ReadOnly bool

	// Destructive indicates the tool can delete or overwrite data
	Destructive bool

	// Idempotent indicates repeated calls have the same effect
	Idempotent bool

	// OpenWorld indicates the tool accesses external resources
	OpenWorld bool
}

// ToolsByResource returns all tool specs operating on the given resource.
func ToolsByResource(resource string) []ToolSpec {
	var specs []ToolSpec
	for _, spec := range AllTools {
		if spec.Resource == resource {
			specs = append(specs, spec)
		}
	}
	return specs
}

// ptr is a helper to create a pointer to a value.
func ptr[T any](v T) *T {
	return &v
}
