package wordpress

// Helpers for flattening WordPress response objects. Content fields arrive
// either as plain strings or wrapped in a {"rendered": "..."} envelope.

// Rendered extracts the rendered form of a content field.
func Rendered(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case map[string]any:
		s, _ := t["rendered"].(string)
		return s
	}
	return ""
}

// Str returns a string field from a response object.
func Str(obj map[string]any, key string) string {
	s, _ := obj[key].(string)
	return s
}

// Int returns a numeric field from a response object as an int.
func Int(obj map[string]any, key string) int {
	f, _ := obj[key].(float64)
	return int(f)
}

// IntSlice returns a numeric array field from a response object.
func IntSlice(obj map[string]any, key string) []int {
	arr, ok := obj[key].([]any)
	if !ok {
		return nil
	}
	out := make([]int, 0, len(arr))
	for _, v := range arr {
		if f, ok := v.(float64); ok {
			out = append(out, int(f))
		}
	}
	return out
}

// Object returns a nested object field.
func Object(obj map[string]any, key string) map[string]any {
	m, _ := obj[key].(map[string]any)
	return m
}

// EmbeddedAuthorName extracts the author display name from the _embedded
// envelope populated by _embed=true, or "" when absent.
func EmbeddedAuthorName(obj map[string]any) string {
	embedded := Object(obj, "_embedded")
	if embedded == nil {
		return ""
	}
	authors, ok := embedded["author"].([]any)
	if !ok || len(authors) == 0 {
		return ""
	}
	author, ok := authors[0].(map[string]any)
	if !ok {
		return ""
	}
	return Str(author, "name")
}
