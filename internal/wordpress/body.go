package wordpress

import "encoding/json"

// BodyKind tags the shape of a parsed response body.
type BodyKind int

const (
	BodyNull BodyKind = iota
	BodyObject
	BodyArray
	BodyScalar
)

// Body is a tagged union over parsed JSON: object, array, scalar or null.
// Call sites branch on Kind (or use the As* accessors) instead of runtime
// type inspection of an untyped value.
type Body struct {
	Kind   BodyKind
	object map[string]any
	array  []any
	scalar any
}

// ParseBody decodes raw JSON into a Body.
func ParseBody(raw []byte) (Body, error) {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return Body{}, err
	}
	switch t := v.(type) {
	case nil:
		return Body{Kind: BodyNull}, nil
	case map[string]any:
		return Body{Kind: BodyObject, object: t}, nil
	case []any:
		return Body{Kind: BodyArray, array: t}, nil
	default:
		return Body{Kind: BodyScalar, scalar: t}, nil
	}
}

// AsObject returns the object form, or false when the body is not an object.
func (b Body) AsObject() (map[string]any, bool) {
	if b.Kind != BodyObject {
		return nil, false
	}
	return b.object, true
}

// AsArray returns the array form, or false when the body is not an array.
func (b Body) AsArray() ([]any, bool) {
	if b.Kind != BodyArray {
		return nil, false
	}
	return b.array, true
}

// Scalar returns the scalar value, or false when the body is not a scalar.
func (b Body) Scalar() (any, bool) {
	if b.Kind != BodyScalar {
		return nil, false
	}
	return b.scalar, true
}

// ObjectField returns a field from an object body.
func (b Body) ObjectField(key string) (any, bool) {
	obj, ok := b.AsObject()
	if !ok {
		return nil, false
	}
	v, ok := obj[key]
	return v, ok
}

// StringField returns a string field from an object body, or "" when the
// field is absent or not a string.
func (b Body) StringField(key string) string {
	v, ok := b.ObjectField(key)
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return s
}

// IntField returns a numeric field from an object body as an int. JSON
// numbers decode as float64; anything else yields false.
func (b Body) IntField(key string) (int, bool) {
	v, ok := b.ObjectField(key)
	if !ok {
		return 0, false
	}
	f, ok := v.(float64)
	if !ok {
		return 0, false
	}
	return int(f), true
}
