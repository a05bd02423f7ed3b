package wordpress

import "testing"

func TestParseBodyKinds(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		kind BodyKind
	}{
		{"object", `{"id":1}`, BodyObject},
		{"array", `[1,2]`, BodyArray},
		{"string scalar", `"ok"`, BodyScalar},
		{"number scalar", `42`, BodyScalar},
		{"bool scalar", `true`, BodyScalar},
		{"null", `null`, BodyNull},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, err := ParseBody([]byte(tt.raw))
			if err != nil {
				t.Fatalf("ParseBody failed: %v", err)
			}
			if body.Kind != tt.kind {
				t.Errorf("Kind = %d, want %d", body.Kind, tt.kind)
			}
		})
	}
}

func TestParseBodyInvalid(t *testing.T) {
	if _, err := ParseBody([]byte(`<html>error</html>`)); err == nil {
		t.Error("expected parse error for non-JSON input")
	}
}

func TestBodyAccessors(t *testing.T) {
	obj := mustParse(t, `{"id":42,"title":"hello","nested":{"a":1}}`)

	if _, ok := obj.AsArray(); ok {
		t.Error("object body should not present as array")
	}
	if got := obj.StringField("title"); got != "hello" {
		t.Errorf("StringField = %q", got)
	}
	if got, ok := obj.IntField("id"); !ok || got != 42 {
		t.Errorf("IntField = %d, %v", got, ok)
	}
	if _, ok := obj.IntField("title"); ok {
		t.Error("IntField on a string field should report false")
	}
	if _, ok := obj.IntField("missing"); ok {
		t.Error("IntField on a missing field should report false")
	}

	arr := mustParse(t, `[1,2,3]`)
	items, ok := arr.AsArray()
	if !ok || len(items) != 3 {
		t.Errorf("AsArray = %v, %v", items, ok)
	}

	scalar := mustParse(t, `true`)
	v, ok := scalar.Scalar()
	if !ok || v != true {
		t.Errorf("Scalar = %v, %v", v, ok)
	}
}
