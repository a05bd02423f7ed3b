package wordpress

import (
	"log/slog"
	"strings"
)

// redactionMarker replaces the credential wherever it would otherwise appear.
const redactionMarker = "***"

// Secret holds the application password. Every default rendering (fmt, slog,
// JSON) produces the redaction marker; the raw value is only reachable through
// Reveal, so putting the credential in a log line is a visible choice at the
// call site rather than an accident.
type Secret struct {
	value string
}

// NewSecret wraps a credential value.
func NewSecret(value string) Secret {
	return Secret{value: value}
}

// Reveal returns the raw credential. Use only at the point of request signing.
func (s Secret) Reveal() string {
	return s.value
}

// IsZero reports whether no credential is set.
func (s Secret) IsZero() bool {
	return s.value == ""
}

// Redact replaces every occurrence of the credential in msg with the
// redaction marker. Applied to any text that may echo server-reflected
// content before it is attached to an error.
func (s Secret) Redact(msg string) string {
	if s.value == "" {
		return msg
	}
	return strings.ReplaceAll(msg, s.value, redactionMarker)
}

func (s Secret) String() string {
	return redactionMarker
}

// GoString keeps %#v output safe.
func (s Secret) GoString() string {
	return "wordpress.Secret(" + redactionMarker + ")"
}

// LogValue keeps slog output safe.
func (s Secret) LogValue() slog.Value {
	return slog.StringValue(redactionMarker)
}

// MarshalJSON keeps serialized configuration safe.
func (s Secret) MarshalJSON() ([]byte, error) {
	return []byte(`"` + redactionMarker + `"`), nil
}
