// Package placeholder resolves Maven-style ${property} references against a
// property table.
package placeholder

import "strings"

const (
	openMarker  = "${"
	closeMarker = "}"
)

// IsPlaceholder reports whether raw begins with a property reference.
func IsPlaceholder(raw string) bool {
	return strings.HasPrefix(raw, openMarker)
}

// Expand resolves raw against props. A value that does not start with "${" is
// returned unchanged. For a placeholder, all marker syntax is stripped to form the
// key; the boolean is false when the key is not present in props, in which case the
// returned string is empty and the caller should treat the version as unknown.
func Expand(raw string, props map[string]string) (string, bool) {
	if !IsPlaceholder(raw) {
		return raw, true
	}
	key := strings.ReplaceAll(strings.ReplaceAll(raw, openMarker, ""), closeMarker, "")
	value, ok := props[key]
	if !ok {
		return "", false
	}
	return value, true
}
