// Package attrs holds HTML attribute maps used by widgets and link entities.
// Maps are treated as values: every helper returns a fresh map and never
// mutates its inputs.
package attrs

import (
	"html"
	"slices"
	"strings"
)

// Attrs maps attribute names to their unescaped values.
type Attrs map[string]string

// Clone returns a copy of a. A nil input yields an empty, non-nil map.
func (a Attrs) Clone() Attrs {
	out := make(Attrs, len(a))
	for key, value := range a {
		out[key] = value
	}
	return out
}

// With returns a copy of a with key set to value.
func (a Attrs) With(key, value string) Attrs {
	out := a.Clone()
	out[key] = value
	return out
}

// Merge overlays each override map on top of base, left to right, and returns
// the result as a new map.
func Merge(base Attrs, overrides ...Attrs) Attrs {
	out := base.Clone()
	for _, override := range overrides {
		for key, value := range override {
			out[key] = value
		}
	}
	return out
}

// Without returns a copy of a minus the given keys. Keys compare case
// insensitively.
func Without(a Attrs, keys ...string) Attrs {
	if len(keys) == 0 {
		return a.Clone()
	}
	drop := make(map[string]struct{}, len(keys))
	for _, key := range keys {
		drop[strings.ToLower(key)] = struct{}{}
	}
	out := make(Attrs, len(a))
	for key, value := range a {
		if _, excluded := drop[strings.ToLower(key)]; excluded {
			continue
		}
		out[key] = value
	}
	return out
}

// Keys returns the attribute names sorted lexically.
func (a Attrs) Keys() []string {
	keys := make([]string, 0, len(a))
	for key := range a {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	return keys
}

// Flatten renders a as a space-prefixed attribute string suitable for
// inclusion inside a start tag, e.g. ` id="x" name="y"`. Keys are emitted in
// sorted order and values are HTML escaped.
func Flatten(a Attrs) string {
	if len(a) == 0 {
		return ""
	}
	var builder strings.Builder
	for _, key := range a.Keys() {
		builder.WriteByte(' ')
		builder.WriteString(key)
		builder.WriteString(`="`)
		builder.WriteString(html.EscapeString(a[key]))
		builder.WriteByte('"')
	}
	return builder.String()
}
