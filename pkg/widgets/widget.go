// Package widgets renders form controls as HTML. The choice renderers
// reproduce the legacy multi-element layout: a <ul> of labelled radio or
// checkbox inputs, with nested lists for grouped choices and per-choice ids
// derived from the field id plus the choice index.
package widgets

import "github.com/goliatone/go-bootstrap3/pkg/attrs"

// Value is the current value bound to a widget. Single-valued widgets read
// the first entry; multi-valued widgets treat the entries as a set. A nil
// Value means no value was supplied.
type Value []string

// Single wraps a scalar value.
func Single(value string) Value {
	return Value{value}
}

// First returns the first entry or "" when empty.
func (v Value) First() string {
	if len(v) == 0 {
		return ""
	}
	return v[0]
}

// Has reports whether entry is a member of v.
func (v Value) Has(entry string) bool {
	for _, candidate := range v {
		if candidate == entry {
			return true
		}
	}
	return false
}

// Widget renders a single form control.
type Widget interface {
	Render(name string, value Value, extra attrs.Attrs) string
	// IDForLabel returns the id a field <label for> should reference.
	IDForLabel(id string) string
}

// MultiValued is implemented by widgets that submit several values.
type MultiValued interface {
	AllowsMultiple() bool
}

// IsMultiple reports whether w submits several values.
func IsMultiple(w Widget) bool {
	if mv, ok := w.(MultiValued); ok {
		return mv.AllowsMultiple()
	}
	return false
}
