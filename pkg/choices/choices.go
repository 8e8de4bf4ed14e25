// Package choices models ordered choice sets. A choice is either a Leaf
// carrying a stored value and display label, or a Group that labels a nested
// sequence of choices. Renderers recurse over the variant instead of
// inspecting label types.
package choices

import "strings"

// BlankValue is the stored value of the automatically injected blank option.
const BlankValue = ""

// BlankLabel is the display label of the automatically injected blank option.
const BlankLabel = "---------"

// Choice is a Leaf or a Group.
type Choice struct {
	value    string
	label    string
	children []Choice
	group    bool
}

// Leaf returns a selectable choice.
func Leaf(value, label string) Choice {
	return Choice{value: value, label: label}
}

// Group returns a labelled sub-group of choices.
func Group(label string, children ...Choice) Choice {
	return Choice{label: label, children: append([]Choice(nil), children...), group: true}
}

// IsGroup reports whether c is a Group.
func (c Choice) IsGroup() bool { return c.group }

// Value returns the stored value of a Leaf. Groups have no value.
func (c Choice) Value() string { return c.value }

// Label returns the display label.
func (c Choice) Label() string { return c.label }

// Children returns a copy of a Group's nested choices.
func (c Choice) Children() []Choice {
	if !c.group {
		return nil
	}
	return append([]Choice(nil), c.children...)
}

// Set is an ordered sequence of choices.
type Set []Choice

// Pairs builds a flat Set from alternating value/label strings. A trailing odd
// value is ignored.
func Pairs(pairs ...string) Set {
	out := make(Set, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, Leaf(pairs[i], pairs[i+1]))
	}
	return out
}

// Leaves returns every Leaf in depth-first order.
func (s Set) Leaves() []Choice {
	var out []Choice
	for _, choice := range s {
		if choice.group {
			out = append(out, Set(choice.children).Leaves()...)
			continue
		}
		out = append(out, choice)
	}
	return out
}

// Values returns the stored values of every Leaf in order.
func (s Set) Values() []string {
	leaves := s.Leaves()
	out := make([]string, 0, len(leaves))
	for _, leaf := range leaves {
		out = append(out, leaf.value)
	}
	return out
}

// Contains reports whether value is the stored value of some Leaf.
func (s Set) Contains(value string) bool {
	for _, leaf := range s.Leaves() {
		if leaf.value == value {
			return true
		}
	}
	return false
}

// LabelFor returns the label of the Leaf storing value.
func (s Set) LabelFor(value string) (string, bool) {
	for _, leaf := range s.Leaves() {
		if leaf.value == value {
			return leaf.label, true
		}
	}
	return "", false
}

// HasBlank reports whether a Leaf already stores the literal empty value.
func (s Set) HasBlank() bool {
	return s.Contains(BlankValue)
}

// WithBlank returns the set prefixed with the automatic blank option when
// include is true. The blank is never added when the set already declares an
// explicit "" entry, so the rendered options never carry two blanks.
func (s Set) WithBlank(include bool) Set {
	if !include || s.HasBlank() {
		return s.Clone()
	}
	out := make(Set, 0, len(s)+1)
	out = append(out, Leaf(BlankValue, BlankLabel))
	return append(out, s...)
}

// Clone returns a shallow copy of s.
func (s Set) Clone() Set {
	if s == nil {
		return nil
	}
	return append(Set(nil), s...)
}

// Concat returns a new set holding s followed by others.
func (s Set) Concat(others ...Set) Set {
	out := s.Clone()
	for _, other := range others {
		out = append(out, other...)
	}
	return out
}

// Labels returns the labels of every Leaf, prefixing grouped leaves with their
// group label.
func (s Set) Labels() []string {
	var out []string
	for _, choice := range s {
		if choice.group {
			for _, label := range Set(choice.children).Labels() {
				out = append(out, strings.TrimSpace(choice.label+" / "+label))
			}
			continue
		}
		out = append(out, choice.label)
	}
	return out
}
