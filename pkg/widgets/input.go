package widgets

import (
	"html"

	"github.com/goliatone/go-bootstrap3/pkg/attrs"
)

// Input renders a single <input> element of the configured type.
type Input struct {
	Type  string
	Attrs attrs.Attrs
}

// NewInput returns an input of the given type ("text" when empty).
func NewInput(inputType string, base attrs.Attrs) *Input {
	if inputType == "" {
		inputType = "text"
	}
	return &Input{Type: inputType, Attrs: base.Clone()}
}

// Render implements Widget. Empty values are omitted from the markup.
func (i *Input) Render(name string, value Value, extra attrs.Attrs) string {
	final := attrs.Merge(i.Attrs, extra, attrs.Attrs{"type": i.Type, "name": name})
	if v := value.First(); v != "" {
		final["value"] = v
	}
	return "<input" + attrs.Flatten(final) + " />"
}

// IDForLabel implements Widget.
func (i *Input) IDForLabel(id string) string {
	return id
}

// Textarea renders a <textarea> element.
type Textarea struct {
	Attrs attrs.Attrs
}

// NewTextarea returns a textarea with default rows/cols unless base overrides
// them.
func NewTextarea(base attrs.Attrs) *Textarea {
	return &Textarea{Attrs: attrs.Merge(attrs.Attrs{"cols": "40", "rows": "10"}, base)}
}

// Render implements Widget.
func (t *Textarea) Render(name string, value Value, extra attrs.Attrs) string {
	final := attrs.Merge(t.Attrs, extra, attrs.Attrs{"name": name})
	return "<textarea" + attrs.Flatten(final) + ">" + html.EscapeString(value.First()) + "</textarea>"
}

// IDForLabel implements Widget.
func (t *Textarea) IDForLabel(id string) string {
	return id
}
