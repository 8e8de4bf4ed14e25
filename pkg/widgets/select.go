package widgets

import (
	"html"
	"strings"

	"github.com/goliatone/go-bootstrap3/pkg/attrs"
	"github.com/goliatone/go-bootstrap3/pkg/choices"
)

// Select renders a <select> element with <option> and <optgroup> children.
type Select struct {
	Attrs   attrs.Attrs
	Choices choices.Set
}

// NewSelect returns a single-valued select.
func NewSelect(set choices.Set, base attrs.Attrs) *Select {
	return &Select{Attrs: base.Clone(), Choices: set.Clone()}
}

// Render implements Widget.
func (s *Select) Render(name string, value Value, extra attrs.Attrs) string {
	final := attrs.Merge(s.Attrs, extra, attrs.Attrs{"name": name})
	selected := value
	if len(value) > 1 {
		selected = value[:1]
	}

	lines := []string{"<select" + attrs.Flatten(final) + ">"}
	for _, choice := range s.Choices {
		if choice.IsGroup() {
			lines = append(lines, `<optgroup label="`+html.EscapeString(choice.Label())+`">`)
			for _, child := range choice.Children() {
				lines = append(lines, renderOption(child, selected))
			}
			lines = append(lines, "</optgroup>")
			continue
		}
		lines = append(lines, renderOption(choice, selected))
	}
	lines = append(lines, "</select>")
	return strings.Join(lines, "\n")
}

// IDForLabel implements Widget.
func (s *Select) IDForLabel(id string) string {
	return id
}

func renderOption(choice choices.Choice, selected Value) string {
	var builder strings.Builder
	builder.WriteString(`<option value="`)
	builder.WriteString(html.EscapeString(choice.Value()))
	builder.WriteString(`"`)
	if selected.Has(choice.Value()) {
		builder.WriteString(` selected="selected"`)
	}
	builder.WriteString(">")
	builder.WriteString(html.EscapeString(choice.Label()))
	builder.WriteString("</option>")
	return builder.String()
}
