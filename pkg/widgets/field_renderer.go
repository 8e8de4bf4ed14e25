package widgets

import (
	"html"
	"strconv"
	"strings"

	"github.com/goliatone/go-bootstrap3/pkg/attrs"
	"github.com/goliatone/go-bootstrap3/pkg/choices"
)

// FieldRenderer holds the per-render state of a choice widget and emits the
// nested list markup. It is stateless between calls.
type FieldRenderer struct {
	Type    InputType
	Name    string
	Value   Value
	Attrs   attrs.Attrs
	Choices choices.Set
}

// Inputs returns the inputs for the top-level leaves, keeping each leaf's
// position in the choice sequence as its index. Groups are skipped.
func (r FieldRenderer) Inputs() []ChoiceInput {
	out := make([]ChoiceInput, 0, len(r.Choices))
	for idx, choice := range r.Choices {
		if choice.IsGroup() {
			continue
		}
		out = append(out, newChoiceInput(r.Type, r.Name, r.Value, r.Attrs, choice, idx))
	}
	return out
}

// Render outputs a <ul> for the choices. When the field has an id it is put
// on the <ul> and every input gets "<id>_<index>"; groups extend the id with
// their own index before recursing.
func (r FieldRenderer) Render() string {
	id := r.Attrs["id"]
	items := make([]string, 0, len(r.Choices))
	for idx, choice := range r.Choices {
		if choice.IsGroup() {
			sub := r
			sub.Attrs = r.Attrs.Clone()
			if id != "" {
				sub.Attrs["id"] = id + "_" + strconv.Itoa(idx)
			}
			sub.Choices = choice.Children()
			items = append(items, "<li>"+html.EscapeString(choice.Label())+sub.Render()+"</li>")
			continue
		}
		input := newChoiceInput(r.Type, r.Name, r.Value, r.Attrs, choice, idx)
		items = append(items, "<li>"+input.Render(nil)+"</li>")
	}

	var builder strings.Builder
	builder.WriteString("<ul")
	if id != "" {
		builder.WriteString(` id="`)
		builder.WriteString(html.EscapeString(id))
		builder.WriteString(`"`)
	}
	builder.WriteString(">")
	builder.WriteString(strings.Join(items, "\n"))
	builder.WriteString("</ul>")
	return builder.String()
}

// String renders the list.
func (r FieldRenderer) String() string {
	return r.Render()
}
