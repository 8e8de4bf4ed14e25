package widgets

import (
	"html"
	"strconv"

	"github.com/goliatone/go-bootstrap3/pkg/attrs"
	"github.com/goliatone/go-bootstrap3/pkg/choices"
)

// InputType selects the HTML input type of a choice input.
type InputType string

const (
	InputRadio    InputType = "radio"
	InputCheckbox InputType = "checkbox"
)

// ChoiceInput is one <input type="radio|checkbox"> of a choice widget.
type ChoiceInput struct {
	Type        InputType
	Name        string
	Value       Value
	Attrs       attrs.Attrs
	ChoiceValue string
	ChoiceLabel string
	Index       int
}

func newChoiceInput(typ InputType, name string, value Value, base attrs.Attrs, choice choices.Choice, index int) ChoiceInput {
	own := base.Clone()
	if id := own["id"]; id != "" {
		own["id"] = id + "_" + strconv.Itoa(index)
	}
	return ChoiceInput{
		Type:        typ,
		Name:        name,
		Value:       value,
		Attrs:       own,
		ChoiceValue: choice.Value(),
		ChoiceLabel: choice.Label(),
		Index:       index,
	}
}

// IDForLabel returns the derived element id, if any.
func (c ChoiceInput) IDForLabel() string {
	return c.Attrs["id"]
}

// IsChecked compares the bound value against the choice value: set
// membership for checkboxes, equality with the single value for radios.
func (c ChoiceInput) IsChecked() bool {
	if c.Type == InputCheckbox {
		return c.Value.Has(c.ChoiceValue)
	}
	return len(c.Value) > 0 && c.Value[0] == c.ChoiceValue
}

// Tag renders the bare <input /> element.
func (c ChoiceInput) Tag(extra attrs.Attrs) string {
	final := attrs.Merge(c.Attrs, extra, attrs.Attrs{
		"type":  string(c.Type),
		"name":  c.Name,
		"value": c.ChoiceValue,
	})
	if c.IsChecked() {
		final["checked"] = "checked"
	}
	return "<input" + attrs.Flatten(final) + " />"
}

// Render wraps the input and its label text in a <label>.
func (c ChoiceInput) Render(extra attrs.Attrs) string {
	labelFor := ""
	if id := c.IDForLabel(); id != "" {
		labelFor = ` for="` + html.EscapeString(id) + `"`
	}
	return "<label" + labelFor + ">" + c.Tag(extra) + " " + html.EscapeString(c.ChoiceLabel) + "</label>"
}

// String renders the input without extra attributes.
func (c ChoiceInput) String() string {
	return c.Render(nil)
}
