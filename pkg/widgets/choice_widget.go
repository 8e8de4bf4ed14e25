package widgets

import (
	"github.com/goliatone/go-bootstrap3/pkg/attrs"
	"github.com/goliatone/go-bootstrap3/pkg/choices"
)

// ChoiceWidget renders its choices through a FieldRenderer. Use
// NewRadioSelect or NewCheckboxSelectMultiple.
type ChoiceWidget struct {
	Type    InputType
	Attrs   attrs.Attrs
	Choices choices.Set
}

// NewRadioSelect returns a widget rendering one radio input per choice.
func NewRadioSelect(set choices.Set, base attrs.Attrs) *ChoiceWidget {
	return &ChoiceWidget{Type: InputRadio, Attrs: base.Clone(), Choices: set.Clone()}
}

// NewCheckboxSelectMultiple returns a widget rendering one checkbox per choice.
func NewCheckboxSelectMultiple(set choices.Set, base attrs.Attrs) *ChoiceWidget {
	return &ChoiceWidget{Type: InputCheckbox, Attrs: base.Clone(), Choices: set.Clone()}
}

// Renderer builds the per-render state for name/value.
func (w *ChoiceWidget) Renderer(name string, value Value, extra attrs.Attrs) FieldRenderer {
	return FieldRenderer{
		Type:    w.Type,
		Name:    name,
		Value:   value,
		Attrs:   attrs.Merge(w.Attrs, extra),
		Choices: w.Choices,
	}
}

// Render implements Widget.
func (w *ChoiceWidget) Render(name string, value Value, extra attrs.Attrs) string {
	return w.Renderer(name, value, extra).Render()
}

// Subwidgets returns the individual inputs.
func (w *ChoiceWidget) Subwidgets(name string, value Value, extra attrs.Attrs) []ChoiceInput {
	return w.Renderer(name, value, extra).Inputs()
}

// IDForLabel points the field label at the first input.
func (w *ChoiceWidget) IDForLabel(id string) string {
	if id != "" {
		id += "_0"
	}
	return id
}

// AllowsMultiple implements MultiValued.
func (w *ChoiceWidget) AllowsMultiple() bool {
	return w.Type == InputCheckbox
}
