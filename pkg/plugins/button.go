package plugins

import (
	"github.com/goliatone/go-bootstrap3/pkg/attrs"
	"github.com/goliatone/go-bootstrap3/pkg/fields"
	"github.com/goliatone/go-bootstrap3/pkg/link"
)

// Button is a link rendered either as a text link or a Bootstrap button.
type Button struct {
	link.Link

	Label      string
	Type       string
	BtnContext string
	BtnSize    string
	TxtContext string
	IconLeft   string
	IconRight  string
	Responsive string
	Classes    string
}

// ButtonFields declares the button fields followed by the link fields.
func ButtonFields() []fields.Field {
	declared := []fields.Field{
		fields.Char("label", 256, fields.WithLabel("Display name"), fields.WithBlank(true), fields.WithDefault("")),
		fields.LinkOrButton("type"),
		fields.Context("btn_context", fields.WithChoices(fields.ButtonContextChoices)),
		fields.Size("btn_size"),
		fields.Context("txt_context", fields.WithBlank(true), fields.WithDefault("")),
		fields.Icon("icon_left", fields.WithLabel("Icon left")),
		fields.Icon("icon_right", fields.WithLabel("Icon right")),
		fields.Responsive("responsive"),
		fields.Classes("classes"),
	}
	return append(declared, link.Fields()...)
}

// ButtonFromValues builds a Button from cleaned stored values. Page and file
// references are left for the caller to resolve.
func ButtonFromValues(values map[string]string) (Button, error) {
	parsed, err := fields.ParseAttributes(values[link.FieldAttributes])
	if err != nil {
		return Button{}, err
	}
	btn := Button{
		Link: link.Link{
			URL:        values[link.FieldURL],
			Mailto:     values[link.FieldMailto],
			Phone:      values[link.FieldPhone],
			Anchor:     values[link.FieldAnchor],
			Target:     values[link.FieldTarget],
			Attributes: parsed,
		},
		Label:      values["label"],
		Type:       values["type"],
		BtnContext: values["btn_context"],
		BtnSize:    values["btn_size"],
		TxtContext: values["txt_context"],
		IconLeft:   values["icon_left"],
		IconRight:  values["icon_right"],
		Responsive: values["responsive"],
		Classes:    values["classes"],
	}
	return btn, nil
}

// IsButton reports whether the link renders as a button.
func (b Button) IsButton() bool {
	return b.Type == "btn"
}

// CSSClasses returns the class attribute of the rendered anchor.
func (b Button) CSSClasses() string {
	var out classList
	if b.IsButton() {
		ctx := b.BtnContext
		if ctx == "" {
			ctx = fields.ContextDefault
		}
		out.add("btn", "btn-"+ctx)
		if b.BtnSize != "" {
			out.add("btn-" + b.BtnSize)
		}
	} else if b.TxtContext != "" {
		out.add("text-" + b.TxtContext)
	}
	out.add(b.Responsive, b.Classes)
	return out.String()
}

// Attrs returns the anchor attributes including the derived classes.
func (b Button) Attrs() attrs.Attrs {
	out := b.Link.Attrs()
	if classes := b.CSSClasses(); classes != "" {
		out["class"] = classes
	}
	return out
}
