package plugins

import (
	"github.com/goliatone/go-bootstrap3/pkg/attrs"
	"github.com/goliatone/go-bootstrap3/pkg/choices"
	"github.com/goliatone/go-bootstrap3/pkg/fields"
	"github.com/goliatone/go-bootstrap3/pkg/link"
	"github.com/goliatone/go-bootstrap3/pkg/widgets"
)

// ShapeChoices are the image shapes. The explicit "" entry keeps forms from
// adding a second blank option.
var ShapeChoices = choices.Pairs(
	"", "None",
	"img-rounded", "Rounded",
	"img-circle", "Circle",
	"img-thumbnail", "Thumbnail",
)

// Image is a responsive image.
type Image struct {
	File       link.File
	Alt        string
	Title      string
	Shape      string
	Responsive string
	Classes    string
}

// ImageFields declares the image fields.
func ImageFields() []fields.Field {
	return []fields.Field{
		fields.Reference("file", fields.WithLabel("File")),
		fields.MiniText("alt", fields.WithLabel("Alt text")),
		fields.MiniText("title"),
		fields.Choice("shape", ShapeChoices, 64, fields.WithBlank(true), fields.WithDefault(""), fields.WithWidget(widgets.NameRadio)),
		fields.Responsive("responsive"),
		fields.Classes("classes"),
	}
}

// ImageFromValues builds an Image from cleaned stored values.
func ImageFromValues(values map[string]string) Image {
	return Image{
		Alt:        values["alt"],
		Title:      values["title"],
		Shape:      values["shape"],
		Responsive: values["responsive"],
		Classes:    values["classes"],
	}
}

// CSSClasses returns "img-responsive" plus shape and extra classes.
func (i Image) CSSClasses() string {
	var out classList
	out.add("img-responsive", i.Shape, i.Responsive, i.Classes)
	return out.String()
}

// Attrs returns the <img> attributes.
func (i Image) Attrs() attrs.Attrs {
	out := attrs.Attrs{"class": i.CSSClasses(), "alt": i.Alt}
	if link.IsSet(i.File) {
		out["src"] = i.File.URL()
	}
	if i.Title != "" {
		out["title"] = i.Title
	}
	return out
}
