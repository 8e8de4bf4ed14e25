package forms

import (
	"fmt"
	"html"
	"io"
	"strconv"
	"strings"

	"github.com/goliatone/go-bootstrap3/pkg/attrs"
	"github.com/goliatone/go-bootstrap3/pkg/fields"
	"github.com/goliatone/go-bootstrap3/pkg/interfaces/logger"
	"github.com/goliatone/go-bootstrap3/pkg/widgets"
)

// DefaultIDPrefix prefixes the name of every field to build its id.
const DefaultIDPrefix = "id_"

// RenderOptions customises a render pass.
type RenderOptions struct {
	// Errors maps field names to messages shown under the control.
	Errors     map[string][]string
	Locale     string
	Translator Translator
	OnMissing  MissingTranslationHandler
	// IDPrefix overrides DefaultIDPrefix.
	IDPrefix string
}

// Render returns the Bootstrap markup of every field bound to values (stored
// representation, see Result.Values). Fields missing from values show their
// initial value.
func (f *Form) Render(values map[string]string, opts RenderOptions) (string, error) {
	blocks := make([]string, 0, len(f.fields))
	for _, field := range f.fields {
		block, err := f.renderField(field, values, opts)
		if err != nil {
			return "", err
		}
		blocks = append(blocks, block)
	}
	return strings.Join(blocks, "\n"), nil
}

// RenderTo writes the markup produced by Render to w.
func (f *Form) RenderTo(w io.Writer, values map[string]string, opts RenderOptions) error {
	out, err := f.Render(values, opts)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, out)
	return err
}

// Widget returns the widget that renders field.
func (f *Form) Widget(field fields.FormField) (widgets.Widget, error) {
	name, ok := f.resolver.Resolve(field)
	if !ok {
		return nil, fmt.Errorf("forms: no widget resolves field %q", field.Name)
	}
	widget, err := f.widgets.Build(name, widgets.Config{Choices: field.Choices})
	if err != nil {
		return nil, fmt.Errorf("forms: field %q: %w", field.Name, err)
	}
	if field.Multiple() != widgets.IsMultiple(widget) {
		f.logger.Warn("forms: widget multiplicity does not match field",
			logger.Field{Key: "field", Value: field.Name},
			logger.Field{Key: "widget", Value: name})
	}
	return widget, nil
}

func (f *Form) renderField(field fields.FormField, values map[string]string, opts RenderOptions) (string, error) {
	widget, err := f.Widget(field)
	if err != nil {
		f.logger.Error("forms: widget resolution failed",
			logger.Field{Key: "field", Value: field.Name},
			logger.Field{Key: "error", Value: err})
		return "", err
	}

	prefix := opts.IDPrefix
	if prefix == "" {
		prefix = DefaultIDPrefix
	}
	id := prefix + field.Name

	extra := attrs.Attrs{"id": id}
	switch widget.(type) {
	case *widgets.ChoiceWidget:
	case *widgets.Input:
		extra["class"] = "form-control"
		if field.MaxLength > 0 {
			extra["maxlength"] = strconv.Itoa(field.MaxLength)
		}
	default:
		extra["class"] = "form-control"
	}
	control := widget.Render(field.Name, boundValue(field, values), extra)

	keyPrefix := f.name
	label := translate(opts.Locale, labelKey(keyPrefix, field.Name), field.Label, opts.Translator, opts.OnMissing)
	help := field.HelpHTML
	if help != "" {
		help = fields.SanitizeHelpText(translate(opts.Locale, helpKey(keyPrefix, field.Name), help, opts.Translator, opts.OnMissing))
	}
	messages := opts.Errors[field.Name]

	var builder strings.Builder
	builder.Grow(len(control) + 256)

	builder.WriteString(`<div class="form-group`)
	if len(messages) > 0 {
		builder.WriteString(` has-error`)
	}
	builder.WriteString(`">` + "\n")

	if label != "" {
		builder.WriteString(`    <label class="control-label" for="`)
		builder.WriteString(html.EscapeString(widget.IDForLabel(id)))
		builder.WriteString(`">`)
		builder.WriteString(html.EscapeString(label))
		builder.WriteString("</label>\n")
	}

	for _, line := range strings.Split(control, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		builder.WriteString("    ")
		builder.WriteString(line)
		builder.WriteByte('\n')
	}

	for _, message := range messages {
		builder.WriteString(`    <span class="help-block">`)
		builder.WriteString(html.EscapeString(message))
		builder.WriteString("</span>\n")
	}

	if help != "" {
		builder.WriteString(`    <p class="help-block">`)
		builder.WriteString(help)
		builder.WriteString("</p>\n")
	}

	builder.WriteString("</div>")
	return builder.String(), nil
}

func boundValue(field fields.FormField, values map[string]string) widgets.Value {
	stored, ok := values[field.Name]
	if !ok {
		if !field.HasInitial {
			return nil
		}
		stored = field.Initial
	}
	if field.Multiple() {
		return widgets.Value(fields.SplitStored(stored))
	}
	return widgets.Single(stored)
}
