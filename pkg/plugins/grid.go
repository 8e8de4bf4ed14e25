package plugins

import (
	"strconv"

	"github.com/goliatone/go-bootstrap3/pkg/fields"
)

// Row is a grid row.
type Row struct {
	Classes string
}

// RowFields declares the row fields.
func RowFields() []fields.Field {
	return []fields.Field{fields.Classes("classes")}
}

// CSSClasses returns "row" plus the extra classes.
func (r Row) CSSClasses() string {
	var out classList
	out.add("row", r.Classes)
	return out.String()
}

// Span is the width and offset of a column on one device. Nil means unset.
type Span struct {
	Col    *int
	Offset *int
}

// Column is a grid column sized per device.
type Column struct {
	// Spans is keyed by device ("xs", "sm", "md", "lg").
	Spans   map[string]Span
	Classes string
}

// Column size and offset bounds.
const (
	MinColumnSize   = 1
	MaxColumnSize   = 12
	MinColumnOffset = 0
	MaxColumnOffset = 12
)

func colField(device string) string    { return device + "_col" }
func offsetField(device string) string { return device + "_offset" }

// ColumnFields declares the per-device size and offset fields followed by
// classes.
func ColumnFields() []fields.Field {
	var declared []fields.Field
	for _, device := range fields.DeviceChoices.Values() {
		declared = append(declared,
			fields.Integer(colField(device),
				fields.WithMin(MinColumnSize), fields.WithMax(MaxColumnSize),
				fields.WithBlank(true), fields.WithNull(true)),
			fields.Integer(offsetField(device),
				fields.WithMin(MinColumnOffset), fields.WithMax(MaxColumnOffset),
				fields.WithBlank(true), fields.WithNull(true)),
		)
	}
	return append(declared, fields.Classes("classes"))
}

// ColumnFromValues builds a Column from cleaned stored values.
func ColumnFromValues(values map[string]string) (Column, error) {
	col := Column{Spans: make(map[string]Span), Classes: values["classes"]}
	for _, device := range fields.DeviceChoices.Values() {
		size, err := parseOptionalInt(values, colField(device))
		if err != nil {
			return Column{}, err
		}
		offset, err := parseOptionalInt(values, offsetField(device))
		if err != nil {
			return Column{}, err
		}
		if size != nil || offset != nil {
			col.Spans[device] = Span{Col: size, Offset: offset}
		}
	}
	return col, nil
}

// CSSClasses returns the grid classes in device order, for example
// "col-xs-12 col-md-6 col-md-offset-3".
func (c Column) CSSClasses() string {
	var out classList
	for _, device := range fields.DeviceChoices.Values() {
		span, ok := c.Spans[device]
		if !ok {
			continue
		}
		if span.Col != nil {
			out.add("col-" + device + "-" + strconv.Itoa(*span.Col))
		}
		if span.Offset != nil {
			out.add("col-" + device + "-offset-" + strconv.Itoa(*span.Offset))
		}
	}
	out.add(c.Classes)
	return out.String()
}
