package fields

import (
	"strings"

	"github.com/goliatone/go-bootstrap3/pkg/choices"
)

// StorageKind names the persisted column type.
type StorageKind string

const (
	StorageText       StorageKind = "text"
	StorageChar       StorageKind = "char"
	StorageInteger    StorageKind = "integer"
	StorageURL        StorageKind = "url"
	StorageEmail      StorageKind = "email"
	StorageReference  StorageKind = "reference"
	StorageAttributes StorageKind = "attributes"
)

// Storage describes how a field value is persisted.
type Storage struct {
	Kind       StorageKind `json:"kind"`
	MaxLength  int         `json:"maxLength,omitempty"`
	Blank      bool        `json:"blank"`
	Null       bool        `json:"null"`
	Default    string      `json:"default,omitempty"`
	HasDefault bool        `json:"hasDefault"`
	// LegacyClass is the dotted class name reported by LegacyDescriptor.
	LegacyClass string `json:"legacyClass,omitempty"`
}

// Kind names the form-side representation.
type Kind string

const (
	KindChar           Kind = "char"
	KindChoice         Kind = "choice"
	KindMultipleChoice Kind = "multiple_choice"
	KindClasses        Kind = "classes"
	KindInteger        Kind = "integer"
	KindURL            Kind = "url"
	KindEmail          Kind = "email"
	KindReference      Kind = "reference"
	KindAttributes     Kind = "attributes"
)

// Spec describes the form representation of a field.
type Spec struct {
	Kind    Kind        `json:"kind"`
	Widget  string      `json:"widget,omitempty"`
	Choices choices.Set `json:"-"`
	Min     *int        `json:"min,omitempty"`
	Max     *int        `json:"max,omitempty"`
	// ExcludedKeys lists attribute names rejected by attributes fields.
	ExcludedKeys []string `json:"excludedKeys,omitempty"`
}

// Field is a declared entity field.
type Field struct {
	Name     string  `json:"name"`
	Label    string  `json:"label,omitempty"`
	HelpText string  `json:"helpText,omitempty"`
	Storage  Storage `json:"storage"`
	Spec     Spec    `json:"spec"`
}

// Option overrides part of a field declaration. Options run after the
// constructor defaults, so they always win.
type Option func(*Field)

func newField(name string, storage Storage, spec Spec, label, help string, options []Option) Field {
	field := Field{
		Name:     strings.TrimSpace(name),
		Label:    label,
		HelpText: help,
		Storage:  storage,
		Spec:     spec,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&field)
	}
	if field.Label == "" {
		field.Label = DefaultLabeler(field.Name)
	}
	return field
}

// DescribeStorage returns the persisted representation.
func (f Field) DescribeStorage() Storage {
	return f.Storage
}

// DescribeForm returns the form representation.
func (f Field) DescribeForm() Spec {
	spec := f.Spec
	spec.Choices = f.Spec.Choices.Clone()
	spec.ExcludedKeys = append([]string(nil), f.Spec.ExcludedKeys...)
	return spec
}

// Choices returns the declared choices, prefixed with the automatic blank
// option when includeBlank is set and the declaration has no "" entry.
func (f Field) Choices(includeBlank bool) choices.Set {
	return f.Spec.Choices.WithBlank(includeBlank)
}

// IncludeBlank reports whether forms offer a blank option: blank fields and
// fields without a default do.
func (f Field) IncludeBlank() bool {
	return f.Storage.Blank || !f.Storage.HasDefault
}

// WithLabel sets the human readable name.
func WithLabel(label string) Option {
	return func(f *Field) { f.Label = label }
}

// WithHelpText sets help text. Limited HTML is kept when rendered.
func WithHelpText(help string) Option {
	return func(f *Field) { f.HelpText = help }
}

// WithBlank controls whether an empty value is accepted.
func WithBlank(blank bool) Option {
	return func(f *Field) { f.Storage.Blank = blank }
}

// WithNull controls whether the stored value may be null.
func WithNull(null bool) Option {
	return func(f *Field) { f.Storage.Null = null }
}

// WithDefault sets the stored default and form initial value.
func WithDefault(value string) Option {
	return func(f *Field) {
		f.Storage.Default = value
		f.Storage.HasDefault = true
	}
}

// WithoutDefault clears the default.
func WithoutDefault() Option {
	return func(f *Field) {
		f.Storage.Default = ""
		f.Storage.HasDefault = false
	}
}

// WithMaxLength overrides the maximum stored length.
func WithMaxLength(n int) Option {
	return func(f *Field) { f.Storage.MaxLength = n }
}

// WithChoices replaces the declared choice set.
func WithChoices(set choices.Set) Option {
	return func(f *Field) { f.Spec.Choices = set.Clone() }
}

// WithMin sets the lower bound of integer fields.
func WithMin(n int) Option {
	return func(f *Field) { f.Spec.Min = &n }
}

// WithMax sets the upper bound of integer fields.
func WithMax(n int) Option {
	return func(f *Field) { f.Spec.Max = &n }
}

// WithWidget overrides the widget name.
func WithWidget(name string) Option {
	return func(f *Field) { f.Spec.Widget = name }
}

// WithLegacyClass overrides the class reported by LegacyDescriptor.
func WithLegacyClass(class string) Option {
	return func(f *Field) { f.Storage.LegacyClass = class }
}

// WithExcludedKeys sets the attribute names rejected by attributes fields.
func WithExcludedKeys(keys ...string) Option {
	return func(f *Field) { f.Spec.ExcludedKeys = append([]string(nil), keys...) }
}
