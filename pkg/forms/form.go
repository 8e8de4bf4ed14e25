package forms

import (
	"errors"
	"net/url"

	"github.com/goliatone/go-bootstrap3/pkg/fields"
	"github.com/goliatone/go-bootstrap3/pkg/interfaces/logger"
	"github.com/goliatone/go-bootstrap3/pkg/widgets"
)

// Option configures a Form.
type Option func(*Form)

// WithName sets the form name, used as the translation key prefix.
func WithName(name string) Option {
	return func(f *Form) { f.name = name }
}

// WithWidgets swaps the widget registry.
func WithWidgets(reg *widgets.Registry) Option {
	return func(f *Form) {
		if reg != nil {
			f.widgets = reg
		}
	}
}

// WithResolver swaps the widget resolver.
func WithResolver(res *Resolver) Option {
	return func(f *Form) {
		if res != nil {
			f.resolver = res
		}
	}
}

// WithLogger sets the logger used for cleaning and rendering diagnostics.
func WithLogger(lgr logger.Logger) Option {
	return func(f *Form) {
		if lgr != nil {
			f.logger = lgr
		}
	}
}

// Form is an ordered set of form fields.
type Form struct {
	name     string
	fields   []fields.FormField
	widgets  *widgets.Registry
	resolver *Resolver
	logger   logger.Logger
}

// New builds a form over declared fields.
func New(declared []fields.Field, opts ...Option) *Form {
	form := &Form{
		widgets:  widgets.NewDefaultRegistry(),
		resolver: NewResolver(),
		logger:   &logger.Nop{},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(form)
		}
	}
	form.fields = make([]fields.FormField, 0, len(declared))
	for _, field := range declared {
		form.fields = append(form.fields, field.FormField())
	}
	return form
}

// Name returns the form name.
func (f *Form) Name() string { return f.name }

// Fields returns the form fields in declaration order.
func (f *Form) Fields() []fields.FormField {
	return append([]fields.FormField(nil), f.fields...)
}

// Field returns the named form field.
func (f *Form) Field(name string) (fields.FormField, bool) {
	for _, field := range f.fields {
		if field.Name == name {
			return field, true
		}
	}
	return fields.FormField{}, false
}

// Initial returns the initial stored value of every field that has one.
func (f *Form) Initial() map[string]string {
	out := make(map[string]string, len(f.fields))
	for _, field := range f.fields {
		if field.HasInitial {
			out[field.Name] = field.Initial
		}
	}
	return out
}

// Result holds cleaned values and per-field error messages.
type Result struct {
	Values map[string]string
	Errors map[string][]string

	errs fields.ValidationErrors
}

// Valid reports whether cleaning produced no errors.
func (r Result) Valid() bool {
	return len(r.Errors) == 0
}

// Err returns the validation errors in field declaration order, keeping
// their codes, or nil when the result is valid.
func (r Result) Err() error {
	return r.errs.OrNil()
}

// Clean validates submitted values. Fields absent from values take their
// initial value; multiple-choice values are stored space separated.
func (f *Form) Clean(values url.Values) Result {
	result := Result{Values: make(map[string]string, len(f.fields))}
	for _, field := range f.fields {
		submitted, present := values[field.Name]
		if !present && field.HasInitial {
			result.Values[field.Name] = field.Initial
			continue
		}
		cleaned, err := field.Clean(submitted)
		if err != nil {
			f.logger.Debug("forms: field rejected",
				logger.Field{Key: "form", Value: f.name},
				logger.Field{Key: "field", Value: field.Name},
				logger.Field{Key: "error", Value: err})
			result.addError(field.Name, err)
			continue
		}
		result.Values[field.Name] = cleaned
	}
	if !result.Valid() {
		f.logger.Info("forms: submission invalid",
			logger.Field{Key: "form", Value: f.name},
			logger.Field{Key: "fields", Value: len(result.Errors)})
	}
	return result
}

func (r *Result) addError(name string, err error) {
	if r.Errors == nil {
		r.Errors = make(map[string][]string)
	}
	var many fields.ValidationErrors
	var single *fields.ValidationError
	switch {
	case errors.As(err, &many):
		for _, item := range many {
			r.record(name, item)
		}
	case errors.As(err, &single):
		r.record(name, single)
	default:
		r.record(name, &fields.ValidationError{Field: name, Code: fields.CodeInvalid, Message: err.Error()})
	}
}

func (r *Result) record(name string, item *fields.ValidationError) {
	if item.Field == "" {
		copied := *item
		copied.Field = name
		item = &copied
	}
	r.Errors[name] = append(r.Errors[name], item.Message)
	r.errs = append(r.errs, item)
}
