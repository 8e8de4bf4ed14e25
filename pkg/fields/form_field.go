package fields

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	"github.com/goliatone/go-bootstrap3/pkg/choices"
)

var (
	validate          = validator.New()
	cssClassPattern   = regexp.MustCompile(`^-?[_a-zA-Z]+[_a-zA-Z0-9-]*$`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// FormField is the form-side view of a Field: what to render and how to
// clean submitted values.
type FormField struct {
	Name         string
	Label        string
	HelpHTML     string
	Kind         Kind
	Widget       string
	Required     bool
	Initial      string
	HasInitial   bool
	MaxLength    int
	Choices      choices.Set
	Min          *int
	Max          *int
	ExcludedKeys []string
}

// FormField derives the form representation of f. The blank option is added
// to the choices when the field is blank or has no default, unless the
// declared choices already contain a "" entry.
func (f Field) FormField() FormField {
	spec := f.DescribeForm()
	ff := FormField{
		Name:         f.Name,
		Label:        f.Label,
		HelpHTML:     SanitizeHelpText(f.HelpText),
		Kind:         spec.Kind,
		Widget:       spec.Widget,
		Required:     !f.Storage.Blank,
		Initial:      f.Storage.Default,
		HasInitial:   f.Storage.HasDefault,
		MaxLength:    f.Storage.MaxLength,
		Min:          spec.Min,
		Max:          spec.Max,
		ExcludedKeys: spec.ExcludedKeys,
	}
	switch spec.Kind {
	case KindChoice:
		ff.Choices = f.Choices(f.IncludeBlank())
	case KindMultipleChoice:
		ff.Choices = spec.Choices
	}
	return ff
}

// Multiple reports whether the field accepts several values.
func (ff FormField) Multiple() bool {
	return ff.Kind == KindMultipleChoice
}

// Clean validates submitted values and returns the normalised stored value.
// Single-valued fields read the first entry.
func (ff FormField) Clean(values []string) (string, error) {
	if ff.Multiple() {
		return ff.cleanMultiple(values)
	}

	raw := ""
	if len(values) > 0 {
		raw = strings.TrimSpace(values[0])
	}
	if raw == "" {
		if ff.Required {
			return "", newValidationError(ff.Name, CodeRequired, "this field is required")
		}
		return "", nil
	}

	cleaned, err := ff.cleanValue(raw)
	if err != nil {
		return "", err
	}
	if err := ff.checkLength(cleaned); err != nil {
		return "", err
	}
	return cleaned, nil
}

func (ff FormField) cleanValue(raw string) (string, error) {
	switch ff.Kind {
	case KindChoice:
		if !ff.Choices.Contains(raw) {
			return "", newValidationError(ff.Name, CodeInvalidChoice, "select a valid choice, %q is not one of the available choices", raw)
		}
		return raw, nil
	case KindClasses:
		tokens := whitespacePattern.Split(raw, -1)
		for _, token := range tokens {
			if !cssClassPattern.MatchString(token) {
				return "", newValidationError(ff.Name, CodeInvalid, "%q is not a valid class name", token)
			}
		}
		return strings.Join(tokens, " "), nil
	case KindInteger:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return "", newValidationError(ff.Name, CodeInvalid, "enter a whole number")
		}
		if ff.Min != nil && n < *ff.Min {
			return "", newValidationError(ff.Name, CodeMinValue, "ensure this value is greater than or equal to %d", *ff.Min)
		}
		if ff.Max != nil && n > *ff.Max {
			return "", newValidationError(ff.Name, CodeMaxValue, "ensure this value is less than or equal to %d", *ff.Max)
		}
		return strconv.Itoa(n), nil
	case KindURL:
		if err := validate.Var(raw, "url"); err != nil {
			return "", newValidationError(ff.Name, CodeInvalid, "enter a valid URL")
		}
		return raw, nil
	case KindEmail:
		if err := validate.Var(raw, "email"); err != nil {
			return "", newValidationError(ff.Name, CodeInvalid, "enter a valid email address")
		}
		return raw, nil
	case KindAttributes:
		parsed, err := ParseAttributes(raw)
		if err != nil {
			if verr, ok := err.(*ValidationError); ok {
				verr.Field = ff.Name
			}
			return "", err
		}
		if errs := ValidateAttributes(ff.Name, parsed, ff.ExcludedKeys); len(errs) > 0 {
			return "", errs
		}
		return FormatAttributes(parsed), nil
	default:
		return raw, nil
	}
}

func (ff FormField) cleanMultiple(values []string) (string, error) {
	picked := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, value := range values {
		for _, token := range strings.Fields(value) {
			if _, dup := seen[token]; dup {
				continue
			}
			if !ff.Choices.Contains(token) {
				return "", newValidationError(ff.Name, CodeInvalidChoice, "select a valid choice, %q is not one of the available choices", token)
			}
			seen[token] = struct{}{}
			picked = append(picked, token)
		}
	}
	if len(picked) == 0 {
		if ff.Required {
			return "", newValidationError(ff.Name, CodeRequired, "this field is required")
		}
		return "", nil
	}
	cleaned := strings.Join(picked, " ")
	if err := ff.checkLength(cleaned); err != nil {
		return "", err
	}
	return cleaned, nil
}

func (ff FormField) checkLength(value string) error {
	if ff.MaxLength > 0 && utf8.RuneCountInString(value) > ff.MaxLength {
		return newValidationError(ff.Name, CodeMaxLength, "ensure this value has at most %d characters (it has %d)", ff.MaxLength, utf8.RuneCountInString(value))
	}
	return nil
}

// SplitStored splits a stored multiple-choice value into its entries.
func SplitStored(value string) []string {
	return strings.Fields(value)
}
