package link

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/goliatone/go-bootstrap3/pkg/fields"
)

var validate = validator.New()

// Validate checks field formats and reserved attribute keys. It returns
// fields.ValidationErrors, or nil when the link is valid.
func (l Link) Validate() error {
	var errs fields.ValidationErrors
	if err := validate.Struct(l); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return err
		}
		for _, fe := range verrs {
			errs = append(errs, &fields.ValidationError{
				Field:   fieldName(fe.Field()),
				Code:    codeFor(fe.Tag()),
				Message: messageFor(fe),
			})
		}
	}
	errs = append(errs, fields.ValidateAttributes(FieldAttributes, l.Attributes, ReservedAttributes)...)
	return errs.OrNil()
}

func fieldName(structField string) string {
	switch structField {
	case "URL":
		return FieldURL
	case "Mailto":
		return FieldMailto
	case "Phone":
		return FieldPhone
	case "Anchor":
		return FieldAnchor
	case "Target":
		return FieldTarget
	default:
		return strings.ToLower(structField)
	}
}

func codeFor(tag string) string {
	switch tag {
	case "max":
		return fields.CodeMaxLength
	case "oneof":
		return fields.CodeInvalidChoice
	default:
		return fields.CodeInvalid
	}
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "url":
		return "enter a valid URL"
	case "email":
		return "enter a valid email address"
	case "max":
		return "ensure this value has at most " + fe.Param() + " characters"
	case "oneof":
		return "select a valid choice"
	default:
		return "invalid value"
	}
}
