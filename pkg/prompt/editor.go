// Package prompt edits form values interactively in a terminal.
package prompt

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/goliatone/go-bootstrap3/pkg/choices"
	"github.com/goliatone/go-bootstrap3/pkg/fields"
	"github.com/goliatone/go-bootstrap3/pkg/forms"
	"github.com/goliatone/go-bootstrap3/pkg/interfaces/logger"
)

// Option configures an Editor.
type Option func(*Editor)

// WithDriver swaps the prompt driver.
func WithDriver(driver Driver) Option {
	return func(e *Editor) {
		if driver != nil {
			e.driver = driver
		}
	}
}

// WithLogger sets the logger.
func WithLogger(lgr logger.Logger) Option {
	return func(e *Editor) {
		if lgr != nil {
			e.logger = lgr
		}
	}
}

// Editor walks the fields of a form and asks for each value.
type Editor struct {
	driver Driver
	logger logger.Logger
}

// NewEditor returns an editor using the survey driver unless overridden.
func NewEditor(opts ...Option) *Editor {
	e := &Editor{logger: &logger.Nop{}}
	for _, opt := range opts {
		if opt != nil {
			opt(e)
		}
	}
	if e.driver == nil {
		e.driver = NewSurveyDriver()
	}
	return e
}

// Edit prompts for every field of form starting from current (stored
// values; missing entries use the field's initial value) and returns the
// cleaned result. Single choices use a select, multiple choices a
// multi-select, attributes a multi-line editor and everything else a text
// input validated by the field's cleaner. Reference fields keep their
// current value. When cleaning reports errors they are shown and the user
// may edit the form again starting from the rejected answers.
func (e *Editor) Edit(ctx context.Context, form *forms.Form, current map[string]string) (forms.Result, error) {
	if form == nil {
		return forms.Result{}, errors.New("prompt: form is required")
	}
	if name := form.Name(); name != "" {
		if err := e.driver.Info(ctx, "Editing "+name); err != nil {
			return forms.Result{}, err
		}
	}

	for {
		submitted, err := e.collect(ctx, form, current)
		if err != nil {
			return forms.Result{}, err
		}
		result := form.Clean(submitted)
		if result.Valid() {
			return result, nil
		}

		for _, field := range form.Fields() {
			for _, message := range result.Errors[field.Name] {
				if err := e.driver.Info(ctx, field.Name+": "+message); err != nil {
					return forms.Result{}, err
				}
			}
		}
		again, err := e.driver.Confirm(ctx, ConfirmConfig{
			Message: "Some values are invalid. Edit again?",
			Default: true,
		})
		if err != nil {
			return forms.Result{}, err
		}
		if !again {
			return result, nil
		}
		e.logger.Debug("prompt: editing again", logger.Field{Key: "errors", Value: len(result.Errors)})

		current = make(map[string]string, len(submitted))
		for name, answers := range submitted {
			current[name] = strings.Join(answers, " ")
		}
	}
}

func (e *Editor) collect(ctx context.Context, form *forms.Form, current map[string]string) (url.Values, error) {
	submitted := url.Values{}
	for _, field := range form.Fields() {
		value, ok := current[field.Name]
		if !ok && field.HasInitial {
			value, ok = field.Initial, true
		}

		answers, err := e.ask(ctx, field, value)
		if err != nil {
			if errors.Is(err, ErrAborted) {
				e.logger.Info("prompt: editing aborted", logger.Field{Key: "field", Value: field.Name})
			}
			return nil, err
		}
		if answers == nil {
			if ok {
				submitted[field.Name] = []string{value}
			}
			continue
		}
		submitted[field.Name] = answers
	}
	return submitted, nil
}

func (e *Editor) ask(ctx context.Context, field fields.FormField, value string) ([]string, error) {
	message := field.Label
	if message == "" {
		message = field.Name
	}

	switch field.Kind {
	case fields.KindReference:
		return nil, nil
	case fields.KindChoice:
		leaves := field.Choices.Leaves()
		idx, err := e.driver.Select(ctx, SelectConfig{
			Message:      message,
			Options:      field.Choices.Labels(),
			DefaultIndex: leafIndex(leaves, value),
			Help:         field.HelpHTML,
		})
		if err != nil {
			return nil, err
		}
		if idx < 0 || idx >= len(leaves) {
			return nil, fmt.Errorf("prompt: field %q: selection out of range", field.Name)
		}
		return []string{leaves[idx].Value()}, nil
	case fields.KindMultipleChoice:
		leaves := field.Choices.Leaves()
		var defaults []int
		for _, entry := range fields.SplitStored(value) {
			if idx := leafIndex(leaves, entry); idx >= 0 {
				defaults = append(defaults, idx)
			}
		}
		picked, err := e.driver.MultiSelect(ctx, SelectConfig{
			Message:  message,
			Options:  field.Choices.Labels(),
			Defaults: defaults,
			Help:     field.HelpHTML,
		})
		if err != nil {
			return nil, err
		}
		out := make([]string, 0, len(picked))
		for _, idx := range picked {
			if idx >= 0 && idx < len(leaves) {
				out = append(out, leaves[idx].Value())
			}
		}
		return out, nil
	case fields.KindAttributes:
		text, err := e.driver.TextArea(ctx, TextAreaConfig{
			Message:   message,
			Default:   attributesDefault(value),
			Help:      "One key=value pair per line.",
			Validator: cleaner(field),
		})
		if err != nil {
			return nil, err
		}
		return []string{text}, nil
	default:
		text, err := e.driver.Input(ctx, InputConfig{
			Message:   message,
			Default:   value,
			Help:      field.HelpHTML,
			Validator: cleaner(field),
		})
		if err != nil {
			return nil, err
		}
		return []string{text}, nil
	}
}

func cleaner(field fields.FormField) func(string) error {
	return func(text string) error {
		_, err := field.Clean([]string{text})
		return err
	}
}

func leafIndex(leaves []choices.Choice, value string) int {
	for i, leaf := range leaves {
		if leaf.Value() == value {
			return i
		}
	}
	return -1
}

// attributesDefault shows stored JSON attributes as key=value lines.
func attributesDefault(stored string) string {
	parsed, err := fields.ParseAttributes(stored)
	if err != nil || len(parsed) == 0 {
		return stored
	}
	var out string
	for i, key := range parsed.Keys() {
		if i > 0 {
			out += "\n"
		}
		out += key + "=" + parsed[key]
	}
	return out
}
