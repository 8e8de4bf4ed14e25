package forms

import (
	"sort"
	"strings"
	"sync"

	"github.com/goliatone/go-bootstrap3/pkg/fields"
	"github.com/goliatone/go-bootstrap3/pkg/widgets"
)

// Matcher decides whether a widget should handle the supplied field.
type Matcher func(field fields.FormField) bool

type rule struct {
	name     string
	priority int
	match    Matcher
	order    int
}

// Resolver selects widget names for fields.FormField values. A widget
// declared on the field always wins; otherwise matchers keyed on the field
// kind decide, so choice fields get a select, multiple choices a checkbox
// list, attributes a key/value editor and class lists a textarea, with a
// plain text input as the fallback. Higher priority wins; ties fall back to
// registration order.
type Resolver struct {
	mu    sync.RWMutex
	rules []rule
}

// NewResolver constructs a resolver with the built-in matchers registered.
func NewResolver() *Resolver {
	res := &Resolver{}
	res.registerBuiltins()
	return res
}

// Register adds a matcher with the provided widget name and priority.
func (r *Resolver) Register(name string, priority int, matcher Matcher) {
	if r == nil || matcher == nil {
		return
	}
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.rules = append(r.rules, rule{
		name:     trimmed,
		priority: priority,
		match:    matcher,
		order:    len(r.rules),
	})
}

// Resolve returns the widget name for field. An explicit widget on the field
// is honoured before matcher evaluation.
func (r *Resolver) Resolve(field fields.FormField) (string, bool) {
	if explicit := strings.TrimSpace(field.Widget); explicit != "" {
		return explicit, true
	}
	if r == nil {
		return "", false
	}
	r.mu.RLock()
	if len(r.rules) == 0 {
		r.mu.RUnlock()
		return "", false
	}
	rules := append([]rule(nil), r.rules...)
	r.mu.RUnlock()
	sort.SliceStable(rules, func(i, j int) bool {
		if rules[i].priority == rules[j].priority {
			return rules[i].order < rules[j].order
		}
		return rules[i].priority > rules[j].priority
	})
	for _, entry := range rules {
		if entry.match(field) {
			return entry.name, true
		}
	}
	return "", false
}

func (r *Resolver) registerBuiltins() {
	r.Register(widgets.NameCheckbox, 90, func(field fields.FormField) bool {
		return field.Kind == fields.KindMultipleChoice
	})
	r.Register(widgets.NameSelect, 80, func(field fields.FormField) bool {
		return field.Kind == fields.KindChoice
	})
	r.Register(widgets.NameNumber, 70, func(field fields.FormField) bool {
		return field.Kind == fields.KindInteger
	})
	r.Register(widgets.NameURL, 60, func(field fields.FormField) bool {
		return field.Kind == fields.KindURL
	})
	r.Register(widgets.NameEmail, 60, func(field fields.FormField) bool {
		return field.Kind == fields.KindEmail
	})
	r.Register(widgets.NameAttributes, 50, func(field fields.FormField) bool {
		return field.Kind == fields.KindAttributes
	})
	r.Register(widgets.NameTextarea, 40, func(field fields.FormField) bool {
		return field.Kind == fields.KindClasses
	})
	r.Register(widgets.NameText, 0, func(fields.FormField) bool {
		return true
	})
}
