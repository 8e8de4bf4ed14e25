package widgets

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/goliatone/go-bootstrap3/pkg/attrs"
	"github.com/goliatone/go-bootstrap3/pkg/choices"
)

// Config carries the field-specific inputs a widget factory needs.
type Config struct {
	Choices choices.Set
	Attrs   attrs.Attrs
}

// Factory builds a widget for one field.
type Factory func(cfg Config) Widget

// Descriptor bundles a factory with the name it is registered under.
type Descriptor struct {
	Name    string
	Factory Factory
}

// Registry tracks widget factories keyed by name. Callers can register new
// widgets or override defaults.
type Registry struct {
	mu      sync.RWMutex
	widgets map[string]Descriptor
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{widgets: make(map[string]Descriptor)}
}

// NewDefaultRegistry returns a registry holding the built-in widgets.
func NewDefaultRegistry() *Registry {
	reg := NewRegistry()
	reg.MustRegister(NameText, Descriptor{Factory: inputFactory("text", nil)})
	reg.MustRegister(NameNumber, Descriptor{Factory: inputFactory("number", nil)})
	reg.MustRegister(NameURL, Descriptor{Factory: inputFactory("url", nil)})
	reg.MustRegister(NameEmail, Descriptor{Factory: inputFactory("email", nil)})
	reg.MustRegister(NameIcon, Descriptor{Factory: inputFactory("text", attrs.Attrs{"data-widget": "icon"})})
	reg.MustRegister(NameTextarea, Descriptor{Factory: func(cfg Config) Widget {
		return NewTextarea(cfg.Attrs)
	}})
	reg.MustRegister(NameMiniTextarea, Descriptor{Factory: func(cfg Config) Widget {
		return NewTextarea(attrs.Merge(attrs.Attrs{"cols": "120", "rows": "1"}, cfg.Attrs))
	}})
	reg.MustRegister(NameAttributes, Descriptor{Factory: func(cfg Config) Widget {
		return NewTextarea(attrs.Merge(attrs.Attrs{"cols": "40", "rows": "3"}, cfg.Attrs))
	}})
	reg.MustRegister(NameSelect, Descriptor{Factory: func(cfg Config) Widget {
		return NewSelect(cfg.Choices, cfg.Attrs)
	}})
	reg.MustRegister(NameRadio, Descriptor{Factory: func(cfg Config) Widget {
		return NewRadioSelect(cfg.Choices, cfg.Attrs)
	}})
	reg.MustRegister(NameCheckbox, Descriptor{Factory: func(cfg Config) Widget {
		return NewCheckboxSelectMultiple(cfg.Choices, cfg.Attrs)
	}})
	return reg
}

func inputFactory(inputType string, defaults attrs.Attrs) Factory {
	return func(cfg Config) Widget {
		return NewInput(inputType, attrs.Merge(defaults, cfg.Attrs))
	}
}

// Clone returns a copy of the registry to allow isolated mutations.
func (r *Registry) Clone() *Registry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cloned := NewRegistry()
	for name, descriptor := range r.widgets {
		cloned.widgets[name] = descriptor
	}
	return cloned
}

// Register associates a descriptor with the provided name. Existing entries
// are replaced.
func (r *Registry) Register(name string, descriptor Descriptor) error {
	if name = normalize(name); name == "" {
		return fmt.Errorf("widgets: widget name is required")
	}
	if descriptor.Factory == nil {
		return fmt.Errorf("widgets: factory for %q is nil", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	descriptor.Name = name
	r.widgets[name] = descriptor
	return nil
}

// MustRegister mirrors Register but panics on error.
func (r *Registry) MustRegister(name string, descriptor Descriptor) {
	if err := r.Register(name, descriptor); err != nil {
		panic(err)
	}
}

// Descriptor fetches a descriptor by name.
func (r *Registry) Descriptor(name string) (Descriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	descriptor, ok := r.widgets[normalize(name)]
	return descriptor, ok
}

// Build constructs the named widget.
func (r *Registry) Build(name string, cfg Config) (Widget, error) {
	descriptor, ok := r.Descriptor(name)
	if !ok {
		return nil, fmt.Errorf("widgets: widget %q not registered", name)
	}
	return descriptor.Factory(cfg), nil
}

// Names returns a sorted slice of registered widget names.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.widgets))
	for name := range r.widgets {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
