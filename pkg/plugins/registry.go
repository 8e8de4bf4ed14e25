package plugins

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/goliatone/go-bootstrap3/pkg/choices"
	"github.com/goliatone/go-bootstrap3/pkg/fields"
)

// Built-in plugin names.
const (
	NameButton   = "button"
	NameRow      = "row"
	NameColumn   = "column"
	NameImage    = "image"
	NameCarousel = "carousel"
)

// Descriptor describes a plugin: its fields and how cleaned values map to
// the block's CSS classes.
type Descriptor struct {
	Name    string
	Label   string
	Fields  func() []fields.Field
	Classes func(values map[string]string) (string, error)
}

// Registry tracks plugin descriptors keyed by name.
type Registry struct {
	mu      sync.RWMutex
	plugins map[string]Descriptor
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{plugins: make(map[string]Descriptor)}
}

// NewDefaultRegistry returns a registry holding the built-in plugins.
// carouselStyles extends the carousel style choices.
func NewDefaultRegistry(carouselStyles choices.Set) *Registry {
	reg := NewRegistry()
	reg.MustRegister(Descriptor{
		Name:   NameButton,
		Label:  "Button",
		Fields: ButtonFields,
		Classes: func(values map[string]string) (string, error) {
			btn, err := ButtonFromValues(values)
			if err != nil {
				return "", err
			}
			return btn.CSSClasses(), nil
		},
	})
	reg.MustRegister(Descriptor{
		Name:   NameRow,
		Label:  "Row",
		Fields: RowFields,
		Classes: func(values map[string]string) (string, error) {
			return Row{Classes: values["classes"]}.CSSClasses(), nil
		},
	})
	reg.MustRegister(Descriptor{
		Name:   NameColumn,
		Label:  "Column",
		Fields: ColumnFields,
		Classes: func(values map[string]string) (string, error) {
			col, err := ColumnFromValues(values)
			if err != nil {
				return "", err
			}
			return col.CSSClasses(), nil
		},
	})
	reg.MustRegister(Descriptor{
		Name:   NameImage,
		Label:  "Image",
		Fields: ImageFields,
		Classes: func(values map[string]string) (string, error) {
			return ImageFromValues(values).CSSClasses(), nil
		},
	})
	styles := carouselStyles.Clone()
	reg.MustRegister(Descriptor{
		Name:  NameCarousel,
		Label: "Carousel",
		Fields: func() []fields.Field {
			return CarouselFields(styles)
		},
		Classes: func(values map[string]string) (string, error) {
			c, err := CarouselFromValues(values)
			if err != nil {
				return "", err
			}
			return c.CSSClasses(), nil
		},
	})
	return reg
}

// Register adds or replaces a descriptor.
func (r *Registry) Register(descriptor Descriptor) error {
	name := strings.ToLower(strings.TrimSpace(descriptor.Name))
	if name == "" {
		return fmt.Errorf("plugins: plugin name is required")
	}
	if descriptor.Fields == nil {
		return fmt.Errorf("plugins: fields for %q are nil", name)
	}
	descriptor.Name = name

	r.mu.Lock()
	defer r.mu.Unlock()
	r.plugins[name] = descriptor
	return nil
}

// MustRegister mirrors Register but panics on error.
func (r *Registry) MustRegister(descriptor Descriptor) {
	if err := r.Register(descriptor); err != nil {
		panic(err)
	}
}

// Descriptor fetches a descriptor by name.
func (r *Registry) Descriptor(name string) (Descriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	descriptor, ok := r.plugins[strings.ToLower(strings.TrimSpace(name))]
	return descriptor, ok
}

// Names returns the sorted plugin names.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.plugins))
	for name := range r.plugins {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
