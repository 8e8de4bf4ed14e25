// Package bootstrap3 is the convenience entry point: it builds plugin forms
// from the default plugin registry and renders them.
package bootstrap3

import (
	"fmt"

	"github.com/goliatone/go-bootstrap3/pkg/config"
	"github.com/goliatone/go-bootstrap3/pkg/forms"
	"github.com/goliatone/go-bootstrap3/pkg/link"
	"github.com/goliatone/go-bootstrap3/pkg/plugins"
)

// RenderOptions aliases forms.RenderOptions.
type RenderOptions = forms.RenderOptions

// Link aliases link.Link.
type Link = link.Link

// NewPlugins returns the built-in plugin registry with carousel styles taken
// from cfg.
func NewPlugins(cfg config.Config) *plugins.Registry {
	return plugins.NewDefaultRegistry(cfg.StyleChoices())
}

// PluginForm builds the form of the named plugin.
func PluginForm(reg *plugins.Registry, name string, opts ...forms.Option) (*forms.Form, error) {
	if reg == nil {
		return nil, fmt.Errorf("bootstrap3: plugin registry is required")
	}
	descriptor, ok := reg.Descriptor(name)
	if !ok {
		return nil, fmt.Errorf("bootstrap3: unknown plugin %q", name)
	}
	opts = append([]forms.Option{forms.WithName(descriptor.Name)}, opts...)
	return forms.New(descriptor.Fields(), opts...), nil
}

// RenderPlugin renders the form of the named plugin bound to values.
func RenderPlugin(cfg config.Config, name string, values map[string]string, opts RenderOptions) (string, error) {
	form, err := PluginForm(NewPlugins(cfg), name)
	if err != nil {
		return "", err
	}
	return form.Render(values, opts)
}
