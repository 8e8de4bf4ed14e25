package widgets

import (
	"strings"
	"testing"

	"github.com/goliatone/go-bootstrap3/pkg/attrs"
	"github.com/goliatone/go-bootstrap3/pkg/choices"
)

func TestSelectRendersOptions(t *testing.T) {
	set := choices.Pairs("", "— none —", "_blank", "Open in new window").WithBlank(true)
	widget := NewSelect(set, nil)

	got := widget.Render("link_target", Single("_blank"), attrs.Attrs{"id": "id_link_target"})
	want := strings.Join([]string{
		`<select id="id_link_target" name="link_target">`,
		`<option value="">— none —</option>`,
		`<option value="_blank" selected="selected">Open in new window</option>`,
		`</select>`,
	}, "\n")
	if got != want {
		t.Fatalf("select mismatch\nwant: %s\n got: %s", want, got)
	}
	if strings.Count(got, `value=""`) != 1 {
		t.Fatalf("expected a single blank option: %s", got)
	}
}

func TestSelectOptGroups(t *testing.T) {
	set := choices.Set{choices.Group("Sizes", choices.Leaf("lg", "Large"))}
	got := NewSelect(set, nil).Render("s", nil, nil)
	if !strings.Contains(got, `<optgroup label="Sizes">`+"\n"+`<option value="lg">Large</option>`+"\n"+`</optgroup>`) {
		t.Fatalf("optgroup not rendered: %s", got)
	}
}

func TestInputAndTextarea(t *testing.T) {
	if got := NewInput("", nil).Render("icon", nil, nil); got != `<input name="icon" type="text" />` {
		t.Fatalf("unexpected input: %s", got)
	}
	if got := NewInput("url", nil).Render("u", Single("https://a.b/?x=1&y=2"), nil); got != `<input name="u" type="url" value="https://a.b/?x=1&amp;y=2" />` {
		t.Fatalf("unexpected url input: %s", got)
	}
	got := NewTextarea(attrs.Attrs{"rows": "1"}).Render("classes", Single("a<b"), nil)
	if got != `<textarea cols="40" name="classes" rows="1">a&lt;b</textarea>` {
		t.Fatalf("unexpected textarea: %s", got)
	}
}

func TestRegistryDefaults(t *testing.T) {
	reg := NewDefaultRegistry()
	for _, name := range []string{NameText, NameTextarea, NameMiniTextarea, NameNumber, NameURL, NameEmail, NameIcon, NameSelect, NameRadio, NameCheckbox, NameAttributes} {
		if _, ok := reg.Descriptor(name); !ok {
			t.Fatalf("expected %q registered", name)
		}
	}

	widget, err := reg.Build(" Checkbox ", Config{Choices: choices.Pairs("a", "A")})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if !IsMultiple(widget) {
		t.Fatalf("checkbox widget should be multi-valued")
	}
	if _, err := reg.Build("missing", Config{}); err == nil {
		t.Fatalf("expected error for unknown widget")
	}
}

func TestRegistryRegisterValidation(t *testing.T) {
	reg := NewRegistry()
	if err := reg.Register(" ", Descriptor{Factory: func(Config) Widget { return NewInput("", nil) }}); err == nil {
		t.Fatalf("expected error for empty name")
	}
	if err := reg.Register("x", Descriptor{}); err == nil {
		t.Fatalf("expected error for nil factory")
	}

	clone := NewDefaultRegistry().Clone()
	clone.MustRegister("custom", Descriptor{Factory: func(Config) Widget { return NewInput("color", nil) }})
	if _, ok := NewDefaultRegistry().Descriptor("custom"); ok {
		t.Fatalf("clone registration leaked")
	}
}
