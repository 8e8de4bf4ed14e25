package widgets

import (
	"strings"
	"testing"

	"github.com/goliatone/go-bootstrap3/pkg/attrs"
	"github.com/goliatone/go-bootstrap3/pkg/choices"
)

func TestCheckboxRendererMarksSetMembers(t *testing.T) {
	widget := NewCheckboxSelectMultiple(choices.Pairs("a", "A", "b", "B", "c", "C"), nil)

	inputs := widget.Subwidgets("letters", Value{"a", "c"}, attrs.Attrs{"id": "id_letters"})
	if len(inputs) != 3 {
		t.Fatalf("expected 3 inputs, got %d", len(inputs))
	}
	checked := map[string]bool{}
	for _, input := range inputs {
		checked[input.ChoiceValue] = input.IsChecked()
	}
	if !checked["a"] || checked["b"] || !checked["c"] {
		t.Fatalf("unexpected checked state: %v", checked)
	}

	out := widget.Render("letters", Value{"a", "c"}, attrs.Attrs{"id": "id_letters"})
	if got := strings.Count(out, `checked="checked"`); got != 2 {
		t.Fatalf("expected 2 checked markers, got %d in %s", got, out)
	}
	if strings.Contains(out, `checked="checked" id="id_letters_1"`) {
		t.Fatalf("choice b must not be checked: %s", out)
	}
}

func TestRadioRendererMarkup(t *testing.T) {
	widget := NewRadioSelect(choices.Pairs("lnk", "link", "btn", "button"), nil)

	got := widget.Render("type", Single("btn"), attrs.Attrs{"id": "id_type"})
	want := `<ul id="id_type">` +
		`<li><label for="id_type_0"><input id="id_type_0" name="type" type="radio" value="lnk" /> link</label></li>` + "\n" +
		`<li><label for="id_type_1"><input checked="checked" id="id_type_1" name="type" type="radio" value="btn" /> button</label></li>` +
		`</ul>`
	if got != want {
		t.Fatalf("radio markup mismatch\nwant: %s\n got: %s", want, got)
	}
}

func TestRadioWithoutIDOmitsIDs(t *testing.T) {
	widget := NewRadioSelect(choices.Pairs("a", "A"), nil)
	got := widget.Render("x", nil, nil)
	want := `<ul><li><label><input name="x" type="radio" value="a" /> A</label></li></ul>`
	if got != want {
		t.Fatalf("want %s, got %s", want, got)
	}
}

func TestRadioNoValueChecksNothing(t *testing.T) {
	widget := NewRadioSelect(choices.Pairs("", "Default", "lg", "Large"), nil)
	if out := widget.Render("size", nil, nil); strings.Contains(out, `checked="checked"`) {
		t.Fatalf("nil value must not check the blank choice: %s", out)
	}
	if out := widget.Render("size", Single(""), nil); strings.Count(out, `checked="checked"`) != 1 {
		t.Fatalf("empty value should check the blank choice: %s", out)
	}
}

func TestNestedGroupsSuffixIDs(t *testing.T) {
	set := choices.Set{
		choices.Group("Extra small",
			choices.Leaf("visible-xs", "Visible"),
			choices.Leaf("hidden-xs", "Hidden"),
		),
		choices.Leaf("visible-print", "Print"),
	}
	widget := NewCheckboxSelectMultiple(set, nil)

	got := widget.Render("responsive", Value{"hidden-xs"}, attrs.Attrs{"id": "id"})
	want := `<ul id="id">` +
		`<li>Extra small<ul id="id_0">` +
		`<li><label for="id_0_0"><input id="id_0_0" name="responsive" type="checkbox" value="visible-xs" /> Visible</label></li>` + "\n" +
		`<li><label for="id_0_1"><input checked="checked" id="id_0_1" name="responsive" type="checkbox" value="hidden-xs" /> Hidden</label></li>` +
		`</ul></li>` + "\n" +
		`<li><label for="id_1"><input id="id_1" name="responsive" type="checkbox" value="visible-print" /> Print</label></li>` +
		`</ul>`
	if got != want {
		t.Fatalf("nested markup mismatch\nwant: %s\n got: %s", want, got)
	}
}

func TestRendererDoesNotMutateAttrs(t *testing.T) {
	base := attrs.Attrs{"id": "id_x"}
	widget := NewRadioSelect(choices.Pairs("a", "A", "b", "B"), base)
	_ = widget.Render("x", nil, nil)
	if base["id"] != "id_x" || widget.Attrs["id"] != "id_x" {
		t.Fatalf("attrs mutated: base=%v widget=%v", base, widget.Attrs)
	}
}

func TestIDForLabel(t *testing.T) {
	widget := NewRadioSelect(nil, nil)
	if got := widget.IDForLabel("id_size"); got != "id_size_0" {
		t.Fatalf("want id_size_0, got %q", got)
	}
	if got := widget.IDForLabel(""); got != "" {
		t.Fatalf("want empty id, got %q", got)
	}
}

func TestInputsSkipGroupsKeepIndex(t *testing.T) {
	set := choices.Set{choices.Group("G", choices.Leaf("a", "A")), choices.Leaf("b", "B")}
	inputs := FieldRenderer{Type: InputRadio, Name: "x", Attrs: attrs.Attrs{"id": "id_x"}, Choices: set}.Inputs()
	if len(inputs) != 1 || inputs[0].Index != 1 || inputs[0].IDForLabel() != "id_x_1" {
		t.Fatalf("unexpected inputs: %+v", inputs)
	}
}

func TestChoiceLabelIsEscaped(t *testing.T) {
	widget := NewRadioSelect(choices.Pairs("x", "<b>bold</b>"), nil)
	out := widget.Render("n", nil, nil)
	if strings.Contains(out, "<b>") {
		t.Fatalf("label not escaped: %s", out)
	}
}
