package prompt

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-bootstrap3/pkg/fields"
	"github.com/goliatone/go-bootstrap3/pkg/forms"
	"github.com/goliatone/go-bootstrap3/pkg/testsupport"
)

type fakeDriver struct {
	inputs      map[string]string
	inputQueue  map[string][]string
	selects     map[string]int
	multi       map[string][]int
	textareas   map[string]string
	inputErr    error
	infos       []string
	seenSelects map[string]SelectConfig
	validated   map[string]error
	confirms    []bool
	asked       []ConfirmConfig
}

func (d *fakeDriver) Input(_ context.Context, cfg InputConfig) (string, error) {
	if d.inputErr != nil {
		return "", d.inputErr
	}
	value, ok := d.inputs[cfg.Message]
	if queued := d.inputQueue[cfg.Message]; len(queued) > 0 {
		value, ok = queued[0], true
		d.inputQueue[cfg.Message] = queued[1:]
	}
	if !ok {
		value = cfg.Default
	}
	if cfg.Validator != nil {
		if d.validated == nil {
			d.validated = map[string]error{}
		}
		d.validated[cfg.Message] = cfg.Validator(value)
	}
	return value, nil
}

func (d *fakeDriver) Confirm(_ context.Context, cfg ConfirmConfig) (bool, error) {
	d.asked = append(d.asked, cfg)
	if len(d.confirms) == 0 {
		return false, nil
	}
	answer := d.confirms[0]
	d.confirms = d.confirms[1:]
	return answer, nil
}

func (d *fakeDriver) Select(_ context.Context, cfg SelectConfig) (int, error) {
	if d.seenSelects == nil {
		d.seenSelects = map[string]SelectConfig{}
	}
	d.seenSelects[cfg.Message] = cfg
	if idx, ok := d.selects[cfg.Message]; ok {
		return idx, nil
	}
	return cfg.DefaultIndex, nil
}

func (d *fakeDriver) MultiSelect(_ context.Context, cfg SelectConfig) ([]int, error) {
	if picked, ok := d.multi[cfg.Message]; ok {
		return picked, nil
	}
	return cfg.Defaults, nil
}

func (d *fakeDriver) TextArea(_ context.Context, cfg TextAreaConfig) (string, error) {
	if text, ok := d.textareas[cfg.Message]; ok {
		return text, nil
	}
	return cfg.Default, nil
}

func (d *fakeDriver) Info(_ context.Context, msg string) error {
	d.infos = append(d.infos, msg)
	return nil
}

func buttonForm() *forms.Form {
	return forms.New([]fields.Field{
		fields.LinkOrButton("type"),
		fields.Size("btn_size"),
		fields.Responsive("responsive"),
		fields.Char("label", 20, fields.WithBlank(true)),
		fields.Attributes("link_attributes", fields.WithExcludedKeys(fields.ReservedLinkAttributes...)),
		fields.Reference("link_page"),
	}, forms.WithName("button"))
}

func TestEditCollectsAnswers(t *testing.T) {
	driver := &fakeDriver{
		selects:   map[string]int{"Type": 1, "Size": 0},
		multi:     map[string][]int{"Responsive": {1, 6}},
		inputs:    map[string]string{"Label": "Buy now"},
		textareas: map[string]string{"Attributes": "rel=nofollow"},
	}
	editor := NewEditor(WithDriver(driver))

	result, err := editor.Edit(testsupport.Context(), buttonForm(), map[string]string{"link_page": "42"})
	if err != nil {
		t.Fatalf("edit: %v", err)
	}
	if !result.Valid() {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	want := map[string]string{
		"type":            "btn",
		"btn_size":        "lg",
		"responsive":      "hidden-xs visible-lg",
		"label":           "Buy now",
		"link_attributes": `{"rel":"nofollow"}`,
		"link_page":       "42",
	}
	if diff := cmp.Diff(want, result.Values); diff != "" {
		t.Fatalf("values mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"Editing button"}, driver.infos); diff != "" {
		t.Fatalf("info mismatch (-want +got):\n%s", diff)
	}
}

func TestEditDefaultsFromInitialValues(t *testing.T) {
	driver := &fakeDriver{}
	editor := NewEditor(WithDriver(driver))

	result, err := editor.Edit(context.Background(), buttonForm(), nil)
	if err != nil {
		t.Fatalf("edit: %v", err)
	}
	if result.Values["type"] != "lnk" || result.Values["btn_size"] != "" {
		t.Fatalf("initial values not kept: %v", result.Values)
	}
	sizeCfg := driver.seenSelects["Size"]
	if diff := cmp.Diff([]string{"Large", "Default", "Small", "Extra small"}, sizeCfg.Options); diff != "" {
		t.Fatalf("size options mismatch (-want +got):\n%s", diff)
	}
	if sizeCfg.DefaultIndex != 1 {
		t.Fatalf("expected default index 1, got %d", sizeCfg.DefaultIndex)
	}
}

func TestEditValidatorUsesFieldCleaner(t *testing.T) {
	driver := &fakeDriver{inputs: map[string]string{"Label": "this label is far too long"}}
	editor := NewEditor(WithDriver(driver))

	result, err := editor.Edit(context.Background(), buttonForm(), nil)
	if err != nil {
		t.Fatalf("edit: %v", err)
	}
	if !errors.Is(driver.validated["Label"], fields.ErrValidation) {
		t.Fatalf("validator did not reject long label: %v", driver.validated["Label"])
	}
	if _, ok := result.Errors["label"]; !ok {
		t.Fatalf("expected label error in result: %v", result.Errors)
	}
}

func TestEditReportsErrorsAndStopsWhenDeclined(t *testing.T) {
	driver := &fakeDriver{inputs: map[string]string{"Label": "this label is far too long"}}
	editor := NewEditor(WithDriver(driver))

	result, err := editor.Edit(context.Background(), buttonForm(), nil)
	if err != nil {
		t.Fatalf("edit: %v", err)
	}
	if result.Valid() {
		t.Fatalf("expected invalid result")
	}
	if len(driver.asked) != 1 || !driver.asked[0].Default {
		t.Fatalf("expected one confirm defaulting to yes, got %+v", driver.asked)
	}
	if len(driver.infos) != 2 || !strings.HasPrefix(driver.infos[1], "label: ") {
		t.Fatalf("expected label error shown, got %v", driver.infos)
	}
}

func TestEditRetriesAfterConfirm(t *testing.T) {
	driver := &fakeDriver{
		inputQueue: map[string][]string{"Label": {"this label is far too long", "Short"}},
		multi:      map[string][]int{"Responsive": {1}},
		confirms:   []bool{true},
	}
	editor := NewEditor(WithDriver(driver))

	result, err := editor.Edit(context.Background(), buttonForm(), map[string]string{"link_page": "7"})
	if err != nil {
		t.Fatalf("edit: %v", err)
	}
	if !result.Valid() {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if result.Values["label"] != "Short" || result.Values["link_page"] != "7" {
		t.Fatalf("unexpected values: %v", result.Values)
	}
	if result.Values["responsive"] != "hidden-xs" {
		t.Fatalf("responsive answer lost: %q", result.Values["responsive"])
	}
	if len(driver.asked) != 1 {
		t.Fatalf("expected one confirm, got %d", len(driver.asked))
	}
}

func TestEditAborted(t *testing.T) {
	driver := &fakeDriver{inputErr: ErrAborted}
	editor := NewEditor(WithDriver(driver))

	if _, err := editor.Edit(context.Background(), buttonForm(), nil); !errors.Is(err, ErrAborted) {
		t.Fatalf("expected ErrAborted, got %v", err)
	}
}

func TestSelectHelpers(t *testing.T) {
	options := []string{"a", "b", "c"}
	if got := indexOf(options, "c"); got != 2 {
		t.Fatalf("indexOf = %d", got)
	}
	if diff := cmp.Diff([]int{0, 2}, indicesOf(options, []string{"c", "a", "z"})); diff != "" {
		t.Fatalf("indicesOf mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"b"}, defaultsFromIndices(options, []int{1, 9})); diff != "" {
		t.Fatalf("defaults mismatch (-want +got):\n%s", diff)
	}
}

func TestAttributesDefault(t *testing.T) {
	if got := attributesDefault(`{"b":"2","a":"1"}`); got != "a=1\nb=2" {
		t.Fatalf("got %q", got)
	}
}
