package attrs

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMergeDoesNotMutateInputs(t *testing.T) {
	base := Attrs{"id": "id_size", "class": "radio"}
	override := Attrs{"class": "radio-inline", "data-x": "1"}

	merged := Merge(base, override)

	want := Attrs{"id": "id_size", "class": "radio-inline", "data-x": "1"}
	if diff := cmp.Diff(want, merged); diff != "" {
		t.Fatalf("merged attrs mismatch (-want +got):\n%s", diff)
	}
	if base["class"] != "radio" {
		t.Fatalf("base mutated: %v", base)
	}
	if len(override) != 2 {
		t.Fatalf("override mutated: %v", override)
	}
}

func TestMergeNilBase(t *testing.T) {
	merged := Merge(nil, Attrs{"a": "b"})
	if merged["a"] != "b" {
		t.Fatalf("expected override applied to nil base, got %v", merged)
	}
	if got := Merge(nil); got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil map, got %#v", got)
	}
}

func TestWithout(t *testing.T) {
	in := Attrs{"class": "x", "HREF": "/", "title": "t", "target": "_blank"}
	got := Without(in, "class", "href", "target")
	if diff := cmp.Diff(Attrs{"title": "t"}, got); diff != "" {
		t.Fatalf("without mismatch (-want +got):\n%s", diff)
	}
	if len(in) != 4 {
		t.Fatalf("input mutated: %v", in)
	}
}

func TestFlatten(t *testing.T) {
	got := Flatten(Attrs{"name": "a&b", "id": `x"y`})
	want := ` id="x&#34;y" name="a&amp;b"`
	if got != want {
		t.Fatalf("flatten: want %q, got %q", want, got)
	}
	if Flatten(nil) != "" {
		t.Fatalf("expected empty string for nil attrs")
	}
}

func TestWithCopies(t *testing.T) {
	in := Attrs{"id": "a"}
	out := in.With("id", "b")
	if in["id"] != "a" || out["id"] != "b" {
		t.Fatalf("With must copy: in=%v out=%v", in, out)
	}
}
