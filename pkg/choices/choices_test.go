package choices

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestWithBlankAddsAutomaticOption(t *testing.T) {
	set := Pairs("lg", "Large", "sm", "Small")
	got := set.WithBlank(true).Values()
	if diff := cmp.Diff([]string{"", "lg", "sm"}, got); diff != "" {
		t.Fatalf("values mismatch (-want +got):\n%s", diff)
	}
	if label, _ := set.WithBlank(true).LabelFor(""); label != BlankLabel {
		t.Fatalf("expected automatic blank label, got %q", label)
	}
}

func TestWithBlankSuppressedByExplicitBlank(t *testing.T) {
	set := Pairs("", "— none —", "a", "A")
	got := set.WithBlank(true)

	blanks := 0
	for _, leaf := range got.Leaves() {
		if leaf.Value() == "" {
			blanks++
			if leaf.Label() != "— none —" {
				t.Fatalf("explicit blank label replaced: %q", leaf.Label())
			}
		}
	}
	if blanks != 1 {
		t.Fatalf("expected exactly one blank entry, got %d", blanks)
	}
}

func TestWithBlankExcluded(t *testing.T) {
	set := Pairs("a", "A")
	if got := set.WithBlank(false).Values(); len(got) != 1 {
		t.Fatalf("expected no blank, got %v", got)
	}
}

func TestGroupLeaves(t *testing.T) {
	set := Set{
		Group("Audio", Leaf("vinyl", "Vinyl"), Leaf("cd", "CD")),
		Leaf("unknown", "Unknown"),
	}
	if diff := cmp.Diff([]string{"vinyl", "cd", "unknown"}, set.Values()); diff != "" {
		t.Fatalf("values mismatch (-want +got):\n%s", diff)
	}
	if !set.Contains("cd") || set.Contains("Audio") {
		t.Fatalf("contains must only match leaves")
	}
	if diff := cmp.Diff([]string{"Audio / Vinyl", "Audio / CD", "Unknown"}, set.Labels()); diff != "" {
		t.Fatalf("labels mismatch (-want +got):\n%s", diff)
	}
}

func TestGroupChildrenAreCopied(t *testing.T) {
	children := []Choice{Leaf("a", "A")}
	group := Group("G", children...)
	children[0] = Leaf("b", "B")
	if group.Children()[0].Value() != "a" {
		t.Fatalf("group shares caller slice")
	}
}

func TestStyles(t *testing.T) {
	// The empty entry between the commas is dropped rather than turned into
	// a ("", "") choice; a blank option comes from WithBlank instead.
	got := Styles(SplitStyles(" Hero, feature banner ,,DARK mode"))
	want := []string{"hero", "feature banner", "dark mode"}
	if diff := cmp.Diff(want, got.Values()); diff != "" {
		t.Fatalf("values mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"Hero", "Feature Banner", "Dark Mode"}, got.Labels()); diff != "" {
		t.Fatalf("labels mismatch (-want +got):\n%s", diff)
	}
	if Styles(nil) != nil {
		t.Fatalf("expected nil set for no styles")
	}
}
