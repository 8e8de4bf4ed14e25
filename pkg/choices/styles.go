package choices

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Styles normalises a configured style list into a Set. Each entry is trimmed,
// stored lower-cased and labelled in title case, so " hero banner" becomes
// Leaf("hero banner", "Hero Banner"). Entries that trim to nothing are
// skipped.
func Styles(raw []string) Set {
	if len(raw) == 0 {
		return nil
	}
	title := cases.Title(language.Und)
	out := make(Set, 0, len(raw))
	for _, entry := range raw {
		clean := strings.TrimSpace(entry)
		if clean == "" {
			continue
		}
		out = append(out, Leaf(strings.ToLower(clean), title.String(clean)))
	}
	return out
}

// SplitStyles splits a comma separated style string into its raw entries.
func SplitStyles(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	return strings.Split(raw, ",")
}
