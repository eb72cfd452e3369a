package engine

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// collator compares strings in Russian alphabetical order. A collator is not
// safe for concurrent use, so each operation creates its own.
func newCollator() *collate.Collator {
	return collate.New(language.Russian)
}

// containsFold reports whether s contains q ignoring case. q must already be lowered.
func containsFold(lower cases.Caser, s, q string) bool {
	return strings.Contains(lower.String(s), q)
}

func newLower() cases.Caser {
	return cases.Lower(language.Russian)
}
