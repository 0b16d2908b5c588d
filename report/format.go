package report

import (
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/decycle-go/decycle/constraint"
)

// Format renders a single violation's stable textual form:
// "constraintId: shortDescription: from -> to (, from -> to)*".
func Format(v constraint.Violation) string {
	return v.String()
}

// FormatAll renders every violation in violations, one per line, sorted by
// locale-aware collation of each violation's rendered line so that reports
// are stable for human readers regardless of the order constraints were
// evaluated in. An empty input renders as an empty string, never a
// trailing blank line.
func FormatAll(violations []constraint.Violation) string {
	if len(violations) == 0 {
		return ""
	}

	lines := make([]string, len(violations))
	for i, v := range violations {
		lines[i] = Format(v)
	}

	col := collate.New(language.Und)
	sorted := slices.Clone(lines)
	col.SortStrings(sorted)

	return strings.Join(sorted, "\n")
}
