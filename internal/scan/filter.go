package scan

import (
	"fmt"
	"strings"
)

// Filter keeps identifiers that contain every included string and none of the
// excluded ones. Empty lists impose no constraint.
type Filter struct {
	Included []string
	Excluded []string
}

// Matches reports whether s passes the filter.
func (f Filter) Matches(s string) bool {
	for _, substring := range f.Included {
		if !strings.Contains(s, substring) {
			return false
		}
	}
	for _, substring := range f.Excluded {
		if strings.Contains(s, substring) {
			return false
		}
	}
	return true
}

// Empty reports whether the filter imposes no constraint at all.
func (f Filter) Empty() bool {
	return len(f.Included) == 0 && len(f.Excluded) == 0
}

// Explain returns report header lines describing the filter, e.g.
// "Including data sets with: a, b.". Unconstrained directions are omitted.
func (f Filter) Explain(kind string) []string {
	var lines []string
	if len(f.Included) > 0 {
		lines = append(lines, fmt.Sprintf("Including %s with: %s.", kind, strings.Join(f.Included, ", ")))
	}
	if len(f.Excluded) > 0 {
		lines = append(lines, fmt.Sprintf("Excluding %s with: %s.", kind, strings.Join(f.Excluded, ", ")))
	}
	return lines
}
