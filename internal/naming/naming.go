// Package naming turns raw result-directory identifiers into human-readable
// titles, hands out short display labels, and compares checkpoint labels.
package naming

import (
	"regexp"
	"strings"
)

// Rule is a single substitution applied to an identifier. Exactly one of
// Literal and Compute is set: a literal rule substitutes a fixed string, a
// computed rule derives the replacement from a match.
type Rule struct {
	Pattern *regexp.Regexp
	Literal string
	Compute func(match []string) string
}

// Table is an ordered group of rules applied as a unit.
type Table struct {
	Name  string
	Rules []Rule
}

func literal(pattern, replacement string) Rule {
	return Rule{Pattern: regexp.MustCompile(pattern), Literal: replacement}
}

func computed(pattern string, fn func(match []string) string) Rule {
	return Rule{Pattern: regexp.MustCompile(pattern), Compute: fn}
}

// Format rewrites name by applying the tables strictly in order, then
// converts the remaining separators: "/" and "-" become "; ", "_" becomes a
// space.
//
// A computed rule derives its replacement from the first match only, and that
// one string is then substituted for every occurrence of the pattern. When
// occurrences would compute different replacements, all of them receive the
// first one. Identifiers in practice contain each pattern at most once;
// callers relying on repeated occurrences get first-match semantics.
func Format(name string, tables []Table) string {
	for _, table := range tables {
		for _, rule := range table.Rules {
			replacement := rule.Literal
			if rule.Compute != nil {
				match := rule.Pattern.FindStringSubmatch(name)
				if match == nil {
					continue
				}
				replacement = rule.Compute(match)
			}
			name = rule.Pattern.ReplaceAllLiteralString(name, replacement)
		}
	}

	name = strings.ReplaceAll(name, "/", "; ")
	name = strings.ReplaceAll(name, "-", "; ")
	name = strings.ReplaceAll(name, "_", " ")

	return name
}
