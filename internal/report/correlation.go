package report

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bioscale/crossan/internal/stats"
)

// CorrelationSet pairs the primary objective with one clustering score across
// the models of a data set. The two sequences run in parallel.
type CorrelationSet struct {
	Name string
	ELBO []float64
	ARI  []float64
}

// Coefficient computes the Pearson correlation of the paired observations.
func (s *CorrelationSet) Coefficient() (float64, error) {
	return stats.Pearson(s.ELBO, s.ARI)
}

// correlationTable renders the coefficient per qualifying set, one row each.
// Sets with fewer than two paired observations are left out; the result is
// empty when no set qualifies.
func correlationTable(sets []*CorrelationSet) (string, error) {
	type row struct {
		name        string
		coefficient float64
	}

	var rows []row
	nameWidth := 0
	for _, set := range sets {
		coefficient, err := set.Coefficient()
		if errors.Is(err, stats.ErrInsufficientData) {
			continue
		}
		if err != nil {
			return "", fmt.Errorf("correlating %s: %w", set.Name, err)
		}
		rows = append(rows, row{name: set.Name, coefficient: coefficient})
		if len(set.Name) > nameWidth {
			nameWidth = len(set.Name)
		}
	}
	if len(rows) == 0 {
		return "", nil
	}

	lines := []string{fmt.Sprintf("%s  %9s", padRight("", nameWidth), "r")}
	for _, r := range rows {
		lines = append(lines, fmt.Sprintf("%s  %9.6f", padRight(r.name, nameWidth), r.coefficient))
	}
	return strings.Join(lines, "\n"), nil
}
