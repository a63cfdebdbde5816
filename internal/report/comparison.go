package report

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/bioscale/crossan/internal/stats"
)

// ComparisonRow is one model's line in the comparison table. The display
// fields come from splitting the model title on "; ": type, distribution and
// sizes from the front, the epoch label from the end, everything between
// joined as other.
type ComparisonRow struct {
	Label string
	ELBO  *float64
	ARIs  []float64

	Type         string
	Distribution string
	Sizes        string
	Other        string
	Epochs       string
}

// minTitleSegments is the least number of "; "-separated title segments a
// comparison row needs: type, distribution, sizes and an epoch label.
const minTitleSegments = 4

func newComparisonRow(summary modelSummary) (*ComparisonRow, error) {
	segments := strings.Split(summary.title, "; ")
	if len(segments) < minTitleSegments {
		return nil, fmt.Errorf(
			"model title %q has %d segments, need at least %d (type; distribution; sizes; ...; epoch label)",
			summary.title, len(segments), minTitleSegments)
	}

	return &ComparisonRow{
		Label:        summary.label,
		ELBO:         summary.elbo,
		ARIs:         summary.aris,
		Type:         segments[0],
		Distribution: segments[1],
		Sizes:        segments[2],
		Other:        strings.Join(segments[3:len(segments)-1], "; "),
		Epochs:       strings.ReplaceAll(segments[len(segments)-1], " epochs", ""),
	}, nil
}

// comparisonColumns is the table's column order; the first six are model
// specification fields, the last two metrics.
var comparisonColumns = []string{"ID", "type", "distribution", "sizes", "other", "epochs", "ELBO", "ARI"}

var specColumnShortNames = map[string]string{
	"ID":           "#",
	"type":         "T",
	"distribution": "LD",
	"sizes":        "S",
	"other":        "O",
	"epochs":       "E",
}

// formatCell renders one table cell. Strings pass through, nil values render
// empty, numbers use compact notation, and a list renders as its min–max
// range. Anything else is a hard error rather than a silently mangled cell.
func formatCell(value any) (string, error) {
	switch v := value.(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	case int:
		return strconv.Itoa(v), nil
	case float64:
		return fmt.Sprintf("%.6g", v), nil
	case *float64:
		if v == nil {
			return "", nil
		}
		return fmt.Sprintf("%.6g", *v), nil
	case []float64:
		if len(v) == 0 {
			return "", nil
		}
		minimum, maximum := stats.MinMax(v)
		if minimum == maximum {
			return fmt.Sprintf("%.6g", maximum), nil
		}
		return fmt.Sprintf("%5.3f–%5.3f", minimum, maximum), nil
	default:
		return "", fmt.Errorf("report: type %T not supported in comparison table", value)
	}
}

func (r *ComparisonRow) cells() (map[string]string, error) {
	values := map[string]any{
		"ID":           r.Label,
		"type":         r.Type,
		"distribution": r.Distribution,
		"sizes":        r.Sizes,
		"other":        r.Other,
		"epochs":       r.Epochs,
		"ELBO":         r.ELBO,
		"ARI":          r.ARIs,
	}

	cells := make(map[string]string, len(values))
	for column, value := range values {
		cell, err := formatCell(value)
		if err != nil {
			return nil, err
		}
		cells[column] = cell
	}
	return cells, nil
}

// renderComparisonTable renders the rows sorted by descending ELBO, models
// without one last. Columns whose every cell is empty are dropped; a
// specification column narrower than its name falls back to its one-letter
// short name.
func renderComparisonTable(rows []*ComparisonRow) (string, error) {
	sorted := make([]*ComparisonRow, len(rows))
	copy(sorted, rows)
	sort.SliceStable(sorted, func(i, j int) bool {
		return elboOrNegInf(sorted[i]) > elboOrNegInf(sorted[j])
	})

	cellsByRow := make([]map[string]string, len(sorted))
	for i, row := range sorted {
		cells, err := row.cells()
		if err != nil {
			return "", err
		}
		cellsByRow[i] = cells
	}

	widths := make(map[string]int, len(comparisonColumns))
	for _, column := range comparisonColumns {
		for _, cells := range cellsByRow {
			if w := displayWidth(cells[column]); w > widths[column] {
				widths[column] = w
			}
		}
	}

	const columnSpacing = "  "

	var headingParts []string
	for _, column := range comparisonColumns {
		width := widths[column]
		if width == 0 {
			continue
		}
		heading := column
		if _, isSpec := specColumnShortNames[column]; isSpec {
			if len(column) > width {
				heading = specColumnShortNames[column]
			} else if column == strings.ToLower(column) {
				heading = strings.ToUpper(column[:1]) + column[1:]
			}
		}
		headingParts = append(headingParts, padRight(heading, width))
	}
	heading := strings.Join(headingParts, columnSpacing)
	rule := strings.Repeat("-", displayWidth(heading))

	lines := []string{strings.TrimRight(heading, " "), rule}

	for _, cells := range cellsByRow {
		var rowParts []string
		for _, column := range comparisonColumns {
			if widths[column] == 0 {
				continue
			}
			rowParts = append(rowParts, padRight(cells[column], widths[column]))
		}
		lines = append(lines, strings.TrimRight(strings.Join(rowParts, columnSpacing), " "))
	}

	return strings.Join(lines, "\n"), nil
}

func elboOrNegInf(row *ComparisonRow) float64 {
	if row.ELBO == nil || math.IsNaN(*row.ELBO) {
		return math.Inf(-1)
	}
	return *row.ELBO
}
