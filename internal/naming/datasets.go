package naming

import (
	"fmt"
	"strconv"
	"strings"
)

// wholeNumber parses a decimal string and truncates it to an integer, so
// thresholds such as "0.5" display as "0".
func wholeNumber(s string) int {
	value, _ := strconv.ParseFloat(s, 64)
	return int(value)
}

// compact3 formats a float with three significant digits, matching how split
// percentages are displayed ("80", "12.5").
func compact3(value float64) string {
	return strconv.FormatFloat(value, 'g', 3, 64)
}

var dataSetNameTable = Table{Name: "data set names", Rules: []Rule{
	literal(`10x`, "10x"),
	literal(`10x_20k`, "10x (20k samples)"),
	literal(`10x_arc_lira`, "10x ARC LIRA"),
	literal(`development`, "Development"),
	computed(`dimm_sc_10x_(\w+)`, func(m []string) string {
		return fmt.Sprintf("3′ (%s)", m[1])
	}),
	literal(`gtex`, "GTEx"),
	computed(`mnist_(\w+)`, func(m []string) string {
		return fmt.Sprintf("MNIST (%s)", m[1])
	}),
	computed(`sample_?(sparse)?`, func(m []string) string {
		return "Sample"
	}),
	literal(`tcga_kallisto`, "TCGA (Kallisto)"),
}}

var splitTable = Table{Name: "splits", Rules: []Rule{
	computed(`split-(\w+)_(0\.\d+)`, func(m []string) string {
		fraction, _ := strconv.ParseFloat(m[2], 64)
		return fmt.Sprintf("%s split (%s %%)", m[1], compact3(100*fraction))
	}),
}}

var featureSelectionTable = Table{Name: "feature selection", Rules: []Rule{
	literal(`features_mapped`, "feature mapping"),
	computed(`keep_gini_indices_above_([\d.]+)`, func(m []string) string {
		return fmt.Sprintf("features with Gini index above %d", wholeNumber(m[1]))
	}),
	computed(`keep_highest_gini_indices_([\d.]+)`, func(m []string) string {
		return fmt.Sprintf(" %d features with highest Gini indices", wholeNumber(m[1]))
	}),
	computed(`keep_variances_above_([\d.]+)`, func(m []string) string {
		return fmt.Sprintf("features with variance above %d", wholeNumber(m[1]))
	}),
	computed(`keep_highest_variances_([\d.]+)`, func(m []string) string {
		return fmt.Sprintf("%d most varying features", wholeNumber(m[1]))
	}),
}}

var exampleFilteringTable = Table{Name: "example filtering", Rules: []Rule{
	literal(`macosko`, "Macosko"),
	literal(`remove_zeros`, "examples with only zeros removed"),
	computed(`remove_count_sum_above_([\d.]+)`, func(m []string) string {
		return fmt.Sprintf("examples with count sum above %d removed", wholeNumber(m[1]))
	}),
}}

var exampleTable = Table{Name: "examples", Rules: []Rule{
	computed(`keep_(\w+)`, func(m []string) string {
		return fmt.Sprintf("%s examples", strings.ReplaceAll(m[1], "_", ", "))
	}),
	computed(`remove_(\w+)`, func(m []string) string {
		return fmt.Sprintf("%s examples removed", strings.ReplaceAll(m[1], "_", ", "))
	}),
	literal(`excluded_classes`, "excluded classes removed"),
}}

var preprocessingTable = Table{Name: "preprocessing", Rules: []Rule{
	literal(`gini`, "Gini indices"),
	literal(`idf`, "IDF"),
}}

var dataSetTables = []Table{
	dataSetNameTable,
	splitTable,
	featureSelectionTable,
	exampleFilteringTable,
	exampleTable,
	preprocessingTable,
}

// DataSetTitle formats a data-set directory identifier for display.
func DataSetTitle(name string) string {
	return Format(name, dataSetTables)
}
