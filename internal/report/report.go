// Package report assembles the cross-analysis text report: per-model
// summaries, correlation and comparison tables, and the heat-map grid handed
// to the plotting layer.
package report

import (
	"strings"

	"github.com/bioscale/crossan/internal/naming"
	"github.com/bioscale/crossan/internal/scan"
)

// Options configures report generation.
type Options struct {
	DataSetFilter    scan.Filter
	ModelFilter      scan.Filter
	PredictionFilter scan.Filter

	// EpochCutOff caps the epoch count of heat-map candidates; zero or less
	// means no cap.
	EpochCutOff int

	// Labels supplies model display labels. A nil value gets a fresh
	// sequence.
	Labels *naming.LabelSequence
}

// Report is the assembled cross-analysis for one results tree.
type Report struct {
	Explanation string
	DataSets    []*DataSetReport
}

// DataSetReport carries everything reported for one data set. Correlations
// and HeatMap are only set when the data set has more than one model;
// HeatMap additionally requires more than one grid cell.
type DataSetReport struct {
	Name  string
	Title string

	ModelSections      []Section
	CorrelationSection *Section
	ComparisonSection  *Section

	Correlations []*CorrelationSet
	HeatMap      *HeatMapGrid
}

// Section is a subtitled block of report text.
type Section struct {
	Heading string
	Body    string
}

// Generate builds the report for scanned results. Data sets and models are
// visited in name order, which also fixes label assignment.
func Generate(results scan.ResultSet, opts Options) (*Report, error) {
	labels := opts.Labels
	if labels == nil {
		labels = naming.NewLabelSequence()
	}

	var explanation []string
	explanation = append(explanation, opts.DataSetFilter.Explain("data sets")...)
	explanation = append(explanation, opts.ModelFilter.Explain("models")...)
	explanation = append(explanation, opts.PredictionFilter.Explain("prediction methods")...)

	r := &Report{Explanation: strings.Join(explanation, "\n")}

	for _, dataSetName := range sortedKeys(results) {
		models := results[dataSetName]
		ds := &DataSetReport{
			Name:  dataSetName,
			Title: naming.DataSetTitle(dataSetName),
		}
		r.DataSets = append(r.DataSets, ds)

		correlations := make(map[string]*CorrelationSet)
		var summaries []modelSummary

		for _, modelName := range sortedKeys(models) {
			summary := buildModelSummary(
				labels.Next(),
				naming.ModelTitle(modelName),
				models[modelName],
				opts.PredictionFilter,
				correlations,
			)
			summaries = append(summaries, summary)
			ds.ModelSections = append(ds.ModelSections, Section{
				Heading: summary.title,
				Body:    summary.text,
			})
		}

		// Cross-model sections only make sense with something to compare.
		if len(summaries) <= 1 {
			continue
		}

		if len(correlations) > 0 {
			for _, name := range sortedKeys(correlations) {
				ds.Correlations = append(ds.Correlations, correlations[name])
			}

			table, err := correlationTable(ds.Correlations)
			if err != nil {
				return nil, err
			}
			body := "Plotting correlations."
			if table != "" {
				body = table + "\n\n" + body
			}
			ds.CorrelationSection = &Section{Heading: "ELBO and ARI correlations", Body: body}
		}

		rows := make([]*ComparisonRow, 0, len(summaries))
		for _, summary := range summaries {
			row, err := newComparisonRow(summary)
			if err != nil {
				return nil, err
			}
			rows = append(rows, row)
		}

		grid, err := buildHeatMapGrid(rows, opts.EpochCutOff)
		if err != nil {
			return nil, err
		}
		if grid != nil && grid.CellCount() > 1 {
			ds.HeatMap = grid
		}

		table, err := renderComparisonTable(rows)
		if err != nil {
			return nil, err
		}
		ds.ComparisonSection = &Section{Heading: "Comparison", Body: table}
	}

	return r, nil
}

// Render produces the full plain-text report.
func (r *Report) Render() string {
	var blocks []string
	if r.Explanation != "" {
		blocks = append(blocks, r.Explanation)
	}

	for _, ds := range r.DataSets {
		blocks = append(blocks, Title(ds.Title))
		for _, section := range ds.ModelSections {
			blocks = append(blocks, Subtitle(section.Heading), section.Body)
		}
		if ds.CorrelationSection != nil {
			blocks = append(blocks, Subtitle(ds.CorrelationSection.Heading), ds.CorrelationSection.Body)
		}
		if ds.ComparisonSection != nil {
			blocks = append(blocks, Subtitle(ds.ComparisonSection.Heading), ds.ComparisonSection.Body)
		}
	}

	return strings.Join(blocks, "\n\n") + "\n"
}

// LogFileName derives the summary log filename from the active filters, one
// symbol-tagged part per non-empty filter direction, or "all" when nothing is
// filtered.
func LogFileName(dataSets, models, predictions scan.Filter) string {
	var parts []string
	add := func(symbol string, values []string) {
		if len(values) > 0 {
			parts = append(parts, symbol+"_"+strings.Join(values, "_"))
		}
	}
	add("d", dataSets.Included)
	add("D", dataSets.Excluded)
	add("m", models.Included)
	add("M", models.Excluded)
	add("p", predictions.Included)
	add("P", predictions.Excluded)

	if len(parts) == 0 {
		parts = append(parts, "all")
	}
	return strings.Join(parts, "-") + ".log"
}
