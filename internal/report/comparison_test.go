package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func float64Ptr(v float64) *float64 { return &v }

func TestNewComparisonRow(t *testing.T) {
	summary := modelSummary{
		label: "0A",
		title: "VAE(G); NB; 100×2; BN; CS; 200 epochs (ES)",
		elbo:  float64Ptr(-98.7),
		aris:  []float64{0.8},
	}

	row, err := newComparisonRow(summary)
	require.NoError(t, err)

	assert.Equal(t, "0A", row.Label)
	assert.Equal(t, "VAE(G)", row.Type)
	assert.Equal(t, "NB", row.Distribution)
	assert.Equal(t, "100×2", row.Sizes)
	assert.Equal(t, "BN; CS", row.Other)
	assert.Equal(t, "200 (ES)", row.Epochs)
}

func TestNewComparisonRowMinimalSegments(t *testing.T) {
	row, err := newComparisonRow(modelSummary{title: "VAE(G); NB; 100×2; 200 epochs"})
	require.NoError(t, err)
	assert.Empty(t, row.Other)
	assert.Equal(t, "200", row.Epochs)
}

func TestNewComparisonRowTooFewSegments(t *testing.T) {
	_, err := newComparisonRow(modelSummary{title: "GMVAE(10); 100×5; 100 epochs"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "segments")
}

func TestFormatCell(t *testing.T) {
	tests := []struct {
		name   string
		value  any
		expect string
	}{
		{"string", "VAE(G)", "VAE(G)"},
		{"nil", nil, ""},
		{"nil_float_pointer", (*float64)(nil), ""},
		{"float_pointer", float64Ptr(-98.7), "-98.7"},
		{"float", 0.123456789, "0.123457"},
		{"int", 42, "42"},
		{"empty_list", []float64{}, ""},
		{"uniform_list", []float64{0.8, 0.8}, "0.8"},
		{"range_list", []float64{0.5, 0.7, 0.6}, "0.500–0.700"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := formatCell(tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.expect, got)
		})
	}
}

func TestFormatCellRejectsUnsupportedTypes(t *testing.T) {
	_, err := formatCell(struct{}{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not supported in comparison table")
}

func comparisonRowFixture(label string, elbo float64, epochs string) *ComparisonRow {
	return &ComparisonRow{
		Label:        label,
		ELBO:         float64Ptr(elbo),
		ARIs:         []float64{0.8},
		Type:         "VAE(G)",
		Distribution: "NB",
		Sizes:        "100×2",
		Other:        "BN",
		Epochs:       epochs,
	}
}

func TestRenderComparisonTableSortsByELBODescending(t *testing.T) {
	rows := []*ComparisonRow{
		comparisonRowFixture("0A", -105.2, "200"),
		comparisonRowFixture("0B", -98.7, "200"),
		{Label: "0C", Type: "VAE(G)", Distribution: "NB", Sizes: "100×2", Other: "BN", Epochs: "200"},
	}

	table, err := renderComparisonTable(rows)
	require.NoError(t, err)

	lines := strings.Split(table, "\n")
	require.Len(t, lines, 5) // heading, rule, three rows
	assert.True(t, strings.HasPrefix(lines[2], "0B"))
	assert.True(t, strings.HasPrefix(lines[3], "0A"))
	// The row without an objective sorts last.
	assert.True(t, strings.HasPrefix(lines[4], "0C"))
}

func TestRenderComparisonTableHeadings(t *testing.T) {
	table, err := renderComparisonTable([]*ComparisonRow{
		comparisonRowFixture("0A", -98.7, "200"),
		comparisonRowFixture("0B", -105.2, "200"),
	})
	require.NoError(t, err)

	heading := strings.Split(table, "\n")[0]
	// Wide enough columns keep capitalized names; narrow ones fall back to
	// their short names.
	assert.Contains(t, heading, "ID")
	assert.Contains(t, heading, "Type")
	assert.Contains(t, heading, "LD")
	assert.Contains(t, heading, "Sizes")
	assert.Contains(t, heading, "ELBO")
	assert.Contains(t, heading, "ARI")
	assert.NotContains(t, heading, "distribution")
}

func TestRenderComparisonTableDropsEmptyColumns(t *testing.T) {
	first := comparisonRowFixture("0A", -98.7, "200")
	second := comparisonRowFixture("0B", -105.2, "200")
	first.Other = ""
	second.Other = ""
	first.ARIs = nil
	second.ARIs = nil

	table, err := renderComparisonTable([]*ComparisonRow{first, second})
	require.NoError(t, err)

	heading := strings.Split(table, "\n")[0]
	assert.NotContains(t, heading, "O ")
	assert.NotContains(t, heading, "Other")
	assert.NotContains(t, heading, "ARI")
}

func TestRenderComparisonTableRuleLength(t *testing.T) {
	table, err := renderComparisonTable([]*ComparisonRow{
		comparisonRowFixture("0A", -98.7, "200"),
	})
	require.NoError(t, err)

	lines := strings.Split(table, "\n")
	assert.True(t, strings.HasPrefix(lines[1], "---"))
	assert.Equal(t, strings.Repeat("-", len(lines[1])), lines[1])
}
