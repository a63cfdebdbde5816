package report

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/bioscale/crossan/internal/naming"
)

// The heat map covers the baseline model family: Gaussian VAE with a
// negative-binomial likelihood and batch normalisation, so that the grid
// varies only in architecture.
const (
	heatMapType         = "VAE(G)"
	heatMapDistribution = "NB"
	heatMapOther        = "BN"
)

// HeatMapGrid holds the best ELBO per network architecture within one data
// set: latent dimensions as columns, hidden-unit layouts as rows. Missing
// cells are NaN.
type HeatMapGrid struct {
	LatentDims  []int      // columns, ascending
	HiddenUnits []string   // rows, ascending by total unit count
	Values      [][]float64 // [row][column]
}

// CellCount is the grid's total size including missing cells.
func (g *HeatMapGrid) CellCount() int {
	return len(g.LatentDims) * len(g.HiddenUnits)
}

// buildHeatMapGrid collects the baseline-family rows into an architecture
// grid. Rows whose epoch count exceeds the cut-off are skipped (a cut-off of
// zero or less means no limit); when two checkpoints land on the same cell
// the more authoritative one wins.
func buildHeatMapGrid(rows []*ComparisonRow, epochCutOff int) (*HeatMapGrid, error) {
	type cellKey struct {
		latent string
		hidden string
	}
	elbos := make(map[cellKey]float64)
	epochs := make(map[cellKey]string)

	for _, row := range rows {
		if row.Type != heatMapType || row.Distribution != heatMapDistribution || row.Other != heatMapOther {
			continue
		}

		epochCount, err := leadingInt(row.Epochs)
		if err != nil {
			return nil, fmt.Errorf("epoch label %q: %w", row.Epochs, err)
		}
		if epochCutOff > 0 && epochCount > epochCutOff {
			continue
		}

		split := strings.LastIndex(row.Sizes, "×")
		if split < 0 {
			return nil, fmt.Errorf("architecture %q is not of the form <hidden units>×<latent dimension>", row.Sizes)
		}
		key := cellKey{hidden: row.Sizes[:split], latent: row.Sizes[split+len("×"):]}

		if previous, ok := epochs[key]; ok {
			best, err := naming.BestCheckpoint(previous, row.Epochs)
			if err != nil {
				return nil, err
			}
			if best != row.Epochs {
				continue
			}
		}
		elbos[key] = elboOrNaN(row.ELBO)
		epochs[key] = row.Epochs
	}

	if len(elbos) == 0 {
		return nil, nil
	}

	latentSet := make(map[string]bool)
	hiddenSet := make(map[string]bool)
	for key := range elbos {
		latentSet[key.latent] = true
		hiddenSet[key.hidden] = true
	}

	grid := &HeatMapGrid{}
	for latent := range latentSet {
		dim, err := strconv.Atoi(latent)
		if err != nil {
			return nil, fmt.Errorf("latent dimension %q: %w", latent, err)
		}
		grid.LatentDims = append(grid.LatentDims, dim)
	}
	sort.Ints(grid.LatentDims)

	for hidden := range hiddenSet {
		grid.HiddenUnits = append(grid.HiddenUnits, hidden)
	}
	hiddenSizes := make(map[string]int, len(grid.HiddenUnits))
	for _, hidden := range grid.HiddenUnits {
		size, err := hiddenUnitCount(hidden)
		if err != nil {
			return nil, err
		}
		hiddenSizes[hidden] = size
	}
	sort.Slice(grid.HiddenUnits, func(i, j int) bool {
		return hiddenSizes[grid.HiddenUnits[i]] < hiddenSizes[grid.HiddenUnits[j]]
	})

	for _, hidden := range grid.HiddenUnits {
		row := make([]float64, len(grid.LatentDims))
		for i, dim := range grid.LatentDims {
			value, ok := elbos[cellKey{hidden: hidden, latent: strconv.Itoa(dim)}]
			if !ok {
				value = math.NaN()
			}
			row[i] = value
		}
		grid.Values = append(grid.Values, row)
	}

	return grid, nil
}

// hiddenUnitCount multiplies the factors of a hidden-unit layout such as
// "100×100".
func hiddenUnitCount(layout string) (int, error) {
	product := 1
	for _, factor := range strings.Split(layout, "×") {
		n, err := strconv.Atoi(factor)
		if err != nil {
			return 0, fmt.Errorf("hidden-unit layout %q: %w", layout, err)
		}
		product *= n
	}
	return product, nil
}

// leadingInt parses the epoch count that starts an epoch label ("200 (ES)").
func leadingInt(label string) (int, error) {
	fields := strings.Fields(label)
	if len(fields) == 0 {
		return 0, fmt.Errorf("empty epoch label")
	}
	return strconv.Atoi(fields[0])
}
