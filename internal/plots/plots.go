// Package plots renders the cross-analysis figures with gonum/plot.
package plots

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/bioscale/crossan/internal/report"
)

// DefaultFormat is the image format used when none is requested.
const DefaultFormat = "png"

// Correlations draws one ELBO-versus-ARI scatter series per correlation set
// and writes correlations-<name>.<format> into dir for every requested
// format.
func Correlations(sets []*report.CorrelationSet, name, dir string, formats []string) error {
	p := plot.New()
	p.Title.Text = "ELBO and clustering scores"
	p.X.Label.Text = "ELBO"
	p.Y.Label.Text = "ARI"

	for i, set := range sets {
		points := make(plotter.XYs, 0, len(set.ELBO))
		for j := range set.ELBO {
			if math.IsNaN(set.ELBO[j]) || math.IsNaN(set.ARI[j]) {
				continue
			}
			points = append(points, plotter.XY{X: set.ELBO[j], Y: set.ARI[j]})
		}
		if len(points) == 0 {
			continue
		}

		scatter, err := plotter.NewScatter(points)
		if err != nil {
			return fmt.Errorf("scatter for %s: %w", set.Name, err)
		}
		scatter.GlyphStyle.Color = plotutil.Color(i)
		scatter.GlyphStyle.Shape = plotutil.Shape(i)
		scatter.GlyphStyle.Radius = vg.Points(2.4)
		p.Add(scatter)
		p.Legend.Add(set.Name, scatter)
	}
	p.Legend.Top = true

	return save(p, dir, "correlations-"+fileName(name), formats)
}

// elboGrid adapts a heat-map grid to gonum's GridXYZ. Columns are latent
// dimensions, rows hidden-unit layouts, both addressed by index so the axis
// labels can carry the real values as ticks.
type elboGrid struct {
	grid *report.HeatMapGrid
}

func (g elboGrid) Dims() (int, int)   { return len(g.grid.LatentDims), len(g.grid.HiddenUnits) }
func (g elboGrid) X(c int) float64    { return float64(c) }
func (g elboGrid) Y(r int) float64    { return float64(r) }
func (g elboGrid) Z(c, r int) float64 { return g.grid.Values[r][c] }

// ELBOHeatMap draws the lower bound across network architectures and writes
// elbo-heat-map-<name>.<format> into dir for every requested format.
func ELBOHeatMap(grid *report.HeatMapGrid, name, dir string, formats []string) error {
	heatMap := plotter.NewHeatMap(elboGrid{grid: grid}, palette.Heat(12, 1))

	// The plotter derives its range from the data, which misbehaves with
	// missing cells.
	heatMap.Min, heatMap.Max = valueRange(grid.Values)

	p := plot.New()
	p.Title.Text = "ELBO across architectures"
	p.X.Label.Text = "Latent dimension"
	p.Y.Label.Text = "Hidden units"

	xTicks := make([]plot.Tick, len(grid.LatentDims))
	for i, dim := range grid.LatentDims {
		xTicks[i] = plot.Tick{Value: float64(i), Label: strconv.Itoa(dim)}
	}
	yTicks := make([]plot.Tick, len(grid.HiddenUnits))
	for i, units := range grid.HiddenUnits {
		yTicks[i] = plot.Tick{Value: float64(i), Label: units}
	}
	p.X.Tick.Marker = plot.ConstantTicks(xTicks)
	p.Y.Tick.Marker = plot.ConstantTicks(yTicks)

	p.Add(heatMap)

	return save(p, dir, "elbo-heat-map-"+fileName(name), formats)
}

// valueRange finds the finite extent of the grid values.
func valueRange(values [][]float64) (minimum, maximum float64) {
	minimum, maximum = math.Inf(1), math.Inf(-1)
	for _, row := range values {
		for _, value := range row {
			if math.IsNaN(value) {
				continue
			}
			minimum = math.Min(minimum, value)
			maximum = math.Max(maximum, value)
		}
	}
	return minimum, maximum
}

func save(p *plot.Plot, dir, stem string, formats []string) error {
	if len(formats) == 0 {
		formats = []string{DefaultFormat}
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating plot directory: %w", err)
	}
	for _, format := range formats {
		path := filepath.Join(dir, stem+"."+format)
		if err := p.Save(6*vg.Inch, 6*vg.Inch, path); err != nil {
			return fmt.Errorf("saving %s: %w", path, err)
		}
	}
	return nil
}

// fileName makes a data set name safe for use in a file name.
func fileName(name string) string {
	return strings.ReplaceAll(name, "/", "-")
}
