package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/bioscale/crossan/internal/records"
)

// numberPrinter localizes the figures in statistics blocks.
var numberPrinter = message.NewPrinter(language.English)

// Title renders a top-level heading underlined with "=".
func Title(s string) string {
	return s + "\n" + strings.Repeat("=", runewidth.StringWidth(s))
}

// Subtitle renders a section heading underlined with "-".
func Subtitle(s string) string {
	return s + "\n" + strings.Repeat("-", runewidth.StringWidth(s))
}

// FormatTime renders a unix timestamp for report headers.
func FormatTime(timestamp float64) string {
	sec := int64(timestamp)
	nsec := int64((timestamp - float64(sec)) * 1e9)
	return time.Unix(sec, nsec).UTC().Format("2006-01-02 15:04:05")
}

// FormatStatistics renders one named statistics summary as an indented block.
func FormatStatistics(set records.StatisticsSet) string {
	lines := []string{fmt.Sprintf("Statistics for %s:", set.Name)}
	for _, entry := range []struct {
		name  string
		value float64
	}{
		{"mean", set.Mean},
		{"standard deviation", set.StandardDeviation},
		{"dispersion", set.Dispersion},
		{"minimum", set.Minimum},
		{"maximum", set.Maximum},
		{"sparsity", set.Sparsity},
	} {
		lines = append(lines, numberPrinter.Sprintf("    %s: %.6g", entry.name, entry.value))
	}
	return strings.Join(lines, "\n")
}

// displayWidth measures s in terminal cells; titles contain wide and
// combining characters ("×", "′", "–") that len() misjudges.
func displayWidth(s string) int {
	return runewidth.StringWidth(s)
}

// padRight pads s with spaces so its terminal display width reaches width.
func padRight(s string, width int) string {
	sw := runewidth.StringWidth(s)
	if sw >= width {
		return s
	}
	return s + strings.Repeat(" ", width-sw)
}
