// Package stats provides the numeric helpers used by report assembly.
package stats

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/stat"
)

// ErrInsufficientData indicates fewer paired observations than a statistic
// needs.
var ErrInsufficientData = errors.New("stats: at least two paired observations required")

// Pearson computes the Pearson correlation coefficient of two paired samples.
func Pearson(xs, ys []float64) (float64, error) {
	if len(xs) != len(ys) {
		return 0, fmt.Errorf("stats: mismatched sample lengths %d and %d", len(xs), len(ys))
	}
	if len(xs) < 2 {
		return 0, ErrInsufficientData
	}
	return stat.Correlation(xs, ys, nil), nil
}

// MinMax returns the smallest and largest of the given values. It panics on
// empty input; callers guard for it.
func MinMax(values []float64) (minimum, maximum float64) {
	if len(values) == 0 {
		panic("stats: MinMax of empty slice")
	}
	minimum, maximum = values[0], values[0]
	for _, v := range values[1:] {
		if v < minimum {
			minimum = v
		}
		if v > maximum {
			maximum = v
		}
	}
	return minimum, maximum
}
