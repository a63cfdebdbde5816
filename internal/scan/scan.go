// Package scan walks a results directory tree and collects the metric records
// of every (data set, model) pair passing the active filters.
package scan

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/bioscale/crossan/internal/records"
)

const (
	testMetricsBasename    = "test-metrics"
	testPredictionBasename = "test-prediction"
	compressedRecordExt    = ".json.gz"
)

// dataSetSegments is how many path segments below the results root identify a
// data set; everything deeper identifies the model.
const dataSetSegments = 3

// ResultSet maps data-set identifier to model identifier to the merged record
// of that run. Identifiers use forward slashes regardless of platform.
type ResultSet map[string]map[string]*records.MetricsRecord

// Scan traverses root once and returns the records of every directory whose
// data-set and model identifiers pass their filters and which contains a
// metrics record. Sibling prediction records are merged into the metrics
// record under their derived names. Any unreadable or invalid record aborts
// the scan.
func Scan(root string, dataSets, models Filter) (ResultSet, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving results root: %w", err)
	}
	if _, err := os.Stat(absRoot); err != nil {
		return nil, fmt.Errorf("results root: %w", err)
	}

	results := ResultSet{}

	walkErr := filepath.WalkDir(absRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(absRoot, path)
		if err != nil {
			return err
		}
		if rel == "." {
			rel = ""
		}
		rel = filepath.ToSlash(rel)

		dataSet, model := splitIdentifier(rel)
		if !dataSets.Matches(dataSet) || !models.Matches(model) {
			return nil
		}

		entries, err := os.ReadDir(path)
		if err != nil {
			return err
		}

		metricsFilename := testMetricsBasename + compressedRecordExt
		hasMetrics := false
		var predictionFilenames []string
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			name := entry.Name()
			switch {
			case name == metricsFilename:
				hasMetrics = true
			case strings.HasPrefix(name, testPredictionBasename) && strings.HasSuffix(name, compressedRecordExt):
				predictionFilenames = append(predictionFilenames, name)
			}
		}
		if !hasMetrics {
			return nil
		}

		slog.Debug("loading metrics record", "dataSet", dataSet, "model", model)

		record, err := records.ReadMetrics(filepath.Join(path, metricsFilename))
		if err != nil {
			return err
		}

		for _, filename := range predictionFilenames {
			prediction, err := records.ReadPrediction(filepath.Join(path, filename))
			if err != nil {
				return err
			}
			if record.Predictions == nil {
				record.Predictions = make(map[string]*records.PredictionResult)
			}
			record.Predictions[predictionName(filename)] = prediction
		}

		if results[dataSet] == nil {
			results[dataSet] = make(map[string]*records.MetricsRecord)
		}
		results[dataSet][model] = record
		return nil
	})
	if walkErr != nil {
		return nil, fmt.Errorf("scanning %s: %w", root, walkErr)
	}

	return results, nil
}

// splitIdentifier divides a root-relative directory path into its data-set
// identifier (the first three segments) and model identifier (the rest).
func splitIdentifier(rel string) (dataSet, model string) {
	if rel == "" {
		return "", ""
	}
	segments := strings.Split(rel, "/")
	if len(segments) <= dataSetSegments {
		return strings.Join(segments, "/"), ""
	}
	return strings.Join(segments[:dataSetSegments], "/"),
		strings.Join(segments[dataSetSegments:], "/")
}

// predictionName derives a prediction key from its filename by stripping the
// extension, the basename prefix, and every remaining dash.
func predictionName(filename string) string {
	name := strings.TrimSuffix(filename, compressedRecordExt)
	name = strings.ReplaceAll(name, testPredictionBasename, "")
	return strings.ReplaceAll(name, "-", "")
}
