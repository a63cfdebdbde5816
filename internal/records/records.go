// Package records defines the serialized result records produced by model
// runs and loads them from gzip-compressed JSON files.
package records

import "fmt"

// ScoreMarker prefixes the prediction score names that reports pick up.
var ScoreMarker = "ARI"

// MetricsRecord is the primary result record of one model run, stored as
// test-metrics.json.gz in the run's results directory. Predictions is filled
// in by the scanner from sibling test-prediction*.json.gz files.
type MetricsRecord struct {
	Timestamp        float64              `json:"timestamp"`
	EpochsTrained    int                  `json:"number_of_epochs_trained"`
	Evaluation       map[string][]float64 `json:"evaluation"`
	Accuracy         []float64            `json:"accuracy,omitempty"`
	SupersetAccuracy []float64            `json:"superset_accuracy,omitempty"`
	Statistics       []StatisticsSet      `json:"statistics,omitempty"`

	Predictions map[string]*PredictionResult `json:"-"`
}

// LastEvaluation returns the most recent value of a named evaluation series.
func (r *MetricsRecord) LastEvaluation(name string) (float64, bool) {
	series, ok := r.Evaluation[name]
	if !ok || len(series) == 0 {
		return 0, false
	}
	return series[len(series)-1], true
}

// StatisticsSet is a named summary of one evaluated tensor.
type StatisticsSet struct {
	Name              string  `json:"name"`
	Mean              float64 `json:"mean"`
	StandardDeviation float64 `json:"standard_deviation"`
	Dispersion        float64 `json:"dispersion"`
	Minimum           float64 `json:"minimum"`
	Maximum           float64 `json:"maximum"`
	Sparsity          float64 `json:"sparsity"`
}

// PredictionResult is one clustering/classification result record, stored as
// test-prediction-<name>.json.gz next to the metrics record. Score values are
// nullable; a null score is kept out of reports.
type PredictionResult struct {
	Method     string              `json:"prediction_method"`
	ClassCount int                 `json:"number_of_classes"`
	Scores     map[string]*float64 `json:"scores,omitempty"`
}

// DisplayName renders the prediction for report headings, e.g.
// "kmeans (10 classes)". An empty method means the model's own prediction.
func (p *PredictionResult) DisplayName() string {
	method := p.Method
	if method == "" {
		method = "model"
	}
	return fmt.Sprintf("%s (%d classes)", method, p.ClassCount)
}
