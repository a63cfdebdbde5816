package report

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/bioscale/crossan/internal/records"
	"github.com/bioscale/crossan/internal/scan"
)

// lossSeries lists the evaluation series reported per model, in display order.
var lossSeries = []string{
	"log_likelihood",
	"lower_bound",
	"reconstruction_error",
	"kl_divergence",
	"kl_divergence_z",
	"kl_divergence_z1",
	"kl_divergence_z2",
	"kl_divergence_y",
}

// objectiveSeries is the primary objective, reported as the ELBO.
const objectiveSeries = "lower_bound"

// modelSummary is the per-model report block plus the values the comparison
// table and correlation sets need.
type modelSummary struct {
	label string
	title string
	text  string
	elbo  *float64
	aris  []float64
}

// buildModelSummary assembles one model's summary block and feeds its
// clustering scores into the data set's correlation sets.
func buildModelSummary(
	label string,
	title string,
	record *records.MetricsRecord,
	predictionFilter scan.Filter,
	correlations map[string]*CorrelationSet,
) modelSummary {
	summary := modelSummary{label: label, title: title}

	parts := []string{
		fmt.Sprintf("ID: %s", label),
		fmt.Sprintf("Timestamp: %s", FormatTime(record.Timestamp)),
		fmt.Sprintf("Epochs trained: %d", record.EpochsTrained),
		"",
	}

	for _, loss := range lossSeries {
		if value, ok := record.LastEvaluation(loss); ok {
			parts = append(parts, fmt.Sprintf("%s: %.6g", loss, value))
		}
	}

	if value, ok := record.LastEvaluation(objectiveSeries); ok {
		summary.elbo = &value
	}

	for _, accuracy := range []struct {
		name   string
		values []float64
	}{
		{"accuracy", record.Accuracy},
		{"superset_accuracy", record.SupersetAccuracy},
	} {
		if len(accuracy.values) > 0 {
			latest := accuracy.values[len(accuracy.values)-1]
			parts = append(parts, fmt.Sprintf("%s: %6.2f %%", accuracy.name, 100*latest))
		}
	}
	parts = append(parts, "")

	// The last statistics set named "reconstructed" wins, as recorded.
	var reconstructed *records.StatisticsSet
	for i := range record.Statistics {
		if strings.Contains(record.Statistics[i].Name, "reconstructed") {
			reconstructed = &record.Statistics[i]
		}
	}
	if reconstructed != nil {
		parts = append(parts, FormatStatistics(*reconstructed))
	}
	parts = append(parts, "")

	for _, predictionKey := range sortedKeys(record.Predictions) {
		prediction := record.Predictions[predictionKey]
		name := prediction.DisplayName()

		scores := scoresOfInterest(prediction, predictionFilter)
		if len(scores) == 0 {
			continue
		}

		parts = append(parts, name+":")
		for _, scoreName := range sortedKeys(scores) {
			value := scores[scoreName]
			parts = append(parts, fmt.Sprintf("    %s: %.6g", scoreName, value))

			if strings.Contains(scoreName, "clusters") && value > 0 {
				setName := name + "; " + scoreName
				set := correlations[setName]
				if set == nil {
					set = &CorrelationSet{Name: setName}
					correlations[setName] = set
				}
				set.ELBO = append(set.ELBO, elboOrNaN(summary.elbo))
				set.ARI = append(set.ARI, value)
			}
		}
		parts = append(parts, "")

		for _, scoreName := range sortedKeys(scores) {
			if strings.Contains(scoreName, "clusters") {
				summary.aris = append(summary.aris, scores[scoreName])
			}
		}
	}

	summary.text = strings.Join(parts, "\n")
	return summary
}

// scoresOfInterest picks the prediction's scores that carry the score marker
// prefix, have a value, and whose composite name passes the prediction
// filter.
func scoresOfInterest(prediction *records.PredictionResult, filter scan.Filter) map[string]float64 {
	scores := make(map[string]float64)
	for key, value := range prediction.Scores {
		if !filter.Matches(prediction.DisplayName() + "; " + key) {
			continue
		}
		if !strings.HasPrefix(key, records.ScoreMarker) || value == nil {
			continue
		}
		scores[key] = *value
	}
	return scores
}

func elboOrNaN(elbo *float64) float64 {
	if elbo == nil {
		return math.NaN()
	}
	return *elbo
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
