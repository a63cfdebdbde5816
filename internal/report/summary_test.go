package report

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bioscale/crossan/internal/records"
	"github.com/bioscale/crossan/internal/scan"
)

func metricsRecordFixture(elbo, ari float64) *records.MetricsRecord {
	return &records.MetricsRecord{
		Timestamp:     1525208400,
		EpochsTrained: 200,
		Evaluation: map[string][]float64{
			"log_likelihood": {-130.1, -120.4},
			"lower_bound":    {-110.3, elbo},
			"kl_divergence":  {10.2, 9.1},
		},
		Accuracy: []float64{0.85, 0.91},
		Statistics: []records.StatisticsSet{
			{Name: "x", Mean: 1},
			{Name: "reconstructed x", Mean: 2.5, Maximum: 10},
		},
		Predictions: map[string]*records.PredictionResult{
			"kmeans": {
				Method:     "k-means",
				ClassCount: 10,
				Scores: map[string]*float64{
					"ARI (10 clusters)": float64Ptr(ari),
					"ARI":               float64Ptr(0.1),
				},
			},
		},
	}
}

func TestBuildModelSummary(t *testing.T) {
	correlations := make(map[string]*CorrelationSet)
	record := metricsRecordFixture(-98.7, 0.8)

	summary := buildModelSummary("0A", "VAE(G); NB; 100×2; 200 epochs", record, scan.Filter{}, correlations)

	assert.Equal(t, "0A", summary.label)
	require.NotNil(t, summary.elbo)
	assert.Equal(t, -98.7, *summary.elbo)
	assert.Equal(t, []float64{0.8}, summary.aris)

	assert.Contains(t, summary.text, "ID: 0A")
	assert.Contains(t, summary.text, "Timestamp: 2018-05-01 21:00:00")
	assert.Contains(t, summary.text, "Epochs trained: 200")
	assert.Contains(t, summary.text, "log_likelihood: -120.4")
	assert.Contains(t, summary.text, "lower_bound: -98.7")
	assert.Contains(t, summary.text, "accuracy:  91.00 %")
	assert.Contains(t, summary.text, "k-means (10 classes):")
	assert.Contains(t, summary.text, "ARI (10 clusters): 0.8")
	assert.Contains(t, summary.text, "ARI: 0.1")

	// The loss series keep their display order.
	assert.Less(t,
		strings.Index(summary.text, "log_likelihood"),
		strings.Index(summary.text, "lower_bound"))
	assert.Less(t,
		strings.Index(summary.text, "lower_bound"),
		strings.Index(summary.text, "kl_divergence"))

	// Only the "clusters" score joins a correlation set; the plain ARI does
	// not.
	require.Len(t, correlations, 1)
	set := correlations["k-means (10 classes); ARI (10 clusters)"]
	require.NotNil(t, set)
	assert.Equal(t, []float64{-98.7}, set.ELBO)
	assert.Equal(t, []float64{0.8}, set.ARI)
}

func TestBuildModelSummaryReportsLastReconstructedStatistics(t *testing.T) {
	record := metricsRecordFixture(-98.7, 0.8)
	record.Statistics = append(record.Statistics, records.StatisticsSet{
		Name: "reconstructed x (sampled)", Mean: 7.5,
	})

	summary := buildModelSummary("0A", "t", record, scan.Filter{}, map[string]*CorrelationSet{})

	assert.Contains(t, summary.text, "reconstructed x (sampled)")
	assert.Contains(t, summary.text, "mean: 7.5")
	assert.NotContains(t, summary.text, "mean: 2.5")
}

func TestBuildModelSummaryMissingObjective(t *testing.T) {
	record := metricsRecordFixture(-98.7, 0.8)
	delete(record.Evaluation, "lower_bound")

	correlations := make(map[string]*CorrelationSet)
	summary := buildModelSummary("0A", "t", record, scan.Filter{}, correlations)

	assert.Nil(t, summary.elbo)

	// The clustering score still joins its correlation set, paired with a
	// placeholder objective.
	set := correlations["k-means (10 classes); ARI (10 clusters)"]
	require.NotNil(t, set)
	require.Len(t, set.ELBO, 1)
	assert.True(t, math.IsNaN(set.ELBO[0]))
}

func TestBuildModelSummarySkipsNonPositiveClusterScores(t *testing.T) {
	record := metricsRecordFixture(-98.7, -0.05)

	correlations := make(map[string]*CorrelationSet)
	summary := buildModelSummary("0A", "t", record, scan.Filter{}, correlations)

	assert.Empty(t, correlations)
	// The score is still reported and still counts as a clustering score.
	assert.Contains(t, summary.text, "ARI (10 clusters): -0.05")
	assert.Equal(t, []float64{-0.05}, summary.aris)
}

func TestScoresOfInterest(t *testing.T) {
	prediction := &records.PredictionResult{
		Method:     "k-means",
		ClassCount: 10,
		Scores: map[string]*float64{
			"ARI (10 clusters)": float64Ptr(0.8),
			"ARI":               float64Ptr(0.1),
			"silhouette":        float64Ptr(0.4),
			"ARI (null)":        nil,
		},
	}

	scores := scoresOfInterest(prediction, scan.Filter{})
	assert.Equal(t, map[string]float64{
		"ARI (10 clusters)": 0.8,
		"ARI":               0.1,
	}, scores)
}

func TestScoresOfInterestAppliesPredictionFilter(t *testing.T) {
	prediction := &records.PredictionResult{
		Method:     "k-means",
		ClassCount: 10,
		Scores: map[string]*float64{
			"ARI (10 clusters)": float64Ptr(0.8),
		},
	}

	excluded := scoresOfInterest(prediction, scan.Filter{Excluded: []string{"k-means"}})
	assert.Empty(t, excluded)

	included := scoresOfInterest(prediction, scan.Filter{Included: []string{"10 clusters"}})
	assert.Len(t, included, 1)
}
