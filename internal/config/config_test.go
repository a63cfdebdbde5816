package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReturnsDefaults(t *testing.T) {
	cfg := New()

	assert.Equal(t, "results/", cfg.Paths.Results)
	assert.Empty(t, cfg.Paths.Log)
	assert.Equal(t, []string{"png"}, cfg.Export.Formats)
	require.NotNil(t, cfg.LogSummary)
	assert.False(t, *cfg.LogSummary)
	assert.Zero(t, cfg.Analysis.EpochCutOff)
	assert.Empty(t, cfg.Analysis.DataSets)
}

func TestLogDir(t *testing.T) {
	cfg := New()
	assert.Equal(t, filepath.Join("results/", "cross_analysis"), cfg.LogDir())

	cfg.Paths.Log = "/tmp/logs"
	assert.Equal(t, "/tmp/logs", cfg.LogDir())
}

func TestLoadFullConfig(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
paths:
  results: "runs/"
  log: "runs/logs/"
analysis:
  data_sets: [mnist]
  excluded_data_sets: [synthetic]
  models: [VAE]
  excluded_models: [GMVAE]
  prediction_methods: [kmeans]
  excluded_prediction_methods: [model]
  epoch_cut_off: 200
export:
  formats: [png, svg]
log_summary: true
`)

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "runs/", cfg.Paths.Results)
	assert.Equal(t, "runs/logs/", cfg.Paths.Log)
	assert.Equal(t, []string{"mnist"}, cfg.Analysis.DataSets)
	assert.Equal(t, []string{"synthetic"}, cfg.Analysis.ExcludedDataSets)
	assert.Equal(t, []string{"VAE"}, cfg.Analysis.Models)
	assert.Equal(t, []string{"GMVAE"}, cfg.Analysis.ExcludedModels)
	assert.Equal(t, []string{"kmeans"}, cfg.Analysis.PredictionMethods)
	assert.Equal(t, []string{"model"}, cfg.Analysis.ExcludedPredictionMethods)
	assert.Equal(t, 200, cfg.Analysis.EpochCutOff)
	assert.Equal(t, []string{"png", "svg"}, cfg.Export.Formats)
	require.NotNil(t, cfg.LogSummary)
	assert.True(t, *cfg.LogSummary)
}

func TestLoadPartialConfigKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
analysis:
  data_sets: [mnist]
`)

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, []string{"mnist"}, cfg.Analysis.DataSets)
	assert.Equal(t, "results/", cfg.Paths.Results)
	assert.Equal(t, []string{"png"}, cfg.Export.Formats)
	require.NotNil(t, cfg.LogSummary)
	assert.False(t, *cfg.LogSummary)
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "results/", cfg.Paths.Results)
}

func TestLoadWalksUpToParentDirectories(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, `
paths:
  results: "runs/"
`)
	nested := filepath.Join(root, "a", "b", "c")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	cfg, err := Load(nested)
	require.NoError(t, err)
	assert.Equal(t, "runs/", cfg.Paths.Results)
}

func TestLoadMalformedYAML(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "paths: [not: a: mapping")

	_, err := Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing .crossan.yaml")
}

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".crossan.yaml"), []byte(content), 0o644))
}
