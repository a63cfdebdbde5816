// Package config provides the ProjectConfig struct and loader for
// .crossan.yaml project-level configuration files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Default values for project configuration. These are the single source of
// truth; New() references them and no other code should duplicate them.
const (
	DefaultResultsDir = "results/"

	// DefaultLogSubdirectory is resolved below the results directory when no
	// log directory is configured.
	DefaultLogSubdirectory = "cross_analysis"

	DefaultExportFormat = "png"
)

// PathsConfig holds the results and log directory paths.
type PathsConfig struct {
	Results string `yaml:"results,omitempty"`
	Log     string `yaml:"log,omitempty"`
}

// AnalysisConfig holds the default run filters and limits.
type AnalysisConfig struct {
	DataSets                  []string `yaml:"data_sets,omitempty"`
	ExcludedDataSets          []string `yaml:"excluded_data_sets,omitempty"`
	Models                    []string `yaml:"models,omitempty"`
	ExcludedModels            []string `yaml:"excluded_models,omitempty"`
	PredictionMethods         []string `yaml:"prediction_methods,omitempty"`
	ExcludedPredictionMethods []string `yaml:"excluded_prediction_methods,omitempty"`
	EpochCutOff               int      `yaml:"epoch_cut_off,omitempty"`
}

// ExportConfig holds figure export settings.
type ExportConfig struct {
	Formats []string `yaml:"formats,omitempty"`
}

// ProjectConfig is the top-level configuration loaded from .crossan.yaml.
type ProjectConfig struct {
	Paths      PathsConfig    `yaml:"paths,omitempty"`
	Analysis   AnalysisConfig `yaml:"analysis,omitempty"`
	Export     ExportConfig   `yaml:"export,omitempty"`
	LogSummary *bool          `yaml:"log_summary,omitempty"`
}

// New returns a ProjectConfig with all hard-coded defaults populated.
func New() *ProjectConfig {
	return &ProjectConfig{
		Paths: PathsConfig{
			Results: DefaultResultsDir,
		},
		Export: ExportConfig{
			Formats: []string{DefaultExportFormat},
		},
		LogSummary: boolPtr(false),
	}
}

// LogDir resolves the log directory, defaulting to a subdirectory of the
// results directory.
func (c *ProjectConfig) LogDir() string {
	if c.Paths.Log != "" {
		return c.Paths.Log
	}
	return filepath.Join(c.Paths.Results, DefaultLogSubdirectory)
}

// Load finds .crossan.yaml by walking up from startDir (max 10 levels),
// unmarshals it, and fills in missing fields with defaults.
// If no config file is found, returns defaults with a nil error.
// Real I/O errors (e.g. permission denied) are returned to the caller.
func Load(startDir string) (*ProjectConfig, error) {
	cfg := New()

	data, err := findConfigFile(startDir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil // no file found, use defaults
		}
		return nil, fmt.Errorf("loading .crossan.yaml: %w", err)
	}

	var fileCfg ProjectConfig
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("parsing .crossan.yaml: %w", err)
	}

	mergeConfig(cfg, &fileCfg)
	return cfg, nil
}

// findConfigFile walks up from dir looking for .crossan.yaml (max 10 levels).
// Returns os.ErrNotExist if no config file is found. Propagates real I/O
// errors (e.g. permission denied) instead of silently swallowing them.
func findConfigFile(dir string) ([]byte, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving path %q: %w", dir, err)
	}
	dir = absDir

	for i := 0; i < 10; i++ {
		p := filepath.Join(dir, ".crossan.yaml")
		data, err := os.ReadFile(p)
		if err == nil {
			return data, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("reading %q: %w", p, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break // reached filesystem root
		}
		dir = parent
	}
	return nil, os.ErrNotExist
}

// mergeConfig overlays non-zero values from src onto dst.
func mergeConfig(dst, src *ProjectConfig) {
	if src.Paths.Results != "" {
		dst.Paths.Results = src.Paths.Results
	}
	if src.Paths.Log != "" {
		dst.Paths.Log = src.Paths.Log
	}

	if len(src.Analysis.DataSets) > 0 {
		dst.Analysis.DataSets = src.Analysis.DataSets
	}
	if len(src.Analysis.ExcludedDataSets) > 0 {
		dst.Analysis.ExcludedDataSets = src.Analysis.ExcludedDataSets
	}
	if len(src.Analysis.Models) > 0 {
		dst.Analysis.Models = src.Analysis.Models
	}
	if len(src.Analysis.ExcludedModels) > 0 {
		dst.Analysis.ExcludedModels = src.Analysis.ExcludedModels
	}
	if len(src.Analysis.PredictionMethods) > 0 {
		dst.Analysis.PredictionMethods = src.Analysis.PredictionMethods
	}
	if len(src.Analysis.ExcludedPredictionMethods) > 0 {
		dst.Analysis.ExcludedPredictionMethods = src.Analysis.ExcludedPredictionMethods
	}
	if src.Analysis.EpochCutOff != 0 {
		dst.Analysis.EpochCutOff = src.Analysis.EpochCutOff
	}

	if len(src.Export.Formats) > 0 {
		dst.Export.Formats = src.Export.Formats
	}

	if src.LogSummary != nil {
		dst.LogSummary = src.LogSummary
	}
}

func boolPtr(b bool) *bool { return &b }
