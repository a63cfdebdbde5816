package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/bioscale/crossan/internal/config"
	"github.com/bioscale/crossan/internal/plots"
	"github.com/bioscale/crossan/internal/report"
	"github.com/bioscale/crossan/internal/scan"
)

var (
	resultsDirectory    string
	logDirectory        string
	includedDataSets    []string
	excludedDataSets    []string
	includedModels      []string
	excludedModels      []string
	includedPredictions []string
	excludedPredictions []string
	epochCutOff         int
	exportOptions       []string
	logSummary          bool
)

func newAnalyseCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyse",
		Short: "Analyse results across data sets and models",
		Long: `Analyse the result records under the results directory.

Each model run is summarised, models trained on the same data set are
compared in a table sorted by their lower bound, and clustering quality is
correlated with the lower bound across models. Figures are written next to
the optional summary log.`,
		Args: cobra.NoArgs,
		RunE: analyseCommandE,
	}

	cmd.Flags().StringVarP(&resultsDirectory, "results-directory", "R", "", "Directory with the result records (default: results/)")
	cmd.Flags().StringVarP(&logDirectory, "log-directory", "L", "", "Directory for logs and figures (default: <results>/cross_analysis)")
	cmd.Flags().StringSliceVarP(&includedDataSets, "data-set", "d", nil, "Only analyse data sets containing this substring (can be repeated)")
	cmd.Flags().StringSliceVarP(&excludedDataSets, "skip-data-set", "D", nil, "Skip data sets containing this substring (can be repeated)")
	cmd.Flags().StringSliceVarP(&includedModels, "model", "m", nil, "Only analyse models containing this substring (can be repeated)")
	cmd.Flags().StringSliceVarP(&excludedModels, "skip-model", "M", nil, "Skip models containing this substring (can be repeated)")
	cmd.Flags().StringSliceVarP(&includedPredictions, "prediction-method", "p", nil, "Only report prediction methods containing this substring (can be repeated)")
	cmd.Flags().StringSliceVarP(&excludedPredictions, "skip-prediction-method", "P", nil, "Skip prediction methods containing this substring (can be repeated)")
	cmd.Flags().IntVar(&epochCutOff, "epoch-cut-off", 0, "Leave models trained for more epochs out of the heat map (0: no cut-off)")
	cmd.Flags().StringSliceVar(&exportOptions, "export-options", nil, "Figure formats to export (default: png)")
	cmd.Flags().BoolVarP(&logSummary, "log-summary", "s", false, "Write the summary to a log file")

	return cmd
}

func analyseCommandE(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(".")
	if err != nil {
		return err
	}
	applyFlagOverrides(cmd, cfg)

	dataSetFilter := scan.Filter{Included: cfg.Analysis.DataSets, Excluded: cfg.Analysis.ExcludedDataSets}
	modelFilter := scan.Filter{Included: cfg.Analysis.Models, Excluded: cfg.Analysis.ExcludedModels}
	predictionFilter := scan.Filter{
		Included: cfg.Analysis.PredictionMethods,
		Excluded: cfg.Analysis.ExcludedPredictionMethods,
	}

	results, err := scan.Scan(cfg.Paths.Results, dataSetFilter, modelFilter)
	if err != nil {
		return fmt.Errorf("scanning %s: %w", cfg.Paths.Results, err)
	}
	if len(results) == 0 {
		return &NoResultsError{
			Message: fmt.Sprintf("no result records found under %s with the given filters", cfg.Paths.Results),
		}
	}

	rep, err := report.Generate(results, report.Options{
		DataSetFilter:    dataSetFilter,
		ModelFilter:      modelFilter,
		PredictionFilter: predictionFilter,
		EpochCutOff:      cfg.Analysis.EpochCutOff,
	})
	if err != nil {
		return err
	}

	text := rep.Render()
	printToConsole(cmd, text)

	logDir := cfg.LogDir()
	for _, ds := range rep.DataSets {
		if ds.CorrelationSection != nil && len(ds.Correlations) > 0 {
			if err := plots.Correlations(ds.Correlations, ds.Name, logDir, cfg.Export.Formats); err != nil {
				return fmt.Errorf("plotting correlations for %s: %w", ds.Name, err)
			}
		}
		if ds.HeatMap != nil {
			if err := plots.ELBOHeatMap(ds.HeatMap, ds.Name, logDir, cfg.Export.Formats); err != nil {
				return fmt.Errorf("plotting heat map for %s: %w", ds.Name, err)
			}
		}
	}

	if cfg.LogSummary != nil && *cfg.LogSummary {
		if err := os.MkdirAll(logDir, 0o755); err != nil {
			return fmt.Errorf("creating log directory: %w", err)
		}
		path := filepath.Join(logDir, report.LogFileName(dataSetFilter, modelFilter, predictionFilter))
		if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
			return fmt.Errorf("writing summary log: %w", err)
		}
		slog.Debug("wrote summary log", "path", path)
	}

	return nil
}

// applyFlagOverrides overlays flags the user actually set onto the loaded
// project configuration.
func applyFlagOverrides(cmd *cobra.Command, cfg *config.ProjectConfig) {
	flags := cmd.Flags()
	if flags.Changed("results-directory") {
		cfg.Paths.Results = resultsDirectory
	}
	if flags.Changed("log-directory") {
		cfg.Paths.Log = logDirectory
	}
	if flags.Changed("data-set") {
		cfg.Analysis.DataSets = includedDataSets
	}
	if flags.Changed("skip-data-set") {
		cfg.Analysis.ExcludedDataSets = excludedDataSets
	}
	if flags.Changed("model") {
		cfg.Analysis.Models = includedModels
	}
	if flags.Changed("skip-model") {
		cfg.Analysis.ExcludedModels = excludedModels
	}
	if flags.Changed("prediction-method") {
		cfg.Analysis.PredictionMethods = includedPredictions
	}
	if flags.Changed("skip-prediction-method") {
		cfg.Analysis.ExcludedPredictionMethods = excludedPredictions
	}
	if flags.Changed("epoch-cut-off") {
		cfg.Analysis.EpochCutOff = epochCutOff
	}
	if flags.Changed("export-options") {
		cfg.Export.Formats = exportOptions
	}
	if flags.Changed("log-summary") {
		cfg.LogSummary = &logSummary
	}
}

// printToConsole writes the report, truncating lines to the terminal width
// when stdout is a terminal. The summary log always gets the full lines.
func printToConsole(cmd *cobra.Command, text string) {
	out := cmd.OutOrStdout()

	width := 0
	if f, ok := out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		if w, _, err := term.GetSize(int(f.Fd())); err == nil {
			width = w
		}
	}
	if width <= 0 {
		fmt.Fprint(out, text)
		return
	}

	for _, line := range strings.Split(strings.TrimSuffix(text, "\n"), "\n") {
		fmt.Fprintln(out, runewidth.Truncate(line, width, "…"))
	}
}
