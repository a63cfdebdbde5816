package records

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"
)

// ReadMetrics loads and validates a gzip-compressed metrics record.
func ReadMetrics(path string) (*MetricsRecord, error) {
	data, err := readCompressed(path)
	if err != nil {
		return nil, err
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	if err := validateAgainstSchema(metricsSchema, doc); err != nil {
		return nil, fmt.Errorf("validating %s: %w", path, err)
	}

	var record MetricsRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return &record, nil
}

// ReadPrediction loads and validates a gzip-compressed prediction record.
func ReadPrediction(path string) (*PredictionResult, error) {
	data, err := readCompressed(path)
	if err != nil {
		return nil, err
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	if err := validateAgainstSchema(predictionSchema, doc); err != nil {
		return nil, fmt.Errorf("validating %s: %w", path, err)
	}

	var prediction PredictionResult
	if err := json.Unmarshal(data, &prediction); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return &prediction, nil
}

func readCompressed(path string) ([]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer file.Close()

	reader, err := gzip.NewReader(file)
	if err != nil {
		return nil, fmt.Errorf("decompressing %s: %w", path, err)
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("decompressing %s: %w", path, err)
	}
	return data, nil
}
