// Package persist writes generated questions to disk and reads them back.
package persist

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/abhisek/mcqgen/internal/mcq"
)

// DefaultOutputPath is where results go when no path is given.
const DefaultOutputPath = "output/mcqs.json"

// SaveResults writes records to outputPath, creating the parent directory if
// needed. Paths ending in .yaml or .yml are written as YAML, anything else as
// indented JSON. It reports success and never returns an error: failures are
// logged.
func SaveResults(log *zap.Logger, records []mcq.Record, outputPath string) bool {
	if log == nil {
		log = zap.NewNop()
	}
	if dir := filepath.Dir(outputPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Error("error saving results", zap.String("path", outputPath), zap.Error(err))
			return false
		}
		log.Debug("ensured output directory", zap.String("dir", dir))
	}

	data, err := Encode(records, formatFor(outputPath))
	if err != nil {
		log.Error("error saving results", zap.String("path", outputPath), zap.Error(err))
		return false
	}

	if err := os.WriteFile(outputPath, data, 0o644); err != nil {
		log.Error("error saving results", zap.String("path", outputPath), zap.Error(err))
		return false
	}

	log.Info("results saved", zap.String("path", outputPath), zap.Int("count", len(records)))
	return true
}

// LoadResults reads records previously written by SaveResults.
func LoadResults(path string) ([]mcq.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read results: %w", err)
	}

	var records []mcq.Record
	switch formatFor(path) {
	case FormatYAML:
		err = yaml.Unmarshal(data, &records)
	default:
		err = json.Unmarshal(data, &records)
	}
	if err != nil {
		return nil, fmt.Errorf("parse results %s: %w", path, err)
	}
	return records, nil
}

// Format is an output encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

func formatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Encode serializes records in the given format. JSON output is indented by
// two spaces with HTML escaping disabled, so non-ASCII text and <>& are kept
// verbatim. A nil slice encodes as an empty list.
func Encode(records []mcq.Record, f Format) ([]byte, error) {
	if records == nil {
		records = []mcq.Record{}
	}

	var buf bytes.Buffer
	switch f {
	case FormatYAML:
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(records); err != nil {
			return nil, fmt.Errorf("encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("encode yaml: %w", err)
		}
	default:
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		if err := enc.Encode(records); err != nil {
			return nil, fmt.Errorf("encode json: %w", err)
		}
	}
	return buf.Bytes(), nil
}
