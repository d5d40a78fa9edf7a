// Package ingestion reads source documents and cuts long ones into
// question-sized pieces for batch generation.
package ingestion

import (
	"os"
	"unicode/utf8"

	"go.uber.org/zap"
)

// LoadTextFile returns the contents of path, or "" if it cannot be read.
// Failures are logged, not returned.
func LoadTextFile(log *zap.Logger, path string) string {
	if log == nil {
		log = zap.NewNop()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		log.Error("error loading text file", zap.String("path", path), zap.Error(err))
		return ""
	}
	if !utf8.Valid(data) {
		log.Warn("text file is not valid UTF-8", zap.String("path", path))
	}
	log.Debug("text file loaded", zap.String("path", path), zap.Int("bytes", len(data)))
	return string(data)
}

// LoadTextFiles loads every path in order. Unreadable files contribute ""
// so positions line up with the input; validation rejects them later.
func LoadTextFiles(log *zap.Logger, paths []string) []string {
	texts := make([]string, len(paths))
	for i, p := range paths {
		texts[i] = LoadTextFile(log, p)
	}
	return texts
}
