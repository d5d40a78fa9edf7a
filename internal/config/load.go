// Package config loads the optional JSON configuration file.
//
// A missing or unreadable file is not an error: Load returns an empty map and
// callers fall back to defaults.
package config

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// DefaultPath is the config file read when no --config flag is given.
const DefaultPath = "config.json"

// Load reads the JSON file at path and returns its top-level object exactly
// as written: key case, dotted keys and nesting are preserved. Any failure is
// logged and yields an empty, non-nil map. A nil log discards messages.
func Load(log *zap.Logger, path string) map[string]any {
	if log == nil {
		log = zap.NewNop()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Error("config file not found", zap.String("path", path))
		} else {
			log.Error("error loading config", zap.String("path", path), zap.Error(err))
		}
		return map[string]any{}
	}

	m := map[string]any{}
	if err := json.Unmarshal(data, &m); err != nil || m == nil {
		log.Error("error loading config", zap.String("path", path), zap.Error(err))
		return map[string]any{}
	}

	log.Info("configuration loaded", zap.String("path", path))
	return m
}

// LoadDotEnv loads KEY=VALUE pairs from .env files into the process
// environment. Existing variables win. Missing files are ignored.
func LoadDotEnv(log *zap.Logger, files ...string) {
	if log == nil {
		log = zap.NewNop()
	}
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				log.Warn("failed to load env file", zap.String("path", f), zap.Error(err))
			}
			continue
		}
		log.Debug("loaded env file", zap.String("path", f))
	}
}
