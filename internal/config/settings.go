package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/abhisek/mcqgen/internal/mcq"
)

// Settings is the typed view of the config map.
type Settings struct {
	OutputPath   string `mapstructure:"output_path"`
	DBPath       string `mapstructure:"db_path"`
	MinLength    int    `mapstructure:"min_length"`
	NumQuestions int    `mapstructure:"num_questions"`
	Difficulty   string `mapstructure:"difficulty"`

	// Generator selects the question source: "placeholder" or "llm".
	Generator string `mapstructure:"generator"`

	Server ServerSettings `mapstructure:"server"`
	Chunk  ChunkSettings  `mapstructure:"chunk"`
}

// ServerSettings configures the HTTP API.
type ServerSettings struct {
	Addr           string   `mapstructure:"addr"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// ChunkSettings configures document chunking for batch runs.
type ChunkSettings struct {
	Method     string `mapstructure:"method"`
	TargetSize int    `mapstructure:"target_size"`
	MaxSize    int    `mapstructure:"max_size"`
	Overlap    int    `mapstructure:"overlap"`
}

const (
	GeneratorPlaceholder = "placeholder"
	GeneratorLLM         = "llm"
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("output_path", "output/mcqs.json")
	v.SetDefault("db_path", "")
	v.SetDefault("min_length", mcq.DefaultMinLength)
	v.SetDefault("num_questions", 5)
	v.SetDefault("difficulty", mcq.DefaultDifficulty)
	v.SetDefault("generator", GeneratorPlaceholder)
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.allowed_origins", []string{"*"})
	v.SetDefault("chunk.method", "sentence")
	v.SetDefault("chunk.target_size", 200)
	v.SetDefault("chunk.max_size", 400)
	v.SetDefault("chunk.overlap", 20)
}

// Decode builds Settings from a map returned by Load, applying defaults and
// MCQGEN_* environment overrides (e.g. MCQGEN_SERVER_ADDR). Keys are matched
// case-insensitively.
func Decode(m map[string]any) (Settings, error) {
	return decode(m, true)
}

func decode(m map[string]any, withEnv bool) (Settings, error) {
	v := viper.New()
	setDefaults(v)
	if withEnv {
		v.SetEnvPrefix("MCQGEN")
		v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		v.AutomaticEnv()
	}

	if err := v.MergeConfigMap(m); err != nil {
		return Settings{}, fmt.Errorf("merge config: %w", err)
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("decode config: %w", err)
	}
	return s, nil
}

// Resolve is Decode that never fails. Keys whose values cannot be decoded
// are logged and dropped; if the rest still fails (for example a malformed
// MCQGEN_* variable), the built-in defaults are returned.
func Resolve(log *zap.Logger, m map[string]any) Settings {
	if log == nil {
		log = zap.NewNop()
	}

	s, err := Decode(m)
	if err == nil {
		return s
	}
	log.Error("invalid configuration, ignoring bad values", zap.Error(err))

	kept := make(map[string]any, len(m))
	for k, val := range m {
		if _, err := Decode(map[string]any{k: val}); err != nil {
			log.Warn("ignoring config key", zap.String("key", k), zap.Error(err))
			continue
		}
		kept[k] = val
	}
	if s, err := Decode(kept); err == nil {
		return s
	}

	log.Error("falling back to default configuration")
	s, _ = decode(map[string]any{}, false)
	return s
}

// Validate checks settings that would otherwise fail later in confusing ways.
func (s Settings) Validate() error {
	switch s.Generator {
	case GeneratorPlaceholder, GeneratorLLM:
	default:
		return fmt.Errorf("unknown generator %q: must be %q or %q", s.Generator, GeneratorPlaceholder, GeneratorLLM)
	}
	if s.MinLength < 0 {
		return fmt.Errorf("min_length must not be negative")
	}
	if s.NumQuestions < 0 {
		return fmt.Errorf("num_questions must not be negative")
	}
	return nil
}
