package llm

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/abhisek/mcqgen/internal/store"
)

// NewProvider creates a Provider from configuration.
// It returns the provider wrapped with timeout, retry and logging middleware.
// eventRepo may be nil, in which case requests are only logged through log.
func NewProvider(ctx context.Context, cfg Config, eventRepo store.EventRepo, log *zap.Logger) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "openrouter":
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "ollama":
		base, err = NewOllamaProvider(cfg.Ollama)
	case "mock":
		mock := NewMockProvider()
		mock.Responder = cfg.MockResponder
		base = mock
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	// caller → timeout → retry → logging → base
	logged := WithLogging(base, cfg.Provider, eventRepo, log)
	retried := WithRetry(logged, cfg.Retry, log)
	return WithTimeout(retried, cfg.Timeout), nil
}

// NewProviderFromEnv resolves configuration from the environment and builds
// a provider. An explicit MCQGEN_LLM_PROVIDER wins; otherwise the standard
// *_API_KEY variables are checked.
func NewProviderFromEnv(ctx context.Context, eventRepo store.EventRepo, log *zap.Logger, opts ...ProviderOption) (Provider, error) {
	var cfg Config
	if os.Getenv(envPrefix+"LLM_PROVIDER") != "" {
		c, err := ConfigFromEnv()
		if err != nil {
			return nil, err
		}
		cfg = c
	} else if c, ok := DiscoverConfig(); ok {
		cfg = c
	} else {
		return nil, fmt.Errorf("no LLM provider configured: set MCQGEN_LLM_PROVIDER or one of GEMINI_API_KEY, OPENAI_API_KEY, ANTHROPIC_API_KEY, OPENROUTER_API_KEY, OLLAMA_HOST")
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return NewProvider(ctx, cfg, eventRepo, log)
}

// ProviderOption adjusts a resolved Config before the provider is built.
type ProviderOption func(*Config)

// WithMockResponder sets the responder used when the provider is "mock".
func WithMockResponder(r Responder) ProviderOption {
	return func(c *Config) {
		c.MockResponder = r
	}
}
