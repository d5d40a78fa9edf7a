package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/mcqgen/internal/config"
	"github.com/abhisek/mcqgen/internal/llm"
	"github.com/abhisek/mcqgen/internal/mcqgen"
	"github.com/abhisek/mcqgen/internal/pipeline"
	"github.com/abhisek/mcqgen/internal/store"
)

// newGenerator builds the configured question generator. events may be nil.
func newGenerator(ctx context.Context, events store.EventRepo) (mcqgen.Generator, error) {
	var gen mcqgen.Generator
	switch state.settings.Generator {
	case config.GeneratorLLM:
		provider, err := llm.NewProviderFromEnv(ctx, events, state.log, llm.WithMockResponder(mcqgen.OfflineResponder))
		if err != nil {
			return nil, fmt.Errorf("LLM provider not configured: %w", err)
		}
		gen = mcqgen.New(provider, mcqgen.DefaultConfig())
	default:
		gen = mcqgen.NewPlaceholder()
	}
	return mcqgen.WithLogging(gen, state.log), nil
}

// newPipeline opens the store (when possible) and assembles a Pipeline.
// A database that cannot be opened disables run history but is not fatal.
// The returned func closes the store.
func newPipeline(cmd *cobra.Command, opts ...pipeline.Option) (*pipeline.Pipeline, func(), error) {
	cleanup := func() {}

	var events store.EventRepo
	var runs store.RunRepo
	st, err := openStore(cmd)
	if err != nil {
		state.log.Warn("run history disabled", zap.Error(err))
	} else {
		events = st.EventRepo()
		runs = st.RunRepo()
		cleanup = func() { _ = st.Close() }
	}

	gen, err := newGenerator(cmd.Context(), events)
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	base := []pipeline.Option{
		pipeline.WithMinLength(state.settings.MinLength),
		pipeline.WithDifficulty(state.settings.Difficulty),
	}
	if runs != nil {
		base = append(base, pipeline.WithRunRepo(runs))
	}
	return pipeline.New(gen, state.log, append(base, opts...)...), cleanup, nil
}

// numQuestions returns the -n flag when set, else the configured default.
func numQuestions(cmd *cobra.Command, flag string) int {
	if cmd.Flags().Changed(flag) {
		n, _ := cmd.Flags().GetInt(flag)
		return n
	}
	return state.settings.NumQuestions
}

// outputPath returns the --output flag when set, else the configured default.
func outputPath(cmd *cobra.Command) string {
	if p, _ := cmd.Flags().GetString("output"); p != "" {
		return p
	}
	return state.settings.OutputPath
}
