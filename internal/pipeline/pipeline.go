// Package pipeline runs input validation and question generation over one
// text or a batch of texts, and records each run.
package pipeline

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/abhisek/mcqgen/internal/mcq"
	"github.com/abhisek/mcqgen/internal/mcqgen"
	"github.com/abhisek/mcqgen/internal/store"
)

// ErrInvalidInput is returned by Generate when the text fails validation.
var ErrInvalidInput = errors.New("invalid input text")

// Run sources recorded in the store.
const (
	SourceCLI   = "cli"
	SourceBatch = "batch"
	SourceHTTP  = "http"
)

// Pipeline validates texts and hands the valid ones to a Generator.
// It holds no per-call state and is safe for concurrent use when its
// Generator and RunRepo are.
type Pipeline struct {
	gen        mcqgen.Generator
	log        *zap.Logger
	minLength  int
	difficulty string
	runs       store.RunRepo
	source     string
	outputPath string
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithMinLength sets the minimum trimmed text length.
func WithMinLength(n int) Option {
	return func(p *Pipeline) { p.minLength = n }
}

// WithDifficulty sets the difficulty used by BatchProcess.
func WithDifficulty(d string) Option {
	return func(p *Pipeline) { p.difficulty = d }
}

// WithRunRepo records every run in repo.
func WithRunRepo(repo store.RunRepo) Option {
	return func(p *Pipeline) { p.runs = repo }
}

// WithSource labels recorded runs, e.g. SourceHTTP. By default Generate
// records SourceCLI and BatchProcess SourceBatch.
func WithSource(source string) Option {
	return func(p *Pipeline) { p.source = source }
}

// WithOutputPath notes where the caller will save results, for run records.
func WithOutputPath(path string) Option {
	return func(p *Pipeline) { p.outputPath = path }
}

// New creates a Pipeline around gen.
func New(gen mcqgen.Generator, log *zap.Logger, opts ...Option) *Pipeline {
	if log == nil {
		log = zap.NewNop()
	}
	p := &Pipeline{
		gen:        gen,
		log:        log,
		minLength:  mcq.DefaultMinLength,
		difficulty: mcq.DefaultDifficulty,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Generate validates text and produces n questions at the given difficulty.
// An empty difficulty uses the pipeline default.
func (p *Pipeline) Generate(ctx context.Context, text string, n int, difficulty string) ([]mcq.Record, error) {
	if difficulty == "" {
		difficulty = p.difficulty
	}
	run := store.RunData{
		Source:           p.sourceOr(SourceCLI),
		Texts:            1,
		QuestionsPerText: n,
		Difficulty:       difficulty,
	}

	if !mcq.ValidateInput(p.log, text, p.minLength) {
		run.ErrorMessage = ErrInvalidInput.Error()
		p.recordRun(ctx, run)
		return nil, ErrInvalidInput
	}
	run.AcceptedTexts = 1

	records, err := p.gen.Generate(ctx, mcqgen.GenerateInput{
		Text:         text,
		NumQuestions: n,
		Difficulty:   difficulty,
	})
	if err != nil {
		run.ErrorMessage = err.Error()
		p.recordRun(ctx, run)
		return nil, fmt.Errorf("generate: %w", err)
	}

	run.Records = len(records)
	run.Success = true
	p.recordRun(ctx, run)
	return records, nil
}

// BatchProcess generates n questions for every valid text, in order, and
// concatenates the results. Invalid texts are skipped; a generation error
// stops the batch and is returned.
func (p *Pipeline) BatchProcess(ctx context.Context, texts []string, n int) ([]mcq.Record, error) {
	all := make([]mcq.Record, 0)
	run := store.RunData{
		Source:           p.sourceOr(SourceBatch),
		Texts:            len(texts),
		QuestionsPerText: n,
		Difficulty:       p.difficulty,
	}

	var prior []string
	for i, text := range texts {
		p.log.Info(fmt.Sprintf("Processing text %d/%d", i+1, len(texts)))

		if !mcq.ValidateInput(p.log, text, p.minLength) {
			p.log.Debug("skipping invalid text", zap.Int("index", i+1))
			continue
		}
		run.AcceptedTexts++

		records, err := p.gen.Generate(ctx, mcqgen.GenerateInput{
			Text:           text,
			NumQuestions:   n,
			Difficulty:     p.difficulty,
			PriorQuestions: prior,
		})
		if err != nil {
			run.Records = len(all)
			run.ErrorMessage = err.Error()
			p.recordRun(ctx, run)
			return nil, fmt.Errorf("text %d/%d: %w", i+1, len(texts), err)
		}

		all = append(all, records...)
		for _, r := range records {
			prior = append(prior, r.Question)
		}
	}

	p.log.Info(fmt.Sprintf("Batch processing complete. Generated %d MCQs", len(all)))

	run.Records = len(all)
	run.Success = true
	p.recordRun(ctx, run)
	return all, nil
}

func (p *Pipeline) sourceOr(def string) string {
	if p.source != "" {
		return p.source
	}
	return def
}

// recordRun stores run when a RunRepo is configured. Failures are logged.
func (p *Pipeline) recordRun(ctx context.Context, run store.RunData) {
	if p.runs == nil {
		return
	}
	run.OutputPath = p.outputPath
	run.Model = mcqgen.ModelOf(p.gen)

	id, err := p.runs.AppendRun(context.WithoutCancel(ctx), run)
	if err != nil {
		p.log.Warn("failed to record generation run", zap.Error(err))
		return
	}
	p.log.Debug("generation run recorded", zap.String("run_id", id), zap.Bool("success", run.Success))
}
