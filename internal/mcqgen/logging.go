package mcqgen

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/mcqgen/internal/mcq"
)

// ModelIdentifier is implemented by generators that can name the model
// behind them.
type ModelIdentifier interface {
	ModelID() string
}

// ModelOf returns the model name of g, or "unknown".
func ModelOf(g Generator) string {
	if m, ok := g.(ModelIdentifier); ok {
		return m.ModelID()
	}
	return "unknown"
}

// loggingGenerator logs every generation and passes errors through.
type loggingGenerator struct {
	inner Generator
	log   *zap.Logger
}

// WithLogging wraps g so that failures are logged at error level before
// being returned unchanged, and successes at debug level.
func WithLogging(g Generator, log *zap.Logger) Generator {
	if log == nil {
		log = zap.NewNop()
	}
	return &loggingGenerator{inner: g, log: log}
}

func (l *loggingGenerator) Generate(ctx context.Context, input GenerateInput) ([]mcq.Record, error) {
	start := time.Now()
	records, err := l.inner.Generate(ctx, input)
	if err != nil {
		l.log.Error("error generating MCQs",
			zap.Int("num_questions", input.NumQuestions),
			zap.String("difficulty", input.Difficulty),
			zap.Error(err),
		)
		return nil, err
	}

	l.log.Debug("generated MCQs",
		zap.Int("count", len(records)),
		zap.String("difficulty", input.Difficulty),
		zap.Duration("elapsed", time.Since(start)),
	)
	return records, nil
}

func (l *loggingGenerator) ModelID() string {
	return ModelOf(l.inner)
}
