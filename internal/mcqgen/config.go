package mcqgen

// Config controls the behavior of the LLMGenerator.
type Config struct {
	// Validators is the ordered list of validators to run on every
	// generated record. They execute in order; the first failure stops
	// the chain.
	Validators []Validator

	// BaseTokens plus TokensPerQuestion times the requested count is the
	// token budget for one response.
	BaseTokens        int
	TokensPerQuestion int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64

	// MaxPriorQuestions caps how many earlier questions are listed in
	// the prompt for deduplication.
	MaxPriorQuestions int

	// MaxTextRunes truncates the source text placed in the prompt.
	MaxTextRunes int

	// OptionsPerQuestion is the number of options requested per record.
	OptionsPerQuestion int
}

// DefaultConfig returns a Config with the standard validator chain and
// recommended defaults. Answer membership is not checked by default; add
// AnswerInOptionsValidator to enforce it.
func DefaultConfig() Config {
	return Config{
		Validators: []Validator{
			&StructuralValidator{},
		},
		BaseTokens:         256,
		TokensPerQuestion:  200,
		Temperature:        0.7,
		MaxPriorQuestions:  20,
		MaxTextRunes:       12000,
		OptionsPerQuestion: 4,
	}
}

// maxTokens returns the response budget for n questions.
func (c Config) maxTokens(n int) int {
	return c.BaseTokens + n*c.TokensPerQuestion
}
