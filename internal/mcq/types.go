package mcq

// Record is a single generated multiple-choice question.
// Field order matches the on-disk key order.
type Record struct {
	// Question is the prompt shown to the reader.
	Question string `json:"question" yaml:"question"`

	// Options holds the answer choices in display order. Lettering (A, B,
	// C, ...) follows this order.
	Options []string `json:"options" yaml:"options"`

	// CorrectAnswer is the text of the correct option. It is expected to
	// equal one element of Options but this is not enforced here.
	CorrectAnswer string `json:"correct_answer" yaml:"correct_answer"`

	// Difficulty is passed through from the request unchecked.
	Difficulty string `json:"difficulty" yaml:"difficulty"`
}

// Known difficulty labels. The set is open: any string is accepted.
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// DefaultDifficulty is used when a caller does not choose one.
const DefaultDifficulty = DifficultyMedium

// HasAnswerInOptions reports whether CorrectAnswer matches one of Options.
func (r Record) HasAnswerInOptions() bool {
	for _, o := range r.Options {
		if o == r.CorrectAnswer {
			return true
		}
	}
	return false
}
