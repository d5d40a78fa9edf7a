package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mcqgen/internal/mcq"
	"github.com/abhisek/mcqgen/internal/ui/theme"
)

// MultiChoice is a multiple-choice selector for a single record.
type MultiChoice struct {
	Question string
	Options  []string

	// CorrectIndex is the position of the record's correct answer among
	// Options, or -1 when the answer matches none of them.
	CorrectIndex int

	Selected    int
	Submitted   bool
	ChosenIndex int
}

// NewMultiChoice creates a selector for r.
func NewMultiChoice(r mcq.Record) MultiChoice {
	correct := -1
	for i, opt := range r.Options {
		if opt == r.CorrectAnswer {
			correct = i
			break
		}
	}
	return MultiChoice{
		Question:     r.Question,
		Options:      r.Options,
		CorrectIndex: correct,
		ChosenIndex:  -1,
	}
}

// Update handles keyboard navigation and submission. A record without
// options can still be submitted; it is then answered with ChosenIndex -1.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	if m.Submitted {
		return m, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if m.Selected > 0 {
			m.Selected--
		}
	case "down", "j":
		if m.Selected < len(m.Options)-1 {
			m.Selected++
		}
	case "enter":
		m.Submitted = true
		if len(m.Options) > 0 {
			m.ChosenIndex = m.Selected
		}
	}

	return m, nil
}

// View renders the question and its lettered options. After submission the
// correct option is green and a wrong choice red.
func (m MultiChoice) View() string {
	var b strings.Builder
	b.WriteString(theme.Question.Render(m.Question))
	b.WriteString("\n\n")

	for i, opt := range m.Options {
		prefix := "  "
		if i == m.Selected && !m.Submitted {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%c)  %s", prefix, mcq.OptionLetter(i), opt)

		switch {
		case m.Submitted && i == m.CorrectIndex:
			line = theme.Correct.Render(line)
		case m.Submitted && i == m.ChosenIndex:
			line = theme.Incorrect.Render(line)
		case m.Submitted:
			line = theme.Dimmed.Render(line)
		case i == m.Selected:
			line = theme.Selected.Render(line)
		default:
			line = theme.Unselected.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	return b.String()
}

// IsCorrect reports whether the submitted choice is the correct answer.
func (m MultiChoice) IsCorrect() bool {
	return m.Submitted && m.CorrectIndex >= 0 && m.ChosenIndex == m.CorrectIndex
}
