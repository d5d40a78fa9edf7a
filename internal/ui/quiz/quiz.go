// Package quiz is an interactive terminal quiz over a set of generated
// MCQ records.
package quiz

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mcqgen/internal/mcq"
	"github.com/abhisek/mcqgen/internal/ui/components"
	"github.com/abhisek/mcqgen/internal/ui/layout"
	"github.com/abhisek/mcqgen/internal/ui/theme"
)

// Result summarises a finished (or abandoned) quiz.
type Result struct {
	Correct  int
	Answered int
	Total    int
}

// Model is the Bubble Tea model for the quiz.
type Model struct {
	records  []mcq.Record
	index    int
	choice   components.MultiChoice
	correct  int
	answered int
	done     bool

	width  int
	height int
}

// New creates a quiz over records. An empty set starts finished.
func New(records []mcq.Record) Model {
	m := Model{records: records}
	if len(records) == 0 {
		m.done = true
		return m
	}
	m.choice = components.NewMultiChoice(records[0])
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "ctrl+c" || key == "q" {
		return m, tea.Quit
	}

	if m.done {
		if key == "enter" {
			return m, tea.Quit
		}
		return m, nil
	}

	if m.choice.Submitted {
		if key == "n" || key == "enter" {
			m.advance()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.choice, cmd = m.choice.Update(msg)
	if m.choice.Submitted {
		m.answered++
		if m.choice.IsCorrect() {
			m.correct++
		}
	}
	return m, cmd
}

func (m *Model) advance() {
	m.index++
	if m.index >= len(m.records) {
		m.done = true
		return
	}
	m.choice = components.NewMultiChoice(m.records[m.index])
}

// Done reports whether every question has been answered.
func (m Model) Done() bool {
	return m.done
}

// Result returns the score so far.
func (m Model) Result() Result {
	return Result{Correct: m.correct, Answered: m.answered, Total: len(m.records)}
}

func (m Model) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}
	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	header := layout.RenderHeader(m.title(), m.correct, m.answered, m.width)
	footer := layout.RenderFooter(m.hints(), m.width)
	v.SetContent(layout.RenderFrame(header, m.Render(m.width-4), footer, m.width, m.height))
	return v
}

func (m Model) title() string {
	if m.done {
		return "Results"
	}
	return fmt.Sprintf("Question %d of %d", m.index+1, len(m.records))
}

func (m Model) hints() []layout.KeyHint {
	switch {
	case m.done:
		return []layout.KeyHint{{Key: "Enter", Description: "Exit"}}
	case m.choice.Submitted:
		return []layout.KeyHint{
			{Key: "n/Enter", Description: "Next"},
			{Key: "q", Description: "Quit"},
		}
	default:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Move"},
			{Key: "Enter", Description: "Answer"},
			{Key: "q", Description: "Quit"},
		}
	}
}

// Render returns the body of the current screen, width columns wide.
func (m Model) Render(width int) string {
	if m.done {
		return m.renderSummary()
	}

	var b strings.Builder
	b.WriteString(components.NewProgressBar(m.index, len(m.records), width).View())
	b.WriteString("\n\n")
	b.WriteString(m.choice.View())

	if m.choice.Submitted {
		b.WriteString("\n")
		switch {
		case m.choice.IsCorrect():
			b.WriteString(theme.Correct.Render("Correct!"))
		case len(m.choice.Options) == 0:
			b.WriteString(theme.Incorrect.Render("This question has no options and cannot be answered."))
		case m.choice.CorrectIndex < 0:
			b.WriteString(theme.Incorrect.Render(
				fmt.Sprintf("No option matches the recorded answer: %s", m.records[m.index].CorrectAnswer)))
		default:
			b.WriteString(theme.Incorrect.Render(fmt.Sprintf("Incorrect. The answer is %c) %s",
				mcq.OptionLetter(m.choice.CorrectIndex), m.choice.Options[m.choice.CorrectIndex])))
		}
		b.WriteString("\n\n")
		b.WriteString(theme.Hint.Render("Press n or enter for the next question"))
	}

	return b.String()
}

func (m Model) renderSummary() string {
	total := len(m.records)
	if total == 0 {
		return theme.Body.Render("No questions to ask.")
	}
	lines := []string{
		theme.Title.Render("Quiz complete!"),
		"",
		theme.Body.Render(fmt.Sprintf("You scored %d out of %d.", m.correct, total)),
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// Run starts an interactive quiz and returns the final score.
func Run(records []mcq.Record) (Result, error) {
	p := tea.NewProgram(New(records))
	final, err := p.Run()
	if err != nil {
		return Result{}, fmt.Errorf("run quiz: %w", err)
	}
	if fm, ok := final.(Model); ok {
		return fm.Result(), nil
	}
	return Result{Total: len(records)}, nil
}
