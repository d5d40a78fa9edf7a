// Package theme holds the quiz palette and shared lipgloss styles.
package theme

import "charm.land/lipgloss/v2"

var (
	Primary   = lipgloss.Color("#7C3AED")
	Secondary = lipgloss.Color("#06B6D4")
	Accent    = lipgloss.Color("#FBBF24")
	Success   = lipgloss.Color("#10B981")
	Error     = lipgloss.Color("#F43F5E")
	Text      = lipgloss.Color("#E2E8F0")
	TextDim   = lipgloss.Color("#64748B")
	BgBar     = lipgloss.Color("#0F172A")
	Border    = lipgloss.Color("#475569")
)

var (
	Title    = lipgloss.NewStyle().Foreground(Primary).Bold(true)
	Question = lipgloss.NewStyle().Foreground(Text).Bold(true).MarginBottom(1)
	Body     = lipgloss.NewStyle().Foreground(Text)
	Hint     = lipgloss.NewStyle().Foreground(TextDim).Italic(true)
	Dimmed   = lipgloss.NewStyle().Foreground(TextDim)

	Selected   = lipgloss.NewStyle().Foreground(Secondary).Bold(true)
	Unselected = Body
	Correct    = lipgloss.NewStyle().Foreground(Success).Bold(true)
	Incorrect  = lipgloss.NewStyle().Foreground(Error).Bold(true)

	Card = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(Border).Padding(1, 2)
	Bar  = lipgloss.NewStyle().Background(BgBar).Padding(0, 2)

	ProgressFilled = lipgloss.NewStyle().Background(Secondary)
	ProgressEmpty  = lipgloss.NewStyle().Background(Border)
)
