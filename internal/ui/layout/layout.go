package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mcqgen/internal/ui/theme"
)

// Smallest terminal the quiz renders in.
const (
	MinWidth  = 60
	MinHeight = 16
)

// KeyHint is one "key action" pair in the footer.
type KeyHint struct {
	Key         string
	Description string
}

func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// RenderMinSizeMessage centers a resize prompt in the available space.
func RenderMinSizeMessage(width, height int) string {
	msg := fmt.Sprintf("Terminal too small (%dx%d).\nResize to at least %dx%d.", width, height, MinWidth, MinHeight)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		theme.Body.Align(lipgloss.Center).Render(msg))
}

// RenderHeader lays out the app name on the left, title in the middle and
// the running score on the right, across width columns.
func RenderHeader(title string, score, answered, width int) string {
	inner := max(width-theme.Bar.GetHorizontalFrameSize(), 0)
	third := inner / 3

	left := lipgloss.PlaceHorizontal(third, lipgloss.Left, theme.Title.Render("mcqgen"))
	center := lipgloss.PlaceHorizontal(inner-2*third, lipgloss.Center, theme.Body.Render(title))
	right := lipgloss.PlaceHorizontal(third, lipgloss.Right,
		lipgloss.NewStyle().Foreground(theme.Accent).Render(fmt.Sprintf("Score %d/%d", score, answered)))

	return theme.Bar.Width(width).Render(lipgloss.JoinHorizontal(lipgloss.Top, left, center, right))
}

func RenderFooter(hints []KeyHint, width int) string {
	parts := make([]string, len(hints))
	for i, h := range hints {
		parts[i] = theme.Body.Bold(true).Render(h.Key) + " " + theme.Dimmed.Render(h.Description)
	}
	return theme.Bar.Width(width).Render(strings.Join(parts, "  ·  "))
}

// RenderFrame stacks header, content and footer, giving content whatever
// height remains.
func RenderFrame(header, content, footer string, width, height int) string {
	rest := max(height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	body := lipgloss.NewStyle().Width(width).Height(rest).Render(content)
	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}
