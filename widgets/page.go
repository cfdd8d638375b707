package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

var (
	pageTitleStyle = lipgloss.NewStyle().Bold(true)
	pageHintStyle  = lipgloss.NewStyle().Faint(true)
	pageRuleStyle  = lipgloss.NewStyle().Faint(true)
)

// Page fills the whole area with a header line, a rule under it and the
// content below. Full screen modals render as a Page over nothing.
type Page struct {
	Title   string
	Hint    string
	Content string
}

func (p Page) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	title := ansi.Truncate(p.Title, width, "…")
	header := pageTitleStyle.Render(title)
	if gap := width - ansi.StringWidth(title) - ansi.StringWidth(p.Hint); p.Hint != "" && gap >= 2 {
		header += strings.Repeat(" ", gap) + pageHintStyle.Render(p.Hint)
	}
	lines := []string{header}
	if height > 1 {
		lines = append(lines, pageRuleStyle.Render(strings.Repeat("─", width)))
	}
	if height > 2 {
		lines = append(lines, lipgloss.NewStyle().Width(width).Height(height-2).MaxHeight(height-2).Render(p.Content))
	}
	return strings.Join(lines, "\n")
}
