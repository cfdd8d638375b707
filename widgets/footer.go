package widgets

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

var (
	footerBg        = lipgloss.Color("#181825")
	footerKeyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#89b4fa")).Bold(true).Background(footerBg)
	footerDescStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#7f849c")).Background(footerBg)
	footerBarStyle  = lipgloss.NewStyle().Background(footerBg)
)

// Footer renders the help of enabled key bindings on one line.
type Footer struct {
	Bindings []key.Binding
}

func (f Footer) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	space := footerBarStyle.Render(" ")
	sep := footerBarStyle.Render("  ")

	parts := make([]string, 0, len(f.Bindings))
	for _, b := range f.Bindings {
		if !b.Enabled() {
			continue
		}
		h := b.Help()
		if h.Key == "" && h.Desc == "" {
			continue
		}
		parts = append(parts, footerKeyStyle.Render(h.Key)+space+footerDescStyle.Render(h.Desc))
	}
	line := strings.Join(parts, sep)
	if line == "" {
		line = footerDescStyle.Render("No shortcuts")
	}
	return renderBar(footerBarStyle, width, line)
}

func renderBar(style lipgloss.Style, width int, text string) string {
	line := strings.ReplaceAll(text, "\n", " ")
	line = ansi.Truncate(line, width, "")
	if w := ansi.StringWidth(line); w < width {
		line += strings.Repeat(" ", width-w)
	}
	return style.Width(width).MaxWidth(width).Render(line)
}
