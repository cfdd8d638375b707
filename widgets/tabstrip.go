package widgets

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	tabActiveStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#1e1e2e")).Background(lipgloss.Color("#89b4fa")).Padding(0, 1)
	tabInactiveStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#a6adc8")).Padding(0, 1)
	crumbStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#7f849c"))
	crumbTopStyle    = lipgloss.NewStyle().Bold(true)
	markerStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#fab387"))
)

// TabStrip renders tab titles on one line, numbered from 1.
type TabStrip struct {
	Titles   []string
	Selected int
}

func (s TabStrip) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	parts := make([]string, 0, len(s.Titles))
	for i, title := range s.Titles {
		label := strconv.Itoa(i+1) + " " + title
		if i == s.Selected {
			parts = append(parts, tabActiveStyle.Render(label))
		} else {
			parts = append(parts, tabInactiveStyle.Render(label))
		}
	}
	return padRight(strings.Join(parts, " "), width)
}

// Breadcrumb renders a stack path, root first, top item emphasised.
type Breadcrumb struct {
	Titles []string
	// Marker is a short transition marker shown after the path, empty for none.
	Marker string
}

func (b Breadcrumb) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	if len(b.Titles) == 0 {
		return padRight(crumbStyle.Render("(empty)"), width)
	}
	parts := make([]string, 0, len(b.Titles))
	for i, title := range b.Titles {
		if i == len(b.Titles)-1 {
			parts = append(parts, crumbTopStyle.Render(title))
		} else {
			parts = append(parts, crumbStyle.Render(title))
		}
	}
	line := strings.Join(parts, crumbStyle.Render(" › "))
	if b.Marker != "" {
		line += " " + markerStyle.Render(b.Marker)
	}
	return padRight(line, width)
}
