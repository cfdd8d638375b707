package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

var (
	sheetCard = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
	alertCard = lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).Padding(0, 2)
)

// RenderSheet draws popup as a bordered card rising from the bottom edge of
// base.
func RenderSheet(base, popup string, width, height int) string {
	return composite(base, sheetCard.Render(popup), lipgloss.Bottom, width, height)
}

// RenderAlert draws popup as a compact double-bordered card in the middle of
// base.
func RenderAlert(base, popup string, width, height int) string {
	return composite(base, alertCard.Render(popup), lipgloss.Center, width, height)
}

// composite places card horizontally centered at vertical position pos and
// lets base show through everywhere the card does not cover.
func composite(base, card string, pos lipgloss.Position, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	baseLines := splitToLines(base, height)
	cardLines := splitToLines(lipgloss.Place(width, height, lipgloss.Center, pos, card), height)
	out := make([]string, height)
	for i := range out {
		out[i] = overlayLine(padRight(baseLines[i], width), padRight(cardLines[i], width), width)
	}
	return strings.Join(out, "\n")
}

// overlayLine replaces the columns of under covered by the visible part of
// over. Leading and trailing blanks of over are transparent.
func overlayLine(under, over string, width int) string {
	plain := ansi.Strip(over)
	trimmed := strings.TrimRight(plain, " ")
	if trimmed == "" {
		return under
	}
	start := ansi.StringWidth(plain) - ansi.StringWidth(strings.TrimLeft(plain, " "))
	end := ansi.StringWidth(trimmed)
	if start >= end {
		return under
	}
	left := ansi.Truncate(under, start, "")
	segment := ansi.Truncate(ansi.TruncateLeft(over, start, ""), end-start, "")
	right := ansi.TruncateLeft(under, end, "")
	return padRight(left+segment+right, width)
}

func fitCanvas(s string, width, height int) string {
	lines := splitToLines(s, height)
	for i := range lines {
		lines[i] = padRight(lines[i], width)
	}
	return strings.Join(lines, "\n")
}

func splitToLines(s string, height int) []string {
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return lines
}
