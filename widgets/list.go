package widgets

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var listEmptyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#7f849c"))

// List renders titled rows, clipped to height. Rows past the limit collapse
// into a "+N more" line.
type List struct {
	Title string
	Items []string
	Empty string
}

func (l List) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	rows := make([]string, 0, len(l.Items)+1)
	if l.Title != "" {
		rows = append(rows, l.Title)
	}
	if len(l.Items) == 0 && l.Empty != "" {
		rows = append(rows, listEmptyStyle.Render(l.Empty))
	}
	for _, item := range l.Items {
		rows = append(rows, "- "+item)
	}
	if len(rows) > height {
		hidden := len(rows) - height + 1
		rows = append(rows[:height-1], listEmptyStyle.Render("+"+strconv.Itoa(hidden)+" more"))
	}
	for i, row := range rows {
		rows[i] = padRight(row, width)
	}
	return strings.Join(rows, "\n")
}
