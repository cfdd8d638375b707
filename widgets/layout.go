package widgets

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

type Widget interface {
	Render(width, height int) string
}

// Func adapts a render function to Widget.
type Func func(width, height int) string

func (f Func) Render(width, height int) string { return f(width, height) }

// VStack renders a fixed-height header above a body that takes the rest.
type VStack struct {
	Header       Widget
	HeaderHeight int
	Body         Widget
}

func (v VStack) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	headerHeight := min(max(v.HeaderHeight, 0), height)
	parts := make([]string, 0, 2)
	if v.Header != nil && headerHeight > 0 {
		parts = append(parts, fitCanvas(v.Header.Render(width, headerHeight), width, headerHeight))
	}
	if v.Body != nil && height-headerHeight > 0 {
		parts = append(parts, fitCanvas(v.Body.Render(width, height-headerHeight), width, height-headerHeight))
	}
	return strings.Join(parts, "\n")
}

func padRight(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = ansi.Truncate(s, width, "")
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
