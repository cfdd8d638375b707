package containers

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/navsync/core/modal"
	"github.com/jask/navsync/navigation"
	"github.com/jask/navsync/widgets"
)

// ModalHost shows one screen above a base screen. It is attached once the
// terminal size is known. While a screen is presented it receives the keys;
// a sheet can be closed by the user with the dismiss key.
type ModalHost struct {
	base      Screen
	presented Screen
	style     modal.Style
	animated  bool
	attached  bool
	width     int
	height    int
	delegate  navigation.DismissDelegate[Screen]
	keys      KeyMap
}

func NewModalHost(base Screen, keys KeyMap) *ModalHost {
	return &ModalHost{base: base, keys: keys}
}

func (h *ModalHost) Attached() bool {
	return h.attached
}

func (h *ModalHost) Presented() (Screen, bool) {
	return h.presented, h.presented != nil
}

// Style returns the style of the presented screen.
func (h *ModalHost) Style() modal.Style {
	return h.style
}

func (h *ModalHost) Present(screen Screen, style modal.Style, animated bool) {
	h.presented = screen
	h.style = style
	h.animated = animated
}

func (h *ModalHost) Dismiss(animated bool) {
	h.presented = nil
	h.animated = animated
}

// Animated reports whether the last present or dismiss was animated.
func (h *ModalHost) Animated() bool {
	return h.animated
}

// SetStyle restyles the presented screen in place.
func (h *ModalHost) SetStyle(style modal.Style) {
	h.style = style
}

func (h *ModalHost) DismissDelegate() navigation.DismissDelegate[Screen] { return h.delegate }
func (h *ModalHost) SetDismissDelegate(d navigation.DismissDelegate[Screen]) {
	h.delegate = d
}

func (h *ModalHost) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h.width, h.height = msg.Width, msg.Height
		h.attached = msg.Width > 0 && msg.Height > 0
	case tea.KeyMsg:
		if h.presented == nil {
			break
		}
		if h.style.Interactive() && key.Matches(msg, h.keys.Dismiss) {
			h.dismissByUser()
			return nil
		}
		return h.presented.Update(msg)
	}
	var cmds []tea.Cmd
	if h.base != nil {
		cmds = append(cmds, h.base.Update(msg))
	}
	if _, isKey := msg.(tea.KeyMsg); !isKey && h.presented != nil {
		cmds = append(cmds, h.presented.Update(msg))
	}
	return tea.Batch(cmds...)
}

func (h *ModalHost) dismissByUser() {
	screen := h.presented
	h.presented = nil
	h.animated = true
	if h.delegate != nil {
		h.delegate.DidDismiss(screen)
	}
}

func (h *ModalHost) View() string {
	return h.Render(h.width, h.height)
}

func (h *ModalHost) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	base := ""
	if h.base != nil {
		base = h.base.View(width, height)
	}
	if h.presented == nil {
		return base
	}
	switch h.style {
	case modal.FullScreen:
		return widgets.Page{Title: h.presented.Title(), Hint: "full screen", Content: h.presented.View(width, max(height-2, 0))}.Render(width, height)
	case modal.Alert:
		return widgets.RenderAlert(base, h.presented.View(max(width/2, 10), 3), width, height)
	default:
		return widgets.RenderSheet(base, h.presented.View(max(width*2/3, 10), max(height/2, 3)), width, height)
	}
}
