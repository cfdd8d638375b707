package containers

import tea "github.com/charmbracelet/bubbletea"

// Screen is anything a container can show.
type Screen interface {
	Title() string
	View(width, height int) string
	Update(msg tea.Msg) tea.Cmd
}
