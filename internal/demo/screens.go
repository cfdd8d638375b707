package demo

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/navsync/core/modal"
	"github.com/jask/navsync/core/stack"
	"github.com/jask/navsync/core/tab"
	"github.com/jask/navsync/internal/config"
	"github.com/jask/navsync/widgets"
)

var (
	dimStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#7f849c"))
	textStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#cdd6f4"))
)

// actionMsg asks the app to send an action to the store. Screens return it
// instead of sending from inside a container update.
type actionMsg struct {
	action Action
}

func dispatch(a Action) tea.Cmd {
	return func() tea.Msg { return actionMsg{action: a} }
}

type routeScreen struct {
	route Route
}

func (s *routeScreen) Title() string {
	if !s.route.Detail {
		return "home"
	}
	return "detail " + s.route.ID
}

func (s *routeScreen) View(width, height int) string {
	lines := []string{
		textStyle.Render(s.Title()),
		"",
		dimStyle.Render("enter  open a detail"),
		dimStyle.Render("esc    back"),
		dimStyle.Render("p      back to home"),
		dimStyle.Render("s f a  sheet, full screen, alert"),
		dimStyle.Render("g      go to tab"),
		dimStyle.Render("q      quit"),
	}
	return strings.Join(lines, "\n")
}

func (s *routeScreen) Update(msg tea.Msg) tea.Cmd {
	if km, ok := msg.(tea.KeyMsg); ok && km.String() == "enter" {
		return dispatch(Action{Home: stack.Push(newDetailRoute())})
	}
	return nil
}

type inboxScreen struct {
	messages []string
}

func (s *inboxScreen) Title() string { return string(TabInbox) }

func (s *inboxScreen) View(width, height int) string {
	return widgets.List{Items: s.messages, Empty: "no messages"}.Render(width, height)
}

func (s *inboxScreen) Update(tea.Msg) tea.Cmd { return nil }

type settingsScreen struct {
	cfg config.NavigationConfig
}

func (s *settingsScreen) Title() string { return string(TabSettings) }

func (s *settingsScreen) View(width, height int) string {
	return strings.Join([]string{
		fmt.Sprintf("animations     %t", s.cfg.Animations),
		fmt.Sprintf("debug          %t", s.cfg.Debug),
		fmt.Sprintf("poll interval  %s", s.cfg.WindowPollInterval),
		fmt.Sprintf("max wait       %s", s.cfg.MaxWindowWait),
	}, "\n")
}

func (s *settingsScreen) Update(tea.Msg) tea.Cmd { return nil }

// messageScreen is a modal with fixed text; enter closes it.
type messageScreen struct {
	title string
	body  string
}

func (s *messageScreen) Title() string { return s.title }

func (s *messageScreen) View(width, height int) string {
	return textStyle.Render(s.body) + "\n" + dimStyle.Render("enter to close")
}

func (s *messageScreen) Update(msg tea.Msg) tea.Cmd {
	if km, ok := msg.(tea.KeyMsg); ok && km.String() == "enter" {
		return dispatch(Action{Modal: modal.Dismiss[Dialog]()})
	}
	return nil
}

// jumpScreen prompts for a tab name and activates the closest tab.
type jumpScreen struct {
	input textinput.Model
}

func newJumpScreen() *jumpScreen {
	in := textinput.New()
	in.Prompt = "go to › "
	in.Placeholder = "home, inbox, settings"
	in.CharLimit = 32
	in.Cursor.SetMode(cursor.CursorStatic)
	in.Focus()
	return &jumpScreen{input: in}
}

func (s *jumpScreen) Title() string { return "go to" }

func (s *jumpScreen) View(width, height int) string {
	s.input.Width = max(width-len(s.input.Prompt)-1, 1)
	hint := "no match"
	if t, ok := closestTab(s.input.Value()); ok {
		hint = "→ " + string(t)
	}
	return s.input.View() + "\n" + dimStyle.Render(hint)
}

func (s *jumpScreen) Update(msg tea.Msg) tea.Cmd {
	if km, ok := msg.(tea.KeyMsg); ok && km.String() == "enter" {
		t, found := closestTab(s.input.Value())
		if !found {
			return nil
		}
		return dispatch(Action{Tab: tab.Activate(t), Modal: modal.Dismiss[Dialog]()})
	}
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return cmd
}
