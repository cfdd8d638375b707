package demo

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Open       key.Binding
	Back       key.Binding
	PopRoot    key.Binding
	Sheet      key.Binding
	FullScreen key.Binding
	Alert      key.Binding
	GoTo       key.Binding
	Quit       key.Binding
	Close      key.Binding
	Dismiss    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Open:       key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		Back:       key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		PopRoot:    key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "home")),
		Sheet:      key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sheet")),
		FullScreen: key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "full screen")),
		Alert:      key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "alert")),
		GoTo:       key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "go to")),
		Quit:       key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		Close:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "close")),
		Dismiss:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "dismiss")),
	}
}

// help lists the bindings that apply with or without a modal on screen.
func (k keyMap) help(modalShown, dismissible bool) []key.Binding {
	if !modalShown {
		return []key.Binding{k.Open, k.Back, k.PopRoot, k.Sheet, k.FullScreen, k.Alert, k.GoTo, k.Quit}
	}
	if dismissible {
		return []key.Binding{k.Close, k.Dismiss}
	}
	return []key.Binding{k.Close}
}
