package containers

import (
	"slices"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/navsync/navigation"
	"github.com/jask/navsync/widgets"
)

// TabBar shows a strip of tabs above the selected screen. Tab keys select a
// tab and tell the delegate; other messages go to the selected screen.
type TabBar struct {
	screens  []Screen
	selected int
	delegate navigation.TabDelegate[Screen]
	keys     KeyMap
}

func NewTabBar(keys KeyMap) *TabBar {
	return &TabBar{keys: keys}
}

func (b *TabBar) Screens() []Screen {
	return slices.Clone(b.screens)
}

// SetScreens replaces the tabs. The selected index is kept when still in
// range. There is nothing to animate in a terminal tab strip.
func (b *TabBar) SetScreens(screens []Screen, _ bool) {
	b.screens = slices.Clone(screens)
	if b.selected >= len(b.screens) {
		b.selected = max(len(b.screens)-1, 0)
	}
}

func (b *TabBar) SelectedIndex() int {
	return b.selected
}

func (b *TabBar) SetSelectedIndex(index int) {
	if index < 0 || index >= len(b.screens) {
		return
	}
	b.selected = index
}

func (b *TabBar) Delegate() navigation.TabDelegate[Screen]     { return b.delegate }
func (b *TabBar) SetDelegate(d navigation.TabDelegate[Screen]) { b.delegate = d }

func (b *TabBar) Title() string {
	if s := b.current(); s != nil {
		return s.Title()
	}
	return ""
}

func (b *TabBar) Update(msg tea.Msg) tea.Cmd {
	if km, ok := msg.(tea.KeyMsg); ok && len(b.screens) > 0 {
		if index, ok := b.targetFor(km); ok {
			b.selectByUser(index)
			return nil
		}
	}
	if s := b.current(); s != nil {
		return s.Update(msg)
	}
	return nil
}

func (b *TabBar) targetFor(km tea.KeyMsg) (int, bool) {
	switch {
	case key.Matches(km, b.keys.NextTab):
		return (b.selected + 1) % len(b.screens), true
	case key.Matches(km, b.keys.PrevTab):
		return (b.selected - 1 + len(b.screens)) % len(b.screens), true
	}
	if index, ok := tabIndexForKey(km.String()); ok && index < len(b.screens) {
		return index, true
	}
	return 0, false
}

func (b *TabBar) selectByUser(index int) {
	b.selected = index
	if b.delegate != nil {
		b.delegate.DidSelect(b.screens[index])
	}
}

func (b *TabBar) View(width, height int) string {
	titles := make([]string, 0, len(b.screens))
	for _, s := range b.screens {
		titles = append(titles, s.Title())
	}
	body := widgets.Func(func(w, h int) string {
		if s := b.current(); s != nil {
			return s.View(w, h)
		}
		return ""
	})
	return widgets.VStack{
		Header:       widgets.TabStrip{Titles: titles, Selected: b.selected},
		HeaderHeight: 1,
		Body:         body,
	}.Render(width, height)
}

func (b *TabBar) current() Screen {
	if b.selected < 0 || b.selected >= len(b.screens) {
		return nil
	}
	return b.screens[b.selected]
}
