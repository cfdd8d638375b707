package containers

import (
	"slices"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/navsync/navigation"
	"github.com/jask/navsync/widgets"
)

// Navigator is a stack of screens showing the top one. The back key pops the
// top screen and reports the transition to the delegate as user-initiated.
// The root screen can not be popped by the user.
type Navigator struct {
	screens  []Screen
	delegate navigation.StackDelegate[Screen]
	keys     KeyMap
	marker   string
}

func NewNavigator(keys KeyMap) *Navigator {
	return &Navigator{keys: keys}
}

func (n *Navigator) Screens() []Screen {
	return slices.Clone(n.screens)
}

// SetScreens replaces the stack. When the top screen changes the delegate is
// told, as a programmatic transition.
func (n *Navigator) SetScreens(screens []Screen, animated bool) {
	from := n.top()
	grew := len(screens) >= len(n.screens)
	n.screens = slices.Clone(screens)
	n.marker = transitionMarker(animated, grew)
	if to := n.top(); to != from && n.delegate != nil {
		n.delegate.DidShow(navigation.Transition[Screen]{From: from, To: to})
	}
}

func (n *Navigator) Delegate() navigation.StackDelegate[Screen]     { return n.delegate }
func (n *Navigator) SetDelegate(d navigation.StackDelegate[Screen]) { n.delegate = d }

// Depth returns the number of screens on the stack.
func (n *Navigator) Depth() int {
	return len(n.screens)
}

func (n *Navigator) Title() string {
	if top := n.top(); top != nil {
		return top.Title()
	}
	return ""
}

func (n *Navigator) Update(msg tea.Msg) tea.Cmd {
	if km, ok := msg.(tea.KeyMsg); ok && key.Matches(km, n.keys.Back) && len(n.screens) > 1 {
		n.popByUser()
		return nil
	}
	if top := n.top(); top != nil {
		return top.Update(msg)
	}
	return nil
}

func (n *Navigator) popByUser() {
	from := n.top()
	n.screens = n.screens[:len(n.screens)-1]
	n.marker = transitionMarker(true, false)
	if n.delegate != nil {
		n.delegate.DidShow(navigation.Transition[Screen]{From: from, To: n.top(), UserInitiated: true})
	}
}

func (n *Navigator) View(width, height int) string {
	titles := make([]string, 0, len(n.screens))
	for _, s := range n.screens {
		titles = append(titles, s.Title())
	}
	body := widgets.Func(func(w, h int) string {
		if top := n.top(); top != nil {
			return top.View(w, h)
		}
		return ""
	})
	return widgets.VStack{
		Header:       widgets.Breadcrumb{Titles: titles, Marker: n.marker},
		HeaderHeight: 1,
		Body:         body,
	}.Render(width, height)
}

func (n *Navigator) top() Screen {
	if len(n.screens) == 0 {
		return nil
	}
	return n.screens[len(n.screens)-1]
}

func transitionMarker(animated, forward bool) string {
	switch {
	case !animated:
		return ""
	case forward:
		return "→"
	default:
		return "←"
	}
}
