package navigation

import (
	"fmt"
	"slices"

	"github.com/jask/navsync/core/modal"
)

type screen struct {
	name string
}

func (s *screen) String() string {
	if s == nil {
		return "<nil>"
	}
	return s.name
}

type factory[I comparable] struct {
	calls []I
}

func (f *factory[I]) CreateScreen(item I) *screen {
	f.calls = append(f.calls, item)
	return &screen{name: fmt.Sprint(item)}
}

type setCall struct {
	screens  []*screen
	animated bool
}

type stackContainer struct {
	screens  []*screen
	sets     []setCall
	delegate StackDelegate[*screen]
}

func (c *stackContainer) Screens() []*screen { return slices.Clone(c.screens) }

func (c *stackContainer) SetScreens(screens []*screen, animated bool) {
	c.screens = slices.Clone(screens)
	c.sets = append(c.sets, setCall{screens: slices.Clone(screens), animated: animated})
}

func (c *stackContainer) Delegate() StackDelegate[*screen]     { return c.delegate }
func (c *stackContainer) SetDelegate(d StackDelegate[*screen]) { c.delegate = d }

// userPop simulates the back gesture popping n screens.
func (c *stackContainer) userPop(n int) {
	from := c.screens[len(c.screens)-1]
	c.screens = c.screens[:len(c.screens)-n]
	var to *screen
	if len(c.screens) > 0 {
		to = c.screens[len(c.screens)-1]
	}
	c.delegate.DidShow(Transition[*screen]{From: from, To: to, UserInitiated: true})
}

type tabContainer struct {
	screens  []*screen
	sets     []setCall
	selected int
	selects  []int
	delegate TabDelegate[*screen]
}

func (c *tabContainer) Screens() []*screen { return slices.Clone(c.screens) }

func (c *tabContainer) SetScreens(screens []*screen, animated bool) {
	c.screens = slices.Clone(screens)
	c.sets = append(c.sets, setCall{screens: slices.Clone(screens), animated: animated})
}

func (c *tabContainer) SelectedIndex() int { return c.selected }

func (c *tabContainer) SetSelectedIndex(index int) {
	c.selected = index
	c.selects = append(c.selects, index)
}

func (c *tabContainer) Delegate() TabDelegate[*screen]     { return c.delegate }
func (c *tabContainer) SetDelegate(d TabDelegate[*screen]) { c.delegate = d }

// userSelect simulates a tap: the container selects first, then notifies.
func (c *tabContainer) userSelect(index int) {
	c.selected = index
	c.delegate.DidSelect(c.screens[index])
}

type presenterOp struct {
	op       string
	screen   *screen
	style    modal.Style
	animated bool
}

type presenter struct {
	attached  bool
	presented *screen
	style     modal.Style
	ops       []presenterOp
	delegate  DismissDelegate[*screen]
}

func (p *presenter) Attached() bool { return p.attached }

func (p *presenter) Presented() (*screen, bool) { return p.presented, p.presented != nil }

func (p *presenter) Present(s *screen, style modal.Style, animated bool) {
	p.presented = s
	p.style = style
	p.ops = append(p.ops, presenterOp{op: "present", screen: s, style: style, animated: animated})
}

func (p *presenter) Dismiss(animated bool) {
	p.ops = append(p.ops, presenterOp{op: "dismiss", screen: p.presented, animated: animated})
	p.presented = nil
}

func (p *presenter) DismissDelegate() DismissDelegate[*screen]     { return p.delegate }
func (p *presenter) SetDismissDelegate(d DismissDelegate[*screen]) { p.delegate = d }

func (p *presenter) userDismiss() {
	s := p.presented
	p.presented = nil
	p.delegate.DidDismiss(s)
}

// restylingPresenter can change the style of the presented screen in place.
type restylingPresenter struct {
	presenter
}

func (p *restylingPresenter) SetStyle(style modal.Style) {
	p.style = style
	p.ops = append(p.ops, presenterOp{op: "restyle", screen: p.presented, style: style})
}

func opNames(ops []presenterOp) []string {
	out := make([]string, 0, len(ops))
	for _, o := range ops {
		out = append(out, o.op+":"+o.screen.String())
	}
	return out
}

type observer struct {
	created  map[Kind]int
	reverse  map[Kind]int
	failures []error
}

func newObserver() *observer {
	return &observer{created: map[Kind]int{}, reverse: map[Kind]int{}}
}

func (o *observer) ScreenCreated(kind Kind)            { o.created[kind]++ }
func (o *observer) Transition(Kind, string, bool)      {}
func (o *observer) ReverseSync(kind Kind)              { o.reverse[kind]++ }
func (o *observer) PresentationFailed(_ Kind, e error) { o.failures = append(o.failures, e) }
