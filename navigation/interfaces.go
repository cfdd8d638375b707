package navigation

import (
	"time"

	"github.com/jask/navsync/core/modal"
)

// Store is the state owner a handler observes and reports back to. Subscribe
// must call fn with the current state before returning.
type Store[S, A any] interface {
	Subscribe(fn func(S)) (cancel func())
	Send(action A)
}

// ScreenFactory creates the screen shown for an item. Handlers call it at
// most once per item while the item stays in their state.
type ScreenFactory[I comparable, V any] interface {
	CreateScreen(item I) V
}

type ScreenFactoryFunc[I comparable, V any] func(item I) V

func (f ScreenFactoryFunc[I, V]) CreateScreen(item I) V { return f(item) }

// Scheduler runs functions on the UI loop later. Defer runs fn on the next
// turn of the loop, never on the caller's stack.
type Scheduler interface {
	Defer(fn func())
	After(d time.Duration, fn func())
}

// Env carries ambient settings into a reconciliation.
type Env struct {
	// AnimationsEnabled is the global animation switch. When false no
	// transition is animated, whatever the state asks for.
	AnimationsEnabled bool
}

// Transition describes a completed stack transition from one screen to
// another.
type Transition[V any] struct {
	From V
	To   V
	// UserInitiated is set when the user caused the transition (back key,
	// swipe) rather than a SetScreens call.
	UserInitiated bool
}

type StackDelegate[V any] interface {
	DidShow(t Transition[V])
}

// StackContainer is a screen stack, root first.
type StackContainer[V comparable] interface {
	Screens() []V
	SetScreens(screens []V, animated bool)
	Delegate() StackDelegate[V]
	SetDelegate(d StackDelegate[V])
}

type TabDelegate[V any] interface {
	DidSelect(screen V)
}

// TabContainer is a strip of screens with one selected.
type TabContainer[V comparable] interface {
	Screens() []V
	SetScreens(screens []V, animated bool)
	SelectedIndex() int
	SetSelectedIndex(index int)
	Delegate() TabDelegate[V]
	SetDelegate(d TabDelegate[V])
}

type DismissDelegate[V any] interface {
	// DidDismiss is called after the user dismissed screen.
	DidDismiss(screen V)
}

// ModalPresenter shows at most one screen above its content.
type ModalPresenter[V comparable] interface {
	// Attached reports whether the presenter is on a display surface and can
	// present.
	Attached() bool
	Presented() (V, bool)
	Present(screen V, style modal.Style, animated bool)
	Dismiss(animated bool)
	DismissDelegate() DismissDelegate[V]
	SetDismissDelegate(d DismissDelegate[V])
}

// Restyler is implemented by presenters that can change the style of the
// presented screen without dismissing it.
type Restyler interface {
	SetStyle(style modal.Style)
}
