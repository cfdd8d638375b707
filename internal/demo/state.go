package demo

import (
	"github.com/google/uuid"

	"github.com/jask/navsync/core"
	"github.com/jask/navsync/core/modal"
	"github.com/jask/navsync/core/stack"
	"github.com/jask/navsync/core/tab"
)

type Tab string

const (
	TabHome     Tab = "home"
	TabInbox    Tab = "inbox"
	TabSettings Tab = "settings"
)

var allTabs = []Tab{TabHome, TabInbox, TabSettings}

// Route is an entry on the home stack.
type Route struct {
	Detail bool
	ID     string
}

var rootRoute = Route{}

func newDetailRoute() Route {
	return Route{Detail: true, ID: uuid.NewString()[:8]}
}

type Dialog string

const (
	DialogAbout  Dialog = "about"
	DialogNotice Dialog = "notice"
	DialogJump   Dialog = "jump"
)

type State struct {
	Tabs  tab.State[Tab]
	Home  stack.State[Route]
	Modal modal.State[Dialog]
}

func NewState() State {
	return State{
		Tabs:  tab.NewState(allTabs, TabHome),
		Home:  stack.NewState(rootRoute),
		Modal: modal.NewState[Dialog](),
	}
}

// Action carries at most one action per navigation kind. Several set fields
// are applied together in one store update.
type Action struct {
	Tab   tab.Action[Tab]
	Home  stack.Action[Route]
	Modal modal.Action[Dialog]
}

func Reduce(s *State, a Action) {
	if a.Tab != nil {
		tab.Reduce(&s.Tabs, a.Tab)
	}
	if a.Home != nil {
		stack.Reduce(&s.Home, a.Home)
	}
	if a.Modal != nil {
		modal.Reduce(&s.Modal, a.Modal)
	}
}

type Store = core.Store[State, Action]

func tabScope(store *Store) core.Scoped[tab.State[Tab], tab.Action[Tab]] {
	return core.Scope(store,
		func(s State) tab.State[Tab] { return s.Tabs },
		func(a tab.Action[Tab]) Action { return Action{Tab: a} },
	)
}

func homeScope(store *Store) core.Scoped[stack.State[Route], stack.Action[Route]] {
	return core.Scope(store,
		func(s State) stack.State[Route] { return s.Home },
		func(a stack.Action[Route]) Action { return Action{Home: a} },
	)
}

func modalScope(store *Store) core.Scoped[modal.State[Dialog], modal.Action[Dialog]] {
	return core.Scope(store,
		func(s State) modal.State[Dialog] { return s.Modal },
		func(a modal.Action[Dialog]) Action { return Action{Modal: a} },
	)
}
