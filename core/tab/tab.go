// Package tab is the state machine for tab navigation. The active tab is
// tracked by item, not by index, so reordering tabs keeps the same tab active.
package tab

import "slices"

// State holds the tabs and the active one. ActiveItem is always one of Items
// unless Items is empty.
type State[I comparable] struct {
	Items             []I
	ActiveItem        I
	AnimationsEnabled bool
}

func NewState[I comparable](items []I, active I) State[I] {
	return State[I]{Items: items, ActiveItem: active, AnimationsEnabled: true}
}

// ActiveIndex returns the index of ActiveItem in Items, or -1.
func (s State[I]) ActiveIndex() int {
	return slices.Index(s.Items, s.ActiveItem)
}

// Action is one of SetActiveItem, SetActiveIndex or SetItems.
type Action[I comparable] interface {
	apply(s *State[I])
}

type SetActiveItem[I comparable] struct {
	Item I
}

type SetActiveIndex[I comparable] struct {
	Index int
}

// SetItems replaces the tabs. If the active item is gone the first tab
// becomes active.
type SetItems[I comparable] struct {
	Items    []I
	Animated bool
}

func Activate[I comparable](item I) SetActiveItem[I]   { return SetActiveItem[I]{Item: item} }
func Select[I comparable](index int) SetActiveIndex[I] { return SetActiveIndex[I]{Index: index} }
func Set[I comparable](items ...I) SetItems[I] {
	return SetItems[I]{Items: items, Animated: true}
}

// Reduce applies action to s. Unknown items and out of range indices are
// ignored.
func Reduce[I comparable](s *State[I], action Action[I]) {
	if action == nil {
		return
	}
	action.apply(s)
}

func (a SetActiveItem[I]) apply(s *State[I]) {
	if !slices.Contains(s.Items, a.Item) {
		return
	}
	s.ActiveItem = a.Item
}

func (a SetActiveIndex[I]) apply(s *State[I]) {
	if a.Index < 0 || a.Index >= len(s.Items) {
		return
	}
	SetActiveItem[I]{Item: s.Items[a.Index]}.apply(s)
}

func (a SetItems[I]) apply(s *State[I]) {
	s.Items = slices.Clone(a.Items)
	s.AnimationsEnabled = a.Animated
	if !slices.Contains(s.Items, s.ActiveItem) {
		SetActiveIndex[I]{Index: 0}.apply(s)
	}
}
