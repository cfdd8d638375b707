// Package stack is the state machine for stack navigation: items are pushed
// and popped, or the whole stack is replaced.
package stack

import "slices"

// State is an ordered stack of items, root first.
type State[I comparable] struct {
	Items             []I
	AnimationsEnabled bool
}

func NewState[I comparable](items ...I) State[I] {
	return State[I]{Items: items, AnimationsEnabled: true}
}

// TopItem returns the last item, if any.
func (s State[I]) TopItem() (I, bool) {
	if len(s.Items) == 0 {
		var zero I
		return zero, false
	}
	return s.Items[len(s.Items)-1], true
}

// Action is one of PushItem, PushItems, PopItem, PopItems, PopToRoot or
// SetItems.
type Action[I comparable] interface {
	apply(s *State[I])
}

type PushItem[I comparable] struct {
	Item     I
	Animated bool
}

type PushItems[I comparable] struct {
	Items    []I
	Animated bool
}

type PopItem[I comparable] struct {
	Animated bool
}

// PopItems removes Count items from the top. Out of range counts are ignored.
type PopItems[I comparable] struct {
	Count    int
	Animated bool
}

type PopToRoot[I comparable] struct {
	Animated bool
}

type SetItems[I comparable] struct {
	Items    []I
	Animated bool
}

func Push[I comparable](item I) PushItem[I] { return PushItem[I]{Item: item, Animated: true} }
func PushMany[I comparable](items ...I) PushItems[I] {
	return PushItems[I]{Items: items, Animated: true}
}
func Pop[I comparable]() PopItem[I]            { return PopItem[I]{Animated: true} }
func PopN[I comparable](count int) PopItems[I] { return PopItems[I]{Count: count, Animated: true} }
func PopRoot[I comparable]() PopToRoot[I]      { return PopToRoot[I]{Animated: true} }
func Set[I comparable](items ...I) SetItems[I] { return SetItems[I]{Items: items, Animated: true} }

// Reduce applies action to s. It never fails.
func Reduce[I comparable](s *State[I], action Action[I]) {
	if action == nil {
		return
	}
	action.apply(s)
}

func (a PushItem[I]) apply(s *State[I]) {
	setItems(s, slices.Concat(s.Items, []I{a.Item}), a.Animated)
}

func (a PushItems[I]) apply(s *State[I]) {
	setItems(s, slices.Concat(s.Items, a.Items), a.Animated)
}

func (a PopItem[I]) apply(s *State[I]) {
	popItems(s, 1, a.Animated)
}

func (a PopItems[I]) apply(s *State[I]) {
	popItems(s, a.Count, a.Animated)
}

func (a PopToRoot[I]) apply(s *State[I]) {
	popItems(s, len(s.Items)-1, a.Animated)
}

func (a SetItems[I]) apply(s *State[I]) {
	setItems(s, slices.Clone(a.Items), a.Animated)
}

func setItems[I comparable](s *State[I], items []I, animated bool) {
	s.Items = items
	s.AnimationsEnabled = animated
}

func popItems[I comparable](s *State[I], count int, animated bool) {
	if count < 0 || count > len(s.Items) {
		return
	}
	s.Items = slices.Clone(s.Items[:len(s.Items)-count])
	s.AnimationsEnabled = animated
}
