package core

import "slices"

// Reducer applies one action to the state in place. Reducers must not write
// into slices reachable from an earlier snapshot.
type Reducer[S, A any] func(state *S, action A)

// Store owns a state value and its reducer. It is not safe for concurrent
// use: all calls happen on the UI loop.
type Store[S, A any] struct {
	state    S
	reduce   Reducer[S, A]
	subs     []*subscription[S]
	queue    []A
	emitting bool
}

type subscription[S any] struct {
	fn func(S)
}

func NewStore[S, A any](initial S, reduce Reducer[S, A]) *Store[S, A] {
	return &Store[S, A]{state: initial, reduce: reduce}
}

// State returns the current snapshot.
func (s *Store[S, A]) State() S {
	return s.state
}

// Send reduces action and publishes the new snapshot. Actions sent from a
// subscriber while a snapshot is being published are reduced after the
// current round finishes.
func (s *Store[S, A]) Send(action A) {
	s.queue = append(s.queue, action)
	if s.emitting {
		return
	}
	s.emitting = true
	defer func() { s.emitting = false }()
	for len(s.queue) > 0 {
		next := s.queue[0]
		s.queue = s.queue[1:]
		s.reduce(&s.state, next)
		s.publish()
	}
}

// Subscribe calls fn with the current state immediately and with every
// following snapshot. The returned func cancels the subscription.
func (s *Store[S, A]) Subscribe(fn func(S)) func() {
	sub := &subscription[S]{fn: fn}
	s.subs = append(s.subs, sub)
	fn(s.state)
	return func() {
		s.subs = slices.DeleteFunc(s.subs, func(other *subscription[S]) bool { return other == sub })
	}
}

func (s *Store[S, A]) publish() {
	for _, sub := range slices.Clone(s.subs) {
		sub.fn(s.state)
	}
}

// Scoped is a child view of a parent store: it reads a projection of the
// parent state and wraps child actions into parent actions.
type Scoped[S, A any] struct {
	subscribe func(func(S)) func()
	send      func(A)
	state     func() S
}

func (s Scoped[S, A]) State() S                    { return s.state() }
func (s Scoped[S, A]) Send(action A)               { s.send(action) }
func (s Scoped[S, A]) Subscribe(fn func(S)) func() { return s.subscribe(fn) }

// Scope derives a child store view from parent.
func Scope[PS, PA, CS, CA any](parent *Store[PS, PA], toChild func(PS) CS, fromChild func(CA) PA) Scoped[CS, CA] {
	return Scoped[CS, CA]{
		subscribe: func(fn func(CS)) func() {
			return parent.Subscribe(func(ps PS) { fn(toChild(ps)) })
		},
		send:  func(a CA) { parent.Send(fromChild(a)) },
		state: func() CS { return toChild(parent.State()) },
	}
}

// ScopeOptional derives a child store view for a child state that may be
// absent. It reports false when toChild finds no child in the current parent
// state. Otherwise the view keeps returning the last present child after the
// parent drops it, so screens still bound to it see a stable value.
func ScopeOptional[PS, PA, CS, CA any](parent *Store[PS, PA], toChild func(PS) (CS, bool), fromChild func(CA) PA) (Scoped[CS, CA], bool) {
	last, ok := toChild(parent.State())
	if !ok {
		return Scoped[CS, CA]{}, false
	}
	project := func(ps PS) CS {
		if cs, ok := toChild(ps); ok {
			last = cs
		}
		return last
	}
	return Scope(parent, project, fromChild), true
}
