package core

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

type counterAction struct {
	delta int
}

func reduceCounter(s *int, a counterAction) { *s += a.delta }

func TestStoreReplaysOnSubscribe(t *testing.T) {
	store := NewStore(3, reduceCounter)
	var seen []int
	cancel := store.Subscribe(func(s int) { seen = append(seen, s) })
	store.Send(counterAction{delta: 2})
	cancel()
	store.Send(counterAction{delta: 1})

	if diff := cmp.Diff([]int{3, 5}, seen); diff != "" {
		t.Fatalf("snapshots mismatch (-want +got):\n%s", diff)
	}
	if store.State() != 6 {
		t.Fatalf("state = %d, want 6", store.State())
	}
}

func TestStoreQueuesActionsSentDuringPublish(t *testing.T) {
	store := NewStore(0, reduceCounter)
	var seen []int
	store.Subscribe(func(s int) {
		seen = append(seen, s)
		if s == 1 {
			store.Send(counterAction{delta: 10})
		}
	})
	var second []int
	store.Subscribe(func(s int) { second = append(second, s) })

	store.Send(counterAction{delta: 1})

	if diff := cmp.Diff([]int{0, 1, 11}, seen); diff != "" {
		t.Fatalf("first subscriber (-want +got):\n%s", diff)
	}
	// The second subscriber still sees 1 before 11.
	if diff := cmp.Diff([]int{0, 1, 11}, second); diff != "" {
		t.Fatalf("second subscriber (-want +got):\n%s", diff)
	}
}

type parentState struct {
	Count int
	Name  string
}

type parentAction struct {
	counter *counterAction
}

func TestScopeProjectsStateAndWrapsActions(t *testing.T) {
	parent := NewStore(parentState{Name: "p"}, func(s *parentState, a parentAction) {
		if a.counter != nil {
			reduceCounter(&s.Count, *a.counter)
		}
	})
	child := Scope(parent,
		func(s parentState) int { return s.Count },
		func(a counterAction) parentAction { return parentAction{counter: &a} },
	)
	var seen []int
	child.Subscribe(func(s int) { seen = append(seen, s) })
	child.Send(counterAction{delta: 4})

	if child.State() != 4 || parent.State().Count != 4 {
		t.Fatalf("child action did not reach parent: %+v", parent.State())
	}
	if diff := cmp.Diff([]int{0, 4}, seen); diff != "" {
		t.Fatalf("child snapshots (-want +got):\n%s", diff)
	}
}

type draft struct {
	title *string
	saves int
}

type draftAction struct {
	title *string
	save  bool
}

func reduceDraft(s *draft, a draftAction) {
	if a.save {
		s.saves++
		return
	}
	s.title = a.title
}

func titleOf(d draft) (string, bool) {
	if d.title == nil {
		return "", false
	}
	return *d.title, true
}

func TestScopeOptionalAbsentChild(t *testing.T) {
	store := NewStore(draft{}, reduceDraft)
	if _, ok := ScopeOptional(store, titleOf, func(struct{}) draftAction { return draftAction{save: true} }); ok {
		t.Fatalf("expected no scope while the child is absent")
	}
}

func TestScopeOptionalKeepsLastPresentValue(t *testing.T) {
	first, second := "first", "second"
	store := NewStore(draft{title: &first}, reduceDraft)
	child, ok := ScopeOptional(store, titleOf, func(struct{}) draftAction { return draftAction{save: true} })
	if !ok {
		t.Fatalf("expected a scope for a present child")
	}
	var seen []string
	child.Subscribe(func(s string) { seen = append(seen, s) })

	store.Send(draftAction{title: &second})
	store.Send(draftAction{title: nil})
	child.Send(struct{}{})

	if diff := cmp.Diff([]string{"first", "second", "second", "second"}, seen); diff != "" {
		t.Fatalf("snapshots mismatch (-want +got):\n%s", diff)
	}
	if child.State() != "second" {
		t.Fatalf("state = %q, want the last present value", child.State())
	}
	if store.State().saves != 1 {
		t.Fatalf("child action did not reach the parent")
	}
}
