package demo

import (
	"testing"

	"github.com/jask/navsync/core"
	"github.com/jask/navsync/core/modal"
	"github.com/jask/navsync/core/stack"
	"github.com/jask/navsync/core/tab"
)

func TestReduceAppliesEveryKind(t *testing.T) {
	s := NewState()
	Reduce(&s, Action{
		Tab:   tab.Activate(TabInbox),
		Home:  stack.Push(Route{Detail: true, ID: "x"}),
		Modal: modal.PresentAlert(DialogNotice),
	})
	if s.Tabs.ActiveItem != TabInbox {
		t.Fatalf("active tab = %q", s.Tabs.ActiveItem)
	}
	if len(s.Home.Items) != 2 {
		t.Fatalf("home items = %v", s.Home.Items)
	}
	if _, ok := s.Modal.Presented(); !ok {
		t.Fatalf("expected a presented modal")
	}
}

func TestScopesProjectAndWrap(t *testing.T) {
	store := core.NewStore(NewState(), Reduce)
	home := homeScope(store)

	var seen [][]Route
	cancel := home.Subscribe(func(s stack.State[Route]) { seen = append(seen, s.Items) })
	defer cancel()

	home.Send(stack.Push(Route{Detail: true, ID: "a"}))
	if got := len(store.State().Home.Items); got != 2 {
		t.Fatalf("parent home items = %d", got)
	}
	if len(seen) != 2 {
		t.Fatalf("expected replay and one update, got %d", len(seen))
	}

	tabScope(store).Send(tab.Select[Tab](2))
	if store.State().Tabs.ActiveItem != TabSettings {
		t.Fatalf("active tab = %q", store.State().Tabs.ActiveItem)
	}
	modalScope(store).Send(modal.PresentSheet(DialogJump))
	if item, ok := store.State().Modal.Presented(); !ok || item.Item != DialogJump {
		t.Fatalf("modal = %+v", store.State().Modal.StyledItem)
	}
}

func TestClosestTab(t *testing.T) {
	tests := []struct {
		query string
		want  Tab
		ok    bool
	}{
		{"", "", false},
		{"h", TabHome, true},
		{"INBOX", TabInbox, true},
		{"inbx", TabInbox, true},
		{"setings", TabSettings, true},
		{"hme", TabHome, true},
		{"zzzzzz", "", false},
	}
	for _, tt := range tests {
		got, ok := closestTab(tt.query)
		if got != tt.want || ok != tt.ok {
			t.Fatalf("closestTab(%q) = %q, %t; want %q, %t", tt.query, got, ok, tt.want, tt.ok)
		}
	}
}
