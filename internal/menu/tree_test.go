package menu

import "testing"

func TestTreeRegisterAndParent(t *testing.T) {
	tree := NewTree()
	tree.Register("root", "")
	tree.Register("a", "root")
	tree.Register("b", "root")
	tree.Register("a1", "a")

	if _, ok := tree.Parent("root"); ok {
		t.Fatalf("expected root to have no parent")
	}
	if parent, ok := tree.Parent("a1"); !ok || parent != "a" {
		t.Fatalf("expected a1 parent a, got %q (%v)", parent, ok)
	}
	if got := len(tree.Children("root")); got != 2 {
		t.Fatalf("expected 2 children of root, got %d", got)
	}
	tree.Unregister("a1")
	if tree.Has("a1") {
		t.Fatalf("expected a1 unregistered")
	}
	if tree.Len() != 3 {
		t.Fatalf("expected 3 nodes, got %d", tree.Len())
	}
}

func TestTreeEmitSkipsSubscribersRemovedMidEmission(t *testing.T) {
	tree := NewTree()
	var calls []string
	var unsubscribeSecond func()
	tree.Subscribe(EventItemActivated, func(Event) {
		calls = append(calls, "first")
		unsubscribeSecond()
	})
	unsubscribeSecond = tree.Subscribe(EventItemActivated, func(Event) {
		calls = append(calls, "second")
	})
	tree.Subscribe(EventMenuOpened, func(Event) {
		calls = append(calls, "opened")
	})

	tree.Emit(Event{Kind: EventItemActivated})
	if len(calls) != 1 || calls[0] != "first" {
		t.Fatalf("expected only first handler, got %v", calls)
	}
	unsubscribeSecond()
}

func TestTreeEmitDeliversPayload(t *testing.T) {
	tree := NewTree()
	var got OpenedEvent
	tree.Subscribe(EventMenuOpened, func(ev Event) { got = ev.Opened })
	want := OpenedEvent{NodeID: "n", ParentID: "p"}
	tree.Emit(Event{Kind: EventMenuOpened, Opened: want})
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestTreeCloseDropsEverything(t *testing.T) {
	tree := NewTree()
	tree.Register("root", "")
	called := false
	tree.Subscribe(EventItemActivated, func(Event) { called = true })
	tree.Close()
	tree.Emit(Event{Kind: EventItemActivated})
	tree.Register("late", "")
	if called {
		t.Fatalf("expected no delivery after close")
	}
	if tree.Len() != 0 || !tree.Closed() {
		t.Fatalf("expected empty closed tree")
	}
}
