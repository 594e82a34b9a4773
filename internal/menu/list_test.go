package menu

import "testing"

type fakeEntry struct {
	label    string
	disabled bool
	rect     Rect
}

func (f *fakeEntry) Label() string  { return f.label }
func (f *fakeEntry) Disabled() bool { return f.disabled }
func (f *fakeEntry) Rect() Rect     { return f.rect }
func (f *fakeEntry) SetRect(r Rect) { f.rect = r }
func (*fakeEntry) entry()           {}

func buildList(labels ...string) *List {
	l := NewList()
	for _, label := range labels {
		e := &fakeEntry{label: label}
		text := label
		l.Register(e, &text)
	}
	return l
}

func TestListStepWrapsAndSkipsHoles(t *testing.T) {
	l := buildList("a", "b", "c", "d")
	l.Unregister(2)
	if got := l.Step(1, 1); got != 3 {
		t.Fatalf("expected hole skipped to 3, got %d", got)
	}
	if got := l.Step(3, 1); got != 0 {
		t.Fatalf("expected wrap to 0, got %d", got)
	}
	if got := l.Step(0, -1); got != 3 {
		t.Fatalf("expected wrap to 3, got %d", got)
	}
	if got := l.Step(-1, -1); got != 3 {
		t.Fatalf("expected last from none, got %d", got)
	}
	if got := l.Step(-1, 1); got != 0 {
		t.Fatalf("expected first from none, got %d", got)
	}
}

func TestListStepAllDisabled(t *testing.T) {
	l := NewList()
	l.Register(&fakeEntry{label: "x", disabled: true}, nil)
	if got := l.Step(-1, 1); got != -1 {
		t.Fatalf("expected no navigable entry, got %d", got)
	}
	if l.First() != -1 || l.Last() != -1 {
		t.Fatalf("expected first and last to be -1")
	}
}

func TestListMatch(t *testing.T) {
	l := buildList("Sub item 1", "Sub item 2", "Sub item 3", "Teste")
	cases := []struct {
		query string
		after int
		want  int
	}{
		{"s", -1, 0},
		{"s", 0, 1},
		{"s", 2, 0},
		{"te", 1, 3},
		{"SUB ITEM 3", -1, 2},
		{"x", -1, -1},
	}
	for _, tc := range cases {
		if got := l.Match(tc.query, tc.after); got != tc.want {
			t.Fatalf("Match(%q, %d): expected %d, got %d", tc.query, tc.after, tc.want, got)
		}
	}
}

func TestListMatchIgnoresUnlabelled(t *testing.T) {
	l := NewList()
	l.Register(&fakeEntry{label: "secret", disabled: true}, nil)
	text := "second"
	l.Register(&fakeEntry{label: text}, &text)
	if got := l.Match("se", -1); got != 1 {
		t.Fatalf("expected unlabelled entry skipped, got %d", got)
	}
}

func TestListCyclable(t *testing.T) {
	if !buildList("Copy", "Cut").cyclable() {
		t.Fatalf("expected distinct leading letters to be cyclable")
	}
	if buildList("Copy", "Llama").cyclable() {
		t.Fatalf("expected doubled leading letter to disable cycling")
	}
}
