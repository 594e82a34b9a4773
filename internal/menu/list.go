package menu

import "strings"

// Entry is anything registered in a popover's list: a leaf Item or a
// SubTrigger.
type Entry interface {
	Label() string
	Disabled() bool
	Rect() Rect
	SetRect(Rect)
	entry()
}

type slot struct {
	entry Entry
	label *string
}

// List is the ordered registration list of one popover. Unregistered slots
// stay behind as holes so indices handed out earlier remain valid.
type List struct {
	slots []slot
}

// NewList returns an empty list.
func NewList() *List {
	return &List{}
}

// Register appends entry with an optional label and returns its index. A nil
// label keeps the entry out of typeahead.
func (l *List) Register(e Entry, label *string) int {
	l.slots = append(l.slots, slot{entry: e, label: label})
	return len(l.slots) - 1
}

// Unregister empties the slot at index, leaving a hole.
func (l *List) Unregister(index int) {
	if index < 0 || index >= len(l.slots) {
		return
	}
	l.slots[index] = slot{}
}

// Len returns the number of slots, holes included.
func (l *List) Len() int {
	return len(l.slots)
}

// Entry returns the entry at index, or nil for holes and out-of-range indices.
func (l *List) Entry(index int) Entry {
	if index < 0 || index >= len(l.slots) {
		return nil
	}
	return l.slots[index].entry
}

// Label returns the typeahead label registered at index.
func (l *List) Label(index int) (string, bool) {
	if index < 0 || index >= len(l.slots) || l.slots[index].label == nil {
		return "", false
	}
	return *l.slots[index].label, true
}

// IndexOf returns the index holding e, or -1.
func (l *List) IndexOf(e Entry) int {
	if e == nil {
		return -1
	}
	for i, s := range l.slots {
		if s.entry == e {
			return i
		}
	}
	return -1
}

// Entries returns the registered entries in order, skipping holes.
func (l *List) Entries() []Entry {
	out := make([]Entry, 0, len(l.slots))
	for _, s := range l.slots {
		if s.entry != nil {
			out = append(out, s.entry)
		}
	}
	return out
}

// Reset drops every slot.
func (l *List) Reset() {
	l.slots = nil
}

func (l *List) navigable(index int) bool {
	e := l.Entry(index)
	return e != nil && !e.Disabled()
}

// First returns the first navigable index, or -1.
func (l *List) First() int {
	for i := range l.slots {
		if l.navigable(i) {
			return i
		}
	}
	return -1
}

// Last returns the last navigable index, or -1.
func (l *List) Last() int {
	for i := len(l.slots) - 1; i >= 0; i-- {
		if l.navigable(i) {
			return i
		}
	}
	return -1
}

// Step moves from current by one navigable entry in the direction of delta,
// wrapping at both ends. With no current entry it lands on the first entry
// going forward and the last going backward.
func (l *List) Step(current, delta int) int {
	n := len(l.slots)
	if n == 0 || delta == 0 {
		return current
	}
	if current < 0 || current >= n {
		if delta > 0 {
			return l.First()
		}
		return l.Last()
	}
	dir := 1
	if delta < 0 {
		dir = -1
	}
	for i := 1; i <= n; i++ {
		idx := ((current+dir*i)%n + n) % n
		if l.navigable(idx) {
			return idx
		}
	}
	return -1
}

// Match finds the first label starting with query, case-insensitively,
// searching from just after `after` and wrapping. A negative `after` starts
// the search at index 0.
func (l *List) Match(query string, after int) int {
	n := len(l.slots)
	if n == 0 || query == "" {
		return -1
	}
	start := after + 1
	if after < 0 || start >= n {
		start = 0
	}
	needle := strings.ToLower(query)
	for i := 0; i < n; i++ {
		idx := (start + i) % n
		label, ok := l.Label(idx)
		if !ok {
			continue
		}
		if strings.HasPrefix(strings.ToLower(label), needle) {
			return idx
		}
	}
	return -1
}

// cyclable reports whether repeating one character should move between
// matches. Labels whose first two characters are the same letter would make
// that ambiguous.
func (l *List) cyclable() bool {
	for i := range l.slots {
		label, ok := l.Label(i)
		if !ok {
			continue
		}
		runes := []rune(strings.ToLower(label))
		if len(runes) >= 2 && runes[0] == runes[1] {
			return false
		}
	}
	return true
}
