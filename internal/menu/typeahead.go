package menu

import (
	"strings"

	"github.com/atomicstack/cascade-menu/internal/logging/events"
)

type typeahead struct {
	buffer string
	prev   int
	match  int
	timer  Timer
}

func (t *typeahead) stop() {
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
}

func (t *typeahead) clear() {
	t.stop()
	t.buffer = ""
}

// Query returns the characters typed since the last idle reset.
func (m *Menu) Query() string {
	return m.typeahead.buffer
}

// typeaheadRune appends r to the search buffer and activates the next entry
// whose label starts with it. When no label begins with a doubled letter,
// repeating a single character steps through the entries starting with it.
func (m *Menu) typeaheadRune(r rune) bool {
	if !m.popover.mounted {
		return false
	}
	t := &m.typeahead
	ch := string(r)
	if t.buffer == "" {
		t.prev = m.active
		t.match = m.active
	}
	if m.list.cyclable() && strings.EqualFold(t.buffer, ch) {
		t.buffer = ""
		t.prev = t.match
	}
	t.buffer += ch
	m.armTypeaheadReset()

	index := m.list.Match(t.buffer, t.prev)
	events.Menu.Typeahead(string(m.id), t.buffer, index)
	if index >= 0 {
		t.match = index
		m.setActive(index)
	}
	return true
}

func (m *Menu) armTypeaheadReset() {
	t := &m.typeahead
	t.stop()
	s := m.scope
	var timer Timer
	timer = s.sched.AfterFunc(s.typeaheadReset, func() {
		s.run(func() {
			if t.timer != timer {
				return
			}
			t.timer = nil
			t.buffer = ""
		})
	})
	t.timer = timer
}
