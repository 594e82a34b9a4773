package menu

import "github.com/atomicstack/cascade-menu/internal/logging/events"

// PointerMove feeds a pointer position to every sub menu's hover intent and
// makes the entry under the pointer active.
func (m *Menu) PointerMove(p Point) {
	if m == nil || !m.mounted {
		return
	}
	s := m.scope
	done := s.enter()
	defer done()
	for _, n := range s.snapshot() {
		if n.mounted && n.IsNested() {
			n.hoverMove(p)
		}
	}
	if owner, e := s.hitEntry(p); e != nil {
		index := owner.list.IndexOf(e)
		if owner.list.navigable(index) {
			owner.setActive(index)
			s.focus = Focus{Node: owner, InPopover: true}
		}
	}
}

// PointerDown handles a press. Every open menu whose trigger, popover and
// descendant popovers all miss the point is dismissed first. Then the root
// trigger toggles, a sub trigger opens its menu, and an item is remembered
// for activation on release. It reports whether the press hit the menu.
func (m *Menu) PointerDown(p Point) bool {
	if m == nil || !m.mounted {
		return false
	}
	s := m.scope
	done := s.enter()
	defer done()
	s.pressed = nil
	for _, n := range append([]*Menu(nil), s.layers...) {
		if n.mounted && n.popover.mounted && !n.subtreeContains(p) {
			events.Menu.Dismiss(string(n.id), p.X, p.Y)
			n.setOpen(false, ReasonDismiss)
		}
	}

	if owner, e := s.hitEntry(p); e != nil {
		switch hit := e.(type) {
		case *Item:
			if !hit.disabled {
				s.pressed = hit
			}
		case *SubTrigger:
			// Terminals without motion reporting never hover, so a press
			// opens the sub menu instead.
			sub := hit.owner
			sub.setOpen(true, ReasonPointer)
			if sub.popover.mounted {
				sub.hover.engaged = true
			}
			s.focus = Focus{Node: owner, InPopover: true}
		}
		return true
	}
	for i := len(s.layers) - 1; i >= 0; i-- {
		if s.layers[i].popover.rect.Contains(p) {
			return true
		}
	}
	if t := s.root.trigger; t != nil && t.rect.Contains(p) {
		t.Press()
		return true
	}
	return false
}

// PointerUp completes a press. The pressed item activates when the release
// lands on it too.
func (m *Menu) PointerUp(p Point) bool {
	if m == nil || !m.mounted {
		return false
	}
	s := m.scope
	pressed := s.pressed
	s.pressed = nil
	if pressed == nil || !pressed.mounted {
		return false
	}
	if _, e := s.hitEntry(p); e != pressed {
		return false
	}
	return pressed.Activate()
}

// Pressed returns the item a press is currently held on.
func (m *Menu) Pressed() *Item {
	return m.scope.pressed
}

// hitEntry finds the entry under p in the topmost open popover containing it.
func (s *scope) hitEntry(p Point) (*Menu, Entry) {
	for i := len(s.layers) - 1; i >= 0; i-- {
		n := s.layers[i]
		if !n.popover.mounted {
			continue
		}
		for _, e := range n.list.Entries() {
			if e.Rect().Contains(p) {
				return n, e
			}
		}
		if n.popover.rect.Contains(p) {
			return n, nil
		}
	}
	return nil, nil
}

// subtreeContains reports whether p is on this menu's reference, its popover
// or any open descendant popover.
func (m *Menu) subtreeContains(p Point) bool {
	if m.Reference().Contains(p) {
		return true
	}
	return m.popover.contains(p)
}
