package menu

// KeyCode names the keys a menu reacts to.
type KeyCode int

const (
	KeyNone KeyCode = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyEnter
	KeySpace
	KeyEscape
	KeyTab
	KeyShiftTab
	KeyRune
)

// Key is a key press. Rune is set for KeyRune.
type Key struct {
	Code KeyCode
	Rune rune
}

// KeyDown delivers a key press to whichever node holds focus. It reports
// whether the key was consumed.
func (m *Menu) KeyDown(k Key) bool {
	if m == nil || !m.mounted {
		return false
	}
	s := m.scope
	done := s.enter()
	defer done()
	s.repairFocus()
	f := s.focus
	if f.InPopover {
		return f.Node.popoverKey(k)
	}
	return f.Node.triggerKey(k)
}

func (m *Menu) triggerKey(k Key) bool {
	if m.trigger == nil {
		return false
	}
	switch k.Code {
	case KeyEnter, KeySpace:
		if m.IsOpen() {
			m.closeAndReturnFocus(ReasonKeyboard)
			return true
		}
		m.openFromKeyboard(false)
	case KeyDown:
		m.openFromKeyboard(false)
	case KeyUp:
		m.openFromKeyboard(true)
	case KeyEscape:
		if !m.IsOpen() {
			return false
		}
		m.closeAndReturnFocus(ReasonEscape)
	default:
		return false
	}
	return true
}

func (m *Menu) popoverKey(k Key) bool {
	if k.Code == KeyRune {
		return m.typeaheadRune(k.Rune)
	}
	if k.Code == KeySpace && m.typeahead.buffer != "" {
		return m.typeaheadRune(' ')
	}
	switch k.Code {
	case KeyDown, KeyTab:
		m.setActive(m.list.Step(m.active, 1))
	case KeyUp, KeyShiftTab:
		m.setActive(m.list.Step(m.active, -1))
	case KeyHome:
		m.setActive(m.list.First())
	case KeyEnd:
		m.setActive(m.list.Last())
	case KeyRight:
		st, ok := m.list.Entry(m.active).(*SubTrigger)
		if !ok {
			return false
		}
		st.owner.openFromKeyboard(false)
	case KeyLeft:
		if !m.IsNested() {
			return false
		}
		m.closeAndReturnFocus(ReasonKeyboard)
	case KeyEnter, KeySpace:
		return m.activateActive()
	case KeyEscape:
		m.closeAndReturnFocus(ReasonEscape)
	default:
		return false
	}
	return true
}

func (m *Menu) activateActive() bool {
	switch e := m.list.Entry(m.active).(type) {
	case *Item:
		return e.Activate()
	case *SubTrigger:
		e.owner.openFromKeyboard(false)
		return true
	default:
		return false
	}
}

// openFromKeyboard opens the menu, or enters it when a hover already opened
// it, with the first (or last) navigable entry active.
func (m *Menu) openFromKeyboard(last bool) {
	m.setOpen(true, ReasonKeyboard)
	if !m.popover.mounted {
		return
	}
	if last {
		m.setActive(m.list.Last())
	} else {
		m.setActive(m.list.First())
	}
	m.scope.focus = Focus{Node: m, InPopover: true}
}

// closeAndReturnFocus closes the menu and hands focus back to the entry that
// opened it: the sub trigger in the parent popover, or the root trigger.
func (m *Menu) closeAndReturnFocus(reason Reason) {
	s := m.scope
	m.setOpen(false, reason)
	if m.popover.mounted {
		return
	}
	if p := m.parent; p != nil && p.popover.mounted {
		if m.subTrigger != nil {
			p.setActive(m.subTrigger.index)
		}
		s.focus = Focus{Node: p, InPopover: true}
		return
	}
	s.focus = Focus{Node: s.root}
}
