package menu

import "github.com/atomicstack/cascade-menu/internal/logging/events"

// hoverState tracks hover intent for a sub menu: the pending open timer while
// closed, and the safe region the pointer may cross while open. rest closes
// the menu when the pointer stops moving inside that region.
type hoverState struct {
	pending   Timer
	rest      Timer
	inTrigger bool
	engaged   bool
	region    *safeRegion
}

func (h *hoverState) cancel() {
	if h.pending != nil {
		h.pending.Stop()
		h.pending = nil
	}
}

func (h *hoverState) stopRest() {
	if h.rest != nil {
		h.rest.Stop()
		h.rest = nil
	}
}

// hoverMove applies one pointer movement to a sub menu. A closed menu opens
// once the pointer has rested on its sub trigger for the hover delay. An open
// menu the pointer has engaged with closes when the pointer leaves the
// trigger, the popover and every descendant popover without staying inside
// the safe region, or when it rests inside the region for the rest delay.
func (m *Menu) hoverMove(p Point) {
	st := m.subTrigger
	if st == nil || !st.mounted {
		return
	}
	h := &m.hover
	inTrigger := st.rect.Contains(p)
	wasInTrigger := h.inTrigger
	h.inTrigger = inTrigger

	if !m.IsOpen() {
		switch {
		case inTrigger && h.pending == nil:
			m.armHover()
		case !inTrigger && h.pending != nil:
			h.cancel()
			events.Menu.HoverCancel(string(m.id))
		}
		return
	}
	if !m.popover.mounted {
		return
	}
	h.stopRest()
	if inTrigger || m.popover.contains(p) {
		h.engaged = true
		h.region = nil
		return
	}
	if !h.engaged {
		return
	}
	if wasInTrigger && !exitsAway(p, st.rect, m.popover.rect) {
		region := newSafeRegion(p, st.rect, m.popover.rect)
		h.region = &region
	}
	if h.region != nil && h.region.Contains(p) {
		m.armRest()
		return
	}
	h.engaged = false
	h.region = nil
	m.setOpen(false, ReasonHover)
}

func (m *Menu) armHover() {
	s := m.scope
	h := &m.hover
	var timer Timer
	timer = s.sched.AfterFunc(s.hoverDelay, func() {
		s.run(func() {
			if h.pending != timer {
				return
			}
			h.pending = nil
			if !m.mounted || !h.inTrigger {
				return
			}
			m.setOpen(true, ReasonHover)
			if m.popover.mounted {
				h.engaged = true
			}
		})
	})
	h.pending = timer
	events.Menu.HoverArm(string(m.id))
}

// armRest closes the menu unless the pointer moves again within the rest
// delay. Any move restarts or clears it.
func (m *Menu) armRest() {
	s := m.scope
	h := &m.hover
	var timer Timer
	timer = s.sched.AfterFunc(s.safeRegionRest, func() {
		s.run(func() {
			if h.rest != timer {
				return
			}
			h.rest = nil
			if !m.mounted || h.region == nil {
				return
			}
			h.engaged = false
			h.region = nil
			m.setOpen(false, ReasonHover)
		})
	})
	h.rest = timer
}

// HoverPending reports whether a hover open is waiting on its delay.
func (m *Menu) HoverPending() bool {
	return m.hover.pending != nil
}
