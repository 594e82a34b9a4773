package ui

import (
	"fmt"
	"time"

	"github.com/atomicstack/cascade-menu/internal/catalog"
	"github.com/atomicstack/cascade-menu/internal/logging/events"
	"github.com/atomicstack/cascade-menu/internal/menu"
	tea "github.com/charmbracelet/bubbletea"
)

type tickMsg struct {
	at time.Time
}

// mountRoot creates a root menu for the current definition. Metrics observe
// the tree before anything can open.
func (m *Model) mountRoot() {
	root := menu.NewRoot(menu.Options{
		Scheduler:      m.clock,
		HoverDelay:     m.hoverDelay,
		TypeaheadReset: m.typeaheadReset,
		NewID:          m.newID,
	})
	if m.recorder != nil {
		m.stopObserve = m.recorder.Observe(root)
	}
	catalog.Build(root, m.store.Definition(), m.queueSelection)
	m.root = root
}

func (m *Model) unmountRoot() {
	if m.stopObserve != nil {
		m.stopObserve()
		m.stopObserve = nil
	}
	if m.root != nil {
		m.root.Unmount()
	}
	m.root = nil
	m.boxes = nil
	m.selections = nil
}

func (m *Model) remount() {
	m.unmountRoot()
	m.mountRoot()
}

// openPath opens the chain of sub menus named by a slash separated path the
// way a keyboard user would, leaving the last segment active.
func (m *Model) openPath(path string) error {
	indices, err := m.store.Definition().ResolvePath(path)
	if err != nil {
		return fmt.Errorf("open %q: %w", path, err)
	}
	if len(indices) == 0 {
		return nil
	}
	m.root.KeyDown(menu.Key{Code: menu.KeyDown})
	node := m.root
	for _, index := range indices {
		node.SetActive(index)
		sub, ok := node.List().Entry(index).(*menu.SubTrigger)
		if !ok {
			break
		}
		m.root.KeyDown(menu.Key{Code: menu.KeyRight})
		node = sub.Menu()
	}
	events.UI.OpenPath(path, indices)
	return nil
}

// scheduleTick arms a tick for the clock's next deadline unless one at or
// before it is already pending.
func (m *Model) scheduleTick() tea.Cmd {
	if m.manualClock {
		return nil
	}
	next, ok := m.clock.Next()
	if !ok {
		return nil
	}
	if !m.tickAt.IsZero() && !next.Before(m.tickAt) {
		return nil
	}
	m.tickAt = next
	return tea.Tick(next.Sub(m.clock.Now()), func(t time.Time) tea.Msg {
		return tickMsg{at: t}
	})
}

func (m *Model) handleTickMsg(msg tea.Msg) tea.Cmd {
	tick, ok := msg.(tickMsg)
	if !ok {
		return nil
	}
	if !tick.at.Before(m.tickAt) {
		m.tickAt = time.Time{}
	}
	fired := m.clock.AdvanceTo(tick.at)
	events.UI.Tick(fired)
	return nil
}
