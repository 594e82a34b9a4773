package ui

import (
	"github.com/atomicstack/cascade-menu/internal/format/table"
	"github.com/atomicstack/cascade-menu/internal/menu"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

const (
	triggerColumn   = 2
	triggerRow      = 1
	maxLabelWidth   = 40
	minContentWidth = 12
	indicatorWidth  = 2
	itemIndicator   = "▌"
	subMarker       = "▸"
	emptyPopover    = "(no entries)"
)

var rowAlignments = []table.Alignment{table.AlignLeft, table.AlignRight}

type popoverBox struct {
	node *menu.Menu
	rect menu.Rect
	rows []popoverRow
}

type popoverRow struct {
	text     string
	active   bool
	disabled bool
	sub      bool
}

// layoutMenus places the trigger and then every open popover, in stacking
// order, against its reference. The rectangles are written back to the menu
// components so pointer hit testing matches what is drawn.
func (m *Model) layoutMenus() {
	m.boxes = m.boxes[:0]
	if m.root == nil || !m.root.Mounted() {
		return
	}
	if t := m.root.TriggerElement(); t != nil {
		t.SetRect(menu.Rect{X: triggerColumn, Y: triggerRow, W: lipgloss.Width(t.Label()) + 2, H: 1})
	}
	bounds := menu.Rect{W: m.width, H: max(m.height-len(m.statusLines()), 0)}
	for _, node := range m.root.Layers() {
		pop := node.Floating()
		if pop == nil || !pop.Mounted() {
			continue
		}
		rows, entries, inner := measureRows(node)
		size := menu.Size{W: inner + 2, H: max(len(rows), 1) + 2}
		rect := m.placer.Position(node.Reference(), size, node.Placement(), node.Offset(), bounds)
		pop.SetRect(rect)
		for i, e := range entries {
			e.SetRect(menu.Rect{X: rect.X + 1, Y: rect.Y + 1 + i, W: rect.W - 2, H: 1})
		}
		m.boxes = append(m.boxes, popoverBox{node: node, rect: rect, rows: rows})
	}
}

// measureRows formats the entries of an open popover into label and sub menu
// marker columns. It returns the rows, the entries they belong to and the
// inner width of the popover.
func measureRows(node *menu.Menu) ([]popoverRow, []menu.Entry, int) {
	list := node.List()
	active := node.ActiveIndex()
	rows := make([]popoverRow, 0, list.Len())
	entries := make([]menu.Entry, 0, list.Len())
	cells := make([][]string, 0, list.Len())
	hasSub := false
	for i := 0; i < list.Len(); i++ {
		e := list.Entry(i)
		if e == nil {
			continue
		}
		_, sub := e.(*menu.SubTrigger)
		marker := ""
		if sub {
			marker = subMarker
			hasSub = true
		}
		cells = append(cells, []string{truncate.StringWithTail(e.Label(), maxLabelWidth, "…"), marker})
		rows = append(rows, popoverRow{active: i == active, disabled: e.Disabled(), sub: sub})
		entries = append(entries, e)
	}
	if len(rows) == 0 {
		return nil, nil, lipgloss.Width(emptyPopover) + 2
	}
	if !hasSub {
		for i := range cells {
			cells[i] = cells[i][:1]
		}
	}
	width := 0
	for i, line := range table.Fit(cells, rowAlignments, minContentWidth) {
		rows[i].text = line
		width = max(width, lipgloss.Width(line))
	}
	return rows, entries, width + indicatorWidth + 1
}
