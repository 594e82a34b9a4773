package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

var (
	triggerStyle     = unpadded(styles.Trigger)
	triggerOpenStyle = unpadded(styles.TriggerOpen)
	borderStyle      = ptrStyle(lipgloss.NewStyle().Foreground(styles.Popover.GetBorderTopForeground()))
)

func unpadded(style *lipgloss.Style) *lipgloss.Style {
	return ptrStyle(style.UnsetPadding())
}

func ptrStyle(style lipgloss.Style) *lipgloss.Style {
	return &style
}

type statusLine struct {
	text  string
	style *lipgloss.Style
}

// cell is one terminal cell of the canvas. The second cell of a wide rune
// has an empty ch.
type cell struct {
	ch    string
	style *lipgloss.Style
}

// canvas composes the trigger and the stacked popovers cell by cell, so a
// popover drawn later covers the ones below it.
type canvas struct {
	width  int
	height int
	cells  [][]cell
}

func newCanvas(width, height int) *canvas {
	c := &canvas{width: width, height: height, cells: make([][]cell, height)}
	for y := range c.cells {
		row := make([]cell, width)
		for x := range row {
			row[x] = cell{ch: " "}
		}
		c.cells[y] = row
	}
	return c
}

// put writes text from column x of row y, clipping at the canvas edges.
func (c *canvas) put(x, y int, text string, style *lipgloss.Style) {
	if y < 0 || y >= c.height {
		return
	}
	row := c.cells[y]
	for _, r := range text {
		w := lipgloss.Width(string(r))
		if w == 0 {
			continue
		}
		if x >= c.width {
			return
		}
		if x >= 0 {
			if x+w > c.width {
				row[x] = cell{ch: " ", style: style}
				return
			}
			row[x] = cell{ch: string(r), style: style}
			for i := 1; i < w; i++ {
				row[x+i] = cell{style: style}
			}
		}
		x += w
	}
}

// render joins the rows, styling each run of cells that share a style.
// Trailing blank cells are dropped.
func (c *canvas) render() string {
	lines := make([]string, c.height)
	for y, row := range c.cells {
		end := len(row)
		for end > 0 && row[end-1].style == nil && row[end-1].ch == " " {
			end--
		}
		var b, run strings.Builder
		var style *lipgloss.Style
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if style != nil {
				b.WriteString(style.Render(run.String()))
			} else {
				b.WriteString(run.String())
			}
			run.Reset()
		}
		for _, cl := range row[:end] {
			if cl.style != style {
				flush()
				style = cl.style
			}
			run.WriteString(cl.ch)
		}
		flush()
		lines[y] = b.String()
	}
	return strings.Join(lines, "\n")
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.root == nil {
		return ""
	}
	lines := m.statusLines()
	bottom := triggerRow + 1
	right := 0
	if t := m.root.TriggerElement(); t != nil {
		right = t.Rect().Right()
	}
	for _, box := range m.boxes {
		bottom = max(bottom, box.rect.Bottom())
		right = max(right, box.rect.Right())
	}
	height := m.height
	if height <= 0 {
		height = bottom + 1 + len(lines)
	}
	width := m.width
	if width <= 0 {
		width = right
		for _, line := range lines {
			width = max(width, triggerColumn+lipgloss.Width(line.text))
		}
	}

	cv := newCanvas(width, height)
	m.drawTrigger(cv)
	for _, box := range m.boxes {
		drawBox(cv, box)
	}
	top := height - len(lines)
	for i, line := range lines {
		cv.put(triggerColumn, top+i, fit(line.text, width-triggerColumn), line.style)
	}
	return cv.render()
}

// statusLines returns the rows under the menu: the status slot, which shows
// an error, the typeahead query or the last selection, and the optional
// footer.
func (m *Model) statusLines() []statusLine {
	status := statusLine{text: m.status, style: styles.Status}
	switch {
	case m.errMsg != "":
		status = statusLine{text: m.errMsg, style: styles.Error}
	case m.query() != "":
		status = statusLine{text: "Search: " + m.query(), style: styles.Query}
	}
	lines := []statusLine{status}
	if m.showFooter {
		lines = append(lines, statusLine{text: m.keys.helpLine(), style: styles.Footer})
	}
	return lines
}

func (m *Model) query() string {
	if m.root == nil {
		return ""
	}
	f := m.root.Focus()
	if !f.InPopover || f.Node == nil {
		return ""
	}
	return f.Node.Query()
}

func (m *Model) drawTrigger(cv *canvas) {
	t := m.root.TriggerElement()
	if t == nil {
		return
	}
	style := triggerStyle
	if m.root.IsOpen() {
		style = triggerOpenStyle
	}
	r := t.Rect()
	cv.put(r.X, r.Y, " "+t.Label()+" ", style)
}

func drawBox(cv *canvas, box popoverBox) {
	r := box.rect
	if r.W < 2 || r.H < 2 {
		return
	}
	b := styles.Popover.GetBorderStyle()
	inner := r.W - 2
	cv.put(r.X, r.Y, b.TopLeft+strings.Repeat(b.Top, inner)+b.TopRight, borderStyle)
	cv.put(r.X, r.Bottom()-1, b.BottomLeft+strings.Repeat(b.Bottom, inner)+b.BottomRight, borderStyle)
	for y := r.Y + 1; y < r.Bottom()-1; y++ {
		cv.put(r.X, y, b.Left, borderStyle)
		cv.put(r.Right()-1, y, b.Right, borderStyle)
	}
	if len(box.rows) == 0 {
		cv.put(r.X+1, r.Y+1, fit(" "+emptyPopover, inner), styles.Status)
		return
	}
	for i, row := range box.rows {
		y := r.Y + 1 + i
		if y >= r.Bottom()-1 {
			break
		}
		indicatorStyle, lineStyle := styles.ItemIndicator, styles.Item
		switch {
		case row.active:
			indicatorStyle, lineStyle = styles.SelectedItemIndicator, styles.SelectedItem
		case row.disabled:
			lineStyle = styles.DisabledItem
		}
		cv.put(r.X+1, y, itemIndicator, indicatorStyle)
		cv.put(r.X+2, y, fit(" "+row.text, inner-1), lineStyle)
		if row.sub && !row.active {
			cv.put(r.X+2+lipgloss.Width(row.text), y, subMarker, styles.SubMarker)
		}
	}
}

// fit pads or truncates text to exactly width cells.
func fit(text string, width int) string {
	if width <= 0 {
		return ""
	}
	w := lipgloss.Width(text)
	if w > width {
		return truncate.StringWithTail(text, uint(width), "…")
	}
	return text + strings.Repeat(" ", width-w)
}
