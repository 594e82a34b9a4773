// Package table lays popover rows out in aligned columns.
package table

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
)

const separator = "  "

// Format returns the rows padded according to the widest entry in each
// column. Rows shorter than the widest row get empty trailing cells.
func Format(rows [][]string, alignments []Alignment) []string {
	if len(rows) == 0 {
		return nil
	}
	widths := columnWidths(rows)
	out := make([]string, len(rows))
	for i, row := range rows {
		out[i] = render(row, widths, alignments)
	}
	return out
}

// Fit is Format with the first column stretched so every row is exactly
// width cells wide. Rows wider than width are returned unpadded.
func Fit(rows [][]string, alignments []Alignment, width int) []string {
	if len(rows) == 0 {
		return nil
	}
	widths := columnWidths(rows)
	if total := Width(widths); total < width {
		widths[0] += width - total
	}
	out := make([]string, len(rows))
	for i, row := range rows {
		out[i] = render(row, widths, alignments)
	}
	return out
}

// Width returns the rendered width of a row with the given column widths.
func Width(widths []int) int {
	total := 0
	for i, w := range widths {
		if i > 0 {
			total += len(separator)
		}
		total += w
	}
	return total
}

// Measure returns the natural rendered width of rows.
func Measure(rows [][]string) int {
	if len(rows) == 0 {
		return 0
	}
	return Width(columnWidths(rows))
}

func columnWidths(rows [][]string) []int {
	colCount := 0
	for _, row := range rows {
		if len(row) > colCount {
			colCount = len(row)
		}
	}
	widths := make([]int, colCount)
	for _, row := range rows {
		for c, cell := range row {
			if width := cellWidth(cell); width > widths[c] {
				widths[c] = width
			}
		}
	}
	return widths
}

func render(row []string, widths []int, alignments []Alignment) string {
	var b strings.Builder
	for c, width := range widths {
		cell := ""
		if c < len(row) {
			cell = row[c]
		}
		if c > 0 {
			b.WriteString(separator)
		}
		pad := width - cellWidth(cell)
		if c < len(alignments) && alignments[c] == AlignRight {
			writeSpaces(&b, pad)
			b.WriteString(cell)
		} else {
			b.WriteString(cell)
			writeSpaces(&b, pad)
		}
	}
	return b.String()
}

func cellWidth(text string) int {
	return lipgloss.Width(text)
}

func writeSpaces(b *strings.Builder, count int) {
	if count <= 0 {
		return
	}
	b.WriteString(strings.Repeat(" ", count))
}
