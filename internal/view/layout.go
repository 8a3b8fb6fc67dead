package view

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"assessctl/internal/errors"
)

// Alignment controls which side of a table cell receives the padding.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
)

func (a Alignment) String() string {
	if a == AlignRight {
		return "right"
	}
	return "left"
}

// Column is one table column; Width is the widest of the header and every
// cell in that position.
type Column struct {
	Name  string
	Width int
	Align Alignment
}

func textWidth(s string) int { return runewidth.StringWidth(s) }

// menuWidth is the widest of the title and every non-separator label.
func menuWidth(title string, entries []Entry) int {
	width := textWidth(title)
	for _, e := range entries {
		if e.IsSeparator() {
			continue
		}
		if w := textWidth(e.Label); w > width {
			width = w
		}
	}
	return width
}

// fitColumns derives column widths from the headers and every row, and the
// total inner width of the table. A title wider than the columns grows the
// last column only.
func fitColumns(headers []string, rows [][]string, title string) ([]Column, int, error) {
	if len(headers) == 0 {
		return nil, 0, errors.New(errors.CodeLayoutMismatch, "table needs at least one column")
	}
	cols := make([]Column, len(headers))
	for i, h := range headers {
		cols[i] = Column{Name: h, Width: textWidth(h)}
	}
	for r, row := range rows {
		if len(row) != len(cols) {
			return nil, 0, errors.LayoutMismatch(r, len(row), len(cols))
		}
		for i, cell := range row {
			if w := textWidth(cell); w > cols[i].Width {
				cols[i].Width = w
			}
		}
	}

	// one space either side of every cell, plus the inner borders
	total := len(cols) - 1
	for _, c := range cols {
		total += c.Width + 2
	}
	if need := textWidth(title) + 2; need > total {
		cols[len(cols)-1].Width += need - total
		total = need
	}
	return cols, total, nil
}

// Center pads title to fullWidth. The left side gets the rounding remainder,
// so odd leftovers sit one column right of true center.
func Center(fullWidth int, title string) string {
	padding := (fullWidth - textWidth(title)) / 2
	if padding < 0 {
		padding = 0
	}
	return runewidth.FillLeft(title, fullWidth-padding) + strings.Repeat(" ", padding)
}

// AlignCell pads cell to width on the side opposite its alignment.
func AlignCell(cell string, width int, align Alignment) string {
	if align == AlignRight {
		return runewidth.FillLeft(cell, width)
	}
	return runewidth.FillRight(cell, width)
}
