package view

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Margin indents every box from the left edge of the screen.
const Margin = "    "

const (
	// SelectedMarker trails the highlighted row.
	SelectedMarker = " <"
	// BlankMarker trails every other row, wiping a marker left by the
	// previous frame.
	BlankMarker = "   "
)

const (
	closeLabel  = "[x] Close"
	closeHint   = "  Press [x] to close menu.  "
	countFormat = "    *Number or records = %d "
)

// Rule is a plain border with inner dashes: +------+
func Rule(inner int) string {
	return Margin + "+" + strings.Repeat("-", inner) + "+"
}

// ColumnRule is a border broken at every column: +----+------+
func ColumnRule(cols []Column) string {
	var b strings.Builder
	b.WriteString(Margin + "+")
	for _, c := range cols {
		b.WriteString(strings.Repeat("-", c.Width+2))
		b.WriteString("+")
	}
	return b.String()
}

// TitleBar centers title between two borders inner columns apart.
func TitleBar(inner int, title string) string {
	return Margin + "|" + Center(inner, title) + "|"
}

// HeaderRow lists the column names, always left aligned.
func HeaderRow(cols []Column) string {
	var b strings.Builder
	b.WriteString(Margin + "|")
	for _, c := range cols {
		b.WriteString(" " + runewidth.FillRight(c.Name, c.Width) + " |")
	}
	return b.String()
}

// DataRow renders one table row using each column's alignment. cells must
// have one entry per column.
func DataRow(cols []Column, cells []string) string {
	var b strings.Builder
	b.WriteString(Margin + "|")
	for i, c := range cols {
		b.WriteString(" " + AlignCell(cells[i], c.Width, c.Align) + " |")
	}
	return b.String()
}

// MenuRow renders one menu entry padded to the menu width.
func MenuRow(width int, label string) string {
	return Margin + "| " + runewidth.FillRight(label, width) + " |"
}

// CloseButton right-aligns the close affordance over a table of the given
// inner width.
func CloseButton(inner int) string {
	return Margin + runewidth.FillLeft(closeLabel, inner+2)
}

// FooterLine right-aligns a footer against the table's right border.
func FooterLine(inner int, footer string) string {
	return runewidth.FillLeft(footer, inner+len(Margin)+2)
}
