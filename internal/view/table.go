package view

import (
	"fmt"
	"io"

	"assessctl/internal/console"
	"assessctl/internal/errors"
)

// Row is anything that can be shown as one table row.
type Row interface {
	Cells() []string
}

// Table renders items as a column-fitted table and reports which row the
// user picked. Rows and column widths are computed once, in NewTable.
type Table[T Row] struct {
	items   []T
	rows    [][]string
	columns []Column
	footer  []string
	title   string
	width   int
	err     error
}

// DefaultTableTitle is used when NewTable is given an empty title.
const DefaultTableTitle = "Table"

// NewTable reads every item's cells and fits the columns to them. It fails
// with a LAYOUT_MISMATCH error when a row's cell count differs from the
// number of headers.
func NewTable[T Row](headers []string, items []T, title string) (*Table[T], error) {
	if title == "" {
		title = DefaultTableTitle
	}
	rows := make([][]string, 0, len(items))
	for _, it := range items {
		rows = append(rows, it.Cells())
	}
	cols, width, err := fitColumns(headers, rows, title)
	if err != nil {
		return nil, err
	}
	return &Table[T]{
		items:   items,
		rows:    rows,
		columns: cols,
		title:   title,
		width:   width,
	}, nil
}

// Align sets the alignment of column at. An out-of-range column records an
// INDEX_OUT_OF_RANGE error, reported by Err and by Render.
func (t *Table[T]) Align(at int, align Alignment) *Table[T] {
	if at < 0 || at >= len(t.columns) {
		if t.err == nil {
			t.err = errors.IndexOutOfRange(at, len(t.columns))
		}
		return t
	}
	t.columns[at].Align = align
	return t
}

// AddFooter appends a line shown under the table, right aligned.
func (t *Table[T]) AddFooter(line string) *Table[T] {
	t.footer = append(t.footer, line)
	return t
}

// Err returns the first error recorded by the builder methods.
func (t *Table[T]) Err() error { return t.err }

// Columns returns a copy of the fitted columns.
func (t *Table[T]) Columns() []Column {
	return append([]Column(nil), t.columns...)
}

// Width is the inner width of the table between its outer borders.
func (t *Table[T]) Width() int { return t.width }

// Items returns the items the table was built from.
func (t *Table[T]) Items() []T { return t.items }

// Len is the number of rows.
func (t *Table[T]) Len() int { return len(t.rows) }

// Render draws the table on term and waits for a choice. It returns the
// selected row index, or NoSelection when the table is closed or empty.
func (t *Table[T]) Render(term console.Terminal) (int, error) {
	if t.err != nil {
		return NoSelection, t.err
	}
	return NewList(tableContent[T]{t}, nil).Run(term)
}

// Selected renders the table and returns the chosen item.
func (t *Table[T]) Selected(term console.Terminal) (T, bool, error) {
	var zero T
	i, err := t.Render(term)
	if err != nil || i == NoSelection {
		return zero, false, err
	}
	return t.items[i], true, nil
}

// Fprint writes the table to w without the close affordance or selection
// markers, for non-interactive output.
func (t *Table[T]) Fprint(w io.Writer) error {
	if t.err != nil {
		return t.err
	}
	lines := t.header()
	for _, row := range t.rows {
		lines = append(lines, DataRow(t.columns, row))
	}
	lines = append(lines, t.trailer()...)
	for _, l := range lines {
		if _, err := fmt.Fprintln(w, l); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "\n"+countFormat+"\n", len(t.rows))
	return err
}

func (t *Table[T]) header() []string {
	rule := ColumnRule(t.columns)
	return []string{
		Rule(t.width),
		TitleBar(t.width, t.title),
		rule,
		HeaderRow(t.columns),
		rule,
	}
}

func (t *Table[T]) trailer() []string {
	var lines []string
	if len(t.rows) > 0 {
		lines = append(lines, ColumnRule(t.columns))
	}
	for _, f := range t.footer {
		lines = append(lines, FooterLine(t.width, f))
	}
	return lines
}

type tableContent[T Row] struct{ t *Table[T] }

func (c tableContent[T]) Len() int { return len(c.t.rows) }

func (c tableContent[T]) Prelude(cv *Canvas) {
	cv.Line(CloseButton(c.t.width))
	for _, l := range c.t.header() {
		cv.Line(l)
	}
}

func (c tableContent[T]) Body(cv *Canvas, selected int) {
	t := c.t
	for i, row := range t.rows {
		cv.Selectable(DataRow(t.columns, row), i == selected)
	}
	for _, l := range t.trailer() {
		cv.Line(l)
	}
	cv.Text(fmt.Sprintf("\n"+countFormat, len(t.rows)))
}
