package view

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"assessctl/internal/console"
	"assessctl/internal/console/consoletest"
	"assessctl/internal/errors"
)

type cells []string

func (c cells) Cells() []string { return c }

func sampleTable(t *testing.T) *Table[cells] {
	t.Helper()
	tbl, err := NewTable([]string{"ID", "Name"}, []cells{{"1", "Ada"}, {"22", "Grace"}}, "Students")
	require.NoError(t, err)
	return tbl
}

func TestTableRenderLayout(t *testing.T) {
	tbl := sampleTable(t).Align(0, AlignRight).AddFooter("Avg: 3")
	require.NoError(t, tbl.Err())
	assert.Equal(t, 12, tbl.Width())

	rec := consoletest.New(console.KeyCancel)
	got, err := tbl.Render(rec)
	require.NoError(t, err)
	assert.Equal(t, NoSelection, got)

	want := []string{
		"         [x] Close",
		"    +------------+",
		"    |  Students  |",
		"    +----+-------+",
		"    | ID | Name  |",
		"    +----+-------+",
		"    |  1 | Ada   | <",
		"    | 22 | Grace |   ",
		"    +----+-------+",
		"            Avg: 3",
		"",
		"    *Number or records = 2 ",
	}
	assert.Equal(t, want, rec.Lines())
	assert.Equal(t, console.ColorGreen, rec.Color(6))
	assert.Equal(t, console.ColorDefault, rec.Color(7))
	assert.Equal(t, console.ColorDefault, rec.Foreground())
}

func TestTableSelection(t *testing.T) {
	tests := []struct {
		name string
		keys []console.Key
		want int
	}{
		{"first", []console.Key{console.KeyConfirm}, 0},
		{"second", []console.Key{console.KeyDown, console.KeyConfirm}, 1},
		{"wraps", []console.Key{console.KeyDown, console.KeyDown, console.KeyConfirm}, 0},
		{"up clamps", []console.Key{console.KeyUp, console.KeyUp, console.KeyConfirm}, 0},
		{"cancel", []console.Key{console.KeyDown, console.KeyCancel}, NoSelection},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := sampleTable(t).Render(consoletest.New(tt.keys...))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTableRedrawOnlyBody(t *testing.T) {
	rec := consoletest.New(console.KeyDown, console.KeyCancel)
	_, err := sampleTable(t).Render(rec)
	require.NoError(t, err)

	assert.Equal(t, "    | 1  | Ada   |   ", rec.Line(6))
	assert.Equal(t, "    | 22 | Grace | <", rec.Line(7)[:len("    | 22 | Grace | <")])
	assert.Equal(t, console.ColorGreen, rec.Color(7))
	assert.Equal(t, 2, rec.Seeks)
	assert.Equal(t, 1, rec.Clears)
}

func TestTableEmpty(t *testing.T) {
	tbl, err := NewTable[cells]([]string{"Code", "Title"}, nil, "Courses")
	require.NoError(t, err)

	rec := consoletest.New(console.KeyDown, console.KeyUp, console.KeyConfirm)
	got, err := tbl.Render(rec)
	require.NoError(t, err)
	assert.Equal(t, NoSelection, got)

	// no closing border without rows
	assert.Equal(t, "    | Code | Title |", rec.Line(4))
	assert.Equal(t, "", rec.Line(6))
	assert.Equal(t, "    *Number or records = 0 ", rec.Line(7))
	assert.Empty(t, rec.ColorLog, "nothing is highlighted")
}

func TestTableSelected(t *testing.T) {
	item, ok, err := sampleTable(t).Selected(consoletest.New(console.KeyDown, console.KeyConfirm))
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, cells{"22", "Grace"}, item)

	_, ok, err = sampleTable(t).Selected(consoletest.New(console.KeyCancel))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestTableDefaultTitle(t *testing.T) {
	tbl, err := NewTable([]string{"A"}, []cells{{"x"}}, "")
	require.NoError(t, err)
	// "Table" + 2 is wider than one narrow column
	assert.Equal(t, 7, tbl.Width())
	assert.Equal(t, 5, tbl.Columns()[0].Width)
}

func TestTableLayoutMismatch(t *testing.T) {
	_, err := NewTable([]string{"A", "B"}, []cells{{"1", "2"}, {"1", "2", "3"}}, "T")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.CodeLayoutMismatch))
}

func TestTableAlignOutOfRange(t *testing.T) {
	tbl := sampleTable(t).Align(2, AlignRight).Align(0, AlignRight)
	require.Error(t, tbl.Err())
	assert.True(t, errors.Is(tbl.Err(), errors.CodeIndexOutOfRange))

	rec := consoletest.New(console.KeyConfirm)
	got, err := tbl.Render(rec)
	assert.True(t, errors.Is(err, errors.CodeIndexOutOfRange))
	assert.Equal(t, NoSelection, got)
	assert.Zero(t, rec.Reads, "nothing drawn or read")

	assert.True(t, errors.Is(sampleTable(t).Align(-1, AlignLeft).Err(), errors.CodeIndexOutOfRange))
}

func TestTableColumnsAreCopies(t *testing.T) {
	tbl := sampleTable(t)
	cols := tbl.Columns()
	cols[0].Width = 99
	assert.Equal(t, 2, tbl.Columns()[0].Width)
}

func TestTableFprint(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, sampleTable(t).AddFooter("end").Fprint(&buf))

	want := strings.Join([]string{
		"    +------------+",
		"    |  Students  |",
		"    +----+-------+",
		"    | ID | Name  |",
		"    +----+-------+",
		"    | 1  | Ada   |",
		"    | 22 | Grace |",
		"    +----+-------+",
		"               end",
		"",
		"    *Number or records = 2 ",
		"",
	}, "\n")
	assert.Equal(t, want, buf.String())
}
