package consoletest

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"assessctl/internal/console"
)

func TestRecorderOverwritesInPlace(t *testing.T) {
	r := New()
	r.WriteLine("title")
	origin := r.Cursor()

	r.WriteLine("row one <")
	r.WriteLine("row two  ")

	r.SetCursor(origin)
	r.WriteLine("row one  ")
	r.SetForeground(console.ColorGreen)
	r.WriteLine("row two <")
	r.SetForeground(console.ColorDefault)

	assert.Equal(t, []string{"title", "row one  ", "row two <", ""}, r.Lines())
	assert.Equal(t, console.ColorDefault, r.Color(1))
	assert.Equal(t, console.ColorGreen, r.Color(2))
	assert.Equal(t, 1, r.Seeks)
	assert.Equal(t, []console.Color{console.ColorGreen, console.ColorDefault}, r.ColorLog)
	assert.Equal(t, 2, r.Find("row two"))
	assert.Equal(t, -1, r.Find("missing"))
}

func TestRecorderScriptedKeys(t *testing.T) {
	r := New(console.KeyDown)
	r.Push(console.KeyConfirm)

	k, err := r.ReadKey()
	require.NoError(t, err)
	assert.Equal(t, console.KeyDown, k)

	k, err = r.ReadKey()
	require.NoError(t, err)
	assert.Equal(t, console.KeyConfirm, k)

	_, err = r.ReadKey()
	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, 3, r.Reads)
}

func TestRecorderStripsEscapes(t *testing.T) {
	r := New()
	r.Write("\x1b[32mgreen\x1b[0m")
	assert.Equal(t, "green", r.Line(0))

	r.Clear()
	assert.Empty(t, r.Lines())
	assert.Equal(t, 1, r.Clears)
}
