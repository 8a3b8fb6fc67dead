package console

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConsoleTracksCursor(t *testing.T) {
	var buf bytes.Buffer
	c := New(os.Stdin, &buf)

	c.Clear()
	assert.Equal(t, Position{}, c.Cursor())

	c.WriteLine("+----+")
	c.Write("| ab |")
	assert.Equal(t, Position{Row: 1, Col: 6}, c.Cursor())

	c.Write("\n\n  end")
	assert.Equal(t, Position{Row: 3, Col: 5}, c.Cursor())

	c.SetCursor(Position{Row: 1, Col: 0})
	assert.Equal(t, Position{Row: 1, Col: 0}, c.Cursor())
	assert.Contains(t, buf.String(), "| ab |")
}

func TestConsoleForeground(t *testing.T) {
	var buf bytes.Buffer
	c := New(os.Stdin, &buf)

	assert.Equal(t, ColorDefault, c.Foreground())
	c.SetForeground(ColorGreen)
	assert.Equal(t, ColorGreen, c.Foreground())
	c.WriteLine("selected")
	c.SetForeground(ColorDefault)
	c.WriteLine("plain")

	assert.Contains(t, buf.String(), "selected")
	assert.Contains(t, buf.String(), "plain\n")
}
