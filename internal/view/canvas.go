package view

import "assessctl/internal/console"

// Canvas is the rendering context handed to drawing code. It owns the only
// color change the views make: highlighting the selected row.
type Canvas struct {
	term      console.Terminal
	highlight console.Color
}

// NewCanvas wraps term; selected rows are drawn in green.
func NewCanvas(term console.Terminal) *Canvas {
	return &Canvas{term: term, highlight: console.ColorGreen}
}

func (c *Canvas) Line(s string) { c.term.WriteLine(s) }

func (c *Canvas) Text(s string) { c.term.Write(s) }

// Selectable writes s followed by the selection marker. A selected line is
// drawn in the highlight color and the previous color is restored before
// returning.
func (c *Canvas) Selectable(s string, selected bool) {
	if !selected {
		c.term.WriteLine(s + BlankMarker)
		return
	}
	prev := c.term.Foreground()
	c.term.SetForeground(c.highlight)
	defer c.term.SetForeground(prev)
	c.term.WriteLine(s + SelectedMarker)
}
