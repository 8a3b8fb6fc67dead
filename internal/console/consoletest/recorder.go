// Package consoletest provides a scripted, screen-emulating
// console.Terminal for tests.
package consoletest

import (
	"io"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"assessctl/internal/console"
)

// Recorder emulates a terminal screen: text is written at the cursor and
// overwrites what was there, so a redraw from a saved position replaces the
// previous frame. Keys are served from a script; ReadKey returns io.EOF once
// the script is exhausted.
type Recorder struct {
	keys   []console.Key
	lines  [][]rune
	colors []console.Color
	pos    console.Position
	fg     console.Color

	// Reads counts ReadKey calls, including the one that hit io.EOF.
	Reads int
	// Clears counts Clear calls.
	Clears int
	// Seeks counts SetCursor calls.
	Seeks int
	// ColorLog records every SetForeground call in order.
	ColorLog []console.Color
}

// New returns a Recorder that will answer ReadKey with keys, in order.
func New(keys ...console.Key) *Recorder {
	return &Recorder{keys: keys}
}

// Push appends keys to the script.
func (r *Recorder) Push(keys ...console.Key) {
	r.keys = append(r.keys, keys...)
}

func (r *Recorder) ReadKey() (console.Key, error) {
	r.Reads++
	if len(r.keys) == 0 {
		return console.KeyOther, io.EOF
	}
	k := r.keys[0]
	r.keys = r.keys[1:]
	return k, nil
}

// Write stores s at the cursor; ANSI escape sequences are stripped.
func (r *Recorder) Write(s string) {
	for _, ch := range ansi.Strip(s) {
		if ch == '\n' {
			r.pos.Row++
			r.pos.Col = 0
			r.ensure(r.pos.Row)
			continue
		}
		r.put(ch)
	}
}

func (r *Recorder) WriteLine(s string) {
	r.Write(s)
	r.Write("\n")
}

func (r *Recorder) put(ch rune) {
	r.ensure(r.pos.Row)
	line := r.lines[r.pos.Row]
	for len(line) <= r.pos.Col {
		line = append(line, ' ')
	}
	line[r.pos.Col] = ch
	r.lines[r.pos.Row] = line
	r.colors[r.pos.Row] = r.fg
	r.pos.Col++
}

func (r *Recorder) ensure(row int) {
	for len(r.lines) <= row {
		r.lines = append(r.lines, nil)
		r.colors = append(r.colors, console.ColorDefault)
	}
}

func (r *Recorder) Cursor() console.Position { return r.pos }

func (r *Recorder) SetCursor(p console.Position) {
	r.Seeks++
	r.pos = p
}

func (r *Recorder) Clear() {
	r.Clears++
	r.lines = nil
	r.colors = nil
	r.pos = console.Position{}
}

func (r *Recorder) Foreground() console.Color { return r.fg }

func (r *Recorder) SetForeground(c console.Color) {
	r.ColorLog = append(r.ColorLog, c)
	r.fg = c
}

// Lines returns the current screen content, one string per row, exactly as
// written (trailing spaces preserved).
func (r *Recorder) Lines() []string {
	out := make([]string, len(r.lines))
	for i, l := range r.lines {
		out[i] = string(l)
	}
	return out
}

// Line returns row i of the screen, or "" past the end.
func (r *Recorder) Line(i int) string {
	if i < 0 || i >= len(r.lines) {
		return ""
	}
	return string(r.lines[i])
}

// Color returns the foreground color the last character on row i was
// written with.
func (r *Recorder) Color(i int) console.Color {
	if i < 0 || i >= len(r.colors) {
		return console.ColorDefault
	}
	return r.colors[i]
}

// Find returns the first row containing substr, or -1.
func (r *Recorder) Find(substr string) int {
	for i, l := range r.lines {
		if strings.Contains(string(l), substr) {
			return i
		}
	}
	return -1
}

// Screen returns the screen as a single newline-joined string.
func (r *Recorder) Screen() string {
	return strings.Join(r.Lines(), "\n")
}

var _ console.Terminal = (*Recorder)(nil)
