package console

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Console is the Terminal backed by a real tty. The cursor position is
// tracked from the text written since the last Clear, which holds as long
// as the drawing fits on one screen.
type Console struct {
	in     *os.File
	reader *bufio.Reader
	out    *termenv.Output
	pos    Position
	fg     Color
}

// New returns a Console reading keys from in and drawing to out.
func New(in *os.File, out io.Writer) *Console {
	return &Console{
		in:     in,
		reader: bufio.NewReader(in),
		out:    termenv.NewOutput(out),
	}
}

// ReadKey blocks for one key press. The terminal is in raw mode only for
// the duration of the read so that line-oriented prompts keep working
// between reads.
func (c *Console) ReadKey() (Key, error) {
	fd := int(c.in.Fd())
	if term.IsTerminal(fd) {
		oldState, err := term.MakeRaw(fd)
		if err != nil {
			return KeyOther, fmt.Errorf("set terminal raw mode: %w", err)
		}
		defer term.Restore(fd, oldState)
	}
	return readKey(c.reader)
}

func readKey(r *bufio.Reader) (Key, error) {
	b, err := r.ReadByte()
	if err != nil {
		return KeyOther, err
	}
	if b != esc {
		return DecodeKey([]byte{b}), nil
	}
	// escape sequences arrive in a single read; anything not yet buffered
	// belongs to the next key
	seq := []byte{b}
	for len(seq) < 3 && r.Buffered() > 0 {
		nb, err := r.ReadByte()
		if err != nil {
			break
		}
		seq = append(seq, nb)
	}
	return DecodeKey(seq), nil
}

func (c *Console) Write(s string) {
	if s == "" {
		return
	}
	_, _ = io.WriteString(c.out, c.paint(s))
	c.advance(s)
}

func (c *Console) WriteLine(s string) {
	c.Write(s)
	_, _ = io.WriteString(c.out, "\n")
	c.advance("\n")
}

func (c *Console) paint(s string) string {
	col := c.fg.ansi()
	if col == nil {
		return s
	}
	return c.out.String(s).Foreground(col).String()
}

func (c *Console) advance(s string) {
	rows := strings.Count(s, "\n")
	if rows == 0 {
		c.pos.Col += runewidth.StringWidth(s)
		return
	}
	c.pos.Row += rows
	c.pos.Col = runewidth.StringWidth(s[strings.LastIndexByte(s, '\n')+1:])
}

func (c *Console) Cursor() Position { return c.pos }

func (c *Console) SetCursor(p Position) {
	c.out.MoveCursor(p.Row+1, p.Col+1)
	c.pos = p
}

func (c *Console) Clear() {
	c.out.ClearScreen()
	c.pos = Position{}
}

func (c *Console) Foreground() Color { return c.fg }

func (c *Console) SetForeground(col Color) { c.fg = col }
