package view

import "assessctl/internal/console"

// Content is what a List draws and navigates.
type Content interface {
	// Len is the number of selectable items.
	Len() int
	// Prelude draws everything above the redraw origin, once per render.
	Prelude(c *Canvas)
	// Body draws the redrawn part with the item at selected highlighted.
	Body(c *Canvas, selected int)
}

// CommitFunc runs when the user confirms index.
type CommitFunc func(index int) error

// List is a bordered, highlight-navigable list over some Content. The
// commit strategy decides what confirming an item does; a nil strategy just
// reports the index.
type List[C Content] struct {
	content C
	commit  CommitFunc
}

// NewList binds content to a commit strategy.
func NewList[C Content](content C, commit CommitFunc) *List[C] {
	return &List[C]{content: content, commit: commit}
}

// Content returns the list's content.
func (l *List[C]) Content() C { return l.content }

// Run clears the terminal, draws the list and reads keys until the user
// confirms or cancels. It returns the confirmed index or NoSelection. A key
// read error ends the loop and is returned with NoSelection; an error from
// the commit strategy is returned with the committed index.
func (l *List[C]) Run(term console.Terminal) (int, error) {
	canvas := NewCanvas(term)

	term.Clear()
	l.content.Prelude(canvas)
	origin := term.Cursor()

	sel := NewSelector(l.content.Len())
	for {
		term.SetCursor(origin)
		l.content.Body(canvas, sel.Index())

		key, err := term.ReadKey()
		if err != nil {
			return NoSelection, err
		}
		switch sel.Apply(key) {
		case Committed:
			if l.commit != nil {
				if err := l.commit(sel.Index()); err != nil {
					return sel.Index(), err
				}
			}
			return sel.Index(), nil
		case Cancelled:
			return NoSelection, nil
		}
	}
}
