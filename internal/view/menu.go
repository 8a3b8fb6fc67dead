package view

import (
	"assessctl/internal/console"
)

// Entry is one menu line: a label bound to an action, or a separator.
type Entry struct {
	Label     string
	Action    func() error
	separator bool
}

// Item returns an action entry. A nil action is allowed; confirming it only
// reports the index.
func Item(label string, action func() error) Entry {
	return Entry{Label: label, Action: action}
}

// Separator returns an entry drawn as a border line. It never takes the
// cursor and does not count toward the menu's indices.
func Separator() Entry {
	return Entry{Label: "-", separator: true}
}

// IsSeparator reports whether e is a separator.
func (e Entry) IsSeparator() bool { return e.separator }

// Menu renders entries in a box under a centered title and runs the action
// of the confirmed entry.
type Menu struct {
	entries []Entry
	actions []Entry
	title   string
	width   int
}

// NewMenu builds a menu. The entries slice is copied.
func NewMenu(title string, entries ...Entry) *Menu {
	m := &Menu{
		entries: append([]Entry(nil), entries...),
		title:   title,
	}
	for _, e := range m.entries {
		if !e.IsSeparator() {
			m.actions = append(m.actions, e)
		}
	}
	m.width = menuWidth(m.title, m.entries)
	return m
}

// ActionCount is the number of navigable entries.
func (m *Menu) ActionCount() int { return len(m.actions) }

// Title is the current title.
func (m *Menu) Title() string { return m.title }

// Width is the content width: the widest of the title and every label.
func (m *Menu) Width() int { return m.width }

// RenderOption adjusts a single Render call.
type RenderOption func(*Menu)

// WithTitle replaces the menu title from this render on.
func WithTitle(title string) RenderOption {
	return func(m *Menu) {
		if title != m.title {
			m.title = title
			m.width = menuWidth(m.title, m.entries)
		}
	}
}

// Render draws the menu on term and waits for a choice. The confirmed
// entry's action runs before Render returns its index; indices skip
// separators. Cancelling returns NoSelection without running anything.
func (m *Menu) Render(term console.Terminal, opts ...RenderOption) (int, error) {
	for _, opt := range opts {
		opt(m)
	}
	return NewList(menuContent{m}, m.execute).Run(term)
}

func (m *Menu) execute(index int) error {
	if a := m.actions[index].Action; a != nil {
		return a()
	}
	return nil
}

type menuContent struct{ m *Menu }

func (c menuContent) Len() int { return len(c.m.actions) }

func (c menuContent) Prelude(*Canvas) {}

func (c menuContent) Body(cv *Canvas, selected int) {
	m := c.m
	border := Rule(m.width + 2)

	cv.Line(border)
	cv.Line(TitleBar(m.width+2, m.title))
	cv.Line(border)

	at := 0
	for _, e := range m.entries {
		if e.IsSeparator() {
			cv.Line(border)
			continue
		}
		cv.Selectable(MenuRow(m.width, e.Label), at == selected)
		at++
	}

	cv.Line(border)
	cv.Text("\n" + closeHint)
}
