package view

import "assessctl/internal/console"

// NoSelection is returned when a list is closed without choosing anything.
const NoSelection = -1

// State is the outcome of feeding one key to a Selector.
type State int

const (
	Running State = iota
	Committed
	Cancelled
)

func (s State) String() string {
	switch s {
	case Committed:
		return "committed"
	case Cancelled:
		return "cancelled"
	}
	return "running"
}

// Selector is the cursor state machine shared by every list. Down wraps
// past the last item, Up stops at the first.
type Selector struct {
	index int
	count int
}

// NewSelector starts at index 0 over count items.
func NewSelector(count int) *Selector {
	return &Selector{count: count}
}

// Index is the current cursor position.
func (s *Selector) Index() int { return s.index }

// Len is the number of selectable items.
func (s *Selector) Len() int { return s.count }

// Apply moves the cursor for k and reports whether the loop should stop.
// Confirming an empty list cancels it.
func (s *Selector) Apply(k console.Key) State {
	switch k {
	case console.KeyDown:
		if s.count > 0 {
			s.index = (s.index + 1) % s.count
		}
	case console.KeyUp:
		if s.index > 0 {
			s.index--
		}
	case console.KeyConfirm:
		if s.count == 0 {
			return Cancelled
		}
		return Committed
	case console.KeyCancel:
		return Cancelled
	}
	return Running
}
