package view

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"assessctl/internal/console"
)

func TestSelectorDownWraps(t *testing.T) {
	s := NewSelector(3)
	var seen []int
	for range 3 {
		assert.Equal(t, Running, s.Apply(console.KeyDown))
		seen = append(seen, s.Index())
	}
	assert.Equal(t, []int{1, 2, 0}, seen)
}

func TestSelectorUpClamps(t *testing.T) {
	s := NewSelector(3)
	s.Apply(console.KeyUp)
	assert.Equal(t, 0, s.Index())

	s.Apply(console.KeyDown)
	s.Apply(console.KeyDown)
	s.Apply(console.KeyUp)
	assert.Equal(t, 1, s.Index())
}

func TestSelectorIgnoresOtherKeys(t *testing.T) {
	s := NewSelector(4)
	s.Apply(console.KeyDown)
	for range 5 {
		assert.Equal(t, Running, s.Apply(console.KeyOther))
		assert.Equal(t, 1, s.Index())
	}
}

func TestSelectorStaysInRange(t *testing.T) {
	keys := []console.Key{
		console.KeyDown, console.KeyDown, console.KeyUp, console.KeyDown,
		console.KeyDown, console.KeyDown, console.KeyUp, console.KeyUp, console.KeyUp,
	}
	s := NewSelector(2)
	for _, k := range keys {
		s.Apply(k)
		assert.GreaterOrEqual(t, s.Index(), 0)
		assert.Less(t, s.Index(), 2)
	}
}

func TestSelectorTerminalStates(t *testing.T) {
	s := NewSelector(2)
	s.Apply(console.KeyDown)
	assert.Equal(t, Committed, s.Apply(console.KeyConfirm))
	assert.Equal(t, 1, s.Index())

	s = NewSelector(2)
	s.Apply(console.KeyDown)
	assert.Equal(t, Cancelled, s.Apply(console.KeyCancel))
}

func TestSelectorEmpty(t *testing.T) {
	s := NewSelector(0)
	assert.Equal(t, Running, s.Apply(console.KeyDown))
	assert.Equal(t, Running, s.Apply(console.KeyUp))
	assert.Equal(t, 0, s.Index())
	assert.Equal(t, Cancelled, s.Apply(console.KeyConfirm))
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "running", Running.String())
	assert.Equal(t, "committed", Committed.String())
	assert.Equal(t, "cancelled", Cancelled.String())
}
