package player

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-maze/internal/physics"
)

func TestContactListOrdering(t *testing.T) {
	var l ContactList

	l.Begin(wallAhead(1, 0))
	l.Begin(wallAhead(2, 1))
	l.Begin(wallAhead(1, 2))

	items := l.Items()
	assert.Len(t, items, 2, "one entry per collider")
	assert.Equal(t, physics.BodyID(2), items[0].Other)

	last, ok := l.Last()
	assert.True(t, ok)
	assert.Equal(t, physics.BodyID(1), last.Other)
	assert.Equal(t, 2.0, last.Point.X)
}

func TestContactListEnd(t *testing.T) {
	var l ContactList
	l.Begin(wallAhead(1, 0))

	assert.False(t, l.End(5))
	assert.Equal(t, 1, l.Len())
	assert.True(t, l.End(1))
	assert.Zero(t, l.Len())

	_, ok := l.Last()
	assert.False(t, ok)

	l.Begin(wallAhead(3, 0))
	l.Clear()
	assert.Zero(t, l.Len())
}
