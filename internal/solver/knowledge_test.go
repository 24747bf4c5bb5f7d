package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestZeroCountMarksNeighborsSafe(t *testing.T) {
	k := NewKnowledge(3, 3)
	k.AddCount(Cell{1, 1}, 0)

	for _, c := range k.Neighbors(Cell{1, 1}) {
		assert.True(t, k.IsSafe(c), "%s should be safe", c)
	}

	c, ok := k.SafeMove()
	assert.True(t, ok)
	assert.Equal(t, Cell{0, 0}, c)
}

func TestFullCountMarksNeighborsMines(t *testing.T) {
	k := NewKnowledge(3, 3)
	k.AddCount(Cell{0, 0}, 3)

	assert.True(t, k.IsMine(Cell{1, 0}))
	assert.True(t, k.IsMine(Cell{0, 1}))
	assert.True(t, k.IsMine(Cell{1, 1}))

	_, ok := k.SafeMove()
	assert.False(t, ok)

	c, ok := k.MineMove(nil)
	assert.True(t, ok)
	assert.Equal(t, Cell{1, 0}, c)
}

// Opening the center with count 1 and a corner with count 1 pins the
// mine to the corner's two undecided neighbors; the difference of the
// two sentences clears the remaining six cells.
func TestSubsetInference(t *testing.T) {
	k := NewKnowledge(3, 3)
	k.AddCount(Cell{1, 1}, 1)
	k.AddCount(Cell{0, 0}, 1)

	for _, c := range []Cell{{2, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}} {
		assert.True(t, k.IsSafe(c), "%s should be safe", c)
	}
	assert.False(t, k.IsSafe(Cell{1, 0}))
	assert.False(t, k.IsSafe(Cell{0, 1}))
}

func TestCountsAdjustForKnownMines(t *testing.T) {
	k := NewKnowledge(4, 1)

	// (0,0) has one neighbor, so it must be the mine.
	k.AddCount(Cell{0, 0}, 1)
	assert.True(t, k.IsMine(Cell{1, 0}))

	// (2,0) already accounts for that mine; its other neighbor is
	// therefore safe.
	k.AddCount(Cell{2, 0}, 1)
	assert.True(t, k.IsSafe(Cell{3, 0}))
}

func TestUnknownExcludesDecidedCells(t *testing.T) {
	k := NewKnowledge(3, 1)
	assert.Len(t, k.Unknown(), 3)

	k.AddCount(Cell{0, 0}, 1)
	// (0,0) played, (1,0) deduced mine
	assert.Equal(t, []Cell{{2, 0}}, k.Unknown())
}

func TestSafeMoveSkipsPlayedCells(t *testing.T) {
	k := NewKnowledge(3, 1)
	k.AddCount(Cell{1, 0}, 0)

	c, ok := k.SafeMove()
	assert.True(t, ok)
	assert.Equal(t, Cell{0, 0}, c)
	k.AddCount(c, 0)

	c, ok = k.SafeMove()
	assert.True(t, ok)
	assert.Equal(t, Cell{2, 0}, c)
	k.AddCount(c, 0)

	_, ok = k.SafeMove()
	assert.False(t, ok)
}

func TestMineMoveHonorsSkipList(t *testing.T) {
	k := NewKnowledge(2, 2)
	k.AddCount(Cell{0, 0}, 3)

	skip := map[Cell]struct{}{}
	for range 3 {
		c, ok := k.MineMove(skip)
		assert.True(t, ok)
		skip[c] = struct{}{}
	}
	_, ok := k.MineMove(skip)
	assert.False(t, ok)
}
