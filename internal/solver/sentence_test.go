package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSentenceKnownMines(t *testing.T) {
	s := NewSentence([]Cell{{0, 0}, {1, 0}}, 2)
	assert.ElementsMatch(t, []Cell{{0, 0}, {1, 0}}, s.KnownMines())
	assert.Empty(t, s.KnownSafes())

	s = NewSentence([]Cell{{0, 0}, {1, 0}}, 1)
	assert.Empty(t, s.KnownMines())
	assert.Empty(t, s.KnownSafes())
}

func TestSentenceKnownSafes(t *testing.T) {
	s := NewSentence([]Cell{{0, 0}, {1, 0}, {2, 0}}, 0)
	assert.ElementsMatch(t, []Cell{{0, 0}, {1, 0}, {2, 0}}, s.KnownSafes())
	assert.Empty(t, s.KnownMines())
}

func TestSentenceMarkMine(t *testing.T) {
	s := NewSentence([]Cell{{0, 0}, {1, 0}, {2, 0}}, 2)

	assert.True(t, s.MarkMine(Cell{1, 0}))
	assert.Equal(t, 1, s.Count())
	assert.Equal(t, 2, s.Len())
	assert.False(t, s.Contains(Cell{1, 0}))

	// marking a cell outside the sentence changes nothing
	assert.False(t, s.MarkMine(Cell{5, 5}))
	assert.Equal(t, 1, s.Count())
}

func TestSentenceMarkSafe(t *testing.T) {
	s := NewSentence([]Cell{{0, 0}, {1, 0}, {2, 0}}, 1)

	assert.True(t, s.MarkSafe(Cell{0, 0}))
	assert.Equal(t, 1, s.Count())
	assert.Equal(t, 2, s.Len())

	assert.False(t, s.MarkSafe(Cell{0, 0}))
}

func TestSentenceSubsetMinus(t *testing.T) {
	s1 := NewSentence([]Cell{{0, 0}, {1, 0}, {2, 0}}, 2)
	s2 := NewSentence([]Cell{{0, 0}, {1, 0}}, 1)

	assert.True(t, s2.subsetOf(s1))
	assert.False(t, s1.subsetOf(s2))

	diff := s2.minus(s1)
	assert.Equal(t, []Cell{{2, 0}}, diff.Cells())
	assert.Equal(t, 1, diff.Count())
}

func TestSentenceString(t *testing.T) {
	s := NewSentence([]Cell{{1, 0}, {0, 0}}, 1)
	assert.Equal(t, "{0:0 1:0} = 1", s.String())
}
