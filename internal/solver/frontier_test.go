package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProbabilitiesSingleSentence(t *testing.T) {
	k := NewKnowledge(3, 1)
	k.AddCount(Cell{1, 0}, 1)

	probs, expectedMines := k.Probabilities()
	require.Len(t, probs, 2)
	assert.InDelta(t, 0.5, probs[Cell{0, 0}], 1e-9)
	assert.InDelta(t, 0.5, probs[Cell{2, 0}], 1e-9)
	assert.InDelta(t, 1.0, expectedMines, 1e-9)
}

func TestProbabilitiesIndependentSegments(t *testing.T) {
	k := NewKnowledge(7, 1)
	k.AddCount(Cell{1, 0}, 1)
	k.AddCount(Cell{5, 0}, 1)

	assert.Len(t, k.segments(), 2)

	probs, expectedMines := k.Probabilities()
	require.Len(t, probs, 4)
	for _, c := range []Cell{{0, 0}, {2, 0}, {4, 0}, {6, 0}} {
		assert.InDelta(t, 0.5, probs[c], 1e-9, "%s", c)
	}
	assert.InDelta(t, 2.0, expectedMines, 1e-9)
}

// Two overlapping sentences merge into one segment, and cells forced
// by their conjunction come out at probability 0 or 1.
func TestProbabilitiesOverlap(t *testing.T) {
	k := NewKnowledge(5, 5)
	k.sentences = append(k.sentences,
		NewSentence([]Cell{{0, 0}, {1, 0}, {2, 0}}, 1),
		NewSentence([]Cell{{1, 0}, {2, 0}, {3, 0}}, 2),
	)

	require.Len(t, k.segments(), 1)

	probs, _ := k.Probabilities()
	// (0,0) can never be a mine: the second sentence needs two of
	// {1,0},{2,0},{3,0}, and the first allows at most one of the
	// overlap, forcing (3,0) and exactly one of the middle cells.
	assert.InDelta(t, 0.0, probs[Cell{0, 0}], 1e-9)
	assert.InDelta(t, 1.0, probs[Cell{3, 0}], 1e-9)
	assert.InDelta(t, 0.5, probs[Cell{1, 0}], 1e-9)
	assert.InDelta(t, 0.5, probs[Cell{2, 0}], 1e-9)
}

func TestProbabilitiesContradiction(t *testing.T) {
	k := NewKnowledge(3, 3)
	k.sentences = append(k.sentences,
		NewSentence([]Cell{{0, 0}, {1, 0}}, 1),
		NewSentence([]Cell{{0, 0}, {1, 0}}, 2),
	)

	probs, expectedMines := k.Probabilities()
	assert.Empty(t, probs)
	assert.Zero(t, expectedMines)
}

func TestOversizedSegmentSkipped(t *testing.T) {
	k := NewKnowledge(30, 1)
	cells := make([]Cell, maxSegmentSize+1)
	for i := range cells {
		cells[i] = Cell{i, 0}
	}
	k.sentences = append(k.sentences, NewSentence(cells, 3))

	probs, expectedMines := k.Probabilities()
	assert.Empty(t, probs)
	assert.Zero(t, expectedMines)
}
