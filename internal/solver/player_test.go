package solver

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRand() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func TestPlayerOpensDeducedSafes(t *testing.T) {
	p := NewPlayer(3, 3, 1, testRand())
	p.Observe(Cell{1, 1}, 1)
	p.Observe(Cell{0, 0}, 1)

	// five cells are now provably safe; the player should open them
	// all before anything else
	opened := map[Cell]struct{}{}
	for range 5 {
		move, ok := p.Next()
		require.True(t, ok)
		assert.Equal(t, MoveOpen, move.Type)
		assert.Equal(t, StrategyDeduction, move.Strategy)
		assert.False(t, move.Guess)
		assert.Equal(t, 1.0, move.Confidence)
		opened[move.Cell] = struct{}{}
		p.Observe(move.Cell, 1)
	}
	assert.Len(t, opened, 5)
}

func TestPlayerFlagsDeducedMines(t *testing.T) {
	p := NewPlayer(2, 2, 3, testRand())
	p.Observe(Cell{0, 0}, 3)

	flagged := map[Cell]struct{}{}
	for range 3 {
		move, ok := p.Next()
		require.True(t, ok)
		assert.Equal(t, MoveFlag, move.Type)
		assert.Equal(t, StrategyDeduction, move.Strategy)
		flagged[move.Cell] = struct{}{}
	}
	assert.Len(t, flagged, 3)

	// every cell is decided, nothing left to do
	_, ok := p.Next()
	assert.False(t, ok)
}

func TestPlayerDoesNotReflagBoardFlags(t *testing.T) {
	p := NewPlayer(2, 2, 3, testRand())
	p.Flag(Cell{1, 0})
	p.Observe(Cell{0, 0}, 3)

	flagged := map[Cell]struct{}{}
	for range 2 {
		move, ok := p.Next()
		require.True(t, ok)
		assert.Equal(t, MoveFlag, move.Type)
		flagged[move.Cell] = struct{}{}
	}
	assert.NotContains(t, flagged, Cell{1, 0})
}

func TestPlayerGuessesBlindOnEmptyBoard(t *testing.T) {
	p := NewPlayer(4, 4, 2, testRand())

	move, ok := p.Next()
	require.True(t, ok)
	assert.Equal(t, MoveOpen, move.Type)
	assert.True(t, move.Guess)
}

// With a 50/50 frontier but a sparse outside, the player should take
// its chances away from the frontier.
func TestPlayerPrefersLowDensityOutside(t *testing.T) {
	p := NewPlayer(10, 10, 1, testRand())
	p.Observe(Cell{1, 0}, 1)

	move, ok := p.Next()
	require.True(t, ok)
	assert.True(t, move.Guess)
	assert.Equal(t, StrategyRandom, move.Strategy)
	assert.NotContains(t, []Cell{{0, 0}, {2, 0}, {0, 1}, {1, 1}, {2, 1}}, move.Cell)
}

// When the frontier holds a near-certain safe cell, prefer it over a
// denser outside.
func TestPlayerPrefersSafeFrontierCell(t *testing.T) {
	p := NewPlayer(4, 4, 7, testRand())
	p.Knowledge.sentences = append(p.Knowledge.sentences,
		NewSentence([]Cell{{0, 0}, {1, 0}, {2, 0}}, 1),
		NewSentence([]Cell{{1, 0}, {2, 0}, {3, 0}}, 2),
	)

	move, ok := p.Next()
	require.True(t, ok)
	assert.Equal(t, StrategyFrontier, move.Strategy)
	assert.Equal(t, Cell{0, 0}, move.Cell)
	assert.Equal(t, 1.0, move.Confidence)
}
