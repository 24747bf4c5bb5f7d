package handlers

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sweephq/sweeper/internal/mines"
)

func wsTestGame() *mines.GameState {
	grid := make([]bool, 9)
	grid[0] = true
	playerGrid := make(mines.Grid, 9)
	for i := range playerGrid {
		playerGrid[i] = mines.Unknown
	}
	return &mines.GameState{
		GameParams: mines.GameParams{Width: 3, Height: 3, MineCount: 1},
		Grid:       grid,
		PlayerGrid: playerGrid,
	}
}

func TestParseXY(t *testing.T) {
	x, y, err := parseXY([]string{"3", "7"})
	require.NoError(t, err)
	assert.Equal(t, 3, x)
	assert.Equal(t, 7, y)

	_, _, err = parseXY([]string{"3"})
	assert.Error(t, err)
	_, _, err = parseXY([]string{"3", "7", "9"})
	assert.Error(t, err)
	_, _, err = parseXY([]string{"x", "7"})
	assert.Error(t, err)
	_, _, err = parseXY([]string{"3", "y"})
	assert.Error(t, err)
}

func TestExecuteCommands(t *testing.T) {
	g := &Game{rnd: rand.New(rand.NewPCG(1, 2))}
	game := wsTestGame()

	require.NoError(t, g.execute(game, "o 1 1"))
	assert.Equal(t, mines.CellState(1), game.PlayerGrid[1*3+1])

	require.NoError(t, g.execute(game, "f 0 0"))
	assert.Equal(t, mines.Flagged, game.PlayerGrid[0])

	require.NoError(t, g.execute(game, "c 1 1"))
	assert.True(t, game.Won)
}

func TestExecuteForfeit(t *testing.T) {
	g := &Game{rnd: rand.New(rand.NewPCG(1, 2))}
	game := wsTestGame()

	require.NoError(t, g.execute(game, "r"))
	assert.True(t, game.Dead)
}

func TestExecuteSolverMove(t *testing.T) {
	g := &Game{rnd: rand.New(rand.NewPCG(1, 2))}
	game := wsTestGame()

	require.NoError(t, g.execute(game, "o 1 1"))
	require.NoError(t, g.execute(game, "h"))
	assert.True(t, game.UsedSolve)
}

func TestExecuteRejectsBadInput(t *testing.T) {
	g := &Game{rnd: rand.New(rand.NewPCG(1, 2))}
	game := wsTestGame()

	assert.Error(t, g.execute(game, "o 9 9"))
	assert.Error(t, g.execute(game, "o one two"))
	assert.Error(t, g.execute(game, "boom"))

	// blank lines and bare state requests are fine
	assert.NoError(t, g.execute(game, ""))
	assert.NoError(t, g.execute(game, "g"))
}
