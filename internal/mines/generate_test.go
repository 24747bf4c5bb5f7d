package mines

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomGridKeepsStartingAreaClear(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	params := GameParams{Width: 9, Height: 9, MineCount: 35}

	for range 20 {
		grid := params.randomGrid(4, 4, r)

		mines := 0
		for _, mine := range grid {
			if mine {
				mines++
			}
		}
		assert.Equal(t, 35, mines)

		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				assert.False(t, grid[(4+dy)*9+4+dx], "mine at %d:%d", 4+dx, 4+dy)
			}
		}
	}
}

func TestSolvableGridGeneration(t *testing.T) {
	if testing.Short() {
		t.Skip()
	}

	t.Parallel()

	tests := []struct {
		name   string
		params GameParams
	}{
		{
			name:   "9x9(10)",
			params: GameParams{Width: 9, Height: 9, MineCount: 10, Unique: true},
		},
		{
			name:   "9x9(35)",
			params: GameParams{Width: 9, Height: 9, MineCount: 35, Unique: true},
		},
		{
			name:   "16x16(40)",
			params: GameParams{Width: 16, Height: 16, MineCount: 40, Unique: true},
		},
		{
			name:   "30x16(99)",
			params: GameParams{Width: 30, Height: 16, MineCount: 99, Unique: true},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			r := rand.New(rand.NewPCG(1, 2))
			w, h := test.params.Width, test.params.Height
			starts := [][2]int{
				{0, 0}, {w - 1, 0}, {0, h - 1}, {w - 1, h - 1}, {w / 2, h / 2},
			}
			for _, start := range starts {
				_, err := test.params.newSolvableGrid(start[0], start[1], r)
				if err != nil {
					t.Log(err)
					t.Errorf("could not generate game %s @ %d:%d", test.name, start[0], start[1])
				}
			}
		})
	}
}

// A guess-free grid must be clearable by the solver from the first
// click alone. Replay generated games through SolveStep and check no
// move was ever a guess.
func TestUniqueGameSolvableWithoutGuessing(t *testing.T) {
	if testing.Short() {
		t.Skip()
	}

	t.Parallel()

	params := GameParams{Width: 9, Height: 9, MineCount: 10, Unique: true}
	r := rand.New(rand.NewPCG(3, 4))

	for range 10 {
		game, err := NewGame(&params, 4, 4, r)
		require.NoError(t, err)
		require.False(t, game.Dead)

		for !game.Won && !game.Dead {
			move, ok := game.SolveStep(r)
			require.True(t, ok, "solver stalled:\n%s", game.PlayerGrid.ToString(game.Width))
			assert.False(t, move.Guess, "solver guessed at %s", move.Cell)
		}
		assert.True(t, game.Won)
	}
}

func TestNewGameOpensFirstCell(t *testing.T) {
	params := GameParams{Width: 9, Height: 9, MineCount: 10}
	r := rand.New(rand.NewPCG(5, 6))

	game, err := NewGame(&params, 2, 3, r)
	require.NoError(t, err)
	assert.False(t, game.Dead)
	assert.Equal(t, CellState(0), game.PlayerGrid[3*9+2])
}

func TestNewGameRejectsBadInput(t *testing.T) {
	r := rand.New(rand.NewPCG(5, 6))

	_, err := NewGame(&GameParams{Width: 2, Height: 2, MineCount: 1}, 0, 0, r)
	assert.Error(t, err)

	_, err = NewGame(&GameParams{Width: 9, Height: 9, MineCount: 10}, 9, 0, r)
	assert.Error(t, err)
}
