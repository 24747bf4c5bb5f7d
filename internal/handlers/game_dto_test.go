package handlers

import (
	"net/url"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sweephq/sweeper/internal/mines"
	"github.com/sweephq/sweeper/internal/solver"
)

func TestParseCreateGameDTO(t *testing.T) {
	query := url.Values{
		"width":      {"9"},
		"height":     {"9"},
		"mine_count": {"10"},
		"unique":     {"true"},
		"x":          {"4"}, // unknown keys are ignored
		"y":          {"4"},
	}

	dto, err := ParseCreateGameDTO(query)
	require.NoError(t, err)
	assert.Equal(t, CreateGameDTO{Width: 9, Height: 9, MineCount: 10, Unique: true}, dto)
}

func TestParseCreateGameDTOMissingField(t *testing.T) {
	query := url.Values{
		"width":  {"9"},
		"height": {"9"},
	}

	_, err := ParseCreateGameDTO(query)
	assert.Error(t, err)
}

func TestParsePosition(t *testing.T) {
	dto, err := ParsePosition(url.Values{"x": {"3"}, "y": {"7"}})
	require.NoError(t, err)
	assert.Equal(t, PositionDTO{X: 3, Y: 7}, dto)

	_, err = ParsePosition(url.Values{"x": {"3"}})
	assert.Error(t, err)

	_, err = ParsePosition(url.Values{"x": {"three"}, "y": {"7"}})
	assert.Error(t, err)
}

func TestParseGameMove(t *testing.T) {
	for s, want := range map[string]GameMove{"o": Open, "f": Flag, "c": Chord} {
		move, err := ParseGameMove(s)
		require.NoError(t, err)
		assert.Equal(t, want, move)
	}

	for _, s := range []string{"", "open", "x"} {
		_, err := ParseGameMove(s)
		assert.Error(t, err, "move %q", s)
	}
}

func TestNewGameSessionDTO(t *testing.T) {
	game := &mines.GameState{
		GameParams: mines.GameParams{Width: 4, Height: 4, MineCount: 2, Unique: true},
		Grid:       make([]bool, 16),
		PlayerGrid: make(mines.Grid, 16),
		Won:        true,
	}

	started := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	ended := started.Add(42 * time.Second)

	dto := NewGameSessionDTO(
		17,
		pgtype.Timestamptz{Time: started, Valid: true},
		pgtype.Timestamptz{Time: ended, Valid: true},
		game,
	)

	assert.Equal(t, "17", dto.GameSessionId)
	assert.True(t, dto.Won)
	assert.Equal(t, started.UnixMilli(), dto.StartedAt)
	require.NotNil(t, dto.EndedAt)
	assert.Equal(t, ended.UnixMilli(), *dto.EndedAt)
}

func TestNewGameSessionDTOUnfinished(t *testing.T) {
	game := &mines.GameState{
		GameParams: mines.GameParams{Width: 4, Height: 4, MineCount: 2},
		Grid:       make([]bool, 16),
		PlayerGrid: make(mines.Grid, 16),
	}

	dto := NewGameSessionDTO(
		1,
		pgtype.Timestamptz{Time: time.Now(), Valid: true},
		pgtype.Timestamptz{},
		game,
	)

	assert.Nil(t, dto.EndedAt)
	assert.False(t, dto.UsedSolve)
}

func TestNewMoveDTO(t *testing.T) {
	dto := NewMoveDTO(solver.Move{
		Cell:       solver.Cell{X: 2, Y: 5},
		Type:       solver.MoveFlag,
		Strategy:   solver.StrategyDeduction,
		Confidence: 1,
	})

	assert.Equal(t, MoveDTO{
		X: 2, Y: 5,
		Type:       "flag",
		Strategy:   "deduction",
		Confidence: 1,
	}, dto)
}
