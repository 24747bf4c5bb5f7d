package handlers

import (
	"strconv"

	"github.com/gorilla/schema"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/sweephq/sweeper/internal/mines"
	"github.com/sweephq/sweeper/internal/repository"
	"github.com/sweephq/sweeper/internal/solver"
)

type CreateGameDTO struct {
	Width     int  `schema:"width,required"`
	Height    int  `schema:"height,required"`
	MineCount int  `schema:"mine_count,required"`
	Unique    bool `schema:"unique,required"`
}

type PositionDTO struct {
	X int `schema:"x,required"`
	Y int `schema:"y,required"`
}

func newQueryDecoder() *schema.Decoder {
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	return dec
}

func ParseCreateGameDTO(src map[string][]string) (CreateGameDTO, error) {
	var dto CreateGameDTO
	err := newQueryDecoder().Decode(&dto, src)
	return dto, err
}

func ParsePosition(src map[string][]string) (PositionDTO, error) {
	var dto PositionDTO
	err := newQueryDecoder().Decode(&dto, src)
	return dto, err
}

type GameSessionDTO struct {
	GameSessionId string     `json:"game_session_id"`
	Grid          mines.Grid `json:"grid"`
	Width         int        `json:"width"`
	Height        int        `json:"height"`
	MineCount     int        `json:"mine_count"`
	Unique        bool       `json:"unique"`
	Dead          bool       `json:"dead"`
	Won           bool       `json:"won"`
	UsedSolve     bool       `json:"used_solve"`
	StartedAt     int64      `json:"started_at"`
	EndedAt       *int64     `json:"ended_at,omitempty"`
}

func NewGameSessionDTO(
	gameSessionId int64,
	startedAt pgtype.Timestamptz,
	endedAt pgtype.Timestamptz,
	g *mines.GameState,
) *GameSessionDTO {
	var endedAtMs *int64
	if endedAt.Valid {
		ms := endedAt.Time.UnixMilli()
		endedAtMs = &ms
	}
	return &GameSessionDTO{
		GameSessionId: strconv.FormatInt(gameSessionId, 10),
		Grid:          g.PlayerGrid,
		Width:         g.Width,
		Height:        g.Height,
		MineCount:     g.MineCount,
		Unique:        g.Unique,
		Dead:          g.Dead,
		Won:           g.Won,
		UsedSolve:     g.UsedSolve,
		StartedAt:     startedAt.Time.UnixMilli(),
		EndedAt:       endedAtMs,
	}
}

func sessionDTO(session *repository.GameSession, g *mines.GameState) *GameSessionDTO {
	return NewGameSessionDTO(session.GameSessionId, session.StartedAt, session.EndedAt, g)
}

type MoveDTO struct {
	X          int     `json:"x"`
	Y          int     `json:"y"`
	Type       string  `json:"type"`
	Strategy   string  `json:"strategy"`
	Confidence float64 `json:"confidence"`
	Guess      bool    `json:"guess"`
}

func NewMoveDTO(m solver.Move) MoveDTO {
	return MoveDTO{
		X:          m.X,
		Y:          m.Y,
		Type:       m.Type.String(),
		Strategy:   string(m.Strategy),
		Confidence: m.Confidence,
		Guess:      m.Guess,
	}
}
