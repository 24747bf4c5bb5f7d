package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sweephq/sweeper/internal/config"
	"github.com/sweephq/sweeper/internal/middleware"
	"github.com/sweephq/sweeper/internal/mines"
	"github.com/sweephq/sweeper/internal/repository"
)

type GameMove string

const (
	Open  GameMove = "o"
	Flag  GameMove = "f"
	Chord GameMove = "c"
)

func ParseGameMove(s string) (GameMove, error) {
	switch m := GameMove(s); m {
	case Open, Flag, Chord:
		return m, nil
	default:
		return "", fmt.Errorf("invalid move %q", s)
	}
}

type Game struct {
	logger *slog.Logger
	repo   *repository.Queries
	ws     *config.WebSocket
	rnd    *rand.Rand
}

func NewGame(
	logger *slog.Logger,
	db *pgxpool.Pool,
	ws *config.WebSocket,
	rnd *rand.Rand,
) *Game {
	return &Game{
		logger: logger,
		repo:   repository.New(db),
		ws:     ws,
		rnd:    rnd,
	}
}

func (g *Game) Create(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	dto, err := ParseCreateGameDTO(query)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, g.logger, wrapError(err))
		return
	}

	gameParams := mines.GameParams(dto)

	pos, err := ParsePosition(query)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, g.logger, wrapError(err))
		return
	}

	if !gameParams.PointInBounds(pos.X, pos.Y) {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, g.logger, wrapError(fmt.Errorf("invalid cell position")))
		return
	}

	if err := gameParams.Validate(); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, g.logger, wrapError(err))
		return
	}

	game, err := mines.NewGame(&gameParams, pos.X, pos.Y, g.rnd)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.Error("unable to generate a new game", "error", err)
		return
	}

	params := repository.CreateGameSessionParams{}
	if claims, ok := middleware.PlayerClaims(r.Context()); ok {
		params.PlayerId = &claims.PlayerId
	}

	session, err := g.repo.CreateGameSession(r.Context(), game, params)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.Error("unable to create game session", "error", err)
		return
	}

	sendJSONOrLog(w, g.logger, sessionDTO(session, game))
}

func (g *Game) fetchSession(w http.ResponseWriter, r *http.Request) (*repository.GameSession, *mines.GameState, bool) {
	sessionId, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return nil, nil, false
	}

	session, err := g.repo.FetchGameSession(r.Context(), sessionId)
	if errors.Is(err, pgx.ErrNoRows) {
		w.WriteHeader(http.StatusNotFound)
		return nil, nil, false
	}
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.Error("unable to fetch session from db", "error", err)
		return nil, nil, false
	}

	game, err := mines.DecodeGameState(session.State)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.Error("db returned invalid game_session.state", "error", err)
		return nil, nil, false
	}

	return session, game, true
}

func (g *Game) saveSession(
	w http.ResponseWriter, r *http.Request,
	session *repository.GameSession, game *mines.GameState,
) bool {
	if (game.Won || game.Dead) && !session.EndedAt.Valid {
		game.RevealMines()
		session.EndedAt.Time = time.Now().UTC()
		session.EndedAt.Valid = true
	}

	buf, err := game.Bytes()
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.Error("unable to serialize game state", "error", err)
		return false
	}

	params := repository.UpdateGameSessionParams{
		State:     &buf,
		Dead:      &game.Dead,
		Won:       &game.Won,
		UsedSolve: &game.UsedSolve,
	}
	if session.EndedAt.Valid {
		params.EndedAt = &session.EndedAt.Time
	}

	if _, err := g.repo.UpdateGameSession(r.Context(), session.GameSessionId, params); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.Error("unable to update session in db", "error", err)
		return false
	}
	return true
}

func (g *Game) Fetch(w http.ResponseWriter, r *http.Request) {
	session, game, ok := g.fetchSession(w, r)
	if !ok {
		return
	}
	sendJSONOrLog(w, g.logger, sessionDTO(session, game))
}

func (g *Game) MakeAMove(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	move, err := ParseGameMove(query.Get("move"))
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, g.logger, wrapError(err))
		return
	}

	pos, err := ParsePosition(query)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, g.logger, wrapError(err))
		return
	}

	session, game, ok := g.fetchSession(w, r)
	if !ok {
		return
	}

	if !game.PointInBounds(pos.X, pos.Y) {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	switch move {
	case Open:
		game.OpenCell(pos.X, pos.Y)
	case Flag:
		game.FlagCell(pos.X, pos.Y)
	case Chord:
		game.ChordCell(pos.X, pos.Y)
	}

	if !g.saveSession(w, r, session, game) {
		return
	}

	sendJSONOrLog(w, g.logger, sessionDTO(session, game))
}

func (g *Game) Forfeit(w http.ResponseWriter, r *http.Request) {
	session, game, ok := g.fetchSession(w, r)
	if !ok {
		return
	}

	game.Forfeit()

	if !g.saveSession(w, r, session, game) {
		return
	}

	sendJSONOrLog(w, g.logger, sessionDTO(session, game))
}

// Hint reports the move the solver would make without applying it.
func (g *Game) Hint(w http.ResponseWriter, r *http.Request) {
	_, game, ok := g.fetchSession(w, r)
	if !ok {
		return
	}

	move, ok := game.Hint(g.rnd)
	if !ok {
		w.WriteHeader(http.StatusConflict)
		sendJSONOrLog(w, g.logger, wrapError(fmt.Errorf("no move available")))
		return
	}

	sendJSONOrLog(w, g.logger, NewMoveDTO(move))
}

// Solve applies one solver move to the game. The session is marked
// as solver-assisted and stops qualifying for highscores.
func (g *Game) Solve(w http.ResponseWriter, r *http.Request) {
	session, game, ok := g.fetchSession(w, r)
	if !ok {
		return
	}

	move, ok := game.SolveStep(g.rnd)
	if !ok {
		w.WriteHeader(http.StatusConflict)
		sendJSONOrLog(w, g.logger, wrapError(fmt.Errorf("no move available")))
		return
	}

	if !g.saveSession(w, r, session, game) {
		return
	}

	sendJSONOrLog(w, g.logger, struct {
		Move    MoveDTO         `json:"move"`
		Session *GameSessionDTO `json:"session"`
	}{NewMoveDTO(move), sessionDTO(session, game)})
}
