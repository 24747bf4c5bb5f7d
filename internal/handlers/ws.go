package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/websocket"

	"github.com/sweephq/sweeper/internal/mines"
	"github.com/sweephq/sweeper/internal/repository"
)

/*
Websocket play protocol: the client sends text frames of
newline-separated commands, the server answers each frame with the
session state as JSON.

	g          no-op, fetch state
	o <x> <y>  open a cell
	f <x> <y>  toggle a flag
	c <x> <y>  chord an open cell
	h          let the solver make one move
	r          forfeit
*/
type wsCommand string

const (
	wsNoop    wsCommand = "g"
	wsOpen    wsCommand = "o"
	wsFlag    wsCommand = "f"
	wsChord   wsCommand = "c"
	wsHint    wsCommand = "h"
	wsForfeit wsCommand = "r"
)

func parseXY(args []string) (x int, y int, err error) {
	if len(args) != 2 {
		err = fmt.Errorf("expected two arguments")
		return
	}
	if x, err = strconv.Atoi(args[0]); err != nil {
		err = fmt.Errorf("first argument must be an int")
		return
	}
	if y, err = strconv.Atoi(args[1]); err != nil {
		err = fmt.Errorf("second argument must be an int")
		return
	}
	return
}

func (g *Game) execute(game *mines.GameState, line string) error {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return nil
	}
	cmd, args := wsCommand(tokens[0]), tokens[1:]
	switch cmd {
	case wsNoop:
		return nil
	case wsOpen, wsFlag, wsChord:
		x, y, err := parseXY(args)
		if err != nil {
			return err
		}
		if !game.PointInBounds(x, y) {
			return fmt.Errorf("invalid cell coordinates")
		}
		switch cmd {
		case wsOpen:
			game.OpenCell(x, y)
		case wsFlag:
			game.FlagCell(x, y)
		case wsChord:
			game.ChordCell(x, y)
		}
		return nil
	case wsHint:
		game.SolveStep(g.rnd)
		return nil
	case wsForfeit:
		game.Forfeit()
		return nil
	default:
		return fmt.Errorf("unknown command %q", tokens[0])
	}
}

func (g *Game) ConnectWS(w http.ResponseWriter, r *http.Request) {
	session, game, ok := g.fetchSession(w, r)
	if !ok {
		return
	}

	conn, err := g.ws.Upgrader.Upgrade(w, r, nil) // headers sent here
	if err != nil {
		g.logger.Error("unable to upgrade", "error", err)
		return
	}
	defer conn.Close()

	if err := g.runGameLoop(r, conn, session, game); err != nil {
		if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
			return
		}
		g.logger.Warn("ws loop ended", "error", err)
	}
}

func (g *Game) runGameLoop(
	r *http.Request,
	conn *websocket.Conn,
	session *repository.GameSession,
	game *mines.GameState,
) error {
	for {
		mt, buf, err := conn.ReadMessage()
		if err != nil {
			return err
		}
		if mt != websocket.TextMessage {
			return nil
		}

		for _, line := range strings.Split(strings.TrimSpace(string(buf)), "\n") {
			if err := g.execute(game, strings.TrimSpace(line)); err != nil {
				return err
			}
			if game.Won || game.Dead {
				break
			}
		}

		if !g.saveSessionWS(r, session, game) {
			return fmt.Errorf("unable to save session")
		}

		if err := conn.WriteJSON(sessionDTO(session, game)); err != nil {
			return fmt.Errorf("unable to write json: %w", err)
		}
	}
}

// saveSessionWS mirrors saveSession without an http.ResponseWriter
// to report into; errors only get logged.
func (g *Game) saveSessionWS(
	r *http.Request, session *repository.GameSession, game *mines.GameState,
) bool {
	if (game.Won || game.Dead) && !session.EndedAt.Valid {
		game.RevealMines()
		session.EndedAt.Time = time.Now().UTC()
		session.EndedAt.Valid = true
	}

	buf, err := game.Bytes()
	if err != nil {
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
		g.logger.Error("unable to update session in db", "error", err)
		return false
	}
	return true
}
