package mines

import (
	"math/rand/v2"

	"github.com/sweephq/sweeper/internal/solver"
)

// solverPlayer rebuilds a solver's knowledge from the visible side
// of the board. Flags already on the grid are taken as placed so
// the solver will not propose them again.
func (s *GameState) solverPlayer(r *rand.Rand) *solver.Player {
	p := solver.NewPlayer(s.Width, s.Height, s.MineCount, r)
	for y := range s.Height {
		for x := range s.Width {
			switch c := s.PlayerGrid[y*s.Width+x]; {
			case c.Open():
				p.Observe(solver.Cell{X: x, Y: y}, int(c))
			case c == Flagged:
				p.Flag(solver.Cell{X: x, Y: y})
			}
		}
	}
	return p
}

// Hint returns the move the solver would make on the current
// position, without applying it.
func (s *GameState) Hint(r *rand.Rand) (solver.Move, bool) {
	if s.Dead || s.Won {
		return solver.Move{}, false
	}
	return s.solverPlayer(r).Next()
}

// SolveStep applies one solver move to the board and marks the game
// as solver-assisted. Returns the move made.
func (s *GameState) SolveStep(r *rand.Rand) (solver.Move, bool) {
	move, ok := s.Hint(r)
	if !ok {
		return solver.Move{}, false
	}
	s.UsedSolve = true
	switch move.Type {
	case solver.MoveOpen:
		s.OpenCell(move.X, move.Y)
	case solver.MoveFlag:
		if s.PlayerGrid[move.Y*s.Width+move.X] == Unknown {
			s.FlagCell(move.X, move.Y)
		}
	}
	return move, true
}
