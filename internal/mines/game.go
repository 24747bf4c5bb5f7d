package mines

import (
	"bytes"
	"encoding/gob"
	"errors"
	"math/rand/v2"
)

type GameState struct {
	Dead, Won, UsedSolve bool
	Grid                 []bool /* real mine locations */
	PlayerGrid           Grid   /* player knowledge */
	GameParams
}

func DecodeGameState(buf []byte) (*GameState, error) {
	var game GameState
	err := gob.NewDecoder(bytes.NewBuffer(buf)).Decode(&game)
	if err != nil {
		return nil, err
	}
	return &game, nil
}

func (s GameState) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	err := gob.NewEncoder(&buf).Encode(s)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// NewGame generates a grid for the given params and opens the first
// cell at x,y. The first cell is never a mine; when params.Unique is
// set the grid is additionally guaranteed to be clearable without
// guessing.
func NewGame(params *GameParams, x, y int, r *rand.Rand) (state *GameState, err error) {
	defer func() {
		var ae AssertionError
		if r := recover(); r != nil {
			if e, ok := r.(error); ok && errors.As(e, &ae) {
				state, err = nil, ae
			} else {
				panic(r)
			}
		}
	}()

	if err := params.Validate(); err != nil {
		return nil, err
	}
	if !params.PointInBounds(x, y) {
		return nil, errors.New("first click out of bounds")
	}

	grid, err := params.newSolvableGrid(x, y, r)
	if err != nil {
		return nil, err
	}
	playerGrid := make(Grid, len(grid))
	for i := range playerGrid {
		playerGrid[i] = Unknown
	}
	state = &GameState{
		GameParams: *params,
		Grid:       grid,
		PlayerGrid: playerGrid,
	}
	if state.OpenCell(x, y) != 0 {
		return nil, AssertionError{"mine in starting cell"}
	}
	return state, nil
}

// NearbyMines counts the mines within one row and column of x,y, not
// including the cell itself.
func (s GameState) NearbyMines(x, y int) int {
	count := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			xx, yy := x+dx, y+dy
			if s.PointInBounds(xx, yy) && s.Grid[yy*s.Width+xx] {
				count++
			}
		}
	}
	return count
}

// OpenCell opens the cell at x,y. Returns -1 when the cell held a
// mine (the game is lost), 0 otherwise. Opening a zero-count cell
// floods outward through its neighbors.
func (s *GameState) OpenCell(x, y int) int {
	if s.Dead || s.Won {
		return 0
	}
	i := y*s.Width + x
	if s.Grid[i] {
		/*
		 * The player has landed on a mine. Bad luck. Expose the
		 * mine that killed them, but not the rest.
		 */
		s.Dead = true
		s.PlayerGrid[i] = ExplodedMine
		return -1
	}

	/*
	 * The player has opened a safe cell. Reveal its count, and keep
	 * a queue of cells to flood outward from: every opened cell
	 * with no neighboring mines opens all of its covered neighbors.
	 */
	queue := []int{i}
	s.PlayerGrid[i] = CellState(s.NearbyMines(x, y))
	for len(queue) > 0 {
		j := queue[0]
		queue = queue[1:]
		if s.PlayerGrid[j] != 0 {
			continue
		}
		jx, jy := j%s.Width, j/s.Width
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				xx, yy := jx+dx, jy+dy
				if !s.PointInBounds(xx, yy) {
					continue
				}
				jj := yy*s.Width + xx
				if s.PlayerGrid[jj] == Unknown {
					s.PlayerGrid[jj] = CellState(s.NearbyMines(xx, yy))
					queue = append(queue, jj)
				}
			}
		}
	}

	/*
	 * Scan the grid and see if exactly as many cells are still
	 * covered as there are mines. If so the game is won; fill in
	 * mine markers on all covered cells.
	 */
	var nmines, ncovered int
	for j := range s.Grid {
		if !s.PlayerGrid[j].Open() {
			ncovered++
		}
		if s.Grid[j] {
			nmines++
		}
	}
	if ncovered == nmines {
		for j := range s.Grid {
			if s.PlayerGrid[j] == Unknown || s.PlayerGrid[j] == Question {
				s.PlayerGrid[j] = UnflaggedMine
			}
		}
		s.Won = true
	}

	return 0
}

// FlagCell toggles a flag on a covered cell.
func (s *GameState) FlagCell(x, y int) {
	i := y*s.Width + x
	if s.PlayerGrid[i] == Unknown {
		s.PlayerGrid[i] = Flagged
	} else if s.PlayerGrid[i] == Flagged {
		s.PlayerGrid[i] = Unknown
	}
}

// ChordCell opens every unflagged neighbor of an open cell whose
// flag count matches its mine count.
func (s *GameState) ChordCell(x, y int) {
	i := y*s.Width + x
	if !s.PlayerGrid[i].Open() {
		return
	}
	c := int(s.PlayerGrid[i])
	js := make([]int, 0, 8)
	m := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			xx, yy := x+dx, y+dy
			if !s.PointInBounds(xx, yy) {
				continue
			}
			j := yy*s.Width + xx
			if s.PlayerGrid[j] == Flagged {
				m++
			} else if s.PlayerGrid[j] == Unknown {
				js = append(js, j)
			}
		}
	}
	if c == m {
		for _, j := range js {
			s.OpenCell(j%s.Width, j/s.Width)
			if s.Dead || s.Won {
				return
			}
		}
	}
}

// Forfeit ends the game as a loss and reveals the grid.
func (s *GameState) Forfeit() {
	if !(s.Dead || s.Won) {
		s.Dead = true
	}
	s.RevealMines()
}

// RevealMines exposes the full grid once the game is over, grading
// the player's flags along the way.
func (s *GameState) RevealMines() {
	if !(s.Dead || s.Won) {
		s.Dead = true
	}
	for i := range s.Grid {
		switch s.PlayerGrid[i] {
		case Flagged:
			if s.Grid[i] {
				s.PlayerGrid[i] = CorrectlyFlagged
			} else {
				s.PlayerGrid[i] = FalselyFlagged
			}
		case Unknown, Question:
			if s.Grid[i] {
				s.PlayerGrid[i] = UnflaggedMine
			} else {
				s.PlayerGrid[i] = CellState(s.NearbyMines(i%s.Width, i/s.Width))
			}
		}
	}
}
