package mines

import (
	"fmt"
	"math/rand/v2"

	"github.com/sweephq/sweeper/internal/solver"
)

const (
	maxGenAttempts = 250
	maxPerturbs    = 32
)

// mineCtx lets the solver probe a candidate grid during generation
// without building a full GameState for it.
type mineCtx struct {
	grid          []bool
	width, height int
	sx, sy        int
}

func (ctx mineCtx) MineAt(x, y int) bool {
	return ctx.grid[y*ctx.width+x]
}

func (ctx mineCtx) Open(x, y int) int {
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			xx, yy := x+dx, y+dy
			if xx < 0 || xx >= ctx.width || yy < 0 || yy >= ctx.height {
				continue
			}
			if ctx.MineAt(xx, yy) {
				n++
			}
		}
	}
	return n
}

// randomGrid places the mines anywhere except within one cell of the
// starting position.
func (p GameParams) randomGrid(startX, startY int, r *rand.Rand) []bool {
	grid := make([]bool, p.Width*p.Height)

	candidates := make([]int, 0, p.Width*p.Height)
	for y := range p.Height {
		for x := range p.Width {
			if absDiff(startY, y) > 1 || absDiff(startX, x) > 1 {
				candidates = append(candidates, y*p.Width+x)
			}
		}
	}

	k := len(candidates)
	for range p.MineCount {
		i := r.IntN(k)
		grid[candidates[i]] = true
		k--
		candidates[i] = candidates[k]
	}
	return grid
}

/*
newSolvableGrid generates the mine layout for a new game. Without
the Unique flag any random layout avoiding the starting area will
do. With it, the layout must be clearable by the deductive solver
without a single guess: candidate grids are played through by a
solver.Player against the real mines, and a grid on which the player
stalls gets perturbed (one mine relocated across the stuck frontier)
and replayed. A grid that stays unsolvable after too many nudges is
thrown away wholesale.
*/
func (p GameParams) newSolvableGrid(startX, startY int, r *rand.Rand) ([]bool, error) {
	for range maxGenAttempts {
		grid := p.randomGrid(startX, startY, r)
		if !p.Unique {
			return grid, nil
		}

		for range maxPerturbs {
			solved, frontier := p.playThrough(grid, startX, startY, r)
			if solved {
				return grid, nil
			}
			if !p.perturb(grid, frontier, startX, startY, r) {
				break
			}
		}
	}
	return nil, fmt.Errorf("could not generate a field")
}

/*
playThrough runs the solver against a candidate grid from the given
starting cell. It returns solved=true when every safe cell gets
opened without guessing; otherwise it returns the frontier cells the
solver was stuck between.
*/
func (p GameParams) playThrough(grid []bool, startX, startY int, r *rand.Rand) (solved bool, frontier []solver.Cell) {
	ctx := mineCtx{grid: grid, width: p.Width, height: p.Height, sx: startX, sy: startY}
	if ctx.MineAt(startX, startY) {
		panic(AssertionError{"mine in first square"})
	}

	player := solver.NewPlayer(p.Width, p.Height, p.MineCount, r)
	player.Observe(solver.Cell{X: startX, Y: startY}, ctx.Open(startX, startY))

	opened := 1
	safe := p.Width*p.Height - p.MineCount
	for opened < safe {
		move, ok := player.Next()
		if !ok {
			return false, nil
		}
		if move.Guess {
			probs, _ := player.Knowledge.Probabilities()
			for c := range probs {
				frontier = append(frontier, c)
			}
			return false, frontier
		}
		if move.Type == solver.MoveFlag {
			continue
		}
		if ctx.MineAt(move.X, move.Y) {
			panic(AssertionError{"solver opened a mine with full confidence"})
		}
		player.Observe(move.Cell, ctx.Open(move.X, move.Y))
		opened++
	}
	return true, nil
}

/*
perturb nudges a stuck grid towards solvability: it moves one mine
out of the stalled frontier into the undecided area beyond it, or,
when the frontier holds no mines, pulls one in. Counts all over the
grid shift, so the caller replays the grid from scratch afterwards.
Reports whether any change was made.
*/
func (p GameParams) perturb(grid []bool, frontier []solver.Cell, startX, startY int, r *rand.Rand) bool {
	inFrontier := make(map[int]struct{}, len(frontier))
	for _, c := range frontier {
		inFrontier[c.Y*p.Width+c.X] = struct{}{}
	}

	var frontierMines, frontierClear, outsideMines, outsideClear []int
	for i, mine := range grid {
		x, y := i%p.Width, i/p.Width
		if absDiff(startY, y) <= 1 && absDiff(startX, x) <= 1 {
			continue /* keep the starting area clear */
		}
		_, front := inFrontier[i]
		switch {
		case front && mine:
			frontierMines = append(frontierMines, i)
		case front:
			frontierClear = append(frontierClear, i)
		case mine:
			outsideMines = append(outsideMines, i)
		default:
			outsideClear = append(outsideClear, i)
		}
	}

	var from, to []int
	if len(frontierMines) > 0 && len(outsideClear) > 0 {
		from, to = frontierMines, outsideClear
	} else if len(outsideMines) > 0 && len(frontierClear) > 0 {
		from, to = outsideMines, frontierClear
	} else {
		return false
	}

	src := from[r.IntN(len(from))]
	dst := to[r.IntN(len(to))]
	grid[src] = false
	grid[dst] = true
	return true
}

func absDiff(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}
