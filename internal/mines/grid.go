package mines

import (
	"fmt"
	"strconv"
	"strings"
)

type CellState int8

const (
	Question CellState = -3
	Unknown  CellState = -2
	Flagged  CellState = -1
	/*
	 * Values 0 to 8 mean the cell is open with that many mined
	 * neighbors. The values below only appear once the game is
	 * over and the grid has been revealed.
	 */
	CorrectlyFlagged CellState = 64
	ExplodedMine     CellState = 65
	FalselyFlagged   CellState = 66
	UnflaggedMine    CellState = 67
)

func (s CellState) Open() bool {
	return 0 <= s && s <= 8
}

func (s CellState) String() string {
	switch {
	case s == Question:
		return "?"
	case s == Unknown:
		return " "
	case s == Flagged:
		return "*"
	case s.Open():
		return strconv.Itoa(int(s))
	default:
		return "!"
	}
}

// Grid is the player's view of the board in row-major order.
type Grid []CellState

func (g Grid) ToString(width int) string {
	var b strings.Builder
	for y := range len(g) / width {
		for x := range width {
			i := y*width + x
			if i >= len(g) {
				break
			}
			fmt.Fprint(&b, g[i].String()+" ")
		}
		fmt.Fprint(&b, "\n")
	}
	return b.String()
}
