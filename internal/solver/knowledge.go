package solver

import "sort"

/*
Knowledge is the player's view of one board: which cells have been
played, which are known safe or known mines, and the sentences that
are still undecided. Counts reported by the board go in through
AddCount; deductions come out through SafeMove and MineMove.
*/
type Knowledge struct {
	width, height int

	moves map[Cell]struct{}
	safes map[Cell]struct{}
	mines map[Cell]struct{}

	sentences []*Sentence
}

func NewKnowledge(width, height int) *Knowledge {
	return &Knowledge{
		width:  width,
		height: height,
		moves:  make(map[Cell]struct{}),
		safes:  make(map[Cell]struct{}),
		mines:  make(map[Cell]struct{}),
	}
}

func (k *Knowledge) Width() int  { return k.width }
func (k *Knowledge) Height() int { return k.height }

func (k *Knowledge) Played(c Cell) bool {
	_, ok := k.moves[c]
	return ok
}

func (k *Knowledge) IsSafe(c Cell) bool {
	_, ok := k.safes[c]
	return ok
}

func (k *Knowledge) IsMine(c Cell) bool {
	_, ok := k.mines[c]
	return ok
}

// MineCells returns every deduced mine in row-major order.
func (k *Knowledge) MineCells() []Cell {
	return sortedCells(k.mines)
}

// MarkSafe records that a cell is known to contain no mine and
// rewrites every sentence accordingly.
func (k *Knowledge) MarkSafe(c Cell) {
	k.safes[c] = struct{}{}
	for _, s := range k.sentences {
		s.MarkSafe(c)
	}
}

// MarkMine records that a cell is known to be a mine and rewrites
// every sentence accordingly.
func (k *Knowledge) MarkMine(c Cell) {
	k.mines[c] = struct{}{}
	for _, s := range k.sentences {
		s.MarkMine(c)
	}
}

// Neighbors returns the in-bounds cells within one row and column of
// c, excluding c itself.
func (k *Knowledge) Neighbors(c Cell) []Cell {
	neighbors := make([]Cell, 0, 8)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			n := Cell{c.X + dx, c.Y + dy}
			if n.X < 0 || n.X >= k.width || n.Y < 0 || n.Y >= k.height {
				continue
			}
			neighbors = append(neighbors, n)
		}
	}
	return neighbors
}

/*
AddCount feeds one observation into the knowledge base: the cell has
been opened and has `count` mines among its neighbors. The cell is
recorded as played and safe, a sentence is built from its undecided
neighbors, and deduction runs to a fixpoint.
*/
func (k *Knowledge) AddCount(c Cell, count int) {
	k.moves[c] = struct{}{}
	k.MarkSafe(c)

	cells := make([]Cell, 0, 8)
	for _, n := range k.Neighbors(c) {
		if k.IsMine(n) {
			count--
			continue
		}
		if k.IsSafe(n) {
			continue
		}
		cells = append(cells, n)
	}
	if len(cells) > 0 {
		k.sentences = append(k.sentences, NewSentence(cells, count))
	}

	k.propagate()
}

/*
propagate repeats two deduction steps until neither changes anything:

 1. any sentence whose count is zero or equal to its cardinality
    resolves all of its cells as safe or mines;

 2. for any pair of sentences where one is a strict subset of the
    other, their difference is a new sentence.
*/
func (k *Knowledge) propagate() {
	for {
		changed := false

		for _, s := range k.sentences {
			for _, c := range s.KnownSafes() {
				k.MarkSafe(c)
				changed = true
			}
			for _, c := range s.KnownMines() {
				k.MarkMine(c)
				changed = true
			}
		}

		k.dropEmpty()

		for _, s1 := range k.sentences {
			for _, s2 := range k.sentences {
				if s1 == s2 || s1.Len() == 0 || s2.Len() == 0 {
					continue
				}
				if !s2.subsetOf(s1) || s2.Len() == s1.Len() {
					continue
				}
				diff := s2.minus(s1)
				if !k.hasSentence(diff) {
					k.sentences = append(k.sentences, diff)
					changed = true
				}
			}
		}

		if !changed {
			return
		}
	}
}

func (k *Knowledge) dropEmpty() {
	kept := k.sentences[:0]
	for _, s := range k.sentences {
		if s.Len() > 0 {
			kept = append(kept, s)
		}
	}
	k.sentences = kept
}

func (k *Knowledge) hasSentence(s *Sentence) bool {
	for _, other := range k.sentences {
		if s.equal(other) {
			return true
		}
	}
	return false
}

// SafeMove returns a cell known to be safe that has not been played
// yet, preferring the lowest row-major position for determinism.
func (k *Knowledge) SafeMove() (Cell, bool) {
	for _, c := range sortedCells(k.safes) {
		if !k.Played(c) {
			return c, true
		}
	}
	return Cell{}, false
}

// MineMove returns a deduced mine not present in `skip`, preferring
// the lowest row-major position.
func (k *Knowledge) MineMove(skip map[Cell]struct{}) (Cell, bool) {
	for _, c := range sortedCells(k.mines) {
		if _, ok := skip[c]; !ok {
			return c, true
		}
	}
	return Cell{}, false
}

// Unknown returns every cell that is neither played nor deduced, in
// row-major order.
func (k *Knowledge) Unknown() []Cell {
	unknown := make([]Cell, 0, k.width*k.height)
	for y := range k.height {
		for x := range k.width {
			c := Cell{x, y}
			if k.Played(c) || k.IsSafe(c) || k.IsMine(c) {
				continue
			}
			unknown = append(unknown, c)
		}
	}
	return unknown
}

func sortedCells(set map[Cell]struct{}) []Cell {
	cells := make([]Cell, 0, len(set))
	for c := range set {
		cells = append(cells, c)
	}
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].Y != cells[j].Y {
			return cells[i].Y < cells[j].Y
		}
		return cells[i].X < cells[j].X
	})
	return cells
}
