package solver

import (
	"fmt"
	"sort"
	"strings"
)

type Cell struct {
	X, Y int
}

func (c Cell) String() string {
	return fmt.Sprintf("%d:%d", c.X, c.Y)
}

/*
A sentence is a logical statement about the board: out of this set of
cells, exactly `count` are mines. Every deduction the player makes is
a rewrite of one or more sentences.
*/
type Sentence struct {
	cells map[Cell]struct{}
	count int
}

func NewSentence(cells []Cell, count int) *Sentence {
	s := &Sentence{
		cells: make(map[Cell]struct{}, len(cells)),
		count: count,
	}
	for _, c := range cells {
		s.cells[c] = struct{}{}
	}
	return s
}

func (s Sentence) Count() int { return s.count }

func (s Sentence) Len() int { return len(s.cells) }

func (s Sentence) Contains(c Cell) bool {
	_, ok := s.cells[c]
	return ok
}

// Cells returns the cells of the sentence in row-major order.
func (s Sentence) Cells() []Cell {
	cells := make([]Cell, 0, len(s.cells))
	for c := range s.cells {
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

// KnownMines reports every cell of the sentence when all of them
// must be mines, i.e. the mine count equals the cardinality.
func (s Sentence) KnownMines() []Cell {
	if len(s.cells) > 0 && s.count == len(s.cells) {
		return s.Cells()
	}
	return nil
}

// KnownSafes reports every cell of the sentence when none of them
// can be a mine.
func (s Sentence) KnownSafes() []Cell {
	if len(s.cells) > 0 && s.count == 0 {
		return s.Cells()
	}
	return nil
}

// MarkMine removes a cell known to be a mine, decrementing the count.
// Reports whether the sentence changed.
func (s *Sentence) MarkMine(c Cell) bool {
	if _, ok := s.cells[c]; !ok {
		return false
	}
	delete(s.cells, c)
	s.count--
	return true
}

// MarkSafe removes a cell known to be safe. Reports whether the
// sentence changed.
func (s *Sentence) MarkSafe(c Cell) bool {
	if _, ok := s.cells[c]; !ok {
		return false
	}
	delete(s.cells, c)
	return true
}

// subsetOf reports whether every cell of s belongs to other.
func (s Sentence) subsetOf(other *Sentence) bool {
	if len(s.cells) > len(other.cells) {
		return false
	}
	for c := range s.cells {
		if _, ok := other.cells[c]; !ok {
			return false
		}
	}
	return true
}

// minus returns the sentence (other − s, count(other) − count(s)).
// Only meaningful when s is a subset of other.
func (s Sentence) minus(other *Sentence) *Sentence {
	diff := &Sentence{
		cells: make(map[Cell]struct{}, len(other.cells)-len(s.cells)),
		count: other.count - s.count,
	}
	for c := range other.cells {
		if _, ok := s.cells[c]; !ok {
			diff.cells[c] = struct{}{}
		}
	}
	return diff
}

func (s Sentence) equal(other *Sentence) bool {
	if s.count != other.count || len(s.cells) != len(other.cells) {
		return false
	}
	for c := range s.cells {
		if _, ok := other.cells[c]; !ok {
			return false
		}
	}
	return true
}

func (s Sentence) String() string {
	var b strings.Builder
	for i, c := range s.Cells() {
		if i > 0 {
			fmt.Fprint(&b, " ")
		}
		fmt.Fprint(&b, c.String())
	}
	return fmt.Sprintf("{%s} = %d", b.String(), s.count)
}
