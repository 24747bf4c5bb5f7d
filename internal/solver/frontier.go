package solver

/*
When deduction stalls the remaining sentences still constrain the
frontier (the undecided cells adjacent to revealed counts). The
frontier splits into segments that share no cells; each segment is
small enough to enumerate every mine assignment consistent with its
sentences and count, per cell, in how many assignments it is a mine.
*/

// Segments larger than this are not enumerated; 2^20 assignments is
// where the search stops being interactive.
const maxSegmentSize = 20

type constraint struct {
	cells []int // indexes into segment.cells
	mines int
}

type segment struct {
	cells       []Cell
	constraints []constraint
}

// segments partitions the cells of the current sentences into
// connected components, two cells being connected when some sentence
// contains both.
func (k *Knowledge) segments() []*segment {
	index := make(map[Cell]int)
	parent := make([]int, 0)

	var find func(int) int
	find = func(i int) int {
		if parent[i] != i {
			parent[i] = find(parent[i])
		}
		return parent[i]
	}
	union := func(a, b int) {
		ra, rb := find(a), find(b)
		if ra != rb {
			parent[rb] = ra
		}
	}

	for _, s := range k.sentences {
		cells := s.Cells()
		var first int
		for i, c := range cells {
			j, ok := index[c]
			if !ok {
				j = len(parent)
				index[c] = j
				parent = append(parent, j)
			}
			if i == 0 {
				first = j
			} else {
				union(first, j)
			}
		}
	}

	byRoot := make(map[int]*segment)
	local := make(map[Cell]int)
	for _, c := range sortedCells(cellSet(index)) {
		root := find(index[c])
		seg, ok := byRoot[root]
		if !ok {
			seg = &segment{}
			byRoot[root] = seg
		}
		local[c] = len(seg.cells)
		seg.cells = append(seg.cells, c)
	}

	for _, s := range k.sentences {
		cells := s.Cells()
		if len(cells) == 0 {
			continue
		}
		seg := byRoot[find(index[cells[0]])]
		con := constraint{cells: make([]int, len(cells)), mines: s.Count()}
		for i, c := range cells {
			con.cells[i] = local[c]
		}
		seg.constraints = append(seg.constraints, con)
	}

	segments := make([]*segment, 0, len(byRoot))
	for _, c := range sortedCells(cellSet(index)) {
		root := find(index[c])
		if seg := byRoot[root]; seg != nil {
			segments = append(segments, seg)
			byRoot[root] = nil
		}
	}
	return segments
}

func cellSet(index map[Cell]int) map[Cell]struct{} {
	set := make(map[Cell]struct{}, len(index))
	for c := range index {
		set[c] = struct{}{}
	}
	return set
}

// enumerate counts, for every cell of the segment, the number of
// mine assignments satisfying all constraints in which that cell is
// a mine. Also returns the total number of assignments and the total
// number of mines summed over them.
func (seg *segment) enumerate() (perCell []int, total int, minesTotal int) {
	perCell = make([]int, len(seg.cells))
	assignment := make([]bool, len(seg.cells))

	var rec func(i, placed int)
	rec = func(i, placed int) {
		if !seg.feasible(assignment, i) {
			return
		}
		if i == len(seg.cells) {
			if !seg.satisfied(assignment) {
				return
			}
			total++
			minesTotal += placed
			for j, mine := range assignment {
				if mine {
					perCell[j]++
				}
			}
			return
		}

		assignment[i] = true
		rec(i+1, placed+1)
		assignment[i] = false
		rec(i+1, placed)
	}
	rec(0, 0)
	return perCell, total, minesTotal
}

// feasible prunes partial assignments: a constraint already over its
// mine count, or with too few undecided cells left to reach it, can
// never be satisfied.
func (seg *segment) feasible(assignment []bool, decided int) bool {
	for _, con := range seg.constraints {
		mines, open := 0, 0
		for _, i := range con.cells {
			if i >= decided {
				open++
			} else if assignment[i] {
				mines++
			}
		}
		if mines > con.mines || mines+open < con.mines {
			return false
		}
	}
	return true
}

func (seg *segment) satisfied(assignment []bool) bool {
	for _, con := range seg.constraints {
		mines := 0
		for _, i := range con.cells {
			if assignment[i] {
				mines++
			}
		}
		if mines != con.mines {
			return false
		}
	}
	return true
}

/*
Probabilities estimates the chance that each undecided frontier cell
is a mine, and returns alongside it the expected number of mines the
frontier holds in total. Oversized segments are skipped; their cells
simply get no estimate.
*/
func (k *Knowledge) Probabilities() (probs map[Cell]float64, expectedMines float64) {
	probs = make(map[Cell]float64)
	for _, seg := range k.segments() {
		if len(seg.cells) > maxSegmentSize {
			continue
		}
		perCell, total, minesTotal := seg.enumerate()
		if total == 0 {
			continue // contradictory knowledge, nothing to say
		}
		for i, c := range seg.cells {
			probs[c] = float64(perCell[i]) / float64(total)
		}
		expectedMines += float64(minesTotal) / float64(total)
	}
	return probs, expectedMines
}
