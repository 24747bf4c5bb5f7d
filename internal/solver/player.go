package solver

import "math/rand/v2"

type MoveType int

const (
	MoveOpen MoveType = iota
	MoveFlag
)

func (t MoveType) String() string {
	switch t {
	case MoveOpen:
		return "open"
	case MoveFlag:
		return "flag"
	default:
		return "?"
	}
}

type Strategy string

const (
	StrategyDeduction Strategy = "deduction"
	StrategyFrontier  Strategy = "frontier"
	StrategyRandom    Strategy = "random"
)

type Move struct {
	Cell
	Type       MoveType
	Strategy   Strategy
	Confidence float64 // probability that the move is correct
	Guess      bool
}

/*
Player picks moves for one game. Observations go in through Observe;
Next returns the best available move, in order of preference:

 1. a cell deduced safe (confidence 1);
 2. a deduced mine that has not been flagged yet (confidence 1);
 3. the undecided cell with the lowest mine probability, taken
    either from frontier enumeration or from the density of the
    remaining mines over the cells no sentence mentions;
 4. a uniformly random undecided cell when nothing is known at all.

Only 3 and 4 are guesses.
*/
type Player struct {
	Knowledge *Knowledge

	mineCount int
	flagged   map[Cell]struct{}
	rnd       *rand.Rand
}

func NewPlayer(width, height, mineCount int, rnd *rand.Rand) *Player {
	return &Player{
		Knowledge: NewKnowledge(width, height),
		mineCount: mineCount,
		flagged:   make(map[Cell]struct{}),
		rnd:       rnd,
	}
}

// Observe feeds back the result of an open move: the cell held
// `count` adjacent mines.
func (p *Player) Observe(c Cell, count int) {
	p.Knowledge.AddCount(c, count)
}

// Flag records a flag that is already on the board so that Next
// does not propose it again.
func (p *Player) Flag(c Cell) {
	p.flagged[c] = struct{}{}
}

// Next returns the player's move, or false when no cell is left to
// play.
func (p *Player) Next() (Move, bool) {
	if c, ok := p.Knowledge.SafeMove(); ok {
		return Move{Cell: c, Type: MoveOpen, Strategy: StrategyDeduction, Confidence: 1}, true
	}

	if c, ok := p.Knowledge.MineMove(p.flagged); ok {
		p.flagged[c] = struct{}{}
		return Move{Cell: c, Type: MoveFlag, Strategy: StrategyDeduction, Confidence: 1}, true
	}

	return p.guess()
}

func (p *Player) guess() (Move, bool) {
	unknown := p.Knowledge.Unknown()
	if len(unknown) == 0 {
		return Move{}, false
	}

	probs, expectedMines := p.Knowledge.Probabilities()

	var (
		best     Cell
		bestProb = 2.0
	)
	for c, prob := range probs {
		if prob < bestProb || (prob == bestProb && (c.Y < best.Y || (c.Y == best.Y && c.X < best.X))) {
			best, bestProb = c, prob
		}
	}

	// Mine density over the cells no sentence mentions.
	outside := unknown[:0:0]
	for _, c := range unknown {
		if _, ok := probs[c]; !ok {
			outside = append(outside, c)
		}
	}
	minesLeft := float64(p.mineCount-len(p.Knowledge.mines)) - expectedMines
	if minesLeft < 0 {
		minesLeft = 0
	}
	if len(outside) > 0 {
		density := minesLeft / float64(len(outside))
		if density < bestProb {
			c := outside[p.rnd.IntN(len(outside))]
			return Move{
				Cell: c, Type: MoveOpen,
				Strategy:   StrategyRandom,
				Confidence: 1 - density,
				Guess:      true,
			}, true
		}
	}

	if bestProb <= 1 {
		return Move{
			Cell: best, Type: MoveOpen,
			Strategy:   StrategyFrontier,
			Confidence: 1 - bestProb,
			Guess:      true,
		}, true
	}

	// No estimate at all; pick blind.
	c := unknown[p.rnd.IntN(len(unknown))]
	return Move{
		Cell: c, Type: MoveOpen,
		Strategy: StrategyRandom,
		Guess:    true,
	}, true
}
