package mines

import (
	"fmt"
	"strings"
)

type GameParams struct {
	Width, Height, MineCount int
	Unique                   bool
}

func (p GameParams) Unpack() (w int, h int, mc int, u bool) {
	return p.Width, p.Height, p.MineCount, p.Unique
}

func (p GameParams) Seed() string {
	u := 0
	if p.Unique {
		u = 1
	}
	return fmt.Sprintf("%d:%d:%d:%d", p.Width, p.Height, p.MineCount, u)
}

func ParseSeed(seed string) (*GameParams, error) {
	p := &GameParams{}
	u := 0
	sseed := strings.ReplaceAll(seed, ":", " ")
	n, err := fmt.Sscanf(
		sseed, "%d %d %d %d", &p.Width, &p.Height, &p.MineCount, &u,
	)
	if n != 4 || err != nil {
		return nil, fmt.Errorf(
			`invalid game params seed (sseed = "%s", n = %d, err = %w)`,
			sseed, n, err,
		)
	}
	p.Unique = u == 1
	return p, nil
}

func (p GameParams) Validate() error {
	if p.Width < 3 || p.Height < 3 {
		return fmt.Errorf("board must be at least 3x3")
	}
	if p.MineCount < 1 {
		return fmt.Errorf("board must have at least 1 mine")
	}
	// The first click clears up to a 3x3 area, which must stay
	// mine-free.
	if p.MineCount > p.Width*p.Height-9 {
		return fmt.Errorf(
			"too many mines for a %dx%d board (max %d)",
			p.Width, p.Height, p.Width*p.Height-9,
		)
	}
	return nil
}

func (p GameParams) PointInBounds(x, y int) bool {
	return 0 <= x && x < p.Width && 0 <= y && y < p.Height
}
