package main

import (
	"fmt"
	"strings"

	"github.com/sweephq/sweeper/internal/mines"
)

type GenCmd struct {
	Width  int    `default:"9" help:"Grid width"`
	Height int    `default:"9" help:"Grid height"`
	Mines  int    `default:"10" help:"Number of mines"`
	Unique bool   `default:"true" negatable:"" help:"Guarantee the grid is solvable without guessing"`
	Seed   uint64 `default:"0" help:"RNG seed (0 for random)"`
	Reveal bool   `help:"Print mine locations instead of the starting position"`
}

func (c *GenCmd) Run() error {
	params := mines.GameParams{
		Width:     c.Width,
		Height:    c.Height,
		MineCount: c.Mines,
		Unique:    c.Unique,
	}
	if err := params.Validate(); err != nil {
		return err
	}

	x, y := c.Width/2, c.Height/2
	game, err := mines.NewGame(&params, x, y, createRand(c.Seed))
	if err != nil {
		return err
	}

	fmt.Println(params.Seed())
	if c.Reveal {
		fmt.Print(revealedView(game))
	} else {
		fmt.Print(game.PlayerGrid.ToString(game.Width))
	}
	return nil
}

func revealedView(g *mines.GameState) string {
	var b strings.Builder
	for y := range g.Height {
		for x := range g.Width {
			if g.Grid[y*g.Width+x] {
				b.WriteString("* ")
			} else {
				fmt.Fprintf(&b, "%d ", g.NearbyMines(x, y))
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}
