package main

import (
	"hash/maphash"
	"math/rand/v2"

	"github.com/alecthomas/kong"
)

type CLI struct {
	Play  PlayCmd  `cmd:"" help:"Play a game in the terminal"`
	Bench BenchCmd `cmd:"" help:"Measure solver performance over many games"`
	Gen   GenCmd   `cmd:"" help:"Generate a grid and print it"`
}

func createRand(seed uint64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(
			new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
		))
	}
	return rand.New(rand.NewPCG(seed, seed))
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("sweeper"),
		kong.Description("Minesweeper in your terminal, with a solver attached"),
		kong.UsageOnError(),
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
