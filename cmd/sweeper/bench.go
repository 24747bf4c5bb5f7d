package main

import (
	"context"
	"math/rand/v2"
	"runtime"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"
	"golang.org/x/sync/errgroup"

	"github.com/sweephq/sweeper/internal/mines"
	"github.com/sweephq/sweeper/internal/solver"
)

type BenchCmd struct {
	Games   int    `default:"1000" help:"Number of games to play"`
	Width   int    `default:"16" help:"Grid width"`
	Height  int    `default:"16" help:"Grid height"`
	Mines   int    `default:"40" help:"Number of mines"`
	Unique  bool   `negatable:"" help:"Generate guess-free grids"`
	Workers int    `default:"0" help:"Parallel workers (0 for NumCPU)"`
	Seed    uint64 `default:"0" help:"RNG seed (0 for random)"`
	LogFile string `default:"bench.log" help:"Per-game log destination"`
}

type benchTally struct {
	mu        sync.Mutex
	won       int
	lost      int
	moves     int
	byTactic  map[solver.Strategy]int
	guesses   int
	badLuck   int // lost games where every open was a guess gone wrong
	totalTime time.Duration
}

func (t *benchTally) record(g *mines.GameState, moves []solver.Move, d time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if g.Won {
		t.won++
	} else {
		t.lost++
	}
	t.totalTime += d
	t.moves += len(moves)
	for _, m := range moves {
		t.byTactic[m.Strategy]++
		if m.Guess {
			t.guesses++
		}
	}
	if g.Dead && len(moves) > 0 && moves[len(moves)-1].Guess {
		t.badLuck++
	}
}

func (c *BenchCmd) setupLogging() (*logrus.Logger, error) {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{ForceColors: true})

	hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
		Filename:   c.LogFile,
		MaxSize:    10, // Mb
		MaxBackups: 3,
		MaxAge:     7, // days
		Level:      logrus.DebugLevel,
		Formatter:  &logrus.JSONFormatter{},
	})
	if err != nil {
		return nil, err
	}
	log.AddHook(hook)
	return log, nil
}

func (c *BenchCmd) Run() error {
	params := mines.GameParams{
		Width:     c.Width,
		Height:    c.Height,
		MineCount: c.Mines,
		Unique:    c.Unique,
	}
	if err := params.Validate(); err != nil {
		return err
	}

	log, err := c.setupLogging()
	if err != nil {
		return err
	}

	workers := c.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	master := createRand(c.Seed)
	seeds := make([]uint64, c.Games)
	for i := range seeds {
		seeds[i] = master.Uint64()
	}

	tally := &benchTally{byTactic: make(map[solver.Strategy]int)}

	started := time.Now()
	eg, _ := errgroup.WithContext(context.Background())
	eg.SetLimit(workers)
	for i := range c.Games {
		eg.Go(func() error {
			rnd := rand.New(rand.NewPCG(seeds[i], seeds[i]))
			return c.playOne(log, params, rnd, i, tally)
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}

	winRate := float64(tally.won) / float64(c.Games) * 100
	log.WithFields(logrus.Fields{
		"games":       c.Games,
		"seed":        params.Seed(),
		"won":         tally.won,
		"lost":        tally.lost,
		"winRate":     winRate,
		"moves":       tally.moves,
		"guesses":     tally.guesses,
		"unluckyLoss": tally.badLuck,
		"byStrategy":  tally.byTactic,
		"elapsed":     time.Since(started).Round(time.Millisecond).String(),
	}).Info("bench complete")

	return nil
}

func (c *BenchCmd) playOne(
	log *logrus.Logger,
	params mines.GameParams,
	rnd *rand.Rand,
	n int,
	tally *benchTally,
) error {
	started := time.Now()

	x, y := rnd.IntN(params.Width), rnd.IntN(params.Height)
	game, err := mines.NewGame(&params, x, y, rnd)
	if err != nil {
		return err
	}

	moves := make([]solver.Move, 0, params.Width*params.Height)
	for !game.Won && !game.Dead {
		move, ok := game.SolveStep(rnd)
		if !ok {
			break
		}
		moves = append(moves, move)
	}

	elapsed := time.Since(started)
	tally.record(game, moves, elapsed)

	log.WithFields(logrus.Fields{
		"game":    n,
		"won":     game.Won,
		"moves":   len(moves),
		"elapsed": elapsed.Round(time.Microsecond).String(),
	}).Debug("game finished")

	return nil
}
