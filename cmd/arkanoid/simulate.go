package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-arkanoid/internal/core"
	"github.com/vovakirdan/tui-arkanoid/internal/games/arkanoid"
	"github.com/vovakirdan/tui-arkanoid/internal/storage"
)

var (
	flagTicks     int
	flagAutopilot bool
	flagSave      bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate [layout]",
	Short: "Run a headless game and print the result",
	Long: `Run a game without a terminal, as fast as possible, for at most
--ticks ticks. With --autopilot the paddle chases the lowest falling ball;
without it the paddle never moves.

The same layout, config and --seed always produce the same result and
snapshot hash, which makes this handy for checking physics changes.

Examples:
  arkanoid simulate
  arkanoid simulate pyramid --seed 7
  arkanoid simulate wall --ticks 5000 --autopilot=false
  arkanoid simulate --save --log-level debug`,
	Args: cobra.MaximumNArgs(1),
	Run:  runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagTicks, "ticks", 36000, "Maximum ticks to simulate")
	simulateCmd.Flags().BoolVar(&flagAutopilot, "autopilot", true, "Move the paddle towards the lowest falling ball")
	simulateCmd.Flags().BoolVar(&flagSave, "save", false, "Record the finished run in the database")
}

func runSimulate(_ *cobra.Command, args []string) {
	gameCfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if len(args) > 0 {
		gameCfg.Layout = args[0]
	}

	logger, err := newLogger(os.Stderr, "simulate")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	game, err := arkanoid.New(gameCfg, arkanoid.WithLogger(logger))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	rt := core.DefaultConfig()
	rt.TickRate = flagFPS
	rt.Seed = flagSeed
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}

	start := time.Now()
	game.Reset(rt)

	var state core.GameState
	for range flagTicks {
		in := core.NewInputFrame()
		if flagAutopilot {
			in = game.AutopilotInput()
		}
		state = game.Step(in).State
		if state.GameOver {
			break
		}
	}
	state = game.State()
	snap := game.Snapshot()

	fmt.Printf("Layout:   %s\n", game.Title())
	fmt.Printf("Seed:     %d\n", rt.Seed)
	fmt.Printf("Ticks:    %d (%s at %d fps)\n", game.Tick(), ticksToDuration(game.Tick(), rt.TickRate), rt.TickRate)
	fmt.Printf("Outcome:  %s\n", state.Outcome())
	fmt.Printf("Score:    %d\n", state.Score)
	fmt.Printf("Balls:    %d left\n", state.BallsLeft)
	fmt.Printf("Blocks:   %d left\n", state.BlocksLeft)
	fmt.Printf("Hash:     %016x\n", snap.Hash())
	fmt.Printf("Elapsed:  %s\n", time.Since(start).Round(time.Millisecond))

	if !flagSave || !state.GameOver {
		return
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	id, err := store.SaveRun(storage.Run{
		Layout:  game.ID(),
		Score:   state.Score,
		Outcome: state.Outcome(),
		Ticks:   game.Tick(),
		Seed:    rt.Seed,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error saving run: %v\n", err)
		return
	}
	fmt.Printf("Saved as run #%d\n", id)
}

func ticksToDuration(ticks, rate int) time.Duration {
	return (time.Duration(ticks) * time.Second / time.Duration(max(rate, 1))).Round(time.Millisecond)
}
