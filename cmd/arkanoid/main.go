// arkanoid is a terminal Arkanoid: a ball-and-paddle game played in the
// terminal or over SSH.
//
// Usage:
//
//	arkanoid layouts            - List available layouts
//	arkanoid play [layout]      - Play a layout
//	arkanoid menu               - Pick layouts interactively
//	arkanoid simulate [layout]  - Run a headless game and print the result
//	arkanoid serve              - Start SSH server for remote play
//	arkanoid scores <layout>    - Show best runs for a layout
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible games
//	--db <path>          - Set database path (default: ~/.arkanoid/runs.db)
//	--config <path>      - Custom game config YAML
//	--difficulty <name>  - Difficulty preset: easy, normal, hard, fixed
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-arkanoid/internal/config"
	"github.com/vovakirdan/tui-arkanoid/internal/games/arkanoid"
	"github.com/vovakirdan/tui-arkanoid/internal/platform/tui"
	"github.com/vovakirdan/tui-arkanoid/internal/registry"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arkanoid",
	Short: "Arkanoid - Break bricks in your terminal",
	Long: `Arkanoid is a terminal ball-and-paddle game. Balls bounce around a
walled field; a ball breaks a brick of another color and takes on its
color. Clear every brick for a bonus, lose every ball and the run ends.

Available commands:
  layouts  - Show all available layouts
  play     - Play a layout directly
  menu     - Interactive layout picker
  simulate - Run a headless game with an autopilot
  serve    - Start SSH server for remote play
  scores   - View best runs

Examples:
  arkanoid layouts
  arkanoid play classic
  arkanoid menu
  arkanoid simulate pyramid --ticks 20000 --seed 7
  arkanoid serve --ssh :2222
  arkanoid scores classic`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arkanoid/runs.db", "Path to runs database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write game logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(layoutsCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig reads the game config and applies the difficulty preset.
func loadConfig() (config.ArkanoidConfig, error) {
	cfg, err := config.LoadArkanoid(flagConfig)
	if err != nil {
		return cfg, err
	}

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return cfg, err
	}
	config.ApplyArkanoidPreset(&cfg, preset)
	return cfg, cfg.Validate()
}

// newLogger builds a logger writing to w at the --log-level.
func newLogger(w io.Writer, prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("bad --log-level: %w", err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	}), nil
}

// fileLogger logs to --log-file, or nowhere when it is unset. The terminal
// belongs to the game, so interactive commands never log to stderr. The
// returned close func is never nil.
func fileLogger() (*log.Logger, func(), error) {
	if flagLogFile == "" {
		return log.New(io.Discard), func() {}, nil
	}

	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	logger, err := newLogger(f, "arkanoid")
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	return logger, func() { f.Close() }, nil
}

// gameFactory builds games for any registered layout from one config.
func gameFactory(cfg config.ArkanoidConfig, logger *log.Logger) tui.GameFactory {
	return func(layoutID string) (registry.Game, error) {
		c := cfg
		c.Layout = layoutID
		return arkanoid.New(c, arkanoid.WithLogger(logger.With("layout", layoutID)))
	}
}
