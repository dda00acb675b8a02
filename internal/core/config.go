package core

// RuntimeConfig is passed to a game when it starts or restarts.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second
	Seed     int64 // RNG seed; 0 means the platform picks one
}

// DefaultConfig returns a RuntimeConfig for an 80x24 terminal at 60 ticks per second.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState is the externally visible status of a game.
type GameState struct {
	Score      int
	BallsLeft  int
	BlocksLeft int
	GameOver   bool
	Won        bool // only meaningful once GameOver is set
	Paused     bool
}

// Outcome names how a finished game ended.
func (s GameState) Outcome() string {
	switch {
	case !s.GameOver:
		return "running"
	case s.Won:
		return "cleared"
	default:
		return "lost"
	}
}

// StepResult is returned by a game after each simulation tick.
type StepResult struct {
	State GameState
	Errs  []error // listener failures that were logged and skipped
}
