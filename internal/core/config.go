package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Host refresh rate per second
	Seed     int64 // RNG seed, 0 means the host picks one from the clock
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
		Seed:     0,
	}
}

// GameState is the status a game reports to the host.
type GameState struct {
	Level    int  // 1-based level being played
	Turns    int  // Cells revealed by the player this level
	GameOver bool // The board reached a terminal state
	Won      bool // The player trapped the mouse
	Ended    bool // The player quit and progress was flushed
}

// StepResult is returned by Game.Step after each input frame.
type StepResult struct {
	State GameState
	Err   error // Set when the frame triggered a failure the host should show
}
