package core

// RuntimeConfig contains host parameters passed to a game session at start.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters (terminal hosts)
	ScreenH  int // Screen height in characters (terminal hosts)
	TickRate int // Frames per second requested from the host (default 60)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState is a snapshot of a session for display by the host.
type GameState struct {
	Score    int     // Tick counter, doubles as score
	Speed    float64 // Current game speed in pixels per tick
	GameOver bool    // Whether the session has terminated
}
