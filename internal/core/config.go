package core

// RuntimeConfig contains settings chosen by the platform at launch rather than by
// the game config file: terminal size, tick rate and the RNG seed.
type RuntimeConfig struct {
	ScreenW  int   // Terminal width in characters
	ScreenH  int   // Terminal height in characters
	TickRate int   // Frames per second requested from the frame driver (default 60)
	Seed     int64 // RNG seed for deterministic obstacle sizes
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}
