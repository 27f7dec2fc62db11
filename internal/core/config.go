package core

// RuntimeConfig contains configuration passed to the engine at initialization.
type RuntimeConfig struct {
	ScreenW  int   // World width in units (window resolution)
	ScreenH  int   // World height in units
	TickRate int   // Frames per second (default 60)
	Seed     int64 // RNG seed for deterministic spawning
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  1400,
		ScreenH:  800,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}
