package core

import "time"

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses it to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int           // Screen width in characters
	ScreenH  int           // Screen height in characters
	TickRate int           // Ticks per second requested from the ticker (default 60)
	MaxDelta time.Duration // Longest elapsed time handed to a single tick
	DuckHold time.Duration // How long one duck key press keeps the runner down
	Seed     int64         // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		MaxDelta: 250 * time.Millisecond,
		DuckHold: 700 * time.Millisecond,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// DeltaMillis converts the time between two ticks into the millisecond delta
// the simulation expects. Negative gaps become zero and long gaps (a
// suspended process, a stalled terminal) are capped at MaxDelta.
func (c RuntimeConfig) DeltaMillis(prev, now time.Time) float64 {
	if prev.IsZero() {
		return 0
	}
	d := now.Sub(prev)
	if d < 0 {
		d = 0
	}
	if c.MaxDelta > 0 && d > c.MaxDelta {
		d = c.MaxDelta
	}
	return float64(d) / float64(time.Millisecond)
}
