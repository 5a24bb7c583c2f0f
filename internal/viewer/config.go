package viewer

import "time"

// DefaultInterval is the delay between animated passes.
const DefaultInterval = 30 * time.Millisecond

// Config holds viewer options.
type Config struct {
	// Seed for random number generation. Used for reproducible grids.
	// A seed of 0 means a random seed will be generated.
	Seed int64

	// Grid dimensions. Zero fits the grid to the terminal.
	Width  int
	Height int

	// Interval between animated passes. Zero means DefaultInterval.
	Interval time.Duration
}

func (c Config) interval() time.Duration {
	if c.Interval <= 0 {
		return DefaultInterval
	}
	return c.Interval
}
