// Package viewer provides an interactive terminal view of grid generation.
package viewer

// State represents the current viewer state.
type State int

const (
	// StateGenerating means passes are still being run.
	StateGenerating State = iota
	// StateComplete means every cell has a tile.
	StateComplete
	// StateFailed means the tile set hit a contradiction.
	StateFailed
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateGenerating:
		return "generating"
	case StateComplete:
		return "complete"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}
