package world

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrContradiction is wrapped by TileSetError so callers can test with errors.Is.
var ErrContradiction = errors.New("tile set rules are contradictory")

// ArgumentError reports a missing or invalid grid dimension.
type ArgumentError struct {
	Field  string
	Value  string
	Reason string
}

func (e *ArgumentError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Reason)
}

// ParseDimension parses a width or height given as text.
func ParseDimension(field, s string) (int, error) {
	if s == "" {
		return 0, &ArgumentError{Field: field, Reason: "missing"}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, &ArgumentError{Field: field, Value: s, Reason: "not a number"}
	}
	if n < 1 {
		return 0, &ArgumentError{Field: field, Value: s, Reason: "must be at least 1"}
	}
	return n, nil
}

// TileSetError reports a cell for which no tile satisfies the resolved neighbors.
// Generation stops at the first one; the grid is left as it was at that point.
type TileSetError struct {
	Pos     Position
	TileSet string
	Pass    int
}

func (e *TileSetError) Error() string {
	return fmt.Sprintf("invalid tile set %q: no tile fits at (%d,%d) on pass %d", e.TileSet, e.Pos.X, e.Pos.Y, e.Pass)
}

func (e *TileSetError) Unwrap() error {
	return ErrContradiction
}
