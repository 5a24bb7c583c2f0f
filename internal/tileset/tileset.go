// Package tileset provides tile definitions and their adjacency rules.
package tileset

import (
	"errors"
	"fmt"
)

// ErrInvalid is wrapped by every validation failure returned from New and the loaders.
var ErrInvalid = errors.New("invalid tile set")

// Tile defines a single tile type loaded from a tile set file.
type Tile struct {
	Name   string `json:"name" toml:"name" yaml:"name"`       // Display name (e.g., "water")
	Symbol string `json:"symbol" toml:"symbol" yaml:"symbol"` // Single character for rendering (e.g., "~")
	Color  string `json:"color" toml:"color" yaml:"color"`    // Hex color (e.g., "#3B78FF")
	Bold   bool   `json:"bold" toml:"bold" yaml:"bold"`

	// Rules[j] is true iff this tile may sit next to the tile with id j+1.
	Rules []bool `json:"rules" toml:"rules" yaml:"rules"`
}

// SymbolRune returns the symbol as a rune for rendering.
func (t *Tile) SymbolRune() rune {
	for _, r := range t.Symbol {
		return r
	}
	return '?'
}

// Permits reports whether this tile accepts the tile with the given id as a neighbor.
// Only this tile's own rule is consulted; the neighbor's rule about this tile is not.
func (t *Tile) Permits(id int) bool {
	if id < 1 || id > len(t.Rules) {
		return false
	}
	return t.Rules[id-1]
}

// File represents the structure of a tile set file.
type File struct {
	Name  string `json:"name" toml:"name" yaml:"name"`
	Tiles []Tile `json:"tiles" toml:"tiles" yaml:"tiles"`
}

// Set is an immutable, validated collection of tiles addressed by 1-based id.
type Set struct {
	name  string
	tiles []Tile
}

// New validates the tiles and builds a Set. The tiles are copied.
func New(name string, tiles []Tile) (*Set, error) {
	if len(tiles) == 0 {
		return nil, fmt.Errorf("%w: no tiles defined", ErrInvalid)
	}

	n := len(tiles)
	copied := make([]Tile, n)
	for i, t := range tiles {
		if t.Symbol == "" {
			return nil, fmt.Errorf("%w: tile %d (%s) has no symbol", ErrInvalid, i+1, t.Name)
		}
		if len(t.Rules) != n {
			return nil, fmt.Errorf("%w: tile %d (%s) has %d rules, want %d", ErrInvalid, i+1, t.Name, len(t.Rules), n)
		}
		if t.Color != "" {
			if _, err := ParseHexColor(t.Color); err != nil {
				return nil, fmt.Errorf("%w: tile %d (%s): %v", ErrInvalid, i+1, t.Name, err)
			}
		}
		t.Rules = append([]bool(nil), t.Rules...)
		copied[i] = t
	}

	return &Set{name: name, tiles: copied}, nil
}

// Name returns the tile set's display name.
func (s *Set) Name() string {
	return s.name
}

// Size returns the number of tile types.
func (s *Set) Size() int {
	return len(s.tiles)
}

// Anchor returns the id of the last configured tile, used to seed generation.
func (s *Set) Anchor() int {
	return len(s.tiles)
}

// Get returns the tile with the given 1-based id, or nil if out of range.
func (s *Set) Get(id int) *Tile {
	if id < 1 || id > len(s.tiles) {
		return nil
	}
	return &s.tiles[id-1]
}

// Compatible reports whether tile a accepts tile b as a neighbor.
func (s *Set) Compatible(a, b int) bool {
	t := s.Get(a)
	if t == nil {
		return false
	}
	return t.Permits(b)
}

// All returns a copy of the tiles in id order.
func (s *Set) All() []Tile {
	out := make([]Tile, len(s.tiles))
	copy(out, s.tiles)
	return out
}

// Symmetric reports whether every rule is mirrored by the opposite tile's rule.
func (s *Set) Symmetric() bool {
	for a := 1; a <= len(s.tiles); a++ {
		for b := a + 1; b <= len(s.tiles); b++ {
			if s.Compatible(a, b) != s.Compatible(b, a) {
				return false
			}
		}
	}
	return true
}
