// Package world generates tile grids by greedy constraint propagation.
package world

import (
	"strconv"

	"github.com/samdwyer/tilecollapse/internal/tileset"
)

// Unresolved is the id of a cell that has not been assigned a tile yet.
const Unresolved = 0

// Position is an integer grid coordinate.
type Position struct {
	X, Y int
}

// Add returns the sum of two positions.
func (p Position) Add(o Position) Position {
	return Position{X: p.X + o.X, Y: p.Y + o.Y}
}

// offsets lists the orthogonal neighbors in exploration order: up, right, down, left.
var offsets = [4]Position{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// Cell is a single grid square.
type Cell struct {
	ID      int // Unresolved, or a 1-based tile id
	visited bool
}

// Resolved reports whether the cell has been assigned a tile.
func (c Cell) Resolved() bool {
	return c.ID != Unresolved
}

// Grid is a fixed-size map of cells bound to a tile set.
type Grid struct {
	Width  int
	Height int
	cells  [][]Cell
	tiles  *tileset.Set
}

// NewGrid creates an empty grid. Width and height must both be at least 1.
func NewGrid(width, height int, tiles *tileset.Set) (*Grid, error) {
	if width < 1 {
		return nil, &ArgumentError{Field: "width", Value: strconv.Itoa(width), Reason: "must be at least 1"}
	}
	if height < 1 {
		return nil, &ArgumentError{Field: "height", Value: strconv.Itoa(height), Reason: "must be at least 1"}
	}

	cells := make([][]Cell, height)
	for y := range cells {
		cells[y] = make([]Cell, width)
	}

	return &Grid{
		Width:  width,
		Height: height,
		cells:  cells,
		tiles:  tiles,
	}, nil
}

// Tiles returns the tile set the grid is resolved against.
func (g *Grid) Tiles() *tileset.Set {
	return g.tiles
}

// InBounds returns true if the position lies on the grid.
func (g *Grid) InBounds(p Position) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// ID returns the tile id at the given position. Out-of-bounds reads as Unresolved.
func (g *Grid) ID(p Position) int {
	if !g.InBounds(p) {
		return Unresolved
	}
	return g.cells[p.Y][p.X].ID
}

// Set assigns a tile id to an in-bounds position. Ids outside [0, N] are rejected.
func (g *Grid) Set(p Position, id int) bool {
	if !g.InBounds(p) || id < Unresolved || id > g.tiles.Size() {
		return false
	}
	g.cells[p.Y][p.X].ID = id
	return true
}

// Tile returns the tile definition at the given position, or nil if unresolved.
func (g *Grid) Tile(p Position) *tileset.Tile {
	return g.tiles.Get(g.ID(p))
}

// Row returns a copy of the ids in row y.
func (g *Grid) Row(y int) []int {
	if y < 0 || y >= g.Height {
		return nil
	}
	row := make([]int, g.Width)
	for x, c := range g.cells[y] {
		row[x] = c.ID
	}
	return row
}

// Rows returns all ids, one slice per row.
func (g *Grid) Rows() [][]int {
	rows := make([][]int, g.Height)
	for y := range rows {
		rows[y] = g.Row(y)
	}
	return rows
}

// IDs returns every id in row-major order.
func (g *Grid) IDs() []int {
	ids := make([]int, 0, g.Width*g.Height)
	for y := 0; y < g.Height; y++ {
		for _, c := range g.cells[y] {
			ids = append(ids, c.ID)
		}
	}
	return ids
}

// UnresolvedCount returns the number of cells without a tile.
func (g *Grid) UnresolvedCount() int {
	count := 0
	for y := 0; y < g.Height; y++ {
		for _, c := range g.cells[y] {
			if !c.Resolved() {
				count++
			}
		}
	}
	return count
}

// Complete reports whether every cell has a tile.
func (g *Grid) Complete() bool {
	return g.UnresolvedCount() == 0
}

// Violations returns every resolved position whose tile rejects a resolved in-bounds neighbor.
// Each cell is judged by its own rule only.
func (g *Grid) Violations() []Position {
	var bad []Position
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			pos := Position{X: x, Y: y}
			id := g.ID(pos)
			if id == Unresolved {
				continue
			}
			for _, off := range offsets {
				n := g.ID(pos.Add(off))
				if n != Unresolved && !g.tiles.Compatible(id, n) {
					bad = append(bad, pos)
					break
				}
			}
		}
	}
	return bad
}

// visit marks a position as visited in the current pass.
func (g *Grid) visit(p Position) {
	g.cells[p.Y][p.X].visited = true
}

func (g *Grid) visitedAt(p Position) bool {
	return g.cells[p.Y][p.X].visited
}
