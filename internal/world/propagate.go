package world

// Propagate resolves cells outward from pos. The cell at pos is assigned its only
// candidate, or a random one when hard is set and several remain; every other cell
// reached is assigned only when a single candidate is left. Cells that are already
// resolved, off the grid, or visited earlier in this pass stop the flood.
//
// The flood is depth-first in up, right, down, left order. It runs on an explicit
// stack so large grids cannot exhaust the goroutine stack; neighbors are pushed in
// reverse and checked when popped, which visits cells and draws random numbers in
// exactly the order of the recursive formulation.
func (g *Grid) Propagate(pos Position, hard bool, rng Source) error {
	type frame struct {
		pos  Position
		hard bool
	}

	stack := []frame{{pos: pos, hard: hard}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if g.ID(f.pos) != Unresolved {
			continue
		}
		if !g.InBounds(f.pos) {
			continue
		}
		if g.visitedAt(f.pos) {
			continue
		}
		g.visit(f.pos)

		candidates := g.Possibilities(f.pos)
		switch {
		case len(candidates) == 0:
			return &TileSetError{Pos: f.pos, TileSet: g.tiles.Name()}
		case len(candidates) == 1:
			g.cells[f.pos.Y][f.pos.X].ID = candidates[0]
		case f.hard:
			g.cells[f.pos.Y][f.pos.X].ID = choose(rng, candidates)
		}

		for i := len(offsets) - 1; i >= 0; i-- {
			stack = append(stack, frame{pos: f.pos.Add(offsets[i])})
		}
	}

	return nil
}

// clearVisited resets the per-pass visited marks.
func (g *Grid) clearVisited() {
	for y := range g.cells {
		for x := range g.cells[y] {
			g.cells[y][x].visited = false
		}
	}
}
