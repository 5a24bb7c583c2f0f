package world

// Possibilities returns the tile ids that may be placed at pos given its resolved
// neighbors, in ascending order. A candidate is kept only if its own rule accepts
// every resolved neighbor; unresolved and off-grid neighbors impose nothing.
func (g *Grid) Possibilities(pos Position) []int {
	n := g.tiles.Size()
	candidates := make([]int, 0, n)

	for id := 1; id <= n; id++ {
		tile := g.tiles.Get(id)
		ok := true
		for _, off := range offsets {
			neighbor := g.ID(pos.Add(off))
			if neighbor == Unresolved {
				continue
			}
			if !tile.Permits(neighbor) {
				ok = false
				break
			}
		}
		if ok {
			candidates = append(candidates, id)
		}
	}

	return candidates
}
