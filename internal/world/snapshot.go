package world

// Snapshot is the exported form of a generated grid.
type Snapshot struct {
	RunID   string   `json:"run_id" toml:"run_id" yaml:"run_id"`
	Seed    int64    `json:"seed" toml:"seed" yaml:"seed"`
	TileSet string   `json:"tileset" toml:"tileset" yaml:"tileset"`
	Width   int      `json:"width" toml:"width" yaml:"width"`
	Height  int      `json:"height" toml:"height" yaml:"height"`
	Symbols []string `json:"symbols" toml:"symbols" yaml:"symbols"`
	Rows    [][]int  `json:"rows" toml:"rows" yaml:"rows"`
}

// Snapshot captures the generator's grid along with the seed that produced it.
// Symbols[i] is the symbol of tile id i+1.
func (g *Generator) Snapshot(seed int64) Snapshot {
	tiles := g.grid.tiles.All()
	symbols := make([]string, len(tiles))
	for i, t := range tiles {
		symbols[i] = t.Symbol
	}

	return Snapshot{
		RunID:   g.runID.String(),
		Seed:    seed,
		TileSet: g.grid.tiles.Name(),
		Width:   g.grid.Width,
		Height:  g.grid.Height,
		Symbols: symbols,
		Rows:    g.grid.Rows(),
	}
}
