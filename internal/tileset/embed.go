package tileset

import "embed"

// dataFS embeds the built-in tile sets at build time.
//
//go:embed *.json
var dataFS embed.FS

// DefaultName is the file name of the built-in terrain tile set.
const DefaultName = "terrain.json"
