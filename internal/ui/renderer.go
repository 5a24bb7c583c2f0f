package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/tilecollapse/internal/world"
)

// UnresolvedRune is drawn for cells that have no tile yet.
const UnresolvedRune = '-'

// cellWidth is the number of columns per grid cell: the symbol and a gap.
const cellWidth = 2

// Renderer handles drawing grids to the screen.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Render draws the grid followed by a status line.
func (r *Renderer) Render(grid *world.Grid, status string) {
	r.screen.Clear()

	unresolved := tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			pos := world.Position{X: x, Y: y}
			if tile := grid.Tile(pos); tile != nil {
				r.screen.SetContent(x*cellWidth, y, tile.SymbolRune(), tile.Style())
			} else {
				r.screen.SetContent(x*cellWidth, y, UnresolvedRune, unresolved)
			}
		}
	}

	r.RenderMessage(status, grid.Height+1)
	r.screen.Show()
}

// RenderMessage displays a message on the given row.
func (r *Renderer) RenderMessage(msg string, y int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	r.screen.DrawText(0, y, msg, style)
}
