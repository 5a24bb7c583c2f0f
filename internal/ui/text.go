package ui

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/samdwyer/tilecollapse/internal/tileset"
	"github.com/samdwyer/tilecollapse/internal/world"
)

// TextRenderer writes grids as styled text. Colors are dropped automatically
// when the destination is not a color-capable terminal.
type TextRenderer struct {
	renderer   *lipgloss.Renderer
	styles     []lipgloss.Style
	unresolved lipgloss.Style
}

// NewTextRenderer builds per-tile styles for output written to w.
func NewTextRenderer(w io.Writer, tiles *tileset.Set) *TextRenderer {
	r := lipgloss.NewRenderer(w)

	all := tiles.All()
	styles := make([]lipgloss.Style, len(all))
	for i, t := range all {
		style := r.NewStyle().Bold(t.Bold)
		if t.Color != "" {
			style = style.Foreground(lipgloss.Color(t.Color))
		}
		styles[i] = style
	}

	return &TextRenderer{
		renderer:   r,
		styles:     styles,
		unresolved: r.NewStyle().Foreground(lipgloss.Color("240")),
	}
}

// Render returns the grid as text, one line per row, cells separated by a space.
func (t *TextRenderer) Render(grid *world.Grid) string {
	var b strings.Builder
	cells := make([]string, grid.Width)

	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			pos := world.Position{X: x, Y: y}
			id := grid.ID(pos)
			if id == world.Unresolved {
				cells[x] = t.unresolved.Render(string(UnresolvedRune))
				continue
			}
			cells[x] = t.styles[id-1].Render(grid.Tile(pos).Symbol)
		}
		b.WriteString(strings.Join(cells, " "))
		b.WriteByte('\n')
	}

	return b.String()
}

// Write renders the grid to w.
func (t *TextRenderer) Write(w io.Writer, grid *world.Grid) error {
	_, err := io.WriteString(w, t.Render(grid))
	return err
}
