package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/samdwyer/tilecollapse/internal/tileset"
)

const (
	iconAccept = "✓"
	iconReject = "·"
)

func (c *CLI) tilesCommand() *cobra.Command {
	tiles := envString(EnvTiles, "")

	cmd := &cobra.Command{
		Use:   "tiles",
		Short: "Show a tile set and its adjacency rules",
		Long: `Tiles prints each tile with its id and the matrix of rules. Row a, column b
is checked when a cell holding tile a already has neighbor b: a tile only
vets its own neighbors, so the matrix need not be symmetric.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := tileset.Load(tiles)
			if err != nil {
				return err
			}
			return writeTileSet(cmd.OutOrStdout(), set)
		},
	}

	cmd.Flags().StringVarP(&tiles, "tiles", "t", tiles, "tile set file (.json, .toml, .yaml); built-in terrain if empty (env "+EnvTiles+")")
	return cmd
}

// writeTileSet prints the tile list followed by the rule matrix.
func writeTileSet(w io.Writer, set *tileset.Set) error {
	r := lipgloss.NewRenderer(w)
	title := r.NewStyle().Bold(true).Foreground(lipgloss.Color("36"))
	dim := r.NewStyle().Foreground(lipgloss.Color("240"))

	tiles := set.All()
	symbols := make([]string, len(tiles))
	for i, t := range tiles {
		style := r.NewStyle().Bold(t.Bold)
		if t.Color != "" {
			style = style.Foreground(lipgloss.Color(t.Color))
		}
		symbols[i] = style.Render(t.Symbol)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", title.Render(set.Name()), dim.Render(fmt.Sprintf("(%d tiles)", len(tiles))))
	for i, t := range tiles {
		fmt.Fprintf(&b, "  %d  %s  %s\n", i+1, symbols[i], t.Name)
	}

	b.WriteString("\n    ")
	b.WriteString(strings.Join(symbols, " "))
	b.WriteByte('\n')
	for i := range tiles {
		cells := make([]string, len(tiles))
		for j := range tiles {
			if set.Compatible(i+1, j+1) {
				cells[j] = iconAccept
			} else {
				cells[j] = dim.Render(iconReject)
			}
		}
		fmt.Fprintf(&b, "  %s %s\n", symbols[i], strings.Join(cells, " "))
	}

	if !set.Symmetric() {
		fmt.Fprintf(&b, "\n%s\n", dim.Render("rules are not symmetric"))
	}

	_, err := io.WriteString(w, b.String())
	return err
}
