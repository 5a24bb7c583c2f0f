package tileset

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// ParseHexColor converts a hex color string (e.g., "#FF0000" or "FF0000") to a tcell.Color.
func ParseHexColor(hex string) (tcell.Color, error) {
	hex = strings.TrimPrefix(hex, "#")

	if len(hex) != 6 {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color length: %s", hex)
	}

	rgb, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color %s: %w", hex, err)
	}

	return tcell.NewHexColor(int32(rgb)), nil
}

// TCellColor returns the tile's display color, or the terminal default if unset.
func (t *Tile) TCellColor() tcell.Color {
	if t.Color == "" {
		return tcell.ColorDefault
	}
	color, err := ParseHexColor(t.Color)
	if err != nil {
		return tcell.ColorDefault
	}
	return color
}

// Style returns the tcell style used to draw this tile.
func (t *Tile) Style() tcell.Style {
	return tcell.StyleDefault.Foreground(t.TCellColor()).Bold(t.Bold)
}
