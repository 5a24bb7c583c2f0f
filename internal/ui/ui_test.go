package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/tilecollapse/internal/tileset"
	"github.com/samdwyer/tilecollapse/internal/world"
)

func testGrid(t *testing.T) *world.Grid {
	t.Helper()
	g, err := world.NewGrid(3, 2, tileset.MustDefault())
	if err != nil {
		t.Fatalf("NewGrid failed: %v", err)
	}
	g.Set(world.Position{X: 0, Y: 0}, 1)
	g.Set(world.Position{X: 1, Y: 0}, 3)
	g.Set(world.Position{X: 2, Y: 1}, 5)
	return g
}

func TestTextRendererPlain(t *testing.T) {
	var buf bytes.Buffer
	r := NewTextRenderer(&buf, tileset.MustDefault())

	if err := r.Write(&buf, testGrid(t)); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	want := "~ # -\n- - ^\n"
	if buf.String() != want {
		t.Errorf("Render() = %q, want %q", buf.String(), want)
	}
}

func TestTextRendererNoEscapesForBuffers(t *testing.T) {
	var buf bytes.Buffer
	out := NewTextRenderer(&buf, tileset.MustDefault()).Render(testGrid(t))
	if strings.Contains(out, "\x1b[") {
		t.Errorf("Expected no ANSI sequences when writing to a buffer, got %q", out)
	}
}

func newSimScreen(t *testing.T) *Screen {
	t.Helper()
	sim := tcell.NewSimulationScreen("")
	screen, err := NewScreenFrom(sim)
	if err != nil {
		t.Fatalf("NewScreenFrom failed: %v", err)
	}
	sim.SetSize(40, 10)
	t.Cleanup(screen.Close)
	return screen
}

func TestRendererDrawsGrid(t *testing.T) {
	screen := newSimScreen(t)
	NewRenderer(screen).Render(testGrid(t), "pass 3")

	want := map[[2]int]rune{
		{0, 0}: '~',
		{2, 0}: '#',
		{4, 0}: UnresolvedRune,
		{0, 1}: UnresolvedRune,
		{4, 1}: '^',
		{0, 3}: 'p',
		{5, 3}: '3',
	}
	for xy, r := range want {
		got, _, _, _ := screen.screen.GetContent(xy[0], xy[1])
		if got != r {
			t.Errorf("cell (%d,%d) = %q, want %q", xy[0], xy[1], got, r)
		}
	}
}

func TestRendererUsesTileColors(t *testing.T) {
	screen := newSimScreen(t)
	NewRenderer(screen).Render(testGrid(t), "")

	_, _, style, _ := screen.screen.GetContent(0, 0)
	fg, _, _ := style.Decompose()
	water := tileset.MustDefault().Get(1)
	if fg != water.TCellColor() {
		t.Errorf("Expected water color %v, got %v", water.TCellColor(), fg)
	}
}

func TestDrawTextClips(t *testing.T) {
	screen := newSimScreen(t)
	screen.DrawText(38, 0, "abcdef", tcell.StyleDefault)

	got, _, _, _ := screen.screen.GetContent(39, 0)
	if got != 'b' {
		t.Errorf("Expected 'b' at last column, got %q", got)
	}
}
