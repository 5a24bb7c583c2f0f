package viewer

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/tilecollapse/internal/telemetry"
	"github.com/samdwyer/tilecollapse/internal/tileset"
	"github.com/samdwyer/tilecollapse/internal/ui"
	"github.com/samdwyer/tilecollapse/internal/world"
)

// tickEvent is posted to the event loop to advance the animation.
type tickEvent struct{}

// Viewer animates generation on a terminal screen.
type Viewer struct {
	screen   *ui.Screen
	renderer *ui.Renderer
	tiles    *tileset.Set
	cfg      Config
	logger   *log.Logger

	gen     *world.Generator
	seed    int64
	state   State
	paused  bool
	running bool
}

// New creates a viewer on the real terminal.
func New(cfg Config, tiles *tileset.Set, logger *log.Logger) (*Viewer, error) {
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewWithScreen(screen, cfg, tiles, logger), nil
}

// NewWithScreen creates a viewer on an already initialized screen.
func NewWithScreen(screen *ui.Screen, cfg Config, tiles *tileset.Set, logger *log.Logger) *Viewer {
	if logger == nil {
		logger = log.Default()
	}
	return &Viewer{
		screen:   screen,
		renderer: ui.NewRenderer(screen),
		tiles:    tiles,
		cfg:      cfg,
		logger:   logger,
		running:  true,
	}
}

// State returns the state of the current run.
func (v *Viewer) State() State { return v.state }

// Generator returns the current run's generator.
func (v *Viewer) Generator() *world.Generator { return v.gen }

// Seed returns the seed of the current run.
func (v *Viewer) Seed() int64 { return v.seed }

// Run executes the main event loop until the user quits or ctx is done.
func (v *Viewer) Run(ctx context.Context) error {
	defer v.screen.Close()

	if err := v.restart(ctx, v.cfg.Seed); err != nil {
		return err
	}

	stop := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		v.tick(ctx, stop)
	}()
	defer func() {
		close(stop)
		wg.Wait()
	}()

	for v.running {
		v.render()
		v.handleEvent(ctx, v.screen.PollEvent())
	}

	return nil
}

// tick wakes the event loop at the configured interval until stop is closed.
func (v *Viewer) tick(ctx context.Context, stop <-chan struct{}) {
	ticker := time.NewTicker(v.cfg.interval())
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ctx.Done():
			// unblock PollEvent so Run can notice
			_ = v.screen.PostEvent(tcell.NewEventInterrupt(ctx.Err()))
			return
		case <-ticker.C:
			_ = v.screen.PostEvent(tcell.NewEventInterrupt(tickEvent{}))
		}
	}
}

// restart begins a new run with the given seed (0 picks one).
func (v *Viewer) restart(ctx context.Context, seed int64) error {
	width, height := v.dimensions()
	grid, err := world.NewGrid(width, height, v.tiles)
	if err != nil {
		return err
	}

	rng, used := world.NewSource(seed)
	v.seed = used
	v.gen = world.NewGenerator(grid, rng, world.WithLogger(v.logger))
	v.state = StateGenerating

	_, span := telemetry.Tracer("viewer").Start(ctx, "viewer.restart")
	span.SetAttributes(
		attribute.Int64("viewer.seed", used),
		attribute.Int("viewer.width", width),
		attribute.Int("viewer.height", height),
		attribute.String("world.run_id", v.gen.RunID().String()),
	)
	span.End()

	v.logger.Debug("viewer run started", "seed", used, "width", width, "height", height)
	return nil
}

// dimensions returns the configured grid size, filling gaps from the terminal size.
func (v *Viewer) dimensions() (int, int) {
	width, height := v.cfg.Width, v.cfg.Height
	sw, sh := v.screen.Size()
	if width <= 0 {
		width = max(sw/2, 1)
	}
	if height <= 0 {
		// leave room for the status line
		height = max(sh-2, 1)
	}
	return width, height
}

// step runs one pass and records the outcome.
func (v *Viewer) step(ctx context.Context) {
	if v.state != StateGenerating {
		return
	}
	done, err := v.gen.Step(ctx)
	switch {
	case err != nil:
		v.state = StateFailed
		v.logger.Warn("generation failed", "seed", v.seed, "err", err)
	case done:
		v.state = StateComplete
	}
}

// finish runs passes until the current run ends.
func (v *Viewer) finish(ctx context.Context) {
	for v.state == StateGenerating {
		v.step(ctx)
	}
}

func (v *Viewer) render() {
	v.renderer.Render(v.gen.Grid(), v.status())
}

func (v *Viewer) status() string {
	msg := fmt.Sprintf("seed %d  pass %d  %s", v.seed, v.gen.Passes(), v.state)
	if v.state == StateFailed {
		msg += ": " + v.gen.Err().Error()
	}
	if v.paused && v.state == StateGenerating {
		msg += " (paused)"
	}
	return msg + "  [space] pause  [n] step  [enter] finish  [r] new  [q] quit"
}

// handleEvent processes a single event.
func (v *Viewer) handleEvent(ctx context.Context, ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		v.handleKeyEvent(ctx, ev)
	case *tcell.EventResize:
		v.screen.Sync()
	case *tcell.EventInterrupt:
		if _, ok := ev.Data().(tickEvent); ok {
			if !v.paused {
				v.step(ctx)
			}
			return
		}
		if ctx.Err() != nil {
			v.running = false
		}
	case nil:
		// screen finalized
		v.running = false
	}
}

// handleKeyEvent processes keyboard input.
func (v *Viewer) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		v.running = false
	case tcell.KeyEnter:
		v.finish(ctx)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			v.running = false
		case ' ':
			v.paused = !v.paused
		case 'n', 'N':
			v.step(ctx)
		case 'r', 'R':
			if err := v.restart(ctx, v.seed+1); err != nil {
				v.logger.Error("restart failed", "err", err)
			}
		}
	}
}
