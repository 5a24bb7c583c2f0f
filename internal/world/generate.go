package world

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/tilecollapse/internal/telemetry"
	"github.com/samdwyer/tilecollapse/internal/tileset"
)

// Generator fills a grid one pass at a time. Each pass floods out from the most
// constrained unresolved cell, then rescans the grid to pick the next one.
type Generator struct {
	grid   *Grid
	rng    Source
	logger *log.Logger
	tracer trace.Tracer
	runID  uuid.UUID

	started bool
	done    bool
	err     error
	anchor  Position
	next    Position
	passes  int
}

// Option configures a Generator.
type Option func(*Generator)

// WithLogger sets the logger used for per-pass debug output.
func WithLogger(l *log.Logger) Option {
	return func(g *Generator) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithTracer overrides the tracer; the default comes from the global provider.
func WithTracer(t trace.Tracer) Option {
	return func(g *Generator) {
		if t != nil {
			g.tracer = t
		}
	}
}

// WithRunID sets the run identifier instead of generating a random one.
func WithRunID(id uuid.UUID) Option {
	return func(g *Generator) {
		g.runID = id
	}
}

// NewGenerator creates a generator for an empty grid.
func NewGenerator(grid *Grid, rng Source, opts ...Option) *Generator {
	g := &Generator{
		grid:   grid,
		rng:    rng,
		logger: log.New(io.Discard),
		tracer: telemetry.Tracer("world"),
		runID:  uuid.New(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Grid returns the grid being filled.
func (g *Generator) Grid() *Grid { return g.grid }

// RunID returns the identifier attached to this run's logs and spans.
func (g *Generator) RunID() uuid.UUID { return g.runID }

// Passes returns the number of propagation passes run so far.
func (g *Generator) Passes() int { return g.passes }

// Done reports whether every cell has been resolved.
func (g *Generator) Done() bool { return g.done }

// Err returns the error that stopped generation, if any.
func (g *Generator) Err() error { return g.err }

// Anchor returns the position seeded with the anchor tile. Valid once a step has run.
func (g *Generator) Anchor() Position { return g.anchor }

// Step runs a single pass and reports whether the grid is complete.
// The first call places the anchor tile at a random position. After an error
// every later call returns the same error.
func (g *Generator) Step(ctx context.Context) (bool, error) {
	if g.err != nil {
		return false, g.err
	}
	if g.done {
		return true, nil
	}

	if !g.started {
		g.seed()
	}

	g.passes++
	if err := g.grid.Propagate(g.next, true, g.rng); err != nil {
		var tse *TileSetError
		if errors.As(err, &tse) {
			tse.Pass = g.passes
		}
		g.err = err
		g.logger.Error("propagation failed", "run", g.runID.String(), "pass", g.passes, "err", err)
		trace.SpanFromContext(ctx).RecordError(err)
		return false, err
	}

	g.grid.clearVisited()
	pos, count, ok := MostConstrained(g.grid)

	trace.SpanFromContext(ctx).AddEvent("world.pass", trace.WithAttributes(
		attribute.Int("pass", g.passes),
		attribute.Int("seed.x", g.next.X),
		attribute.Int("seed.y", g.next.Y),
		attribute.Int("unresolved", g.grid.UnresolvedCount()),
	))

	if !ok {
		g.done = true
		g.logger.Debug("grid complete", "run", g.runID.String(), "passes", g.passes)
		return true, nil
	}

	g.logger.Debug("pass finished", "pass", g.passes, "next", pos, "candidates", count)
	g.next = pos
	return false, nil
}

// Generate runs passes until the grid is complete, a contradiction is found, or
// ctx is cancelled. Cancellation is only observed between passes.
func (g *Generator) Generate(ctx context.Context) error {
	ctx, span := g.tracer.Start(ctx, "world.generate")
	defer span.End()

	startTime := time.Now()

	var err error
	for {
		if err = ctx.Err(); err != nil {
			break
		}
		var done bool
		done, err = g.Step(ctx)
		if err != nil || done {
			break
		}
	}

	span.SetAttributes(
		attribute.String("world.run_id", g.runID.String()),
		attribute.String("world.tileset", g.grid.tiles.Name()),
		attribute.Int("world.width", g.grid.Width),
		attribute.Int("world.height", g.grid.Height),
		attribute.Int("world.tiles", g.grid.tiles.Size()),
		attribute.Int("world.passes", g.passes),
		attribute.Int64("world.generation_ms", time.Since(startTime).Milliseconds()),
	)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}

// seed places the anchor tile at a uniformly random position.
func (g *Generator) seed() {
	x := g.rng.Intn(g.grid.Width)
	y := g.rng.Intn(g.grid.Height)
	g.anchor = Position{X: x, Y: y}
	g.grid.Set(g.anchor, g.grid.tiles.Anchor())
	g.next = g.anchor
	g.started = true

	g.logger.Debug("anchor placed", "run", g.runID.String(), "x", x, "y", y, "tile", g.grid.tiles.Anchor())
}

// MostConstrained scans in row-major order for the unresolved cell with the fewest
// candidates. Ties go to the first cell scanned. ok is false when every cell is resolved.
func MostConstrained(grid *Grid) (pos Position, count int, ok bool) {
	notFound := grid.tiles.Size() + 1
	count = notFound

	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			p := Position{X: x, Y: y}
			if grid.ID(p) != Unresolved {
				continue
			}
			if n := len(grid.Possibilities(p)); n < count {
				count = n
				pos = p
			}
		}
	}

	if count == notFound {
		return Position{}, 0, false
	}
	return pos, count, true
}

// Generate is a convenience wrapper that builds a grid and fills it.
func Generate(ctx context.Context, width, height int, tiles *tileset.Set, rng Source, opts ...Option) (*Grid, error) {
	grid, err := NewGrid(width, height, tiles)
	if err != nil {
		return nil, err
	}
	if err := NewGenerator(grid, rng, opts...).Generate(ctx); err != nil {
		return nil, err
	}
	return grid, nil
}
