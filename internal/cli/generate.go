package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/samdwyer/tilecollapse/internal/tileset"
	"github.com/samdwyer/tilecollapse/internal/ui"
	"github.com/samdwyer/tilecollapse/internal/world"
)

// Output formats accepted by generate --format.
const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
	formatTOML = "toml"
)

// generateOpts holds flags for the generate command.
type generateOpts struct {
	seed   int64
	tiles  string
	format string
	output string
}

func (c *CLI) generateCommand() *cobra.Command {
	opts := generateOpts{
		seed:   envSeed(),
		tiles:  envString(EnvTiles, ""),
		format: formatText,
	}

	cmd := &cobra.Command{
		Use:   "generate <width> <height>",
		Short: "Generate a tile grid and print or export it",
		Long: `Generate fills a width x height grid. The last tile of the set is placed at a
random cell first; every following pass resolves the cell with the fewest
remaining candidates.

Output is colored text by default, or a json, yaml or toml snapshot that
includes the seed needed to reproduce the grid.`,
		Example: `  tilecollapse generate 40 20
  tilecollapse generate 40 20 --seed 7 --format yaml -o map.yaml
  tilecollapse generate 16 8 --tiles ./coast.toml`,
		Args: dimensionArgs(true),
		RunE: func(cmd *cobra.Command, args []string) error {
			width, height, err := parseDimensions(args)
			if err != nil {
				return err
			}
			return c.runGenerate(cmd.Context(), cmd.OutOrStdout(), width, height, opts)
		},
	}

	cmd.Flags().Int64Var(&opts.seed, "seed", opts.seed, "random seed, 0 for a fresh one (env "+EnvSeed+")")
	cmd.Flags().StringVarP(&opts.tiles, "tiles", "t", opts.tiles, "tile set file (.json, .toml, .yaml); built-in terrain if empty (env "+EnvTiles+")")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: text, json, yaml, toml")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write to file instead of stdout")

	return cmd
}

func (c *CLI) runGenerate(ctx context.Context, stdout io.Writer, width, height int, opts generateOpts) error {
	logger := loggerFromContext(ctx)

	if err := validateFormat(opts.format); err != nil {
		return err
	}

	tiles, err := tileset.Load(opts.tiles)
	if err != nil {
		return err
	}
	logger.Debug("tile set loaded", "name", tiles.Name(), "tiles", tiles.Size(), "symmetric", tiles.Symmetric())

	grid, err := world.NewGrid(width, height, tiles)
	if err != nil {
		return err
	}

	rng, seed := world.NewSource(opts.seed)
	gen := world.NewGenerator(grid, rng, world.WithLogger(logger))

	prog := newProgress(logger)
	if err := gen.Generate(ctx); err != nil {
		return fmt.Errorf("generate %dx%d grid with seed %d: %w", width, height, seed, err)
	}
	prog.done("Generated grid", "size", fmt.Sprintf("%dx%d", width, height), "passes", gen.Passes(), "seed", seed)

	w := stdout
	if opts.output != "" {
		f, err := os.Create(opts.output)
		if err != nil {
			return fmt.Errorf("create output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	if err := writeGrid(w, opts.format, gen, seed); err != nil {
		return err
	}
	if opts.output != "" {
		logger.Info("Wrote grid", "path", opts.output, "format", opts.format)
	}
	return nil
}

func validateFormat(format string) error {
	switch format {
	case formatText, formatJSON, formatYAML, formatTOML:
		return nil
	default:
		return fmt.Errorf("unknown format %q (want text, json, yaml or toml)", format)
	}
}

// writeGrid encodes the generated grid in the requested format.
func writeGrid(w io.Writer, format string, gen *world.Generator, seed int64) error {
	switch format {
	case formatText:
		grid := gen.Grid()
		return ui.NewTextRenderer(w, grid.Tiles()).Write(w, grid)
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(gen.Snapshot(seed))
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(gen.Snapshot(seed)); err != nil {
			return err
		}
		return enc.Close()
	case formatTOML:
		return toml.NewEncoder(w).Encode(gen.Snapshot(seed))
	default:
		return validateFormat(format)
	}
}

// dimensionArgs validates the positional width and height.
// When required is false both may be omitted.
func dimensionArgs(required bool) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		switch {
		case len(args) == 2:
			return nil
		case len(args) == 0 && !required:
			return nil
		case len(args) == 0:
			return &world.ArgumentError{Field: "width", Reason: "missing"}
		case len(args) == 1:
			return &world.ArgumentError{Field: "height", Reason: "missing"}
		default:
			return fmt.Errorf("expected width and height, got %d arguments", len(args))
		}
	}
}

// parseDimensions parses width and height, returning zeros when none were given.
func parseDimensions(args []string) (int, int, error) {
	if len(args) == 0 {
		return 0, 0, nil
	}
	width, err := world.ParseDimension("width", args[0])
	if err != nil {
		return 0, 0, err
	}
	height, err := world.ParseDimension("height", args[1])
	if err != nil {
		return 0, 0, err
	}
	return width, height, nil
}
