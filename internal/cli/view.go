package cli

import (
	"github.com/spf13/cobra"

	"github.com/samdwyer/tilecollapse/internal/tileset"
	"github.com/samdwyer/tilecollapse/internal/viewer"
)

func (c *CLI) viewCommand() *cobra.Command {
	var (
		seed     = envSeed()
		tiles    = envString(EnvTiles, "")
		interval = viewer.DefaultInterval
	)

	cmd := &cobra.Command{
		Use:   "view [width height]",
		Short: "Watch a grid being generated in the terminal",
		Long: `View animates generation one pass at a time. Without dimensions the grid
fills the terminal.

Keys: space pauses, n steps one pass, enter finishes the run, r starts a new
run with the next seed, q or esc quits.`,
		Args: dimensionArgs(false),
		RunE: func(cmd *cobra.Command, args []string) error {
			width, height, err := parseDimensions(args)
			if err != nil {
				return err
			}

			set, err := tileset.Load(tiles)
			if err != nil {
				return err
			}

			logger := loggerFromContext(cmd.Context())
			v, err := viewer.New(viewer.Config{
				Seed:     seed,
				Width:    width,
				Height:   height,
				Interval: interval,
			}, set, logger)
			if err != nil {
				return err
			}
			return v.Run(cmd.Context())
		},
	}

	cmd.Flags().Int64Var(&seed, "seed", seed, "random seed, 0 for a fresh one (env "+EnvSeed+")")
	cmd.Flags().StringVarP(&tiles, "tiles", "t", tiles, "tile set file (.json, .toml, .yaml); built-in terrain if empty (env "+EnvTiles+")")
	cmd.Flags().DurationVar(&interval, "interval", interval, "delay between animated passes")

	return cmd
}
