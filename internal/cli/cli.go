// Package cli implements the tilecollapse command-line interface.
//
// The commands are:
//   - generate: fill a grid and print or export it
//   - view: animate generation in the terminal
//   - tiles: show a tile set and its adjacency rules
//
// All commands support --verbose (-v) for debug-level logging and --log-file
// to mirror logs into a rotated file.
package cli

import (
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"gopkg.in/natefinch/lumberjack.v2"
)

const appName = "tilecollapse"

// Environment variables that provide flag defaults.
const (
	EnvSeed  = "TILECOLLAPSE_SEED"
	EnvTiles = "TILECOLLAPSE_TILES"
)

// Version is reported by --version. Overridden at build time via ldflags.
var Version = "dev"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	stderr  io.Writer
	logFile *lumberjack.Logger
}

// New creates a new CLI instance logging to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		stderr: w,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	var (
		verbose bool
		logPath string
	)

	root := &cobra.Command{
		Use:           appName,
		Short:         "Tilecollapse fills tile grids by constraint propagation",
		Long:          `Tilecollapse procedurally generates 2D tile maps: each cell takes a tile that its resolved neighbors allow, always resolving the most constrained cell next.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				c.SetLogLevel(LogDebug)
			}
			if logPath != "" {
				c.openLogFile(logPath)
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return c.Close()
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&logPath, "log-file", "", "also write logs to this file (rotated at 10 MB)")

	root.AddCommand(c.generateCommand())
	root.AddCommand(c.viewCommand())
	root.AddCommand(c.tilesCommand())

	return root
}

// openLogFile mirrors log output into a size-rotated file.
func (c *CLI) openLogFile(path string) {
	c.logFile = &lumberjack.Logger{
		Filename:   path,
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
	}
	c.Logger.SetOutput(io.MultiWriter(c.stderr, c.logFile))
}

// Close releases the log file, if any.
func (c *CLI) Close() error {
	if c.logFile == nil {
		return nil
	}
	err := c.logFile.Close()
	c.logFile = nil
	c.Logger.SetOutput(c.stderr)
	return err
}

// envString returns the environment value for key, or fallback when unset.
func envString(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

// envSeed returns the seed from the environment, or 0 when unset or malformed.
func envSeed() int64 {
	seed, err := strconv.ParseInt(os.Getenv(EnvSeed), 10, 64)
	if err != nil {
		return 0
	}
	return seed
}
