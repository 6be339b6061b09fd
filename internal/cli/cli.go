// Package cli implements the knotgrid command-line interface.
//
// The commands read their input from a positional argument, a file given
// with --input, or stdin, trim surrounding whitespace, and hand it to the
// knot and disk packages. The CLI is built using cobra and logs through
// charmbracelet/log on stderr; results go to stdout.
//
// # Commands
//
//   - hash: print the knot hash of the input (--bits for the bit string)
//   - checksum: single round over comma-separated lengths
//   - used: count used squares of the 128×128 grid
//   - regions: count connected regions of the grid
//   - render: draw the top-left window of the grid
//   - stats: used squares, regions and the largest region
//
// # Configuration
//
// Defaults come from an optional TOML file (see internal/config); explicit
// flags win over the file.
package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/knotgrid/disk"
	"github.com/katalvlaran/knotgrid/internal/config"
)

// =============================================================================
// Constants
// =============================================================================

const appName = "knotgrid"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

var version = "dev"

// SetVersion sets the version shown by --version.
func SetVersion(v string) { version = v }

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	cfg        config.Config
	configPath string
	inputPath  string
	workers    int
	verbose    bool
}

// New creates a new CLI instance logging to w at the given level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		cfg:    config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:               appName,
		Short:             "Knot hashes and the 128×128 grids built from them",
		Long:              `knotgrid computes knot hashes of strings and counts used squares and connected regions of the 128×128 bit grid derived from a seed.`,
		Version:           version,
		SilenceUsage:      true,
		PersistentPreRunE: c.setup,
	}

	flags := root.PersistentFlags()
	flags.BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	flags.StringVar(&c.configPath, "config", "", "path to a TOML config file")
	flags.StringVarP(&c.inputPath, "input", "f", "", "read input from a file instead of the argument or stdin")
	flags.IntVarP(&c.workers, "workers", "w", 0, "rows hashed concurrently (default from config, 1)")

	root.AddCommand(c.hashCommand())
	root.AddCommand(c.checksumCommand())
	root.AddCommand(c.usedCommand())
	root.AddCommand(c.regionsCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.statsCommand())

	return root
}

// setup loads the config file and applies flag overrides.
func (c *CLI) setup(cmd *cobra.Command, _ []string) error {
	var (
		cfg config.Config
		err error
	)
	if c.configPath != "" {
		cfg, err = config.Load(c.configPath)
	} else if path, perr := config.DefaultPath(); perr == nil {
		cfg, err = config.LoadOptional(path)
	} else {
		cfg = config.Default()
	}
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("workers") {
		if c.workers < 1 {
			return fmt.Errorf("--workers must be >= 1, got %d", c.workers)
		}
		cfg.Workers = c.workers
	}
	if c.verbose || cfg.Verbose {
		c.SetLogLevel(LogDebug)
	}
	c.cfg = cfg
	c.Logger.Debug("configuration", "workers", cfg.Workers, "rows", cfg.Rows, "cols", cfg.Cols)
	return nil
}

// diskOptions converts the resolved configuration into disk options.
func (c *CLI) diskOptions() []disk.Option {
	return []disk.Option{disk.WithWorkers(c.cfg.Workers)}
}

// errNoInput is returned when neither an argument, a file nor stdin
// provides any input.
var errNoInput = errors.New("no input: pass an argument, --input FILE, or pipe to stdin")
