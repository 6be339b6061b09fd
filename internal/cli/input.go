package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// readInput returns the command input with surrounding whitespace removed.
// Sources, in order: the first positional argument, the --input file,
// then stdin.
func (c *CLI) readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.TrimSpace(args[0]), nil
	}
	if c.inputPath != "" {
		data, err := os.ReadFile(c.inputPath)
		if err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return strings.TrimSpace(string(data)), nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

// readSeed is readInput for grid commands, where an empty seed is
// almost certainly a mistake.
func (c *CLI) readSeed(cmd *cobra.Command, args []string) (string, error) {
	seed, err := c.readInput(cmd, args)
	if err != nil {
		return "", err
	}
	if seed == "" {
		return "", errNoInput
	}
	return seed, nil
}
