package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/knotgrid/knot"
)

// hashCommand creates the "hash" command.
func (c *CLI) hashCommand() *cobra.Command {
	var bits bool

	cmd := &cobra.Command{
		Use:   "hash [input]",
		Short: "Print the knot hash of the input",
		Long: `Print the 32-character hex knot hash of the input.

The input is trimmed of surrounding whitespace; an empty input is valid.
Characters above U+00FF are rejected.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := c.readInput(cmd, args)
			if err != nil {
				return err
			}
			c.Logger.Debug("hashing", "input", input, "bytes", len(input))

			d, err := knot.Sum(input)
			if err != nil {
				return err
			}
			if bits {
				fmt.Fprintln(cmd.OutOrStdout(), d.Bits())
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), d.Hex())
			return nil
		},
	}

	cmd.Flags().BoolVar(&bits, "bits", false, "print the 128-bit binary form instead of hex")
	return cmd
}

// checksumCommand creates the "checksum" command.
func (c *CLI) checksumCommand() *cobra.Command {
	var size int

	cmd := &cobra.Command{
		Use:   "checksum [lengths]",
		Short: "Run one knot round and print the product of the first two values",
		Long: `Parse a comma-separated list of lengths (e.g. "3,4,1,5"), run a single
round over a ring of --size slots, and print ring[0]*ring[1].`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := c.readInput(cmd, args)
			if err != nil {
				return err
			}
			lengths, err := knot.ParseLengths(input)
			if err != nil {
				return err
			}
			c.Logger.Debug("checksum", "size", size, "lengths", len(lengths))

			sum, err := knot.Checksum(size, lengths)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), sum)
			return nil
		},
	}

	cmd.Flags().IntVar(&size, "size", knot.HashSize, "ring size")
	return cmd
}
