package command

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// This file contains the subcommands that compute a single result.

const (
	baseFlag = "base"
	expFlag  = "exp"
)

func writeKV(out io.Writer, title string, kv ...any) {
	_, _ = fmt.Fprintf(out, "[%s]\n", title)
	for i := 0; i+1 < len(kv); i += 2 {
		_, _ = fmt.Fprintf(out, "%-12s = %v\n", kv[i], kv[i+1])
	}
}

// Flags are not marked as required, since they may also be set via environment or config file.
// Missing values are reported by parseNumber.
func registerModulusFlag(cmd *cobra.Command) {
	cmd.Flags().String(modulusFlag, "", "modulus, odd unless the range is standard; decimal or with 0x/0o/0b prefix")
}

func describe(c calculator) []any {
	return []any{"width", c.Bits(), "range", c.RangeName(), "modulus", c.Modulus()}
}

func getConvertCommand(rc *RootCommand) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert VALUE",
		Short: "Print the Montgomery representation of VALUE and the result of converting it back",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := rc.calculator()
			if err != nil {
				return err
			}
			x, err := parseNumber("value", args[0])
			if err != nil {
				return err
			}
			raw, roundTrip := c.Montgomery(x)
			writeKV(cmd.OutOrStdout(), "CONVERT", append(describe(c), "value", x, "montgomery", raw, "converted", roundTrip)...)
			return nil
		},
	}
	registerModulusFlag(cmd)
	return cmd
}

func getMulCommand(rc *RootCommand) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mul X Y",
		Short: "Compute X * Y modulo the modulus via Montgomery multiplication",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := rc.calculator()
			if err != nil {
				return err
			}
			x, err := parseNumber("x", args[0])
			if err != nil {
				return err
			}
			y, err := parseNumber("y", args[1])
			if err != nil {
				return err
			}
			writeKV(cmd.OutOrStdout(), "MUL", append(describe(c), "x", x, "y", y, "result", c.Multiply(x, y))...)
			return nil
		},
	}
	registerModulusFlag(cmd)
	return cmd
}

func getPowCommand(rc *RootCommand) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pow",
		Short: "Compute base^exp modulo the modulus, in Montgomery form and with plain modular arithmetic",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := rc.calculator()
			if err != nil {
				return err
			}
			base, err := parseNumber(baseFlag, rc.config.GetString(baseFlag))
			if err != nil {
				return err
			}
			e, err := parseNumber(expFlag, rc.config.GetString(expFlag))
			if err != nil {
				return err
			}
			result, err := c.Pow(base, e)
			if err != nil {
				return err
			}
			reference, err := c.ReferencePow(base, e)
			if err != nil {
				return err
			}
			writeKV(cmd.OutOrStdout(), "POW", append(describe(c), "base", base, "exponent", e, "result", result, "reference", reference)...)
			if result.Cmp(reference) != 0 {
				return ErrMismatch
			}
			return nil
		},
	}
	registerModulusFlag(cmd)
	cmd.Flags().String(baseFlag, "", "base")
	cmd.Flags().String(expFlag, "", "exponent; must fit into the word size")
	return cmd
}

func getInverseCommand(rc *RootCommand) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inverse VALUE",
		Short: "Compute the multiplicative inverse of VALUE modulo the modulus",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := rc.calculator()
			if err != nil {
				return err
			}
			x, err := parseNumber("value", args[0])
			if err != nil {
				return err
			}
			var result any = "none"
			if inv, ok := c.Inverse(x); ok {
				result = inv
			}
			writeKV(cmd.OutOrStdout(), "INVERSE", append(describe(c), "value", x, "inverse", result)...)
			return nil
		},
	}
	registerModulusFlag(cmd)
	return cmd
}

func getTwoPowCommand(rc *RootCommand) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "twopow",
		Short: "Compute 2^exp modulo the modulus",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := rc.calculator()
			if err != nil {
				return err
			}
			e, err := parseNumber(expFlag, rc.config.GetString(expFlag))
			if err != nil {
				return err
			}
			result, err := c.TwoPow(e)
			if err != nil {
				return err
			}
			writeKV(cmd.OutOrStdout(), "TWOPOW", append(describe(c), "exponent", e, "result", result)...)
			return nil
		},
	}
	registerModulusFlag(cmd)
	cmd.Flags().String(expFlag, "", "exponent; must fit into the word size")
	return cmd
}
