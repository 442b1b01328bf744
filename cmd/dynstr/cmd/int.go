// File: int.go
// Title: Integer Round-Trip Command
// Description: Implements the int subcommand: parses its argument through
//              the DynString integer conversion, formats it back, and prints
//              text, value, length, and memory footprint.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-02
// Modified: 2025-02-02
//
// Change History:
// - 2025-02-02 v0.1.0: Initial implementation

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/dynstr/dynstring"
)

var intCmd = &cobra.Command{
	Use:   "int <value>",
	Short: "Round-trip an integer through the string core",
	Long: `Parses the argument as a base-10 integer using the DynString
conversion, formats the value back into a fresh instance, and prints the
text, the parsed value, the length, and the memory footprint.`,
	Args: cobra.ExactArgs(1),
	RunE: runInt,
}

func init() {
	rootCmd.AddCommand(intCmd)
}

func runInt(cmd *cobra.Command, args []string) error {
	in := dynstring.New()
	defer in.Release()
	if err := in.SetString(args[0]); err != nil {
		return err
	}

	value, err := in.Int()
	if err != nil {
		return err
	}

	out := dynstring.New()
	defer out.Release()
	if err := out.SetInt(value); err != nil {
		return err
	}

	fmt.Printf("text:   %s\n", out)
	fmt.Printf("value:  %d\n", value)
	fmt.Printf("length: %d\n", out.Len())
	fmt.Printf("memory: %d bytes\n", out.MemUsage())
	return nil
}
