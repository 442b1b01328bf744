// File: sort.go
// Title: Sort Command
// Description: Implements the sort subcommand: reads lines into DynString
//              handles, sorts them with the default byte-value ordering or a
//              reversed comparator, and writes them back out.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-02
// Modified: 2025-02-02
//
// Change History:
// - 2025-02-02 v0.1.0: Initial implementation

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/dynstr/dynstring"
)

var sortReverse bool

var sortCmd = &cobra.Command{
	Use:   "sort [file...]",
	Short: "Sort lines in byte-value order",
	Long: `Reads lines from the given files (or stdin) and prints them sorted
in byte-value order. With --reverse the order is inverted via a custom
comparator. The sort.reverse config key sets the default direction.`,
	RunE: runSort,
}

func init() {
	sortCmd.Flags().BoolVarP(&sortReverse, "reverse", "r", false, "sort in descending order")
	rootCmd.AddCommand(sortCmd)
}

func runSort(cmd *cobra.Command, args []string) error {
	lines, err := readLines(args)
	if err != nil {
		return err
	}
	defer releaseAll(lines)

	reverse := sortReverse || (!cmd.Flags().Changed("reverse") && cfg.GetBool("sort.reverse", false))
	if reverse {
		dynstring.SortFunc(lines, func(a, b byte) int {
			return int(b) - int(a)
		})
	} else {
		dynstring.Sort(lines)
	}
	logger.Debugf("sorted %d lines (reverse=%v)", len(lines), reverse)

	return writeLines(lines)
}
