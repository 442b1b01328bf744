// File: filter.go
// Title: Filter Command
// Description: Implements the filter subcommand: removes from every input
//              line all bytes outside a caller-given inclusive range.
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

	dserror "github.com/msto63/dynstr/core/error"
)

var filterKeep string

var filterCmd = &cobra.Command{
	Use:   "filter --keep lo-hi [file...]",
	Short: "Keep only bytes within a range",
	Long: `Reads lines from the given files (or stdin) and removes from each
line every byte outside the inclusive range given as --keep, for example
--keep b-f or --keep 0-9.`,
	RunE: runFilter,
}

func init() {
	filterCmd.Flags().StringVarP(&filterKeep, "keep", "k", "", "inclusive byte range to keep, as lo-hi")
	_ = filterCmd.MarkFlagRequired("keep")
	rootCmd.AddCommand(filterCmd)
}

// parseKeepRange parses a "lo-hi" range of single bytes
func parseKeepRange(spec string) (lo, hi byte, err error) {
	if len(spec) != 3 || spec[1] != '-' || spec[0] > spec[2] {
		return 0, 0, dserror.Newf("invalid range %q, expected lo-hi", spec).
			WithCode(dserror.CodeInvalidInput).
			WithOperation("dynstr.filter")
	}
	return spec[0], spec[2], nil
}

func runFilter(cmd *cobra.Command, args []string) error {
	lo, hi, err := parseKeepRange(filterKeep)
	if err != nil {
		return err
	}

	lines, err := readLines(args)
	if err != nil {
		return err
	}
	defer releaseAll(lines)

	keep := func(c byte) bool { return c >= lo && c <= hi }
	for _, line := range lines {
		if err := line.Filter(keep); err != nil {
			return err
		}
	}
	logger.Debugf("filtered %d lines to range %q-%q", len(lines), lo, hi)

	return writeLines(lines)
}
