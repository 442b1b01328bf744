// File: root.go
// Title: Root Command for the dynstr Tool
// Description: Defines the root cobra command, global flags, configuration
//              loading, and shared helpers for reading input lines into
//              DynString handles and writing them back out.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-02
// Modified: 2025-02-02
//
// Change History:
// - 2025-02-02 v0.1.0: Initial implementation with root command and helpers

package cmd

import (
	"bufio"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/msto63/dynstr/core/config"
	dserror "github.com/msto63/dynstr/core/error"
	"github.com/msto63/dynstr/core/log"
	"github.com/msto63/dynstr/dynstring"
)

var (
	configPath string
	verbose    bool

	cfg    *config.Config
	logger = log.New("dynstr")
)

var rootCmd = &cobra.Command{
	Use:   "dynstr",
	Short: "Work with dynamic byte strings",
	Long: `dynstr sorts, filters, and converts text lines using the DynString
dynamic byte-string library.

Lines are read from the given files, or from stdin when no file is named.
A configuration file (TOML or YAML) can provide defaults for the log level,
the output path, and the sort order.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a TOML or YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// setup loads the optional configuration file and applies the log level
func setup(cmd *cobra.Command, args []string) error {
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
		logger.Debugf("loaded config from %s (%s)", cfg.FilePath(), cfg.Format())
	}

	level := log.ParseLevel(cfg.GetString("log.level", "info"))
	if verbose {
		level = log.LevelDebug
	}
	logger.SetLevel(level)
	return nil
}

// readLines reads all lines from the named files, or from stdin when no
// file is given, into freshly allocated DynString handles. The caller owns
// the returned handles.
func readLines(files []string) ([]*dynstring.DynString, error) {
	if len(files) == 0 {
		return scanLines(os.Stdin)
	}

	var all []*dynstring.DynString
	for _, name := range files {
		f, err := os.Open(name)
		if err != nil {
			releaseAll(all)
			return nil, dserror.Wrap(err, "opening input file").
				WithCode(dserror.CodeIOError).
				WithDetail("file", name)
		}
		lines, err := scanLines(f)
		f.Close()
		if err != nil {
			releaseAll(all)
			return nil, err
		}
		all = append(all, lines...)
	}
	return all, nil
}

// scanLines reads r line by line into DynString handles
func scanLines(r io.Reader) ([]*dynstring.DynString, error) {
	var lines []*dynstring.DynString
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		s := dynstring.New()
		if err := s.SetBytes(scanner.Bytes()); err != nil {
			releaseAll(lines)
			return nil, err
		}
		lines = append(lines, s)
	}
	if err := scanner.Err(); err != nil {
		releaseAll(lines)
		return nil, dserror.Wrap(err, "reading input").
			WithCode(dserror.CodeIOError)
	}
	return lines, nil
}

// releaseAll releases every handle in the slice
func releaseAll(strs []*dynstring.DynString) {
	for _, s := range strs {
		s.Release()
	}
}

// writeLines writes the handles line by line to the configured output:
// the output.path config key when set, stdout otherwise. The stream is
// closed here, by its owner, not by the write operations.
func writeLines(strs []*dynstring.DynString) error {
	var w io.Writer = os.Stdout
	if path := cfg.GetString("output.path", ""); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return dserror.Wrap(err, "creating output file").
				WithCode(dserror.CodeIOError).
				WithDetail("file", path)
		}
		defer f.Close()
		w = f
		logger.Debugf("writing to %s", path)
	}

	buffered := bufio.NewWriter(w)
	for _, s := range strs {
		if _, err := s.WriteTo(buffered); err != nil {
			return err
		}
		if err := buffered.WriteByte('\n'); err != nil {
			return dserror.Wrap(err, "writing output").
				WithCode(dserror.CodeIOError)
		}
	}
	return buffered.Flush()
}
