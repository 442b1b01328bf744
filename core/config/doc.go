// File: doc.go
// Title: Package Documentation for config
// Description: Package config provides TOML and YAML configuration loading
//              with typed accessors for the dynstr tooling.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-02
// Modified: 2025-02-02
//
// Change History:
// - 2025-02-02 v0.1.0: Initial package documentation

// Package config provides configuration loading for the dynstr tooling.
//
// Overview
//
// Configuration files may be written in TOML or YAML; the format is detected
// from the file extension (.yaml/.yml selects YAML, everything else TOML)
// or forced explicitly. Values are accessed by dot-notation keys with typed
// getters that fall back to caller-supplied defaults:
//
//	cfg, err := config.Load("dynstr.toml")
//	if err != nil {
//	    return err
//	}
//	level := cfg.GetString("log.level", "info")
//	reverse := cfg.GetBool("sort.reverse", false)
//
// Errors carry codes from the core/error package (CodeNotFound for a missing
// file, CodeConfigError for parse failures, CodeIOError for read failures).
//
// Thread Safety
//
// A Config is immutable after loading and safe for concurrent reads.
//
package config
