// File: doc.go
// Title: Package Documentation for log
// Description: Package log provides a small leveled logger for the dynstr
//              command-line tooling.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-02
// Modified: 2025-02-02
//
// Change History:
// - 2025-02-02 v0.1.0: Initial package documentation

// Package log provides leveled, timestamped text logging for the dynstr
// tooling.
//
// Overview
//
// Loggers are named, filter by a minimum Level, and write plain-text lines
// of the form
//
//	2025-02-02 14:03:17.512 [INF] dynstr: sorted 128 lines
//
// to an io.Writer (stderr by default). The dynstring library itself never
// logs; all diagnostics belong to the callers, which keeps the core free of
// out-of-band side effects.
//
// Usage
//
//	logger := log.New("dynstr").WithLevel(log.LevelDebug)
//	logger.Infof("sorted %d lines", n)
//
// Thread Safety
//
// All methods are safe for concurrent use; emission is serialized by an
// internal mutex.
//
package log
