// Package app provides the orchestration layer for Platter.
//
// # Overview
//
// This package wires together configuration, the session log, the sample
// data and the UI. It is the composition root where dependencies are
// created and connected.
//
// # Startup
//
//  1. Load ~/.config/platter/config.toml (defaults when missing)
//  2. Resolve the start page and theme, letting flags override both
//  3. Open the rotating session log
//  4. Load the embedded catalog and page content
//  5. Start the activity poller when a log file is configured
//  6. Run the TUI until the user quits or the context is cancelled
//
// # Components
//
//   - app.go: Run, the interactive entry point
//   - poller.go: background goroutine that tails the session log
//   - print.go: plain table output for the non-interactive commands
//
// # Data Flow
//
//	┌──────────────┐       ┌──────────────┐
//	│   Poller     │──────▶│ state.Store  │
//	│ (session log)│       └──────┬───────┘
//	└──────────────┘              │ Snapshot()
//	                              ▼
//	                       ┌──────────────┐
//	                       │   UI tick    │ Activity tab
//	                       └──────────────┘
//
// The poller backs off when the log cannot be read. A missing log is not a
// failure; it simply has no entries yet.
package app
