// Package config loads the portal's runtime settings.
//
// # Configuration Discovery
//
// Load follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/platter/config.toml
//  3. If the file does not exist, use Default()
//  4. If the file exists but a key is missing or empty, use its default
//
// # Default Values
//
//   - start_page: home
//   - log_file: ~/.local/state/platter/platter.log
//   - log_level: info
//   - activity_lines: 200 (lines of the session log kept for the activity tab)
//   - activity_poll_seconds: 2
//
// # TOML Format
//
//	start_page = "dining"
//	log_file = "~/.local/state/platter/platter.log"
//	log_level = "debug"
//	activity_lines = 200
//	activity_poll_seconds = 2
//
// Setting log_file = "off" disables the session log and the activity tab.
//
// # Validation
//
// Values are checked after decoding. log_level must be one of debug, info,
// warn or error; the numeric keys have upper bounds; start_page must name a
// portal page. Any violation makes Load fail at startup. A missing file
// is never an error.
//
// # Path Expansion
//
// A leading ~ expands to the user's home directory and every path is made
// absolute.
package config
