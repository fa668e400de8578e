// Package ui provides the terminal user interface for Platter.
//
// # Architecture Overview
//
// The UI is a single Bubble Tea program. Model owns the page controller,
// one viewport for the page body, and a small state struct per page. Pages
// never talk to each other; leaving a page discards its view state.
//
// # Package Structure
//
//   - app.go: Model, Update/View, key and mouse routing, and Run
//   - header.go: tab bar, status line and footer hints
//   - keys.go: key bindings and the help groups
//   - help.go: full-screen help overlay
//   - modal.go: modal interface, submission acknowledgment and the jump palette
//   - static.go: markdown pages rendered through glamour
//   - dining.go: filtered restaurant listing
//   - mapview.go: simulated map with clickable markers
//   - forms.go: report and suggestion forms
//   - admin.go, reports.go: dashboard and analytics tabs
//   - theme.go, style_helpers.go, helpers.go, layout.go: styling and layout
//
// # Pages
//
// Tab and shift+tab cycle pages in menu order; ":" opens a fuzzy jump
// palette; clicking a header tab navigates directly. Esc returns home from
// any page that does not use it for something else.
//
// # Forms
//
// Form pages capture printable keys so fields can be typed into. Only
// control chords (ctrl+n, ctrl+p, ctrl+o, f1, ctrl+c) remain global while
// a form is shown. ctrl+s submits, ctrl+r clears.
//
// # Activity
//
// When a session log is configured, a background poller tails it into a
// state.Store and the admin Activity tab shows the latest entries. The UI
// refreshes its snapshot on every tick.
//
// # Themes
//
// T cycles Nightfox, Kanagawa and Slate. The choice is saved to the prefs
// file together with the ASCII marker toggle.
package ui
