package ui

import "time"

// Terminal width thresholds for responsive layouts.
const (
	// LayoutCompactWidth is the threshold below which the header shows
	// short page labels and side panels stack under the main panel.
	LayoutCompactWidth = 100

	// LayoutSideBySideWidth is the minimum width for the map and its
	// detail panel to share a row.
	LayoutSideBySideWidth = 110
)

// Fixed chrome around the page body.
const (
	headerHeight = 2 // tab bar + status line
	footerHeight = 1 // key hints
)

// Simulated map bounds, in cells.
const (
	mapMinWidth  = 32
	mapMaxWidth  = 90
	mapMinHeight = 12
	mapMaxHeight = 24
)

// DefaultUIInterval is how often the UI re-reads the activity store.
const DefaultUIInterval = time.Second
