package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/platter/internal/nav"
)

const logo = "platter"

// shortLabels keep the tab bar on one line in narrow terminals.
var shortLabels = map[nav.Page]string{
	nav.Home:          "Home",
	nav.Education:     "Learn",
	nav.Dining:        "Dining",
	nav.Safety:        "Safety",
	nav.ReportIllness: "Illness",
	nav.ReportSafety:  "Concern",
	nav.Suggestions:   "Ideas",
	nav.Map:           "Map",
	nav.Admin:         "Admin",
	nav.Reports:       "Reports",
}

type tabSpan struct {
	page       nav.Page
	label      string
	start, end int // screen columns, end exclusive
}

// tabLayout positions the page tabs after the logo. Full titles are used
// when they fit.
func (m Model) tabLayout() []tabSpan {
	pages := nav.Pages()
	full := len(logo) + 3
	for _, p := range pages {
		full += lipgloss.Width(p.Title()) + 2
	}
	useFull := m.width >= LayoutCompactWidth && full <= m.width

	x := 1 + len(logo) + 2 // header padding, logo, gap
	spans := make([]tabSpan, 0, len(pages))
	for _, p := range pages {
		label := shortLabels[p]
		if useFull {
			label = p.Title()
		}
		w := lipgloss.Width(label) + 2
		spans = append(spans, tabSpan{page: p, label: label, start: x, end: x + w})
		x += w
	}
	return spans
}

// tabAt maps a click in the header to a page tab.
func (m Model) tabAt(x, y int) (nav.Page, bool) {
	if y != 0 {
		return "", false
	}
	for _, s := range m.tabLayout() {
		if x >= s.start && x < s.end {
			return s.page, true
		}
	}
	return "", false
}

// renderHeader renders the tab bar and the status line.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.Surface)

	tabs := bg.Render(logo, styles.Logo) + bg.Spaces(2)
	current := m.nav.Current()
	for _, s := range m.tabLayout() {
		label := " " + s.label + " "
		if s.page == current {
			tabs += styles.Selected.Bold(true).Render(label)
		} else {
			tabs += bg.Render(label, styles.MutedText)
		}
	}
	line1 := styles.Header.Width(m.width).MaxHeight(1).Render(tabs)

	parts := []string{bg.Render(current.Title(), styles.Title)}
	if m.notice != "" {
		parts = append(parts, bg.Render(m.notice, styles.InfoText))
	}
	parts = append(parts, m.activityIndicator(bg))
	line2 := styles.Header.Width(m.width).MaxHeight(1).Render(bg.Join(parts, "  ·  "))

	return line1 + "\n" + line2
}

// activityIndicator summarises the session log poller.
func (m Model) activityIndicator(bg BgStyle) string {
	styles := m.theme.Styles()
	snap := m.snapshot
	switch {
	case m.store == nil || m.logFile == "":
		return bg.Render("log off", styles.FaintText)
	case snap.IsStale():
		return bg.Render(fmt.Sprintf("log unreadable (%d)", snap.ConsecutiveFailures), styles.DangerText)
	case snap.LastError != nil:
		return bg.Render("log retrying", styles.WarningText)
	case !snap.HasEntries:
		return bg.Render("log waiting", styles.FaintText)
	default:
		return bg.Render(fmt.Sprintf("log %d lines", len(snap.Entries)), styles.MutedText)
	}
}

// renderFooter shows the key hints for the active page.
func (m Model) renderFooter() string {
	styles := m.theme.Styles()
	return styles.Footer.Width(m.width).MaxHeight(1).Render(m.help.ShortHelpView(m.pageHelp()))
}

// pageHelp returns the footer bindings for the active page.
func (m Model) pageHelp() []key.Binding {
	k := m.keys
	switch m.nav.Current() {
	case nav.Home:
		return []key.Binding{k.Open, k.NextPage, k.Jump, k.Help, k.Quit}
	case nav.Dining:
		return []key.Binding{k.CycleCategory, k.CycleRating, k.ResetFilters, k.Down, k.Jump, k.Help}
	case nav.Map:
		return []key.Binding{k.NextMarker, k.Select, k.Close, k.CycleCategory, k.ToggleMarkers, k.Help}
	case nav.ReportIllness, nav.ReportSafety, nav.Suggestions:
		return []key.Binding{k.NextField, k.PrevField, k.Toggle, k.Submit, k.ResetForm, k.Escape}
	case nav.Admin:
		return []key.Binding{k.NextTab, k.PrevTab, k.Down, k.Select, k.Jump, k.Help}
	case nav.Reports:
		return []key.Binding{k.NextTab, k.PrevTab, k.CycleDateRange, k.Jump, k.Help}
	default:
		return k.ShortHelp()
	}
}
