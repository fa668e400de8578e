package ui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/five82/platter/internal/catalog"
	"github.com/five82/platter/internal/listing"
)

// The simulated map starts at this body line and column.
const (
	mapTopLine = 5
	mapLeftCol = 1
)

type mapState struct {
	category  string
	selection listing.Selection[int]
	cursor    int // index into the visible markers
}

func newMapState() mapState {
	return mapState{category: listing.All}
}

// visibleLocations applies the map's category filter.
func (m Model) visibleLocations() []catalog.Location {
	if m.catalog == nil {
		return nil
	}
	return listing.Filter(m.catalog.Locations(), listing.Criteria{Category: m.mapView.category, MinRating: listing.All})
}

func (m Model) handleMapKey(msg tea.KeyMsg) (Model, bool) {
	visible := m.visibleLocations()
	switch {
	case key.Matches(msg, m.keys.NextMarker):
		if len(visible) > 0 {
			m.mapView.cursor = (m.mapView.cursor + 1) % len(visible)
		}
	case key.Matches(msg, m.keys.PrevMarker):
		if len(visible) > 0 {
			m.mapView.cursor = (m.mapView.cursor - 1 + len(visible)) % len(visible)
		}
	case key.Matches(msg, m.keys.Select):
		if m.mapView.cursor < len(visible) {
			m.selectLocation(visible[m.mapView.cursor])
		}
	case key.Matches(msg, m.keys.Close):
		if _, ok := m.mapView.selection.Current(); !ok {
			// esc with nothing open falls through to the global back key.
			return m, msg.String() != "esc"
		}
		m.mapView.selection = m.mapView.selection.Clear()
		m.listLog.Info("clear selection", zap.String("page", "map"))
	case key.Matches(msg, m.keys.CycleCategory):
		m.setMapCategory(listing.NextCategory(catalog.Categories(), m.mapView.category))
	case key.Matches(msg, m.keys.ResetFilters):
		m.setMapCategory(listing.All)
	case key.Matches(msg, m.keys.ToggleMarkers):
		m.prefs.ASCIIMarkers = !m.prefs.ASCIIMarkers
		m.savePrefs()
	default:
		return m, false
	}
	return m, true
}

// setMapCategory changes the marker filter. The open detail panel stays
// open even when its marker is filtered out.
func (m *Model) setMapCategory(category string) {
	if category == m.mapView.category {
		return
	}
	m.mapView.category = category
	m.mapView.cursor = 0
	m.listLog.Info("filter", zap.String("page", "map"), zap.String("category", category))
}

func (m *Model) selectLocation(l catalog.Location) {
	m.mapView.selection = m.mapView.selection.Select(l.ID)
	m.listLog.Info("select", zap.String("page", "map"), zap.Int("id", l.ID), zap.String("name", l.Name))
}

// mapSize returns the grid size in cells for the current terminal width.
func (m Model) mapSize() (int, int) {
	avail := m.contentWidth() - 2
	if m.width >= LayoutSideBySideWidth {
		avail = avail*2/3 - 2
	}
	w := min(max(avail, mapMinWidth), mapMaxWidth)
	h := min(max(w*2/5, mapMinHeight), mapMaxHeight)
	return w, h
}

// markerCell converts a percent position into grid coordinates.
func markerCell(p catalog.Position, w, h int) (int, int) {
	col := int(math.Round(p.X / 100 * float64(w-1)))
	row := int(math.Round(p.Y / 100 * float64(h-1)))
	return col, row
}

// locationAt finds the visible marker under a grid cell. A marker also
// answers for its immediate left and right neighbours.
func locationAt(locations []catalog.Location, col, row, w, h int) (int, bool) {
	best, bestDist := -1, 2
	for i, l := range locations {
		c, r := markerCell(l.Position, w, h)
		if r != row {
			continue
		}
		if d := abs(c - col); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best, best >= 0
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// clickMap selects the marker under a click at screen column x and body
// line row.
func (m *Model) clickMap(x, row int) {
	w, h := m.mapSize()
	col, line := x-mapLeftCol, row-mapTopLine
	if col < 0 || col >= w || line < 0 || line >= h {
		return
	}
	visible := m.visibleLocations()
	if i, ok := locationAt(visible, col, line, w, h); ok {
		m.mapView.cursor = i
		m.selectLocation(visible[i])
	}
}

type mapCell struct {
	ch    string
	style lipgloss.Style
	kind  string // run grouping key
}

// renderGrid draws streets, the city center and the markers.
func (m Model) renderGrid(visible []catalog.Location, w, h int) string {
	styles := m.theme.Styles()
	ascii := m.prefs.ASCIIMarkers
	ground := lipgloss.NewStyle().Background(lipgloss.Color(m.theme.Ground))
	street := ground.Foreground(lipgloss.Color(m.theme.Street))

	horiz, vert, cross := "─", "│", "┼"
	if ascii {
		horiz, vert, cross = "-", "|", "+"
	}

	grid := make([][]mapCell, h)
	rows := map[int]bool{h / 3: true, 2 * h / 3: true}
	cols := map[int]bool{w / 4: true, 3 * w / 4: true}
	for r := range grid {
		grid[r] = make([]mapCell, w)
		for c := range grid[r] {
			cell := mapCell{ch: " ", style: ground, kind: "ground"}
			switch {
			case rows[r] && cols[c]:
				cell = mapCell{ch: cross, style: street, kind: "street"}
			case rows[r]:
				cell = mapCell{ch: horiz, style: street, kind: "street"}
			case cols[c]:
				cell = mapCell{ch: vert, style: street, kind: "street"}
			}
			grid[r][c] = cell
		}
	}

	city := ground.Foreground(lipgloss.Color(m.theme.Muted)).Bold(true)
	for i, ch := range "City" {
		if c := w/2 - 2 + i; c >= 0 && c < w {
			grid[h/2][c] = mapCell{ch: string(ch), style: city, kind: "city"}
		}
	}

	for i, l := range visible {
		col, row := markerCell(l.Position, w, h)
		symbol := markerSymbol(l.Kind, m.mapView.selection.IsSelected(l.ID), ascii)
		style := ground.Foreground(styles.CategoryColor(l.Category)).Bold(true)
		if i == m.mapView.cursor {
			style = style.Reverse(true)
		}
		grid[row][col] = mapCell{ch: symbol, style: style, kind: fmt.Sprintf("marker%d", l.ID)}

		// Selected markers carry their name above, like a popup.
		if m.mapView.selection.IsSelected(l.ID) && row > 0 {
			label := truncate(l.Name, w)
			start := min(max(col-lipgloss.Width(label)/2, 0), w-lipgloss.Width(label))
			popup := lipgloss.NewStyle().
				Background(lipgloss.Color(m.theme.Surface)).
				Foreground(lipgloss.Color(m.theme.Text)).
				Bold(true)
			for j, ch := range []rune(label) {
				if c := start + j; c < w {
					grid[row-1][c] = mapCell{ch: string(ch), style: popup, kind: "popup"}
				}
			}
		}
	}

	lines := make([]string, h)
	for r, row := range grid {
		var b strings.Builder
		for c := 0; c < len(row); {
			run := row[c]
			var text strings.Builder
			for c < len(row) && row[c].kind == run.kind {
				text.WriteString(row[c].ch)
				c++
			}
			b.WriteString(run.style.Render(text.String()))
		}
		lines[r] = b.String()
	}
	return strings.Join(lines, "\n")
}

func markerSymbol(kind catalog.Kind, selected, ascii bool) string {
	switch {
	case selected && ascii:
		return "@"
	case selected:
		return "◉"
	case kind == catalog.KindMarket && ascii:
		return "M"
	case kind == catalog.KindMarket:
		return "■"
	case ascii:
		return "R"
	default:
		return "●"
	}
}

func (m Model) renderMap() string {
	styles := m.theme.Styles()
	w, h := m.mapSize()
	visible := m.visibleLocations()
	if m.mapView.cursor >= len(visible) {
		m.mapView.cursor = 0
	}

	categories := []string{listing.All}
	for _, c := range catalog.Categories() {
		categories = append(categories, string(c))
	}

	// These header lines must add up to mapTopLine.
	var b strings.Builder
	b.WriteString(styles.Title.Render("City Food Map"))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("Discover restaurants and markets throughout the city"))
	b.WriteString("\n\n")
	b.WriteString(styles.MutedText.Render("Category (c) "))
	b.WriteString(choiceRow(categories, filterLabel(m.mapView.category), styles.MutedText, styles.Selected))
	b.WriteString("\n\n")

	pad := lipgloss.NewStyle().PaddingLeft(mapLeftCol)
	left := pad.Render(m.renderGrid(visible, w, h) + "\n" + m.renderLegend() + "\n\n" + m.renderMarkerList(visible, w))
	right := m.renderLocationPanel() + "\n\n" + m.renderMapStats()

	if m.width >= LayoutSideBySideWidth {
		panelWidth := max(24, m.contentWidth()-w-6)
		right = lipgloss.NewStyle().Width(panelWidth).PaddingLeft(3).Render(right)
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, left, right))
	} else {
		b.WriteString(left)
		b.WriteString("\n\n")
		b.WriteString(pad.Render(right))
	}
	return b.String()
}

func (m Model) renderLegend() string {
	styles := m.theme.Styles()
	parts := make([]string, 0, len(catalog.Categories()))
	for _, c := range catalog.Categories() {
		kind := catalog.KindRestaurant
		if c == catalog.MarketStall {
			kind = catalog.KindMarket
		}
		dot := lipgloss.NewStyle().Foreground(styles.CategoryColor(c)).Render(markerSymbol(kind, false, m.prefs.ASCIIMarkers))
		parts = append(parts, dot+" "+styles.MutedText.Render(string(c)))
	}
	return strings.Join(parts, "   ")
}

// renderMarkerList lists the visible markers in filter order; the cursor
// row matches the highlighted marker.
func (m Model) renderMarkerList(visible []catalog.Location, width int) string {
	styles := m.theme.Styles()
	var b strings.Builder
	b.WriteString(styles.Section.Render(fmt.Sprintf("Locations (%d)", len(visible))))
	if len(visible) == 0 {
		b.WriteString("\n")
		b.WriteString(styles.FaintText.Render("No locations in this category."))
	}
	for i, l := range visible {
		line := fmt.Sprintf("%-24s %-12s %.1f", truncate(l.Name, 24), l.Category, l.Rating)
		line = truncate(line, width-2)
		b.WriteString("\n")
		switch {
		case i == m.mapView.cursor:
			b.WriteString(styles.Selected.Render("> " + line))
		case m.mapView.selection.IsSelected(l.ID):
			b.WriteString(styles.AccentText.Render("* " + line))
		default:
			b.WriteString(styles.Text.Render("  " + line))
		}
	}
	return b.String()
}

func (m Model) renderLocationPanel() string {
	styles := m.theme.Styles()
	id, ok := m.mapView.selection.Current()
	var loc catalog.Location
	if ok && m.catalog != nil {
		loc, ok = m.catalog.Location(id)
	}
	if !ok {
		return styles.Section.Render("Select a Location") + "\n" +
			styles.MutedText.Render("Pick a marker with h/l and enter, or click it, to view details about restaurants and markets.")
	}

	var b strings.Builder
	b.WriteString(styles.Title.Render(loc.Name))
	b.WriteString(styles.FaintText.Render("  [x] close"))
	b.WriteString("\n")
	b.WriteString(styles.WarningText.Render(stars(loc.Rating, m.prefs.ASCIIMarkers)))
	b.WriteString(styles.Text.Render(fmt.Sprintf(" %.1f", loc.Rating)))
	b.WriteString("\n")
	b.WriteString(styles.Text.Render(loc.Address))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render(loc.Phone))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render(loc.Hours))
	b.WriteString("\n\n")
	b.WriteString(styles.Section.Render("Specialties"))
	b.WriteString("\n")
	b.WriteString(chips(loc.Specialties, styles.InfoText, 40))
	b.WriteString("\n\n")
	b.WriteString(styles.Section.Render("Certifications"))
	for _, c := range loc.Certifications {
		b.WriteString("\n")
		b.WriteString(styles.SuccessText.Render("✓ " + c))
	}
	return b.String()
}

func (m Model) renderMapStats() string {
	if m.catalog == nil {
		return ""
	}
	styles := m.theme.Styles()
	stats := m.catalog.MapStats()
	row := func(label, value string) string {
		return styles.MutedText.Render(fmt.Sprintf("%-16s", label)) + styles.Text.Bold(true).Render(value)
	}
	return strings.Join([]string{
		styles.Section.Render("Map Statistics"),
		row("Total Locations", fmt.Sprint(stats.Total)),
		row("Restaurants", fmt.Sprint(stats.Restaurants)),
		row("Markets", fmt.Sprint(stats.Markets)),
		row("Avg Rating", fmt.Sprintf("%.1f", stats.AverageRating)),
	}, "\n")
}
