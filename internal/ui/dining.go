package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/five82/platter/internal/catalog"
	"github.com/five82/platter/internal/listing"
)

type diningState struct {
	criteria listing.Criteria
}

func newDiningState() diningState {
	return diningState{criteria: listing.AllCriteria()}
}

func (m Model) handleDiningKey(msg tea.KeyMsg) (Model, bool) {
	c := m.dining.criteria
	switch {
	case key.Matches(msg, m.keys.CycleCategory):
		c.Category = listing.NextCategory(catalog.DiningCategories(), c.Category)
	case key.Matches(msg, m.keys.CycleRating):
		c.MinRating = listing.NextRating(c.MinRating)
	case key.Matches(msg, m.keys.ResetFilters):
		c = listing.AllCriteria()
	default:
		return m, false
	}
	if c != m.dining.criteria {
		m.dining.criteria = c
		m.body.GotoTop()
		m.listLog.Info("filter", zap.String("page", "dining"), zap.Stringer("criteria", c))
	}
	return m, true
}

// visibleRestaurants applies the dining filter to the catalog.
func (m Model) visibleRestaurants() []catalog.Restaurant {
	if m.catalog == nil {
		return nil
	}
	return listing.Filter(m.catalog.Restaurants(), m.dining.criteria)
}

func (m Model) renderDining() string {
	styles := m.theme.Styles()
	width := m.contentWidth()
	ascii := m.prefs.ASCIIMarkers
	pad := lipgloss.NewStyle().PaddingLeft(1)

	var b strings.Builder
	b.WriteString(styles.Title.Render("Dining Guide"))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("Discover the best restaurants, markets, and local food specialties in our city"))
	b.WriteString("\n\n")

	// Filters
	categories := []string{listing.All}
	for _, c := range catalog.DiningCategories() {
		categories = append(categories, string(c))
	}
	ratings := append([]string{listing.All}, listing.RatingLabels()...)
	b.WriteString(styles.Section.Render("Filter Options"))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("Category  (c) "))
	b.WriteString(choiceRow(categories, filterLabel(m.dining.criteria.Category), styles.MutedText, styles.Selected))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("Rating    (r) "))
	b.WriteString(choiceRow(ratings, filterLabel(m.dining.criteria.MinRating), styles.MutedText, styles.Selected))
	b.WriteString("\n\n")

	// Restaurants
	visible := m.visibleRestaurants()
	total := 0
	if m.catalog != nil {
		total = len(m.catalog.Restaurants())
	}
	b.WriteString(styles.Section.Render("Restaurants"))
	if m.dining.criteria.IsAll() {
		b.WriteString(styles.FaintText.Render(fmt.Sprintf("  showing all %d", total)))
	} else {
		b.WriteString(styles.FaintText.Render(fmt.Sprintf("  showing %d of %d  (0 shows all)", len(visible), total)))
	}
	b.WriteString("\n\n")
	if len(visible) == 0 {
		b.WriteString(styles.FaintText.Render("  No restaurants match the selected filters."))
		b.WriteString("\n\n")
	}
	for _, r := range visible {
		b.WriteString(pad.Render(m.restaurantCard(r, width-2, ascii)))
		b.WriteString("\n\n")
	}

	// Markets
	if m.catalog != nil {
		b.WriteString(styles.Section.Render("Local Markets"))
		b.WriteString("\n\n")
		for _, mk := range m.catalog.Markets() {
			var card strings.Builder
			card.WriteString(styles.Title.Render(mk.Name))
			card.WriteString("\n")
			card.WriteString(styles.MutedText.Render(mk.Address + "  ·  " + mk.Hours))
			card.WriteString("\n")
			card.WriteString(styles.FaintText.Render("Available Items"))
			card.WriteString("\n")
			card.WriteString(chips(mk.Specialties, styles.InfoText, width-4))
			b.WriteString(pad.Render(card.String()))
			b.WriteString("\n\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m Model) restaurantCard(r catalog.Restaurant, width int, ascii bool) string {
	styles := m.theme.Styles()
	badge := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.theme.Background)).
		Background(styles.CategoryColor(r.Category)).
		Padding(0, 1).
		Render(string(r.Category))

	var b strings.Builder
	b.WriteString(styles.Title.Render(r.Name))
	b.WriteString("  ")
	b.WriteString(badge)
	b.WriteString("  ")
	b.WriteString(styles.MutedText.Render(r.PriceRange))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render(r.Cuisine))
	b.WriteString("\n")
	b.WriteString(styles.WarningText.Render(stars(r.Rating, ascii)))
	b.WriteString(styles.Text.Render(fmt.Sprintf(" %.1f", r.Rating)))
	b.WriteString(styles.FaintText.Render(fmt.Sprintf(" (%d reviews)", r.Reviews)))
	b.WriteString("\n")
	b.WriteString(styles.Text.Render(r.Address))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render(r.Phone + "  ·  " + r.Hours))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render("Specialties"))
	b.WriteString("\n")
	b.WriteString(chips(r.Specialties, styles.InfoText, width))
	b.WriteString("\n")
	b.WriteString(chips(r.Certifications, styles.SuccessText, width))
	return b.String()
}

// filterLabel maps a blank criteria value onto the "all" choice.
func filterLabel(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return listing.All
	}
	return v
}
