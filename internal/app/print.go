package app

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/five82/platter/internal/catalog"
	"github.com/five82/platter/internal/listing"
	"github.com/five82/platter/internal/nav"
)

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
var cellStyle = lipgloss.NewStyle().Padding(0, 1)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
}

// PrintDining writes the restaurants matching criteria as a table.
func PrintDining(w io.Writer, criteria listing.Criteria) error {
	if err := checkCriteria(criteria); err != nil {
		return err
	}
	cat, err := catalog.Load()
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}
	restaurants := listing.Filter(cat.Restaurants(), criteria)
	if len(restaurants) == 0 {
		_, err := fmt.Fprintln(w, "No restaurants match the selected filters.")
		return err
	}

	t := newTable("Name", "Category", "Rating", "Price", "Address", "Hours")
	for _, r := range restaurants {
		t.Row(r.Name, string(r.Category), fmt.Sprintf("%.1f (%d)", r.Rating, r.Reviews), r.PriceRange, r.Address, r.Hours)
	}
	_, err = fmt.Fprintf(w, "%s\nShowing %d of %d restaurants\n", t.Render(), len(restaurants), len(cat.Restaurants()))
	return err
}

// PrintMap writes the map locations in category, followed by the details
// of selectID when it is non-zero.
func PrintMap(w io.Writer, category string, selectID int) error {
	criteria := listing.Criteria{Category: category, MinRating: listing.All}
	if err := checkCriteria(criteria); err != nil {
		return err
	}
	cat, err := catalog.Load()
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	t := newTable("ID", "Name", "Type", "Category", "Rating", "Position")
	for _, l := range listing.Filter(cat.Locations(), criteria) {
		t.Row(fmt.Sprint(l.ID), l.Name, string(l.Kind), string(l.Category), fmt.Sprintf("%.1f", l.Rating),
			fmt.Sprintf("%.0f%%, %.0f%%", l.Position.X, l.Position.Y))
	}
	stats := cat.MapStats()
	if _, err := fmt.Fprintf(w, "%s\n%d locations: %d restaurants, %d markets, average rating %.1f\n",
		t.Render(), stats.Total, stats.Restaurants, stats.Markets, stats.AverageRating); err != nil {
		return err
	}

	if selectID == 0 {
		return nil
	}
	l, ok := cat.Location(selectID)
	if !ok {
		return fmt.Errorf("no location with id %d", selectID)
	}
	details := newTable("", l.Name).
		Row("Address", l.Address).
		Row("Phone", l.Phone).
		Row("Hours", l.Hours).
		Row("Certifications", strings.Join(l.Certifications, ", ")).
		Row("Specialties", strings.Join(l.Specialties, ", "))
	_, err = fmt.Fprintln(w, details.Render())
	return err
}

// PrintPages lists the navigable pages in menu order.
func PrintPages(w io.Writer) error {
	t := newTable("Page", "Title")
	for _, p := range nav.Pages() {
		t.Row(p.String(), p.Title())
	}
	_, err := fmt.Fprintln(w, t.Render())
	return err
}

// checkCriteria rejects filter labels the interactive filters never
// produce. The listing filter itself lets unknown labels through.
func checkCriteria(c listing.Criteria) error {
	if c.Category != "" && !strings.EqualFold(strings.TrimSpace(c.Category), listing.All) {
		if _, ok := catalog.ParseCategory(c.Category); !ok {
			return fmt.Errorf("unknown category %q", c.Category)
		}
	}
	if c.MinRating != "" && !strings.EqualFold(strings.TrimSpace(c.MinRating), listing.All) {
		if _, ok := listing.Threshold(c.MinRating); !ok {
			return fmt.Errorf("unknown rating %q", c.MinRating)
		}
	}
	return nil
}
