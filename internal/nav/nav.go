package nav

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

// Page identifies one view of the portal.
type Page string

const (
	Home          Page = "home"
	Education     Page = "education"
	Dining        Page = "dining"
	Safety        Page = "safety"
	ReportIllness Page = "report-illness"
	ReportSafety  Page = "report-safety"
	Suggestions   Page = "suggestions"
	Map           Page = "map"
	Admin         Page = "admin"
	Reports       Page = "reports"
)

// order is the header order; it is also the tab/shift+tab cycle.
var order = []Page{
	Home,
	Education,
	Dining,
	Safety,
	ReportIllness,
	ReportSafety,
	Suggestions,
	Map,
	Admin,
	Reports,
}

var titles = map[Page]string{
	Home:          "Home",
	Education:     "Food Education",
	Dining:        "Dining Guide",
	Safety:        "Food Safety",
	ReportIllness: "Report Illness",
	ReportSafety:  "Report Safety Concern",
	Suggestions:   "Suggestions",
	Map:           "Map View",
	Admin:         "Admin Dashboard",
	Reports:       "Reports & Analytics",
}

// Pages returns every page in header order.
func Pages() []Page {
	out := make([]Page, len(order))
	copy(out, order)
	return out
}

// Parse resolves a page id. Matching ignores case and surrounding space.
func Parse(value string) (Page, bool) {
	p := Page(strings.ToLower(strings.TrimSpace(value)))
	if _, ok := titles[p]; ok {
		return p, true
	}
	return Home, false
}

// Valid reports whether p is one of the known pages.
func (p Page) Valid() bool {
	_, ok := titles[p]
	return ok
}

// Title returns the display title for the page.
func (p Page) Title() string {
	if t, ok := titles[p]; ok {
		return t
	}
	return titles[Home]
}

func (p Page) String() string { return string(p) }

// Controller holds the currently displayed page.
type Controller struct {
	current Page
}

// NewController starts on the given page, or home when start is unknown.
func NewController(start Page) Controller {
	if !start.Valid() {
		start = Home
	}
	return Controller{current: start}
}

// Current returns the active page.
func (c Controller) Current() Page {
	if c.current == "" {
		return Home
	}
	return c.current
}

// Navigate switches to p. Unknown pages render home, matching the
// original render switch's default branch.
func (c Controller) Navigate(p Page) Controller {
	if !p.Valid() {
		p = Home
	}
	c.current = p
	return c
}

// Next moves to the following page in header order, wrapping around.
func (c Controller) Next() Controller {
	return c.Navigate(order[(c.index()+1)%len(order)])
}

// Prev moves to the preceding page in header order, wrapping around.
func (c Controller) Prev() Controller {
	return c.Navigate(order[(c.index()-1+len(order))%len(order)])
}

func (c Controller) index() int {
	cur := c.Current()
	for i, p := range order {
		if p == cur {
			return i
		}
	}
	return 0
}

// Search ranks pages whose title or id fuzzily matches query, best match
// first. An empty query returns every page in header order.
func Search(query string) []Page {
	query = strings.TrimSpace(query)
	if query == "" {
		return Pages()
	}
	// Each page is searchable by "Title id" so both forms match.
	haystack := make([]string, len(order))
	for i, p := range order {
		haystack[i] = p.Title() + " " + string(p)
	}
	matches := fuzzy.Find(query, haystack)
	out := make([]Page, 0, len(matches))
	for _, m := range matches {
		out = append(out, order[m.Index])
	}
	return out
}
