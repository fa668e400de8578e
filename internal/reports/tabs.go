package reports

// Tab is one entry of a tab bar.
type Tab struct {
	ID    string
	Label string
}

// Tabs is an ordered tab bar. The first tab is the default unless
// WithDefault names another. Resolving an unknown id yields the default.
type Tabs struct {
	items []Tab
	def   string
}

// NewTabs builds a tab bar; items must not be empty.
func NewTabs(items ...Tab) Tabs {
	return Tabs{items: items}
}

// Items returns the tabs in display order.
func (t Tabs) Items() []Tab {
	out := make([]Tab, len(t.items))
	copy(out, t.items)
	return out
}

// WithDefault returns a copy whose default is id. An id that names no tab
// leaves the first tab as the default.
func (t Tabs) WithDefault(id string) Tabs {
	if t.index(id) >= 0 {
		t.def = id
	}
	return t
}

// Default returns the default tab's id.
func (t Tabs) Default() string {
	if t.def != "" {
		return t.def
	}
	if len(t.items) == 0 {
		return ""
	}
	return t.items[0].ID
}

// Resolve returns id when it names a tab and the default otherwise.
func (t Tabs) Resolve(id string) string {
	if t.index(id) < 0 {
		return t.Default()
	}
	return id
}

// Label returns the label of the resolved tab.
func (t Tabs) Label(id string) string {
	if i := t.index(t.Resolve(id)); i >= 0 {
		return t.items[i].Label
	}
	return ""
}

// Next returns the tab after id, wrapping.
func (t Tabs) Next(id string) string { return t.step(id, 1) }

// Prev returns the tab before id, wrapping.
func (t Tabs) Prev(id string) string { return t.step(id, -1) }

func (t Tabs) step(id string, delta int) string {
	n := len(t.items)
	if n == 0 {
		return ""
	}
	i := t.index(t.Resolve(id))
	return t.items[((i+delta)%n+n)%n].ID
}

func (t Tabs) index(id string) int {
	for i, it := range t.items {
		if it.ID == id {
			return i
		}
	}
	return -1
}

const (
	TabOverview = "overview"
	TabContent  = "content"
	TabUsers    = "users"
	TabSettings = "settings"
	TabActivity = "activity"
)

// AdminTabs are the admin dashboard tabs. Activity shows the session log.
func AdminTabs() Tabs {
	return NewTabs(
		Tab{TabOverview, "Overview"},
		Tab{TabContent, "Content Management"},
		Tab{TabUsers, "User Management"},
		Tab{TabSettings, "Settings"},
		Tab{TabActivity, "Activity"},
	)
}

const (
	ReportUsage       = "usage"
	ReportRestaurants = "restaurants"
	ReportIllness     = "illness"
	ReportSuggestions = "suggestions"
)

// ReportTabs are the analytics report types.
func ReportTabs() Tabs {
	return NewTabs(
		Tab{ReportUsage, "Website Usage"},
		Tab{ReportRestaurants, "Restaurant Reviews"},
		Tab{ReportIllness, "Food Illness Reports"},
		Tab{ReportSuggestions, "User Suggestions"},
	)
}

// DateRanges are the report period choices. They only label the report;
// the sample figures do not change with the range.
func DateRanges() Tabs {
	return NewTabs(
		Tab{"7days", "Last 7 days"},
		Tab{DefaultDateRange, "Last 30 days"},
		Tab{"90days", "Last 90 days"},
		Tab{"1year", "Last year"},
	).WithDefault(DefaultDateRange)
}

// DefaultDateRange is the initially selected period.
const DefaultDateRange = "30days"
