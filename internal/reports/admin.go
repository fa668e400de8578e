package reports

// Stat is a headline number with its period-over-period change.
type Stat struct {
	Label  string
	Value  string
	Change string
}

// Report is an entry of the recent reports list.
type Report struct {
	Type          string
	Establishment string
	Description   string
	Date          string
	Status        string
	Priority      string
}

// PendingAction is an open task for portal staff.
type PendingAction struct {
	Title    string
	DueDate  string
	Priority string
	Type     string
}

// Shortcut is a content-management card that opens a portal page.
type Shortcut struct {
	Title       string
	Description string
	Button      string
	Page        string
}

// Dashboard is the sample data behind the admin page.
type Dashboard struct {
	Stats           []Stat
	RecentReports   []Report
	PendingActions  []PendingAction
	Shortcuts       []Shortcut
	RegisteredUsers string
	// ReportsPage is the page opened by "Generate Reports".
	ReportsPage string
}

// Admin returns the dashboard sample data.
func Admin() Dashboard {
	return Dashboard{
		Stats: []Stat{
			{"Total Users", "2,341", "+12%"},
			{"Safety Reports", "23", "+3"},
			{"Illness Reports", "8", "-2"},
			{"Suggestions", "127", "+15%"},
		},
		RecentReports: []Report{
			{"Safety", "Spice Garden", "Temperature control issues reported", "2024-01-15", "Under Investigation", "High"},
			{"Illness", "Street Food Corner", "Multiple customers reported stomach issues", "2024-01-14", "Resolved", "Medium"},
			{"Suggestion", "N/A", "Request for mobile app development", "2024-01-13", "Under Review", "Low"},
		},
		PendingActions: []PendingAction{
			{"Follow up on Heritage Kitchen inspection", "2024-01-20", "High", "Inspection"},
			{"Update food safety guidelines", "2024-01-25", "Medium", "Content Update"},
			{"Review new restaurant applications", "2024-01-18", "Medium", "Review"},
		},
		Shortcuts: []Shortcut{
			{"Education Content", "Manage educational resources and guidelines", "Edit Content", "education"},
			{"Restaurant Listings", "Update restaurant information and certifications", "Manage Listings", "dining"},
			{"Safety Guidelines", "Update food safety protocols and procedures", "Update Guidelines", "safety"},
		},
		RegisteredUsers: "2,341 registered users",
		ReportsPage:     "reports",
	}
}

// Notifications holds the settings tab checkboxes. They are view state
// only and are not saved.
type Notifications struct {
	Email bool
	SMS   bool
}

// DefaultNotifications has both channels enabled.
func DefaultNotifications() Notifications {
	return Notifications{Email: true, SMS: true}
}

// Toggle flips the checkbox at index 0 (email) or 1 (SMS).
func (n Notifications) Toggle(index int) Notifications {
	switch index {
	case 0:
		n.Email = !n.Email
	case 1:
		n.SMS = !n.SMS
	}
	return n
}
