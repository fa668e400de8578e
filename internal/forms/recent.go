package forms

// RecentSuggestion is a community suggestion listed beside the form.
type RecentSuggestion struct {
	Title       string
	Category    string
	Description string
	Votes       int
	Status      string
	Date        string
}

// RecentSuggestions returns the sample community suggestions, newest first.
func RecentSuggestions() []RecentSuggestion {
	return []RecentSuggestion{
		{"Mobile App Development", "New Features", "Create a mobile app for easier reporting and information access", 24, "Under Review", "2024-01-15"},
		{"Multilingual Support", "Website/Portal Improvements", "Add support for multiple languages to serve diverse communities", 18, "Planned", "2024-01-12"},
		{"Food Allergy Alerts", "Food Safety Programs", "System to alert users about allergen information at restaurants", 31, "In Progress", "2024-01-10"},
		{"Virtual Food Safety Training", "Educational Content", "Online training modules for food handlers and managers", 15, "Completed", "2024-01-08"},
	}
}

// CommunityImpact is the suggestion tally shown under the recent list.
type CommunityImpact struct {
	Total       int
	Implemented int
	InProgress  int
	UnderReview int
}

// Impact returns the sample tally.
func Impact() CommunityImpact {
	return CommunityImpact{Total: 127, Implemented: 23, InProgress: 8, UnderReview: 15}
}
