package reports

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// FormatCount renders n with thousands separators.
func FormatCount(n int) string {
	return printer.Sprintf("%d", n)
}

type Share struct {
	Label   string
	Percent float64
}

type PageVisits struct {
	Page    string
	Visits  int
	Percent float64
}

type Count struct {
	Label string
	Count int
}

type RatedRestaurant struct {
	Name    string
	Rating  float64
	Reviews int
}

// Usage is the website usage report.
type Usage struct {
	TotalVisits    int
	UniqueVisitors int
	PageViews      int
	AvgSession     string
	// Changes holds the change from last month for visits, visitors,
	// page views and session length, in that order.
	Changes      [4]string
	PopularPages []PageVisits
	Devices      []Share
}

// Restaurants is the restaurant review report.
type Restaurants struct {
	TotalReviews  int
	AverageRating float64
	ThisMonth     int
	ByMonth       []Count
	TopRated      []RatedRestaurant
}

// Illness is the food illness report.
type Illness struct {
	Total    int
	Resolved int
	Pending  int
	ByType   []Count
	ByMonth  []Count
}

// Suggestions is the user suggestion report.
type Suggestions struct {
	Total       int
	Implemented int
	InProgress  int
	UnderReview int
	ByCategory  []Count
}

// Analytics bundles every report.
type Analytics struct {
	Usage       Usage
	Restaurants Restaurants
	Illness     Illness
	Suggestions Suggestions
}

// SampleAnalytics returns the static report figures.
func SampleAnalytics() Analytics {
	return Analytics{
		Usage: Usage{
			TotalVisits:    15678,
			UniqueVisitors: 8934,
			PageViews:      42156,
			AvgSession:     "4m 32s",
			Changes:        [4]string{"+12%", "+8%", "+15%", "+5%"},
			PopularPages: []PageVisits{
				{"Home", 5234, 33.4},
				{"Dining Guide", 3456, 22.1},
				{"Food Safety", 2789, 17.8},
				{"Education", 2134, 13.6},
				{"Map View", 1567, 10.0},
			},
			Devices: []Share{
				{"Desktop", 45.2},
				{"Mobile", 38.7},
				{"Tablet", 16.1},
			},
		},
		Restaurants: Restaurants{
			TotalReviews:  234,
			AverageRating: 4.3,
			ThisMonth:     28,
			ByMonth:       []Count{{"Oct", 18}, {"Nov", 25}, {"Dec", 32}, {"Jan", 28}},
			TopRated: []RatedRestaurant{
				{"Heritage Kitchen", 4.9, 156},
				{"Spice Garden", 4.8, 234},
				{"Fresh Market Cafe", 4.6, 189},
				{"Street Food Corner", 4.4, 312},
			},
		},
		Illness: Illness{
			Total:    8,
			Resolved: 6,
			Pending:  2,
			ByType: []Count{
				{"Stomach Issues", 4},
				{"Food Poisoning", 2},
				{"Allergic Reaction", 1},
				{"Other", 1},
			},
			ByMonth: []Count{{"Oct", 3}, {"Nov", 2}, {"Dec", 1}, {"Jan", 2}},
		},
		Suggestions: Suggestions{
			Total:       127,
			Implemented: 23,
			InProgress:  8,
			UnderReview: 15,
			ByCategory: []Count{
				{"Website Improvements", 42},
				{"New Features", 35},
				{"Food Safety", 28},
				{"Educational Content", 22},
			},
		},
	}
}

// Max returns the largest count, for scaling bars.
func Max(counts []Count) int {
	m := 0
	for _, c := range counts {
		m = max(m, c.Count)
	}
	return m
}
