package catalog

import (
	"slices"
	"strings"
)

// Category is one of the fixed listing categories.
type Category string

const (
	Traditional Category = "Traditional"
	Healthy     Category = "Healthy"
	StreetFood  Category = "Street Food"
	FineDining  Category = "Fine Dining"
	MarketStall Category = "Market"
)

var categories = []Category{Traditional, Healthy, StreetFood, FineDining, MarketStall}

// Categories returns the closed category set in display order.
func Categories() []Category {
	return slices.Clone(categories)
}

// DiningCategories are the categories offered by the dining guide filter.
func DiningCategories() []Category {
	return []Category{Traditional, Healthy, StreetFood, FineDining}
}

// ParseCategory matches value against the closed set. Matching is exact
// after trimming, so "street food" is not a category.
func ParseCategory(value string) (Category, bool) {
	c := Category(strings.TrimSpace(value))
	if slices.Contains(categories, c) {
		return c, true
	}
	return "", false
}

// Kind distinguishes restaurants from markets on the map.
type Kind string

const (
	KindRestaurant Kind = "restaurant"
	KindMarket     Kind = "market"
)

// Restaurant is a dining guide listing.
type Restaurant struct {
	ID             int      `yaml:"id"`
	Name           string   `yaml:"name"`
	Category       Category `yaml:"category"`
	Cuisine        string   `yaml:"cuisine"`
	Rating         float64  `yaml:"rating"`
	Reviews        int      `yaml:"reviews"`
	Address        string   `yaml:"address"`
	Phone          string   `yaml:"phone"`
	Hours          string   `yaml:"hours"`
	PriceRange     string   `yaml:"price_range"`
	Specialties    []string `yaml:"specialties"`
	Certifications []string `yaml:"certifications"`
}

func (r Restaurant) ListingID() int { return r.ID }
func (r Restaurant) ListingCategory() Category { return r.Category }
func (r Restaurant) ListingRating() float64 { return r.Rating }

func (r Restaurant) clone() Restaurant {
	r.Specialties = slices.Clone(r.Specialties)
	r.Certifications = slices.Clone(r.Certifications)
	return r
}

// Market is a local market shown below the restaurant listings.
type Market struct {
	Name        string   `yaml:"name"`
	Address     string   `yaml:"address"`
	Hours       string   `yaml:"hours"`
	Specialties []string `yaml:"specialties"`
}

// Position places a marker on the simulated map, in percent of the map's
// width (X) and height (Y).
type Position struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Location is a map point: a restaurant or a market.
type Location struct {
	ID             int      `yaml:"id"`
	Name           string   `yaml:"name"`
	Kind           Kind     `yaml:"kind"`
	Category       Category `yaml:"category"`
	Rating         float64  `yaml:"rating"`
	Address        string   `yaml:"address"`
	Phone          string   `yaml:"phone"`
	Hours          string   `yaml:"hours"`
	Position       Position `yaml:"position"`
	Certifications []string `yaml:"certifications"`
	Specialties    []string `yaml:"specialties"`
}

func (l Location) ListingID() int { return l.ID }
func (l Location) ListingCategory() Category { return l.Category }
func (l Location) ListingRating() float64 { return l.Rating }

func (l Location) clone() Location {
	l.Specialties = slices.Clone(l.Specialties)
	l.Certifications = slices.Clone(l.Certifications)
	return l
}

// MapStats summarises the full location set; it ignores any active filter.
type MapStats struct {
	Total         int
	Restaurants   int
	Markets       int
	AverageRating float64
}
