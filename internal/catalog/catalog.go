package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"
)

//go:embed data/catalog.yaml
var sampleData []byte

// Catalog is the read-only sample dataset. Accessors return copies so
// callers can never mutate the loaded entities.
type Catalog struct {
	restaurants []Restaurant
	markets     []Market
	locations   []Location
}

// Load decodes the embedded sample dataset.
func Load() (*Catalog, error) {
	return Parse(sampleData)
}

// Parse decodes and validates a catalog document.
func Parse(data []byte) (*Catalog, error) {
	var raw struct {
		Restaurants []Restaurant `yaml:"restaurants"`
		Markets     []Market     `yaml:"markets"`
		Locations   []Location   `yaml:"locations"`
	}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if err := validate(raw.Restaurants, raw.Locations); err != nil {
		return nil, fmt.Errorf("validate catalog: %w", err)
	}
	return &Catalog{
		restaurants: raw.Restaurants,
		markets:     raw.Markets,
		locations:   raw.Locations,
	}, nil
}

func validate(restaurants []Restaurant, locations []Location) error {
	var errs []error
	seen := make(map[int]bool, len(restaurants))
	for _, r := range restaurants {
		if seen[r.ID] {
			errs = append(errs, fmt.Errorf("restaurant %d: duplicate id", r.ID))
		}
		seen[r.ID] = true
		if _, ok := ParseCategory(string(r.Category)); !ok {
			errs = append(errs, fmt.Errorf("restaurant %d: unknown category %q", r.ID, r.Category))
		}
		if r.Rating < 0 || r.Rating > 5 {
			errs = append(errs, fmt.Errorf("restaurant %d: rating %.1f out of range", r.ID, r.Rating))
		}
	}

	clear(seen)
	for _, l := range locations {
		if seen[l.ID] {
			errs = append(errs, fmt.Errorf("location %d: duplicate id", l.ID))
		}
		seen[l.ID] = true
		if _, ok := ParseCategory(string(l.Category)); !ok {
			errs = append(errs, fmt.Errorf("location %d: unknown category %q", l.ID, l.Category))
		}
		if l.Kind != KindRestaurant && l.Kind != KindMarket {
			errs = append(errs, fmt.Errorf("location %d: unknown kind %q", l.ID, l.Kind))
		}
		if l.Rating < 0 || l.Rating > 5 {
			errs = append(errs, fmt.Errorf("location %d: rating %.1f out of range", l.ID, l.Rating))
		}
		if l.Position.X < 0 || l.Position.X > 100 || l.Position.Y < 0 || l.Position.Y > 100 {
			errs = append(errs, fmt.Errorf("location %d: position outside map", l.ID))
		}
	}
	return errors.Join(errs...)
}

// Restaurants returns the dining guide listings in their original order.
func (c *Catalog) Restaurants() []Restaurant {
	out := make([]Restaurant, len(c.restaurants))
	for i, r := range c.restaurants {
		out[i] = r.clone()
	}
	return out
}

// Markets returns the local markets.
func (c *Catalog) Markets() []Market {
	out := make([]Market, len(c.markets))
	for i, m := range c.markets {
		m.Specialties = slices.Clone(m.Specialties)
		out[i] = m
	}
	return out
}

// Locations returns the map points in their original order.
func (c *Catalog) Locations() []Location {
	out := make([]Location, len(c.locations))
	for i, l := range c.locations {
		out[i] = l.clone()
	}
	return out
}

// Location looks up a map point by id.
func (c *Catalog) Location(id int) (Location, bool) {
	for _, l := range c.locations {
		if l.ID == id {
			return l.clone(), true
		}
	}
	return Location{}, false
}

// MapStats counts every location regardless of filters.
func (c *Catalog) MapStats() MapStats {
	stats := MapStats{Total: len(c.locations)}
	if stats.Total == 0 {
		return stats
	}
	var sum float64
	for _, l := range c.locations {
		switch l.Kind {
		case KindRestaurant:
			stats.Restaurants++
		case KindMarket:
			stats.Markets++
		}
		sum += l.Rating
	}
	stats.AverageRating = sum / float64(stats.Total)
	return stats
}
