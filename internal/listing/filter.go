package listing

import (
	"strings"

	"github.com/five82/platter/internal/catalog"
)

// All is the sentinel label that disables a constraint.
const All = "all"

// Listable is anything the dining guide or the map can filter.
type Listable interface {
	ListingCategory() catalog.Category
	ListingRating() float64
}

// Criteria is the pair of labels chosen in a filter bar. Both labels are
// kept as the user chose them; resolution happens when filtering.
type Criteria struct {
	Category  string
	MinRating string
}

// AllCriteria returns criteria that keep every entity.
func AllCriteria() Criteria {
	return Criteria{Category: All, MinRating: All}
}

// ActiveCategory reports the category constraint in effect. The second
// result is false for "all", blanks and unknown labels, all of which
// pass every entity.
func (c Criteria) ActiveCategory() (catalog.Category, bool) {
	if isAll(c.Category) {
		return "", false
	}
	return catalog.ParseCategory(c.Category)
}

// ActiveRating reports the minimum rating in effect, with the same
// pass-through rules as ActiveCategory.
func (c Criteria) ActiveRating() (float64, bool) {
	if isAll(c.MinRating) {
		return 0, false
	}
	return Threshold(c.MinRating)
}

// IsAll reports whether c constrains nothing.
func (c Criteria) IsAll() bool {
	_, cat := c.ActiveCategory()
	_, rating := c.ActiveRating()
	return !cat && !rating
}

// Match reports whether e satisfies c.
func (c Criteria) Match(e Listable) bool {
	if cat, ok := c.ActiveCategory(); ok && e.ListingCategory() != cat {
		return false
	}
	if floor, ok := c.ActiveRating(); ok && e.ListingRating() < floor {
		return false
	}
	return true
}

func (c Criteria) String() string {
	return "category=" + label(c.Category) + " rating=" + label(c.MinRating)
}

// Filter returns the entities matching every criteria value, in their
// original order. The input is never modified and the result never shares
// a backing array with it.
func Filter[E Listable](entities []E, criteria ...Criteria) []E {
	out := make([]E, 0, len(entities))
	for _, e := range entities {
		if matchAll(e, criteria) {
			out = append(out, e)
		}
	}
	return out
}

func matchAll(e Listable, criteria []Criteria) bool {
	for _, c := range criteria {
		if !c.Match(e) {
			return false
		}
	}
	return true
}

func isAll(v string) bool {
	v = strings.TrimSpace(v)
	return v == "" || strings.EqualFold(v, All)
}

func label(v string) string {
	if isAll(v) {
		return All
	}
	return v
}
