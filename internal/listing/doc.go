// Package listing filters catalog entities and tracks which one is focused.
//
// # Filtering
//
// Filter keeps the entities that satisfy every supplied Criteria value and
// preserves their original order. A Criteria holds the two labels picked in
// the filter bar: a category (or "all") and a minimum-rating bucket (or
// "all"). Buckets are closed ("4.5+", "4.0+", "3.5+") and compare with an
// inclusive, exact >= on the entity rating.
//
// A label that does not resolve, for example a category that is not in the
// catalog, turns its constraint off. ActiveCategory and ActiveRating report
// what is actually in effect so callers can show it.
//
// Because criteria are conjunctive, filtering the output of Filter again is
// the same as passing both criteria at once.
//
// # Selection
//
// Selection is an immutable value: Select always focuses the given id and
// Clear drops it. Views clear their selection when navigated away from.
package listing
