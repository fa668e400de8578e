package listing

// Selection is the single focused entity of a view, or nothing. The zero
// value selects nothing.
type Selection[K comparable] struct {
	id  K
	set bool
}

// Select focuses id, replacing any previous selection. Selecting the
// already selected id keeps it selected.
func (s Selection[K]) Select(id K) Selection[K] {
	return Selection[K]{id: id, set: true}
}

// Clear removes the selection.
func (s Selection[K]) Clear() Selection[K] {
	return Selection[K]{}
}

// Current returns the selected id.
func (s Selection[K]) Current() (K, bool) {
	return s.id, s.set
}

// IsSelected reports whether id is the focused entity.
func (s Selection[K]) IsSelected(id K) bool {
	return s.set && s.id == id
}
