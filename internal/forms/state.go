package forms

import (
	"maps"
	"slices"
)

// State is the value of every field of one form. It is immutable: Reduce
// returns a new State and never modifies its input.
type State struct {
	values map[string]string
	multi  map[string][]string
}

// NewState returns def's initial state: defaults for single-value fields
// and empty checklists.
func NewState(def Definition) State {
	s := State{values: map[string]string{}, multi: map[string][]string{}}
	for _, f := range def.Fields {
		if f.Kind.Multi() {
			s.multi[f.Name] = nil
			continue
		}
		s.values[f.Name] = f.Default
	}
	return s
}

// Value returns a single-value field.
func (s State) Value(name string) string { return s.values[name] }

// Selected returns the checked options of a checklist in the order they were
// first checked.
func (s State) Selected(name string) []string { return slices.Clone(s.multi[name]) }

// Checked reports whether option is checked in the named checklist.
func (s State) Checked(name, option string) bool {
	return slices.Contains(s.multi[name], option)
}

// Equal reports whether s and o hold the same values.
func (s State) Equal(o State) bool {
	return maps.Equal(s.values, o.values) &&
		maps.EqualFunc(s.multi, o.multi, func(a, b []string) bool { return slices.Equal(a, b) })
}

func (s State) clone() State {
	c := State{values: maps.Clone(s.values), multi: make(map[string][]string, len(s.multi))}
	if c.values == nil {
		c.values = map[string]string{}
	}
	for k, v := range s.multi {
		c.multi[k] = slices.Clone(v)
	}
	return c
}

// Action is a change requested by the user.
type Action interface {
	apply(def Definition, s State) State
}

// SetValue replaces a single-value field. Choice fields accept only one of
// their options or the empty placeholder.
type SetValue struct {
	Field string
	Value string
}

func (a SetValue) apply(def Definition, s State) State {
	f, ok := def.Field(a.Field)
	if !ok || f.Kind.Multi() {
		return s
	}
	if f.Kind.Choice() && a.Value != "" && !f.hasOption(a.Value) {
		return s
	}
	if s.values[a.Field] == a.Value {
		return s
	}
	next := s.clone()
	next.values[a.Field] = a.Value
	return next
}

// Toggle checks an unchecked checklist option or unchecks a checked one.
type Toggle struct {
	Field  string
	Option string
}

func (a Toggle) apply(def Definition, s State) State {
	f, ok := def.Field(a.Field)
	if !ok || !f.Kind.Multi() || !f.hasOption(a.Option) {
		return s
	}
	next := s.clone()
	cur := next.multi[a.Field]
	if i := slices.Index(cur, a.Option); i >= 0 {
		next.multi[a.Field] = slices.Delete(cur, i, i+1)
	} else {
		next.multi[a.Field] = append(cur, a.Option)
	}
	return next
}

// Reset returns the form to its initial state.
type Reset struct{}

func (Reset) apply(def Definition, _ State) State { return NewState(def) }

// Reduce applies a to s. Actions naming unknown fields or options leave the
// state as it was.
func Reduce(def Definition, s State, a Action) State {
	if s.values == nil {
		s = NewState(def)
	}
	return a.apply(def, s)
}
