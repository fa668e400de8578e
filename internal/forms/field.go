// Package forms holds the three portal forms: their field definitions, an
// immutable state with a reducer, and submission with declarative checks.
package forms

import (
	"slices"
	"strings"
)

// ID names a form. IDs match the page that hosts the form.
type ID string

const (
	IllnessReport ID = "report-illness"
	SafetyReport  ID = "report-safety"
	Suggestion    ID = "suggestions"
)

// Kind selects how a field is edited and what value shape it holds.
type Kind int

const (
	KindText Kind = iota
	KindEmail
	KindPhone
	KindNumber
	KindDate
	KindTime
	KindTextArea
	KindSelect
	KindRadio
	KindChecklist
)

// Multi reports whether the field holds a set of options.
func (k Kind) Multi() bool { return k == KindChecklist }

// Choice reports whether the field's value must be one of its options.
func (k Kind) Choice() bool { return k == KindSelect || k == KindRadio }

// Option is one value of a select, radio or checklist field.
type Option struct {
	Value string
	Label string
}

// Field describes one input. Rules is a validator tag; an empty Rules
// accepts anything.
type Field struct {
	Name        string
	Label       string
	Section     string
	Kind        Kind
	Rules       string
	Default     string
	Placeholder string
	Options     []Option

	// VisibleWhen hides the field, and skips its rules, when it returns
	// false. Nil means always visible.
	VisibleWhen func(State) bool
}

// Visible reports whether f is shown for state s.
func (f Field) Visible(s State) bool {
	return f.VisibleWhen == nil || f.VisibleWhen(s)
}

// Required reports whether an empty value fails the field's rules.
func (f Field) Required() bool {
	return hasRule(f.Rules, "required") || hasRule(f.Rules, "min=1")
}

// OptionLabel returns the display label for value, or value itself.
func (f Field) OptionLabel(value string) string {
	for _, o := range f.Options {
		if o.Value == value {
			return o.Label
		}
	}
	return value
}

func (f Field) hasOption(value string) bool {
	for _, o := range f.Options {
		if o.Value == value {
			return true
		}
	}
	return false
}

// Notice is a boxed aside shown with a form.
type Notice struct {
	Title string
	Body  string
	Alert bool
}

// Definition is a complete form.
type Definition struct {
	ID      ID
	Title   string
	Intro   string
	Fields  []Field
	Notices []Notice
	Submit  string
	// Message is shown when a submission is accepted.
	Message string
	// RefPrefix starts every acknowledgment reference.
	RefPrefix string
}

// Field looks up a field by name.
func (d Definition) Field(name string) (Field, bool) {
	for _, f := range d.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// Sections returns section titles in first-appearance order.
func (d Definition) Sections() []string {
	var out []string
	seen := map[string]bool{}
	for _, f := range d.Fields {
		if !seen[f.Section] {
			seen[f.Section] = true
			out = append(out, f.Section)
		}
	}
	return out
}

func hasRule(rules, rule string) bool {
	return slices.Contains(strings.Split(rules, ","), rule)
}
