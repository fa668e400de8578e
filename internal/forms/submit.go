package forms

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var validate = validator.New()

// FieldError names a field that failed its rules.
type FieldError struct {
	Field string
	Label string
	Rule  string
}

// Reason is a short human description of the failed rule.
func (e FieldError) Reason() string {
	switch e.Rule {
	case "required", "min":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "datetime":
		return "must be a valid date or time"
	case "number", "max":
		return "must be a number"
	default:
		return "is invalid"
	}
}

// ValidationError lists every field that blocked a submission, in form
// order.
type ValidationError struct {
	Form   ID
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	labels := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		labels[i] = f.Label
	}
	return fmt.Sprintf("%s: missing or invalid fields: %s", e.Form, strings.Join(labels, ", "))
}

// Has reports whether the named field failed.
func (e *ValidationError) Has(field string) bool {
	for _, f := range e.Fields {
		if f.Field == field {
			return true
		}
	}
	return false
}

// Acknowledgment confirms an accepted submission. Nothing is stored or
// sent anywhere; the reference exists only for display.
type Acknowledgment struct {
	Form        ID
	Message     string
	Reference   string
	SubmittedAt time.Time
}

// Validate checks the visible fields of s against their rules.
func Validate(def Definition, s State) error {
	data := make(map[string]any, len(def.Fields))
	rules := make(map[string]any, len(def.Fields))
	for _, f := range def.Fields {
		if f.Rules == "" || !f.Visible(s) {
			continue
		}
		if f.Kind.Multi() {
			data[f.Name] = s.Selected(f.Name)
		} else {
			data[f.Name] = strings.TrimSpace(s.Value(f.Name))
		}
		rules[f.Name] = f.Rules
	}

	failed := validate.ValidateMap(data, rules)
	if len(failed) == 0 {
		return nil
	}
	verr := &ValidationError{Form: def.ID}
	for _, f := range def.Fields {
		raw, ok := failed[f.Name]
		if !ok {
			continue
		}
		verr.Fields = append(verr.Fields, FieldError{Field: f.Name, Label: f.Label, Rule: failedTag(raw)})
	}
	return verr
}

func failedTag(raw any) string {
	err, ok := raw.(error)
	if !ok {
		return ""
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return verrs[0].Tag()
	}
	return ""
}

// Submit validates s. On success it returns the acknowledgment and the
// form's initial state; otherwise it returns s unchanged with a
// *ValidationError.
func Submit(def Definition, s State, now time.Time) (Acknowledgment, State, error) {
	if s.values == nil {
		s = NewState(def)
	}
	if err := Validate(def, s); err != nil {
		return Acknowledgment{}, s, err
	}
	ack := Acknowledgment{
		Form:        def.ID,
		Message:     def.Message,
		Reference:   reference(def.RefPrefix),
		SubmittedAt: now,
	}
	return ack, NewState(def), nil
}

func reference(prefix string) string {
	id := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return prefix + "-" + id[:10]
}
