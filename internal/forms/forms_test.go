package forms

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustLookup(t *testing.T, id ID) Definition {
	t.Helper()
	def, ok := Lookup(id)
	require.True(t, ok, "form %s not defined", id)
	return def
}

func apply(def Definition, s State, actions ...Action) State {
	for _, a := range actions {
		s = Reduce(def, s, a)
	}
	return s
}

func TestDefinitions(t *testing.T) {
	defs := Definitions()
	require.Len(t, defs, 3)
	for _, d := range defs {
		assert.NotEmpty(t, d.Title)
		assert.NotEmpty(t, d.Message)
		assert.NotEmpty(t, d.RefPrefix)
		seen := map[string]bool{}
		for _, f := range d.Fields {
			assert.False(t, seen[f.Name], "%s: duplicate field %s", d.ID, f.Name)
			seen[f.Name] = true
			if f.Default != "" && f.Kind.Choice() {
				assert.True(t, f.hasOption(f.Default), "%s.%s default %q is not an option", d.ID, f.Name, f.Default)
			}
		}
	}

	_, ok := Lookup("contact")
	assert.False(t, ok)

	ill := mustLookup(t, IllnessReport)
	assert.Equal(t, []string{
		"Reporter Information",
		"Patient Information",
		"Illness Information",
		"Food Establishment Information",
		"Additional Information",
	}, ill.Sections())
	symptoms, _ := ill.Field("symptoms")
	assert.Len(t, symptoms.Options, 10)
	assert.True(t, symptoms.Required())

	saf := mustLookup(t, SafetyReport)
	et, _ := saf.Field("establishmentType")
	assert.Len(t, et.Options, 9)
	ct, _ := saf.Field("concernType")
	assert.Len(t, ct.Options, 11)
	urgency, _ := saf.Field("urgency")
	assert.Equal(t, "Critical - Immediate risk", urgency.OptionLabel("critical"))

	sug := mustLookup(t, Suggestion)
	cat, _ := sug.Field("category")
	assert.Len(t, cat.Options, 8)
	prio, _ := sug.Field("priority")
	assert.False(t, prio.Required())
}

func TestNewStateDefaults(t *testing.T) {
	ill := NewState(mustLookup(t, IllnessReport))
	assert.Equal(t, "self", ill.Value("relationship"))
	assert.Equal(t, "mild", ill.Value("severity"))
	assert.Empty(t, ill.Selected("symptoms"))

	saf := NewState(mustLookup(t, SafetyReport))
	assert.Equal(t, "medium", saf.Value("urgency"))
	assert.Equal(t, "yes", saf.Value("followUp"))
	assert.Equal(t, "", saf.Value("establishmentType"))

	sug := NewState(mustLookup(t, Suggestion))
	assert.Equal(t, "medium", sug.Value("priority"))
}

func TestReduceIsPure(t *testing.T) {
	def := mustLookup(t, IllnessReport)
	before := NewState(def)
	after := Reduce(def, before, SetValue{Field: "reporterName", Value: "Ada"})
	after = Reduce(def, after, Toggle{Field: "symptoms", Option: "Fever"})

	assert.Equal(t, "", before.Value("reporterName"))
	assert.Empty(t, before.Selected("symptoms"))
	assert.Equal(t, "Ada", after.Value("reporterName"))
	assert.Equal(t, []string{"Fever"}, after.Selected("symptoms"))
}

func TestReduceToggle(t *testing.T) {
	def := mustLookup(t, IllnessReport)
	s := apply(def, NewState(def),
		Toggle{Field: "symptoms", Option: "Nausea"},
		Toggle{Field: "symptoms", Option: "Fever"},
		Toggle{Field: "symptoms", Option: "Headache"},
		Toggle{Field: "symptoms", Option: "Fever"},
	)
	if diff := cmp.Diff([]string{"Nausea", "Headache"}, s.Selected("symptoms")); diff != "" {
		t.Fatalf("symptoms mismatch (-want +got):\n%s", diff)
	}
	assert.True(t, s.Checked("symptoms", "Nausea"))
	assert.False(t, s.Checked("symptoms", "Fever"))

	twice := apply(def, NewState(def),
		Toggle{Field: "symptoms", Option: "Fatigue"},
		Toggle{Field: "symptoms", Option: "Fatigue"},
	)
	assert.Empty(t, twice.Selected("symptoms"))
}

func TestReduceIgnoresUnknownInput(t *testing.T) {
	def := mustLookup(t, IllnessReport)
	s := NewState(def)
	tests := []struct {
		name   string
		action Action
	}{
		{"unknown field", SetValue{Field: "shoeSize", Value: "9"}},
		{"value outside options", SetValue{Field: "severity", Value: "catastrophic"}},
		{"set on checklist", SetValue{Field: "symptoms", Value: "Fever"}},
		{"toggle unknown option", Toggle{Field: "symptoms", Option: "Hiccups"}},
		{"toggle single-value field", Toggle{Field: "severity", Option: "mild"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, s.Equal(Reduce(def, s, tt.action)))
		})
	}
}

func TestReduceReset(t *testing.T) {
	def := mustLookup(t, SafetyReport)
	s := apply(def, NewState(def),
		SetValue{Field: "urgency", Value: "critical"},
		SetValue{Field: "description", Value: "Mice"},
		Reset{},
	)
	assert.True(t, s.Equal(NewState(def)))
}

func TestReduceZeroState(t *testing.T) {
	def := mustLookup(t, Suggestion)
	s := Reduce(def, State{}, SetValue{Field: "title", Value: "More maps"})
	assert.Equal(t, "More maps", s.Value("title"))
	assert.Equal(t, "medium", s.Value("priority"))
}

func completeIllness(def Definition) State {
	return apply(def, NewState(def),
		SetValue{Field: "reporterName", Value: "Ada Lovelace"},
		SetValue{Field: "reporterEmail", Value: "ada@example.com"},
		SetValue{Field: "symptomsStartDate", Value: "2024-01-14"},
		Toggle{Field: "symptoms", Option: "Nausea"},
		SetValue{Field: "severity", Value: "moderate"},
	)
}

func TestSubmitAcceptsCompleteForm(t *testing.T) {
	def := mustLookup(t, IllnessReport)
	now := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)

	ack, next, err := Submit(def, completeIllness(def), now)
	require.NoError(t, err)
	assert.Equal(t, IllnessReport, ack.Form)
	assert.Equal(t, "Thank you for your report. We will review it and follow up if necessary.", ack.Message)
	assert.Equal(t, now, ack.SubmittedAt)
	assert.True(t, strings.HasPrefix(ack.Reference, "ILL-"), ack.Reference)
	assert.Len(t, ack.Reference, len("ILL-")+10)
	assert.True(t, next.Equal(NewState(def)), "state should reset to defaults")

	ack2, _, err := Submit(def, completeIllness(def), now)
	require.NoError(t, err)
	assert.NotEqual(t, ack.Reference, ack2.Reference)
}

func TestSubmitRejectsMissingFields(t *testing.T) {
	def := mustLookup(t, IllnessReport)
	s := apply(def, NewState(def), SetValue{Field: "reporterName", Value: "Ada"})

	_, next, err := Submit(def, s, time.Now())
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.True(t, next.Equal(s), "state must be left untouched")

	got := make([]string, len(verr.Fields))
	for i, f := range verr.Fields {
		got[i] = f.Field
	}
	assert.Equal(t, []string{"reporterEmail", "symptomsStartDate", "symptoms"}, got)
	assert.Contains(t, err.Error(), "Email Address")
	assert.Equal(t, "is required", verr.Fields[2].Reason())
}

func TestSubmitChecksFormats(t *testing.T) {
	def := mustLookup(t, IllnessReport)
	tests := []struct {
		name  string
		field string
		value string
		rule  string
	}{
		{"bad email", "reporterEmail", "not-an-email", "email"},
		{"bad date", "symptomsStartDate", "14/01/2024", "datetime"},
		{"bad time", "symptomsStartTime", "7pm", "datetime"},
		{"bad meal date", "mealDate", "yesterday", "datetime"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Reduce(def, completeIllness(def), SetValue{Field: tt.field, Value: tt.value})
			err := Validate(def, s)
			var verr *ValidationError
			require.True(t, errors.As(err, &verr), "expected validation error, got %v", err)
			require.Len(t, verr.Fields, 1)
			assert.Equal(t, tt.field, verr.Fields[0].Field)
			assert.Equal(t, tt.rule, verr.Fields[0].Rule)
		})
	}
}

func TestPatientFieldsOnlyWhenNotSelf(t *testing.T) {
	def := mustLookup(t, IllnessReport)
	patient, _ := def.Field("patientName")

	self := completeIllness(def)
	assert.False(t, patient.Visible(self))
	assert.NoError(t, Validate(def, self))

	family := Reduce(def, self, SetValue{Field: "relationship", Value: "family"})
	assert.True(t, patient.Visible(family))
	err := Validate(def, family)
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.True(t, verr.Has("patientName"))

	family = apply(def, family,
		SetValue{Field: "patientName", Value: "Tom"},
		SetValue{Field: "patientAge", Value: "eight"},
	)
	err = Validate(def, family)
	require.True(t, errors.As(err, &verr))
	assert.True(t, verr.Has("patientAge"))

	family = Reduce(def, family, SetValue{Field: "patientAge", Value: "8"})
	assert.NoError(t, Validate(def, family))

	// A stale hidden value is not validated once hidden again.
	back := apply(def, family,
		SetValue{Field: "patientAge", Value: "eight"},
		SetValue{Field: "relationship", Value: "self"},
	)
	assert.NoError(t, Validate(def, back))
}

func TestSafetyReportAllowsAnonymous(t *testing.T) {
	def := mustLookup(t, SafetyReport)
	s := apply(def, NewState(def),
		SetValue{Field: "establishmentName", Value: "Spice Garden"},
		SetValue{Field: "establishmentType", Value: "Restaurant"},
		SetValue{Field: "establishmentAddress", Value: "123 Main Street"},
		SetValue{Field: "dateObserved", Value: "2024-01-15"},
		SetValue{Field: "concernType", Value: "Temperature control issues"},
		SetValue{Field: "description", Value: "Chicken left out at room temperature."},
	)
	ack, next, err := Submit(def, s, time.Now())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(ack.Reference, "SAF-"))
	assert.Equal(t, "medium", next.Value("urgency"))
	assert.Equal(t, "", next.Value("establishmentName"))
}

func TestSuggestionRequiresCategoryTitleDescription(t *testing.T) {
	def := mustLookup(t, Suggestion)
	err := Validate(def, NewState(def))
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.True(t, verr.Has("category"))
	assert.True(t, verr.Has("title"))
	assert.True(t, verr.Has("description"))
	assert.False(t, verr.Has("email"))

	s := apply(def, NewState(def),
		SetValue{Field: "category", Value: "New Features"},
		SetValue{Field: "title", Value: "Dark mode"},
		SetValue{Field: "description", Value: "   "},
	)
	err = Validate(def, s)
	require.True(t, errors.As(err, &verr))
	assert.True(t, verr.Has("description"), "whitespace-only text counts as empty")
}

func TestRecentSuggestions(t *testing.T) {
	recent := RecentSuggestions()
	require.Len(t, recent, 4)
	assert.Equal(t, "Food Allergy Alerts", recent[2].Title)
	assert.Equal(t, 31, recent[2].Votes)
	assert.Equal(t, 127, Impact().Total)
}
