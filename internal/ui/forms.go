package ui

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/five82/platter/internal/forms"
	"github.com/five82/platter/internal/nav"
	"github.com/five82/platter/internal/reports"
)

// formView is the editing state of one form page. The field values live in
// state; the text widgets mirror them for cursor handling only.
type formView struct {
	def    forms.Definition
	state  forms.State
	focus  int // index into fields(); len(fields()) is the submit button
	option int // option cursor inside a focused checklist
	inputs map[string]textinput.Model
	areas  map[string]textarea.Model
	err    *forms.ValidationError
}

func newFormView(def forms.Definition, width int) formView {
	fv := formView{
		def:    def,
		state:  forms.NewState(def),
		inputs: make(map[string]textinput.Model),
		areas:  make(map[string]textarea.Model),
	}
	w := fieldWidth(width)
	for _, f := range def.Fields {
		switch f.Kind {
		case forms.KindSelect, forms.KindRadio, forms.KindChecklist:
		case forms.KindTextArea:
			ta := textarea.New()
			ta.Placeholder = f.Placeholder
			ta.ShowLineNumbers = false
			ta.CharLimit = 2000
			ta.SetWidth(w)
			ta.SetHeight(3)
			ta.Blur()
			fv.areas[f.Name] = ta
		default:
			ti := textinput.New()
			ti.Prompt = ""
			ti.Placeholder = inputPlaceholder(f)
			ti.CharLimit = 200
			ti.Width = w
			ti.SetValue(fv.state.Value(f.Name))
			fv.inputs[f.Name] = ti
		}
	}
	return fv
}

func inputPlaceholder(f forms.Field) string {
	if f.Placeholder != "" {
		return f.Placeholder
	}
	switch f.Kind {
	case forms.KindDate:
		return "YYYY-MM-DD"
	case forms.KindTime:
		return "HH:MM"
	case forms.KindEmail:
		return "name@example.com"
	}
	return ""
}

func fieldWidth(width int) int {
	return min(max(width-8, 20), 72)
}

// fields returns the currently visible fields in order.
func (fv formView) fields() []forms.Field {
	out := make([]forms.Field, 0, len(fv.def.Fields))
	for _, f := range fv.def.Fields {
		if f.Visible(fv.state) {
			out = append(out, f)
		}
	}
	return out
}

func (fv formView) focused() (forms.Field, bool) {
	fields := fv.fields()
	if fv.focus < len(fields) {
		return fields[fv.focus], true
	}
	return forms.Field{}, false
}

// setFocus moves focus to index i, clamped, and focuses its widget.
func (fv *formView) setFocus(i int) tea.Cmd {
	n := len(fv.fields())
	fv.focus = min(max(i, 0), n)
	fv.option = 0

	var cmd tea.Cmd
	f, ok := fv.focused()
	for name, ti := range fv.inputs {
		if ok && name == f.Name {
			cmd = ti.Focus()
		} else {
			ti.Blur()
		}
		fv.inputs[name] = ti
	}
	for name, ta := range fv.areas {
		if ok && name == f.Name {
			cmd = ta.Focus()
		} else {
			ta.Blur()
		}
		fv.areas[name] = ta
	}
	return cmd
}

// apply runs a reducer action and refreshes the widgets that mirror state.
func (fv *formView) apply(a forms.Action) {
	fv.state = forms.Reduce(fv.def, fv.state, a)
	for name, ti := range fv.inputs {
		if ti.Value() != fv.state.Value(name) {
			ti.SetValue(fv.state.Value(name))
			fv.inputs[name] = ti
		}
	}
	if fv.err != nil {
		if set, ok := a.(forms.SetValue); ok {
			fv.clearError(set.Field)
		}
		if t, ok := a.(forms.Toggle); ok {
			fv.clearError(t.Field)
		}
	}
}

func (fv *formView) clearError(field string) {
	fields := slices.DeleteFunc(slices.Clone(fv.err.Fields), func(e forms.FieldError) bool {
		return e.Field == field
	})
	if len(fields) == 0 {
		fv.err = nil
		return
	}
	fv.err = &forms.ValidationError{Form: fv.err.Form, Fields: fields}
}

func (m Model) onForm() bool {
	switch m.nav.Current() {
	case nav.ReportIllness, nav.ReportSafety, nav.Suggestions:
		return true
	}
	return false
}

func (m Model) currentFormID() forms.ID {
	return forms.ID(m.nav.Current())
}

// focusForm focuses the first field when a form page is shown.
func (m *Model) focusForm() tea.Cmd {
	if !m.onForm() {
		return nil
	}
	id := m.currentFormID()
	fv, ok := m.forms[id]
	if !ok {
		return nil
	}
	cmd := fv.setFocus(fv.focus)
	m.forms[id] = fv
	return cmd
}

func (m *Model) resizeForms() {
	w := fieldWidth(m.width)
	for id, fv := range m.forms {
		for name, ti := range fv.inputs {
			ti.Width = w
			fv.inputs[name] = ti
		}
		for name, ta := range fv.areas {
			ta.SetWidth(w)
			fv.areas[name] = ta
		}
		m.forms[id] = fv
	}
}

// updateFormInput forwards non-key messages, such as cursor blinks, to the
// focused widget.
func (m *Model) updateFormInput(msg tea.Msg) tea.Cmd {
	if !m.onForm() {
		return nil
	}
	id := m.currentFormID()
	fv := m.forms[id]
	f, ok := fv.focused()
	if !ok {
		return nil
	}
	var cmd tea.Cmd
	if ti, ok := fv.inputs[f.Name]; ok {
		fv.inputs[f.Name], cmd = ti.Update(msg)
	} else if ta, ok := fv.areas[f.Name]; ok {
		fv.areas[f.Name], cmd = ta.Update(msg)
	}
	m.forms[id] = fv
	return cmd
}

func (m Model) handleFormKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	id := m.currentFormID()
	fv, ok := m.forms[id]
	if !ok {
		return m, nil
	}
	f, onField := fv.focused()
	_, inArea := fv.areas[f.Name]
	inArea = inArea && onField

	switch {
	case key.Matches(msg, m.keys.Escape):
		return m, m.navigate(nav.Home)

	case key.Matches(msg, m.keys.Submit):
		return m.submitForm(fv)

	case key.Matches(msg, m.keys.ResetForm):
		fresh := newFormView(fv.def, m.width)
		cmd := fresh.setFocus(0)
		m.forms[id] = fresh
		m.body.GotoTop()
		m.formLog.Info("form cleared", zap.String("form", string(id)))
		return m, cmd

	case msg.Type == tea.KeyTab, msg.Type == tea.KeyDown && !inArea:
		cmd := fv.setFocus(fv.focus + 1)
		m.forms[id] = fv
		return m, cmd

	case msg.Type == tea.KeyShiftTab, msg.Type == tea.KeyUp && !inArea:
		cmd := fv.setFocus(fv.focus - 1)
		m.forms[id] = fv
		return m, cmd
	}

	if !onField {
		// Submit button
		if msg.Type == tea.KeyEnter || msg.Type == tea.KeySpace {
			return m.submitForm(fv)
		}
		return m, nil
	}

	var cmd tea.Cmd
	switch {
	case f.Kind.Choice():
		switch msg.Type {
		case tea.KeyLeft:
			fv.apply(forms.SetValue{Field: f.Name, Value: stepOption(f, fv.state.Value(f.Name), -1)})
		case tea.KeyRight, tea.KeySpace:
			fv.apply(forms.SetValue{Field: f.Name, Value: stepOption(f, fv.state.Value(f.Name), 1)})
		case tea.KeyEnter:
			cmd = fv.setFocus(fv.focus + 1)
		}

	case f.Kind.Multi():
		switch msg.Type {
		case tea.KeyLeft:
			fv.option = (fv.option - 1 + len(f.Options)) % len(f.Options)
		case tea.KeyRight:
			fv.option = (fv.option + 1) % len(f.Options)
		case tea.KeySpace:
			fv.apply(forms.Toggle{Field: f.Name, Option: f.Options[fv.option].Value})
		case tea.KeyEnter:
			cmd = fv.setFocus(fv.focus + 1)
		}

	case inArea:
		ta := fv.areas[f.Name]
		ta, cmd = ta.Update(msg)
		fv.areas[f.Name] = ta
		if ta.Value() != fv.state.Value(f.Name) {
			fv.apply(forms.SetValue{Field: f.Name, Value: ta.Value()})
		}

	default:
		if msg.Type == tea.KeyEnter {
			cmd = fv.setFocus(fv.focus + 1)
			break
		}
		ti := fv.inputs[f.Name]
		ti, cmd = ti.Update(msg)
		fv.inputs[f.Name] = ti
		if ti.Value() != fv.state.Value(f.Name) {
			fv.apply(forms.SetValue{Field: f.Name, Value: ti.Value()})
		}
	}
	m.forms[id] = fv
	return m, cmd
}

// stepOption moves value by delta through f's options, starting from the
// first option when value is blank.
func stepOption(f forms.Field, value string, delta int) string {
	if len(f.Options) == 0 {
		return value
	}
	idx := slices.IndexFunc(f.Options, func(o forms.Option) bool { return o.Value == value })
	if idx < 0 {
		if delta < 0 {
			return f.Options[len(f.Options)-1].Value
		}
		return f.Options[0].Value
	}
	return f.Options[(idx+delta+len(f.Options))%len(f.Options)].Value
}

func (m Model) submitForm(fv formView) (Model, tea.Cmd) {
	id := fv.def.ID
	ack, next, err := forms.Submit(fv.def, fv.state, time.Now())
	var verr *forms.ValidationError
	if errors.As(err, &verr) {
		fv.err = verr
		names := make([]string, len(verr.Fields))
		for i, e := range verr.Fields {
			names[i] = e.Field
		}
		first := slices.IndexFunc(fv.fields(), func(f forms.Field) bool { return verr.Has(f.Name) })
		cmd := fv.setFocus(first)
		m.forms[id] = fv
		m.formLog.Info("submission rejected", zap.String("form", string(id)), zap.Strings("fields", names))
		return m, cmd
	}
	if err != nil {
		m.notice = err.Error()
		m.formLog.Error("submission failed", zap.String("form", string(id)), zap.Error(err))
		return m, nil
	}

	fresh := newFormView(fv.def, m.width)
	fresh.state = next
	cmd := fresh.setFocus(0)
	m.forms[id] = fresh
	m.modal = ackModal{ack: ack}
	m.body.GotoTop()
	m.formLog.Info("submitted", zap.String("form", string(id)), zap.String("reference", ack.Reference))
	return m, cmd
}

// renderForm draws the form and returns the line of the focused control.
func (m Model) renderForm(id forms.ID) (string, int) {
	fv, ok := m.forms[id]
	if !ok {
		return "", -1
	}
	styles := m.theme.Styles()
	width := m.contentWidth()
	wrap := lipgloss.NewStyle().Width(min(width, 100))
	indent := lipgloss.NewStyle().PaddingLeft(2)

	var b strings.Builder
	line := func() int { return strings.Count(b.String(), "\n") }

	b.WriteString(styles.Title.Render(fv.def.Title))
	b.WriteString("\n")
	b.WriteString(wrap.Inherit(styles.MutedText).Render(fv.def.Intro))
	b.WriteString("\n\n")

	for _, n := range fv.def.Notices {
		b.WriteString(m.renderNotice(n, min(width, 100)))
		b.WriteString("\n\n")
	}

	if fv.err != nil {
		labels := make([]string, len(fv.err.Fields))
		for i, e := range fv.err.Fields {
			labels[i] = e.Label
		}
		b.WriteString(wrap.Inherit(styles.DangerText).Render("Please complete: " + strings.Join(labels, ", ")))
		b.WriteString("\n\n")
	}

	focusLine := -1
	fields := fv.fields()
	for _, section := range fv.def.Sections() {
		var inSection []int
		for i, f := range fields {
			if f.Section == section {
				inSection = append(inSection, i)
			}
		}
		if len(inSection) == 0 {
			continue
		}
		b.WriteString(styles.Section.Render(section))
		b.WriteString("\n")
		for _, i := range inSection {
			f := fields[i]
			focused := i == fv.focus
			if focused {
				focusLine = line()
			}
			b.WriteString(m.renderFieldLabel(f, focused))
			b.WriteString("\n")
			b.WriteString(indent.Render(m.renderControl(fv, f, focused)))
			b.WriteString("\n")
			if fv.err != nil && fv.err.Has(f.Name) {
				for _, e := range fv.err.Fields {
					if e.Field == f.Name {
						b.WriteString(indent.Inherit(styles.DangerText).Render(e.Label + " " + e.Reason()))
						b.WriteString("\n")
					}
				}
			}
		}
		b.WriteString("\n")
	}

	button := "[ " + fv.def.Submit + " ]"
	if fv.focus == len(fields) {
		focusLine = line()
		b.WriteString(styles.Selected.Bold(true).Render(button))
	} else {
		b.WriteString(styles.AccentText.Render(button))
	}
	b.WriteString(styles.FaintText.Render("   ctrl+s submits from any field"))

	if id == forms.Suggestion {
		b.WriteString("\n\n")
		b.WriteString(m.renderRecentSuggestions(min(width, 100)))
	}
	return b.String(), focusLine
}

func (m Model) renderFieldLabel(f forms.Field, focused bool) string {
	styles := m.theme.Styles()
	label := f.Label
	if f.Required() {
		label += " *"
	}
	if focused {
		return styles.AccentText.Bold(true).Render("› " + label)
	}
	return styles.Text.Render("  " + label)
}

func (m Model) renderControl(fv formView, f forms.Field, focused bool) string {
	styles := m.theme.Styles()
	box := styles.MutedText
	if focused {
		box = styles.Focused
	}

	switch {
	case f.Kind == forms.KindSelect:
		value := fv.state.Value(f.Name)
		label := "Select..."
		if value != "" {
			label = f.OptionLabel(value)
		}
		return box.Render("‹ " + label + " ›")

	case f.Kind == forms.KindRadio:
		labels := make([]string, len(f.Options))
		for i, o := range f.Options {
			labels[i] = o.Label
		}
		return choiceRow(labels, f.OptionLabel(fv.state.Value(f.Name)), styles.MutedText, styles.Selected)

	case f.Kind.Multi():
		colWidth := 0
		for _, o := range f.Options {
			colWidth = max(colWidth, lipgloss.Width(o.Label)+6)
		}
		perRow := max(1, fieldWidth(m.width)/max(colWidth, 1))
		var rows []string
		var row strings.Builder
		for i, o := range f.Options {
			mark := "[ ]"
			if fv.state.Checked(f.Name, o.Value) {
				mark = "[x]"
			}
			cell := fmt.Sprintf("%-*s", colWidth, mark+" "+o.Label)
			switch {
			case focused && i == fv.option:
				row.WriteString(styles.Selected.Render(cell))
			case fv.state.Checked(f.Name, o.Value):
				row.WriteString(styles.SuccessText.Render(cell))
			default:
				row.WriteString(styles.Text.Render(cell))
			}
			if (i+1)%perRow == 0 || i == len(f.Options)-1 {
				rows = append(rows, row.String())
				row.Reset()
			}
		}
		return strings.Join(rows, "\n")

	case f.Kind == forms.KindTextArea:
		return fv.areas[f.Name].View()

	default:
		return box.Render("[") + fv.inputs[f.Name].View() + box.Render("]")
	}
}

func (m Model) renderNotice(n forms.Notice, width int) string {
	styles := m.theme.Styles()
	border := m.theme.Info
	title := styles.InfoText.Bold(true)
	if n.Alert {
		border = m.theme.Danger
		title = styles.DangerText
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(border)).
		Padding(0, 1).
		Width(width - 2).
		Render(title.Render(n.Title) + "\n" + styles.Text.Render(n.Body))
}

func (m Model) renderRecentSuggestions(width int) string {
	styles := m.theme.Styles()
	var b strings.Builder
	b.WriteString(styles.Section.Render("Recent Community Suggestions"))
	b.WriteString("\n\n")
	for _, s := range forms.RecentSuggestions() {
		b.WriteString(styles.Title.Render(s.Title))
		b.WriteString("  ")
		b.WriteString(styles.Badge(s.Status, reports.StatusTone(s.Status)))
		b.WriteString("\n")
		b.WriteString(styles.FaintText.Render(s.Category + "  ·  " + s.Date + fmt.Sprintf("  ·  %d votes", s.Votes)))
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Width(width).Inherit(styles.MutedText).Render(s.Description))
		b.WriteString("\n\n")
	}
	impact := forms.Impact()
	b.WriteString(styles.Section.Render("Community Impact"))
	b.WriteString("\n")
	for _, row := range []struct {
		label string
		value int
		style lipgloss.Style
	}{
		{"Total Suggestions", impact.Total, styles.Text},
		{"Implemented", impact.Implemented, styles.SuccessText},
		{"In Progress", impact.InProgress, styles.InfoText},
		{"Under Review", impact.UnderReview, styles.WarningText},
	} {
		b.WriteString(styles.MutedText.Render(fmt.Sprintf("%-20s", row.label)))
		b.WriteString(row.style.Render(reports.FormatCount(row.value)))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
