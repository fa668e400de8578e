package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/platter/internal/reports"
)

type reportsState struct {
	report    string
	dateRange string
}

func newReportsState() reportsState {
	return reportsState{
		report:    reports.ReportTabs().Default(),
		dateRange: reports.DateRanges().Default(),
	}
}

func (m Model) handleReportsKey(msg tea.KeyMsg) (Model, bool) {
	tabs := reports.ReportTabs()
	switch {
	case key.Matches(msg, m.keys.NextTab):
		m.reports.report = tabs.Next(m.reports.report)
	case key.Matches(msg, m.keys.PrevTab):
		m.reports.report = tabs.Prev(m.reports.report)
	case key.Matches(msg, m.keys.CycleDateRange):
		m.reports.dateRange = reports.DateRanges().Next(m.reports.dateRange)
		return m, true
	default:
		return m, false
	}
	m.body.GotoTop()
	return m, true
}

func (m Model) renderReports() string {
	styles := m.theme.Styles()
	data := reports.SampleAnalytics()

	var b strings.Builder
	b.WriteString(styles.Title.Render("Reports & Analytics"))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("Comprehensive insights into platform usage and community engagement"))
	b.WriteString("\n\n")
	b.WriteString(m.renderTabBar(reports.ReportTabs(), m.reports.report))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("Date range (d) "))
	b.WriteString(styles.AccentText.Render(reports.DateRanges().Label(m.reports.dateRange)))
	b.WriteString("\n\n")

	switch reports.ReportTabs().Resolve(m.reports.report) {
	case reports.ReportRestaurants:
		b.WriteString(m.renderRestaurantReport(data.Restaurants))
	case reports.ReportIllness:
		b.WriteString(m.renderIllnessReport(data.Illness))
	case reports.ReportSuggestions:
		b.WriteString(m.renderSuggestionReport(data.Suggestions))
	default:
		b.WriteString(m.renderUsageReport(data.Usage))
	}
	return b.String()
}

type figure struct {
	label  string
	value  string
	change string
}

func (m Model) renderFigures(figures []figure) string {
	styles := m.theme.Styles()
	cards := make([]string, len(figures))
	for i, f := range figures {
		body := styles.MutedText.Render(f.label) + "\n" + styles.Title.Render(f.value)
		if f.change != "" {
			body += "\n" + styles.ToneText(reports.ChangeTone(f.change)).Render(f.change+" from last month")
		}
		cards[i] = styles.Panel.Width(24).Render(body)
	}
	return joinWrapped(cards, m.contentWidth())
}

// renderCounts draws one labelled bar per count, scaled to the largest.
func (m Model) renderCounts(title string, counts []reports.Count) string {
	styles := m.theme.Styles()
	top := float64(reports.Max(counts))
	var b strings.Builder
	b.WriteString(styles.Section.Render(title))
	for _, c := range counts {
		b.WriteString("\n")
		b.WriteString(styles.Text.Render(fmt.Sprintf("%-22s", c.Label)))
		b.WriteString(styles.AccentText.Render(bar(float64(c.Count), top, m.barWidth())))
		b.WriteString(styles.MutedText.Render(" " + reports.FormatCount(c.Count)))
	}
	return b.String()
}

func (m Model) barWidth() int {
	return min(max(m.contentWidth()-36, 10), 40)
}

func (m Model) renderUsageReport(u reports.Usage) string {
	styles := m.theme.Styles()
	var b strings.Builder
	b.WriteString(m.renderFigures([]figure{
		{"Total Visits", reports.FormatCount(u.TotalVisits), u.Changes[0]},
		{"Unique Visitors", reports.FormatCount(u.UniqueVisitors), u.Changes[1]},
		{"Page Views", reports.FormatCount(u.PageViews), u.Changes[2]},
		{"Avg. Session", u.AvgSession, u.Changes[3]},
	}))
	b.WriteString("\n\n")

	b.WriteString(styles.Section.Render("Most Popular Pages"))
	for _, p := range u.PopularPages {
		b.WriteString("\n")
		b.WriteString(styles.Text.Render(fmt.Sprintf("%-16s", p.Page)))
		b.WriteString(styles.AccentText.Render(bar(p.Percent, 100, m.barWidth())))
		b.WriteString(styles.MutedText.Render(fmt.Sprintf(" %s visits (%.1f%%)", reports.FormatCount(p.Visits), p.Percent)))
	}
	b.WriteString("\n\n")

	b.WriteString(styles.Section.Render("Device Breakdown"))
	for _, d := range u.Devices {
		b.WriteString("\n")
		b.WriteString(styles.Text.Render(fmt.Sprintf("%-16s", d.Label)))
		b.WriteString(styles.InfoText.Render(bar(d.Percent, 100, m.barWidth())))
		b.WriteString(styles.MutedText.Render(fmt.Sprintf(" %.1f%%", d.Percent)))
	}
	return b.String()
}

func (m Model) renderRestaurantReport(r reports.Restaurants) string {
	styles := m.theme.Styles()
	var b strings.Builder
	b.WriteString(m.renderFigures([]figure{
		{label: "Total Reviews", value: reports.FormatCount(r.TotalReviews)},
		{label: "Average Rating", value: fmt.Sprintf("%.1f", r.AverageRating)},
		{label: "This Month", value: reports.FormatCount(r.ThisMonth)},
	}))
	b.WriteString("\n\n")
	b.WriteString(m.renderCounts("Reviews by Month", r.ByMonth))
	b.WriteString("\n\n")
	b.WriteString(styles.Section.Render("Top Rated Restaurants"))
	for i, t := range r.TopRated {
		b.WriteString("\n")
		b.WriteString(styles.Text.Render(fmt.Sprintf("%d. %-22s", i+1, t.Name)))
		b.WriteString(styles.WarningText.Render(stars(t.Rating, m.prefs.ASCIIMarkers)))
		b.WriteString(styles.MutedText.Render(fmt.Sprintf(" %.1f  (%s reviews)", t.Rating, reports.FormatCount(t.Reviews))))
	}
	return b.String()
}

func (m Model) renderIllnessReport(r reports.Illness) string {
	var b strings.Builder
	b.WriteString(m.renderFigures([]figure{
		{label: "Total Reports", value: reports.FormatCount(r.Total)},
		{label: "Resolved", value: reports.FormatCount(r.Resolved)},
		{label: "Pending", value: reports.FormatCount(r.Pending)},
	}))
	b.WriteString("\n\n")
	b.WriteString(m.renderCounts("Reports by Type", r.ByType))
	b.WriteString("\n\n")
	b.WriteString(m.renderCounts("Reports by Month", r.ByMonth))
	return b.String()
}

func (m Model) renderSuggestionReport(r reports.Suggestions) string {
	var b strings.Builder
	b.WriteString(m.renderFigures([]figure{
		{label: "Total", value: reports.FormatCount(r.Total)},
		{label: "Implemented", value: reports.FormatCount(r.Implemented)},
		{label: "In Progress", value: reports.FormatCount(r.InProgress)},
		{label: "Under Review", value: reports.FormatCount(r.UnderReview)},
	}))
	b.WriteString("\n\n")
	b.WriteString(m.renderCounts("Suggestions by Category", r.ByCategory))
	return b.String()
}
