package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/five82/platter/internal/logtail"
	"github.com/five82/platter/internal/nav"
	"github.com/five82/platter/internal/reports"
)

type adminState struct {
	tab           string
	notifications reports.Notifications
	cursor        int // row on the content and settings tabs
}

func newAdminState() adminState {
	return adminState{
		tab:           reports.AdminTabs().Default(),
		notifications: reports.DefaultNotifications(),
	}
}

// settingsRows are the selectable rows of the settings tab: two
// notification checkboxes and the reports link.
const settingsRows = 3

func (m Model) handleAdminKey(msg tea.KeyMsg) (Model, tea.Cmd, bool) {
	tabs := reports.AdminTabs()
	dash := reports.Admin()

	switch {
	case key.Matches(msg, m.keys.NextTab):
		m.setAdminTab(tabs.Next(m.admin.tab))
		return m, nil, true
	case key.Matches(msg, m.keys.PrevTab):
		m.setAdminTab(tabs.Prev(m.admin.tab))
		return m, nil, true
	}

	rows := 0
	switch m.admin.tab {
	case reports.TabContent:
		rows = len(dash.Shortcuts)
	case reports.TabSettings:
		rows = settingsRows
	}
	if rows == 0 {
		return m, nil, false
	}

	switch {
	case key.Matches(msg, m.keys.Down):
		m.admin.cursor = min(m.admin.cursor+1, rows-1)
	case key.Matches(msg, m.keys.Up):
		m.admin.cursor = max(m.admin.cursor-1, 0)
	case key.Matches(msg, m.keys.Select):
		if m.admin.tab == reports.TabContent {
			page, _ := nav.Parse(dash.Shortcuts[m.admin.cursor].Page)
			return m, m.navigate(page), true
		}
		if m.admin.cursor < 2 {
			m.admin.notifications = m.admin.notifications.Toggle(m.admin.cursor)
			m.uiLog.Debug("notification setting", zap.Bool("email", m.admin.notifications.Email), zap.Bool("sms", m.admin.notifications.SMS))
			return m, nil, true
		}
		page, _ := nav.Parse(dash.ReportsPage)
		return m, m.navigate(page), true
	default:
		return m, nil, false
	}
	return m, nil, true
}

func (m *Model) setAdminTab(tab string) {
	m.admin.tab = reports.AdminTabs().Resolve(tab)
	m.admin.cursor = 0
	m.body.GotoTop()
}

// renderTabBar draws a row of tabs with the active one highlighted.
func (m Model) renderTabBar(tabs reports.Tabs, active string) string {
	styles := m.theme.Styles()
	active = tabs.Resolve(active)
	parts := make([]string, 0, len(tabs.Items()))
	for _, t := range tabs.Items() {
		if t.ID == active {
			parts = append(parts, styles.Selected.Bold(true).Render(" "+t.Label+" "))
		} else {
			parts = append(parts, styles.MutedText.Render(" "+t.Label+" "))
		}
	}
	row := strings.Join(parts, " ")
	if lipgloss.Width(row) > m.contentWidth() {
		// Narrow terminals get the active tab and its position only.
		pos := 0
		for i, t := range tabs.Items() {
			if t.ID == active {
				pos = i + 1
			}
		}
		row = styles.Selected.Bold(true).Render(" "+tabs.Label(active)+" ") +
			styles.FaintText.Render(fmt.Sprintf("  %d/%d  h/l to switch", pos, len(tabs.Items())))
	}
	return row
}

func (m Model) renderAdmin() string {
	styles := m.theme.Styles()
	var b strings.Builder
	b.WriteString(styles.Title.Render("Admin Dashboard"))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("Manage content, monitor reports, and oversee platform operations"))
	b.WriteString("\n\n")
	b.WriteString(m.renderTabBar(reports.AdminTabs(), m.admin.tab))
	b.WriteString("\n\n")

	switch reports.AdminTabs().Resolve(m.admin.tab) {
	case reports.TabContent:
		b.WriteString(m.renderAdminContent())
	case reports.TabUsers:
		b.WriteString(m.renderAdminUsers())
	case reports.TabSettings:
		b.WriteString(m.renderAdminSettings())
	case reports.TabActivity:
		b.WriteString(m.renderActivity())
	default:
		b.WriteString(m.renderAdminOverview())
	}
	return b.String()
}

func (m Model) renderAdminOverview() string {
	styles := m.theme.Styles()
	dash := reports.Admin()

	cards := make([]string, len(dash.Stats))
	for i, s := range dash.Stats {
		cards[i] = styles.Panel.Width(22).Render(
			styles.MutedText.Render(s.Label) + "\n" +
				styles.Title.Render(s.Value) + "\n" +
				styles.ToneText(reports.ChangeTone(s.Change)).Render(s.Change))
	}

	var b strings.Builder
	b.WriteString(joinWrapped(cards, m.contentWidth()))
	b.WriteString("\n\n")

	b.WriteString(styles.Section.Render("Recent Reports"))
	b.WriteString("\n")
	for _, r := range dash.RecentReports {
		b.WriteString(styles.Title.Render(r.Type + " · " + r.Establishment))
		b.WriteString("  ")
		b.WriteString(styles.Badge(r.Status, reports.StatusTone(r.Status)))
		b.WriteString(" ")
		b.WriteString(styles.Badge(r.Priority, reports.PriorityTone(r.Priority)))
		b.WriteString("\n")
		b.WriteString(styles.MutedText.Render(r.Description))
		b.WriteString(styles.FaintText.Render("  " + r.Date))
		b.WriteString("\n\n")
	}

	b.WriteString(styles.Section.Render("Pending Actions"))
	b.WriteString("\n")
	for _, a := range dash.PendingActions {
		b.WriteString(styles.Text.Render(a.Title))
		b.WriteString("  ")
		b.WriteString(styles.Badge(a.Priority, reports.PriorityTone(a.Priority)))
		b.WriteString("\n")
		b.WriteString(styles.FaintText.Render(a.Type + "  ·  due " + a.DueDate))
		b.WriteString("\n\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m Model) renderAdminContent() string {
	styles := m.theme.Styles()
	var b strings.Builder
	b.WriteString(styles.Section.Render("Content Management"))
	b.WriteString("\n\n")
	for i, s := range reports.Admin().Shortcuts {
		button := "[ " + s.Button + " ]"
		if i == m.admin.cursor {
			button = styles.Selected.Bold(true).Render(button)
		} else {
			button = styles.AccentText.Render(button)
		}
		b.WriteString(styles.Title.Render(s.Title))
		b.WriteString("\n")
		b.WriteString(styles.MutedText.Render(s.Description))
		b.WriteString("\n")
		b.WriteString(button)
		b.WriteString("\n\n")
	}
	b.WriteString(styles.FaintText.Render("j/k to choose, enter to open"))
	return b.String()
}

func (m Model) renderAdminUsers() string {
	styles := m.theme.Styles()
	dash := reports.Admin()
	return strings.Join([]string{
		styles.Section.Render("User Management"),
		"",
		styles.Title.Render("Active Users"),
		styles.MutedText.Render(dash.RegisteredUsers),
		"",
		styles.Title.Render("Role Management"),
		styles.MutedText.Render("Manage user roles and permissions"),
	}, "\n")
}

func (m Model) renderAdminSettings() string {
	styles := m.theme.Styles()
	n := m.admin.notifications
	row := func(i int, text string) string {
		if i == m.admin.cursor {
			return styles.Selected.Render(text)
		}
		return styles.Text.Render(text)
	}
	check := func(on bool) string {
		if on {
			return "[x]"
		}
		return "[ ]"
	}
	return strings.Join([]string{
		styles.Section.Render("System Settings"),
		"",
		styles.Title.Render("Notification Settings"),
		row(0, check(n.Email)+" Email notifications for new reports"),
		row(1, check(n.SMS)+" SMS alerts for critical issues"),
		"",
		styles.Title.Render("Data Export"),
		row(2, "[ Generate Reports ]"),
		"",
		styles.FaintText.Render("j/k to choose, enter to toggle or open"),
	}, "\n")
}

// renderActivity shows the tail of the session log kept by the poller.
func (m Model) renderActivity() string {
	styles := m.theme.Styles()
	snap := m.snapshot

	var b strings.Builder
	b.WriteString(styles.Section.Render("Session Activity"))
	b.WriteString("\n")
	if m.store == nil || m.logFile == "" {
		b.WriteString(styles.FaintText.Render("Session logging is disabled (log_file = \"off\")."))
		return b.String()
	}
	b.WriteString(styles.FaintText.Render(m.logFile))
	if !snap.LastUpdated.IsZero() {
		b.WriteString(styles.FaintText.Render("  ·  read " + snap.LastUpdated.Format("15:04:05")))
	}
	b.WriteString("\n")
	if snap.LastError != nil {
		style := styles.WarningText
		if snap.IsStale() {
			style = styles.DangerText
		}
		b.WriteString(style.Render(snap.LastError.Error()))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	if len(snap.Entries) == 0 {
		b.WriteString(styles.FaintText.Render("No activity yet."))
		return b.String()
	}
	for _, e := range snap.Entries {
		b.WriteString(m.levelStyle(e).Render(truncate(e.Format(), m.contentWidth())))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m Model) levelStyle(e logtail.Entry) lipgloss.Style {
	styles := m.theme.Styles()
	switch strings.ToUpper(e.Level) {
	case "ERROR", "DPANIC", "PANIC", "FATAL":
		return styles.DangerText
	case "WARN":
		return styles.WarningText
	case "DEBUG":
		return styles.FaintText
	default:
		return styles.Text
	}
}

// joinWrapped lays blocks side by side, starting a new row when width
// would be exceeded.
func joinWrapped(blocks []string, width int) string {
	var rows []string
	var row []string
	rowWidth := 0
	for _, blk := range blocks {
		w := lipgloss.Width(blk) + 1
		if len(row) > 0 && rowWidth+w > width {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row, rowWidth = nil, 0
		}
		row = append(row, blk, " ")
		rowWidth += w
	}
	if len(row) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return strings.Join(rows, "\n")
}
